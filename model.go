package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusMain focus = iota
	focusShots
)

// Model represents the TUI application state.
type Model struct {
	numQubits int
	oracle    OracleType
	rule      VerifyRule
	shots     int
	seed      int64

	circuit   *Circuit
	report    *RunReport
	runErr    error
	statusMsg string

	shotsInput textinput.Model
	focus      focus
	width      int
	height     int
}

func initialModel(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "1024"
	ti.CharLimit = 9
	ti.Width = 12

	oracle := OracleConstant
	if cfg.Oracle == "balanced" {
		oracle = OracleBalanced
	}
	rule, _ := ParseVerifyRule(cfg.Rule)

	m := Model{
		numQubits:  cfg.Qubits,
		oracle:     oracle,
		rule:       rule,
		shots:      cfg.Shots,
		seed:       cfg.Seed,
		shotsInput: ti,
		focus:      focusMain,
	}
	m.rebuildCircuit()
	return m
}

// rebuildCircuit refreshes the diagram/QASM source after a setting change.
// Settings are clamped before they reach the builder, so a build error here
// is a programming error and is surfaced in the status line.
func (m *Model) rebuildCircuit() {
	c, err := BuildCircuit(m.numQubits, m.oracle)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.circuit = c
}

func (m *Model) runOnce() {
	report, err := ExecuteRun(m.numQubits, m.oracle, m.shots, m.seed, m.rule)
	if err != nil {
		m.runErr = err
		m.report = nil
		return
	}
	m.runErr = nil
	m.report = report
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusMain:
			switch key {
			case "q":
				return m, tea.Quit
			case "o":
				if m.oracle == OracleConstant {
					m.oracle = OracleBalanced
				} else {
					m.oracle = OracleConstant
				}
				m.report = nil
				m.rebuildCircuit()
			case "m":
				if m.rule == RuleExact {
					m.rule = RuleLegacy
				} else {
					m.rule = RuleExact
				}
				if m.report != nil {
					v := Verify(m.report.Counts, m.oracle, m.numQubits, m.rule)
					m.report.Verdict = v
				}
			case "+", "=":
				if m.numQubits < maxQubits {
					m.numQubits++
					m.report = nil
					m.rebuildCircuit()
				}
			case "-":
				if m.numQubits > 1 {
					m.numQubits--
					m.report = nil
					m.rebuildCircuit()
				}
			case "s":
				m.shotsInput.SetValue(strconv.Itoa(m.shots))
				m.shotsInput.Focus()
				m.focus = focusShots
			case "r", "enter":
				m.runOnce()
			}

		case focusShots:
			switch key {
			case "esc":
				m.shotsInput.Blur()
				m.focus = focusMain
			case "enter":
				shots, err := strconv.Atoi(m.shotsInput.Value())
				if err != nil || shots < 1 {
					m.statusMsg = "shots must be a positive integer"
					break
				}
				m.shots = shots
				m.shotsInput.Blur()
				m.focus = focusMain
			default:
				var cmd tea.Cmd
				m.shotsInput, cmd = m.shotsInput.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// ──────────────────────────── View ────────────────────────────

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	circuitPanel := circuitStyle.Render(
		titleStyle.Render("Deutsch-Jozsa circuit") + "\n\n" + renderCircuit(m.circuit))

	qasmPanel := qasmStyle.Render(
		titleStyle.Render("OpenQASM") + "\n\n" + m.circuit.ToQASM())

	histPanel := histStyle.Render(
		titleStyle.Render("Outcomes") + "\n\n" + m.renderResults())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, qasmPanel)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, histPanel, m.renderControls())
	return frame
}

func (m Model) renderResults() string {
	if m.runErr != nil {
		return failStyle.Render(fmt.Sprintf("run error: %v", m.runErr))
	}
	if m.report == nil {
		return dimStyle.Render("press r to run")
	}
	hist := renderHistogram(m.report.Counts, m.report.Shots)
	return hist + "\n\n" + renderVerdict(m.report.Verdict)
}

func (m Model) renderControls() string {
	var status string
	if m.focus == focusShots {
		status = "Shots: " + m.shotsInput.View()
	} else if m.statusMsg != "" {
		status = failStyle.Render(m.statusMsg)
	} else {
		status = fmt.Sprintf("oracle=%s  rule=%s  qubits=%d  shots=%d",
			m.oracle, m.rule, m.numQubits, m.shots)
	}
	help := dimStyle.Render("r Run  o Oracle  m Rule  +/- Qubits  s Shots  q Quit")
	return controlsStyle.Render(status + "\n" + help)
}
