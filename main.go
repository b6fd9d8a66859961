package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flags "github.com/jessevdk/go-flags"
	"github.com/lmittmann/tint"
)

type options struct {
	Qubits   int    `short:"n" long:"qubits" description:"number of input qubits"`
	Shots    int    `long:"shots" description:"number of measurement shots"`
	Seed     int64  `long:"seed" description:"rng seed for reproducible sampling (0 = process entropy)"`
	Oracle   string `short:"o" long:"oracle" description:"oracle variant" choice:"constant" choice:"balanced" choice:"both"`
	Rule     string `long:"rule" description:"balanced-oracle verification rule" choice:"exact" choice:"legacy"`
	Config   string `short:"c" long:"config" description:"path to TOML config file"`
	Headless bool   `long:"headless" description:"run once and print results instead of starting the TUI"`
	JSON     bool   `long:"json" description:"emit headless reports as JSON"`
	QASM     bool   `long:"qasm" description:"print the OpenQASM for the selected circuit(s) and exit"`
}

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Deutsch-Jozsa terminal simulator"
	parser.LongDescription = "Decides whether a promised boolean oracle is constant or balanced " +
		"with a single quantum evaluation, simulated on an n+1 qubit statevector."
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	cfg = mergeOptions(cfg, opts)
	if err := cfg.validate(); err != nil {
		slog.Error("invalid settings", "err", err)
		os.Exit(1)
	}

	oracles := selectedOracles(cfg.Oracle)
	rule, _ := ParseVerifyRule(cfg.Rule)

	if opts.QASM {
		for _, oracle := range oracles {
			c, err := BuildCircuit(cfg.Qubits, oracle)
			if err != nil {
				slog.Error("build failed", "oracle", oracle, "err", err)
				os.Exit(1)
			}
			fmt.Printf("// oracle: %s\n%s\n", oracle, c.ToQASM())
		}
		return
	}

	if opts.Headless {
		os.Exit(runHeadless(cfg, oracles, rule, opts.JSON))
	}

	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("tui failed", "err", err)
		os.Exit(1)
	}
}

// mergeOptions lets set flags override config values.
func mergeOptions(cfg Config, opts options) Config {
	if opts.Qubits != 0 {
		cfg.Qubits = opts.Qubits
	}
	if opts.Shots != 0 {
		cfg.Shots = opts.Shots
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if opts.Oracle != "" {
		cfg.Oracle = opts.Oracle
	}
	if opts.Rule != "" {
		cfg.Rule = opts.Rule
	}
	return cfg
}

func selectedOracles(selector string) []OracleType {
	switch selector {
	case "constant":
		return []OracleType{OracleConstant}
	case "balanced":
		return []OracleType{OracleBalanced}
	default:
		return []OracleType{OracleConstant, OracleBalanced}
	}
}

// runHeadless executes each selected oracle once and returns the process
// exit code: 0 only if every verdict passes.
func runHeadless(cfg Config, oracles []OracleType, rule VerifyRule, asJSON bool) int {
	code := 0
	for _, oracle := range oracles {
		report, err := ExecuteRun(cfg.Qubits, oracle, cfg.Shots, cfg.Seed, rule)
		if err != nil {
			slog.Error("run failed", "oracle", oracle, "err", err)
			return 1
		}
		report.Log()

		if asJSON {
			out, err := report.JSON()
			if err != nil {
				slog.Error("encode failed", "id", report.ID, "err", err)
				return 1
			}
			fmt.Println(out)
		} else {
			fmt.Print(report.Text())
			fmt.Println(renderHistogram(report.Counts, report.Shots))
		}

		if !report.Verdict.Pass {
			code = 1
		}
	}
	return code
}
