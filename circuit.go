package main

import (
	"fmt"
	"sort"
	"strings"
)

// Gate represents a quantum gate placed on the circuit.
type Gate struct {
	Type    string
	Target  int
	Control int // -1 if not a controlled gate
	Step    int // position in circuit timeline
}

// Circuit holds an ordered gate list over a fixed-size register. The last
// qubit (index NumQubits-1) is the Deutsch-Jozsa auxiliary.
type Circuit struct {
	NumQubits int
	Gates     []Gate
	MaxSteps  int
}

// AddGate appends a gate to the circuit.
func (c *Circuit) AddGate(gateType string, target, step int, control ...int) {
	ctrl := -1
	if len(control) > 0 {
		ctrl = control[0]
	}
	c.Gates = append(c.Gates, Gate{
		Type:    gateType,
		Target:  target,
		Control: ctrl,
		Step:    step,
	})
	if step >= c.MaxSteps {
		c.MaxSteps = step + 1
	}
}

// AddBarrier appends a barrier spanning all qubits at the given step.
func (c *Circuit) AddBarrier(step int) {
	c.AddGate("BARRIER", -1, step)
}

// GetGateAt returns the gate at the given step and qubit, or nil.
func (c *Circuit) GetGateAt(step, qubit int) *Gate {
	for i := range c.Gates {
		g := &c.Gates[i]
		if g.Step == step && (g.Target == qubit || g.Control == qubit) {
			return g
		}
	}
	return nil
}

// Run executes the circuit against a fresh StateVector and returns the
// final state. Gates are applied in step order; barriers and measurements
// do not touch the state.
func (c *Circuit) Run() (*StateVector, error) {
	state := NewStateVector(c.NumQubits)

	gates := make([]Gate, len(c.Gates))
	copy(gates, c.Gates)
	sort.SliceStable(gates, func(i, j int) bool {
		return gates[i].Step < gates[j].Step
	})

	for _, gate := range gates {
		var err error
		switch gate.Type {
		case "BARRIER", "MEASURE":
			continue
		case "X":
			err = state.ApplyX(gate.Target)
		case "H":
			err = state.ApplyH(gate.Target)
		case "CX":
			err = state.ApplyCX(gate.Control, gate.Target)
		default:
			err = fmt.Errorf("unsupported gate type %q", gate.Type)
		}
		if err != nil {
			return nil, err
		}
	}

	return state, nil
}

// ToQASM generates OpenQASM 2.0 output from the circuit. The classical
// register covers the input qubits only; the auxiliary is never measured.
func (c *Circuit) ToQASM() string {
	numCbits := max(c.NumQubits-1, 1)

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", numCbits)

	for step := 0; step < c.MaxSteps; step++ {
		for _, gate := range c.Gates {
			if gate.Step != step {
				continue
			}
			switch gate.Type {
			case "BARRIER":
				qubits := make([]string, c.NumQubits)
				for q := 0; q < c.NumQubits; q++ {
					qubits[q] = fmt.Sprintf("q[%d]", q)
				}
				fmt.Fprintf(&sb, "barrier %s;\n", strings.Join(qubits, ", "))
			case "MEASURE":
				fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", gate.Target, gate.Target)
			case "CX":
				fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", gate.Control, gate.Target)
			default:
				fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(gate.Type), gate.Target)
			}
		}
	}

	return sb.String()
}
