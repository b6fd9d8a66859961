package main

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRegisterSize reports a circuit request with fewer than one
	// input qubit.
	ErrInvalidRegisterSize = errors.New("invalid register size")

	// ErrUnknownOracle reports an oracle selector outside the two defined
	// variants.
	ErrUnknownOracle = errors.New("unknown oracle variant")
)

// OracleType selects the black-box function the circuit embeds.
type OracleType int

const (
	// OracleConstant models f(x) = 0 for all x. Identity on the register.
	OracleConstant OracleType = iota
	// OracleBalanced models f(x) = x₀⊕x₁⊕…⊕x_{n−1}, the parity of the
	// inputs, as one CNOT from each input qubit onto the auxiliary.
	OracleBalanced
)

func (o OracleType) String() string {
	switch o {
	case OracleConstant:
		return "constant"
	case OracleBalanced:
		return "balanced"
	default:
		return fmt.Sprintf("oracle(%d)", int(o))
	}
}

// ParseOracleType maps a selector string to an OracleType.
func ParseOracleType(s string) (OracleType, error) {
	switch s {
	case "constant":
		return OracleConstant, nil
	case "balanced":
		return OracleBalanced, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOracle, s)
	}
}

// applyOracle places the oracle's gates starting at the given step and
// returns the next free step. The constant oracle places nothing; the
// balanced oracle places CNOT(q→aux) for every input qubit in ascending
// order, one per step.
func applyOracle(c *Circuit, oracle OracleType, n, step int) (int, error) {
	switch oracle {
	case OracleConstant:
		return step, nil
	case OracleBalanced:
		for q := 0; q < n; q++ {
			c.AddGate("CX", n, step, q)
			step++
		}
		return step, nil
	default:
		return step, fmt.Errorf("%w: %d", ErrUnknownOracle, int(oracle))
	}
}

// BuildCircuit lays out the Deutsch-Jozsa circuit for n input qubits plus
// one auxiliary (qubit n). The sequence is fixed for both oracle variants:
//
//  1. X on the auxiliary, flipping it to |1⟩.
//  2. H on every qubit, putting the inputs in uniform superposition and the
//     auxiliary in |−⟩.
//  3. The oracle, between barriers.
//  4. H on the input qubits only.
//  5. Measurement of the input qubits.
//
// With the auxiliary in |−⟩ the oracle imprints phase (−1)^f(x) on |x⟩, so
// the closing Hadamards send the constant oracle to |0…0⟩ and the parity
// oracle to |1…1⟩, deterministically.
func BuildCircuit(n int, oracle OracleType) (*Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least 1 input qubit, got %d", ErrInvalidRegisterSize, n)
	}

	c := &Circuit{NumQubits: n + 1}
	step := 0

	c.AddGate("X", n, step)
	step++
	for q := 0; q <= n; q++ {
		c.AddGate("H", q, step)
	}
	step++

	c.AddBarrier(step)
	step++
	var err error
	step, err = applyOracle(c, oracle, n, step)
	if err != nil {
		return nil, err
	}
	c.AddBarrier(step)
	step++

	for q := 0; q < n; q++ {
		c.AddGate("H", q, step)
	}
	step++
	for q := 0; q < n; q++ {
		c.AddGate("MEASURE", q, step)
		step++
	}

	return c, nil
}

// RunDeutschJozsa builds the circuit and returns its final StateVector.
func RunDeutschJozsa(n int, oracle OracleType) (*StateVector, error) {
	c, err := BuildCircuit(n, oracle)
	if err != nil {
		return nil, err
	}
	return c.Run()
}
