package main

import (
	"errors"
	"fmt"
	"math/cmplx"
)

type Complex = complex128

// ErrInvalidQubitIndex reports a gate whose target or control lies outside
// the register, or a controlled gate whose control equals its target.
var ErrInvalidQubitIndex = errors.New("invalid qubit index")

// StateVector holds the complex amplitudes of a qubit register. Basis states
// are indexed by their integer encoding: bit q of the index is the value of
// qubit q. A StateVector is owned by the circuit run that created it.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// NewStateVector returns a register with all amplitude mass on basis
// state 0 (every qubit |0⟩).
func NewStateVector(numQubits int) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

func (s *StateVector) checkQubit(q int) error {
	if q < 0 || q >= s.NumQubits {
		return fmt.Errorf("%w: q[%d] outside %d-qubit register", ErrInvalidQubitIndex, q, s.NumQubits)
	}
	return nil
}

// ApplyX flips qubit q by swapping each amplitude pair whose basis indices
// differ only in bit q.
func (s *StateVector) ApplyX(q int) error {
	return s.applySingle(q, gateX)
}

// ApplyH applies the Hadamard transform to qubit q.
func (s *StateVector) ApplyH(q int) error {
	return s.applySingle(q, gateH)
}

// applySingle contracts a 2x2 unitary against the amplitude pair of each
// basis state split on bit q.
func (s *StateVector) applySingle(q int, u [2][2]Complex) error {
	if err := s.checkQubit(q); err != nil {
		return err
	}
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = u[0][0]*a0 + u[0][1]*a1
			s.Amplitudes[j] = u[1][0]*a0 + u[1][1]*a1
		}
	}
	return nil
}

// ApplyCX flips the target qubit on every basis state whose control bit is
// set, swapping the two amplitudes that differ in the target bit.
func (s *StateVector) ApplyCX(control, target int) error {
	if err := s.checkQubit(control); err != nil {
		return err
	}
	if err := s.checkQubit(target); err != nil {
		return err
	}
	if control == target {
		return fmt.Errorf("%w: control and target are both q[%d]", ErrInvalidQubitIndex, control)
	}
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
	return nil
}

// Norm returns the sum of squared amplitude magnitudes. Unitary evolution
// keeps this at 1 up to floating-point rounding.
func (s *StateVector) Norm() float64 {
	total := 0.0
	for _, amp := range s.Amplitudes {
		total += real(amp * cmplx.Conj(amp))
	}
	return total
}

// probability of observing basis state i.
func (s *StateVector) probability(i int) float64 {
	amp := s.Amplitudes[i]
	return real(amp * cmplx.Conj(amp))
}
