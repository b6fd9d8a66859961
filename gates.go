package main

import "math"

// The 2x2 unitaries backing the register's single-qubit gates. CNOT has no
// standalone matrix here: it acts as a controlled amplitude swap in
// StateVector.ApplyCX, which is the same 2x2 X block restricted to basis
// states whose control bit is set.
var (
	hFactor = complex(1/math.Sqrt2, 0)

	// Pauli-X: |0⟩↔|1⟩.
	gateX = [2][2]Complex{
		{0, 1},
		{1, 0},
	}

	// Hadamard: |0⟩→(|0⟩+|1⟩)/√2, |1⟩→(|0⟩−|1⟩)/√2. Self-inverse.
	gateH = [2][2]Complex{
		{hFactor, hFactor},
		{hFactor, -hFactor},
	}
)
