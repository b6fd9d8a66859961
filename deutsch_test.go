package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCircuitRejectsSmallRegisters(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		_, err := BuildCircuit(n, OracleConstant)
		assert.ErrorIs(t, err, ErrInvalidRegisterSize, "n=%d", n)
	}
}

func TestParseOracleType(t *testing.T) {
	tests := []struct {
		in      string
		want    OracleType
		wantErr bool
	}{
		{in: "constant", want: OracleConstant},
		{in: "balanced", want: OracleBalanced},
		{in: "Balanced", wantErr: true},
		{in: "parity", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseOracleType(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownOracle, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestCircuitGateInventory(t *testing.T) {
	const n = 4
	tests := []struct {
		oracle OracleType
		wantCX int
	}{
		{oracle: OracleConstant, wantCX: 0},
		{oracle: OracleBalanced, wantCX: n},
	}

	for _, tt := range tests {
		t.Run(tt.oracle.String(), func(t *testing.T) {
			c, err := BuildCircuit(n, tt.oracle)
			require.NoError(t, err)
			require.Equal(t, n+1, c.NumQubits)

			byType := map[string]int{}
			for _, g := range c.Gates {
				byType[g.Type]++
			}
			assert.Equal(t, 1, byType["X"], "one X flips the auxiliary")
			assert.Equal(t, (n+1)+n, byType["H"], "opening layer on all qubits, closing layer on inputs")
			assert.Equal(t, tt.wantCX, byType["CX"])
			assert.Equal(t, n, byType["MEASURE"])

			if tt.oracle == OracleBalanced {
				// One CNOT per input qubit, each targeting the auxiliary.
				controls := map[int]int{}
				for _, g := range c.Gates {
					if g.Type == "CX" {
						assert.Equal(t, n, g.Target)
						controls[g.Control]++
					}
				}
				for q := 0; q < n; q++ {
					assert.Equal(t, 1, controls[q], "control q[%d]", q)
				}
			}
		})
	}
}

func TestDeterministicOutcomes(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for _, oracle := range []OracleType{OracleConstant, OracleBalanced} {
			state, err := RunDeutschJozsa(n, oracle)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, state.Norm(), probSumTolerance, "n=%d %s", n, oracle)

			dist := Distribution(state, n)

			want := strings.Repeat("0", n)
			if oracle == OracleBalanced {
				want = strings.Repeat("1", n)
			}
			total := 0.0
			for key, p := range dist {
				total += p
				if key == want {
					assert.InDelta(t, 1.0, p, probSumTolerance, "n=%d %s key=%s", n, oracle, key)
				} else {
					assert.InDelta(t, 0.0, p, probSumTolerance, "n=%d %s key=%s", n, oracle, key)
				}
			}
			assert.InDelta(t, 1.0, total, probSumTolerance, "n=%d %s", n, oracle)
		}
	}
}

func TestClassicScenario(t *testing.T) {
	// n = 3, shots = 1024: the textbook demonstration.
	const n, shots = 3, 1024

	constant, err := ExecuteRun(n, OracleConstant, shots, 7, RuleExact)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"000": shots}, constant.Counts)
	assert.True(t, constant.Verdict.Pass, constant.Verdict.Reason)

	balanced, err := ExecuteRun(n, OracleBalanced, shots, 7, RuleExact)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"111": shots}, balanced.Counts)
	assert.True(t, balanced.Verdict.Pass, balanced.Verdict.Reason)
}

func TestSingleQubitBoundary(t *testing.T) {
	const shots = 64

	constant, err := ExecuteRun(1, OracleConstant, shots, 3, RuleExact)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"0": shots}, constant.Counts)

	balanced, err := ExecuteRun(1, OracleBalanced, shots, 3, RuleExact)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": shots}, balanced.Counts)
}

func TestToQASM(t *testing.T) {
	c, err := BuildCircuit(3, OracleBalanced)
	require.NoError(t, err)
	qasm := c.ToQASM()

	assert.Contains(t, qasm, "OPENQASM 2.0;")
	assert.Contains(t, qasm, "qreg q[4];")
	assert.Contains(t, qasm, "creg c[3];")
	assert.Contains(t, qasm, "x q[3];")
	assert.Equal(t, 3, strings.Count(qasm, "cx q["))
	assert.Equal(t, 7, strings.Count(qasm, "h q["))
	assert.Equal(t, 3, strings.Count(qasm, "measure q["))
	assert.Equal(t, 2, strings.Count(qasm, "barrier "))

	constant, err := BuildCircuit(3, OracleConstant)
	require.NoError(t, err)
	assert.NotContains(t, constant.ToQASM(), "cx ")
}
