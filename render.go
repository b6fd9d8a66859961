package main

import (
	"fmt"
	"sort"
	"strings"
)

// ──────────────────────────── Circuit diagram ────────────────────────────

// cellFor returns the cellW-wide cell for (step, qubit). Controlled gates
// draw ● on the control wire, ⊕ on the target wire, and ┼ on wires they
// pass through.
func cellFor(c *Circuit, step, qubit int) string {
	wire := strings.Repeat("─", cellW)

	for _, g := range c.Gates {
		if g.Step != step {
			continue
		}
		switch {
		case g.Type == "BARRIER":
			return "──░──"
		case g.Type == "CX" && g.Control == qubit:
			return "──●──"
		case g.Type == "CX" && g.Target == qubit:
			return "──⊕──"
		case g.Type == "CX":
			lo, hi := min(g.Control, g.Target), max(g.Control, g.Target)
			if qubit > lo && qubit < hi {
				return "──┼──"
			}
		case g.Type == "MEASURE" && g.Target == qubit:
			return "┤ M ├"
		case g.Target == qubit:
			return fmt.Sprintf("┤ %s ├", gateDisplayName(g.Type))
		}
	}
	return wire
}

// gateDisplayName returns a one-character display name for a gate type.
func gateDisplayName(gateType string) string {
	switch gateType {
	case "MEASURE":
		return "M"
	default:
		return gateType
	}
}

// renderCircuit draws one wire per qubit with the auxiliary last.
func renderCircuit(c *Circuit) string {
	var sb strings.Builder
	for q := 0; q < c.NumQubits; q++ {
		label := fmt.Sprintf("q[%d]:", q)
		sb.WriteString(qubitLabelStyle.Render(fmt.Sprintf("%-*s", labelW, label)))
		for step := 0; step < c.MaxSteps; step++ {
			cell := cellFor(c, step, q)
			if strings.ContainsAny(cell, "●⊕░") || strings.Contains(cell, "┤") {
				sb.WriteString(gateStyle.Render(cell))
			} else {
				sb.WriteString(dimStyle.Render(cell))
			}
		}
		if q < c.NumQubits-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ──────────────────────────── Histogram ────────────────────────────

// renderHistogram draws a horizontal bar per observed outcome, scaled to
// the most frequent one.
func renderHistogram(counts map[string]int, shots int) string {
	keys := make([]string, 0, len(counts))
	most := 0
	for k, n := range counts {
		if n <= 0 {
			continue
		}
		keys = append(keys, k)
		if n > most {
			most = n
		}
	}
	if len(keys) == 0 || shots <= 0 {
		return dimStyle.Render("no outcomes yet")
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		n := counts[k]
		w := n * histBarW / most
		if w == 0 {
			w = 1
		}
		pct := 100 * float64(n) / float64(shots)
		fmt.Fprintf(&sb, "%s %s %d (%.1f%%)",
			qubitLabelStyle.Render(k),
			barStyle.Render(strings.Repeat("█", w)),
			n, pct)
		if i < len(keys)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ──────────────────────────── Verdict ────────────────────────────

func renderVerdict(v Verdict) string {
	var sb strings.Builder
	if v.Pass {
		sb.WriteString(passStyle.Render("PASS"))
	} else {
		sb.WriteString(failStyle.Render("FAIL"))
	}
	fmt.Fprintf(&sb, " %s oracle, %s rule\n", v.Oracle, v.Rule)
	fmt.Fprintf(&sb, "expected: %s\n", v.Expected)
	sb.WriteString(dimStyle.Render(v.Reason))
	return sb.String()
}
