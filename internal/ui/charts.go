package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// resample stretches or squeezes a series onto width points, keeping
// the x bounds at [0, len-1].
func resample(series []float64, width int) []float64 {
	if width <= 0 || len(series) == 0 {
		return nil
	}
	out := make([]float64, 0, width)
	if len(series) <= width {
		return append(out, series...)
	}
	if width == 1 {
		// A single column shows the newest sample, the x-bounds' far end.
		return append(out, series[len(series)-1])
	}
	step := float64(len(series)-1) / float64(width-1)
	for i := 0; i < width; i++ {
		idx := int(math.Round(float64(i) * step))
		if idx >= len(series) {
			idx = len(series) - 1
		}
		out = append(out, series[idx])
	}
	return out
}

// sparkLevel maps a value on a [0, max] scale to a rune index.
func sparkLevel(v, max float64) int {
	if max <= 0 || v <= 0 {
		return 0
	}
	lvl := int(v / max * float64(len(sparkRunes)-1))
	if lvl >= len(sparkRunes) {
		lvl = len(sparkRunes) - 1
	}
	if lvl < 0 {
		lvl = 0
	}
	return lvl
}

// sparkline draws one row with y bounds [0, max observed]. Unused
// trailing columns are left blank until the history fills the width.
func sparkline(series []float64, width int) string {
	pts := resample(series, width)
	if pts == nil {
		return strings.Repeat(" ", max(width, 0))
	}
	var peak float64
	for _, v := range series {
		if v > peak {
			peak = v
		}
	}
	var b strings.Builder
	for _, v := range pts {
		b.WriteRune(sparkRunes[sparkLevel(v, peak)])
	}
	if pad := width - len(pts); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

// overlaySparkline draws two series on one shared [0, max] scale. Each
// column shows whichever series is taller there, in that series' style,
// so read and write stay distinguishable on a single row.
func overlaySparkline(a, b []float64, width int, styleA, styleB lipgloss.Style) string {
	pa := resample(a, width)
	pb := resample(b, width)
	n := max(len(pa), len(pb))
	if n == 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	var peak float64
	for _, v := range a {
		if v > peak {
			peak = v
		}
	}
	for _, v := range b {
		if v > peak {
			peak = v
		}
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		var va, vb float64
		if i < len(pa) {
			va = pa[i]
		}
		if i < len(pb) {
			vb = pb[i]
		}
		if vb > va {
			sb.WriteString(styleB.Render(string(sparkRunes[sparkLevel(vb, peak)])))
		} else {
			sb.WriteString(styleA.Render(string(sparkRunes[sparkLevel(va, peak)])))
		}
	}
	if pad := width - n; pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	return sb.String()
}

func toFloats(vs []uint64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}
