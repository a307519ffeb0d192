package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mwestend/pswatch/internal/model"
)

// renderEntry draws one entry into its region: a header line followed
// by ChartHeight chart rows, each exactly width columns.
func renderEntry(e *model.Entry, width int, now time.Time) []string {
	dead := !e.Alive()
	st := func(s lipgloss.Style) lipgloss.Style {
		if dead {
			return s.Faint(true)
		}
		return s
	}

	lines := []string{headerLine(e, width, now, st)}
	switch e.Detail {
	case model.Expanded:
		lines = append(lines,
			metricRow(st(memStyle), "mem", humanize.IBytes(last(e.Mem)),
				humanize.IBytes(peak(e.Mem)), toFloats(e.Mem), width),
			metricRow(st(cpuStyle), "cpu", fmt.Sprintf("%5.2f", lastF(e.CPU)),
				fmt.Sprintf("%5.2f", peakF(e.CPU)), e.CPU, width),
			diskRow(e, width, st),
		)
	case model.Condensed:
		lines = append(lines, condensedRow(e, width, st))
	}
	return lines
}

func headerLine(e *model.Entry, width int, now time.Time, st func(lipgloss.Style) lipgloss.Style) string {
	before, match, after := e.SplitMatch()
	name := st(nameStyle).Render(before) + st(matchStyle).Render(match) + st(nameStyle).Render(after)
	pid := st(pidStyle).Render(fmt.Sprintf("%d", e.PID))

	lived := e.Lived(now)
	livedStr := st(livedStyle).Render(formatLived(lived))
	startStr := st(infoStyle).Render(formatStart(e.Start, lived))

	var left, right string
	switch e.Detail {
	case model.Expanded:
		left = name + " " + pid
		right = startStr + "  " + livedStr
	default:
		left = name + " " + pid
		right = livedStr + " " + startStr
	}
	return padBetween(left, right, width)
}

// metricRow is a full-width chart row: colored label, current value,
// dim peak value, then a sparkline filling the rest.
func metricRow(style lipgloss.Style, label, current, peakStr string, series []float64, width int) string {
	head := style.Render(label+" ") + current + peakStyle.Render("  peak ") + peakStr + " "
	rest := width - lipgloss.Width(head)
	if rest <= 0 {
		return truncLine(head, width)
	}
	return head + style.Render(sparkline(series, rest))
}

// diskRow overlays read and write on one shared-scale chart.
func diskRow(e *model.Entry, width int, st func(lipgloss.Style) lipgloss.Style) string {
	head := st(readStyle).Render("read ") + humanize.IBytes(last(e.Read)) +
		st(writeStyle).Render("  wrote ") + humanize.IBytes(last(e.Write)) + " "
	rest := width - lipgloss.Width(head)
	if rest <= 0 {
		return truncLine(head, width)
	}
	return head + overlaySparkline(toFloats(e.Read), toFloats(e.Write), rest, st(readStyle), st(writeStyle))
}

// condensedRow fits all four series on one line: mem and cpu get a
// third each, and the disk third splits into separate read and write
// halves with independent scales.
func condensedRow(e *model.Entry, width int, st func(lipgloss.Style) lipgloss.Style) string {
	const gap = " "
	col := (width - 2) / 3
	if col < 6 {
		return truncLine(seg(st(memStyle), "mem", toFloats(e.Mem), width), width)
	}
	half := (col - 1) / 2
	mem := seg(st(memStyle), "mem", toFloats(e.Mem), col)
	cpu := seg(st(cpuStyle), "cpu", e.CPU, col)
	read := seg(st(readStyle), "r", toFloats(e.Read), half)
	write := seg(st(writeStyle), "w", toFloats(e.Write), width-2*(col+1)-(half+1))
	return mem + gap + cpu + gap + read + gap + write
}

func seg(style lipgloss.Style, label string, series []float64, width int) string {
	w := width - len(label) - 1
	if w < 1 {
		return style.Render(sparkline(series, width))
	}
	return style.Render(label+" ") + style.Render(sparkline(series, w))
}

// formatLived renders a duration the way the header shows it: 42s,
// 3m07s, 2h03m07s, 1d02h03m07s.
func formatLived(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd%02dh%02dm%02ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh%02dm%02ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// formatStart shows a bare clock time for entries younger than a day
// and adds the weekday and date beyond that.
func formatStart(start time.Time, lived time.Duration) string {
	if lived < 24*time.Hour {
		return start.Format("15:04")
	}
	return start.Format("Mon Jan 02 15:04")
}

// padBetween left-aligns left and right-aligns right within width.
func padBetween(left, right string, width int) string {
	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return truncLine(left+" "+right, width)
	}
	return left + strings.Repeat(" ", pad) + right
}

func truncLine(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

func last(vs []uint64) uint64 {
	if len(vs) == 0 {
		return 0
	}
	return vs[len(vs)-1]
}

func lastF(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	return vs[len(vs)-1]
}

func peak(vs []uint64) uint64 {
	var m uint64
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

func peakF(vs []float64) float64 {
	var m float64
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}
