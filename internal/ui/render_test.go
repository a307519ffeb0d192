package ui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwestend/pswatch/internal/model"
)

func TestFormatLived(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"seconds only", 42 * time.Second, "42s"},
		{"minutes", 3*time.Minute + 7*time.Second, "3m07s"},
		{"hours", 2*time.Hour + 3*time.Minute + 7*time.Second, "2h03m07s"},
		{"days", 26*time.Hour + 3*time.Minute + 7*time.Second, "1d02h03m07s"},
		{"zero", 0, "0s"},
		{"negative clamps to zero", -time.Second, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatLived(tt.d))
		})
	}
}

func TestFormatStart(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "09:30", formatStart(start, time.Hour))
	assert.Equal(t, "Mon Jun 02 09:30", formatStart(start, 25*time.Hour))
}

func TestRenderEntryHeights(t *testing.T) {
	now := time.Now()
	e := model.NewEntry(42, "bash", "sh", now.Add(-time.Minute))
	e.Append(1<<20, 0.5, 100, 200)

	lines := renderEntry(e, 60, now)
	assert.Len(t, lines, model.Expanded.Height(), "expanded entry fills its region")

	e.Detail = model.Condensed
	lines = renderEntry(e, 60, now)
	assert.Len(t, lines, model.Condensed.Height(), "condensed entry fills its region")
}

func TestRenderEntryHeader(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := model.NewEntry(42, "bash", "sh", now.Add(-90*time.Second))
	e.Append(1<<20, 0.5, 100, 200)

	lines := renderEntry(e, 60, now)
	require.NotEmpty(t, lines)
	header := lines[0]
	assert.Contains(t, header, "bash")
	assert.Contains(t, header, "42")
	assert.Contains(t, header, "1m30s")
	assert.LessOrEqual(t, lipgloss.Width(header), 60)
}

func TestRenderEntryChartRows(t *testing.T) {
	now := time.Now()
	e := model.NewEntry(42, "bash", "sh", now.Add(-time.Minute))
	for i := 0; i < 10; i++ {
		e.Append(uint64(i)<<20, float64(i)/10, uint64(i*100), uint64(i*50))
	}

	lines := renderEntry(e, 80, now)
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "mem")
	assert.Contains(t, lines[1], "peak")
	assert.Contains(t, lines[2], "cpu")
	assert.Contains(t, lines[3], "read")
	assert.Contains(t, lines[3], "wrote")
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestRenderEntrySurvivesNarrowWindows(t *testing.T) {
	// Dead entries are forced Condensed, so shrinking the window puts
	// long histories through one-column chart segments. That must
	// degrade, never crash.
	now := time.Now()
	e := model.NewEntry(42, "bash", "sh", now.Add(-time.Minute))
	for i := 0; i < 5; i++ {
		e.Append(uint64(i)<<20, float64(i)/10, uint64(i*100), uint64(i*50))
	}
	e.Die(now)
	require.Equal(t, model.Condensed, e.Detail)

	for width := 1; width <= 30; width++ {
		lines := renderEntry(e, width, now)
		assert.Len(t, lines, model.Condensed.Height(), "width=%d", width)
	}
}
