package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResample(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		width  int
		want   []float64
	}{
		{
			name:   "empty series",
			series: nil,
			width:  5,
			want:   nil,
		},
		{
			name:   "zero width",
			series: []float64{1, 2},
			width:  0,
			want:   nil,
		},
		{
			name:   "shorter than width passes through",
			series: []float64{1, 2, 3},
			width:  5,
			want:   []float64{1, 2, 3},
		},
		{
			name:   "squeezes keeping endpoints",
			series: []float64{0, 1, 2, 3, 4},
			width:  3,
			want:   []float64{0, 2, 4},
		},
		{
			name:   "single column shows the newest sample",
			series: []float64{1, 2, 3},
			width:  1,
			want:   []float64{3},
		},
		{
			name:   "two columns keep both endpoints",
			series: []float64{1, 2, 3, 4, 5},
			width:  2,
			want:   []float64{1, 5},
		},
		{
			name:   "negative width",
			series: []float64{1, 2},
			width:  -1,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resample(tt.series, tt.width))
		})
	}
}

func TestSparkline(t *testing.T) {
	t.Run("scales against the series peak", func(t *testing.T) {
		got := sparkline([]float64{0, 10}, 2)
		assert.Equal(t, "▁█", got)
	})

	t.Run("pads until history fills the width", func(t *testing.T) {
		got := sparkline([]float64{5}, 3)
		assert.Equal(t, "█  ", got)
	})

	t.Run("all-zero series stays on the floor", func(t *testing.T) {
		got := sparkline([]float64{0, 0, 0}, 3)
		assert.Equal(t, "▁▁▁", got)
	})

	t.Run("empty series renders blank", func(t *testing.T) {
		got := sparkline(nil, 4)
		assert.Equal(t, "    ", got)
	})

	t.Run("long history survives tiny widths", func(t *testing.T) {
		series := []float64{1, 2, 3, 4, 5}
		for width := 0; width <= 3; width++ {
			got := sparkline(series, width)
			assert.Len(t, []rune(got), width, "width=%d", width)
		}
	})
}

func TestSparkLevel(t *testing.T) {
	assert.Equal(t, 0, sparkLevel(0, 100))
	assert.Equal(t, 0, sparkLevel(5, 0), "zero max never divides")
	assert.Equal(t, 7, sparkLevel(100, 100))
	assert.Equal(t, 3, sparkLevel(50, 100))
}
