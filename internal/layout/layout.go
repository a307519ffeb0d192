// Package layout decides which entries fit a frame and where.
package layout

import "github.com/mwestend/pswatch/internal/model"

// Region is a contiguous band of rows assigned to one entry.
type Region struct {
	Y      int
	Height int
	Entry  *model.Entry
}

// Plan partitions height rows over a prefix of entries, in order. Each
// entry needs 1+ChartHeight rows and is either shown whole or not at
// all; the prefix stops at the first entry that would overflow. There
// is no scrolling, so everything past the prefix is simply off-frame
// this cycle. Pure function of its inputs.
func Plan(entries []*model.Entry, height int) []Region {
	var regions []Region
	y := 0
	for _, e := range entries {
		h := e.Detail.Height()
		if y+h > height {
			break
		}
		regions = append(regions, Region{Y: y, Height: h, Entry: e})
		y += h
	}
	return regions
}
