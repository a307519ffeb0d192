package model

import (
	"strings"
	"time"
)

// Detail selects how much vertical space an entry's charts occupy.
type Detail int

const (
	Expanded Detail = iota
	Condensed
)

// ChartHeight is the number of chart rows below the header line.
func (d Detail) ChartHeight() int {
	if d == Condensed {
		return 1
	}
	return 3
}

// Height is the total rows an entry needs: one header line plus charts.
func (d Detail) Height() int { return 1 + d.ChartHeight() }

// Entry tracks one observed process instance and its metric history.
type Entry struct {
	PID   int32
	Name  string
	Query string
	Start time.Time

	// Samples, one per cycle while alive. Read and Write are cumulative
	// totals since process start, not deltas.
	Mem   []uint64
	CPU   []float64
	Read  []uint64
	Write []uint64

	Detail Detail

	diedAt time.Time
}

// NewEntry creates an alive, expanded entry. Start is estimated as the
// snapshot time minus the observed run time and is never recomputed.
func NewEntry(pid int32, name, query string, start time.Time) *Entry {
	return &Entry{
		PID:    pid,
		Name:   name,
		Query:  query,
		Start:  start,
		Detail: Expanded,
	}
}

// Alive reports whether the process was present in the latest snapshot.
func (e *Entry) Alive() bool { return e.diedAt.IsZero() }

// Die marks the entry dead as of now and condenses it. The first death
// time sticks; calling Die on a dead entry changes nothing.
func (e *Entry) Die(now time.Time) {
	if !e.Alive() {
		return
	}
	e.diedAt = now
	e.Detail = Condensed
}

// DiedAt returns the time of death, if any.
func (e *Entry) DiedAt() (time.Time, bool) {
	if e.Alive() {
		return time.Time{}, false
	}
	return e.diedAt, true
}

// Lived is the duration from start to now for a live entry, or from
// start to the time of death for a dead one.
func (e *Entry) Lived(now time.Time) time.Duration {
	if died, ok := e.DiedAt(); ok {
		return died.Sub(e.Start)
	}
	return now.Sub(e.Start)
}

// Append records one sample in each series.
func (e *Entry) Append(mem uint64, cpu float64, read, write uint64) {
	e.Mem = append(e.Mem, mem)
	e.CPU = append(e.CPU, cpu)
	e.Read = append(e.Read, read)
	e.Write = append(e.Write, write)
}

// Trim drops the oldest samples so no series exceeds n. A bound of zero
// or less leaves the series unbounded.
func (e *Entry) Trim(n int) {
	if n <= 0 || len(e.Mem) <= n {
		return
	}
	drop := len(e.Mem) - n
	e.Mem = e.Mem[drop:]
	e.CPU = e.CPU[drop:]
	e.Read = e.Read[drop:]
	e.Write = e.Write[drop:]
}

// Samples is the number of cycles recorded so far.
func (e *Entry) Samples() int { return len(e.Mem) }

// SplitMatch splits the name around the first occurrence of the query so
// the match can be highlighted. The sampler matches on a literal
// substring today, but if that ever changes the whole name is returned
// unmatched rather than panicking.
func (e *Entry) SplitMatch() (before, match, after string) {
	i := strings.Index(e.Name, e.Query)
	if i < 0 || e.Query == "" {
		return e.Name, "", ""
	}
	return e.Name[:i], e.Query, e.Name[i+len(e.Query):]
}
