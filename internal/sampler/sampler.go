package sampler

import (
	"context"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// DefaultInterval matches the original poll cadence of roughly five
// snapshots per second.
const DefaultInterval = 200 * time.Millisecond

// Proc is one matched process as observed at a single snapshot.
type Proc struct {
	PID     int32
	Name    string
	RunTime time.Duration

	MemoryBytes uint64
	// CPUFraction is normalized to 0..1 and measured over the window
	// since this process was last sampled, not a fixed width.
	CPUFraction float64
	// Cumulative totals since process start.
	DiskReadBytes  uint64
	DiskWriteBytes uint64
}

// Snapshot is the set of live processes matching the query at one instant.
type Snapshot struct {
	Taken time.Time
	Query string
	Procs []Proc
}

// Sampler enumerates live processes whose name contains the query.
// Matching is a literal, case-sensitive substring on the name the OS
// reports; downstream highlighting relies on that.
type Sampler struct {
	Query    string
	Interval time.Duration

	// Cached handles so CPUPercent measures the inter-snapshot window.
	handles map[int32]*process.Process
}

func New(query string, interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sampler{
		Query:    query,
		Interval: interval,
		handles:  make(map[int32]*process.Process),
	}
}

// Snap takes one snapshot. Processes that disappear or deny access
// mid-enumeration are skipped; they simply don't appear this cycle.
func (s *Sampler) Snap() Snapshot {
	now := time.Now()
	snap := Snapshot{Taken: now, Query: s.Query}

	procs, err := process.Processes()
	if err != nil {
		return snap
	}

	seen := make(map[int32]bool, len(s.handles))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil || name == "" || !strings.Contains(name, s.Query) {
			continue
		}

		h, ok := s.handles[p.Pid]
		if !ok {
			h = p
			s.handles[p.Pid] = h
		}
		seen[p.Pid] = true

		created, err := h.CreateTime()
		if err != nil {
			continue
		}
		runTime := now.Sub(time.UnixMilli(created))
		if runTime < 0 {
			runTime = 0
		}

		var memBytes uint64
		if mi, err := h.MemoryInfo(); err == nil && mi != nil {
			memBytes = mi.RSS
		}

		cpuPct, _ := h.CPUPercent()

		var readBytes, writeBytes uint64
		if io, err := h.IOCounters(); err == nil && io != nil {
			readBytes = io.ReadBytes
			writeBytes = io.WriteBytes
		}

		snap.Procs = append(snap.Procs, Proc{
			PID:            p.Pid,
			Name:           name,
			RunTime:        runTime,
			MemoryBytes:    memBytes,
			CPUFraction:    cpuPct / 100,
			DiskReadBytes:  readBytes,
			DiskWriteBytes: writeBytes,
		})
	}

	// Prune handles for processes no longer matching so a recycled PID
	// doesn't inherit a stale CPU window.
	for pid := range s.handles {
		if !seen[pid] {
			delete(s.handles, pid)
		}
	}

	return snap
}

// Stream emits snapshots on a fixed ticker until ctx is done. Sampling
// on its own cadence keeps the CPU measurement window near-uniform no
// matter how long rendering or input handling takes.
func (s *Sampler) Stream(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot)
	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case <-ticker.C:
				select {
				case ch <- s.Snap():
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
