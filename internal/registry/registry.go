package registry

import (
	"sort"
	"time"

	"github.com/mwestend/pswatch/internal/model"
	"github.com/mwestend/pswatch/internal/sampler"
)

// startSlack is how far apart two start estimates for the same PID may
// drift before we decide the PID was recycled for an unrelated process.
const startSlack = 2 * time.Second

type options struct {
	seriesCap int
}

// Option configures a Registry created by New.
type Option func(*options)

// WithSeriesCap bounds every entry's series to its most recent n
// samples. The default is unbounded, which means memory grows for as
// long as a watched process lives; long sessions may want a cap.
func WithSeriesCap(n int) Option {
	return func(o *options) {
		o.seriesCap = n
	}
}

// Registry owns the mapping from PID to tracked entry. It is not safe
// for concurrent use; a single owner applies snapshots and commands.
type Registry struct {
	entries   map[int32]*model.Entry
	seriesCap int
}

func New(opts ...Option) *Registry {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		entries:   make(map[int32]*model.Entry),
		seriesCap: o.seriesCap,
	}
}

// Apply folds one snapshot into the registry: a sample is appended for
// every matched process (creating entries for new PIDs), then every
// live entry whose PID was absent from the snapshot dies at the
// snapshot time. Entries that are already dead stay as they are.
func (r *Registry) Apply(snap sampler.Snapshot) {
	present := make(map[int32]bool, len(snap.Procs))
	for _, p := range snap.Procs {
		present[p.PID] = true
		start := snap.Taken.Add(-p.RunTime)

		e, ok := r.entries[p.PID]
		if ok && !e.Alive() {
			// The OS recycled this PID, or the collaborator briefly
			// dropped the process. Either way a dead entry never comes
			// back to life: start a fresh one, keeping the old start
			// estimate when it plainly is the same process.
			if e.Name == p.Name && absDuration(start.Sub(e.Start)) <= startSlack {
				start = e.Start
			}
			e = nil
			ok = false
		}
		if !ok {
			e = model.NewEntry(p.PID, p.Name, snap.Query, start)
			r.entries[p.PID] = e
		}

		e.Append(p.MemoryBytes, p.CPUFraction, p.DiskReadBytes, p.DiskWriteBytes)
		e.Trim(r.seriesCap)
	}

	for pid, e := range r.entries {
		if !present[pid] {
			e.Die(snap.Taken)
		}
	}
}

// Reset drops every entry. The next Apply rebuilds from scratch with
// fresh start estimates.
func (r *Registry) Reset() {
	clear(r.entries)
}

// SetDetailAll forces the detail mode on every entry, dead or alive.
func (r *Registry) SetDetailAll(d model.Detail) {
	for _, e := range r.entries {
		e.Detail = d
	}
}

// Entries returns the tracked entries in ascending PID order.
func (r *Registry) Entries() []*model.Entry {
	out := make([]*model.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out
}

// Len is the number of tracked entries, dead ones included.
func (r *Registry) Len() int { return len(r.entries) }

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
