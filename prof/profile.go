package prof

import (
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

// Stat aggregates the measurements recorded under one label.
type Stat struct {
	Count int
	Total time.Duration
	Max   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start under the given label. Intended
// for use as `defer prof.Track(time.Now(), "ntru.Encrypt")`.
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Summary folds the currently recorded entries into per-label stats
// without clearing them.
func Summary() map[string]Stat {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Stat)
	for _, e := range record {
		s := out[e.Label]
		s.Count++
		s.Total += e.Dur
		if e.Dur > s.Max {
			s.Max = e.Dur
		}
		out[e.Label] = s
	}
	return out
}
