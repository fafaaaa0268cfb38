// Package prof collects labeled wall-clock timings for the analysis binary.
package prof

import (
	"sync"
	"time"
)

// Entry is a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start under the given label. Call it with a
// defer: defer prof.Track(time.Now(), "eval-1024").
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected entries and clears the record.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// ByLabel groups entry durations, preserving first-seen label order.
func ByLabel(entries []Entry) (labels []string, durs map[string][]time.Duration) {
	durs = make(map[string][]time.Duration)
	for _, e := range entries {
		if _, ok := durs[e.Label]; !ok {
			labels = append(labels, e.Label)
		}
		durs[e.Label] = append(durs[e.Label], e.Dur)
	}
	return labels, durs
}
