package calclog

import (
	"log/slog"
	"sync"
	"time"
)

// Entry is one recorded calculation step.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Step      string         `json:"step"`
	Data      map[string]any `json:"data"`
}

// Buffer is a bounded, thread-safe collector of calculation steps. It
// implements the astro.Recorder interface and backs the get-logs and
// clear-logs endpoints. When full, the oldest entries are dropped so a
// forgotten clear call can never grow the process without bound.
type Buffer struct {
	mu      sync.RWMutex
	entries []Entry
	max     int
}

// DefaultMaxEntries bounds the buffer when no size is configured.
const DefaultMaxEntries = 1000

// NewBuffer creates a buffer retaining at most max entries; max <= 0
// falls back to DefaultMaxEntries.
func NewBuffer(max int) *Buffer {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Buffer{
		entries: make([]Entry, 0, max),
		max:     max,
	}
}

// Record appends a calculation step and mirrors it to the structured log.
func (b *Buffer) Record(step string, data map[string]any) {
	entry := Entry{
		Timestamp: time.Now(),
		Step:      step,
		Data:      data,
	}

	b.mu.Lock()
	if len(b.entries) >= b.max {
		drop := len(b.entries) - b.max + 1
		b.entries = b.entries[drop:]
	}
	b.entries = append(b.entries, entry)
	b.mu.Unlock()

	slog.Info("Calculation step", "step", step, "data", data)
}

// Snapshot returns a copy of the current entries, oldest first.
func (b *Buffer) Snapshot() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Clear discards all entries.
func (b *Buffer) Clear() {
	b.mu.Lock()
	b.entries = b.entries[:0]
	b.mu.Unlock()
}

// Len reports the number of retained entries.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
