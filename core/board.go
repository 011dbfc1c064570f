package core

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Entry is a single message board record. Entries are immutable once posted.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Agent     string    `json:"agent"`
	Content   string    `json:"content"`
	Payload   any       `json:"payload,omitempty"`
}

// Board is the append-only shared event log visible to all agents and the
// presentation layer. Insertion order is the only ordering guarantee; entries
// are never mutated or removed, so its length only grows.
//
// Downstream consumers use it two ways: incremental display via Snapshot, and
// conversational context via History.
type Board struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewBoard constructs an empty message board.
func NewBoard() *Board { return &Board{} }

// Post appends an entry stamped with the current time.
func (b *Board) Post(agent, content string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, Entry{
		Timestamp: time.Now(),
		Agent:     agent,
		Content:   content,
		Payload:   payload,
	})
}

// Postf appends a formatted entry without payload.
func (b *Board) Postf(agent, format string, args ...any) {
	b.Post(agent, fmt.Sprintf(format, args...), nil)
}

// Len returns the current number of entries.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Snapshot returns a copy of the entries starting at index from.
// Snapshot(0) returns the whole log; callers tracking a cursor use it for
// incremental consumption without re-reading displayed entries. An out of
// range index yields an empty slice.
func (b *Board) Snapshot(from int) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if from < 0 {
		from = 0
	}
	if from >= len(b.entries) {
		return nil
	}
	entries := make([]Entry, len(b.entries)-from)
	copy(entries, b.entries[from:])
	return entries
}

// History renders the full board as conversational context: one
// "{agent}: {content}" line per entry in insertion order. This exact join is
// what model-driven coordinators and persona participants receive.
func (b *Board) History() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var sb strings.Builder
	for i, e := range b.entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Agent)
		sb.WriteString(": ")
		sb.WriteString(e.Content)
	}
	return sb.String()
}
