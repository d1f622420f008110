package casetrail

import (
	"sort"
	"sync"
)

type changeKey struct {
	recordID string
	field    Field
}

// ChangeLog is the ledger of committed field mutations. It holds the latest
// delta per (record, field) key: a second change to the same field overwrites
// the earlier entry in place, so insertion order is preserved while history
// is not. Full per-field history is a documented non-feature, not an
// oversight.
type ChangeLog struct {
	mu      sync.Mutex
	entries []ChangeEntry
	index   map[changeKey]int
}

// NewChangeLog creates an empty change log.
func NewChangeLog() *ChangeLog {
	return &ChangeLog{index: make(map[changeKey]int)}
}

// Record upserts a change entry keyed by (record ID, field). An entry for an
// already-logged key replaces the prior one at its original position.
func (l *ChangeLog) Record(entry ChangeEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := changeKey{recordID: entry.RecordID, field: entry.Field}
	if i, ok := l.index[key]; ok {
		l.entries[i] = entry
		return
	}
	l.index[key] = len(l.entries)
	l.entries = append(l.entries, entry)
}

// Count returns the number of distinct (record, field) keys logged.
func (l *ChangeLog) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of all entries in insertion order.
func (l *ChangeLog) Entries() []ChangeEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]ChangeEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Summary groups entries by record ID, each group in insertion order.
func (l *ChangeLog) Summary() map[string][]ChangeEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string][]ChangeEntry)
	for _, e := range l.entries {
		out[e.RecordID] = append(out[e.RecordID], e)
	}
	return out
}

// AffectedRecords returns the distinct record IDs with at least one logged
// change, sorted ascending.
func (l *ChangeLog) AffectedRecords() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]struct{})
	var ids []string
	for _, e := range l.entries {
		if _, ok := seen[e.RecordID]; ok {
			continue
		}
		seen[e.RecordID] = struct{}{}
		ids = append(ids, e.RecordID)
	}
	sort.Strings(ids)
	return ids
}

// Reset discards all entries. Invoked only on a fresh load.
func (l *ChangeLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	l.index = make(map[changeKey]int)
}
