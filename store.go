package casetrail

import (
	"sort"
	"sync"
)

// Store holds the full ordered record set for one session, plus the pristine
// baseline taken at load time. Absolute positions are stable for the lifetime
// of the store: records are never inserted, removed, or reordered after load.
// Only field values change, and only through SetField.
type Store struct {
	mu       sync.RWMutex
	records  []Record
	baseline []Record
}

// NewStore normalizes raw input rows into a record set and snapshots the
// baseline. Missing canonical fields default to empty string, unrecognized
// input fields are dropped, and LastTestDate values are canonicalized to ISO
// form when parseable.
func NewStore(rows []Row) *Store {
	records := make([]Record, len(rows))
	baseline := make([]Record, len(rows))
	for i, row := range rows {
		rec := normalizeRow(row)
		records[i] = rec
		baseline[i] = rec.Clone()
	}
	return &Store{records: records, baseline: baseline}
}

func normalizeRow(row Row) Record {
	rec := make(Record, len(Fields()))
	for _, f := range Fields() {
		rec[f] = row[string(f)]
	}
	rec[FieldLastTestDate] = NormalizeDate(rec[FieldLastTestDate])
	return rec
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get returns a copy of the record at the given absolute position.
func (s *Store) Get(position int) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if position < 0 || position >= len(s.records) {
		return nil, ErrOutOfRange
	}
	return s.records[position].Clone(), nil
}

// Baseline returns a copy of the pristine (as-loaded) record at the given
// absolute position.
func (s *Store) Baseline(position int) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if position < 0 || position >= len(s.baseline) {
		return nil, ErrOutOfRange
	}
	return s.baseline[position].Clone(), nil
}

// SetField mutates one field of the record at the given absolute position.
// No validation beyond field-name membership is applied; Status and date
// values are stored as given (dates are canonicalized at the load and draft
// boundaries, not here).
func (s *Store) SetField(position int, field Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if position < 0 || position >= len(s.records) {
		return ErrOutOfRange
	}
	if !field.IsValid() {
		return ErrUnknownField
	}
	s.records[position][field] = value
	return nil
}

// FieldAt returns one field value at the given absolute position.
func (s *Store) FieldAt(position int, field Field) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if position < 0 || position >= len(s.records) {
		return "", ErrOutOfRange
	}
	if !field.IsValid() {
		return "", ErrUnknownField
	}
	return s.records[position][field], nil
}

// Records returns copies of all records in absolute order.
func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out
}

// Rows returns the live record set as value rows in canonical field order,
// one slice per record, for export.
func (s *Store) Rows() [][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields := Fields()
	out := make([][]string, len(s.records))
	for i, rec := range s.records {
		row := make([]string, len(fields))
		for j, f := range fields {
			row[j] = rec[f]
		}
		out[i] = row
	}
	return out
}

// DistinctValues returns the distinct non-empty values of a field across the
// store, sorted ascending by Unicode code point. Used to enumerate filter
// options.
func (s *Store) DistinctValues(field Field) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var values []string
	for _, rec := range s.records {
		v := rec[field]
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Stats summarizes the live record set. ChangeCount is filled in by the
// session, which owns the change log.
func (s *Store) Stats() StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := StoreStats{
		RecordCount: len(s.records),
		ByStatus:    make(map[string]int),
		ByCategory:  make(map[string]int),
	}
	for _, rec := range s.records {
		stats.ByStatus[rec[FieldStatus]]++
		stats.ByCategory[rec[FieldCategory]]++
	}
	return stats
}
