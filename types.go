package casetrail

import "time"

// Field names one of the fixed columns of a test-case record.
type Field string

// Canonical fields, in interchange order.
const (
	FieldID              Field = "ID"
	FieldCategory        Field = "Category"
	FieldTestCase        Field = "TestCase"
	FieldDescription     Field = "Description"
	FieldInput           Field = "Input"
	FieldExpectedOutcome Field = "ExpectedOutcome"
	FieldEnvironment     Field = "Environment"
	FieldObservedOutcome Field = "ObservedOutcome"
	FieldStatus          Field = "Status"
	FieldLastTestDate    Field = "LastTestDate"
	FieldNotes           Field = "Notes"
)

// Fields returns the canonical field set in interchange order.
func Fields() []Field {
	return []Field{
		FieldID,
		FieldCategory,
		FieldTestCase,
		FieldDescription,
		FieldInput,
		FieldExpectedOutcome,
		FieldEnvironment,
		FieldObservedOutcome,
		FieldStatus,
		FieldLastTestDate,
		FieldNotes,
	}
}

// IsValid checks if the field is one of the canonical fields.
func (f Field) IsValid() bool {
	for _, valid := range Fields() {
		if f == valid {
			return true
		}
	}
	return false
}

// Canonical status values. Status is stored as free text: values outside this
// set are preserved verbatim and remain selectable.
const (
	StatusPending = "Pending"
	StatusPassed  = "Passed"
	StatusFailed  = "Failed"
	StatusBlocked = "Blocked"
)

// StatusOptions returns the canonical status values.
func StatusOptions() []string {
	return []string{StatusPending, StatusPassed, StatusFailed, StatusBlocked}
}

// SelectableStatuses returns the canonical status values, appending current
// when it is non-empty and outside the canonical set. Input files may carry
// arbitrary status text; the current value must stay offerable.
func SelectableStatuses(current string) []string {
	options := StatusOptions()
	if current == "" {
		return options
	}
	for _, opt := range options {
		if opt == current {
			return options
		}
	}
	return append(options, current)
}

// Record holds one test case as field → value text. All values are strings;
// LastTestDate is an ISO date string or empty.
type Record map[Field]string

// Get returns the value for a field, empty string if unset.
func (r Record) Get(f Field) string {
	return r[f]
}

// ID returns the record's external identifier.
func (r Record) ID() string {
	return r[FieldID]
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for f, v := range r {
		out[f] = v
	}
	return out
}

// Equal reports whether two records hold the same value for every canonical field.
func (r Record) Equal(other Record) bool {
	for _, f := range Fields() {
		if r[f] != other[f] {
			return false
		}
	}
	return true
}

// Row is one raw input row as delivered by the Loader: header name → value.
// Field names are not yet canonicalized.
type Row map[string]string

// ChangeEntry is the latest recorded delta for one (record, field) pair.
type ChangeEntry struct {
	RecordID  string    `json:"record_id"`
	Field     Field     `json:"field"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	Source    string    `json:"source,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// FieldChange is one field delta inside a ChangeSet.
type FieldChange struct {
	Field    Field  `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// ChangeSet is the ordered list of field deltas between a stored record and a
// draft, in canonical field order.
type ChangeSet []FieldChange

// FieldNames returns the changed field names in canonical order.
func (cs ChangeSet) FieldNames() []Field {
	names := make([]Field, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Field)
	}
	return names
}

// CommitResult summarizes a commit.
type CommitResult struct {
	Applied  bool      `json:"applied"`
	Position int       `json:"position"`
	RecordID string    `json:"record_id"`
	Changed  ChangeSet `json:"changed,omitempty"`
}

// StoreStats summarizes the loaded record set.
type StoreStats struct {
	RecordCount int            `json:"record_count"`
	ByStatus    map[string]int `json:"by_status"`
	ByCategory  map[string]int `json:"by_category"`
	ChangeCount int            `json:"change_count"`
}
