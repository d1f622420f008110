package casetrail

// Draft is a transient, uncommitted copy of one record's field values, bound
// to the absolute position it was opened against. It is discarded on
// navigation without commit; there is no autosave.
type Draft struct {
	position int
	recordID string
	values   Record
}

// NewDraft copies a record's current values into an editable draft bound to
// the given absolute position.
func NewDraft(position int, rec Record) *Draft {
	return &Draft{
		position: position,
		recordID: rec.ID(),
		values:   rec.Clone(),
	}
}

// Position returns the absolute store position the draft was opened against.
func (d *Draft) Position() int { return d.position }

// RecordID returns the external identifier of the drafted record.
func (d *Draft) RecordID() string { return d.recordID }

// Get returns the draft value for a field.
func (d *Draft) Get(field Field) string {
	return d.values[field]
}

// Set updates a draft field value. Date values are canonicalized to ISO form
// when parseable, so a formatted date and its ISO rendering compare equal at
// commit time.
func (d *Draft) Set(field Field, value string) error {
	if !field.IsValid() {
		return ErrUnknownField
	}
	if field == FieldLastTestDate {
		value = NormalizeDate(value)
	}
	d.values[field] = value
	return nil
}

// Values returns a copy of the draft's current field values.
func (d *Draft) Values() Record {
	return d.values.Clone()
}

// Diff computes the field deltas between a stored record and a draft, in
// canonical field order. Pure: no store or log is touched.
func Diff(stored Record, draft Record) ChangeSet {
	var cs ChangeSet
	for _, f := range Fields() {
		if stored[f] == draft[f] {
			continue
		}
		cs = append(cs, FieldChange{Field: f, OldValue: stored[f], NewValue: draft[f]})
	}
	return cs
}

// ApplyChangeSet writes a change set's new values to the store at the given
// absolute position. Separate from Diff so diffing stays testable without
// side effects.
func ApplyChangeSet(s *Store, position int, cs ChangeSet) error {
	for _, c := range cs {
		if err := s.SetField(position, c.Field, c.NewValue); err != nil {
			return err
		}
	}
	return nil
}
