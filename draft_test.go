package casetrail

import (
	"errors"
	"testing"
)

func TestDraft_IsIndependentCopy(t *testing.T) {
	rec := Record{FieldID: "TC001", FieldStatus: "Pending"}
	d := NewDraft(0, rec)

	if err := d.Set(FieldStatus, "Passed"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if rec[FieldStatus] != "Pending" {
		t.Error("editing the draft mutated the source record")
	}
	if d.Get(FieldStatus) != "Passed" {
		t.Errorf("Get(Status) = %q, want Passed", d.Get(FieldStatus))
	}
}

func TestDraft_Set_UnknownField(t *testing.T) {
	d := NewDraft(0, Record{FieldID: "TC001"})

	if err := d.Set(Field("Owner"), "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set(Owner) = %v, want ErrUnknownField", err)
	}
}

func TestDraft_Set_NormalizesDates(t *testing.T) {
	d := NewDraft(0, Record{FieldID: "TC001"})

	if err := d.Set(FieldLastTestDate, "2026/08/30"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := d.Get(FieldLastTestDate); got != "2026-08-30" {
		t.Errorf("LastTestDate = %q, want 2026-08-30", got)
	}
}

func TestDiff_EmptyForIdenticalRecords(t *testing.T) {
	rec := Record{FieldID: "TC001", FieldStatus: "Pending", FieldNotes: "n"}

	if cs := Diff(rec, rec.Clone()); len(cs) != 0 {
		t.Errorf("Diff of identical records = %v, want empty", cs)
	}
}

func TestDiff_ReportsChangedFieldsInCanonicalOrder(t *testing.T) {
	stored := Record{FieldID: "TC001", FieldCategory: "Login", FieldStatus: "Pending"}
	draft := stored.Clone()
	draft[FieldStatus] = "Passed"
	draft[FieldCategory] = "Auth"

	cs := Diff(stored, draft)
	if len(cs) != 2 {
		t.Fatalf("Diff reported %d changes, want 2", len(cs))
	}
	// Category precedes Status in canonical order regardless of edit order.
	if cs[0].Field != FieldCategory || cs[1].Field != FieldStatus {
		t.Errorf("change order = %v, %v; want Category, Status", cs[0].Field, cs[1].Field)
	}
	if cs[0].OldValue != "Login" || cs[0].NewValue != "Auth" {
		t.Errorf("Category change = %+v, want Login → Auth", cs[0])
	}
}

func TestDiff_TreatsDateAndISOStringAsEqual(t *testing.T) {
	stored := Record{FieldID: "TC001", FieldLastTestDate: "2026-08-30"}
	d := NewDraft(0, stored)
	if err := d.Set(FieldLastTestDate, "2026/08/30"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if cs := Diff(stored, d.Values()); len(cs) != 0 {
		t.Errorf("Diff = %v, want empty: equivalent date renderings must compare equal", cs)
	}
}

func TestApplyChangeSet_WritesOnlyListedFields(t *testing.T) {
	s := NewStore(testRows(t, [3]string{"TC001", "Login", "Pending"}))

	cs := ChangeSet{{Field: FieldStatus, OldValue: "Pending", NewValue: "Passed"}}
	if err := ApplyChangeSet(s, 0, cs); err != nil {
		t.Fatalf("ApplyChangeSet failed: %v", err)
	}

	status, _ := s.FieldAt(0, FieldStatus)
	if status != "Passed" {
		t.Errorf("Status = %q, want Passed", status)
	}
	category, _ := s.FieldAt(0, FieldCategory)
	if category != "Login" {
		t.Errorf("Category = %q, want Login untouched", category)
	}
}

func TestApplyChangeSet_OutOfRange(t *testing.T) {
	s := NewStore(testRows(t, [3]string{"TC001", "Login", "Pending"}))

	cs := ChangeSet{{Field: FieldStatus, NewValue: "Passed"}}
	if err := ApplyChangeSet(s, 9, cs); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ApplyChangeSet(9) = %v, want ErrOutOfRange", err)
	}
}
