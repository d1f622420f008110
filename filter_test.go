package casetrail

import (
	"sort"
	"testing"
)

func TestApplyFilter_UnconstrainedIncludesEverything(t *testing.T) {
	s := NewStore(testRows(t,
		[3]string{"TC001", "Login", "Pending"},
		[3]string{"TC002", "Nav", "Passed"},
		[3]string{"TC003", "Login", "Failed"},
	))

	for _, p := range []Predicate{{}, {Category: Unconstrained, Status: Unconstrained}} {
		view := ApplyFilter(s, p)
		if len(view) != 3 {
			t.Errorf("ApplyFilter(%+v) returned %d positions, want 3", p, len(view))
		}
	}
}

func TestApplyFilter_CategoryAndStatusAreConjunctive(t *testing.T) {
	s := NewStore(testRows(t,
		[3]string{"TC001", "Login", "Passed"},
		[3]string{"TC002", "Login", "Failed"},
		[3]string{"TC003", "Nav", "Passed"},
	))

	view := ApplyFilter(s, Predicate{Category: "Login", Status: "Passed"})
	if len(view) != 1 || view[0] != 0 {
		t.Errorf("view = %v, want [0]", view)
	}
}

func TestApplyFilter_ExactMatchNotCaseFolded(t *testing.T) {
	s := NewStore(testRows(t, [3]string{"TC001", "Login", "Passed"}))

	if view := ApplyFilter(s, Predicate{Status: "passed"}); len(view) != 0 {
		t.Errorf("lowercase predicate matched %v; matching must be exact", view)
	}
}

func TestApplyFilter_PreservesAbsoluteOrder(t *testing.T) {
	s := NewStore(testRows(t,
		[3]string{"TC001", "A", "Passed"},
		[3]string{"TC002", "B", "Passed"},
		[3]string{"TC003", "A", "Passed"},
		[3]string{"TC004", "A", "Failed"},
		[3]string{"TC005", "A", "Passed"},
	))

	view := ApplyFilter(s, Predicate{Category: "A", Status: "Passed"})
	if !sort.IntsAreSorted(view) {
		t.Errorf("view %v is not in ascending absolute order", view)
	}
	want := View{0, 2, 4}
	if len(view) != len(want) {
		t.Fatalf("view = %v, want %v", view, want)
	}
	for i := range want {
		if view[i] != want[i] {
			t.Errorf("view[%d] = %d, want %d", i, view[i], want[i])
		}
	}
}

func TestApplyFilter_MatchesCurrentValuesNotBaseline(t *testing.T) {
	s := NewStore(testRows(t, [3]string{"TC001", "Login", "Pending"}))

	if err := s.SetField(0, FieldStatus, "Passed"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if view := ApplyFilter(s, Predicate{Status: "Passed"}); len(view) != 1 {
		t.Error("filter did not see the mutated value; must match live state")
	}
	if view := ApplyFilter(s, Predicate{Status: "Pending"}); len(view) != 0 {
		t.Error("filter matched the stale baseline value")
	}
}

func TestApplyFilter_Deterministic(t *testing.T) {
	s := NewStore(testRows(t,
		[3]string{"TC001", "A", "Passed"},
		[3]string{"TC002", "B", "Passed"},
		[3]string{"TC003", "A", "Failed"},
	))
	p := Predicate{Category: "A"}

	first := ApplyFilter(s, p)
	for i := 0; i < 5; i++ {
		again := ApplyFilter(s, p)
		if len(again) != len(first) {
			t.Fatalf("run %d: view length %d, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: view %v, want %v", i, again, first)
			}
		}
	}
}

func TestView_Absolute(t *testing.T) {
	view := View{1, 3, 4}

	pos, err := view.Absolute(1)
	if err != nil || pos != 3 {
		t.Errorf("Absolute(1) = (%d, %v), want (3, nil)", pos, err)
	}
	if _, err := view.Absolute(3); err != ErrOutOfRange {
		t.Errorf("Absolute(3) = %v, want ErrOutOfRange", err)
	}
	if _, err := view.Absolute(-1); err != ErrOutOfRange {
		t.Errorf("Absolute(-1) = %v, want ErrOutOfRange", err)
	}
}

func TestView_IndexOf(t *testing.T) {
	view := View{1, 3, 4}

	if got := view.IndexOf(4); got != 2 {
		t.Errorf("IndexOf(4) = %d, want 2", got)
	}
	if got := view.IndexOf(2); got != -1 {
		t.Errorf("IndexOf(2) = %d, want -1", got)
	}
}

func TestFilterOptions_AllPrefixThenSortedDistinct(t *testing.T) {
	s := NewStore(testRows(t,
		[3]string{"TC001", "Nav", "Pending"},
		[3]string{"TC002", "Login", "Passed"},
		[3]string{"TC003", "Nav", "needs retest"},
	))

	got := FilterOptions(s, FieldStatus)
	want := []string{"All", "Passed", "Pending", "needs retest"}
	if len(got) != len(want) {
		t.Fatalf("FilterOptions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilterOptions[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
