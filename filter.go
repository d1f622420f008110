package casetrail

// Unconstrained is the presentation label for an unconstrained filter value.
// The core treats both the empty string and this label as "no constraint".
const Unconstrained = "All"

// Predicate filters the record set by Category and Status. Matching is exact
// string equality against current field values; it is not case-folded and not
// live-reactive (callers re-apply after mutations).
type Predicate struct {
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
}

func constrains(value string) bool {
	return value != "" && value != Unconstrained
}

// IsZero reports whether the predicate places no constraint at all.
func (p Predicate) IsZero() bool {
	return !constrains(p.Category) && !constrains(p.Status)
}

// Matches reports whether a record satisfies the predicate.
func (p Predicate) Matches(rec Record) bool {
	if constrains(p.Category) && rec[FieldCategory] != p.Category {
		return false
	}
	if constrains(p.Status) && rec[FieldStatus] != p.Status {
		return false
	}
	return true
}

// View is an ordered sequence of absolute store positions, ascending,
// matching a predicate at the time it was computed.
type View []int

// Absolute maps a view offset to an absolute store position.
func (v View) Absolute(offset int) (int, error) {
	if offset < 0 || offset >= len(v) {
		return 0, ErrOutOfRange
	}
	return v[offset], nil
}

// IndexOf returns the view offset holding the given absolute position, or -1.
func (v View) IndexOf(position int) int {
	for i, p := range v {
		if p == position {
			return i
		}
	}
	return -1
}

// ApplyFilter computes the filtered view: a single pass over the store in
// absolute order, keeping positions whose record matches the predicate.
// Deterministic: the same store state and predicate always yield the same view.
func ApplyFilter(s *Store, p Predicate) View {
	records := s.Records()
	view := make(View, 0, len(records))
	for i, rec := range records {
		if p.Matches(rec) {
			view = append(view, i)
		}
	}
	return view
}

// FilterOptions enumerates the selectable values for a filter field: the
// unconstrained label followed by the distinct non-empty field values present
// in the store, sorted ascending.
func FilterOptions(s *Store, field Field) []string {
	return append([]string{Unconstrained}, s.DistinctValues(field)...)
}
