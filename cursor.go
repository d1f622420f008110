package casetrail

// Cursor tracks the current offset within a filtered view. The offset is
// always within [0, len(view)-1] while the view is non-empty, and 0 while it
// is empty. Movement past either boundary clamps rather than erroring.
type Cursor struct {
	view   View
	offset int
}

// NewCursor creates a cursor positioned at the start of the given view.
func NewCursor(view View) *Cursor {
	return &Cursor{view: view}
}

// Len returns the number of records in the current view.
func (c *Cursor) Len() int { return len(c.view) }

// Empty reports whether the current view has no records.
func (c *Cursor) Empty() bool { return len(c.view) == 0 }

// Offset returns the current offset within the view (0 when empty).
func (c *Cursor) Offset() int { return c.offset }

// View returns a copy of the current view.
func (c *Cursor) View() View {
	out := make(View, len(c.view))
	copy(out, c.view)
	return out
}

// Absolute returns the absolute store position of the current record, or
// ErrEmptyView when the view has no records.
func (c *Cursor) Absolute() (int, error) {
	if len(c.view) == 0 {
		return 0, ErrEmptyView
	}
	return c.view[c.offset], nil
}

// Move shifts the cursor by delta, clamped to the view bounds, and returns
// the new offset. Moving past either end is a no-op at the boundary; callers
// are expected to disable boundary controls, but invoking anyway is safe.
func (c *Cursor) Move(delta int) int {
	c.offset = clamp(c.offset+delta, 0, len(c.view)-1)
	return c.offset
}

// Jump sets the cursor directly to the given view offset.
func (c *Cursor) Jump(offset int) error {
	if offset < 0 || offset >= len(c.view) {
		return ErrOutOfRange
	}
	c.offset = offset
	return nil
}

// Reconcile repositions the cursor against a replacement view, invoked after
// any filter or record change. If the record the cursor pointed at is still a
// member of the new view, the cursor follows it to its new offset; a plain
// offset clamp would silently land on a different record. Otherwise the
// offset clamps to min(old offset, len(new)-1), or to 0 for an empty view.
func (c *Cursor) Reconcile(newView View) {
	oldAbsolute, err := c.Absolute()
	c.view = newView

	if err == nil {
		if idx := newView.IndexOf(oldAbsolute); idx >= 0 {
			c.offset = idx
			return
		}
	}
	c.offset = clamp(c.offset, 0, len(newView)-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
