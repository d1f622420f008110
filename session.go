package casetrail

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Session is the single owning context for one editing session: the record
// store, the change log, the navigation cursor, and the active filter
// predicate. Exactly one interaction (load, filter change, navigation step,
// or commit) runs to completion at a time.
type Session struct {
	mu     sync.Mutex
	id     string
	config Config
	debug  *DebugLogger
	now    func() time.Time

	store     *Store
	changes   *ChangeLog
	cursor    *Cursor
	predicate Predicate
}

// NewSession creates a session with no record set loaded.
func NewSession(cfg Config) (*Session, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	debug, err := NewDebugLogger(cfg.Debug, cfg.DebugLogPath)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return &Session{
		id:      ulid.Make().String(),
		config:  cfg,
		debug:   debug,
		now:     time.Now,
		changes: NewChangeLog(),
		cursor:  NewCursor(nil),
	}, nil
}

// Close releases session resources.
func (s *Session) Close() error {
	return s.debug.Close()
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Load replaces the record set. It is the only destructive operation: the
// previous store, change log, cursor, and filter are all reset.
func (s *Session) Load(rows []Row) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store = NewStore(rows)
	s.changes.Reset()
	s.predicate = Predicate{}
	s.cursor = NewCursor(ApplyFilter(s.store, s.predicate))
	s.debug.LogLoad(s.id, s.store.Len())
}

// LoadCSV reads CSV input and loads it as the session's record set. On a
// parse failure the session keeps its prior state.
func (s *Session) LoadCSV(r io.Reader) error {
	rows, err := ReadRows(r)
	if err != nil {
		s.debug.LogError("load", err)
		return err
	}
	s.Load(rows)
	return nil
}

// Loaded reports whether a record set has been loaded.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store != nil
}

// Store returns the live record store, or nil before the first load.
func (s *Session) Store() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store
}

// Changes returns the session change log.
func (s *Session) Changes() *ChangeLog { return s.changes }

// Predicate returns the active filter predicate.
func (s *Session) Predicate() Predicate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.predicate
}

// SetFilter activates a predicate, recomputes the view, and reconciles the
// cursor so the selected record is preserved whenever it survives the filter.
func (s *Session) SetFilter(p Predicate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return ErrNoStore
	}
	s.predicate = p
	s.cursor.Reconcile(ApplyFilter(s.store, p))
	s.debug.LogFilter(s.id, p, s.cursor.Len())
	return nil
}

// refreshLocked re-applies the active predicate and reconciles the cursor.
// Callers hold s.mu.
func (s *Session) refreshLocked() {
	s.cursor.Reconcile(ApplyFilter(s.store, s.predicate))
}

// View returns a copy of the current filtered view.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.View()
}

// Offset returns the cursor offset within the view.
func (s *Session) Offset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Offset()
}

// ViewLen returns the number of visible records.
func (s *Session) ViewLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Len()
}

// Move shifts the cursor by delta, clamped to the view, and returns the new
// offset.
func (s *Session) Move(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	offset := s.cursor.Move(delta)
	s.debug.LogNav(s.id, offset, s.cursor.Len())
	return offset
}

// Next advances the cursor one record, clamped at the end of the view.
func (s *Session) Next() int { return s.Move(1) }

// Prev moves the cursor back one record, clamped at the start of the view.
func (s *Session) Prev() int { return s.Move(-1) }

// Jump sets the cursor to a specific view offset.
func (s *Session) Jump(offset int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cursor.Jump(offset); err != nil {
		return err
	}
	s.debug.LogNav(s.id, offset, s.cursor.Len())
	return nil
}

// Current returns the record under the cursor.
func (s *Session) Current() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrNoStore
	}
	position, err := s.cursor.Absolute()
	if err != nil {
		return nil, err
	}
	return s.store.Get(position)
}

// CurrentPosition returns the absolute store position under the cursor.
func (s *Session) CurrentPosition() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return 0, ErrNoStore
	}
	return s.cursor.Absolute()
}

// OpenDraft copies the record under the cursor into an editable draft.
func (s *Session) OpenDraft() (*Draft, error) {
	position, err := s.CurrentPosition()
	if err != nil {
		return nil, err
	}
	return s.OpenDraftAt(position)
}

// OpenDraftAt copies the record at an absolute position into an editable
// draft, independent of cursor state.
func (s *Session) OpenDraftAt(position int) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrNoStore
	}
	rec, err := s.store.Get(position)
	if err != nil {
		return nil, err
	}
	return NewDraft(position, rec), nil
}

// Commit diffs a draft against the store's current values at the position the
// draft was opened against, applies the deltas, and logs one change entry per
// changed field. A draft with zero differences is a no-op: no mutation, no
// log entry, Applied=false. Two drafts against the same position commit
// last-write-wins: the later diff is computed against the already-mutated
// values, silently superseding the earlier one.
//
// After an applied commit the active filter is re-run and the cursor
// reconciled, since the committed values may have changed filter membership.
func (s *Session) Commit(draft *Draft) (*CommitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrNoStore
	}
	stored, err := s.store.Get(draft.Position())
	if err != nil {
		return nil, ErrStaleDraft
	}

	result := &CommitResult{
		Position: draft.Position(),
		RecordID: stored.ID(),
	}

	cs := Diff(stored, draft.Values())
	if len(cs) == 0 {
		s.debug.LogCommit(s.id, result)
		return result, nil
	}

	if err := ApplyChangeSet(s.store, draft.Position(), cs); err != nil {
		return nil, err
	}

	timestamp := s.now().UTC()
	for _, c := range cs {
		s.changes.Record(ChangeEntry{
			RecordID:  result.RecordID,
			Field:     c.Field,
			OldValue:  c.OldValue,
			NewValue:  c.NewValue,
			Source:    s.config.SourceID,
			Timestamp: timestamp,
		})
	}

	result.Applied = true
	result.Changed = cs
	s.refreshLocked()
	s.debug.LogCommit(s.id, result)
	return result, nil
}

// CommitAndNext resolves "Save & Next": commit first, so the diff is computed
// against the pre-advance record, then advance the reconciled cursor.
func (s *Session) CommitAndNext(draft *Draft) (*CommitResult, error) {
	result, err := s.Commit(draft)
	if err != nil {
		return nil, err
	}
	s.Next()
	return result, nil
}

// Export writes the live record set as CSV.
func (s *Session) Export(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return ErrNoStore
	}
	if err := ExportCSV(s.store, w); err != nil {
		s.debug.LogError("export", err)
		return err
	}
	s.debug.LogExport(s.id, s.store.Len())
	return nil
}

// ExportFilename returns the suggested filename for an export taken now.
func (s *Session) ExportFilename() string {
	return SuggestedFilename(s.now())
}

// JumpLabels returns one picker label per visible record, in view order:
// "#N - <TestCase>" with the name truncated at 30 runes.
func (s *Session) JumpLabels() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrNoStore
	}
	view := s.cursor.View()
	labels := make([]string, len(view))
	for i, position := range view {
		name, err := s.store.FieldAt(position, FieldTestCase)
		if err != nil {
			return nil, err
		}
		if runes := []rune(name); len(runes) > 30 {
			name = string(runes[:30])
		}
		labels[i] = fmt.Sprintf("#%d - %s", i+1, name)
	}
	return labels, nil
}

// CategoryOptions enumerates the selectable category filter values.
func (s *Session) CategoryOptions() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrNoStore
	}
	return FilterOptions(s.store, FieldCategory), nil
}

// StatusFilterOptions enumerates the selectable status filter values.
func (s *Session) StatusFilterOptions() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, ErrNoStore
	}
	return FilterOptions(s.store, FieldStatus), nil
}

// Stats summarizes the loaded record set, including the change count.
func (s *Session) Stats() (StoreStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return StoreStats{}, ErrNoStore
	}
	stats := s.store.Stats()
	stats.ChangeCount = s.changes.Count()
	return stats, nil
}
