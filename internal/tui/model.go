package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/casetrail/casetrail"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── Styles ──────────────────────────────────────────────────────────────────

var (
	frameStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("147"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	changedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	statusStyles  = map[string]lipgloss.Style{
		"pass":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		"fail":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		"block": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		"pend":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
)

func statusPill(status string) string {
	if status == "" {
		status = casetrail.StatusPending
	}
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "pass"):
		return statusStyles["pass"].Render(status)
	case strings.Contains(lower, "fail"):
		return statusStyles["fail"].Render(status)
	case strings.Contains(lower, "block"):
		return statusStyles["block"].Render(status)
	default:
		return statusStyles["pend"].Render(status)
	}
}

// ── Model ───────────────────────────────────────────────────────────────────

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeJump
	modeChanges
)

// Editable fields in form order: everything except ID, which identifies the
// record in the change log and stays fixed.
func editableFields() []casetrail.Field {
	fields := casetrail.Fields()
	out := make([]casetrail.Field, 0, len(fields)-1)
	for _, f := range fields {
		if f != casetrail.FieldID {
			out = append(out, f)
		}
	}
	return out
}

// Model is the BubbleTea model for the interactive editor.
//
// Mode transitions:
//
//	modeBrowse → modeEdit    (enter: open a draft)
//	modeBrowse → modeJump    (g: numeric jump within the view)
//	modeBrowse → modeChanges (c: change summary overlay)
//	modeEdit   → modeBrowse  (esc discards the draft; ctrl+s / ctrl+n commit)
type Model struct {
	sess       *casetrail.Session
	exportPath string

	mode        mode
	fields      []casetrail.Field
	fieldCursor int
	editing     bool // a field input is focused
	input       textinput.Model
	draft       *casetrail.Draft

	statusMsg    string
	err          error
	exportedPath string
	width        int
	height       int
}

// NewModel creates the editor model over a loaded session. exportPath is the
// configured export target; empty means a timestamped suggested filename.
func NewModel(sess *casetrail.Session, exportPath string) Model {
	ti := textinput.New()
	ti.CharLimit = 0
	ti.Width = 60

	return Model{
		sess:       sess,
		exportPath: exportPath,
		fields:     editableFields(),
		input:      ti,
	}
}

// ExportedPath returns the path written by the last export, or "" if the
// session was never exported.
func (m Model) ExportedPath() string { return m.exportedPath }

func (m Model) Init() tea.Cmd { return nil }

// ── Update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeJump:
			return m.updateJump(msg)
		case modeChanges:
			return m.updateChanges(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.err = nil

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.sess.Prev()

	case "right", "l":
		m.sess.Next()

	case "enter", "e":
		draft, err := m.sess.OpenDraft()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.draft = draft
		m.mode = modeEdit
		m.fieldCursor = 0
		m.editing = false

	case "g":
		if m.sess.ViewLen() > 0 {
			m.mode = modeJump
			m.input.Placeholder = fmt.Sprintf("1-%d", m.sess.ViewLen())
			m.input.SetValue("")
			m.input.Focus()
		}

	case "f":
		m.err = m.cycleFilter(casetrail.FieldCategory)

	case "s":
		m.err = m.cycleFilter(casetrail.FieldStatus)

	case "c":
		m.mode = modeChanges

	case "x":
		m.exportSession()
	}
	return m, nil
}

func (m *Model) cycleFilter(field casetrail.Field) error {
	store := m.sess.Store()
	if store == nil {
		return casetrail.ErrNoStore
	}
	options := casetrail.FilterOptions(store, field)

	p := m.sess.Predicate()
	current := p.Category
	if field == casetrail.FieldStatus {
		current = p.Status
	}
	if current == "" {
		current = casetrail.Unconstrained
	}

	next := options[0]
	for i, opt := range options {
		if opt == current {
			next = options[(i+1)%len(options)]
			break
		}
	}

	if field == casetrail.FieldStatus {
		p.Status = next
	} else {
		p.Category = next
	}
	return m.sess.SetFilter(p)
}

func (m *Model) exportSession() {
	path := m.exportPath
	if path == "" {
		path = m.sess.ExportFilename()
	}
	f, err := os.Create(path)
	if err != nil {
		m.err = err
		return
	}
	defer f.Close()

	if err := m.sess.Export(f); err != nil {
		m.err = err
		return
	}
	m.exportedPath = path
	m.statusMsg = fmt.Sprintf("exported %s", path)
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			field := m.fields[m.fieldCursor]
			if err := m.draft.Set(field, m.input.Value()); err != nil {
				m.err = err
			}
			m.editing = false
			m.input.Blur()
			return m, nil
		case "esc":
			m.editing = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	m.statusMsg = ""
	m.err = nil

	switch msg.String() {
	case "esc", "q":
		// Draft is discarded; no autosave.
		m.draft = nil
		m.mode = modeBrowse

	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}

	case "down", "j":
		if m.fieldCursor < len(m.fields)-1 {
			m.fieldCursor++
		}

	case "enter", "e":
		field := m.fields[m.fieldCursor]
		if field == casetrail.FieldStatus {
			m.cycleDraftStatus()
			return m, nil
		}
		m.editing = true
		m.input.Placeholder = string(field)
		m.input.SetValue(m.draft.Get(field))
		m.input.CursorEnd()
		m.input.Focus()

	case "ctrl+s":
		m.commitDraft(false)

	case "ctrl+n":
		m.commitDraft(true)
	}
	return m, nil
}

func (m *Model) cycleDraftStatus() {
	current := m.draft.Get(casetrail.FieldStatus)
	options := casetrail.SelectableStatuses(current)

	next := options[0]
	for i, opt := range options {
		if opt == current {
			next = options[(i+1)%len(options)]
			break
		}
	}
	if err := m.draft.Set(casetrail.FieldStatus, next); err != nil {
		m.err = err
	}
}

func (m *Model) commitDraft(advance bool) {
	var result *casetrail.CommitResult
	var err error
	if advance {
		result, err = m.sess.CommitAndNext(m.draft)
	} else {
		result, err = m.sess.Commit(m.draft)
	}
	if err != nil {
		m.err = err
		return
	}

	m.draft = nil
	m.mode = modeBrowse
	if result.Applied {
		m.statusMsg = fmt.Sprintf("saved %d field(s) on %s", len(result.Changed), result.RecordID)
	} else {
		m.statusMsg = "no changes to save"
	}
}

func (m Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil {
			m.err = fmt.Errorf("not a number: %q", m.input.Value())
		} else if jumpErr := m.sess.Jump(n - 1); jumpErr != nil {
			m.err = fmt.Errorf("no test case %d in the current view", n)
		}
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateChanges(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "c", "enter":
		m.mode = modeBrowse
	}
	return m, nil
}

// ── View ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var b strings.Builder

	switch m.mode {
	case modeChanges:
		m.viewChanges(&b)
	case modeEdit:
		m.viewEdit(&b)
	case modeJump:
		m.viewBrowse(&b)
		b.WriteString("\n\n")
		m.viewJumpPrompt(&b)
	default:
		m.viewBrowse(&b)
	}

	if m.err != nil {
		b.WriteString("\n" + errStyle.Render("✗ "+m.err.Error()))
	} else if m.statusMsg != "" {
		b.WriteString("\n" + okStyle.Render("✓ "+m.statusMsg))
	}

	return frameStyle.Render(b.String())
}

func (m Model) viewHeader(b *strings.Builder) {
	total := m.sess.ViewLen()
	p := m.sess.Predicate()

	if total == 0 {
		b.WriteString(titleStyle.Render("Test Case Manager") + "\n\n")
		b.WriteString(dimStyle.Render("No test cases match the active filters.") + "\n")
	} else {
		rec, err := m.sess.Current()
		if err != nil {
			b.WriteString(errStyle.Render(err.Error()) + "\n")
			return
		}
		b.WriteString(titleStyle.Render(fmt.Sprintf("Test Case %s", rec.ID())))
		b.WriteString("  " + statusPill(rec.Get(casetrail.FieldStatus)) + "\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Test Case %d of %d", m.sess.Offset()+1, total)) + "\n")
	}

	filters := []string{
		fmt.Sprintf("Category: %s", orAll(p.Category)),
		fmt.Sprintf("Status: %s", orAll(p.Status)),
	}
	b.WriteString(labelStyle.Render("Filters  ") + dimStyle.Render(strings.Join(filters, "  ·  ")) + "\n\n")
}

func orAll(v string) string {
	if v == "" {
		return casetrail.Unconstrained
	}
	return v
}

func (m Model) viewBrowse(b *strings.Builder) {
	m.viewHeader(b)

	if m.sess.ViewLen() > 0 {
		rec, err := m.sess.Current()
		if err == nil {
			for _, f := range editableFields() {
				b.WriteString(fmt.Sprintf("%s %s\n",
					labelStyle.Render(fmt.Sprintf("%-16s", f)),
					truncate(rec.Get(f), 60)))
			}
		}
	}

	b.WriteString("\n" + dimStyle.Render(
		"←/→ navigate · g jump · enter edit · f/s filter · c changes · x export · q quit"))
}

func (m Model) viewEdit(b *strings.Builder) {
	m.viewHeader(b)
	b.WriteString(headerStyle.Render(fmt.Sprintf("Editing %s", m.draft.RecordID())) + "\n\n")

	for i, f := range m.fields {
		label := fmt.Sprintf("%-16s", f)
		value := truncate(m.draft.Get(f), 60)

		prefix := "  "
		if i == m.fieldCursor {
			prefix = selectedStyle.Render("> ")
			label = selectedStyle.Render(label)
			if m.editing {
				b.WriteString(prefix + label + " " + m.input.View() + "\n")
				continue
			}
		} else {
			label = labelStyle.Render(label)
		}
		b.WriteString(prefix + label + " " + value + "\n")
	}

	hint := "↑/↓ field · enter edit value · ctrl+s save · ctrl+n save & next · esc discard"
	if m.fields[m.fieldCursor] == casetrail.FieldStatus && !m.editing {
		hint = "enter cycles status · " + hint
	}
	b.WriteString("\n" + dimStyle.Render(hint))
}

func (m Model) viewChanges(b *strings.Builder) {
	log := m.sess.Changes()
	b.WriteString(titleStyle.Render("Changes Summary") + "\n\n")

	if log.Count() == 0 {
		b.WriteString(dimStyle.Render("No changes yet.") + "\n")
	} else {
		summary := log.Summary()
		for _, id := range log.AffectedRecords() {
			entries := summary[id]
			b.WriteString(headerStyle.Render(fmt.Sprintf("Test Case %s", id)))
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %d change(s)", len(entries))) + "\n")
			for _, e := range entries {
				b.WriteString(fmt.Sprintf("  %s %s\n",
					labelStyle.Render(string(e.Field)+":"),
					changedStyle.Render(fmt.Sprintf("%q → %q", e.OldValue, e.NewValue))))
			}
		}
	}

	b.WriteString("\n" + dimStyle.Render("esc back"))
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

func (m Model) viewJumpPrompt(b *strings.Builder) {
	b.WriteString(headerStyle.Render("Jump to test case") + "\n")
	if labels, err := m.sess.JumpLabels(); err == nil {
		shown := labels
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for _, label := range shown {
			b.WriteString(dimStyle.Render(label) + "\n")
		}
		if len(labels) > len(shown) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(labels)-len(shown))) + "\n")
		}
	}
	b.WriteString(m.input.View() + "\n")
}
