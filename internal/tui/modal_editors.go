package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/manav03panchal/lifedash/internal/editor"
	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/parser"
	"github.com/manav03panchal/lifedash/internal/state"
)

func newTitleInput(value string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Title"
	in.CharLimit = model.MaxTitleLength
	in.Width = 48
	in.SetValue(value)
	in.Focus()
	return in
}

// =============================================================================
// Note
// =============================================================================

type noteModal struct {
	agg     *state.Aggregator
	ed      *editor.NoteEditor
	title   textinput.Model
	content textarea.Model
	focus   int
	err     error
}

func newNoteModal(a *state.Aggregator, ed *editor.NoteEditor) (*noteModal, error) {
	existing, err := a.EditingNote()
	if err != nil {
		return nil, err
	}
	ed.Open(existing)

	content := textarea.New()
	content.Placeholder = "Write in markdown…"
	content.CharLimit = 0
	content.ShowLineNumbers = false
	content.SetWidth(56)
	content.SetHeight(8)
	content.SetValue(ed.Content())

	return &noteModal{
		agg:     a,
		ed:      ed,
		title:   newTitleInput(ed.Title()),
		content: content,
	}, nil
}

func (m *noteModal) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case editor.IsCancelKey(k.String()):
			m.ed.Cancel()
			return closeModal(m.agg)
		case editor.IsSaveKey(k.String()):
			return m.save()
		case k.String() == "tab":
			return m.toggleFocus()
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.title, cmd = m.title.Update(msg)
		m.ed.SetTitle(m.title.Value())
	} else {
		m.content, cmd = m.content.Update(msg)
		m.ed.SetContent(m.content.Value())
	}
	return cmd
}

func (m *noteModal) toggleFocus() tea.Cmd {
	if m.focus == 0 {
		m.focus = 1
		m.title.Blur()
		return m.content.Focus()
	}
	m.focus = 0
	m.content.Blur()
	return m.title.Focus()
}

func (m *noteModal) save() tea.Cmd {
	m.ed.SetTitle(m.title.Value())
	m.ed.SetContent(m.content.Value())
	draft, err := m.ed.Save()
	if err != nil {
		m.err = err
		return nil
	}
	if _, err := m.agg.CommitNote(draft); err != nil {
		m.err = err
	}
	return nil
}

func (m *noteModal) View(width int) string {
	heading := "New Note"
	if !m.ed.Creating() {
		heading = "Edit Note"
	}
	body := m.title.View() + "\n\n" + m.content.View()
	return modalFrame(heading, body, m.err, width)
}

func (m *noteModal) Help() []helpKey { return saveHelp() }

// =============================================================================
// Todo
// =============================================================================

const (
	todoFieldTitle = iota
	todoFieldDescription
	todoFieldDue
)

type todoModal struct {
	agg  *state.Aggregator
	ed   *editor.TodoEditor
	form *form
	now  func() time.Time
	err  error
}

func newTodoModal(a *state.Aggregator, ed *editor.TodoEditor, now func() time.Time) (*todoModal, error) {
	existing, err := a.EditingTodo()
	if err != nil {
		return nil, err
	}
	ed.Open(existing)

	f := newForm("Title", "Description", "Due (e.g. tomorrow, 2026-01-15)")
	f.fields[todoFieldTitle].input.CharLimit = model.MaxTitleLength
	f.setValue(todoFieldTitle, ed.Title())
	f.setValue(todoFieldDescription, ed.Description())
	f.setValue(todoFieldDue, parser.FormatDueDate(ed.DueDate()))

	return &todoModal{agg: a, ed: ed, form: f, now: now}, nil
}

func (m *todoModal) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case editor.IsCancelKey(k.String()):
			m.ed.Cancel()
			return closeModal(m.agg)
		case editor.IsSaveKey(k.String()):
			return m.save()
		case k.String() == "ctrl+p":
			m.ed.CyclePriority()
			return nil
		case k.String() == "ctrl+x":
			m.ed.SetCompleted(!m.ed.Completed())
			return nil
		}
	}
	cmd := m.form.update(msg)
	m.ed.SetTitle(m.form.value(todoFieldTitle))
	m.ed.SetDescription(m.form.value(todoFieldDescription))
	return cmd
}

func (m *todoModal) save() tea.Cmd {
	m.ed.SetTitle(m.form.value(todoFieldTitle))
	m.ed.SetDescription(m.form.value(todoFieldDescription))
	if err := m.ed.SetDueDateText(m.form.value(todoFieldDue), m.now()); err != nil {
		m.err = err
		return nil
	}
	draft, err := m.ed.Save()
	if err != nil {
		m.err = err
		return nil
	}
	if _, err := m.agg.CommitTodo(draft); err != nil {
		m.err = err
	}
	return nil
}

func (m *todoModal) View(width int) string {
	heading := "New Todo"
	if !m.ed.Creating() {
		heading = "Edit Todo"
	}
	done := "[ ]"
	if m.ed.Completed() {
		done = "[x]"
	}
	body := m.form.view() + "\n\n" +
		StyleSubtitle.Render("Priority: ") + priorityStyle(m.ed.Priority()).Render(string(m.ed.Priority())) +
		"   " + StyleSubtitle.Render("Done: ") + done
	return modalFrame(heading, body, m.err, width)
}

func (m *todoModal) Help() []helpKey {
	return append(saveHelp(), helpKey{"ctrl+p", "priority"}, helpKey{"ctrl+x", "done"})
}

// =============================================================================
// Checklist
// =============================================================================

type checklistModal struct {
	agg     *state.Aggregator
	ed      *editor.ChecklistEditor
	title   textinput.Model
	item    textinput.Model
	focus   int // 0 title, 1 item input
	cursor  int
	editing string // id of the item being rewritten, if any
	err     error
}

func newChecklistModal(a *state.Aggregator, ed *editor.ChecklistEditor) (*checklistModal, error) {
	existing, err := a.EditingChecklist()
	if err != nil {
		return nil, err
	}
	ed.Open(existing)

	item := textinput.New()
	item.Prompt = "+ "
	item.Placeholder = "Add an item and press enter"
	item.CharLimit = 500
	item.Width = 48

	return &checklistModal{
		agg:   a,
		ed:    ed,
		title: newTitleInput(ed.Title()),
		item:  item,
	}, nil
}

func (m *checklistModal) Update(msg tea.Msg) tea.Cmd {
	k, isKey := msg.(tea.KeyMsg)
	if isKey {
		items := m.ed.Items()
		switch s := k.String(); {
		case editor.IsCancelKey(s):
			if m.editing != "" {
				m.editing = ""
				m.item.SetValue("")
				return nil
			}
			m.ed.Cancel()
			return closeModal(m.agg)
		case editor.IsSaveKey(s):
			return m.save()
		case s == "tab":
			return m.toggleFocus()
		case s == "enter" && m.focus == 1:
			return m.submitItem()
		case s == "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return nil
		case s == "down":
			if m.cursor < len(items)-1 {
				m.cursor++
			}
			return nil
		case s == "ctrl+x":
			if it, ok := m.current(); ok {
				m.ed.ToggleItem(it.ID)
			}
			return nil
		case s == "ctrl+d":
			if it, ok := m.current(); ok {
				m.ed.DeleteItem(it.ID)
				m.clampCursor()
			}
			return nil
		case s == "ctrl+e":
			if it, ok := m.current(); ok {
				m.editing = it.ID
				m.item.SetValue(it.Text)
				if m.focus == 0 {
					return m.toggleFocus()
				}
			}
			return nil
		case s == "alt+up", s == "alt+down":
			if it, ok := m.current(); ok {
				delta := -1
				if s == "alt+down" {
					delta = 1
				}
				if m.ed.MoveItem(it.ID, delta) {
					m.cursor += delta
					m.clampCursor()
				}
			}
			return nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.title, cmd = m.title.Update(msg)
		m.ed.SetTitle(m.title.Value())
	} else {
		m.item, cmd = m.item.Update(msg)
	}
	return cmd
}

func (m *checklistModal) current() (model.ChecklistItem, bool) {
	items := m.ed.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return model.ChecklistItem{}, false
	}
	return items[m.cursor], true
}

func (m *checklistModal) clampCursor() {
	n := len(m.ed.Items())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *checklistModal) toggleFocus() tea.Cmd {
	if m.focus == 0 {
		m.focus = 1
		m.title.Blur()
		return m.item.Focus()
	}
	m.focus = 0
	m.item.Blur()
	return m.title.Focus()
}

// submitItem adds the typed item, or rewrites the item picked with ctrl+e.
func (m *checklistModal) submitItem() tea.Cmd {
	text := m.item.Value()
	if m.editing != "" {
		m.ed.EditItem(m.editing, text)
		m.editing = ""
		m.item.SetValue("")
		return nil
	}
	if _, ok := m.ed.AddItem(text); !ok {
		return nil
	}
	m.item.SetValue("")
	m.cursor = len(m.ed.Items()) - 1
	if m.ed.TakeFocusRequest() && m.focus != 1 {
		return m.toggleFocus()
	}
	return nil
}

func (m *checklistModal) save() tea.Cmd {
	m.ed.SetTitle(m.title.Value())
	draft, err := m.ed.Save()
	if err != nil {
		m.err = err
		return nil
	}
	if _, err := m.agg.CommitChecklist(draft); err != nil {
		m.err = err
	}
	return nil
}

func (m *checklistModal) View(width int) string {
	heading := "New Checklist"
	if !m.ed.Creating() {
		heading = "Edit Checklist"
	}

	var sb strings.Builder
	sb.WriteString(m.title.View())
	sb.WriteString("\n\n")
	items := m.ed.Items()
	for i, it := range items {
		sb.WriteString(checklistLine(it, i == m.cursor))
		sb.WriteString("\n")
	}
	if len(items) > 0 {
		done, total := m.ed.Progress()
		sb.WriteString(StyleSubtitle.Render(fmt.Sprintf("%d/%d done", done, total)))
		sb.WriteString("\n")
	}
	sb.WriteString(m.item.View())
	return modalFrame(heading, sb.String(), m.err, width)
}

func (m *checklistModal) Help() []helpKey {
	return append(saveHelp(),
		helpKey{"enter", "add item"},
		helpKey{"ctrl+x", "toggle"},
		helpKey{"ctrl+e", "edit"},
		helpKey{"ctrl+d", "delete"},
		helpKey{"alt+↑/↓", "move"},
	)
}

func checklistLine(it model.ChecklistItem, selected bool) string {
	box := "[ ] "
	text := it.Text
	if it.Completed {
		box = "[x] "
		text = StyleDone.Render(text)
	}
	if selected {
		return StyleSelected.Render("> "+box) + text
	}
	return "  " + box + text
}
