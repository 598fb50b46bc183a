package editor

import (
	"strings"
	"time"

	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/parser"
	"github.com/manav03panchal/lifedash/internal/validate"
)

// TodoEditor edits a single todo.
type TodoEditor struct {
	session
	title       string
	description string
	priority    model.Priority
	dueDate     *time.Time
	completed   bool
}

var _ Editor[model.Todo, model.TodoDraft] = (*TodoEditor)(nil)

// NewTodoEditor creates a closed todo editor.
func NewTodoEditor() *TodoEditor {
	e := &TodoEditor{}
	e.reset()
	return e
}

// Open seeds the editor from existing, or defaults when nil.
func (e *TodoEditor) Open(existing *model.Todo) {
	e.reset()
	if existing == nil {
		e.begin("")
		return
	}
	e.begin(existing.ID)
	d := existing.Draft()
	e.title = validate.SanitizeTitle(d.Title)
	e.description = d.Description
	if d.Priority != "" {
		e.priority = d.Priority
	}
	if d.DueDate != nil {
		due := *d.DueDate
		e.dueDate = &due
	}
	e.completed = d.Completed
}

// Title returns the local title.
func (e *TodoEditor) Title() string { return e.title }

// Description returns the local description.
func (e *TodoEditor) Description() string { return e.description }

// Priority returns the local priority.
func (e *TodoEditor) Priority() model.Priority { return e.priority }

// DueDate returns the local due date, nil when unset.
func (e *TodoEditor) DueDate() *time.Time { return e.dueDate }

// Completed returns the local completion flag.
func (e *TodoEditor) Completed() bool { return e.completed }

// SetTitle replaces the local title, capped at the title length limit.
func (e *TodoEditor) SetTitle(title string) {
	e.title = validate.SanitizeTitle(title)
}

// SetDescription replaces the local description.
func (e *TodoEditor) SetDescription(description string) {
	e.description = description
}

// CyclePriority advances the local priority low → medium → high → low.
func (e *TodoEditor) CyclePriority() {
	e.priority = e.priority.Next()
}

// SetDueDateText parses a typed due date relative to now. Blank clears it.
// On error the previous due date is kept.
func (e *TodoEditor) SetDueDateText(input string, now time.Time) error {
	d, err := parser.ParseDueDate(input, now)
	if err != nil {
		return err
	}
	e.dueDate = d
	return nil
}

// SetCompleted replaces the local completion flag.
func (e *TodoEditor) SetCompleted(done bool) {
	e.completed = done
}

// Cancel discards local edits and closes the editor.
func (e *TodoEditor) Cancel() {
	e.reset()
	e.end()
}

// Save emits the todo draft. A blank title is rejected and the editor stays
// open.
func (e *TodoEditor) Save() (model.TodoDraft, error) {
	if err := e.checkOpen(); err != nil {
		return model.TodoDraft{}, err
	}
	if err := validate.Title(e.title); err != nil {
		return model.TodoDraft{}, err
	}

	draft := model.TodoDraft{
		Title:       strings.TrimSpace(e.title),
		Description: strings.TrimSpace(validate.SanitizeText(e.description)),
		Priority:    e.priority,
		DueDate:     e.dueDate,
		Completed:   e.completed,
	}
	e.reset()
	e.end()
	return draft, nil
}

func (e *TodoEditor) reset() {
	e.title = ""
	e.description = ""
	e.priority = model.PriorityMedium
	e.dueDate = nil
	e.completed = false
}
