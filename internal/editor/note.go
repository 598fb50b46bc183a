package editor

import (
	"strings"

	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/validate"
)

// NoteEditor edits a single note.
type NoteEditor struct {
	session
	title   string
	content string
}

var _ Editor[model.Note, model.NoteDraft] = (*NoteEditor)(nil)

// NewNoteEditor creates a closed note editor.
func NewNoteEditor() *NoteEditor {
	return &NoteEditor{}
}

// Open seeds the editor from existing, or blank fields when nil.
func (e *NoteEditor) Open(existing *model.Note) {
	e.reset()
	if existing == nil {
		e.begin("")
		return
	}
	e.begin(existing.ID)
	d := existing.Draft()
	e.title = validate.SanitizeTitle(d.Title)
	e.content = d.Content
}

// Title returns the local title.
func (e *NoteEditor) Title() string { return e.title }

// Content returns the local content.
func (e *NoteEditor) Content() string { return e.content }

// SetTitle replaces the local title, capped at the title length limit.
func (e *NoteEditor) SetTitle(title string) {
	e.title = validate.SanitizeTitle(title)
}

// SetContent replaces the local content.
func (e *NoteEditor) SetContent(content string) {
	e.content = content
}

// Cancel discards local edits and closes the editor.
func (e *NoteEditor) Cancel() {
	e.reset()
	e.end()
}

// Save emits the note draft. A blank title falls back to the default title;
// a blank title with blank content is rejected and the editor stays open.
func (e *NoteEditor) Save() (model.NoteDraft, error) {
	if err := e.checkOpen(); err != nil {
		return model.NoteDraft{}, err
	}

	title := strings.TrimSpace(e.title)
	content := validate.SanitizeText(e.content)
	if title == "" && strings.TrimSpace(content) == "" {
		return model.NoteDraft{}, nothingToSave("content")
	}
	if err := validate.Content(content); err != nil {
		return model.NoteDraft{}, err
	}
	if title == "" {
		title = model.DefaultNoteTitle
	}

	draft := model.NoteDraft{Title: title, Content: content}
	e.reset()
	e.end()
	return draft, nil
}

func (e *NoteEditor) reset() {
	e.title = ""
	e.content = ""
}
