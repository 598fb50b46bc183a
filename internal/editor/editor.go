// Package editor implements the transient editing surfaces for notes, todos
// and checklists.
//
// An editor never touches a collection. It is seeded on every Open, holds
// local edits, and on Save emits a draft with domain fields only; identity
// and timestamps stay with the collection that stores the entity.
package editor

import (
	"github.com/manav03panchal/lifedash/internal/errors"
)

// Editor is the contract shared by every item editor. E is the entity type
// and D the draft it emits on save.
type Editor[E any, D any] interface {
	// Open seeds the editor from existing, or resets it when existing is nil.
	Open(existing *E)
	// IsOpen reports whether the editor is showing.
	IsOpen() bool
	// EditingID returns the id of the entity being edited, empty when creating.
	EditingID() string
	// Cancel discards local edits and closes the editor.
	Cancel()
	// Save validates local edits, emits a draft and closes the editor.
	Save() (D, error)
}

// session tracks the open state common to all editors.
type session struct {
	open       bool
	existingID string
}

func (s *session) begin(id string) {
	s.open = true
	s.existingID = id
}

func (s *session) end() {
	s.open = false
	s.existingID = ""
}

// IsOpen reports whether the editor is showing.
func (s *session) IsOpen() bool { return s.open }

// EditingID returns the id of the entity being edited, empty when creating.
func (s *session) EditingID() string { return s.existingID }

// Creating reports whether the open editor is creating a new entity.
func (s *session) Creating() bool { return s.open && s.existingID == "" }

func (s *session) checkOpen() error {
	if !s.open {
		return errors.NewUserErrorFor(errors.ErrEditorClosed,
			"Editor is not open",
			"Open the editor before saving")
	}
	return nil
}

func nothingToSave(what string) error {
	return errors.NewUserErrorFor(errors.ErrNothingToSave,
		"Nothing to save",
		"Add a title or "+what+" before saving")
}
