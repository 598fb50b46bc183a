package model

import "time"

// Note is a free-form titled text.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetID returns the note identity.
func (n *Note) GetID() string { return n.ID }

// SetID sets the note identity.
func (n *Note) SetID(id string) { n.ID = id }

// Created returns the creation timestamp.
func (n *Note) Created() time.Time { return n.CreatedAt }

// Stamp sets both timestamps.
func (n *Note) Stamp(createdAt, updatedAt time.Time) {
	n.CreatedAt = createdAt
	n.UpdatedAt = updatedAt
}

// NoteDraft holds the editable fields of a Note, without identity or timestamps.
type NoteDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Apply copies the draft fields onto n.
func (d NoteDraft) Apply(n *Note) {
	n.Title = d.Title
	n.Content = d.Content
}

// Draft extracts the editable fields of n.
func (n *Note) Draft() NoteDraft {
	return NoteDraft{Title: n.Title, Content: n.Content}
}
