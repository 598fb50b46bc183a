// Package model defines the domain models for Lifedash.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Model is the interface that all stored models must implement.
type Model interface {
	// GetID returns the identity of this model.
	GetID() string
	// SetID sets the identity of this model.
	SetID(id string)
}

// Entity is a Model with lifecycle timestamps owned by its collection.
type Entity interface {
	Model
	// Created returns the creation timestamp.
	Created() time.Time
	// Stamp sets the creation and last-update timestamps.
	Stamp(createdAt, updatedAt time.Time)
}

// KeyPrefix constants for collection key generation.
const (
	PrefixNote        = "note"
	PrefixTodo        = "todo"
	PrefixChecklist   = "checklist"
	PrefixGoal        = "goal"
	PrefixTransaction = "txn"
)

// Default titles applied at save time when the title is blank.
const (
	DefaultNoteTitle      = "Untitled Note"
	DefaultChecklistTitle = "Untitled Checklist"
)

// MaxTitleLength caps every title field, counted in runes.
const MaxTitleLength = 200

// NewID generates a new unique identity.
func NewID() string {
	return uuid.NewString()
}
