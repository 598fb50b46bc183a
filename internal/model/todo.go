package model

import "time"

// Priority ranks a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists all priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Next cycles to the following priority, wrapping from high to low.
func (p Priority) Next() Priority {
	for i, v := range Priorities {
		if v == p {
			return Priorities[(i+1)%len(Priorities)]
		}
	}
	return PriorityMedium
}

// Todo is a task with an optional due date.
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// GetID returns the todo identity.
func (t *Todo) GetID() string { return t.ID }

// SetID sets the todo identity.
func (t *Todo) SetID(id string) { t.ID = id }

// Created returns the creation timestamp.
func (t *Todo) Created() time.Time { return t.CreatedAt }

// Stamp sets both timestamps.
func (t *Todo) Stamp(createdAt, updatedAt time.Time) {
	t.CreatedAt = createdAt
	t.UpdatedAt = updatedAt
}

// IsOverdue reports whether the todo is open and past its due date.
func (t *Todo) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// TodoDraft holds the editable fields of a Todo.
type TodoDraft struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   bool       `json:"completed"`
}

// Apply copies the draft fields onto t.
func (d TodoDraft) Apply(t *Todo) {
	t.Title = d.Title
	t.Description = d.Description
	t.Priority = d.Priority
	t.DueDate = d.DueDate
	t.Completed = d.Completed
}

// Draft extracts the editable fields of t.
func (t *Todo) Draft() TodoDraft {
	return TodoDraft{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
	}
}
