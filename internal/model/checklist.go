package model

import "time"

// ChecklistItem is a single line of a checklist.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Checklist is a titled, ordered list of items.
type Checklist struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Items     []ChecklistItem `json:"items"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// GetID returns the checklist identity.
func (c *Checklist) GetID() string { return c.ID }

// SetID sets the checklist identity.
func (c *Checklist) SetID(id string) { c.ID = id }

// Created returns the creation timestamp.
func (c *Checklist) Created() time.Time { return c.CreatedAt }

// Stamp sets both timestamps.
func (c *Checklist) Stamp(createdAt, updatedAt time.Time) {
	c.CreatedAt = createdAt
	c.UpdatedAt = updatedAt
}

// Progress returns the number of completed items and the total.
func (c *Checklist) Progress() (completed, total int) {
	return ItemsProgress(c.Items)
}

// ItemsProgress counts completed items.
func ItemsProgress(items []ChecklistItem) (completed, total int) {
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return completed, len(items)
}

// ChecklistDraft holds the editable fields of a Checklist.
type ChecklistDraft struct {
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
}

// Apply copies the draft fields onto c.
func (d ChecklistDraft) Apply(c *Checklist) {
	c.Title = d.Title
	c.Items = CloneItems(d.Items)
}

// Draft extracts the editable fields of c.
func (c *Checklist) Draft() ChecklistDraft {
	return ChecklistDraft{Title: c.Title, Items: CloneItems(c.Items)}
}

// CloneItems returns a copy of items that shares no backing array.
func CloneItems(items []ChecklistItem) []ChecklistItem {
	if items == nil {
		return nil
	}
	out := make([]ChecklistItem, len(items))
	copy(out, items)
	return out
}
