package model

import (
	"time"
)

// GoalCategory groups goals on the wishlist/goals widget.
type GoalCategory string

const (
	GoalCategorySavings  GoalCategory = "savings"
	GoalCategoryHealth   GoalCategory = "health"
	GoalCategoryLearning GoalCategory = "learning"
	GoalCategoryWishlist GoalCategory = "wishlist"
)

// Goal represents a numeric target such as a savings amount or a wishlist item.
type Goal struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	TargetValue  float64      `json:"targetValue"`
	CurrentValue float64      `json:"currentValue"`
	Unit         string       `json:"unit"`
	Category     GoalCategory `json:"category"`
	IsFavorite   bool         `json:"isFavorite"`
	Color        string       `json:"color,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	TargetDate   *time.Time   `json:"targetDate,omitempty"`
}

// GetID returns the goal identity.
func (g *Goal) GetID() string { return g.ID }

// SetID sets the goal identity.
func (g *Goal) SetID(id string) { g.ID = id }

// Created returns the creation timestamp.
func (g *Goal) Created() time.Time { return g.CreatedAt }

// Stamp sets the creation timestamp. Goals carry no update timestamp.
func (g *Goal) Stamp(createdAt, _ time.Time) {
	g.CreatedAt = createdAt
}

// Progress describes how far a goal is from its target.
type Progress struct {
	Current    float64 `json:"current"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	IsComplete bool    `json:"is_complete"`
}

// CalculateProgress calculates progress toward the goal.
func (g *Goal) CalculateProgress() Progress {
	var percentage float64
	if g.TargetValue > 0 {
		percentage = g.CurrentValue / g.TargetValue * 100
	}

	remaining := g.TargetValue - g.CurrentValue
	if remaining < 0 {
		remaining = 0
	}

	return Progress{
		Current:    g.CurrentValue,
		Remaining:  remaining,
		Percentage: percentage,
		IsComplete: g.TargetValue > 0 && g.CurrentValue >= g.TargetValue,
	}
}
