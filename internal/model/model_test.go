package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Identity Tests
// =============================================================================

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestEntitiesImplementEntity(t *testing.T) {
	var _ Entity = (*Note)(nil)
	var _ Entity = (*Todo)(nil)
	var _ Entity = (*Checklist)(nil)
	var _ Entity = (*Goal)(nil)
	var _ Entity = (*Transaction)(nil)
}

func TestStamp(t *testing.T) {
	created := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	n := &Note{}
	n.Stamp(created, updated)
	assert.Equal(t, created, n.Created())
	assert.Equal(t, updated, n.UpdatedAt)

	g := &Goal{}
	g.Stamp(created, updated)
	assert.Equal(t, created, g.CreatedAt)

	txn := &Transaction{}
	txn.Stamp(created, updated)
	assert.Equal(t, created, txn.Date, "zero date defaults to creation time")
}

// =============================================================================
// Todo Tests
// =============================================================================

func TestPriorityNext(t *testing.T) {
	assert.Equal(t, PriorityMedium, PriorityLow.Next())
	assert.Equal(t, PriorityHigh, PriorityMedium.Next())
	assert.Equal(t, PriorityLow, PriorityHigh.Next())
	assert.Equal(t, PriorityMedium, Priority("bogus").Next())
}

func TestTodoIsOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&Todo{DueDate: &past}).IsOverdue(now))
	assert.False(t, (&Todo{DueDate: &past, Completed: true}).IsOverdue(now))
	assert.False(t, (&Todo{DueDate: &future}).IsOverdue(now))
	assert.False(t, (&Todo{}).IsOverdue(now))
}

func TestTodoDraftRoundTrip(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	todo := &Todo{ID: "t1", Title: "Pay rent", Priority: PriorityHigh, DueDate: &due}

	draft := todo.Draft()
	draft.Completed = true
	draft.Apply(todo)

	assert.Equal(t, "t1", todo.ID)
	assert.True(t, todo.Completed)
	assert.Equal(t, PriorityHigh, todo.Priority)
}

// =============================================================================
// Checklist Tests
// =============================================================================

func TestChecklistProgress(t *testing.T) {
	c := &Checklist{Items: []ChecklistItem{
		{ID: "1", Text: "Passport", Completed: true},
		{ID: "2", Text: "Charger"},
		{ID: "3", Text: "Tickets", Completed: true},
	}}
	done, total := c.Progress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 3, total)

	done, total = (&Checklist{}).Progress()
	assert.Zero(t, done)
	assert.Zero(t, total)
}

func TestChecklistDraftDoesNotAlias(t *testing.T) {
	c := &Checklist{Title: "Trip", Items: []ChecklistItem{{ID: "1", Text: "Passport"}}}

	draft := c.Draft()
	draft.Items[0].Completed = true
	assert.False(t, c.Items[0].Completed)

	draft.Apply(c)
	draft.Items[0].Text = "changed"
	assert.Equal(t, "Passport", c.Items[0].Text)
	assert.Nil(t, CloneItems(nil))
}

// =============================================================================
// Goal / Transaction Tests
// =============================================================================

func TestGoalCalculateProgress(t *testing.T) {
	tests := []struct {
		name     string
		goal     Goal
		pct      float64
		remain   float64
		complete bool
	}{
		{"half", Goal{TargetValue: 1000, CurrentValue: 500}, 50, 500, false},
		{"done", Goal{TargetValue: 10, CurrentValue: 10}, 100, 0, true},
		{"over", Goal{TargetValue: 10, CurrentValue: 15}, 150, 0, true},
		{"zero_target", Goal{TargetValue: 0, CurrentValue: 5}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.goal.CalculateProgress()
			assert.InDelta(t, tt.pct, p.Percentage, 0.001)
			assert.InDelta(t, tt.remain, p.Remaining, 0.001)
			assert.Equal(t, tt.complete, p.IsComplete)
		})
	}
}

func TestTransactionSigned(t *testing.T) {
	assert.Equal(t, 100.0, (&Transaction{Amount: 100, Type: TransactionIncome}).Signed())
	assert.Equal(t, -40.0, (&Transaction{Amount: 40, Type: TransactionExpense}).Signed())
}
