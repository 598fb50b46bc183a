package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/model"
)

func TestCommitNote_CreateThenEdit(t *testing.T) {
	a := newTestAggregator(t, Options{})

	require.NoError(t, a.OpenNoteEditor(""))
	slot, err := a.EditingNote()
	require.NoError(t, err)
	assert.Nil(t, slot)

	created, err := a.CommitNote(model.NoteDraft{Title: "Ideas", Content: "- one"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.False(t, a.IsAnyModalOpen())

	require.NoError(t, a.OpenNoteEditor(created.ID))
	assert.Equal(t, ActiveModal{Kind: ModalNote, EntityID: created.ID}, a.Modal())
	slot, err = a.EditingNote()
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, "Ideas", slot.Title)

	updated, err := a.CommitNote(model.NoteDraft{Title: "Ideas v2", Content: "- two"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	notes, err := a.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Ideas v2", notes[0].Title)
}

func TestOpenEditorMissingEntity(t *testing.T) {
	a := newTestAggregator(t, Options{})
	err := a.OpenTodoEditor("nope")
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.False(t, a.IsAnyModalOpen())
}

func TestTodos(t *testing.T) {
	a := newTestAggregator(t, Options{})
	require.NoError(t, a.OpenTodoEditor(""))
	todo, err := a.CommitTodo(model.TodoDraft{Title: "Call mom", Priority: model.PriorityHigh})
	require.NoError(t, err)

	toggled, err := a.ToggleTodo(todo.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.True(t, toggled.UpdatedAt.After(todo.UpdatedAt))

	require.NoError(t, a.OpenTodoEditor(todo.ID))
	require.NoError(t, a.DeleteTodo(todo.ID))
	assert.False(t, a.IsAnyModalOpen(), "deleting the edited entity closes its editor")

	assert.ErrorIs(t, a.DeleteTodo(todo.ID), errors.ErrNotFound)
}

func TestChecklists(t *testing.T) {
	a := newTestAggregator(t, Options{})
	c, err := a.CommitChecklist(model.ChecklistDraft{
		Title: "Packing",
		Items: []model.ChecklistItem{{ID: "i1", Text: "socks"}, {ID: "i2", Text: "charger"}},
	})
	require.NoError(t, err)

	c, err = a.ToggleChecklistItem(c.ID, "i2")
	require.NoError(t, err)
	done, total := c.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, total)

	_, err = a.ToggleChecklistItem(c.ID, "missing")
	assert.ErrorIs(t, err, errors.ErrNotFound)
	list, err := a.Checklists()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].UpdatedAt.Equal(c.UpdatedAt), "a failed toggle leaves the checklist untouched")

	require.NoError(t, a.DeleteChecklist(c.ID))
	list, err = a.Checklists()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCollectionSettersReplace(t *testing.T) {
	a := newTestAggregator(t, Options{})
	_, err := a.CommitNote(model.NoteDraft{Title: "old"})
	require.NoError(t, err)

	notes, err := a.Notes()
	require.NoError(t, err)

	next := []model.Note{{Title: "fresh"}}
	for _, n := range notes {
		next = append(next, *n)
	}
	require.NoError(t, a.SetNotes(next))

	got, err := a.Notes()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "fresh", got[0].Title)
	assert.Equal(t, notes[0].ID, got[1].ID)

	require.NoError(t, a.SetTodos([]model.Todo{{Title: "a"}, {Title: "b"}}))
	todos, err := a.Todos()
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	require.NoError(t, a.SetChecklists(nil))
	require.NoError(t, a.SetGoals([]model.Goal{{Title: "Bike", TargetValue: 500}}))
	goals, err := a.Goals()
	require.NoError(t, err)
	assert.Len(t, goals, 1)
}

func TestSetTodosStampsToggledTodo(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	a := newTestAggregator(t, Options{Now: func() time.Time { return now }})

	todo, err := a.CommitTodo(model.TodoDraft{Title: "Pay rent", Priority: model.PriorityHigh})
	require.NoError(t, err)

	now = start.Add(time.Hour)
	todos, err := a.Todos()
	require.NoError(t, err)
	next := make([]model.Todo, 0, len(todos))
	for _, td := range todos {
		if td.ID == todo.ID {
			td.Completed = !td.Completed
		}
		next = append(next, *td)
	}
	require.NoError(t, a.SetTodos(next))

	got, err := a.Todos()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Completed)
	assert.True(t, got[0].CreatedAt.Equal(start))
	assert.True(t, got[0].UpdatedAt.Equal(now))
}

func TestGoals(t *testing.T) {
	a := newTestAggregator(t, Options{})

	_, err := a.AddGoal(model.Goal{Title: " "})
	assert.ErrorIs(t, err, errors.ErrTitleRequired)
	_, err = a.AddGoal(model.Goal{Title: "Camera"})
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)

	g, err := a.AddGoal(model.Goal{Title: "Camera", TargetValue: 1200, Unit: "$"})
	require.NoError(t, err)
	assert.Equal(t, model.GoalCategoryWishlist, g.Category)

	g, err = a.ContributeToGoal(g.ID, 300)
	require.NoError(t, err)
	assert.Equal(t, 300.0, g.CurrentValue)
	assert.InDelta(t, 25.0, g.CalculateProgress().Percentage, 0.001)

	g, err = a.ContributeToGoal(g.ID, -1000)
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.CurrentValue)

	g, err = a.ToggleGoalFavorite(g.ID)
	require.NoError(t, err)
	assert.True(t, g.IsFavorite)

	require.NoError(t, a.DeleteGoal(g.ID))
}
