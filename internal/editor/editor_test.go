package editor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/model"
)

// =============================================================================
// Note Editor Tests
// =============================================================================

func TestNoteEditor_BlankTitleGetsDefault(t *testing.T) {
	e := NewNoteEditor()
	e.Open(nil)
	e.SetTitle("   ")
	e.SetContent("Remember the milk")

	draft, err := e.Save()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultNoteTitle, draft.Title)
	assert.Equal(t, "Remember the milk", draft.Content)
	assert.False(t, e.IsOpen())
}

func TestNoteEditor_FullyBlankIsRejected(t *testing.T) {
	e := NewNoteEditor()
	e.Open(nil)
	e.SetTitle(" ")
	e.SetContent("\n\t")

	_, err := e.Save()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNothingToSave)
	assert.True(t, errors.IsUserError(err))
	assert.True(t, e.IsOpen(), "editor stays open on rejected save")
}

func TestNoteEditor_SaveWhenClosed(t *testing.T) {
	e := NewNoteEditor()
	_, err := e.Save()
	assert.ErrorIs(t, err, errors.ErrEditorClosed)
}

func TestNoteEditor_TitleCapped(t *testing.T) {
	e := NewNoteEditor()
	e.Open(nil)
	e.SetTitle(strings.Repeat("ä", 250))
	assert.Len(t, []rune(e.Title()), model.MaxTitleLength)
}

func TestNoteEditor_NoBleedThrough(t *testing.T) {
	first := &model.Note{ID: "n1", Title: "First", Content: "one"}
	second := &model.Note{ID: "n2", Title: "Second", Content: "two"}

	e := NewNoteEditor()
	e.Open(first)
	e.SetTitle("First, edited")
	e.Cancel()

	e.Open(second)
	assert.Equal(t, "Second", e.Title())
	assert.Equal(t, "two", e.Content())
	assert.Equal(t, "n2", e.EditingID())

	e.SetContent("two, edited")
	e.Open(nil)
	assert.Empty(t, e.Title())
	assert.Empty(t, e.Content())
	assert.True(t, e.Creating())
}

func TestNoteEditor_DraftHasNoIdentity(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e := NewNoteEditor()
	e.Open(&model.Note{ID: "n1", Title: "T", Content: "C", CreatedAt: created, UpdatedAt: created})

	draft, err := e.Save()
	require.NoError(t, err)
	assert.Equal(t, model.NoteDraft{Title: "T", Content: "C"}, draft)
}

func TestNoteEditor_CancelResetsNew(t *testing.T) {
	e := NewNoteEditor()
	e.Open(nil)
	e.SetTitle("draft")
	e.Cancel()

	assert.False(t, e.IsOpen())
	assert.Empty(t, e.Title())
}

// =============================================================================
// Todo Editor Tests
// =============================================================================

func TestTodoEditor_BlankTitleBlocksSave(t *testing.T) {
	e := NewTodoEditor()
	e.Open(nil)
	e.SetTitle("  ")
	e.SetDescription("has a body")

	_, err := e.Save()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTitleRequired)
	assert.True(t, e.IsOpen())
}

func TestTodoEditor_Defaults(t *testing.T) {
	e := NewTodoEditor()
	e.Open(nil)
	assert.Equal(t, model.PriorityMedium, e.Priority())
	assert.Nil(t, e.DueDate())
	assert.False(t, e.Completed())
}

func TestTodoEditor_Save(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	e := NewTodoEditor()
	e.Open(nil)
	e.SetTitle("  File taxes ")
	e.SetDescription("before the deadline")
	e.CyclePriority()
	require.NoError(t, e.SetDueDateText("2026-11-01", now))
	e.SetCompleted(true)

	draft, err := e.Save()
	require.NoError(t, err)
	assert.Equal(t, "File taxes", draft.Title)
	assert.Equal(t, "before the deadline", draft.Description)
	assert.Equal(t, model.PriorityHigh, draft.Priority)
	require.NotNil(t, draft.DueDate)
	assert.Equal(t, "2026-11-01", draft.DueDate.Format("2006-01-02"))
	assert.True(t, draft.Completed)
	assert.False(t, e.IsOpen())
}

func TestTodoEditor_BadDueDateKeepsPrevious(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	e := NewTodoEditor()
	e.Open(nil)
	require.NoError(t, e.SetDueDateText("2026-11-01", now))

	err := e.SetDueDateText("not a date at all zzz", now)
	assert.ErrorIs(t, err, errors.ErrInvalidDate)
	require.NotNil(t, e.DueDate())

	require.NoError(t, e.SetDueDateText("", now))
	assert.Nil(t, e.DueDate())
}

func TestTodoEditor_NoBleedThrough(t *testing.T) {
	due := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	first := &model.Todo{ID: "t1", Title: "First", Priority: model.PriorityHigh, DueDate: &due, Completed: true}
	second := &model.Todo{ID: "t2", Title: "Second", Priority: model.PriorityLow}

	e := NewTodoEditor()
	e.Open(first)
	e.SetTitle("edited")
	e.Open(second)

	assert.Equal(t, "Second", e.Title())
	assert.Equal(t, model.PriorityLow, e.Priority())
	assert.Nil(t, e.DueDate())
	assert.False(t, e.Completed())

	e.Open(nil)
	assert.Empty(t, e.Title())
	assert.Equal(t, model.PriorityMedium, e.Priority())
}

func TestTodoEditor_SeedDoesNotAliasDueDate(t *testing.T) {
	due := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	todo := &model.Todo{ID: "t1", Title: "x", DueDate: &due}

	e := NewTodoEditor()
	e.Open(todo)
	*e.DueDate() = e.DueDate().AddDate(0, 0, 1)
	assert.Equal(t, 24, todo.DueDate.Day())
}

// =============================================================================
// Checklist Editor Tests
// =============================================================================

func TestChecklistEditor_AddItem(t *testing.T) {
	e := NewChecklistEditor()
	e.Open(nil)

	item, ok := e.AddItem("  eggs  ")
	require.True(t, ok)
	assert.Equal(t, "eggs", item.Text)
	assert.False(t, item.Completed)
	assert.NotEmpty(t, item.ID)
	assert.True(t, e.TakeFocusRequest())
	assert.False(t, e.TakeFocusRequest())
}

func TestChecklistEditor_BlankAddIsNoop(t *testing.T) {
	e := NewChecklistEditor()
	e.Open(nil)
	e.AddItem("bread")
	e.TakeFocusRequest()

	for _, text := range []string{"", "   ", "\t\n"} {
		_, ok := e.AddItem(text)
		assert.False(t, ok)
	}
	assert.Len(t, e.Items(), 1)
	assert.False(t, e.TakeFocusRequest())
}

func TestChecklistEditor_ItemOperations(t *testing.T) {
	e := NewChecklistEditor()
	e.Open(nil)
	a, _ := e.AddItem("a")
	b, _ := e.AddItem("b")
	c, _ := e.AddItem("c")

	assert.True(t, e.ToggleItem(b.ID))
	done, total := e.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 3, total)

	assert.True(t, e.EditItem(a.ID, " a edited "))
	assert.Equal(t, " a edited ", e.Items()[0].Text)

	assert.True(t, e.MoveItem(c.ID, -5))
	assert.Equal(t, []string{c.ID, a.ID, b.ID}, ids(e.Items()))
	assert.False(t, e.MoveItem(c.ID, -1))

	assert.True(t, e.DeleteItem(a.ID))
	assert.Equal(t, []string{c.ID, b.ID}, ids(e.Items()))

	assert.False(t, e.ToggleItem("missing"))
	assert.False(t, e.EditItem("missing", "x"))
	assert.False(t, e.DeleteItem("missing"))
}

func TestChecklistEditor_Save(t *testing.T) {
	t.Run("blank_title_with_items", func(t *testing.T) {
		e := NewChecklistEditor()
		e.Open(nil)
		e.AddItem("pack")

		draft, err := e.Save()
		require.NoError(t, err)
		assert.Equal(t, model.DefaultChecklistTitle, draft.Title)
		assert.Len(t, draft.Items, 1)
	})

	t.Run("title_without_items", func(t *testing.T) {
		e := NewChecklistEditor()
		e.Open(nil)
		e.SetTitle("Trip")

		draft, err := e.Save()
		require.NoError(t, err)
		assert.Equal(t, "Trip", draft.Title)
		assert.NotNil(t, draft.Items)
		assert.Empty(t, draft.Items)
	})

	t.Run("fully_blank", func(t *testing.T) {
		e := NewChecklistEditor()
		e.Open(nil)

		_, err := e.Save()
		assert.ErrorIs(t, err, errors.ErrNothingToSave)
		assert.True(t, e.IsOpen())
	})
}

func TestChecklistEditor_NoBleedThroughAndNoAliasing(t *testing.T) {
	existing := &model.Checklist{
		ID:    "c1",
		Title: "Groceries",
		Items: []model.ChecklistItem{{ID: "i1", Text: "milk"}},
	}

	e := NewChecklistEditor()
	e.Open(existing)
	e.ToggleItem("i1")
	e.AddItem("bread")
	e.Cancel()

	assert.False(t, existing.Items[0].Completed, "editor must not mutate the stored entity")
	assert.Len(t, existing.Items, 1)

	e.Open(existing)
	assert.Len(t, e.Items(), 1)
	assert.False(t, e.Items()[0].Completed)

	e.Open(nil)
	assert.Empty(t, e.Items())
	assert.Empty(t, e.Title())
}

// =============================================================================
// Key Tests
// =============================================================================

func TestKeys(t *testing.T) {
	assert.True(t, IsSaveKey("alt+enter"))
	assert.True(t, IsSaveKey("ctrl+s"))
	assert.False(t, IsSaveKey("enter"))
	assert.True(t, IsCancelKey("esc"))
	assert.False(t, IsCancelKey("q"))
}

func ids(items []model.ChecklistItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
