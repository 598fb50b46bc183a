package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/lifedash/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupNotes(t *testing.T) *Collection[*model.Note] {
	notes, err := NewCollection(setupTestDB(t), model.PrefixNote, func() *model.Note { return &model.Note{} })
	require.NoError(t, err)
	t.Cleanup(func() { notes.Close() })
	return notes
}

// fakeClock returns increasing timestamps one minute apart.
func fakeClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		assert.NoError(t, db.Close())
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		db.Close()
	})

	t.Run("on_disk", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "session")
		db, err := Open(Options{Path: dir})
		require.NoError(t, err)
		assert.Equal(t, dir, db.Path())
		require.NoError(t, db.SetAll(map[string][]byte{"k": []byte("v")}))
		require.NoError(t, db.Close())

		db, err = Open(Options{Path: dir})
		require.NoError(t, err)
		defer db.Close()
		got, err := db.GetBytes("k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})
}

func TestBytesAndJSON(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetBytes("missing")
	assert.True(t, IsErrKeyNotFound(err))

	require.NoError(t, db.SetAll(map[string][]byte{"user": []byte(`{"id":"1","name":"Demo User"}`)}))
	var user model.User
	require.NoError(t, db.GetJSON("user", &user))
	assert.Equal(t, "Demo User", user.Name)

	exists, err := db.Exists("user")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, db.Delete("user", "never-set"))
	exists, err = db.Exists("user")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSetAll(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SetAll(map[string][]byte{"a": []byte("1"), "b": []byte("2")}))
	got, err := db.GetBytes("b")
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))

	t.Run("all_or_nothing", func(t *testing.T) {
		err := db.SetAll(map[string][]byte{"c": []byte("3"), "": []byte("bad")})
		require.Error(t, err)
		exists, err := db.Exists("c")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

// =============================================================================
// Collection Tests
// =============================================================================

func TestCollectionAppend(t *testing.T) {
	notes := setupNotes(t)
	start := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	notes.SetClock(fakeClock(start))

	n, err := notes.Append(&model.Note{Title: "Groceries"})
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, start.Add(time.Minute), n.CreatedAt)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)

	got, err := notes.Get(n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
	assert.True(t, got.CreatedAt.Equal(n.CreatedAt))
}

func TestCollectionAppendDuplicateID(t *testing.T) {
	notes := setupNotes(t)

	_, err := notes.Append(&model.Note{ID: "fixed"})
	require.NoError(t, err)
	_, err = notes.Append(&model.Note{ID: "fixed"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	list, err := notes.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCollectionListKeepsInsertionOrder(t *testing.T) {
	notes := setupNotes(t)

	for _, title := range []string{"zeta", "alpha", "mid"} {
		_, err := notes.Append(&model.Note{Title: title})
		require.NoError(t, err)
	}

	list, err := notes.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "zeta", list[0].Title)
	assert.Equal(t, "alpha", list[1].Title)
	assert.Equal(t, "mid", list[2].Title)
}

func TestCollectionUpdate(t *testing.T) {
	notes := setupNotes(t)
	notes.SetClock(fakeClock(time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)))

	n, err := notes.Append(&model.Note{Title: "Draft"})
	require.NoError(t, err)

	updated, err := notes.Update(n.ID, func(note *model.Note) {
		note.Title = "Final"
		// Identity and creation time are not the mutator's to change.
		note.ID = "hijacked"
		note.CreatedAt = time.Time{}
	})
	require.NoError(t, err)
	assert.Equal(t, n.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(n.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(n.UpdatedAt))

	got, err := notes.Get(n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)

	_, err = notes.Get("hijacked")
	assert.True(t, IsErrKeyNotFound(err))
}

func TestCollectionUpdateMissing(t *testing.T) {
	notes := setupNotes(t)
	_, err := notes.Update("nope", func(*model.Note) {})
	assert.True(t, IsErrKeyNotFound(err))
}

func TestCollectionReturnsCopies(t *testing.T) {
	notes := setupNotes(t)
	n, err := notes.Append(&model.Note{Title: "Original"})
	require.NoError(t, err)

	got, err := notes.Get(n.ID)
	require.NoError(t, err)
	got.Title = "Changed locally"

	again, err := notes.Get(n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Title)
}

func TestCollectionRemove(t *testing.T) {
	notes := setupNotes(t)
	a, _ := notes.Append(&model.Note{Title: "a"})
	b, _ := notes.Append(&model.Note{Title: "b"})

	require.NoError(t, notes.Remove(a.ID))
	assert.True(t, IsErrKeyNotFound(notes.Remove(a.ID)))

	list, err := notes.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestCollectionReplace(t *testing.T) {
	notes := setupNotes(t)
	_, err := notes.Append(&model.Note{Title: "old"})
	require.NoError(t, err)

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	err = notes.Replace([]*model.Note{
		{ID: "keep", Title: "kept", CreatedAt: created, UpdatedAt: created},
		{Title: "fresh"},
	})
	require.NoError(t, err)

	list, err := notes.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "keep", list[0].ID)
	assert.True(t, list[0].CreatedAt.Equal(created))
	assert.NotEmpty(t, list[1].ID)
	assert.False(t, list[1].CreatedAt.IsZero())

	t.Run("empty", func(t *testing.T) {
		require.NoError(t, notes.Replace(nil))
		list, err := notes.List()
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("duplicate_ids_rejected", func(t *testing.T) {
		err := notes.Replace([]*model.Note{{ID: "x"}, {ID: "x"}})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})
}

func TestCollectionReplaceStampsChangedEntities(t *testing.T) {
	notes := setupNotes(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	notes.SetClock(func() time.Time { return now })

	a, err := notes.Append(&model.Note{Title: "a"})
	require.NoError(t, err)
	b, err := notes.Append(&model.Note{Title: "b"})
	require.NoError(t, err)

	now = start.Add(time.Hour)
	changed := *a
	changed.Title = "a2"
	changed.CreatedAt = now
	unchanged := *b
	require.NoError(t, notes.Replace([]*model.Note{&changed, &unchanged}))

	got, err := notes.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.Title)
	assert.True(t, got.CreatedAt.Equal(start), "creation time is kept")
	assert.True(t, got.UpdatedAt.Equal(now), "changed entity is stamped")

	got, err = notes.Get(b.ID)
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(start))
	assert.True(t, got.UpdatedAt.Equal(start), "unchanged entity keeps its update time")
}

func TestCollectionsAreIsolated(t *testing.T) {
	db := setupTestDB(t)
	notes, err := NewCollection(db, model.PrefixNote, func() *model.Note { return &model.Note{} })
	require.NoError(t, err)
	defer notes.Close()
	todos, err := NewCollection(db, model.PrefixTodo, func() *model.Todo { return &model.Todo{} })
	require.NoError(t, err)
	defer todos.Close()

	_, err = notes.Append(&model.Note{Title: "n"})
	require.NoError(t, err)
	_, err = todos.Append(&model.Todo{Title: "t", Priority: model.PriorityLow})
	require.NoError(t, err)

	require.NoError(t, todos.Replace(nil))
	list, err := notes.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
