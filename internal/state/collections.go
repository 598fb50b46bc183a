package state

import (
	"strings"

	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/logging"
	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/storage"
)

// =============================================================================
// Notes
// =============================================================================

// Notes returns every note in creation order.
func (a *Aggregator) Notes() ([]*model.Note, error) {
	return a.notes.List()
}

// SetNotes replaces the whole note collection.
func (a *Aggregator) SetNotes(notes []model.Note) error {
	return a.notes.Replace(pointers(notes))
}

// OpenNoteEditor opens the note editor for the note with the given id, or
// for a new note when id is empty.
func (a *Aggregator) OpenNoteEditor(id string) error {
	return openEditor(a, ModalNote, a.notes, id)
}

// EditingNote returns the note in the editing slot, nil when creating new.
func (a *Aggregator) EditingNote() (*model.Note, error) {
	return editing(a, ModalNote, a.notes)
}

// CommitNote stores a saved note draft, updating the note in the editing
// slot or appending a new one, and closes the note editor.
func (a *Aggregator) CommitNote(draft model.NoteDraft) (*model.Note, error) {
	return commit(a, ModalNote, a.notes, func() *model.Note { return &model.Note{} }, draft.Apply)
}

// DeleteNote removes a note.
func (a *Aggregator) DeleteNote(id string) error {
	return remove(a, ModalNote, a.notes, id)
}

// =============================================================================
// Todos
// =============================================================================

// Todos returns every todo in creation order.
func (a *Aggregator) Todos() ([]*model.Todo, error) {
	return a.todos.List()
}

// SetTodos replaces the whole todo collection.
func (a *Aggregator) SetTodos(todos []model.Todo) error {
	return a.todos.Replace(pointers(todos))
}

// OpenTodoEditor opens the todo editor for the todo with the given id, or
// for a new todo when id is empty.
func (a *Aggregator) OpenTodoEditor(id string) error {
	return openEditor(a, ModalTodo, a.todos, id)
}

// EditingTodo returns the todo in the editing slot, nil when creating new.
func (a *Aggregator) EditingTodo() (*model.Todo, error) {
	return editing(a, ModalTodo, a.todos)
}

// CommitTodo stores a saved todo draft and closes the todo editor.
func (a *Aggregator) CommitTodo(draft model.TodoDraft) (*model.Todo, error) {
	return commit(a, ModalTodo, a.todos, func() *model.Todo { return &model.Todo{} }, draft.Apply)
}

// ToggleTodo flips the completion flag of a todo from the list view.
func (a *Aggregator) ToggleTodo(id string) (*model.Todo, error) {
	return a.todos.Update(id, func(t *model.Todo) { t.Completed = !t.Completed })
}

// DeleteTodo removes a todo.
func (a *Aggregator) DeleteTodo(id string) error {
	return remove(a, ModalTodo, a.todos, id)
}

// =============================================================================
// Checklists
// =============================================================================

// Checklists returns every checklist in creation order.
func (a *Aggregator) Checklists() ([]*model.Checklist, error) {
	return a.checklists.List()
}

// SetChecklists replaces the whole checklist collection.
func (a *Aggregator) SetChecklists(checklists []model.Checklist) error {
	return a.checklists.Replace(pointers(checklists))
}

// OpenChecklistEditor opens the checklist editor for the checklist with the
// given id, or for a new checklist when id is empty.
func (a *Aggregator) OpenChecklistEditor(id string) error {
	return openEditor(a, ModalChecklist, a.checklists, id)
}

// EditingChecklist returns the checklist in the editing slot, nil when
// creating new.
func (a *Aggregator) EditingChecklist() (*model.Checklist, error) {
	return editing(a, ModalChecklist, a.checklists)
}

// CommitChecklist stores a saved checklist draft and closes the checklist
// editor.
func (a *Aggregator) CommitChecklist(draft model.ChecklistDraft) (*model.Checklist, error) {
	return commit(a, ModalChecklist, a.checklists, func() *model.Checklist { return &model.Checklist{} }, draft.Apply)
}

// ToggleChecklistItem flips one item of a stored checklist from the list view.
func (a *Aggregator) ToggleChecklistItem(checklistID, itemID string) (*model.Checklist, error) {
	current, err := a.checklists.Get(checklistID)
	if err != nil {
		return nil, err
	}
	if !hasItem(current.Items, itemID) {
		return nil, errors.WithContextf(errors.ErrNotFound, "checklist item %s", itemID)
	}
	return a.checklists.Update(checklistID, func(c *model.Checklist) {
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				c.Items[i].Completed = !c.Items[i].Completed
				return
			}
		}
	})
}

func hasItem(items []model.ChecklistItem, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// DeleteChecklist removes a checklist.
func (a *Aggregator) DeleteChecklist(id string) error {
	return remove(a, ModalChecklist, a.checklists, id)
}

// =============================================================================
// Goals
// =============================================================================

// Goals returns every goal in creation order.
func (a *Aggregator) Goals() ([]*model.Goal, error) {
	return a.goals.List()
}

// SetGoals replaces the whole goal collection.
func (a *Aggregator) SetGoals(goals []model.Goal) error {
	return a.goals.Replace(pointers(goals))
}

// AddGoal appends a goal. The title is required and the target must be
// positive.
func (a *Aggregator) AddGoal(g model.Goal) (*model.Goal, error) {
	g.Title = strings.TrimSpace(g.Title)
	if g.Title == "" {
		return nil, errors.NewUserErrorFor(errors.ErrTitleRequired,
			"Goal title is required", "Type a title for the goal")
	}
	if g.TargetValue <= 0 {
		return nil, errors.NewUserErrorFor(errors.ErrInvalidAmount,
			"Goal target must be positive", "Enter a target above zero")
	}
	if g.Category == "" {
		g.Category = model.GoalCategoryWishlist
	}
	g.ID = ""
	return a.goals.Append(&g)
}

// ContributeToGoal adds amount to a goal's current value, never below zero.
func (a *Aggregator) ContributeToGoal(id string, amount float64) (*model.Goal, error) {
	return a.goals.Update(id, func(g *model.Goal) {
		g.CurrentValue = max(0, g.CurrentValue+amount)
	})
}

// ToggleGoalFavorite flips a goal's favorite flag.
func (a *Aggregator) ToggleGoalFavorite(id string) (*model.Goal, error) {
	return a.goals.Update(id, func(g *model.Goal) { g.IsFavorite = !g.IsFavorite })
}

// DeleteGoal removes a goal.
func (a *Aggregator) DeleteGoal(id string) error {
	return a.goals.Remove(id)
}

// =============================================================================
// Helpers
// =============================================================================

func pointers[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		v := items[i]
		out[i] = &v
	}
	return out
}

func openEditor[T model.Entity](a *Aggregator, kind ModalKind, c *storage.Collection[T], id string) error {
	if id != "" {
		if _, err := c.Get(id); err != nil {
			return errors.WithContextf(err, "%s %s", kind, id)
		}
	}
	a.setModal(ActiveModal{Kind: kind, EntityID: id})
	return nil
}

func editing[T model.Entity](a *Aggregator, kind ModalKind, c *storage.Collection[T]) (T, error) {
	var zero T
	m := a.Modal()
	if m.Kind != kind || m.EntityID == "" {
		return zero, nil
	}
	return c.Get(m.EntityID)
}

// commit applies a draft to the entity in the editing slot, or appends a new
// entity when the slot is empty, then closes the editor.
func commit[T model.Entity](a *Aggregator, kind ModalKind, c *storage.Collection[T], newFunc func() T, apply func(T)) (T, error) {
	var (
		v   T
		err error
	)
	m := a.Modal()
	if m.Kind == kind && m.EntityID != "" {
		v, err = c.Update(m.EntityID, apply)
	} else {
		v = newFunc()
		apply(v)
		v, err = c.Append(v)
	}
	if err != nil {
		var zero T
		return zero, errors.WithContextf(err, "save %s", kind)
	}
	a.closeModal(kind)
	logging.DebugLog("entity saved", logging.KeyEntity, kind.String(), logging.KeyEntityID, v.GetID())
	return v, nil
}

// remove deletes an entity and closes its editor if it was editing it.
func remove[T model.Entity](a *Aggregator, kind ModalKind, c *storage.Collection[T], id string) error {
	if err := c.Remove(id); err != nil {
		return errors.WithContextf(err, "delete %s %s", kind, id)
	}
	a.mu.Lock()
	if a.modal.Kind == kind && a.modal.EntityID == id {
		a.modal = ActiveModal{}
	}
	a.mu.Unlock()
	return nil
}
