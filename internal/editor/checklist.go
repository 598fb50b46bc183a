package editor

import (
	"slices"
	"strings"

	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/validate"
)

// ChecklistEditor edits a single checklist and its items.
type ChecklistEditor struct {
	session
	title      string
	items      []model.ChecklistItem
	focusInput bool
}

var _ Editor[model.Checklist, model.ChecklistDraft] = (*ChecklistEditor)(nil)

// NewChecklistEditor creates a closed checklist editor.
func NewChecklistEditor() *ChecklistEditor {
	return &ChecklistEditor{}
}

// Open seeds the editor from existing, or blank fields when nil.
func (e *ChecklistEditor) Open(existing *model.Checklist) {
	e.reset()
	if existing == nil {
		e.begin("")
		return
	}
	e.begin(existing.ID)
	d := existing.Draft()
	e.title = validate.SanitizeTitle(d.Title)
	e.items = d.Items
}

// Title returns the local title.
func (e *ChecklistEditor) Title() string { return e.title }

// Items returns a copy of the local items.
func (e *ChecklistEditor) Items() []model.ChecklistItem {
	return model.CloneItems(e.items)
}

// Progress returns the completed and total local item counts.
func (e *ChecklistEditor) Progress() (completed, total int) {
	return model.ItemsProgress(e.items)
}

// SetTitle replaces the local title, capped at the title length limit.
func (e *ChecklistEditor) SetTitle(title string) {
	e.title = validate.SanitizeTitle(title)
}

// AddItem appends a new unchecked item. Text is trimmed; blank text is a
// no-op. A successful add requests focus back on the new-item input.
func (e *ChecklistEditor) AddItem(text string) (model.ChecklistItem, bool) {
	text = strings.TrimSpace(validate.StripControlChars(text))
	if text == "" {
		return model.ChecklistItem{}, false
	}
	item := model.ChecklistItem{
		ID:   model.NewID(),
		Text: validate.TruncateRunes(text, validate.MaxItemTextLength),
	}
	e.items = append(e.items, item)
	e.focusInput = true
	return item, true
}

// ToggleItem flips the completion flag of the item with the given id.
func (e *ChecklistEditor) ToggleItem(id string) bool {
	i := e.indexOf(id)
	if i < 0 {
		return false
	}
	e.items[i].Completed = !e.items[i].Completed
	return true
}

// EditItem replaces the text of the item with the given id. Text is not
// trimmed so in-progress edits keep their whitespace.
func (e *ChecklistEditor) EditItem(id, text string) bool {
	i := e.indexOf(id)
	if i < 0 {
		return false
	}
	e.items[i].Text = validate.TruncateRunes(text, validate.MaxItemTextLength)
	return true
}

// DeleteItem removes the item with the given id.
func (e *ChecklistEditor) DeleteItem(id string) bool {
	i := e.indexOf(id)
	if i < 0 {
		return false
	}
	e.items = slices.Delete(e.items, i, i+1)
	return true
}

// MoveItem shifts the item with the given id by delta positions, clamped to
// the list bounds.
func (e *ChecklistEditor) MoveItem(id string, delta int) bool {
	i := e.indexOf(id)
	if i < 0 {
		return false
	}
	j := max(0, min(len(e.items)-1, i+delta))
	if i == j {
		return false
	}
	item := e.items[i]
	e.items = slices.Delete(e.items, i, i+1)
	e.items = slices.Insert(e.items, j, item)
	return true
}

// TakeFocusRequest reports and clears a pending request to focus the
// new-item input.
func (e *ChecklistEditor) TakeFocusRequest() bool {
	f := e.focusInput
	e.focusInput = false
	return f
}

// Cancel discards local edits and closes the editor.
func (e *ChecklistEditor) Cancel() {
	e.reset()
	e.end()
}

// Save emits the checklist draft. A blank title falls back to the default
// title; a blank title with no items is rejected and the editor stays open.
func (e *ChecklistEditor) Save() (model.ChecklistDraft, error) {
	if err := e.checkOpen(); err != nil {
		return model.ChecklistDraft{}, err
	}

	title := strings.TrimSpace(e.title)
	if title == "" && len(e.items) == 0 {
		return model.ChecklistDraft{}, nothingToSave("items")
	}
	if title == "" {
		title = model.DefaultChecklistTitle
	}

	draft := model.ChecklistDraft{Title: title, Items: model.CloneItems(e.items)}
	if draft.Items == nil {
		draft.Items = []model.ChecklistItem{}
	}
	e.reset()
	e.end()
	return draft, nil
}

func (e *ChecklistEditor) indexOf(id string) int {
	return slices.IndexFunc(e.items, func(it model.ChecklistItem) bool {
		return it.ID == id
	})
}

func (e *ChecklistEditor) reset() {
	e.title = ""
	e.items = nil
	e.focusInput = false
}
