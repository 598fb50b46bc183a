package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/manav03panchal/lifedash/internal/editor"
	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/logging"
	"github.com/manav03panchal/lifedash/internal/parser"
	"github.com/manav03panchal/lifedash/internal/state"
)

// modal is the dialog rendered for the aggregator's active modal. A modal
// closes itself through the aggregator; the dashboard drops it once the
// aggregator reports a different modal.
type modal interface {
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
	Help() []helpKey
}

// editors keeps one editor per entity kind for the dashboard's lifetime.
// Each open seeds a fresh session, so nothing carries over between opens.
type editors struct {
	note      *editor.NoteEditor
	todo      *editor.TodoEditor
	checklist *editor.ChecklistEditor
}

func newEditors() editors {
	return editors{
		note:      editor.NewNoteEditor(),
		todo:      editor.NewTodoEditor(),
		checklist: editor.NewChecklistEditor(),
	}
}

// newModal builds the dialog for the active modal.
func newModal(d *DashboardModel, active state.ActiveModal) (modal, error) {
	a := d.agg
	switch active.Kind {
	case state.ModalWater:
		return newWaterModal(a), nil
	case state.ModalSleep:
		return newSleepModal(a), nil
	case state.ModalSteps:
		return newStepsModal(a), nil
	case state.ModalPlaylist:
		return newPlaylistModal(a), nil
	case state.ModalIncome, state.ModalExpense:
		return newTransactionModal(a, active.Kind, d.now), nil
	case state.ModalGoals:
		return newGoalsModal(a), nil
	case state.ModalSavingsGoal:
		return newSavingsGoalModal(a, d.now), nil
	case state.ModalInvestment:
		return newInvestmentModal(a, d.now), nil
	case state.ModalTransactionDetail:
		return newTransactionDetailModal(a), nil
	case state.ModalNote:
		return newNoteModal(a, d.editors.note)
	case state.ModalTodo:
		return newTodoModal(a, d.editors.todo, d.now)
	case state.ModalChecklist:
		return newChecklistModal(a, d.editors.checklist)
	}
	return nil, errors.New("no dialog for modal " + active.Kind.String())
}

// closeModal dismisses the active modal.
func closeModal(a *state.Aggregator) tea.Cmd {
	logging.DebugLog("modal closed", logging.KeyModal, a.Modal().Kind.String())
	a.CloseModal()
	return nil
}

// modalFrame renders a modal title, body and inline error.
func modalFrame(title, body string, err error, width int) string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(body)
	if err != nil {
		sb.WriteString("\n\n")
		sb.WriteString(StyleError.Render(inlineError(err)))
	}
	style := StyleModal
	if width > 20 {
		w := width - 8
		if w > 72 {
			w = 72
		}
		style = style.Width(w)
	}
	return style.Render(sb.String())
}

// inlineError renders validation failures with their message and suggestion,
// parse failures with example inputs, and anything else as a generic message.
func inlineError(err error) string {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return strings.TrimRight(pe.FormatWithExamples(), "\n")
	}
	if ue, ok := errors.AsUserError(err); ok {
		if ue.Suggestion != "" {
			return ue.Message + ". " + ue.Suggestion
		}
		return ue.Message
	}
	return err.Error()
}

// saveHelp lists the editor accelerators.
func saveHelp() []helpKey {
	return []helpKey{
		{editor.SaveKey.Help().Key, editor.SaveKey.Help().Desc},
		{editor.CancelKey.Help().Key, editor.CancelKey.Help().Desc},
		{"tab", "next field"},
	}
}
