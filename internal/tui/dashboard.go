package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/manav03panchal/lifedash/internal/logging"
	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/state"
)

// tickMsg is sent when the clock ticks.
type tickMsg time.Time

// changeMsg is sent when the aggregator changes outside a key press, such
// as on a hold timer repeat.
type changeMsg struct{}

// Focusable lists on the dashboard, cycled with tab.
type listFocus int

const (
	focusNotes listFocus = iota
	focusTodos
	focusChecklists
	focusTransactions

	focusCount
)

// recentTransactions is how many ledger entries the finance panel lists.
const recentTransactions = 5

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	agg     *state.Aggregator
	session *model.Session
	editors editors
	modal   modal
	now     func() time.Time

	// Snapshot of the aggregator, reloaded after every message.
	notes      []*model.Note
	todos      []*model.Todo
	checklists []*model.Checklist
	goals      []*model.Goal
	recent     []*model.Transaction
	summary    state.Summary
	expenses   []state.CategoryTotal

	// UI state
	focus      listFocus
	cursor     [focusCount]int
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time
	quitting   bool

	refreshInterval time.Duration
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Aggregator *state.Aggregator
	// Session is the signed-in user; nil runs the dashboard as a guest.
	Session         *model.Session
	RefreshInterval time.Duration
	Now             func() time.Time
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	m := &DashboardModel{
		agg:             config.Aggregator,
		session:         config.Session,
		editors:         newEditors(),
		now:             config.Now,
		refreshInterval: config.RefreshInterval,
	}
	m.loadData()
	return m
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.waitForChange(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.modal != nil {
			cmd = m.modal.Update(msg)
		} else {
			cmd = m.handleKeyPress(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && m.now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		cmd = m.tickCmd()

	case changeMsg:
		cmd = m.waitForChange()

	default:
		if m.modal != nil {
			cmd = m.modal.Update(msg)
		}
	}

	if m.quitting {
		return m, tea.Quit
	}
	m.syncModal()
	m.loadData()
	return m, cmd
}

// handleKeyPress handles keyboard input while no modal is open.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quit()
		return nil

	// Life metrics
	case "w":
		m.agg.OpenModal(state.ModalWater)
	case "b":
		m.agg.OpenModal(state.ModalSleep)
	case "s":
		m.agg.OpenModal(state.ModalSteps)

	// Music
	case "m":
		m.agg.OpenModal(state.ModalPlaylist)
	case " ":
		m.agg.TogglePlay()
	case ">":
		m.agg.NextTrack()
	case "<":
		m.agg.PrevTrack()

	// Finance
	case "i":
		m.agg.OpenModal(state.ModalIncome)
	case "e":
		m.agg.OpenModal(state.ModalExpense)
	case "g":
		m.agg.OpenModal(state.ModalGoals)
	case "v":
		m.agg.OpenModal(state.ModalSavingsGoal)
	case "x":
		m.agg.OpenModal(state.ModalInvestment)

	// Collections
	case "n":
		m.err = m.agg.OpenNoteEditor("")
	case "t":
		m.err = m.agg.OpenTodoEditor("")
	case "c":
		m.err = m.agg.OpenChecklistEditor("")
	case "tab":
		m.focus = (m.focus + 1) % focusCount
	case "shift+tab":
		m.focus = (m.focus + focusCount - 1) % focusCount
	case "up", "k":
		if m.cursor[m.focus] > 0 {
			m.cursor[m.focus]--
		}
	case "down", "j":
		if m.cursor[m.focus] < m.listLen(m.focus)-1 {
			m.cursor[m.focus]++
		}
	case "enter":
		m.err = m.openSelected()
	case "d":
		m.err = m.deleteSelected()
	case ".":
		m.err = m.toggleSelected()

	case "r":
		m.err = nil
		m.setMessage("Refreshed", time.Second)
	}
	return nil
}

// quit tears the dashboard down; closing the aggregator cancels every
// armed hold timer.
func (m *DashboardModel) quit() {
	m.quitting = true
	m.modal = nil
	if err := m.agg.Close(); err != nil {
		logging.Warn("dashboard teardown failed", logging.KeyError, err)
	}
}

// selectedID returns the id under the cursor of the focused list.
func (m *DashboardModel) selectedID() string {
	i := m.cursor[m.focus]
	switch m.focus {
	case focusNotes:
		if i < len(m.notes) {
			return m.notes[i].ID
		}
	case focusTodos:
		if i < len(m.todos) {
			return m.todos[i].ID
		}
	case focusChecklists:
		if i < len(m.checklists) {
			return m.checklists[i].ID
		}
	case focusTransactions:
		if i < len(m.recent) {
			return m.recent[i].ID
		}
	}
	return ""
}

func (m *DashboardModel) openSelected() error {
	id := m.selectedID()
	if id == "" {
		return nil
	}
	switch m.focus {
	case focusNotes:
		return m.agg.OpenNoteEditor(id)
	case focusTodos:
		return m.agg.OpenTodoEditor(id)
	case focusChecklists:
		return m.agg.OpenChecklistEditor(id)
	case focusTransactions:
		return m.agg.ShowTransaction(id)
	}
	return nil
}

func (m *DashboardModel) deleteSelected() error {
	id := m.selectedID()
	if id == "" {
		return nil
	}
	var err error
	switch m.focus {
	case focusNotes:
		err = m.agg.DeleteNote(id)
	case focusTodos:
		err = m.agg.DeleteTodo(id)
	case focusChecklists:
		err = m.agg.DeleteChecklist(id)
	case focusTransactions:
		err = m.agg.DeleteTransaction(id)
	}
	if err == nil {
		m.setMessage("Deleted", 2*time.Second)
	}
	return err
}

func (m *DashboardModel) toggleSelected() error {
	if m.focus != focusTodos {
		return nil
	}
	id := m.selectedID()
	if id == "" {
		return nil
	}
	_, err := m.agg.ToggleTodo(id)
	return err
}

// syncModal keeps the dialog in step with the aggregator's active modal.
func (m *DashboardModel) syncModal() {
	if m.quitting {
		return
	}
	active := m.agg.Modal()
	if !active.IsOpen() {
		m.modal = nil
		return
	}
	if m.modal != nil && modalKindOf(m.modal) == active.Kind {
		return
	}
	md, err := newModal(m, active)
	if err != nil {
		m.err = err
		m.agg.CloseModal()
		m.modal = nil
		return
	}
	m.modal = md
}

// modalKindOf reports which aggregator modal a dialog renders.
func modalKindOf(md modal) state.ModalKind {
	switch d := md.(type) {
	case *metricModal:
		switch d.hold {
		case state.HoldWater:
			return state.ModalWater
		case state.HoldSleep:
			return state.ModalSleep
		case state.HoldSteps:
			return state.ModalSteps
		}
	case *playlistModal:
		return state.ModalPlaylist
	case *transactionModal:
		if d.typ == model.TransactionIncome {
			return state.ModalIncome
		}
		return state.ModalExpense
	case *goalsModal:
		return state.ModalGoals
	case *savingsGoalModal:
		return state.ModalSavingsGoal
	case *investmentModal:
		return state.ModalInvestment
	case *transactionDetailModal:
		return state.ModalTransactionDetail
	case *noteModal:
		return state.ModalNote
	case *todoModal:
		return state.ModalTodo
	case *checklistModal:
		return state.ModalChecklist
	}
	return state.ModalNone
}

// loadData refreshes the snapshot from the aggregator.
func (m *DashboardModel) loadData() {
	if m.agg.Closed() {
		return
	}
	var err error
	if m.notes, err = m.agg.Notes(); err != nil {
		m.err = err
		return
	}
	if m.todos, err = m.agg.Todos(); err != nil {
		m.err = err
		return
	}
	if m.checklists, err = m.agg.Checklists(); err != nil {
		m.err = err
		return
	}
	if m.goals, err = m.agg.Goals(); err != nil {
		m.err = err
		return
	}
	if m.recent, err = m.agg.Recent(recentTransactions); err != nil {
		m.err = err
		return
	}
	if m.summary, err = m.agg.Summary(); err != nil {
		m.err = err
		return
	}
	if m.expenses, err = m.agg.ByCategory(model.TransactionExpense); err != nil {
		m.err = err
		return
	}
	for f := listFocus(0); f < focusCount; f++ {
		if n := m.listLen(f); m.cursor[f] >= n {
			m.cursor[f] = max(n-1, 0)
		}
	}
}

func (m *DashboardModel) listLen(f listFocus) int {
	switch f {
	case focusNotes:
		return len(m.notes)
	case focusTodos:
		return len(m.todos)
	case focusChecklists:
		return len(m.checklists)
	case focusTransactions:
		return len(m.recent)
	}
	return 0
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	if m.modal != nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			m.modal.View(m.width),
			HelpBar(m.modal.Help()),
		)
		if m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
		}
		return content
	}

	sections := []string{m.renderHeader()}

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %s", inlineError(m.err))))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	sections = append(sections, m.renderPanels(), HelpBar(dashboardHelp))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *DashboardModel) renderPanels() string {
	now := m.now()
	txCursor := m.cursor[focusTransactions]
	finance := func(w int) string {
		return FinancePanel(m.summary, m.expenses, m.recent, txCursor, m.focus == focusTransactions, w)
	}
	notes := func(w int) string {
		return NotesPanel(m.notes, m.cursor[focusNotes], m.focus == focusNotes, w)
	}
	todos := func(w int) string {
		return TodosPanel(m.todos, m.cursor[focusTodos], m.focus == focusTodos, now, w)
	}
	checklists := func(w int) string {
		return ChecklistsPanel(m.checklists, m.cursor[focusChecklists], m.focus == focusChecklists, w)
	}

	// Narrow terminals stack every panel.
	if m.width < 100 {
		w := m.width
		return lipgloss.JoinVertical(lipgloss.Left,
			MetricsPanel(m.agg.Metrics(), w),
			MusicPanel(m.agg.Music(), w),
			finance(w),
			GoalsPanel(m.goals, w),
			notes(w),
			todos(w),
			checklists(w),
		)
	}

	half := m.width / 2
	left := lipgloss.JoinVertical(lipgloss.Left,
		MetricsPanel(m.agg.Metrics(), half),
		MusicPanel(m.agg.Music(), half),
		GoalsPanel(m.goals, half),
	)
	right := finance(m.width - half)
	third := m.width / 3
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		notes(third),
		todos(third),
		checklists(m.width-2*third),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		bottom,
	)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Lifedash")
	who := "guest"
	if m.session != nil {
		who = fmt.Sprintf("%s (%s)", m.session.User.Name, m.session.User.Role)
	}
	now := m.now().Format("Mon Jan 2, 15:04")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ",
		StyleSubtitle.Render(who), "  ", StyleSubtitle.Render(now)) + "\n"
}

var dashboardHelp = []helpKey{
	{"w/b/s", "water/sleep/steps"},
	{"m", "music"},
	{"i/e/x", "income/expense/invest"},
	{"g/v", "goals"},
	{"n/t/c", "new note/todo/list"},
	{"tab", "focus"},
	{"enter", "open"},
	{"d", "delete"},
	{"q", "quit"},
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = m.now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForChange blocks until the aggregator reports a change.
func (m *DashboardModel) waitForChange() tea.Cmd {
	changes := m.agg.Changes()
	return func() tea.Msg {
		<-changes
		return changeMsg{}
	}
}

// Run starts the dashboard TUI and closes the aggregator when it exits.
func Run(config DashboardConfig) error {
	defer func() {
		if err := config.Aggregator.Close(); err != nil {
			logging.Warn("dashboard teardown failed", logging.KeyError, err)
		}
	}()
	p := tea.NewProgram(NewDashboardModel(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
