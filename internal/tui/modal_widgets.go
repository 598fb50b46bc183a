package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/manav03panchal/lifedash/internal/editor"
	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/output"
	"github.com/manav03panchal/lifedash/internal/parser"
	"github.com/manav03panchal/lifedash/internal/state"
)

// Step sizes for the metric editors.
const (
	waterStep = 1
	sleepStep = 15 * time.Minute
	stepsStep = 500
)

// =============================================================================
// Metric editors
// =============================================================================

// metricModal edits one life metric with +/- and a press-and-hold toggle.
// Terminals report no key releases, so space starts a hold and the next
// space (or closing the modal) ends it.
type metricModal struct {
	agg   *state.Aggregator
	hold  state.HoldKind
	title string
	// adjust applies one step in direction dir (+1 or -1) to sub-value field.
	// Holds call it from the timer goroutine, so it must not read m.field.
	adjust func(dir, field int)
	render func() string
	dir    int
	// fields lists sub-values switched with tab; empty for single-value metrics.
	fields []string
	field  int
}

func newWaterModal(a *state.Aggregator) *metricModal {
	m := &metricModal{agg: a, hold: state.HoldWater, title: "Water Intake", dir: 1}
	m.adjust = func(dir, _ int) { a.AdjustWater(dir * waterStep) }
	m.render = func() string {
		mt := a.Metrics()
		return StyleValue.Render(fmt.Sprintf("%d / %d glasses", mt.WaterIntake, mt.WaterGoal)) +
			"\n" + ProgressBar(mt.WaterProgress(), 30)
	}
	return m
}

func newSleepModal(a *state.Aggregator) *metricModal {
	m := &metricModal{agg: a, hold: state.HoldSleep, title: "Sleep", dir: 1, fields: []string{"Bedtime", "Wake"}}
	m.adjust = func(dir, field int) {
		delta := time.Duration(dir) * sleepStep
		if field == 0 {
			a.AdjustSleepTime(delta)
		} else {
			a.AdjustWakeTime(delta)
		}
	}
	m.render = func() string {
		mt := a.Metrics()
		values := []string{mt.SleepTime, mt.WakeTime}
		var sb strings.Builder
		for i, label := range m.fields {
			line := fmt.Sprintf("%-8s %s", label, values[i])
			if i == m.field {
				sb.WriteString(StyleSelected.Render("> " + line))
			} else {
				sb.WriteString("  " + line)
			}
			sb.WriteString("\n")
		}
		sb.WriteString(StyleValue.Render(output.FormatDuration(mt.SleepDuration())))
		return sb.String()
	}
	return m
}

func newStepsModal(a *state.Aggregator) *metricModal {
	m := &metricModal{agg: a, hold: state.HoldSteps, title: "Steps", dir: 1}
	m.adjust = func(dir, _ int) { a.AdjustSteps(dir * stepsStep) }
	m.render = func() string {
		mt := a.Metrics()
		return StyleValue.Render(fmt.Sprintf("%d / %d steps", mt.StepsToday, mt.StepsGoal)) +
			"\n" + ProgressBar(mt.StepsProgress(), 30)
	}
	return m
}

func (m *metricModal) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch k.String() {
	case "esc", "q":
		m.agg.EndHold(m.hold)
		return closeModal(m.agg)
	case "+", "=", "right", "l":
		m.dir = 1
		m.adjust(m.dir, m.field)
	case "-", "_", "left", "h":
		m.dir = -1
		m.adjust(m.dir, m.field)
	case " ":
		if m.agg.IsHolding(m.hold) {
			m.agg.EndHold(m.hold)
			return nil
		}
		dir, field := m.dir, m.field
		m.agg.StartHold(m.hold, func() { m.adjust(dir, field) })
	case "tab":
		if len(m.fields) > 0 {
			m.agg.EndHold(m.hold)
			m.field = (m.field + 1) % len(m.fields)
		}
	}
	return nil
}

func (m *metricModal) View(width int) string {
	body := m.render()
	if m.agg.IsHolding(m.hold) {
		body += "\n\n" + StyleWarning.Render("holding…")
	}
	return modalFrame(m.title, body, nil, width)
}

func (m *metricModal) Help() []helpKey {
	keys := []helpKey{{"+/-", "adjust"}, {"space", "hold"}}
	if len(m.fields) > 0 {
		keys = append(keys, helpKey{"tab", "switch"})
	}
	return append(keys, helpKey{"esc", "close"})
}

// =============================================================================
// Playlist
// =============================================================================

type playlistModal struct {
	agg    *state.Aggregator
	cursor int
}

func newPlaylistModal(a *state.Aggregator) *playlistModal {
	return &playlistModal{agg: a, cursor: a.Music().Index}
}

func (m *playlistModal) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch k.String() {
	case "esc", "q":
		return closeModal(m.agg)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(state.Playlist)-1 {
			m.cursor++
		}
	case "enter":
		m.agg.SetCurrentTrack(m.cursor)
		m.agg.SetPlaying(true)
	case " ":
		m.agg.TogglePlay()
	case "n", ">":
		m.agg.NextTrack()
		m.cursor = m.agg.Music().Index
	case "p", "<":
		m.agg.PrevTrack()
		m.cursor = m.agg.Music().Index
	}
	return nil
}

func (m *playlistModal) View(width int) string {
	music := m.agg.Music()
	var sb strings.Builder
	for i, t := range state.Playlist {
		marker := "  "
		if i == music.Index {
			marker = "♪ "
		}
		line := fmt.Sprintf("%s%s - %s  %s", marker, t.Title, t.Artist, output.FormatDuration(t.Duration))
		if i == m.cursor {
			line = StyleSelected.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return modalFrame("Playlist", strings.TrimRight(sb.String(), "\n"), nil, width)
}

func (m *playlistModal) Help() []helpKey {
	return []helpKey{{"enter", "play"}, {"space", "pause"}, {"n/p", "next/prev"}, {"esc", "close"}}
}

// =============================================================================
// Income / expense
// =============================================================================

const (
	txnFieldDescription = iota
	txnFieldAmount
	txnFieldCategory
)

type transactionModal struct {
	agg  *state.Aggregator
	typ  model.TransactionType
	form *form
	now  func() time.Time
	err  error
}

func newTransactionModal(a *state.Aggregator, kind state.ModalKind, now func() time.Time) *transactionModal {
	typ := model.TransactionExpense
	if kind == state.ModalIncome {
		typ = model.TransactionIncome
	}
	return &transactionModal{
		agg:  a,
		typ:  typ,
		form: newForm("Description", "Amount", "Category"),
		now:  now,
	}
}

func (m *transactionModal) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case editor.IsCancelKey(k.String()):
			return closeModal(m.agg)
		case editor.IsSaveKey(k.String()), k.String() == "enter":
			return m.save()
		}
	}
	return m.form.update(msg)
}

func (m *transactionModal) save() tea.Cmd {
	amount, err := parser.ParseAmount(m.form.value(txnFieldAmount))
	if err != nil {
		m.err = err
		return nil
	}
	_, err = m.agg.AddTransaction(model.Transaction{
		Description: m.form.value(txnFieldDescription),
		Amount:      amount,
		Category:    m.form.value(txnFieldCategory),
		Type:        m.typ,
		Date:        m.now(),
	})
	m.err = err
	return nil
}

func (m *transactionModal) View(width int) string {
	title := "Add Expense"
	if m.typ == model.TransactionIncome {
		title = "Add Income"
	}
	return modalFrame(title, m.form.view(), m.err, width)
}

func (m *transactionModal) Help() []helpKey { return saveHelp() }

// =============================================================================
// Goals
// =============================================================================

type goalsModal struct {
	agg    *state.Aggregator
	cursor int
	err    error
}

func newGoalsModal(a *state.Aggregator) *goalsModal {
	return &goalsModal{agg: a}
}

func (m *goalsModal) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	goals, err := m.agg.Goals()
	if err != nil {
		m.err = err
		return nil
	}
	var current *model.Goal
	if m.cursor >= 0 && m.cursor < len(goals) {
		current = goals[m.cursor]
	}

	switch k.String() {
	case "esc", "q":
		return closeModal(m.agg)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(goals)-1 {
			m.cursor++
		}
	case "a", "n":
		m.agg.OpenModal(state.ModalSavingsGoal)
	case "f":
		if current != nil {
			_, m.err = m.agg.ToggleGoalFavorite(current.ID)
		}
	case "+", "=":
		if current != nil {
			_, m.err = m.agg.ContributeToGoal(current.ID, contributionStep(current))
		}
	case "-":
		if current != nil {
			_, m.err = m.agg.ContributeToGoal(current.ID, -contributionStep(current))
		}
	case "d":
		if current != nil {
			m.err = m.agg.DeleteGoal(current.ID)
			if m.cursor >= len(goals)-1 && m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return nil
}

// contributionStep is a tenth of the target.
func contributionStep(g *model.Goal) float64 {
	return g.TargetValue / 10
}

func (m *goalsModal) View(width int) string {
	goals, err := m.agg.Goals()
	if err != nil {
		return modalFrame("Goals", "", err, width)
	}
	if len(goals) == 0 {
		return modalFrame("Goals", StyleSubtitle.Render("No goals yet. Press 'a' to add one."), m.err, width)
	}
	var sb strings.Builder
	for i, g := range goals {
		sb.WriteString(goalLine(g, i == m.cursor, 20))
		sb.WriteString("\n")
	}
	return modalFrame("Goals", strings.TrimRight(sb.String(), "\n"), m.err, width)
}

func (m *goalsModal) Help() []helpKey {
	return []helpKey{{"a", "add"}, {"+/-", "contribute"}, {"f", "favorite"}, {"d", "delete"}, {"esc", "close"}}
}

// =============================================================================
// Savings goal / investment
// =============================================================================

const (
	goalFieldTitle = iota
	goalFieldTarget
	goalFieldDate
)

type savingsGoalModal struct {
	agg  *state.Aggregator
	form *form
	now  func() time.Time
	err  error
}

func newSavingsGoalModal(a *state.Aggregator, now func() time.Time) *savingsGoalModal {
	return &savingsGoalModal{agg: a, form: newForm("Title", "Target amount", "Target date (optional)"), now: now}
}

func (m *savingsGoalModal) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case editor.IsCancelKey(k.String()):
			return closeModal(m.agg)
		case editor.IsSaveKey(k.String()), k.String() == "enter":
			return m.save()
		}
	}
	return m.form.update(msg)
}

func (m *savingsGoalModal) save() tea.Cmd {
	target, err := parser.ParseAmount(m.form.value(goalFieldTarget))
	if err != nil {
		m.err = err
		return nil
	}
	due, err := parser.ParseDueDate(m.form.value(goalFieldDate), m.now())
	if err != nil {
		m.err = err
		return nil
	}
	if _, err := m.agg.AddGoal(model.Goal{
		Title:       m.form.value(goalFieldTitle),
		TargetValue: target,
		Unit:        "$",
		Category:    model.GoalCategorySavings,
		TargetDate:  due,
	}); err != nil {
		m.err = err
		return nil
	}
	return closeModal(m.agg)
}

func (m *savingsGoalModal) View(width int) string {
	return modalFrame("New Savings Goal", m.form.view(), m.err, width)
}

func (m *savingsGoalModal) Help() []helpKey { return saveHelp() }

// InvestmentCategory is the ledger category used for investment entries.
const InvestmentCategory = "Investment"

type investmentModal struct {
	agg  *state.Aggregator
	form *form
	now  func() time.Time
	err  error
}

func newInvestmentModal(a *state.Aggregator, now func() time.Time) *investmentModal {
	return &investmentModal{agg: a, form: newForm("Description", "Amount"), now: now}
}

func (m *investmentModal) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case editor.IsCancelKey(k.String()):
			return closeModal(m.agg)
		case editor.IsSaveKey(k.String()), k.String() == "enter":
			return m.save()
		}
	}
	return m.form.update(msg)
}

func (m *investmentModal) save() tea.Cmd {
	amount, err := parser.ParseAmount(m.form.value(txnFieldAmount))
	if err != nil {
		m.err = err
		return nil
	}
	if _, err := m.agg.AddTransaction(model.Transaction{
		Description: m.form.value(txnFieldDescription),
		Amount:      amount,
		Category:    InvestmentCategory,
		Type:        model.TransactionExpense,
		Date:        m.now(),
	}); err != nil {
		m.err = err
		return nil
	}
	return closeModal(m.agg)
}

func (m *investmentModal) View(width int) string {
	return modalFrame("Record Investment", m.form.view(), m.err, width)
}

func (m *investmentModal) Help() []helpKey { return saveHelp() }

// =============================================================================
// Transaction detail
// =============================================================================

type transactionDetailModal struct {
	agg *state.Aggregator
	err error
}

func newTransactionDetailModal(a *state.Aggregator) *transactionDetailModal {
	return &transactionDetailModal{agg: a}
}

func (m *transactionDetailModal) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch k.String() {
	case "esc", "q", "enter":
		return closeModal(m.agg)
	case "d":
		if t := m.agg.SelectedTransaction(); t != nil {
			if m.err = m.agg.DeleteTransaction(t.ID); m.err == nil {
				return closeModal(m.agg)
			}
		}
	}
	return nil
}

func (m *transactionDetailModal) View(width int) string {
	t := m.agg.SelectedTransaction()
	if t == nil {
		return modalFrame("Transaction", StyleSubtitle.Render("Nothing selected"), m.err, width)
	}
	rows := [][2]string{
		{"Description", t.Description},
		{"Amount", signedMoney(t)},
		{"Category", t.Category},
		{"Type", string(t.Type)},
		{"Date", output.FormatDate(t.Date)},
	}
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(StyleSubtitle.Render(fmt.Sprintf("%-12s", r[0])))
		sb.WriteString(r[1])
		sb.WriteString("\n")
	}
	return modalFrame("Transaction", strings.TrimRight(sb.String(), "\n"), m.err, width)
}

func (m *transactionDetailModal) Help() []helpKey {
	return []helpKey{{"d", "delete"}, {"esc", "close"}}
}
