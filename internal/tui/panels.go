package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/output"
	"github.com/manav03panchal/lifedash/internal/parser"
	"github.com/manav03panchal/lifedash/internal/state"
	"github.com/manav03panchal/lifedash/internal/validate"
)

// MetricsPanel renders water, sleep and steps.
func MetricsPanel(m state.Metrics, width int) string {
	barWidth := max(width-24, 8)

	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Life Metrics"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%-7s %s %d/%d\n", "Water", ProgressBar(m.WaterProgress(), barWidth), m.WaterIntake, m.WaterGoal)
	fmt.Fprintf(&sb, "%-7s %s → %s  %s\n", "Sleep", m.SleepTime, m.WakeTime,
		StyleValue.Render(output.FormatDuration(m.SleepDuration())))
	fmt.Fprintf(&sb, "%-7s %s %d", "Steps", ProgressBar(m.StepsProgress(), barWidth), m.StepsToday)
	return panelBox(width, false).Render(sb.String())
}

// MusicPanel renders the now-playing widget.
func MusicPanel(m state.Music, width int) string {
	status := StyleSubtitle.Render("❚❚ paused")
	if m.Playing {
		status = StyleIncome.Render("▶ playing")
	}
	content := StyleTitle.Render("Music") + "\n" +
		StyleValue.Render(m.Track.Title) + " " + StyleSubtitle.Render("by "+m.Track.Artist) + "\n" +
		status
	return panelBox(width, false).Render(content)
}

// FinancePanel renders the ledger summary, per-category expense bars and the
// most recent transactions.
func FinancePanel(sum state.Summary, expenses []state.CategoryTotal, recent []*model.Transaction, cursor int, focused bool, width int) string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Finance"))
	sb.WriteString("\n")
	sb.WriteString(StyleIncome.Render("Income  " + output.FormatMoney(sum.Income)))
	sb.WriteString("\n")
	sb.WriteString(StyleExpense.Render("Expense " + output.FormatMoney(sum.Expense)))
	sb.WriteString("\n")
	sb.WriteString(StyleValue.Render("Balance " + output.FormatMoney(sum.Balance)))
	sb.WriteString("\n")

	if len(expenses) > 0 {
		sb.WriteString("\n")
		top := expenses[0].Total
		barWidth := max(width-36, 6)
		for _, c := range expenses {
			fraction := 0.0
			if top > 0 {
				fraction = c.Total / top
			}
			fmt.Fprintf(&sb, "%-14s %s %s\n", validate.TruncateString(c.Category, 14),
				bar(fraction, barWidth, ColorExpense), output.FormatMoney(c.Total))
		}
	}

	if len(recent) > 0 {
		sb.WriteString("\n")
		sb.WriteString(StyleSubtitle.Render("Recent"))
		sb.WriteString("\n")
		for i, t := range recent {
			line := fmt.Sprintf("%-22s %10s", validate.TruncateString(t.Description, 22), signedMoney(t))
			sb.WriteString(listLine(line, focused && i == cursor))
			sb.WriteString("\n")
		}
	}
	return panelBox(width, focused).Render(strings.TrimRight(sb.String(), "\n"))
}

// GoalsPanel renders goals with progress bars, favorites first.
func GoalsPanel(goals []*model.Goal, width int) string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Goals"))
	sb.WriteString("\n")
	if len(goals) == 0 {
		sb.WriteString(StyleSubtitle.Render("No goals yet"))
	}
	ordered := make([]*model.Goal, 0, len(goals))
	for _, g := range goals {
		if g.IsFavorite {
			ordered = append(ordered, g)
		}
	}
	for _, g := range goals {
		if !g.IsFavorite {
			ordered = append(ordered, g)
		}
	}
	for i, g := range ordered {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(goalLine(g, false, max(width-40, 6)))
	}
	return panelBox(width, false).Render(sb.String())
}

func goalLine(g *model.Goal, selected bool, barWidth int) string {
	p := g.CalculateProgress()
	star := "  "
	if g.IsFavorite {
		star = "★ "
	}
	title := validate.TruncateString(g.Title, 18)
	if selected {
		title = StyleSelected.Render(title)
	}
	amounts := fmt.Sprintf("%s/%s", goalValue(g, g.CurrentValue), goalValue(g, g.TargetValue))
	line := fmt.Sprintf("%s%-18s %s %s", star, title, ProgressBar(p.Percentage/100, barWidth), amounts)
	if p.IsComplete {
		line += " " + StyleIncome.Render("✓")
	}
	return line
}

func goalValue(g *model.Goal, v float64) string {
	if g.Unit == "$" {
		return output.FormatMoney(v)
	}
	s := fmt.Sprintf("%g", v)
	if g.Unit != "" {
		s += " " + g.Unit
	}
	return s
}

// NotesPanel lists notes and previews the selected one as markdown.
func NotesPanel(notes []*model.Note, cursor int, focused bool, width int) string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Notes"))
	sb.WriteString("\n")
	if len(notes) == 0 {
		sb.WriteString(StyleSubtitle.Render("No notes yet. Press 'n' to write one."))
		return panelBox(width, focused).Render(sb.String())
	}
	for i, n := range notes {
		line := validate.TruncateString(n.Title, max(width-8, 10))
		sb.WriteString(listLine(line, focused && i == cursor))
		sb.WriteString("\n")
	}
	if focused && cursor >= 0 && cursor < len(notes) {
		if preview := renderMarkdown(notes[cursor].Content, width-6); preview != "" {
			sb.WriteString("\n")
			sb.WriteString(preview)
		}
	}
	return panelBox(width, focused).Render(strings.TrimRight(sb.String(), "\n"))
}

// TodosPanel lists todos with priority and due date.
func TodosPanel(todos []*model.Todo, cursor int, focused bool, now time.Time, width int) string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Todos"))
	sb.WriteString("\n")
	if len(todos) == 0 {
		sb.WriteString(StyleSubtitle.Render("Nothing to do. Press 't' to add a todo."))
		return panelBox(width, focused).Render(sb.String())
	}
	for i, t := range todos {
		box := "[ ] "
		title := validate.TruncateString(t.Title, max(width-28, 10))
		if t.Completed {
			box = "[x] "
			title = StyleDone.Render(title)
		}
		line := box + title + " " + priorityStyle(t.Priority).Render(string(t.Priority))
		if t.DueDate != nil {
			due := parser.FormatDueDate(t.DueDate)
			if t.IsOverdue(now) {
				due = StyleExpense.Render(due)
			} else {
				due = StyleSubtitle.Render(due)
			}
			line += " " + due
		}
		sb.WriteString(listLine(line, focused && i == cursor))
		sb.WriteString("\n")
	}
	return panelBox(width, focused).Render(strings.TrimRight(sb.String(), "\n"))
}

// ChecklistsPanel lists checklists with completion counts.
func ChecklistsPanel(checklists []*model.Checklist, cursor int, focused bool, width int) string {
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("Checklists"))
	sb.WriteString("\n")
	if len(checklists) == 0 {
		sb.WriteString(StyleSubtitle.Render("No checklists. Press 'c' to start one."))
		return panelBox(width, focused).Render(sb.String())
	}
	for i, c := range checklists {
		done, total := c.Progress()
		line := fmt.Sprintf("%s %s", validate.TruncateString(c.Title, max(width-16, 10)),
			StyleSubtitle.Render(fmt.Sprintf("%d/%d", done, total)))
		sb.WriteString(listLine(line, focused && i == cursor))
		sb.WriteString("\n")
	}
	return panelBox(width, focused).Render(strings.TrimRight(sb.String(), "\n"))
}

func listLine(line string, selected bool) string {
	if selected {
		return StyleSelected.Render("> ") + line
	}
	return "  " + line
}

func priorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return StyleExpense
	case model.PriorityLow:
		return StyleSubtitle
	}
	return StyleWarning
}

func signedMoney(t *model.Transaction) string {
	s := output.FormatMoney(t.Amount)
	if t.Type == model.TransactionExpense {
		return StyleExpense.Render("-" + s)
	}
	return StyleIncome.Render("+" + s)
}

// helpKey is one entry of the help bar.
type helpKey struct {
	key  string
	desc string
}

// HelpBar renders key hints at the bottom of the screen.
func HelpBar(keys []helpKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleHelpDesc.Render(k.desc))
	}
	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
