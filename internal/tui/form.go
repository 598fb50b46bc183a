package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is a labelled single-line input.
type formField struct {
	label string
	input textinput.Model
}

// form is a column of text inputs with tab focus, used by modal dialogs.
type form struct {
	fields []formField
	focus  int
}

func newForm(labels ...string) *form {
	f := &form{}
	for _, label := range labels {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = label
		in.CharLimit = 200
		in.Width = 40
		f.fields = append(f.fields, formField{label: label, input: in})
	}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *form) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *form) setValue(i int, v string) {
	f.fields[i].input.SetValue(v)
}

func (f *form) setFocus(i int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	i = (i + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Blur()
	f.focus = i
	return f.fields[i].input.Focus()
}

func (f *form) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// update routes navigation keys and forwards everything else to the
// focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			return f.next()
		case "shift+tab", "up":
			return f.prev()
		}
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) view() string {
	var sb strings.Builder
	for i, fld := range f.fields {
		label := StyleSubtitle.Render(fld.label)
		if i == f.focus {
			label = StyleSelected.Render(fld.label)
		}
		sb.WriteString(label)
		sb.WriteString("\n")
		sb.WriteString(fld.input.View())
		if i < len(f.fields)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
