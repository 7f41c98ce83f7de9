package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/gir/analysis"
)

type browserModel struct {
	env      *analysis.Env
	res      *analysis.Result
	filter   textinput.Model
	classes  []*analysis.ClassInfo
	selected int
	state    browserState
}

type browserState int

const (
	stateSelectClass browserState = iota
	stateShowClass
)

func newBrowserModel(env *analysis.Env, res *analysis.Result) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "filter classes"
	ti.Prompt = "/ "
	ti.Width = 40
	ti.Focus()

	m := &browserModel{
		env:    env,
		res:    res,
		filter: ti,
		state:  stateSelectClass,
	}
	m.applyFilter()
	return m
}

func (m *browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browserModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	m.classes = m.classes[:0]
	for _, c := range m.res.Classes {
		if query == "" || strings.Contains(strings.ToLower(c.FullName), query) {
			m.classes = append(m.classes, c)
		}
	}
	if m.selected >= len(m.classes) {
		m.selected = max(len(m.classes)-1, 0)
	}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateShowClass {
				return m, tea.Quit
			}

		case "up":
			if m.state == stateSelectClass && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.state == stateSelectClass && m.selected < len(m.classes)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			if m.state == stateSelectClass && len(m.classes) > 0 {
				m.state = stateShowClass
				m.filter.Blur()
			}
			return m, nil

		case "esc":
			if m.state == stateShowClass {
				m.state = stateSelectClass
				m.filter.Focus()
				return m, nil
			}
			return m, tea.Quit
		}
	}

	if m.state != stateSelectClass {
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GIR Browser"))
	b.WriteString(" ")
	b.WriteString(m.env.Config.GirFileName())
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectClass:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		for i, c := range m.classes {
			line := fmt.Sprintf("%s %s", c.FullName, typeStyle.Render(classSummary(c)))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + c.FullName))
				b.WriteString(" " + typeStyle.Render(classSummary(c)))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		for _, s := range m.res.Skipped {
			b.WriteString(helpStyle.Render("  " + s.Name + ": " + s.Reason))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • enter details • esc quit"))

	case stateShowClass:
		b.WriteString(m.classDetails(m.classes[m.selected]))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func classSummary(c *analysis.ClassInfo) string {
	kind := "impl"
	if c.InTrait() {
		kind = "trait"
	}
	return fmt.Sprintf("(%s, %d functions, %d signals)", kind, len(c.Functions), len(c.Signals))
}

func (m *browserModel) classDetails(c *analysis.ClassInfo) string {
	var b strings.Builder

	b.WriteString(nameStyle.Render(c.FullName))
	if len(c.Parents) > 0 {
		parents := make([]string, len(c.Parents))
		for i, p := range c.Parents {
			parents[i] = p.FullName
		}
		b.WriteString(" : " + typeStyle.Render(strings.Join(parents, " → ")))
	}
	b.WriteString("\n\nFunctions:\n")
	for i := range c.Functions {
		f := &c.Functions[i]
		b.WriteString("  " + formatFunction(f) + "\n")
		for _, reason := range f.Errors {
			b.WriteString(errorStyle.Render("      "+reason) + "\n")
		}
	}

	b.WriteString("\nSignals:\n")
	for i := range c.Signals {
		s := &c.Signals[i]
		if s.Bound() {
			b.WriteString("  " + nameStyle.Render(s.Name) + " → " + typeStyle.Render(s.Trampoline) + "\n")
			continue
		}
		b.WriteString("  " + errorStyle.Render(s.Name+": "+s.Rejection.Error()) + "\n")
	}

	if len(c.UsedTypes) > 0 {
		b.WriteString("\nUses:\n")
		for _, u := range c.UsedTypes {
			b.WriteString("  " + typeStyle.Render(u) + "\n")
		}
	}
	return b.String()
}

func formatFunction(f *analysis.FunctionInfo) string {
	var params []string
	for i := range f.Parameters {
		p := &f.Parameters[i]
		params = append(params, p.Name+": "+typeStyle.Render(p.TargetType))
	}
	result := ""
	if !f.Ret.IsVoid() {
		result = " -> " + typeStyle.Render(f.Ret.TargetType)
	}
	name := nameStyle.Render(f.Name)
	if f.Commented {
		name = errorStyle.Render(f.Name)
	}
	return fmt.Sprintf("%s %s(%s)%s", helpStyle.Render(f.Kind.String()), name, strings.Join(params, ", "), result)
}

func runInteractive(env *analysis.Env, res *analysis.Result) error {
	p := tea.NewProgram(newBrowserModel(env, res), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
