package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/gir/analysis"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD166"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// renderReport summarizes a generation run for a terminal
func renderReport(res *analysis.Result, written []string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gir"))
	b.WriteString(fmt.Sprintf(" %d classes, %d enums, %d trampolines\n\n",
		len(res.Classes), len(res.Enums), len(res.Trampolines)))

	for _, path := range written {
		b.WriteString(nameStyle.Render("generated "))
		b.WriteString(path)
		b.WriteString("\n")
	}

	if len(res.Skipped) > 0 {
		b.WriteString("\n")
		for _, s := range res.Skipped {
			b.WriteString(warnStyle.Render("skipped "))
			b.WriteString(s.Name + ", " + s.Reason + "\n")
		}
	}

	if rejected := res.Rejections(); len(rejected) > 0 {
		b.WriteString("\n")
		for _, s := range rejected {
			b.WriteString(errorStyle.Render("rejected "))
			b.WriteString(s.Rejection.Error())
			b.WriteString("\n")
		}
	}

	return b.String()
}
