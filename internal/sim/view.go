package sim

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quillcli/quill/command"
	"github.com/quillcli/quill/declare"
)

var (
	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// renderCandidates renders the candidate table
func renderCandidates(candidates []command.Candidate) string {
	var b strings.Builder

	b.WriteString(countStyle.Render(fmt.Sprintf("%d candidate(s)", len(candidates))))
	b.WriteString("\n")

	width := 0
	for _, c := range candidates {
		if len(c.Value) > width {
			width = len(c.Value)
		}
	}
	for _, c := range candidates {
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%-*s", width, c.Value)))
		if c.Description != "" {
			b.WriteString("  ")
			b.WriteString(descStyle.Render(c.Description))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderValidation renders a schema validation result
func renderValidation(path string, result *declare.ValidationResult) string {
	var b strings.Builder

	if result.Valid {
		b.WriteString(successStyle.Render("✓ " + path + " is valid"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(errorStyle.Render("✗ " + path + " is invalid"))
	b.WriteString("\n")
	for _, e := range result.Errors {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render("•"))
		b.WriteString(fmt.Sprintf(" %s: %s\n", e.Field, e.Message))
	}

	return b.String()
}
