package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thebtf/gormguide/internal/guide"
)

var (
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	fileStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	bulletStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// RenderReport renders a lint report as a styled terminal string.
func RenderReport(report *guide.Report) string {
	var b strings.Builder

	byPath := make(map[string][]guide.Violation)
	for _, v := range report.Violations {
		byPath[v.Path] = append(byPath[v.Path], v)
	}

	for _, path := range report.Files {
		violations := byPath[path]
		if len(violations) == 0 {
			b.WriteString(fmt.Sprintf("%s %s\n", passStyle.Render("✓"), fileStyle.Render(path)))
			continue
		}

		b.WriteString(fmt.Sprintf("%s %s %s\n",
			failStyle.Render("✗"),
			fileStyle.Render(path),
			dimStyle.Render(fmt.Sprintf("(%d)", len(violations))),
		))
		for _, v := range violations {
			location := fmt.Sprintf("%d", v.Line)
			if v.Section != "" {
				location += "  " + v.Section
			}
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				bulletStyle.Render("●"),
				dimStyle.Render(location),
				v.Message,
			))
			b.WriteString(fmt.Sprintf("      %s\n", ruleStyle.Render(v.Rule)))
		}
	}

	b.WriteString("\n")
	if report.Clean() {
		b.WriteString(passStyle.Render(fmt.Sprintf("%d file(s), %d section(s), no violations", len(report.Files), report.Sections)))
	} else {
		b.WriteString(failStyle.Render(fmt.Sprintf("%d file(s), %d section(s), %d violation(s)", len(report.Files), report.Sections, len(report.Violations))))
	}
	b.WriteString("\n")

	return b.String()
}
