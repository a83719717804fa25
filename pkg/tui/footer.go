package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	footerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	keyBindingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	bindingSeparator = keyBindingStyle.Render("  ")
)

// renderFooter renders the help line for bindings.
func renderFooter(bindings []key.Binding, width int) string {
	style := footerStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(RenderKeyBindings(bindings))
}

// RenderKeyBindings renders bindings as "[key] action" pairs.
func RenderKeyBindings(bindings []key.Binding) string {
	formatted := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		formatted = append(formatted, formatBinding("["+h.Key+"] "+h.Desc))
	}
	return strings.Join(formatted, bindingSeparator)
}

// formatBinding formats a key binding string like "[k] action" with proper styling.
func formatBinding(binding string) string {
	if len(binding) < 3 || binding[0] != '[' {
		return keyBindingStyle.Render(binding)
	}

	closeIdx := strings.Index(binding, "]")
	if closeIdx == -1 {
		return keyBindingStyle.Render(binding)
	}

	return keyStyle.Render(binding[:closeIdx+1]) + keyBindingStyle.Render(binding[closeIdx+1:])
}
