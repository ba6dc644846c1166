// Package console renders the move plan and user-facing messages, and asks
// the interactive yes/no questions. The orchestrator depends only on the
// Writer and Confirmer interfaces so tests can substitute in-memory fakes.
package console

import "github.com/charmbracelet/lipgloss"

// Color scheme used for styled output.
var (
	colorPrimary = lipgloss.Color("#3a6b4a") // dark green - headers
	colorAccent  = lipgloss.Color("#8fc279") // light green - table borders
	colorMuted   = lipgloss.Color("#9ba8c0") // gray - list items
	colorError   = lipgloss.Color("#f04c56") // warnings and errors
)

// Styles bundles the lipgloss styles applied to each output element.
type Styles struct {
	Header lipgloss.Style
	Item   lipgloss.Style
	Notice lipgloss.Style
	Border lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		Item:   lipgloss.NewStyle().Foreground(colorMuted),
		Notice: lipgloss.NewStyle().Foreground(colorError),
		Border: lipgloss.NewStyle().Foreground(colorAccent),
	}
}

// PlainStyles returns a style set that renders text unmodified, for
// --no-color and non-terminal output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Header: plain, Item: plain, Notice: plain, Border: plain}
}
