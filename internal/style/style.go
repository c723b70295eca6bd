// Package style renders the status lines the keyword commands print for
// each import operation.
package style

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Status classifies the outcome of one operation.
type Status uint8

// Enum values for Status.
const (
	// Changed marks an operation that inserted, updated or deleted rows.
	Changed Status = iota
	// Unchanged marks an operation that left every row as it was.
	Unchanged
	// Failed marks an operation that was rolled back.
	Failed
)

var marks = [...]string{
	Changed:   "✓",
	Unchanged: "⚠",
	Failed:    "✖",
}

var colors = [...]lipgloss.AdaptiveColor{
	Changed:   {Light: "#86b300", Dark: "#c2d94c"},
	Unchanged: {Light: "#f2ae49", Dark: "#ffb454"},
	Failed:    {Light: "#f07171", Dark: "#f07178"},
}

var pathColor = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}

// theme holds the styles in use. Color can be switched off by SetColorMode.
type theme struct {
	marks [len(marks)]lipgloss.Style
	path  lipgloss.Style
}

func colored() theme {
	var t theme
	for s, c := range colors {
		t.marks[s] = lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	t.path = lipgloss.NewStyle().Foreground(pathColor)
	return t
}

func plain() theme {
	var t theme
	for s := range marks {
		t.marks[s] = lipgloss.NewStyle()
	}
	t.path = lipgloss.NewStyle()
	return t
}

var current = colored()

// Mark returns the rendered status mark.
func Mark(s Status) string {
	return current.marks[s].Render(marks[s])
}

// StatusOf returns Changed when rows were affected and Unchanged otherwise.
func StatusOf(rows int64) Status {
	if rows == 0 {
		return Unchanged
	}
	return Changed
}

// Path returns a rendered file name.
func Path(name string) string {
	return current.path.Render(name)
}

// SetColorMode selects colored output: "always" forces it, "never" disables
// it and "auto" leaves the decision to terminal detection.
func SetColorMode(mode string) error {
	switch mode {
	case "auto":
		current = colored()
	case "never":
		_ = os.Setenv("NO_COLOR", "1")
		current = plain()
	case "always":
		_ = os.Unsetenv("NO_COLOR")
		_ = os.Setenv("CLICOLOR_FORCE", "1")
		current = colored()
	default:
		return fmt.Errorf("invalid --color value %q: must be always, auto, or never", mode)
	}
	return nil
}
