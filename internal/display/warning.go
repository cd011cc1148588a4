package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/signalscan/internal/logger"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Render formats the warning as plain text
func (w Warning) Render() string {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, file)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	return b.String()
}

// Display writes the warning to out, in yellow when colorize is set
func (w Warning) Display(out io.Writer, colorize bool) {
	text := w.Render()
	if colorize {
		text = logger.Colorize(text, color.FgYellow)
	}
	fmt.Fprint(out, text)
}

// WarnIgnoredCompat creates the notice shown when compat connections were
// collected but left out of the cross-reference
func WarnIgnoredCompat(count int) Warning {
	return Warning{
		Title:      fmt.Sprintf("%d compat connection(s) were found but not cross-referenced", count),
		Message:    "Signals connected only through connect_compat may be reported as never connected",
		Suggestion: "Run with --include-compat to treat them as connections",
	}
}
