package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/arbor/internal/models"
)

// Warning represents a user-facing warning written to stderr after a listing
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning, in yellow when the palette is enabled
func (w Warning) Display(out io.Writer, palette *Palette) {
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
			b.WriteString("Affected path:\n")
		} else {
			b.WriteString("Affected paths:\n")
		}

		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, palette.Paint(palette.Warning(), b.String()))
}

// Unreadable collects the paths of entries that carry a read error
func Unreadable(roots []*models.Entry) []string {
	var paths []string
	for _, root := range roots {
		root.Walk(func(e *models.Entry) bool {
			if e.Err != nil {
				paths = append(paths, e.Path)
			}
			return true
		})
	}
	return paths
}

// WarnUnreadable creates a warning for entries that could not be read.
// The second result is false when there is nothing to warn about.
func WarnUnreadable(roots []*models.Entry) (Warning, bool) {
	paths := Unreadable(roots)
	if len(paths) == 0 {
		return Warning{}, false
	}

	return Warning{
		Title:      fmt.Sprintf("%d %s could not be read", len(paths), pluralWord(len(paths), "entry", "entries")),
		Files:      paths,
		Suggestion: "Check permissions or run with --log-level debug for details",
	}, true
}

func pluralWord(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
