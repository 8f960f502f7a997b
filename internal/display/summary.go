package display

import (
	"fmt"

	"github.com/harrison/arbor/internal/models"
)

// Summary accumulates directory and file counts and the total size of a listing.
// Renderers call Add exactly once for every entry they emit.
type Summary struct {
	Dirs      int
	Files     int
	TotalSize uint64

	dereference bool
}

// NewSummary creates an empty summary. With dereference set, symlinks are
// counted by the kind of their resolved target.
func NewSummary(dereference bool) *Summary {
	return &Summary{dereference: dereference}
}

// Add records one visited entry. Directory sizes are never added, since
// their contents are counted individually; entries with read errors add nothing.
func (s *Summary) Add(e *models.Entry) {
	if e.EffectiveKind(s.dereference) == models.KindDirectory {
		s.Dirs++
		return
	}

	s.Files++
	if e.Err == nil && e.Size.Known {
		s.TotalSize += e.Size.Bytes
	}
}

// Entries returns the number of recorded entries
func (s *Summary) Entries() int {
	return s.Dirs + s.Files
}

// CountLine formats "N directories, M files"
func (s *Summary) CountLine() string {
	return fmt.Sprintf("%s, %s", plural(s.Dirs, "directory", "directories"), plural(s.Files, "file", "files"))
}

// SizeLine formats "Total size: X" in the given unit base
func (s *Summary) SizeLine(base models.SizeBase) string {
	return "Total size: " + models.FormatSize(s.TotalSize, base)
}

// Lines returns the two summary lines, colored when the palette is enabled
func (s *Summary) Lines(base models.SizeBase, palette *Palette) []string {
	return []string{
		palette.Paint(palette.counts, s.CountLine()),
		palette.Paint(palette.total, s.SizeLine(base)),
	}
}

func plural(n int, one, many string) string {
	return fmt.Sprintf("%d %s", n, pluralWord(n, one, many))
}
