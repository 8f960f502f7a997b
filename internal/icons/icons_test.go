package icons

import (
	"testing"

	"github.com/harrison/arbor/internal/models"
	"github.com/mattn/go-runewidth"
)

func TestFor(t *testing.T) {
	link := &models.Entry{
		Name:   "docs",
		Kind:   models.KindSymlink,
		Target: &models.Target{Kind: models.KindDirectory, Resolved: true},
	}

	tests := []struct {
		name        string
		entry       *models.Entry
		dereference bool
		want        string
	}{
		{"directory", &models.Entry{Name: "src", Kind: models.KindDirectory}, false, Directory},
		{"rust source", &models.Entry{Name: "main.rs", Kind: models.KindFile}, false, "🦀"},
		{"extension is case-insensitive", &models.Entry{Name: "README.MD", Kind: models.KindFile}, false, "📝"},
		{"unknown extension", &models.Entry{Name: "data.bin", Kind: models.KindFile}, false, Default},
		{"no extension", &models.Entry{Name: "Makefile", Kind: models.KindFile}, false, Default},
		{"symlink kept as link", link, false, Symlink},
		{"symlink dereferenced", link, true, Directory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := For(tt.entry, tt.dereference); got != tt.want {
				t.Errorf("For(%q) = %q, want %q", tt.entry.Name, got, tt.want)
			}
		})
	}
}

// Layout code pads by runewidth, so every glyph must measure as the two
// columns a terminal draws it in.
func TestGlyphsAreTwoColumnsWide(t *testing.T) {
	glyphs := map[string]string{"directory": Directory, "symlink": Symlink, "default": Default}
	for ext, icon := range byExtension {
		glyphs[ext] = icon
	}

	for name, icon := range glyphs {
		if w := runewidth.StringWidth(icon); w != 2 {
			t.Errorf("%s icon %q has width %d, want 2", name, icon, w)
		}
	}
}
