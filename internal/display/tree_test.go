package display

import (
	"regexp"
	"strings"
	"testing"

	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/listing"
	"github.com/harrison/arbor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForest() []*models.Entry {
	return []*models.Entry{
		dir("src",
			file("b.rs", 20),
			dir("util", file("fmt.rs", 5), file("io.rs", 7)),
			file("a.rs", 10),
		),
		file("readme.md", 100),
		dir("docs", file("guide.md", 40)),
	}
}

func TestTreeRenderer_Layout(t *testing.T) {
	lines, _ := render(t, sampleForest(), plain(config.ModeTree, nil), ".")

	want := []string{
		".",
		"├── docs",
		"│   └── guide.md",
		"├── readme.md",
		"└── src",
		"    ├── a.rs",
		"    ├── b.rs",
		"    └── util",
		"        ├── fmt.rs",
		"        └── io.rs",
	}
	assert.Equal(t, want, lines)
}

func TestTreeRenderer_PrefixMatchesAncestors(t *testing.T) {
	cfg := plain(config.ModeTree, nil)
	roots := listing.Prepare(sampleForest(), cfg)

	sum := NewSummary(false)
	r, err := NewRenderer(cfg, "")
	require.NoError(t, err)
	lines := r.Render(roots, nil, sum)

	visible := listing.Visible(roots, cfg)
	require.Len(t, lines, len(visible))
	for i, e := range visible {
		assert.Equal(t, Prefix(e)+e.Name, lines[i], "line %d", i)

		indent := strings.TrimSuffix(Prefix(e), Branch)
		indent = strings.TrimSuffix(indent, Corner)
		assert.Equal(t, e.Depth*LevelWidth, len([]rune(indent)), "indent of %s", e.Name)
	}
}

func TestTreeRenderer_SummaryCountsEveryEmittedEntry(t *testing.T) {
	lines, sum := render(t, sampleForest(), plain(config.ModeTree, nil), "")

	assert.Equal(t, len(lines), sum.Entries())
	assert.Equal(t, 3, sum.Dirs)
	assert.Equal(t, 6, sum.Files)
	assert.Equal(t, uint64(182), sum.TotalSize)
}

func TestTreeRenderer_PatternKeepsDirectories(t *testing.T) {
	cfg := plain(config.ModeTree, func(c *config.DisplayConfig) {
		c.Pattern = `.*\.rs`
		c.Match = regexp.MustCompile(c.Pattern).MatchString
	})

	lines, sum := render(t, sampleForest(), cfg, "")

	want := []string{
		"├── docs",
		"└── src",
		"    ├── a.rs",
		"    ├── b.rs",
		"    └── util",
		"        ├── fmt.rs",
		"        └── io.rs",
	}
	assert.Equal(t, want, lines)
	assert.Equal(t, 4, sum.Files)
}

func TestTreeRenderer_MaxDepthZero(t *testing.T) {
	cfg := plain(config.ModeTree, func(c *config.DisplayConfig) { c.MaxDepth = 0 })

	lines, sum := render(t, sampleForest(), cfg, ".")

	assert.Equal(t, []string{".", "├── docs", "├── readme.md", "└── src"}, lines)
	assert.Equal(t, 2, sum.Dirs)
	assert.Equal(t, 1, sum.Files)
}

func TestTreeRenderer_EmptyListing(t *testing.T) {
	lines, sum := render(t, nil, plain(config.ModeTree, nil), ".")

	assert.Equal(t, []string{"."}, lines)
	assert.Zero(t, sum.Entries())
}

func TestTreeRenderer_Color(t *testing.T) {
	tests := []struct {
		name    string
		color   bool
		wantESC bool
	}{
		{name: "color on", color: true, wantESC: true},
		{name: "color off", color: false, wantESC: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := plain(config.ModeTree, func(c *config.DisplayConfig) { c.Color = tt.color })
			lines, _ := render(t, sampleForest(), cfg, ".")

			out := strings.Join(lines, "\n")
			assert.Equal(t, tt.wantESC, strings.Contains(out, "\x1b["))
		})
	}
}
