package display

import (
	"github.com/harrison/arbor/internal/colorscale"
	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/models"
)

// Tree connectors. Each level of nesting adds exactly LevelWidth columns.
const (
	Branch = "├── "
	Corner = "└── "
	Pipe   = "│   "
	Blank  = "    "

	LevelWidth = 4
)

// TreeRenderer draws the forest depth-first with connector prefixes
type TreeRenderer struct {
	cfg     *config.DisplayConfig
	palette *Palette
	root    string
}

// Render emits the optional root header, then every entry in pre-order.
// The prefix handed to children is the parent's prefix plus one segment,
// so indentation is carried down rather than rebuilt per line.
func (r *TreeRenderer) Render(roots []*models.Entry, scale *colorscale.Context, sum *Summary) []string {
	deco := NewDecorator(r.cfg, r.palette, scale)

	var lines []string
	if r.root != "" {
		lines = append(lines, deco.Root(r.root).Text)
	}

	var walk func(entries []*models.Entry, prefix string)
	walk = func(entries []*models.Entry, prefix string) {
		for _, e := range entries {
			connector, childPrefix := Branch, prefix+Pipe
			if e.IsLast {
				connector, childPrefix = Corner, prefix+Blank
			}

			sum.Add(e)
			lines = append(lines, prefix+connector+deco.Entry(e).Text)
			walk(e.Children, childPrefix)
		}
	}
	walk(roots, "")

	return lines
}

// Prefix rebuilds the connector prefix of e from its ancestors' IsLast flags.
// It matches what Render emits and exists to check that invariant.
func Prefix(e *models.Entry) string {
	connector := Branch
	if e.IsLast {
		connector = Corner
	}

	var segments []string
	for a := e.Parent; a != nil; a = a.Parent {
		if a.IsLast {
			segments = append(segments, Blank)
		} else {
			segments = append(segments, Pipe)
		}
	}

	prefix := ""
	for i := len(segments) - 1; i >= 0; i-- {
		prefix += segments[i]
	}
	return prefix + connector
}
