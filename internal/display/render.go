package display

import (
	"fmt"
	"io"

	"github.com/harrison/arbor/internal/colorscale"
	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/listing"
	"github.com/harrison/arbor/internal/models"
)

// Render runs one complete listing pass and writes it to w:
// prepare the forest, build the color scale, render the mode and append
// the summary. The renderer is constructed first so a contradictory
// config fails before anything is written.
func Render(w io.Writer, roots []*models.Entry, cfg *config.DisplayConfig, rootLabel string) (*Summary, error) {
	renderer, err := NewRenderer(cfg, rootLabel)
	if err != nil {
		return nil, err
	}

	if cfg.DirSizes {
		models.SumSizes(roots, cfg.Dereference)
	}

	prepared := listing.Prepare(roots, cfg)
	scale := colorscale.Build(listing.Visible(prepared, cfg), cfg.ColorScale, cfg.ColorScaleMode, cfg.Now)

	sum := NewSummary(cfg.Dereference)
	lines := renderer.Render(prepared, scale, sum)

	if cfg.Summary {
		lines = append(lines, "")
		lines = append(lines, sum.Lines(cfg.SizeBase, NewPalette(cfg.Color))...)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return sum, fmt.Errorf("failed to write listing: %w", err)
		}
	}

	return sum, nil
}
