package display

import (
	"fmt"

	"github.com/harrison/arbor/internal/colorscale"
	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/models"
)

// Renderer produces the output lines of one listing pass.
// roots must already be prepared by listing.Prepare; renderers never re-sort.
// Every emitted entry is added to sum exactly once.
type Renderer interface {
	Render(roots []*models.Entry, scale *colorscale.Context, sum *Summary) []string
}

// NewRenderer validates the mode-specific parts of cfg and returns the matching renderer.
// root is the header line for tree mode; empty omits it.
// Contradictory settings fail here, before any line is produced.
func NewRenderer(cfg *config.DisplayConfig, root string) (Renderer, error) {
	if cfg == nil {
		return nil, &config.ConfigError{Field: "config", Reason: "missing display configuration"}
	}

	palette := NewPalette(cfg.Color)

	switch cfg.Mode {
	case config.ModeTree:
		return &TreeRenderer{cfg: cfg, palette: palette, root: root}, nil
	case config.ModeOneLine:
		return &OneLineRenderer{cfg: cfg, palette: palette}, nil
	case config.ModeLong:
		return &LongRenderer{cfg: cfg, palette: palette}, nil
	case config.ModeGrid:
		if cfg.Width <= 0 {
			return nil, &config.ConfigError{Field: "width", Value: fmt.Sprint(cfg.Width), Reason: "grid needs a positive width"}
		}
		return &GridRenderer{cfg: cfg, palette: palette}, nil
	}

	return nil, &config.ConfigError{Field: "mode", Value: fmt.Sprint(int(cfg.Mode)), Reason: "unknown display mode"}
}
