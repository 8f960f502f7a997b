package display

import (
	"github.com/harrison/arbor/internal/colorscale"
	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/listing"
	"github.com/harrison/arbor/internal/models"
)

// OneLineRenderer prints one decorated entry per line with no indentation
type OneLineRenderer struct {
	cfg     *config.DisplayConfig
	palette *Palette
}

// Render emits the visible entries in order
func (r *OneLineRenderer) Render(roots []*models.Entry, scale *colorscale.Context, sum *Summary) []string {
	deco := NewDecorator(r.cfg, r.palette, scale)

	visible := listing.Visible(roots, r.cfg)
	lines := make([]string, 0, len(visible))
	for _, e := range visible {
		sum.Add(e)
		lines = append(lines, deco.Entry(e).Text)
	}
	return lines
}
