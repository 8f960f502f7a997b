package display

import (
	"github.com/fatih/color"
	"github.com/harrison/arbor/internal/colorscale"
	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/models"
)

// bucketColors are the fixed-mode colors from low to high: green, yellow, orange, red
var bucketColors = [colorscale.FixedBuckets]colorscale.RGB{
	{R: 0, G: 255, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 255, G: 135, B: 0},
	{R: 255, G: 0, B: 0},
}

// Palette decides the color of every styled segment.
// Colors are forced on or off per palette, independent of fatih/color's
// global TTY detection, because the decision was already made upstream.
type Palette struct {
	enabled bool

	dir     *color.Color
	symlink *color.Color
	exec    *color.Color
	special *color.Color
	fail    *color.Color
	warn    *color.Color
	header  *color.Color
	counts  *color.Color
	total   *color.Color
}

// NewPalette creates the standard palette; with enabled false every Paint is a no-op
func NewPalette(enabled bool) *Palette {
	p := &Palette{enabled: enabled}
	p.dir = p.make(color.FgBlue, color.Bold)
	p.symlink = p.make(color.FgCyan)
	p.exec = p.make(color.FgGreen, color.Bold)
	p.special = p.make(color.FgYellow)
	p.fail = p.make(color.FgRed)
	p.warn = p.make(color.FgYellow)
	p.header = p.make(color.Bold)
	p.counts = p.make(color.FgBlue, color.Bold)
	p.total = p.make(color.FgGreen, color.Bold)
	return p
}

// Enabled reports whether the palette emits escape sequences
func (p *Palette) Enabled() bool {
	return p.enabled
}

func (p *Palette) make(attrs ...color.Attribute) *color.Color {
	return p.force(color.New(attrs...))
}

func (p *Palette) force(c *color.Color) *color.Color {
	if p.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Paint renders text in c; a nil color leaves text untouched
func (p *Palette) Paint(c *color.Color, text string) string {
	if c == nil || !p.enabled || text == "" {
		return text
	}
	return c.Sprint(text)
}

// Kind returns the default color for an entry, nil for plain files
func (p *Palette) Kind(e *models.Entry, dereference bool) *color.Color {
	if e.Err != nil {
		return p.fail
	}
	switch e.EffectiveKind(dereference) {
	case models.KindDirectory:
		return p.dir
	case models.KindSymlink:
		return p.symlink
	case models.KindOther:
		return p.special
	}
	if e.IsExecutable() {
		return p.exec
	}
	return nil
}

// Scale returns the color for a scale position; nil for absent values.
// Entries sitting on the global minimum or maximum are drawn bold.
func (p *Palette) Scale(s colorscale.Scale, mode config.ScaleMode) *color.Color {
	if !s.Valid {
		return nil
	}

	rgb := bucketColors[s.Bucket]
	if mode == config.ScaleGradient {
		rgb = colorscale.Ramp(s.Position)
	}

	c := color.RGB(int(rgb.R), int(rgb.G), int(rgb.B))
	if s.AtMin || s.AtMax {
		c.Add(color.Bold)
	}
	return p.force(c)
}

// Error returns the color used for read error markers
func (p *Palette) Error() *color.Color { return p.fail }

// Warning returns the color used for warnings
func (p *Palette) Warning() *color.Color { return p.warn }

// Header returns the color used for table headers
func (p *Palette) Header() *color.Color { return p.header }

// Directory returns the color used for directories
func (p *Palette) Directory() *color.Color { return p.dir }
