package display

import (
	"io/fs"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/arbor/internal/colorscale"
	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/icons"
	"github.com/harrison/arbor/internal/models"
	"github.com/mattn/go-runewidth"
)

// Cell is one rendered entry: styled text plus the number of terminal
// columns it occupies. Escape sequences take no columns.
type Cell struct {
	Text  string
	Width int
}

// cellBuilder accumulates styled and plain text side by side so the
// width never has to be recovered by stripping escape sequences.
type cellBuilder struct {
	styled strings.Builder
	plain  strings.Builder
}

func (b *cellBuilder) write(styled, plain string) {
	b.styled.WriteString(styled)
	b.plain.WriteString(plain)
}

func (b *cellBuilder) cell() Cell {
	return Cell{Text: b.styled.String(), Width: runewidth.StringWidth(b.plain.String())}
}

// Decorator turns entries into cells according to the display config
type Decorator struct {
	cfg     *config.DisplayConfig
	palette *Palette
	scale   *colorscale.Context
}

// NewDecorator creates a Decorator; scale may be nil when color scaling is off
func NewDecorator(cfg *config.DisplayConfig, palette *Palette, scale *colorscale.Context) *Decorator {
	return &Decorator{cfg: cfg, palette: palette, scale: scale}
}

// Entry renders icon, name, classify suffix, optional size and any error marker
func (d *Decorator) Entry(e *models.Entry) Cell {
	return d.entry(e, d.cfg.ShowSize)
}

// Name renders the entry without the size suffix (long mode has a size column)
func (d *Decorator) Name(e *models.Entry) Cell {
	return d.entry(e, false)
}

func (d *Decorator) entry(e *models.Entry, withSize bool) Cell {
	var b cellBuilder

	if d.cfg.Icons {
		icon := icons.For(e, d.cfg.Dereference) + " "
		b.write(icon, icon)
	}

	name := d.displayName(e)
	styled := d.palette.Paint(d.nameColor(e), name)
	if d.cfg.Hyperlink {
		styled = Hyperlink(linkTarget(e), styled)
	}
	b.write(styled, name)

	suffix := Classify(e, d.cfg.Classify, d.cfg.Dereference)
	b.write(suffix, suffix)

	if withSize {
		size := " [" + d.sizeText(e) + "]"
		b.write(size, size)
	}

	if e.Err != nil {
		marker := " [error: " + e.Err.Error() + "]"
		b.write(d.palette.Paint(d.palette.Error(), marker), marker)
	}

	return b.cell()
}

// Root renders the listing root header used by tree mode
func (d *Decorator) Root(path string) Cell {
	var b cellBuilder
	b.write(d.palette.Paint(d.palette.Directory(), path), path)
	return b.cell()
}

// SizeColumn renders the size of e for the long table, colored by the size scale
func (d *Decorator) SizeColumn(e *models.Entry) (styled, plain string) {
	plain = d.sizeText(e)
	return d.palette.Paint(d.palette.Scale(d.scale.Size(e), d.scale.Mode()), plain), plain
}

// TimeColumn renders the modification time of e, colored by the age scale
func (d *Decorator) TimeColumn(e *models.Entry) (styled, plain string) {
	plain = "-"
	if !e.Modified.IsZero() {
		plain = e.Modified.Format(TimeLayout)
	}
	return d.palette.Paint(d.palette.Scale(d.scale.Age(e), d.scale.Mode()), plain), plain
}

func (d *Decorator) sizeText(e *models.Entry) string {
	if e.Err != nil {
		return "-"
	}
	return e.Size.Format(d.cfg.SizeBase)
}

// displayName applies absolute path substitution and quoting
func (d *Decorator) displayName(e *models.Entry) string {
	name := e.Name
	switch d.cfg.Absolute {
	case config.AbsoluteOn:
		if e.AbsPath != "" {
			name = e.AbsPath
		}
	case config.AbsoluteFollow:
		if e.Kind == models.KindSymlink && e.Target != nil && e.Target.Path != "" {
			name = e.Target.Path
		}
	}

	if d.cfg.Quote && strings.ContainsRune(name, ' ') {
		name = `"` + name + `"`
	}
	return name
}

// nameColor picks the scale color when the entry has a scaled value,
// preferring size over age, and the kind color otherwise
func (d *Decorator) nameColor(e *models.Entry) *color.Color {
	if e.Err == nil && d.scale.Enabled() {
		if s := d.scale.Size(e); s.Valid {
			return d.palette.Scale(s, d.scale.Mode())
		}
		if s := d.scale.Age(e); s.Valid {
			return d.palette.Scale(s, d.scale.Mode())
		}
	}
	return d.palette.Kind(e, d.cfg.Dereference)
}

func linkTarget(e *models.Entry) string {
	if e.AbsPath != "" {
		return e.AbsPath
	}
	return e.Path
}

// Hyperlink wraps text in an OSC-8 file:// hyperlink to path
func Hyperlink(path, text string) string {
	return "\x1b]8;;file://" + path + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

// Classify returns the type suffix for an entry.
// Always marks directories, symlinks, fifos, sockets and executables;
// auto marks directories and symlinks only.
func Classify(e *models.Entry, mode config.Switch, dereference bool) string {
	if mode == config.SwitchNever {
		return ""
	}

	switch e.EffectiveKind(dereference) {
	case models.KindDirectory:
		return "/"
	case models.KindSymlink:
		return "@"
	}

	if mode != config.SwitchAlways {
		return ""
	}

	switch {
	case e.Mode&fs.ModeNamedPipe != 0:
		return "|"
	case e.Mode&fs.ModeSocket != 0:
		return "="
	case e.IsExecutable():
		return "*"
	}
	return ""
}
