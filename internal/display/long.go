package display

import (
	"io/fs"
	"strings"

	"github.com/harrison/arbor/internal/colorscale"
	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/listing"
	"github.com/harrison/arbor/internal/models"
	"github.com/mattn/go-runewidth"
)

// TimeLayout is the modification time format of the long table
const TimeLayout = "2006-01-02 15:04:05"

const columnGap = "  "

var longHeaders = []string{"Permissions", "Size", "Modified", "Name"}

// LongRenderer prints a table with permissions, size and modification time
type LongRenderer struct {
	cfg     *config.DisplayConfig
	palette *Palette
}

type longRow struct {
	perms        string
	size, sizeW  string
	mtime, timeW string
	name         Cell
}

// Render emits a header, a dashed rule and one row per visible entry.
// Column widths are computed from the plain text of every row first.
// An empty listing renders nothing.
func (r *LongRenderer) Render(roots []*models.Entry, scale *colorscale.Context, sum *Summary) []string {
	visible := listing.Visible(roots, r.cfg)
	if len(visible) == 0 {
		return nil
	}

	deco := NewDecorator(r.cfg, r.palette, scale)

	widths := make([]int, len(longHeaders))
	for i, h := range longHeaders {
		widths[i] = runewidth.StringWidth(h)
	}

	rows := make([]longRow, 0, len(visible))
	for _, e := range visible {
		sum.Add(e)

		var row longRow
		row.perms = Permissions(e)
		row.size, row.sizeW = deco.SizeColumn(e)
		row.mtime, row.timeW = deco.TimeColumn(e)
		row.name = deco.Name(e)
		rows = append(rows, row)

		widths[0] = max(widths[0], len(row.perms))
		widths[1] = max(widths[1], runewidth.StringWidth(row.sizeW))
		widths[2] = max(widths[2], runewidth.StringWidth(row.timeW))
		widths[3] = max(widths[3], row.name.Width)
	}

	lines := make([]string, 0, len(rows)+2)

	header := padRight(longHeaders[0], widths[0]) + columnGap +
		padLeft(longHeaders[1], widths[1]) + columnGap +
		padRight(longHeaders[2], widths[2]) + columnGap +
		longHeaders[3]
	lines = append(lines, r.palette.Paint(r.palette.Header(), header))

	total := widths[0] + widths[1] + widths[2] + widths[3] + 3*len(columnGap)
	lines = append(lines, strings.Repeat("-", total))

	for _, row := range rows {
		var b strings.Builder
		b.WriteString(padRight(row.perms, widths[0]))
		b.WriteString(columnGap)
		b.WriteString(pad(widths[1]-runewidth.StringWidth(row.sizeW)) + row.size)
		b.WriteString(columnGap)
		b.WriteString(row.mtime + pad(widths[2]-runewidth.StringWidth(row.timeW)))
		b.WriteString(columnGap)
		b.WriteString(row.name.Text)
		lines = append(lines, b.String())
	}

	return lines
}

// Permissions renders an ls-style mode string, e.g. "drwxr-xr-x".
// The type character follows the entry kind, not the dereferenced target.
func Permissions(e *models.Entry) string {
	if e.Err != nil && e.Mode == 0 {
		return "??????????"
	}

	var b strings.Builder
	b.WriteByte(typeChar(e))

	perm := e.Mode.Perm()
	const rwx = "rwxrwxrwx"
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			b.WriteByte(rwx[i])
		} else {
			b.WriteByte('-')
		}
	}

	s := []byte(b.String())
	if e.Mode&fs.ModeSetuid != 0 {
		s[3] = special(s[3], 's')
	}
	if e.Mode&fs.ModeSetgid != 0 {
		s[6] = special(s[6], 's')
	}
	if e.Mode&fs.ModeSticky != 0 {
		s[9] = special(s[9], 't')
	}
	return string(s)
}

func typeChar(e *models.Entry) byte {
	switch e.Kind {
	case models.KindDirectory:
		return 'd'
	case models.KindSymlink:
		return 'l'
	case models.KindFile:
		return '-'
	}

	switch {
	case e.Mode&fs.ModeNamedPipe != 0:
		return 'p'
	case e.Mode&fs.ModeSocket != 0:
		return 's'
	case e.Mode&fs.ModeCharDevice != 0:
		return 'c'
	case e.Mode&fs.ModeDevice != 0:
		return 'b'
	}
	return '?'
}

// special marks setuid/setgid/sticky; uppercase when the execute bit is unset
func special(current byte, mark byte) byte {
	if current == '-' {
		return mark - 'a' + 'A'
	}
	return mark
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func padRight(s string, width int) string {
	return s + pad(width-runewidth.StringWidth(s))
}

func padLeft(s string, width int) string {
	return pad(width-runewidth.StringWidth(s)) + s
}
