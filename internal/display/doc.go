// Package display renders a prepared entry forest as lines of text.
//
// Four renderers share one interface and one decoration layer:
//
//   - TreeRenderer draws connector prefixes, one level per LevelWidth columns
//   - OneLineRenderer prints one entry per line
//   - LongRenderer prints an aligned permissions/size/modified/name table
//   - GridRenderer packs entries into as many columns as fit the width
//
// Render is the usual entry point:
//
//	sum, err := display.Render(os.Stdout, roots, cfg, ".")
//	if err != nil {
//	    // contradictory config, nothing was written
//	}
//
// Colors go through a Palette built from fatih/color. The palette forces
// color on or off per instance, so output is identical whether or not
// stdout is a terminal once the decision has been made.
//
// Widths are measured on the plain text of each cell with go-runewidth;
// escape sequences never count toward alignment.
package display
