package cmd

import (
	"strings"

	"github.com/harrison/arbor/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func addListFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	f.BoolP("oneline", "1", false, "One entry per line")
	f.BoolP("long", "l", false, "Long table with permissions, size and modification time")
	f.BoolP("grid", "G", false, "Grid of columns fitted to the terminal width")
	f.BoolP("tree", "T", false, "Tree with connectors (default)")
	cmd.MarkFlagsMutuallyExclusive("oneline", "long", "grid", "tree")

	f.String("sort", "", "Sort key: name, size, time")
	f.BoolP("reverse", "r", false, "Reverse the sort order")
	f.BoolP("across", "x", false, "Fill the grid across rows instead of down columns")
	f.BoolP("recurse", "R", false, "Descend into directories in oneline, long and grid modes")
	f.String("pattern", "", "Only show files whose name matches this regular expression")
	f.BoolP("show-hidden", "a", false, "Show entries whose name starts with a dot")
	f.Int("max-depth", 0, "Do not descend below this depth (0 lists only the top level)")

	f.StringP("classify", "F", "", "Append type indicators: always, auto, never")
	f.Lookup("classify").NoOptDefVal = "always"
	f.String("color", "", "Use color: always, auto, never")
	f.Lookup("color").NoOptDefVal = "always"
	f.String("color-scale", "", "Color names by value: all, age, size")
	f.Lookup("color-scale").NoOptDefVal = "all"
	f.String("color-scale-mode", "", "Color scale style: fixed, gradient")
	f.String("icons", "", "Show icons: always, auto, never")
	f.Lookup("icons").NoOptDefVal = "always"

	f.Bool("no-quotes", false, "Do not quote names containing spaces")
	f.Bool("hyperlink", false, "Wrap names in terminal hyperlinks")
	f.String("absolute", "", "Show absolute paths: on, follow, off")
	f.Lookup("absolute").NoOptDefVal = "on"
	f.BoolP("dereference", "X", false, "Follow symbolic links")
	f.Bool("show-size", false, "Append the size to each name")
	f.Bool("dir-sizes", false, "Compute directory sizes from their contents")
	f.String("size-base", "", "Size units: binary (KiB) or decimal (KB)")
	f.IntP("width", "w", 0, "Output width in columns (default: terminal width)")
	f.Bool("no-summary", false, "Omit the directory/file count and total size")

	cmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "colour", "color"))
	})
}

// overridesFromFlags collects the flags the user actually set.
// Unset flags stay nil so config file values survive.
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	f := cmd.Flags()
	var o config.Overrides

	for _, mode := range []string{"oneline", "long", "grid", "tree"} {
		if on, _ := f.GetBool(mode); on && f.Changed(mode) {
			m := mode
			o.Mode = &m
		}
	}

	strFlags := map[string]**string{
		"sort":             &o.Sort,
		"pattern":          &o.Pattern,
		"classify":         &o.Classify,
		"color":            &o.Color,
		"color-scale":      &o.ColorScale,
		"color-scale-mode": &o.ColorScaleMode,
		"icons":            &o.Icons,
		"absolute":         &o.Absolute,
		"size-base":        &o.SizeBase,
		"log-level":        &o.LogLevel,
	}
	for name, dst := range strFlags {
		if f.Changed(name) {
			v, _ := f.GetString(name)
			*dst = &v
		}
	}

	boolFlags := map[string]**bool{
		"reverse":     &o.Reverse,
		"across":      &o.Across,
		"recurse":     &o.Recurse,
		"show-hidden": &o.ShowHidden,
		"hyperlink":   &o.Hyperlink,
		"dereference": &o.Dereference,
		"show-size":   &o.ShowSize,
		"dir-sizes":   &o.DirSizes,
	}
	for name, dst := range boolFlags {
		if f.Changed(name) {
			v, _ := f.GetBool(name)
			*dst = &v
		}
	}

	// Negated flags invert into their config field
	if f.Changed("no-quotes") {
		v, _ := f.GetBool("no-quotes")
		quote := !v
		o.Quote = &quote
	}
	if f.Changed("no-summary") {
		v, _ := f.GetBool("no-summary")
		summary := !v
		o.Summary = &summary
	}

	if f.Changed("max-depth") {
		v, _ := f.GetInt("max-depth")
		o.MaxDepth = &v
	}
	if f.Changed("width") {
		v, _ := f.GetInt("width")
		o.Width = &v
	}

	return o
}
