package config

import (
	"strings"

	"github.com/harrison/arbor/internal/models"
)

// Mode selects the renderer
type Mode int

const (
	ModeTree Mode = iota
	ModeOneLine
	ModeLong
	ModeGrid
)

// String returns the config spelling of the mode
func (m Mode) String() string {
	switch m {
	case ModeOneLine:
		return "oneline"
	case ModeLong:
		return "long"
	case ModeGrid:
		return "grid"
	default:
		return "tree"
	}
}

// SortKey selects how siblings are ordered
type SortKey int

const (
	SortByName SortKey = iota
	SortBySize
	SortByTime
)

// String returns the config spelling of the sort key
func (s SortKey) String() string {
	switch s {
	case SortBySize:
		return "size"
	case SortByTime:
		return "time"
	default:
		return "name"
	}
}

// Switch is a three-way always/auto/never setting
type Switch int

const (
	SwitchAuto Switch = iota
	SwitchAlways
	SwitchNever
)

// String returns the config spelling of the switch
func (s Switch) String() string {
	switch s {
	case SwitchAlways:
		return "always"
	case SwitchNever:
		return "never"
	default:
		return "auto"
	}
}

// Resolve turns auto into the detected capability
func (s Switch) Resolve(detected bool) bool {
	switch s {
	case SwitchAlways:
		return true
	case SwitchNever:
		return false
	default:
		return detected
	}
}

// ScaleField selects which fields the color scale applies to.
// ScaleNone disables color scaling.
type ScaleField int

const (
	ScaleNone ScaleField = iota
	ScaleAll
	ScaleAge
	ScaleSize
)

// String returns the config spelling of the field set
func (f ScaleField) String() string {
	switch f {
	case ScaleAll:
		return "all"
	case ScaleAge:
		return "age"
	case ScaleSize:
		return "size"
	default:
		return ""
	}
}

// Sizes reports whether the set includes sizes
func (f ScaleField) Sizes() bool { return f == ScaleAll || f == ScaleSize }

// Ages reports whether the set includes ages
func (f ScaleField) Ages() bool { return f == ScaleAll || f == ScaleAge }

// ScaleMode selects discrete buckets or a continuous ramp
type ScaleMode int

const (
	ScaleFixed ScaleMode = iota
	ScaleGradient
)

// String returns the config spelling of the scale mode
func (m ScaleMode) String() string {
	if m == ScaleGradient {
		return "gradient"
	}
	return "fixed"
}

// AbsoluteMode controls which path is displayed in place of the name
type AbsoluteMode int

const (
	AbsoluteOff AbsoluteMode = iota
	AbsoluteOn
	AbsoluteFollow
)

// String returns the config spelling of the absolute mode
func (a AbsoluteMode) String() string {
	switch a {
	case AbsoluteOn:
		return "on"
	case AbsoluteFollow:
		return "follow"
	default:
		return "off"
	}
}

// ParseMode parses a display mode name
func ParseMode(s string) (Mode, error) {
	switch normalize(s) {
	case "tree":
		return ModeTree, nil
	case "oneline":
		return ModeOneLine, nil
	case "long":
		return ModeLong, nil
	case "grid":
		return ModeGrid, nil
	}
	return ModeTree, invalidChoice("mode", s, "tree", "oneline", "long", "grid")
}

// ParseSortKey parses a sort key name
func ParseSortKey(s string) (SortKey, error) {
	switch normalize(s) {
	case "name":
		return SortByName, nil
	case "size":
		return SortBySize, nil
	case "time":
		return SortByTime, nil
	}
	return SortByName, invalidChoice("sort", s, "name", "size", "time")
}

// ParseSwitch parses always/auto/never for the named setting
func ParseSwitch(field, s string) (Switch, error) {
	switch normalize(s) {
	case "auto":
		return SwitchAuto, nil
	case "always":
		return SwitchAlways, nil
	case "never":
		return SwitchNever, nil
	}
	return SwitchAuto, invalidChoice(field, s, "always", "auto", "never")
}

// ParseScaleField parses a color scale field set; empty disables scaling
func ParseScaleField(s string) (ScaleField, error) {
	switch normalize(s) {
	case "":
		return ScaleNone, nil
	case "all":
		return ScaleAll, nil
	case "age":
		return ScaleAge, nil
	case "size":
		return ScaleSize, nil
	}
	return ScaleNone, invalidChoice("color_scale", s, "all", "age", "size")
}

// ParseScaleMode parses a color scale mode
func ParseScaleMode(s string) (ScaleMode, error) {
	switch normalize(s) {
	case "fixed":
		return ScaleFixed, nil
	case "gradient":
		return ScaleGradient, nil
	}
	return ScaleFixed, invalidChoice("color_scale_mode", s, "fixed", "gradient")
}

// ParseAbsoluteMode parses an absolute path mode
func ParseAbsoluteMode(s string) (AbsoluteMode, error) {
	switch normalize(s) {
	case "off":
		return AbsoluteOff, nil
	case "on":
		return AbsoluteOn, nil
	case "follow":
		return AbsoluteFollow, nil
	}
	return AbsoluteOff, invalidChoice("absolute", s, "on", "follow", "off")
}

// ParseSizeBase parses a size unit base
func ParseSizeBase(s string) (models.SizeBase, error) {
	switch normalize(s) {
	case "binary":
		return models.SizeBaseBinary, nil
	case "decimal":
		return models.SizeBaseDecimal, nil
	}
	return models.SizeBaseBinary, invalidChoice("size_base", s, "binary", "decimal")
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func invalidChoice(field, value string, choices ...string) error {
	return &ConfigError{
		Field:  field,
		Value:  value,
		Reason: "must be one of: " + strings.Join(choices, ", "),
	}
}
