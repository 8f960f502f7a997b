package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/harrison/arbor/internal/logger"
	"github.com/harrison/arbor/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultWidth is used when neither the config nor the terminal provides a width
const DefaultWidth = 80

// FileConfig is the on-disk configuration document.
// Every field is a default that command-line flags may override.
type FileConfig struct {
	// Mode is the display mode (tree, oneline, long, grid)
	Mode string `yaml:"mode"`

	// Sort is the sibling sort key (name, size, time)
	Sort string `yaml:"sort"`

	// Reverse flips the final sibling order
	Reverse bool `yaml:"reverse"`

	// Across fills grids row by row instead of column by column
	Across bool `yaml:"across"`

	// Recurse flattens subdirectories into oneline, long and grid listings
	Recurse bool `yaml:"recurse"`

	// ShowHidden includes dot files
	ShowHidden bool `yaml:"show_hidden"`

	// MaxDepth limits recursion; nil means unbounded
	MaxDepth *int `yaml:"max_depth,omitempty"`

	// Pattern is a regular expression names must match (directories are exempt)
	Pattern string `yaml:"pattern,omitempty"`

	// Classify controls type suffixes (always, auto, never)
	Classify string `yaml:"classify"`

	// Color controls ANSI colors (always, auto, never)
	Color string `yaml:"color"`

	// ColorScale selects scaled fields (all, age, size); empty disables
	ColorScale string `yaml:"color_scale,omitempty"`

	// ColorScaleMode selects fixed buckets or a gradient
	ColorScaleMode string `yaml:"color_scale_mode"`

	// Icons controls file icons (always, auto, never)
	Icons string `yaml:"icons"`

	// Quote wraps names containing spaces in double quotes
	Quote bool `yaml:"quote"`

	// Hyperlink wraps names in OSC-8 file:// links
	Hyperlink bool `yaml:"hyperlink"`

	// Absolute replaces names with paths (on, follow, off)
	Absolute string `yaml:"absolute"`

	// Dereference follows symlinks when collecting and classifying
	Dereference bool `yaml:"dereference"`

	// ShowSize appends sizes to names outside long mode
	ShowSize bool `yaml:"show_size"`

	// DirSizes sums directory sizes recursively instead of leaving them absent
	DirSizes bool `yaml:"dir_sizes"`

	// SizeBase selects binary (1024) or decimal (1000) units
	SizeBase string `yaml:"size_base"`

	// Width is the output width in columns; nil means detect
	Width *int `yaml:"width,omitempty"`

	// Summary prints the count and total size lines at the end
	Summary bool `yaml:"summary"`

	// LogLevel sets diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultFileConfig returns a FileConfig with the built-in defaults
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Mode:           "tree",
		Sort:           "name",
		Classify:       "auto",
		Color:          "auto",
		ColorScaleMode: "fixed",
		Icons:          "auto",
		Quote:          true,
		Absolute:       "off",
		SizeBase:       "binary",
		Summary:        true,
		LogLevel:       "warn",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// Keys present in the file replace defaults; absent keys keep them.
func LoadConfig(path string) (*FileConfig, error) {
	cfg := DefaultFileConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Marshal renders the configuration as YAML
func (c *FileConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Overrides carries command-line values; nil fields leave the file value alone
type Overrides struct {
	Mode           *string
	Sort           *string
	Reverse        *bool
	Across         *bool
	Recurse        *bool
	ShowHidden     *bool
	MaxDepth       *int
	Pattern        *string
	Classify       *string
	Color          *string
	ColorScale     *string
	ColorScaleMode *string
	Icons          *string
	Quote          *bool
	Hyperlink      *bool
	Absolute       *string
	Dereference    *bool
	ShowSize       *bool
	DirSizes       *bool
	SizeBase       *string
	Width          *int
	Summary        *bool
	LogLevel       *string
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *FileConfig) MergeWithFlags(o Overrides) {
	setString(&c.Mode, o.Mode)
	setString(&c.Sort, o.Sort)
	setBool(&c.Reverse, o.Reverse)
	setBool(&c.Across, o.Across)
	setBool(&c.Recurse, o.Recurse)
	setBool(&c.ShowHidden, o.ShowHidden)
	if o.MaxDepth != nil {
		depth := *o.MaxDepth
		c.MaxDepth = &depth
	}
	setString(&c.Pattern, o.Pattern)
	setString(&c.Classify, o.Classify)
	setString(&c.Color, o.Color)
	setString(&c.ColorScale, o.ColorScale)
	setString(&c.ColorScaleMode, o.ColorScaleMode)
	setString(&c.Icons, o.Icons)
	setBool(&c.Quote, o.Quote)
	setBool(&c.Hyperlink, o.Hyperlink)
	setString(&c.Absolute, o.Absolute)
	setBool(&c.Dereference, o.Dereference)
	setBool(&c.ShowSize, o.ShowSize)
	setBool(&c.DirSizes, o.DirSizes)
	setString(&c.SizeBase, o.SizeBase)
	if o.Width != nil {
		width := *o.Width
		c.Width = &width
	}
	setBool(&c.Summary, o.Summary)
	setString(&c.LogLevel, o.LogLevel)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// Validate validates the configuration values.
// Returns a *ConfigError or *PatternError for the first invalid value.
func (c *FileConfig) Validate() error {
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := ParseSortKey(c.Sort); err != nil {
		return err
	}
	switches := []struct{ field, value string }{
		{"classify", c.Classify},
		{"color", c.Color},
		{"icons", c.Icons},
	}
	for _, sw := range switches {
		if _, err := ParseSwitch(sw.field, sw.value); err != nil {
			return err
		}
	}
	if _, err := ParseScaleField(c.ColorScale); err != nil {
		return err
	}
	if _, err := ParseScaleMode(c.ColorScaleMode); err != nil {
		return err
	}
	if _, err := ParseAbsoluteMode(c.Absolute); err != nil {
		return err
	}
	if _, err := ParseSizeBase(c.SizeBase); err != nil {
		return err
	}

	if c.MaxDepth != nil && *c.MaxDepth < 0 {
		return &ConfigError{Field: "max_depth", Value: fmt.Sprint(*c.MaxDepth), Reason: "must be >= 0"}
	}
	if c.Width != nil && *c.Width <= 0 {
		return &ConfigError{Field: "width", Value: fmt.Sprint(*c.Width), Reason: "must be > 0"}
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return &ConfigError{Field: "log_level", Value: c.LogLevel, Reason: "must be one of: " + strings.Join(logger.ValidLevels, ", ")}
	}

	if c.Pattern != "" {
		if _, err := regexp.Compile(c.Pattern); err != nil {
			return &PatternError{Pattern: c.Pattern, Err: err}
		}
	}

	return nil
}

// Environment carries the terminal facts needed to resolve auto settings
type Environment struct {
	IsTerminal    bool      // stdout is a TTY
	NoColor       bool      // NO_COLOR is set
	TerminalWidth int       // detected width, 0 if unknown
	Now           time.Time // reference instant for ages
}

// DisplayConfig is the immutable configuration snapshot for one listing.
// It is built once by Resolve and only read afterwards.
type DisplayConfig struct {
	Mode           Mode
	SortBy         SortKey
	Reverse        bool
	Across         bool
	Recurse        bool
	MaxDepth       int               // -1 means unbounded
	Pattern        string            // source of Match, for diagnostics
	Match          func(string) bool // nil when no pattern is configured
	ShowHidden     bool
	Classify       Switch
	Color          bool
	ColorScale     ScaleField
	ColorScaleMode ScaleMode
	Icons          bool
	Quote          bool
	Hyperlink      bool
	Absolute       AbsoluteMode
	Dereference    bool
	ShowSize       bool
	DirSizes       bool
	SizeBase       models.SizeBase
	Width          int
	Summary        bool
	Now            time.Time
}

// Unbounded is the MaxDepth value meaning no depth limit
const Unbounded = -1

// DepthLimited reports whether entries at depth may have children
func (d *DisplayConfig) DepthLimited(depth int) bool {
	return d.MaxDepth != Unbounded && depth >= d.MaxDepth
}

// Resolve validates the file configuration and produces the display snapshot.
// Auto color and icon settings are resolved against env.
func (c *FileConfig) Resolve(env Environment) (*DisplayConfig, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Validate has already rejected every value these can fail on
	mode, _ := ParseMode(c.Mode)
	sortBy, _ := ParseSortKey(c.Sort)
	classify, _ := ParseSwitch("classify", c.Classify)
	colorSwitch, _ := ParseSwitch("color", c.Color)
	iconSwitch, _ := ParseSwitch("icons", c.Icons)
	scaleField, _ := ParseScaleField(c.ColorScale)
	scaleMode, _ := ParseScaleMode(c.ColorScaleMode)
	absolute, _ := ParseAbsoluteMode(c.Absolute)
	sizeBase, _ := ParseSizeBase(c.SizeBase)

	dc := &DisplayConfig{
		Mode:           mode,
		SortBy:         sortBy,
		Reverse:        c.Reverse,
		Across:         c.Across,
		Recurse:        c.Recurse,
		MaxDepth:       Unbounded,
		ShowHidden:     c.ShowHidden,
		Classify:       classify,
		Color:          colorSwitch.Resolve(env.IsTerminal && !env.NoColor),
		ColorScale:     scaleField,
		ColorScaleMode: scaleMode,
		Icons:          iconSwitch.Resolve(env.IsTerminal),
		Quote:          c.Quote,
		Hyperlink:      c.Hyperlink,
		Absolute:       absolute,
		Dereference:    c.Dereference,
		ShowSize:       c.ShowSize,
		DirSizes:       c.DirSizes,
		SizeBase:       sizeBase,
		Width:          env.TerminalWidth,
		Summary:        c.Summary,
		Now:            env.Now,
	}

	if c.MaxDepth != nil {
		dc.MaxDepth = *c.MaxDepth
	}
	if c.Width != nil {
		dc.Width = *c.Width
	}
	if dc.Width <= 0 {
		dc.Width = DefaultWidth
	}
	if dc.Now.IsZero() {
		dc.Now = time.Now()
	}

	if c.Pattern != "" {
		re := regexp.MustCompile(c.Pattern)
		dc.Pattern = c.Pattern
		dc.Match = re.MatchString
	}

	return dc, nil
}
