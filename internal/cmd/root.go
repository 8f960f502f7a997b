package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/display"
	"github.com/harrison/arbor/internal/fileutil"
	"github.com/harrison/arbor/internal/logger"
	"github.com/harrison/arbor/internal/models"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for arbor
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arbor [path]",
		Short: "List a directory as a tree, table or grid",
		Long: `Arbor renders a directory subtree as a connector tree, a flat list,
a long table with permissions, sizes and times, or a terminal-width grid.

Entries can be sorted, filtered by pattern, depth limited and colored
by size or age. Settings come from a YAML config file and are
overridden by flags.`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE:         runList,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/arbor/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Diagnostic level on stderr: trace, debug, info, warn, error")
	addListFlags(cmd)

	cmd.AddCommand(NewConfigCommand())

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, configPath, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.MergeWithFlags(overridesFromFlags(cmd))

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log.SetRunID(uuid.NewString()[:8])
	if sw, err := config.ParseSwitch("color", cfg.Color); err == nil && sw != config.SwitchAuto {
		log.SetColor(sw == config.SwitchAlways)
	}
	log.Debugf("config file: %s", configPath)

	dc, err := cfg.Resolve(detectEnvironment(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	log.Debugf("mode=%s sort=%s width=%d color=%v", dc.Mode, dc.SortBy, dc.Width, dc.Color)
	if dc.Across && dc.Mode != config.ModeGrid {
		log.Warnf("--across only applies to grid mode, ignoring it in %s mode", dc.Mode)
	}

	// Contradictory settings fail before the walk starts
	if _, err := display.NewRenderer(dc, root); err != nil {
		return err
	}

	start := time.Now()
	result, err := fileutil.Walk(root, fileutil.WalkOptions{
		MaxDepth:    walkDepth(dc),
		Dereference: dc.Dereference,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", root, err)
	}
	log.LogWalkComplete(root, models.Count(result.Entries), len(result.Errors), time.Since(start))

	if _, err := display.Render(cmd.OutOrStdout(), result.Entries, dc, root); err != nil {
		return err
	}

	if warning, ok := display.WarnUnreadable(result.Entries); ok {
		warning.Display(cmd.ErrOrStderr(), display.NewPalette(dc.Color))
	}

	return nil
}

// walkDepth is how deep the walker must read for the configured display.
// Flat modes only show the top level unless recursing; directory sizes
// need the whole subtree regardless of what is shown.
func walkDepth(dc *config.DisplayConfig) int {
	if dc.DirSizes {
		return config.Unbounded
	}
	if dc.Mode != config.ModeTree && !dc.Recurse {
		return 0
	}
	return dc.MaxDepth
}

// loadConfig resolves the config path from --config and the environment and loads it
func loadConfig(cmd *cobra.Command) (*config.FileConfig, string, error) {
	explicit, _ := cmd.Flags().GetString("config")

	path, err := config.GetConfigPath(explicit)
	if err != nil {
		return nil, "", fmt.Errorf("failed to locate config: %w", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
