package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harrison/arbor/internal/config"
	"github.com/harrison/arbor/internal/filelock"
	"github.com/spf13/cobra"
)

// lockTimeout bounds how long config init waits for another writer
const lockTimeout = 5 * time.Second

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the arbor config file",
		Long: `Manage the YAML config file that supplies default listing options.

The file is looked up in this order: --config, $ARBOR_CONFIG,
$XDG_CONFIG_HOME/arbor/config.yaml, ~/.config/arbor/config.yaml.`,
	}

	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			path, err := config.GetConfigPath(explicit)
			if err != nil {
				return fmt.Errorf("failed to locate config: %w", err)
			}

			data, err := config.DefaultFileConfig().Marshal()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), lockTimeout)
			defer cancel()

			if err := filelock.LockAndWrite(ctx, path, data, force); err != nil {
				if errors.Is(err, filelock.ErrExists) {
					return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
				}
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config file settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit, _ := cmd.Flags().GetString("config")

			path, err := config.GetConfigPath(explicit)
			if err != nil {
				return fmt.Errorf("failed to locate config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
