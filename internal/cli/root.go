package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/empdash/internal/config"
	"github.com/rshade/empdash/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// UsageError marks an invalid flag value. main maps it to exit code 2.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCodeUsage is the process exit code for a UsageError.
const ExitCodeUsage = 2

// ExitCode returns the process exit code for an error returned by Execute:
// 0 for nil, ExitCodeUsage for a UsageError, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitCodeUsage
	}
	return 1
}

// NewRootCmd creates the root Cobra command for the empdash CLI.
// It loads configuration, wires up logging and tracing, and adds the list and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "empdash",
		Short:         "Terminal employee directory",
		Long:          "empdash: search, filter, sort, page through and edit an employee directory",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "additional YAML config file merged over ~/.empdash/config.yaml")
	cmd.AddCommand(NewListCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse the built-in directory interactively
  empdash list

  # Browse employees loaded from files
  empdash list --data staff.json --data contractors.yaml

  # Second page of women sorted by salary, as JSON
  empdash list --gender Female --sort asc --page 2 --output json

  # Search by name with a larger page
  empdash list --search ada --page-size 20 --plain

  # Initialize configuration
  empdash config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}
