package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var logLevelFlag string

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "jswarn",
	Short: "Closure compiler diagnostic policy resolver",
	Long: `jswarn decides how each diagnostic reported by the Closure compiler is
treated in a build: suppressed, reported as a warning, or reported as an error.

The decision depends on the configured module roots, legacy modules,
per-module and global suppressions, and built-in lookup tables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if hclog.LevelFromString(logLevelFlag) == hclog.NoLevel {
			return fmt.Errorf("invalid --log-level: %s (must be trace, debug, info, warn, or error)", logLevelFlag)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "Log level: trace, debug, info, warn, error")
}

// newLogger returns the logger used by commands, writing to stderr
func newLogger() hclog.Logger {
	level := hclog.LevelFromString(logLevelFlag)
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "jswarn",
		Level:  level,
		Output: os.Stderr,
	})
}
