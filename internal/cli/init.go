package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sambacha/rules-closure/internal/config"
)

var forceFlag bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create starter .jswarn.hcl configuration",
	Long: `Create a starter .jswarn.hcl in the given directory (default: current
directory). The file documents every block: roots, legacy modules,
per-module suppressions, synthetic code patterns, table overrides,
output, and policy.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	return writeStarterConfig(os.Stdout, dir, forceFlag)
}

// writeStarterConfig writes the starter configuration into dir
func writeStarterConfig(w io.Writer, dir string, force bool) error {
	configPath := filepath.Join(dir, config.FileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(config.DefaultConfigHCL()), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(w, "Created %s\n", configPath)
	return nil
}
