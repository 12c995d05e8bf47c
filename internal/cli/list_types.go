package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sambacha/rules-closure/internal/catalog"
	"github.com/sambacha/rules-closure/internal/config"
	"github.com/sambacha/rules-closure/internal/policy"
	"github.com/sambacha/rules-closure/internal/types"
)

var categoryFlag string

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List known diagnostic types",
	Long: `List every diagnostic type in the catalog with its category and the
lookup tables it belongs to under the current configuration.

Table markers:
  always-ignore       always suppressed
  checker-exclusive   reported by the standalone checker only
  synthetic-ignored   suppressed in generated code
  legacy-ignored      suppressed in legacy modules
  checker-only-group  category disabled in compiler builds

The last column lists the modules that suppress the type, or * when it is
suppressed globally.`,
	Args: cobra.NoArgs,
	RunE: runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)

	typesCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: search for .jswarn.hcl)")
	typesCmd.Flags().StringVar(&categoryFlag, "category", "", "Only list types in this category")
}

func runTypes(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := config.Load(configFlag, "", config.WithLogger(logger.Named("config")))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	resolver, err := newResolver(cfg, logger)
	if err != nil {
		return err
	}
	return listTypes(os.Stdout, catalog.DefaultRegistry, resolver, types.Category(categoryFlag))
}

// listTypes writes one line per catalog entry, optionally filtered by
// category, with the tables and modules that affect it under resolver
func listTypes(w io.Writer, reg *catalog.Registry, resolver *policy.Resolver, category types.Category) error {
	if category != "" && !reg.HasCategory(category) {
		return fmt.Errorf("unknown category: %s", category)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	tables := resolver.Tables()
	store := resolver.Store()

	fmt.Fprintln(tw, "TYPE\tCATEGORY\tTABLES\tSUPPRESSED IN")
	for _, e := range reg.All() {
		if category != "" && e.Category != category {
			continue
		}
		suppressedIn := "-"
		if store.GloballySuppressed(e.Type) {
			suppressedIn = "*"
		} else if mods := store.SuppressingModules(e.Type); len(mods) > 0 {
			suppressedIn = strings.Join(mods, ",")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Type, e.Category, strings.Join(tableMarkers(tables, e), ","), suppressedIn)
	}
	return tw.Flush()
}

func tableMarkers(tables *policy.Tables, e *catalog.Entry) []string {
	var markers []string
	if tables.AlwaysIgnored(e.Type) {
		markers = append(markers, "always-ignore")
	}
	if tables.CheckerExclusive(e.Type.Key()) {
		markers = append(markers, "checker-exclusive")
	}
	if tables.IgnoredForSynthetic(e.Type) {
		markers = append(markers, "synthetic-ignored")
	}
	if tables.IgnoredForLegacy(e.Type) {
		markers = append(markers, "legacy-ignored")
	}
	if tables.CheckerOnly(e.Category) {
		markers = append(markers, "checker-only-group")
	}
	if len(markers) == 0 {
		markers = append(markers, "-")
	}
	return markers
}
