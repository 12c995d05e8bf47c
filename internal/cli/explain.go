package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sambacha/rules-closure/internal/catalog"
	"github.com/sambacha/rules-closure/internal/config"
	"github.com/sambacha/rules-closure/internal/policy"
	"github.com/sambacha/rules-closure/internal/types"
)

var (
	sourceFlag    string
	syntheticFlag bool
)

var explainCmd = &cobra.Command{
	Use:   "explain <type>",
	Short: "Explain how a diagnostic type is resolved",
	Long: `Show how a finding of the given diagnostic type would be treated under
the current configuration, including:
- Category and whether the category is enabled
- Owning modules of the source file, in evaluation order
- Outcome and the rule that decided it

Example:
  jswarn explain JSC_DEPRECATED_PROP --source src/legacy/util.js`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: search for .jswarn.hcl)")
	explainCmd.Flags().StringVar(&sourceFlag, "source", "", "Source file the finding is attributed to")
	explainCmd.Flags().BoolVar(&syntheticFlag, "synthetic", false, "Treat the finding as generated code")
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag, "", config.WithLogger(newLogger().Named("config")))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	f := types.NewFinding(types.DiagnosticType(strings.TrimSpace(args[0])), sourceFlag, "").
		WithSynthetic(syntheticFlag)
	return explain(os.Stdout, cfg, f)
}

// explain writes the resolution of f under cfg
func explain(w io.Writer, cfg *config.Config, f *types.Finding) error {
	resolver, err := newResolver(cfg, newLogger())
	if err != nil {
		return err
	}

	entry, known := catalog.DefaultRegistry.Get(f.Type)
	if known {
		f.WithCategory(entry.Category)
	}

	fmt.Fprintf(w, "Type:     %s\n", f.Type)
	if known {
		fmt.Fprintf(w, "          %s\n", entry.Description)
		fmt.Fprintf(w, "Category: %s\n", entry.Category)
	} else {
		fmt.Fprintln(w, "Category: unknown (type is not in the catalog)")
		if s, ok := catalog.DefaultRegistry.Suggest(f.Type.Key()); ok {
			fmt.Fprintf(w, "          did you mean %s?\n", s)
		}
	}

	if f.Category != "" && !resolver.ShouldEnable(f.Category) {
		fmt.Fprintf(w, "Enabled:  no (%s is reported by the standalone checker only)\n", f.Category)
		fmt.Fprintln(w, "Outcome:  not reported")
		return nil
	}

	d, err := resolver.Decide(f)
	if err != nil {
		return err
	}

	if f.HasSource() {
		fmt.Fprintf(w, "Source:   %s\n", f.SourcePath)
		if modulesConsulted(d.Rule) {
			if len(d.Modules) > 0 {
				fmt.Fprintf(w, "Modules:  %s\n", strings.Join(d.Modules, ", "))
			} else {
				fmt.Fprintln(w, "Modules:  none")
			}
		}
	} else {
		fmt.Fprintln(w, "Source:   none")
	}
	if f.Synthetic {
		fmt.Fprintln(w, "Synthetic: yes")
	}

	if mods := resolver.Store().SuppressingModules(f.Type); len(mods) > 0 {
		fmt.Fprintf(w, "Suppressed by: %s\n", strings.Join(mods, ", "))
	}

	fmt.Fprintf(w, "Outcome:  %s\n", d.Outcome)
	if d.Module != "" {
		fmt.Fprintf(w, "Rule:     %s (module %s)\n", d.Rule, d.Module)
	} else {
		fmt.Fprintf(w, "Rule:     %s\n", d.Rule)
	}

	return nil
}

// modulesConsulted reports whether the owning modules were looked up
// before rule fired
func modulesConsulted(rule policy.Rule) bool {
	switch rule {
	case policy.RuleAlwaysIgnore, policy.RuleCheckerExclusive, policy.RuleSyntheticIgnored,
		policy.RuleSynthetic, policy.RuleNoSource:
		return false
	default:
		return true
	}
}
