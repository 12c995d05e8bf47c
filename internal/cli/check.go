package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/sambacha/rules-closure/internal/catalog"
	"github.com/sambacha/rules-closure/internal/config"
	"github.com/sambacha/rules-closure/internal/engine"
	"github.com/sambacha/rules-closure/internal/findings"
	"github.com/sambacha/rules-closure/internal/output"
	"github.com/sambacha/rules-closure/internal/types"
)

var (
	configFlag         string
	formatFlag         string
	outputFlag         string
	failOnFlag         string
	colorFlag          string
	showSuppressedFlag bool
	quietFlag          bool
	workersFlag        int
)

var checkCmd = &cobra.Command{
	Use:   "check [findings-file|-]",
	Short: "Resolve compiler findings against the policy",
	Long: `Read the findings reported by the compiler (JSON array, newline-delimited
JSON, or YAML) and decide for each one whether it is suppressed, a warning,
or an error.

Findings are read from stdin when no file or "-" is given. The command exits
with status 1 when the result is FAIL.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: search for .jswarn.hcl)")
	checkCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: text, json, compact, checkstyle, sarif, yaml")
	checkCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write output to file instead of stdout")
	checkCmd.Flags().StringVar(&failOnFlag, "fail-on", "", "Fail on outcome: ERROR, WARNING")
	checkCmd.Flags().StringVar(&colorFlag, "color", "", "Color mode: auto, always, never")
	checkCmd.Flags().BoolVar(&showSuppressedFlag, "show-suppressed", false, "Include suppressed findings in output")
	checkCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress output unless the check fails")
	checkCmd.Flags().IntVar(&workersFlag, "workers", 0, "Number of findings resolved concurrently (default: GOMAXPROCS)")
}

// checkOptions holds the resolved settings for one check run
type checkOptions struct {
	input          string
	configPath     string
	format         string
	failOn         string
	color          string
	showSuppressed bool
	quiet          bool
	workers        int
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts := checkOptions{
		input:          "-",
		configPath:     configFlag,
		format:         formatFlag,
		failOn:         failOnFlag,
		color:          colorFlag,
		showSuppressed: showSuppressedFlag,
		quiet:          quietFlag,
		workers:        workersFlag,
	}
	if len(args) == 1 {
		opts.input = args[0]
	}

	// Determine output writer
	var writer *os.File
	if outputFlag != "" {
		f, err := os.Create(outputFlag)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	} else {
		writer = os.Stdout
	}

	result, err := runCheckWith(cmd.Context(), writer, isTerminal(writer), opts, newLogger())
	if err != nil {
		return err
	}

	// Set exit code based on result
	if result.Result == "FAIL" {
		os.Exit(1)
	}

	return nil
}

// runCheckWith loads the policy and findings, resolves them and renders the
// result to w
func runCheckWith(ctx context.Context, w io.Writer, terminal bool, opts checkOptions, logger hclog.Logger) (*types.CheckResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(opts.configPath, "", config.WithLogger(logger.Named("config")))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the config file
	format := cfg.Output.Format
	if opts.format != "" {
		if !config.ValidFormats[opts.format] {
			return nil, fmt.Errorf("invalid --format value: %s", opts.format)
		}
		format = opts.format
	}

	failOn := cfg.FailOn()
	if opts.failOn != "" {
		failOn, err = types.ParseOutcome(opts.failOn)
		if err != nil || failOn == types.OutcomeSuppressed {
			return nil, fmt.Errorf("invalid --fail-on value: %s (must be ERROR or WARNING)", opts.failOn)
		}
	}

	colorMode := cfg.Output.Color
	if opts.color != "" {
		colorMode = opts.color
	}

	resolver, err := newResolver(cfg, logger)
	if err != nil {
		return nil, err
	}

	decoded, err := findings.NewDecoder(catalog.DefaultRegistry).DecodeFile(opts.input)
	if err != nil {
		return nil, err
	}

	eng := engine.New(resolver,
		engine.WithLogger(logger.Named("engine")),
		engine.WithWorkers(opts.workers),
	)
	result, err := eng.Check(ctx, opts.input, decoded, failOn)
	if err != nil {
		return nil, err
	}

	// Skip output if quiet and the check passed
	if !opts.quiet || result.Result == "FAIL" {
		renderer := output.NewRenderer(output.Format(format), output.Options{
			ColorEnabled:   useColor(colorMode, terminal),
			ShowSuppressed: opts.showSuppressed,
		})
		if err := renderer.Render(w, result); err != nil {
			return nil, fmt.Errorf("failed to render output: %w", err)
		}
	}

	return result, nil
}

func useColor(mode string, terminal bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		return terminal
	}
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
