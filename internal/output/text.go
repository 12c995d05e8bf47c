package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/sambacha/rules-closure/internal/types"
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled   bool
	ShowSuppressed bool
}

// Render writes the check result in text format
func (r *TextRenderer) Render(w io.Writer, result *types.CheckResult) error {
	if !r.ColorEnabled {
		color.NoColor = true
	}

	fmt.Fprintf(w, "jswarn: resolving %s\n\n", result.Input)

	for _, f := range visible(result.Findings, r.ShowSuppressed) {
		r.renderFinding(w, f)
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))

	r.renderSummary(w, result)
	r.renderResult(w, result)

	return nil
}

func (r *TextRenderer) renderFinding(w io.Writer, f *types.Finding) {
	fmt.Fprintf(w, "%s  %s\n", r.colorOutcome(f.Outcome), f.Type)

	if f.HasSource() {
		if f.Line > 0 {
			fmt.Fprintf(w, "  %s:%d\n", f.SourcePath, f.Line)
		} else {
			fmt.Fprintf(w, "  %s\n", f.SourcePath)
		}
	}

	if f.Message != "" {
		fmt.Fprintf(w, "  %s\n", f.Message)
	}

	if f.Rule != "" {
		if f.Module != "" {
			fmt.Fprintf(w, "  [%s] module=%s\n", f.Rule, f.Module)
		} else {
			fmt.Fprintf(w, "  [%s]\n", f.Rule)
		}
	}

	fmt.Fprintln(w)
}

func (r *TextRenderer) renderSummary(w io.Writer, result *types.CheckResult) {
	parts := []string{}

	if result.Summary.Error > 0 {
		parts = append(parts, fmt.Sprintf("%d error", result.Summary.Error))
	}
	if result.Summary.Warning > 0 {
		parts = append(parts, fmt.Sprintf("%d warning", result.Summary.Warning))
	}
	if result.Summary.Suppressed > 0 {
		parts = append(parts, fmt.Sprintf("%d suppressed", result.Summary.Suppressed))
	}
	if result.Summary.Disabled > 0 {
		parts = append(parts, fmt.Sprintf("%d disabled", result.Summary.Disabled))
	}

	if len(parts) == 0 {
		parts = append(parts, "no issues found")
	}

	fmt.Fprintf(w, "Summary: %s\n", strings.Join(parts, ", "))
}

func (r *TextRenderer) renderResult(w io.Writer, result *types.CheckResult) {
	if result.Result == "PASS" {
		if r.ColorEnabled {
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(w, "Result: %s\n", green("PASS"))
		} else {
			fmt.Fprintln(w, "Result: PASS")
		}
	} else {
		if r.ColorEnabled {
			red := color.New(color.FgRed).SprintFunc()
			fmt.Fprintf(w, "Result: %s (errors detected)\n", red("FAIL"))
		} else {
			fmt.Fprintln(w, "Result: FAIL (errors detected)")
		}
	}
}

func (r *TextRenderer) colorOutcome(o types.Outcome) string {
	str := o.String()
	if !r.ColorEnabled {
		return str
	}

	switch o {
	case types.OutcomeError:
		return color.New(color.FgRed, color.Bold).Sprint(str)
	case types.OutcomeWarn:
		return color.New(color.FgYellow).Sprint(str)
	case types.OutcomeSuppressed:
		return color.New(color.Faint).Sprint(str)
	default:
		return str
	}
}
