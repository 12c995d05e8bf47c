package output

import (
	"io"

	"github.com/sambacha/rules-closure/internal/types"
)

// Renderer defines the interface for output renderers
type Renderer interface {
	// Render writes the check result to the writer
	Render(w io.Writer, result *types.CheckResult) error
}

// Format represents an output format
type Format string

const (
	FormatText       Format = "text"
	FormatJSON       Format = "json"
	FormatCompact    Format = "compact"
	FormatCheckstyle Format = "checkstyle"
	FormatSARIF      Format = "sarif"
	FormatYAML       Format = "yaml"
)

// Options control what renderers show
type Options struct {
	// ColorEnabled enables ANSI colors (text format only)
	ColorEnabled bool

	// ShowSuppressed includes suppressed findings in the output
	ShowSuppressed bool
}

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, opts Options) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{ShowSuppressed: opts.ShowSuppressed}
	case FormatCompact:
		return &CompactRenderer{}
	case FormatCheckstyle:
		return &CheckstyleRenderer{}
	case FormatSARIF:
		return &SARIFRenderer{}
	case FormatYAML:
		return &YAMLRenderer{ShowSuppressed: opts.ShowSuppressed}
	default:
		return &TextRenderer{ColorEnabled: opts.ColorEnabled, ShowSuppressed: opts.ShowSuppressed}
	}
}

// visible returns the findings a renderer should show
func visible(findings []*types.Finding, showSuppressed bool) []*types.Finding {
	if showSuppressed {
		return findings
	}
	result := make([]*types.Finding, 0, len(findings))
	for _, f := range findings {
		if f.Outcome != types.OutcomeSuppressed {
			result = append(result, f)
		}
	}
	return result
}

// location returns the filename, line and column of a finding
func location(f *types.Finding) (string, int, int) {
	if !f.HasSource() {
		return "<unknown>", 0, 0
	}
	return f.SourcePath, f.Line, f.Column
}
