package output

import (
	"fmt"
	"io"

	"github.com/sambacha/rules-closure/internal/types"
)

// CompactRenderer renders output in a condensed single-line-per-issue format
// This format is useful for logs and quick scanning
type CompactRenderer struct{}

// Render writes the check result in compact format
// Format: filename:line:column: outcome: [type] message
func (r *CompactRenderer) Render(w io.Writer, result *types.CheckResult) error {
	for _, f := range visible(result.Findings, false) {
		filename, line, col := location(f)
		fmt.Fprintf(w, "%s:%d:%d: %s: [%s] %s\n",
			filename, line, col, f.Outcome, f.Type, f.Message)
	}

	return nil
}
