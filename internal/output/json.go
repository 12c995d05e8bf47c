package output

import (
	"encoding/json"
	"io"

	"github.com/sambacha/rules-closure/internal/types"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct {
	ShowSuppressed bool
}

// jsonOutput is the structure for JSON and YAML output
type jsonOutput struct {
	Version  string           `json:"version" yaml:"version"`
	Input    string           `json:"input" yaml:"input"`
	Findings []*types.Finding `json:"findings" yaml:"findings"`
	Summary  types.Summary    `json:"summary" yaml:"summary"`
	Result   string           `json:"result" yaml:"result"`
	FailOn   string           `json:"fail_on" yaml:"fail_on"`
}

func newJSONOutput(result *types.CheckResult, showSuppressed bool) jsonOutput {
	return jsonOutput{
		Version:  "1.0",
		Input:    result.Input,
		Findings: visible(result.Findings, showSuppressed),
		Summary:  result.Summary,
		Result:   result.Result,
		FailOn:   result.FailOn.String(),
	}
}

// Render writes the check result in JSON format
func (r *JSONRenderer) Render(w io.Writer, result *types.CheckResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newJSONOutput(result, r.ShowSuppressed))
}
