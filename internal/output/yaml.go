package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sambacha/rules-closure/internal/types"
)

// YAMLRenderer renders output as a YAML document with the same shape as JSON
type YAMLRenderer struct {
	ShowSuppressed bool
}

// Render writes the check result in YAML format
func (r *YAMLRenderer) Render(w io.Writer, result *types.CheckResult) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newJSONOutput(result, r.ShowSuppressed)); err != nil {
		return err
	}
	return encoder.Close()
}
