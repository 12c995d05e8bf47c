package output

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/sambacha/rules-closure/internal/catalog"
	"github.com/sambacha/rules-closure/internal/types"
)

// SARIFRenderer renders output in SARIF (Static Analysis Results Interchange Format) JSON
// SARIF is a standardized format for static analysis tools, supported by GitHub, Azure DevOps, etc.
type SARIFRenderer struct{}

// sarifLog is the root SARIF structure (version 2.1.0)
type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
	Properties       *sarifProps  `json:"properties,omitempty"`
}

type sarifProps struct {
	Category string `json:"category"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

// Render writes the check result in SARIF format
func (r *SARIFRenderer) Render(w io.Writer, result *types.CheckResult) error {
	findings := visible(result.Findings, false)

	// Rules are sorted by type for deterministic output
	seen := make(map[types.DiagnosticType]bool)
	var ids []types.DiagnosticType
	for _, f := range findings {
		if !seen[f.Type] {
			seen[f.Type] = true
			ids = append(ids, f.Type)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rules := make([]sarifRule, 0, len(ids))
	for _, id := range ids {
		rule := sarifRule{
			ID:               id.Key(),
			ShortDescription: sarifMessage{Text: id.Key()},
		}
		if e, ok := catalog.DefaultRegistry.Get(id); ok {
			rule.ShortDescription.Text = e.Description
			rule.Properties = &sarifProps{Category: string(e.Category)}
		}
		rules = append(rules, rule)
	}

	results := make([]sarifResult, 0, len(findings))
	for _, f := range findings {
		res := sarifResult{
			RuleID:  f.Type.Key(),
			Level:   mapToSARIFLevel(f.Outcome),
			Message: sarifMessage{Text: f.Message},
		}
		if f.HasSource() {
			loc := sarifLocation{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: f.SourcePath},
				},
			}
			if f.Line > 0 {
				loc.PhysicalLocation.Region = &sarifRegion{StartLine: f.Line, StartColumn: f.Column}
			}
			res.Locations = []sarifLocation{loc}
		}
		results = append(results, res)
	}

	log := sarifLog{
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:           "jswarn",
						InformationURI: "https://github.com/sambacha/rules-closure",
						Rules:          rules,
					},
				},
				Results: results,
			},
		},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(log)
}

// mapToSARIFLevel maps an outcome to a SARIF level
func mapToSARIFLevel(o types.Outcome) string {
	switch o {
	case types.OutcomeError:
		return "error"
	case types.OutcomeWarn:
		return "warning"
	default:
		return "none"
	}
}
