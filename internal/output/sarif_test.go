package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sambacha/rules-closure/internal/types"
)

func TestSARIFRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (&SARIFRenderer{}).Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if log.Version != "2.1.0" {
		t.Errorf("version = %q", log.Version)
	}
	if len(log.Runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(log.Runs))
	}
	run := log.Runs[0]
	if run.Tool.Driver.Name != "jswarn" {
		t.Errorf("driver name = %q", run.Tool.Driver.Name)
	}

	// One rule per distinct visible type, sorted
	wantRules := []string{"JSC_BAD_FLAG", "JSC_DEPRECATED_PROP", "JSC_TYPE_MISMATCH"}
	if len(run.Tool.Driver.Rules) != len(wantRules) {
		t.Fatalf("rules = %d, want %d", len(run.Tool.Driver.Rules), len(wantRules))
	}
	for i, id := range wantRules {
		if run.Tool.Driver.Rules[i].ID != id {
			t.Errorf("rule %d = %q, want %q", i, run.Tool.Driver.Rules[i].ID, id)
		}
	}

	// Catalog types carry their description and category
	typeRule := run.Tool.Driver.Rules[2]
	if typeRule.ShortDescription.Text != "Value assigned to a variable of an incompatible type" {
		t.Errorf("description = %q", typeRule.ShortDescription.Text)
	}
	if typeRule.Properties == nil || typeRule.Properties.Category != "checkTypes" {
		t.Errorf("properties = %+v", typeRule.Properties)
	}
	// Unknown types fall back to their key
	if run.Tool.Driver.Rules[0].ShortDescription.Text != "JSC_BAD_FLAG" || run.Tool.Driver.Rules[0].Properties != nil {
		t.Errorf("unknown rule = %+v", run.Tool.Driver.Rules[0])
	}

	if len(run.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(run.Results))
	}
	first := run.Results[0]
	if first.Level != "error" || first.RuleID != "JSC_TYPE_MISMATCH" {
		t.Errorf("first result = %+v", first)
	}
	if len(first.Locations) != 1 || first.Locations[0].PhysicalLocation.Region.StartLine != 12 {
		t.Errorf("first result location = %+v", first.Locations)
	}
	if run.Results[1].Level != "warning" {
		t.Errorf("legacy result level = %q", run.Results[1].Level)
	}
	if len(run.Results[2].Locations) != 0 {
		t.Error("finding without source should have no location")
	}
}

func TestSARIFLevels(t *testing.T) {
	tests := []struct {
		outcome types.Outcome
		want    string
	}{
		{types.OutcomeSuppressed, "none"},
		{types.OutcomeWarn, "warning"},
		{types.OutcomeError, "error"},
	}
	for _, tt := range tests {
		if got := mapToSARIFLevel(tt.outcome); got != tt.want {
			t.Errorf("mapToSARIFLevel(%s) = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}
