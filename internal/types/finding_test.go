package types

import "testing"

func TestNewFinding(t *testing.T) {
	f := NewFinding("JSC_UNUSED_LOCAL_ASSIGNMENT", "src/foo.js", "test message")

	if f.Type != "JSC_UNUSED_LOCAL_ASSIGNMENT" {
		t.Errorf("Type = %q, want %q", f.Type, "JSC_UNUSED_LOCAL_ASSIGNMENT")
	}
	if f.SourcePath != "src/foo.js" {
		t.Errorf("SourcePath = %q, want %q", f.SourcePath, "src/foo.js")
	}
	if f.Message != "test message" {
		t.Errorf("Message = %q, want %q", f.Message, "test message")
	}
	if !f.HasSource() {
		t.Error("expected HasSource to be true")
	}
}

func TestFindingChainedSetters(t *testing.T) {
	f := NewFinding("JSC_DEPRECATED_VAR", "", "msg").
		WithCategory("deprecated").
		WithPosition(12, 4).
		WithSynthetic(true)

	if f.Category != "deprecated" {
		t.Errorf("Category = %q, want %q", f.Category, "deprecated")
	}
	if f.Line != 12 || f.Column != 4 {
		t.Errorf("position = %d:%d, want 12:4", f.Line, f.Column)
	}
	if !f.Synthetic {
		t.Error("expected Synthetic to be true")
	}
	if f.HasSource() {
		t.Error("expected HasSource to be false for empty source")
	}
}

func TestCheckResultAddFinding(t *testing.T) {
	r := NewCheckResult("findings.json", OutcomeError)
	f := NewFinding("JSC_TYPE_MISMATCH", "a.js", "msg")

	r.AddFinding(f)

	if len(r.Findings) != 1 {
		t.Errorf("len(Findings) = %d, want 1", len(r.Findings))
	}
	if r.Findings[0] != f {
		t.Error("Finding not added correctly")
	}
}

func TestCheckResultCompute(t *testing.T) {
	tests := []struct {
		name        string
		findings    []*Finding
		disabled    int
		failOn      Outcome
		wantResult  string
		wantSummary Summary
	}{
		{
			name:        "no findings passes",
			failOn:      OutcomeError,
			wantResult:  "PASS",
			wantSummary: Summary{Total: 0},
		},
		{
			name:        "error with error threshold fails",
			findings:    []*Finding{{Type: "A", Outcome: OutcomeError}},
			failOn:      OutcomeError,
			wantResult:  "FAIL",
			wantSummary: Summary{Error: 1, Total: 1},
		},
		{
			name:        "warning with error threshold passes",
			findings:    []*Finding{{Type: "A", Outcome: OutcomeWarn}},
			failOn:      OutcomeError,
			wantResult:  "PASS",
			wantSummary: Summary{Warning: 1, Total: 1},
		},
		{
			name:        "warning with warning threshold fails",
			findings:    []*Finding{{Type: "A", Outcome: OutcomeWarn}},
			failOn:      OutcomeWarn,
			wantResult:  "FAIL",
			wantSummary: Summary{Warning: 1, Total: 1},
		},
		{
			name:        "suppressed never fails",
			findings:    []*Finding{{Type: "A", Outcome: OutcomeSuppressed}},
			failOn:      OutcomeWarn,
			wantResult:  "PASS",
			wantSummary: Summary{Suppressed: 1, Total: 1},
		},
		{
			name:        "suppressed threshold still ignores suppressed findings",
			findings:    []*Finding{{Type: "A", Outcome: OutcomeSuppressed}},
			failOn:      OutcomeSuppressed,
			wantResult:  "PASS",
			wantSummary: Summary{Suppressed: 1, Total: 1},
		},
		{
			name:        "suppressed threshold fails on warning",
			findings:    []*Finding{{Type: "A", Outcome: OutcomeSuppressed}, {Type: "B", Outcome: OutcomeWarn}},
			failOn:      OutcomeSuppressed,
			wantResult:  "FAIL",
			wantSummary: Summary{Warning: 1, Suppressed: 1, Total: 2},
		},
		{
			name: "mixed findings with disabled",
			findings: []*Finding{
				{Type: "A", Outcome: OutcomeError},
				{Type: "B", Outcome: OutcomeWarn},
				{Type: "C", Outcome: OutcomeSuppressed},
			},
			disabled:    2,
			failOn:      OutcomeError,
			wantResult:  "FAIL",
			wantSummary: Summary{Error: 1, Warning: 1, Suppressed: 1, Disabled: 2, Total: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewCheckResult("in", tt.failOn)
			for _, f := range tt.findings {
				r.AddFinding(f)
			}
			r.Summary.Disabled = tt.disabled
			r.Compute()

			if r.Result != tt.wantResult {
				t.Errorf("Result = %q, want %q", r.Result, tt.wantResult)
			}
			if r.Summary != tt.wantSummary {
				t.Errorf("Summary = %+v, want %+v", r.Summary, tt.wantSummary)
			}
		})
	}
}
