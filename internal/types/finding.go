package types

// Finding represents a single diagnostic reported by the upstream compiler
type Finding struct {
	// Type is the diagnostic type (its suppress-code key)
	Type DiagnosticType `json:"type" yaml:"type"`

	// Category is the check group the type belongs to (empty if unknown)
	Category Category `json:"category,omitempty" yaml:"category,omitempty"`

	// SourcePath is the file the finding is attributed to. Empty means the
	// finding is not tied to source (e.g., flag misuse).
	SourcePath string `json:"source,omitempty" yaml:"source,omitempty"`

	// Line and Column locate the finding within SourcePath (0 if unknown)
	Line   int `json:"line,omitempty" yaml:"line,omitempty"`
	Column int `json:"column,omitempty" yaml:"column,omitempty"`

	// Message is the compiler's description of the finding
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Synthetic is set by the upstream engine when the finding is known to
	// originate from generated code
	Synthetic bool `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`

	// Outcome is the resolved treatment, set by the engine
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Rule names the policy rule that decided the outcome
	Rule string `json:"rule,omitempty" yaml:"rule,omitempty"`

	// Module is the owning module that decided the outcome, if any
	Module string `json:"module,omitempty" yaml:"module,omitempty"`
}

// NewFinding creates a new Finding with the given parameters
func NewFinding(typ DiagnosticType, sourcePath, message string) *Finding {
	return &Finding{
		Type:       typ,
		SourcePath: sourcePath,
		Message:    message,
	}
}

// HasSource returns true if the finding is attributed to a source file
func (f *Finding) HasSource() bool {
	return f.SourcePath != ""
}

// WithCategory sets the category and returns the finding for chaining
func (f *Finding) WithCategory(c Category) *Finding {
	f.Category = c
	return f
}

// WithPosition sets the line and column and returns the finding for chaining
func (f *Finding) WithPosition(line, column int) *Finding {
	f.Line = line
	f.Column = column
	return f
}

// WithSynthetic marks the finding as generated code and returns it for chaining
func (f *Finding) WithSynthetic(synthetic bool) *Finding {
	f.Synthetic = synthetic
	return f
}

// CheckResult represents the result of resolving a batch of findings
type CheckResult struct {
	// Input is the name of the findings source (file path or "-")
	Input string `json:"input" yaml:"input"`

	// Findings is the list of all resolved findings, in input order
	Findings []*Finding `json:"findings" yaml:"findings"`

	// Summary contains counts by outcome
	Summary Summary `json:"summary" yaml:"summary"`

	// Result is PASS or FAIL based on the policy
	Result string `json:"result" yaml:"result"`

	// FailOn is the outcome threshold used for the result
	FailOn Outcome `json:"fail_on" yaml:"fail_on"`
}

// Summary contains counts of findings by outcome
type Summary struct {
	Error      int `json:"error" yaml:"error"`
	Warning    int `json:"warning" yaml:"warning"`
	Suppressed int `json:"suppressed" yaml:"suppressed"`
	Disabled   int `json:"disabled" yaml:"disabled"`
	Total      int `json:"total" yaml:"total"`
}

// NewCheckResult creates a new CheckResult
func NewCheckResult(input string, failOn Outcome) *CheckResult {
	return &CheckResult{
		Input:    input,
		Findings: make([]*Finding, 0),
		FailOn:   failOn,
	}
}

// AddFinding adds a finding to the result
func (r *CheckResult) AddFinding(f *Finding) {
	r.Findings = append(r.Findings, f)
}

// Compute calculates the summary and result.
// Disabled is maintained by the caller since disabled findings are not kept.
func (r *CheckResult) Compute() {
	disabled := r.Summary.Disabled
	r.Summary = Summary{Disabled: disabled}
	for _, f := range r.Findings {
		switch f.Outcome {
		case OutcomeError:
			r.Summary.Error++
		case OutcomeWarn:
			r.Summary.Warning++
		case OutcomeSuppressed:
			r.Summary.Suppressed++
		}
	}
	r.Summary.Total = len(r.Findings) + disabled

	// Suppressed findings never fail a check
	failed := false
	for _, f := range r.Findings {
		if f.Outcome != OutcomeSuppressed && f.Outcome.AtLeast(r.FailOn) {
			failed = true
			break
		}
	}

	if failed {
		r.Result = "FAIL"
	} else {
		r.Result = "PASS"
	}
}
