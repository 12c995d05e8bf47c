package policy

import (
	"fmt"

	"github.com/sambacha/rules-closure/internal/types"
)

// Rule names the precedence rule that decided an outcome
type Rule string

const (
	RuleAlwaysIgnore      Rule = "always-ignore"
	RuleCheckerExclusive  Rule = "checker-exclusive"
	RuleSyntheticIgnored  Rule = "synthetic-ignored"
	RuleSynthetic         Rule = "synthetic"
	RuleNoSource          Rule = "no-source"
	RuleLegacyIgnored     Rule = "legacy-ignored"
	RuleLegacy            Rule = "legacy"
	RuleModuleSuppression Rule = "module-suppression"
	RuleGlobalSuppression Rule = "global-suppression"
	RuleDefault           Rule = "default"
)

// Decision is the outcome of resolving one finding, with the rule and
// module responsible for it
type Decision struct {
	Outcome types.Outcome
	Rule    Rule

	// Module is the owning module that decided the outcome (legacy and
	// module-suppression rules only)
	Module string

	// Modules are the owning modules in the order they were evaluated
	Modules []string
}

// Resolver applies the policy to findings
type Resolver struct {
	store    *Store
	tables   *Tables
	paths    ModulePathResolver
	detector SyntheticDetector
}

// NewResolver creates a Resolver. A nil paths resolver yields no owning
// modules; a nil detector trusts the finding's Synthetic flag.
func NewResolver(store *Store, tables *Tables, paths ModulePathResolver, detector SyntheticDetector) *Resolver {
	if store == nil {
		store, _ = NewStore(StoreConfig{})
	}
	if tables == nil {
		tables = NewTables(TableSpec{})
	}
	if paths == nil {
		paths = noModules
	}
	if detector == nil {
		detector = syntheticHint
	}
	return &Resolver{
		store:    store,
		tables:   tables,
		paths:    paths,
		detector: detector,
	}
}

// Store returns the resolver's policy store
func (r *Resolver) Store() *Store {
	return r.store
}

// Tables returns the resolver's lookup tables
func (r *Resolver) Tables() *Tables {
	return r.tables
}

// ShouldEnable reports whether checks in the category should run at all.
// Categories owned by the standalone checker are disabled.
func (r *Resolver) ShouldEnable(c types.Category) bool {
	return !r.tables.CheckerOnly(c)
}

// Resolve returns the outcome for a finding
func (r *Resolver) Resolve(f *types.Finding) (types.Outcome, error) {
	d, err := r.Decide(f)
	if err != nil {
		return types.OutcomeError, err
	}
	return d.Outcome, nil
}

// Decide returns the outcome for a finding together with the rule that
// produced it. It fails only if the finding has no type.
func (r *Resolver) Decide(f *types.Finding) (Decision, error) {
	if f == nil {
		return Decision{}, fmt.Errorf("nil finding: %w", ErrMissingType)
	}
	t := f.Type
	if t.IsZero() {
		return Decision{}, ErrMissingType
	}

	if r.tables.AlwaysIgnored(t) {
		return Decision{Outcome: types.OutcomeSuppressed, Rule: RuleAlwaysIgnore}, nil
	}

	if r.tables.CheckerExclusive(t.Key()) {
		return Decision{Outcome: types.OutcomeSuppressed, Rule: RuleCheckerExclusive}, nil
	}

	// The user cannot fix generated code, so nothing in it blocks
	if r.detector.IsSynthetic(f) {
		if r.tables.IgnoredForSynthetic(t) {
			return Decision{Outcome: types.OutcomeSuppressed, Rule: RuleSyntheticIgnored}, nil
		}
		return Decision{Outcome: types.OutcomeWarn, Rule: RuleSynthetic}, nil
	}

	if !f.HasSource() {
		return Decision{Outcome: types.OutcomeError, Rule: RuleNoSource}, nil
	}

	modules := r.paths.Resolve(f.SourcePath, r.store.roots)

	// A legacy match only downgrades; keep scanning since a later module
	// may suppress outright.
	pending := ""
	downgraded := false
	for _, m := range modules {
		if r.store.IsLegacy(m) {
			if r.tables.IgnoredForLegacy(t) {
				return Decision{Outcome: types.OutcomeSuppressed, Rule: RuleLegacyIgnored, Module: m, Modules: modules}, nil
			}
			if !downgraded {
				downgraded = true
				pending = m
			}
		} else if r.store.Suppresses(m, t) {
			return Decision{Outcome: types.OutcomeSuppressed, Rule: RuleModuleSuppression, Module: m, Modules: modules}, nil
		}
	}
	if downgraded {
		return Decision{Outcome: types.OutcomeWarn, Rule: RuleLegacy, Module: pending, Modules: modules}, nil
	}

	if r.store.GloballySuppressed(t) {
		return Decision{Outcome: types.OutcomeSuppressed, Rule: RuleGlobalSuppression, Modules: modules}, nil
	}

	return Decision{Outcome: types.OutcomeError, Rule: RuleDefault, Modules: modules}, nil
}
