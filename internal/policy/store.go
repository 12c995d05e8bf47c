package policy

import (
	"fmt"
	"slices"
	"sort"

	"github.com/sambacha/rules-closure/internal/types"
)

// StoreConfig is the already-parsed configuration a Store is built from
type StoreConfig struct {
	// Roots are the source-root prefixes, in match precedence order
	Roots []string

	// LegacyModules are modules held to a relaxed bar
	LegacyModules []string

	// Suppressions maps a module to the types it opts out of
	Suppressions map[string][]types.DiagnosticType

	// GlobalSuppressions are types suppressed in every module
	GlobalSuppressions []types.DiagnosticType
}

// Store is the immutable per-build policy configuration
type Store struct {
	roots              []string
	legacyModules      types.StringSet
	suppressions       map[string]types.TypeSet
	globalSuppressions types.TypeSet
}

// StoreOption configures construction-time validation
type StoreOption func(*storeOptions)

type storeOptions struct {
	paths   ModulePathResolver
	sources map[string][]string
}

// WithPathResolver validates roots against the path resolver (if it
// implements RootValidator) and enables the module ownership check
func WithPathResolver(p ModulePathResolver) StoreOption {
	return func(o *storeOptions) {
		o.paths = p
	}
}

// WithModuleSources declares the source files of modules. Every declared
// source must resolve to its module under the configured roots.
func WithModuleSources(sources map[string][]string) StoreOption {
	return func(o *storeOptions) {
		o.sources = sources
	}
}

// NewStore builds a Store, copying every input. It returns a *ConfigError if
// the configuration is inconsistent.
func NewStore(cfg StoreConfig, opts ...StoreOption) (*Store, error) {
	var o storeOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		roots:              slices.Clone(cfg.Roots),
		legacyModules:      types.NewStringSet(cfg.LegacyModules...),
		suppressions:       make(map[string]types.TypeSet, len(cfg.Suppressions)),
		globalSuppressions: types.NewTypeSet(cfg.GlobalSuppressions...),
	}
	if s.roots == nil {
		s.roots = []string{}
	}

	for _, m := range cfg.LegacyModules {
		if m == "" {
			return nil, &ConfigError{Field: "legacy module", Name: m, Reason: "module name is empty"}
		}
	}

	for m, ts := range cfg.Suppressions {
		if m == "" {
			return nil, &ConfigError{Field: "module", Name: m, Reason: "module name is empty"}
		}
		for _, t := range ts {
			if t.IsZero() {
				return nil, &ConfigError{Field: "module", Name: m, Reason: "suppression has an empty diagnostic type"}
			}
		}
		s.suppressions[m] = types.NewTypeSet(ts...)
	}

	for _, t := range cfg.GlobalSuppressions {
		if t.IsZero() {
			return nil, &ConfigError{Field: "global suppression", Name: "", Reason: "diagnostic type is empty"}
		}
	}

	if v, ok := o.paths.(RootValidator); ok {
		if err := v.ValidateRoots(s.roots); err != nil {
			return nil, err
		}
	}

	if len(o.sources) > 0 {
		if o.paths == nil {
			return nil, fmt.Errorf("module sources declared without a path resolver")
		}
		if err := s.checkOwnership(o.paths, o.sources); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// checkOwnership verifies that each declared source resolves to its module
func (s *Store) checkOwnership(paths ModulePathResolver, sources map[string][]string) error {
	// Sort for a deterministic first error
	modules := make([]string, 0, len(sources))
	for m := range sources {
		modules = append(modules, m)
	}
	sort.Strings(modules)

	for _, m := range modules {
		for _, src := range sources[m] {
			owners := paths.Resolve(src, s.roots)
			if !slices.Contains(owners, m) {
				return &ConfigError{
					Field:  "module",
					Name:   m,
					Reason: fmt.Sprintf("source %q resolves to %v under roots %v", src, owners, s.roots),
				}
			}
		}
	}
	return nil
}

// Roots returns a copy of the configured source roots
func (s *Store) Roots() []string {
	return slices.Clone(s.roots)
}

// IsLegacy returns true if the module is a legacy module
func (s *Store) IsLegacy(module string) bool {
	return s.legacyModules.Has(module)
}

// Suppresses returns true if the module opts out of the type
func (s *Store) Suppresses(module string, t types.DiagnosticType) bool {
	return s.suppressions[module].Has(t)
}

// GloballySuppressed returns true if the type is suppressed everywhere
func (s *Store) GloballySuppressed(t types.DiagnosticType) bool {
	return s.globalSuppressions.Has(t)
}

// LegacyModules returns the legacy modules, sorted
func (s *Store) LegacyModules() []string {
	result := make([]string, 0, len(s.legacyModules))
	for m := range s.legacyModules {
		result = append(result, m)
	}
	sort.Strings(result)
	return result
}

// SuppressingModules returns the modules that suppress t, sorted
func (s *Store) SuppressingModules(t types.DiagnosticType) []string {
	var result []string
	for m, ts := range s.suppressions {
		if ts.Has(t) {
			result = append(result, m)
		}
	}
	sort.Strings(result)
	return result
}
