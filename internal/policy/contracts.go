package policy

import "github.com/sambacha/rules-closure/internal/types"

// ModulePathResolver maps a source path to the logical modules owning it.
// Implementations must be deterministic, must not retain or modify roots,
// and may return an empty result.
type ModulePathResolver interface {
	Resolve(sourcePath string, roots []string) []string
}

// RootValidator is implemented by path resolvers that can reject roots they
// would never match
type RootValidator interface {
	ValidateRoots(roots []string) error
}

// SyntheticDetector reports whether a finding originates from generated code.
// Implementations must be deterministic and side-effect free.
type SyntheticDetector interface {
	IsSynthetic(f *types.Finding) bool
}

// PathResolverFunc adapts a function to ModulePathResolver
type PathResolverFunc func(sourcePath string, roots []string) []string

// Resolve calls fn(sourcePath, roots)
func (fn PathResolverFunc) Resolve(sourcePath string, roots []string) []string {
	return fn(sourcePath, roots)
}

// SyntheticFunc adapts a function to SyntheticDetector
type SyntheticFunc func(f *types.Finding) bool

// IsSynthetic calls fn(f)
func (fn SyntheticFunc) IsSynthetic(f *types.Finding) bool {
	return fn(f)
}

// noModules is used when no path resolver is configured
var noModules = PathResolverFunc(func(string, []string) []string { return nil })

// syntheticHint trusts the upstream Synthetic flag
var syntheticHint = SyntheticFunc(func(f *types.Finding) bool { return f.Synthetic })
