// Package policy decides how each compiler finding is treated: suppressed,
// reported as a warning, or reported as a blocking error.
//
// A Resolver combines three inputs:
//
//   - a Store, the per-build configuration (source roots, legacy modules,
//     per-module suppressions and global suppressions);
//   - Tables, the process-wide lookup tables of types that are always
//     ignored, owned by the standalone checker, or known to be noisy in
//     generated or legacy code;
//   - two collaborators, a ModulePathResolver that maps a source path to the
//     modules owning it and a SyntheticDetector that recognizes findings in
//     generated code.
//
// Rules are evaluated in a fixed order and the first rule that matches wins:
//
//  1. always-ignore types are suppressed
//  2. types whose key is owned by the standalone checker are suppressed
//  3. findings in synthetic code are suppressed if the type is known to
//     misbehave there, otherwise downgraded to a warning
//  4. findings without a source path are errors
//  5. owning modules are scanned in order: a legacy module suppresses types
//     ignored for legacy code and otherwise records a pending downgrade; a
//     module that suppresses the type suppresses it outright
//  6. globally suppressed types are suppressed
//  7. everything else is an error
//
// Store and Tables are immutable once built, so a Resolver is safe for
// concurrent use.
package policy
