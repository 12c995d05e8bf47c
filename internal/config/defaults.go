package config

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version:            1,
		Roots:              []string{""},
		LegacyModules:      []string{},
		GlobalSuppressions: []string{},
		Modules:            []*ModuleConfig{},
		Synthetic: &SyntheticConfig{
			Patterns: []string{},
		},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Policy: &PolicyConfig{
			FailOn: "ERROR",
		},
	}
}

// DefaultConfigHCL returns a documented starter configuration
func DefaultConfigHCL() string {
	return `# jswarn configuration
# See "jswarn types" for the diagnostic types known to this build.

version = 1

# Source roots used to turn a file path into a module name. Each root is a
# glob matched against the leading directories of the path. Environment
# variables are available as env.NAME.
roots = [
  "bazel-out/*/bin",
  "bazel-out/*/genfiles",
  "",
]

# Modules held to a relaxed bar: findings are reported as warnings.
legacy_modules = []

# Types suppressed in every module. Prefer a module block where possible.
global_suppressions = []

# Per-module suppressions. When srcs is set, every source must belong to the
# module under the configured roots.
# module "foo/bar" {
#   suppress = ["JSC_TYPE_MISMATCH"]
#   srcs     = ["foo/bar.js"]
#   legacy   = false
# }

synthetic {
  # Sources matching these globs are treated as generated code.
  patterns = []
}

# Uncomment to replace a built-in lookup table.
# tables {
#   always_ignore          = ["JSC_UNKNOWN_DEFINE_WARNING"]
#   checker_exclusive_keys = ["JSC_MISSING_JSDOC"]
#   ignore_for_synthetic   = ["JSC_USELESS_CODE"]
#   ignore_for_legacy      = ["JSC_DEPRECATED_VAR"]
#   checker_only_groups    = ["lintChecks"]
# }

output {
  format = "text" # text, json, compact, checkstyle, sarif, yaml
  color  = "auto" # auto, always, never
}

policy {
  fail_on = "ERROR" # ERROR or WARNING
}
`
}
