// Package config handles loading and validating jswarn configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/sambacha/rules-closure/internal/catalog"
	"github.com/sambacha/rules-closure/internal/policy"
	"github.com/sambacha/rules-closure/internal/types"
)

// FileName is the name of the configuration file searched for by Load
const FileName = ".jswarn.hcl"

// Config represents the jswarn configuration
type Config struct {
	Version            int              `hcl:"version,attr"`
	Roots              []string         `hcl:"roots,optional"`
	LegacyModules      []string         `hcl:"legacy_modules,optional"`
	GlobalSuppressions []string         `hcl:"global_suppressions,optional"`
	Modules            []*ModuleConfig  `hcl:"module,block"`
	Synthetic          *SyntheticConfig `hcl:"synthetic,block"`
	Tables             *TablesConfig    `hcl:"tables,block"`
	Output             *OutputConfig    `hcl:"output,block"`
	Policy             *PolicyConfig    `hcl:"policy,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// ModuleConfig declares per-module settings
type ModuleConfig struct {
	Name     string   `hcl:"name,label"`
	Suppress []string `hcl:"suppress,optional"`
	Srcs     []string `hcl:"srcs,optional"`
	Legacy   bool     `hcl:"legacy,optional"`
}

// SyntheticConfig defines which sources count as generated code
type SyntheticConfig struct {
	Patterns []string `hcl:"patterns,optional"`
}

// TablesConfig overrides the built-in lookup tables. A nil list keeps the
// built-in table; a set list replaces it.
type TablesConfig struct {
	AlwaysIgnore         *[]string `hcl:"always_ignore,optional"`
	CheckerExclusiveKeys *[]string `hcl:"checker_exclusive_keys,optional"`
	IgnoreForSynthetic   *[]string `hcl:"ignore_for_synthetic,optional"`
	IgnoreForLegacy      *[]string `hcl:"ignore_for_legacy,optional"`
	CheckerOnlyGroups    *[]string `hcl:"checker_only_groups,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// PolicyConfig defines CI policy settings
type PolicyConfig struct {
	FailOn string `hcl:"fail_on,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// FailOn returns the configured fail_on threshold
func (c *Config) FailOn() types.Outcome {
	if c.Policy == nil || c.Policy.FailOn == "" {
		return types.OutcomeError
	}
	o, err := types.ParseOutcome(c.Policy.FailOn)
	if err != nil {
		return types.OutcomeError
	}
	return o
}

// StoreConfig converts the configuration into policy store input
func (c *Config) StoreConfig() policy.StoreConfig {
	sc := policy.StoreConfig{
		Roots:              append([]string(nil), c.Roots...),
		LegacyModules:      append([]string(nil), c.LegacyModules...),
		Suppressions:       make(map[string][]types.DiagnosticType),
		GlobalSuppressions: toTypes(c.GlobalSuppressions),
	}
	for _, m := range c.Modules {
		if m.Legacy {
			sc.LegacyModules = append(sc.LegacyModules, m.Name)
		}
		if len(m.Suppress) > 0 {
			sc.Suppressions[m.Name] = append(sc.Suppressions[m.Name], toTypes(m.Suppress)...)
		}
	}
	return sc
}

// ModuleSources returns the declared sources of each module that has any
func (c *Config) ModuleSources() map[string][]string {
	sources := make(map[string][]string)
	for _, m := range c.Modules {
		if len(m.Srcs) > 0 {
			sources[m.Name] = append(sources[m.Name], m.Srcs...)
		}
	}
	return sources
}

// SyntheticPatterns returns the configured synthetic source patterns
func (c *Config) SyntheticPatterns() []string {
	if c.Synthetic == nil {
		return nil
	}
	return c.Synthetic.Patterns
}

// TableSpec applies configured table overrides on top of base
func (c *Config) TableSpec(base policy.TableSpec) policy.TableSpec {
	spec := base
	t := c.Tables
	if t == nil {
		return spec
	}
	if t.AlwaysIgnore != nil {
		spec.AlwaysIgnore = toTypes(*t.AlwaysIgnore)
	}
	if t.CheckerExclusiveKeys != nil {
		spec.CheckerExclusiveKeys = append([]string(nil), *t.CheckerExclusiveKeys...)
	}
	if t.IgnoreForSynthetic != nil {
		spec.IgnoreForSynthetic = toTypes(*t.IgnoreForSynthetic)
	}
	if t.IgnoreForLegacy != nil {
		spec.IgnoreForLegacy = toTypes(*t.IgnoreForLegacy)
	}
	if t.CheckerOnlyGroups != nil {
		spec.CheckerOnlyCategories = make([]types.Category, len(*t.CheckerOnlyGroups))
		for i, g := range *t.CheckerOnlyGroups {
			spec.CheckerOnlyCategories[i] = types.Category(g)
		}
	}
	return spec
}

func toTypes(keys []string) []types.DiagnosticType {
	result := make([]types.DiagnosticType, len(keys))
	for i, k := range keys {
		result[i] = types.DiagnosticType(k)
	}
	return result
}

// LoadOption configures Load
type LoadOption func(*loadOptions)

type loadOptions struct {
	logger hclog.Logger
}

// WithLogger sets the logger that receives validation warnings
func WithLogger(l hclog.Logger) LoadOption {
	return func(o *loadOptions) {
		o.logger = l
	}
}

// Load loads configuration from the specified path or searches for it
// Search order: configPath (if provided), .jswarn.hcl in cwd, .jswarn.hcl in dir
func Load(configPath, dir string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	var path string

	if configPath != "" {
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile(dir)
	}

	if path == "" {
		// No config found, use defaults
		return Default(), nil
	}

	return loadFromFile(path, o.logger)
}

// findConfigFile searches for .jswarn.hcl in standard locations
func findConfigFile(dir string) string {
	cwd, err := os.Getwd()
	if err == nil {
		cwdPath := filepath.Join(cwd, FileName)
		if _, err := os.Stat(cwdPath); err == nil {
			return cwdPath
		}
	}

	if dir != "" {
		dirPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(dirPath); err == nil {
			return dirPath
		}
	}

	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string, logger hclog.Logger) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, newEvalContext(os.Environ()), &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	applyDefaults(&config)

	if err := ValidateWith(&config, catalog.DefaultRegistry, logger); err != nil {
		return nil, err
	}

	return &config, nil
}

// newEvalContext exposes environment variables to expressions as env.NAME
func newEvalContext(environ []string) *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = cty.StringVal(v)
	}

	envVal := cty.EmptyObjectVal
	if len(env) > 0 {
		envVal = cty.ObjectVal(env)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envVal,
		},
	}
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if len(cfg.Roots) == 0 {
		cfg.Roots = defaults.Roots
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}

	if cfg.Policy == nil {
		cfg.Policy = defaults.Policy
	} else if cfg.Policy.FailOn == "" {
		cfg.Policy.FailOn = defaults.Policy.FailOn
	}

	if cfg.Synthetic == nil {
		cfg.Synthetic = defaults.Synthetic
	}
}

// moduleNames returns configured module names, sorted
func (c *Config) moduleNames() []string {
	names := make([]string, 0, len(c.Modules))
	for _, m := range c.Modules {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}
