package config

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/sambacha/rules-closure/internal/catalog"
	"github.com/sambacha/rules-closure/internal/types"
)

// ValidFormats contains all valid output formats
var ValidFormats = map[string]bool{
	"text":       true,
	"json":       true,
	"compact":    true,
	"checkstyle": true,
	"sarif":      true,
	"yaml":       true,
}

// Validate validates the configuration against the default catalog,
// discarding warnings
func Validate(cfg *Config) error {
	return ValidateWith(cfg, catalog.DefaultRegistry, hclog.NewNullLogger())
}

// ValidateWith validates the configuration. Diagnostic types and groups are
// opaque keys: names missing from reg are logged as warnings, with the
// closest catalog name when there is one. Empty names are errors.
func ValidateWith(cfg *Config, reg *catalog.Registry, logger hclog.Logger) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if cfg.Output != nil && cfg.Output.Format != "" {
		if !ValidFormats[cfg.Output.Format] {
			return fmt.Errorf("invalid output format: %s (must be 'text', 'json', 'compact', 'checkstyle', 'sarif', or 'yaml')", cfg.Output.Format)
		}
	}

	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}
	}

	if cfg.Policy != nil && cfg.Policy.FailOn != "" {
		o, err := types.ParseOutcome(cfg.Policy.FailOn)
		if err != nil || o == types.OutcomeSuppressed {
			return fmt.Errorf("invalid fail_on: %s (must be 'ERROR' or 'WARNING')", cfg.Policy.FailOn)
		}
	}

	for _, m := range cfg.LegacyModules {
		if m == "" {
			return fmt.Errorf("legacy_modules contains an empty module name")
		}
	}

	if err := validateKeys(reg, logger, "global_suppressions", cfg.GlobalSuppressions); err != nil {
		return err
	}

	names := cfg.moduleNames()
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("module block has an empty name")
		}
		if i > 0 && names[i-1] == name {
			return fmt.Errorf("duplicate module block: %s", name)
		}
	}
	for _, m := range cfg.Modules {
		if err := validateKeys(reg, logger, "module "+m.Name+" suppress", m.Suppress); err != nil {
			return err
		}
	}

	if t := cfg.Tables; t != nil {
		lists := []struct {
			field string
			keys  *[]string
		}{
			{"always_ignore", t.AlwaysIgnore},
			{"checker_exclusive_keys", t.CheckerExclusiveKeys},
			{"ignore_for_synthetic", t.IgnoreForSynthetic},
			{"ignore_for_legacy", t.IgnoreForLegacy},
		}
		for _, l := range lists {
			if l.keys == nil {
				continue
			}
			if err := validateKeys(reg, logger, "tables."+l.field, *l.keys); err != nil {
				return err
			}
		}
		if t.CheckerOnlyGroups != nil {
			for _, g := range *t.CheckerOnlyGroups {
				if g == "" {
					return fmt.Errorf("tables.checker_only_groups contains an empty group name")
				}
				if reg.HasCategory(types.Category(g)) {
					continue
				}
				if s, ok := reg.SuggestCategory(g); ok {
					logger.Warn("diagnostic group not in catalog", "field", "tables.checker_only_groups", "group", g, "did_you_mean", string(s))
				} else {
					logger.Warn("diagnostic group not in catalog", "field", "tables.checker_only_groups", "group", g)
				}
			}
		}
	}

	return nil
}

// validateKeys rejects empty type keys and warns about keys the catalog
// does not know
func validateKeys(reg *catalog.Registry, logger hclog.Logger, field string, keys []string) error {
	for _, k := range keys {
		if k == "" {
			return fmt.Errorf("%s contains an empty diagnostic type", field)
		}
		if reg.Has(types.DiagnosticType(k)) {
			continue
		}
		if s, ok := reg.Suggest(k); ok {
			logger.Warn("diagnostic type not in catalog", "field", field, "type", k, "did_you_mean", string(s))
		} else {
			logger.Warn("diagnostic type not in catalog", "field", field, "type", k)
		}
	}
	return nil
}
