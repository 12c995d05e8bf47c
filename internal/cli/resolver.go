package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/sambacha/rules-closure/internal/catalog"
	"github.com/sambacha/rules-closure/internal/config"
	"github.com/sambacha/rules-closure/internal/modpath"
	"github.com/sambacha/rules-closure/internal/policy"
	"github.com/sambacha/rules-closure/internal/synthetic"
)

// newResolver builds the policy resolver described by cfg
func newResolver(cfg *config.Config, logger hclog.Logger) (*policy.Resolver, error) {
	paths := modpath.New()

	store, err := policy.NewStore(cfg.StoreConfig(),
		policy.WithPathResolver(paths),
		policy.WithModuleSources(cfg.ModuleSources()),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	detector, err := synthetic.New(cfg.SyntheticPatterns())
	if err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	tables := policy.NewTables(cfg.TableSpec(catalog.DefaultTableSpec()))

	logger.Debug("policy loaded",
		"config", cfg.ConfigPath(),
		"roots", store.Roots(),
		"legacy_modules", len(store.LegacyModules()),
	)

	return policy.NewResolver(store, tables, paths, detector), nil
}
