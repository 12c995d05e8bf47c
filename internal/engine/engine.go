// Package engine runs the policy resolver over a batch of findings.
package engine

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/sambacha/rules-closure/internal/policy"
	"github.com/sambacha/rules-closure/internal/types"
)

// Engine filters findings by check group and resolves the rest
type Engine struct {
	resolver *policy.Resolver
	logger   hclog.Logger
	workers  int
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine's logger
func WithLogger(l hclog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithWorkers bounds the number of findings resolved concurrently
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New creates a new Engine for the given resolver
func New(resolver *policy.Resolver, opts ...Option) *Engine {
	e := &Engine{
		resolver: resolver,
		logger:   hclog.NewNullLogger(),
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate resolves every finding whose check group is enabled. It returns
// the resolved findings in input order and the number of findings dropped
// because their group is disabled. Input findings are not modified.
func (e *Engine) Evaluate(ctx context.Context, findings []*types.Finding) ([]*types.Finding, int, error) {
	// index is the finding's position in the input
	type indexed struct {
		index   int
		finding *types.Finding
	}

	enabled := make([]indexed, 0, len(findings))
	disabled := 0
	for i, f := range findings {
		if f != nil && !e.resolver.ShouldEnable(f.Category) {
			e.logger.Trace("check group disabled", "type", f.Type, "category", f.Category)
			disabled++
			continue
		}
		enabled = append(enabled, indexed{index: i, finding: f})
	}

	resolved := make([]*types.Finding, len(enabled))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, in := range enabled {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f := in.finding
			d, err := e.resolver.Decide(f)
			if err != nil {
				return fmt.Errorf("finding %d: %w", in.index, err)
			}

			out := *f
			out.Outcome = d.Outcome
			out.Rule = string(d.Rule)
			out.Module = d.Module
			resolved[i] = &out

			e.logger.Debug("resolved finding",
				"type", out.Type,
				"source", out.SourcePath,
				"outcome", out.Outcome,
				"rule", out.Rule,
				"modules", d.Modules,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return resolved, disabled, nil
}

// Check runs the engine and returns a complete CheckResult
func (e *Engine) Check(ctx context.Context, input string, findings []*types.Finding, failOn types.Outcome) (*types.CheckResult, error) {
	resolved, disabled, err := e.Evaluate(ctx, findings)
	if err != nil {
		return nil, err
	}

	result := types.NewCheckResult(input, failOn)
	for _, f := range resolved {
		result.AddFinding(f)
	}
	result.Summary.Disabled = disabled

	result.Compute()
	e.logger.Info("check complete",
		"errors", result.Summary.Error,
		"warnings", result.Summary.Warning,
		"suppressed", result.Summary.Suppressed,
		"disabled", result.Summary.Disabled,
		"result", result.Result,
	)
	return result, nil
}
