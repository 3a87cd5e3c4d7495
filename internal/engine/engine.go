package engine

import (
	"context"
	"encoding/json"

	"github.com/hashicorp/go-hclog"

	"github.com/xab-mack/stylusaudit/internal/cache"
	"github.com/xab-mack/stylusaudit/internal/config"
	"github.com/xab-mack/stylusaudit/internal/contract"
	"github.com/xab-mack/stylusaudit/internal/model"
	"github.com/xab-mack/stylusaudit/internal/rules"
)

// Engine wires the source parser to the rule registry and applies the
// project's configured filters to whatever the rules produce.
type Engine struct {
	registry *rules.Registry
	cfg      config.Config
	log      hclog.Logger
}

func New(cfg config.Config, log hclog.Logger) *Engine {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	reg := rules.NewRegistry(log.Named("rules"))
	reg.RegisterBuiltin(cfg.PatternWeights)
	reg.Keep(cfg.Rules)
	return &Engine{registry: reg, cfg: cfg, log: log}
}

// Rules lists the registered detector names in execution order.
func (e *Engine) Rules() []string { return e.registry.Names() }

// Audit parses the contract source and runs every registered rule against
// it. Parse failures are fatal; individual rule failures are not.
func (e *Engine) Audit(ctx context.Context, source, label string) (*model.AuditResult, error) {
	c, err := e.buildContract(source, label)
	if err != nil {
		return nil, err
	}
	e.log.Debug("contract parsed", "label", label, "dialect", c.Dialect,
		"functions", len(c.Functions), "structures", len(c.Structures))
	res := e.registry.Run(ctx, c)
	return applyFilters(res, e.cfg), nil
}

// buildContract wraps the pure IR builder with a content-hash disk cache.
// Cache misses and write failures are invisible to callers.
func (e *Engine) buildContract(source, label string) (*contract.ParsedContract, error) {
	key := cache.Key("contract-ir-v1", source)
	if b, ok := cache.Load(key); ok {
		var pc contract.ParsedContract
		if err := json.Unmarshal(b, &pc); err == nil {
			return &pc, nil
		}
	}
	pc, err := contract.BuildLabeled(source, label)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(pc); err == nil {
		_ = cache.Store(key, data)
	}
	return pc, nil
}
