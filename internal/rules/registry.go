package rules

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/xab-mack/stylusaudit/internal/contract"
	"github.com/xab-mack/stylusaudit/internal/model"
)

type Registry struct {
	log   hclog.Logger
	rules []any
}

func NewRegistry(log hclog.Logger) *Registry {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Registry{log: log}
}

func (r *Registry) Register(rule any) { r.rules = append(r.rules, rule) }

// RegisterBuiltin installs the full detector set. weights overrides the
// weighted detector's pattern weight table; nil keeps the defaults.
func (r *Registry) RegisterBuiltin(weights map[string]float64) {
	r.Register(&reentrancyPattern{})
	r.Register(&l2TimingPattern{})
	r.Register(&storageSecurityPattern{})
	r.Register(&stateTransitionPattern{})
	r.Register(&crossChainPattern{})
	r.Register(&memorySafety{})
	r.Register(&l2Optimization{})
	r.Register(&accessControl{})
	r.Register(&testPatterns{})
	r.Register(newWeightedDetector(weights))
	r.Register(&unusedStorage{})
	r.Register(&unsafeCall{})
	r.Register(&storagePattern{})
	r.Register(&gasPatterns{})
	r.Register(&structLayout{})
}

// Keep retains only rules whose name appears in allowed, preserving
// registration order. An empty allowlist keeps everything.
func (r *Registry) Keep(allowed []string) {
	if len(allowed) == 0 {
		return
	}
	set := make(map[string]struct{}, len(allowed))
	for _, n := range allowed {
		set[strings.TrimSpace(n)] = struct{}{}
	}
	kept := r.rules[:0]
	for _, rl := range r.rules {
		var name string
		switch rule := rl.(type) {
		case ContractRule:
			name = rule.Name()
		case Rule:
			name = rule.Name()
		}
		if _, ok := set[name]; ok {
			kept = append(kept, rl)
		}
	}
	r.rules = kept
}

// Names lists registered rule names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.rules))
	for _, rl := range r.rules {
		switch rule := rl.(type) {
		case ContractRule:
			out = append(out, rule.Name())
		case Rule:
			out = append(out, rule.Name())
		}
	}
	return out
}

// Run evaluates every rule against the contract and buckets the results by
// severity. Rules execute on a bounded worker pool but results merge in
// registration order, so identical input yields identical output. A failing
// rule is logged by name and contributes nothing; it never aborts the run.
func (r *Registry) Run(ctx context.Context, c *contract.ParsedContract) *model.AuditResult {
	cpu := runtime.NumCPU()
	if cpu < 2 {
		cpu = 2
	}
	results := make([][]model.Vulnerability, len(r.rules))
	var wg sync.WaitGroup
	sem := make(chan struct{}, cpu)
	for i, rl := range r.rules {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, rl any) {
			defer wg.Done()
			defer func() { <-sem }()
			var vulns []model.Vulnerability
			var err error
			var name string
			switch rule := rl.(type) {
			case ContractRule:
				name = rule.Name()
				vulns, err = rule.CheckContract(c)
			case Rule:
				name = rule.Name()
				vulns, err = rule.Check(c.RawSource)
			default:
				return
			}
			if err != nil {
				r.log.Error("rule failed", "rule", name, "error", err)
				return
			}
			results[i] = vulns
		}(i, rl)
	}
	wg.Wait()

	res := &model.AuditResult{}
	for _, vs := range results {
		for _, v := range vs {
			res.Add(v)
		}
	}
	return res
}
