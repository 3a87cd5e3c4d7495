package engine

import (
	"strings"

	"github.com/xab-mack/stylusaudit/internal/config"
	"github.com/xab-mack/stylusaudit/internal/model"
)

// applyFilters drops ignored vulnerability names and anything below the
// configured severity threshold, preserving bucket order.
func applyFilters(res *model.AuditResult, cfg config.Config) *model.AuditResult {
	threshold := model.ParseSeverity(cfg.SeverityThreshold)
	out := &model.AuditResult{}
	for _, v := range res.All() {
		if isIgnored(v, cfg) {
			continue
		}
		if !model.SeverityGTE(v.Severity, threshold) {
			continue
		}
		out.Add(v)
	}
	return out
}

func isIgnored(v model.Vulnerability, cfg config.Config) bool {
	for _, ig := range cfg.Ignore {
		if ig.Name != "" && strings.EqualFold(ig.Name, v.Name) {
			return true
		}
	}
	return false
}
