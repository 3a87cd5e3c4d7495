package rules

import (
	"strings"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// reentrancyPattern flags external calls that may re-enter before state
// settles. Keyword co-occurrence only; ordering is the weighted detector's
// and the reviewer's job.
type reentrancyPattern struct{}

func (*reentrancyPattern) Name() string { return "Reentrancy Pattern Checker" }

func (*reentrancyPattern) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability
	if strings.Contains(content, "external") && strings.Contains(content, "call") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Potential Reentrancy",
			Severity:        model.SeverityHigh,
			RiskDescription: "External call detected before state changes",
			Recommendation:  "Implement checks-effects-interactions pattern",
		})
	}
	return vulns, nil
}
