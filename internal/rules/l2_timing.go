package rules

import (
	"strings"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// l2TimingPattern flags block timing assumptions that do not hold on L2,
// where block numbers and timestamps track the sequencer, not L1.
type l2TimingPattern struct{}

func (*l2TimingPattern) Name() string { return "L2-Specific Pattern Checker" }

func (*l2TimingPattern) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability
	if strings.Contains(content, "block.number") || strings.Contains(content, "block.timestamp") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "L2 Timing Assumptions",
			Severity:        model.SeverityMedium,
			RiskDescription: "Usage of block.number or block.timestamp in L2 context",
			Recommendation:  "Use L2-specific timing mechanisms or account for L2 block timing",
		})
	}
	return vulns, nil
}
