package rules

import (
	"strings"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// crossChainPattern checks bridge and messaging code for delay and proof
// verification. Both findings can fire from the same text.
type crossChainPattern struct{}

func (*crossChainPattern) Name() string { return "Cross-Chain Vulnerability Analyzer" }

func (*crossChainPattern) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability
	crossChain := strings.Contains(content, "cross_chain") ||
		strings.Contains(content, "bridge") ||
		strings.Contains(content, "L1_to_L2")
	if !crossChain {
		return vulns, nil
	}

	hasDelay := strings.Contains(content, "delay") || strings.Contains(content, "timelock")
	hasVerification := strings.Contains(content, "verify_proof") || strings.Contains(content, "verify_message")

	if !hasDelay {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Missing Cross-Chain Delay",
			Severity:        model.SeverityHigh,
			RiskDescription: "Cross-chain operation without delay mechanism",
			Recommendation:  "Implement timelock or delay mechanism for cross-chain operations",
		})
	}
	if !hasVerification {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Insufficient Cross-Chain Verification",
			Severity:        model.SeverityCritical,
			RiskDescription: "Cross-chain message without proper verification",
			Recommendation:  "Add proper verification for all cross-chain messages",
		})
	}
	return vulns, nil
}
