package rules

import (
	"strings"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// stateTransitionPattern checks mutating entry points for validation and
// event emission.
type stateTransitionPattern struct{}

func (*stateTransitionPattern) Name() string { return "State Transition Pattern Analyzer" }

func (*stateTransitionPattern) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability
	mutates := strings.Contains(content, "pub fn") &&
		(strings.Contains(content, "mut self") || strings.Contains(content, "&mut self"))
	if !mutates {
		return vulns, nil
	}

	hasStateValidation := strings.Contains(content, "ensure!(") || strings.Contains(content, "require!(")
	hasEventEmission := strings.Contains(content, "emit!(") || strings.Contains(content, "log!(")

	if !hasStateValidation {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Missing State Validation",
			Severity:        model.SeverityMedium,
			RiskDescription: "State transition without proper validation",
			Recommendation:  "Add state validation using ensure! or require! macros",
		})
	}
	if !hasEventEmission {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Missing Event Emission",
			Severity:        model.SeverityLow,
			RiskDescription: "State change without event emission",
			Recommendation:  "Emit events for all important state transitions",
		})
	}
	return vulns, nil
}
