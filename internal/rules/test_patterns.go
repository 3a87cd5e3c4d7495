package rules

import (
	"strings"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// testPatterns grades the testing surface shipped with the contract source.
type testPatterns struct{}

func (*testPatterns) Name() string { return "Testing Pattern Analyzer" }

func (*testPatterns) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability

	if !strings.Contains(content, "#[cfg(test)]") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Missing Test Module",
			Severity:        model.SeverityMedium,
			RiskDescription: "Untested code may contain bugs or vulnerabilities",
			Recommendation:  "Add comprehensive test module with unit tests",
		})
	}

	if strings.Contains(content, "#[test]") && !strings.Contains(content, "assert") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Missing Test Assertions",
			Severity:        model.SeverityMedium,
			RiskDescription: "Tests without assertions may not verify functionality",
			Recommendation:  "Add assertions to verify test outcomes",
		})
	}

	if !strings.Contains(content, "#[test]") || !strings.Contains(content, "integration") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Missing Integration Tests",
			Severity:        model.SeverityLow,
			RiskDescription: "Contract interactions may not be fully tested",
			Recommendation:  "Add integration tests for contract interactions",
		})
	}

	if !strings.Contains(content, "quickcheck") && !strings.Contains(content, "proptest") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Missing Fuzz Testing",
			Severity:        model.SeverityLow,
			RiskDescription: "Edge cases may not be discovered through regular testing",
			Recommendation:  "Implement property-based testing using quickcheck or proptest",
		})
	}

	if strings.Contains(content, "#[test]") && !strings.Contains(content, "should_panic") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Missing Error Case Tests",
			Severity:        model.SeverityMedium,
			RiskDescription: "Error handling may not be properly tested",
			Recommendation:  "Add tests for error cases using #[should_panic]",
		})
	}

	return vulns, nil
}
