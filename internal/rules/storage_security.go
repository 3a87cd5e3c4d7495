package rules

import (
	"strings"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// storageSecurityPattern checks storage collection access for bounds checking
// and caller restrictions.
type storageSecurityPattern struct{}

func (*storageSecurityPattern) Name() string { return "Storage Security Pattern Analyzer" }

func (*storageSecurityPattern) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability
	if !strings.Contains(content, "StorageMap") && !strings.Contains(content, "StorageVec") {
		return vulns, nil
	}

	hasBoundsCheck := strings.Contains(content, ".get_or_default()") || strings.Contains(content, "if let Some")
	hasAccessControl := strings.Contains(content, "#[authorize") || strings.Contains(content, "require!(")

	if !hasBoundsCheck {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Unsafe Storage Access",
			Severity:        model.SeverityHigh,
			RiskDescription: "Storage access without bounds checking",
			Recommendation:  "Implement bounds checking with get_or_default() or Option handling",
		})
	}
	if !hasAccessControl {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Missing Storage Access Control",
			Severity:        model.SeverityHigh,
			RiskDescription: "Storage modification without access control",
			Recommendation:  "Add access control checks using authorize attribute or require macro",
		})
	}
	return vulns, nil
}
