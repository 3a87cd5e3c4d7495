package rules

import (
	"strings"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// accessControl flags externally callable functions without an obvious
// caller restriction, in either dialect.
type accessControl struct{}

func (*accessControl) Name() string { return "Access Control Pattern Analyzer" }

func (*accessControl) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability

	exposed := strings.Contains(content, "pub fn") ||
		(strings.Contains(content, "function") &&
			(strings.Contains(content, "public") || strings.Contains(content, "external")))
	guarded := strings.Contains(content, "#[access_control") ||
		strings.Contains(content, "require!(msg.sender") ||
		strings.Contains(content, "ensure!(is_owner") ||
		strings.Contains(content, "only_owner") ||
		strings.Contains(content, "onlyOwner") ||
		strings.Contains(content, "msg.sender ==")

	if exposed && !guarded {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Missing Access Control",
			Severity:        model.SeverityHigh,
			RiskDescription: "Functions can be called by unauthorized users",
			Recommendation:  "Implement role-based access control using Stylus SDK",
		})
	}

	if strings.Contains(content, "admin") || strings.Contains(content, "owner") {
		if !strings.Contains(content, "initialize") || !strings.Contains(content, "constructor") {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Uninitialized Admin Role",
				Severity:        model.SeverityCritical,
				RiskDescription: "Contract may lack proper administrative controls",
				Recommendation:  "Initialize admin roles in constructor or initialization function",
			})
		}
	}

	if strings.Contains(content, "role") || strings.Contains(content, "permission") {
		hasRoleManagement := strings.Contains(content, "grant_role") ||
			strings.Contains(content, "revoke_role") ||
			strings.Contains(content, "renounce_role")
		if !hasRoleManagement {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Incomplete Role Management",
				Severity:        model.SeverityMedium,
				RiskDescription: "Unable to modify roles after deployment",
				Recommendation:  "Implement complete role management functionality",
			})
		}
	}

	return vulns, nil
}
