package rules

import (
	"strings"

	"github.com/xab-mack/stylusaudit/internal/model"
)

type unusedStorage struct{}

func (*unusedStorage) Name() string { return "Unused Storage Detector" }

func (*unusedStorage) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability
	if strings.Contains(content, "StorageU64") || strings.Contains(content, "StorageU256") {
		if !strings.Contains(content, ".get()") || !strings.Contains(content, ".set(") {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Unused Storage Variable",
				Severity:        model.SeverityLow,
				RiskDescription: "Storage variable declared but never accessed",
				Recommendation:  "Remove unused storage variables or implement their usage",
			})
		}
	}
	return vulns, nil
}

type unsafeCall struct{}

func (*unsafeCall) Name() string { return "Unsafe Code Detector" }

func (*unsafeCall) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability
	if strings.Contains(content, "unsafe") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Unsafe Block Usage",
			Severity:        model.SeverityHigh,
			RiskDescription: "Contract contains unsafe blocks that may lead to memory corruption",
			Recommendation:  "Review and remove unsafe blocks if possible",
		})
	}
	return vulns, nil
}

type storagePattern struct{}

func (*storagePattern) Name() string { return "Storage Pattern Analyzer" }

func (*storagePattern) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability
	if strings.Contains(content, "get") && strings.Contains(content, "set") {
		if strings.Contains(content, "&mut self") && !strings.Contains(content, "#[stylus_sdk::storage]") {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Incorrect Storage Pattern",
				Severity:        model.SeverityMedium,
				RiskDescription: "Storage pattern may not be optimal for L2 operations",
				Recommendation:  "Use Stylus SDK storage attributes and patterns",
			})
		}
	}
	return vulns, nil
}
