package rules

import (
	"strings"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// memorySafety covers raw pointers, unsafe blocks, manual memory management
// and SDK-specific allocation hazards.
type memorySafety struct{}

func (*memorySafety) Name() string { return "Memory Safety Analyzer" }

func (*memorySafety) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability

	if strings.Contains(content, "*mut") || strings.Contains(content, "*const") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Raw Pointer Usage",
			Severity:        model.SeverityHigh,
			RiskDescription: "Raw pointers can lead to memory corruption and undefined behavior",
			Recommendation:  "Use safe alternatives like references or smart pointers",
		})
	}

	// unsafe trait declarations are a language feature, not a block
	if strings.Contains(content, "unsafe") && !strings.Contains(content, "unsafe trait") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Unsafe Block Usage",
			Severity:        model.SeverityCritical,
			RiskDescription: "Unsafe blocks can bypass memory safety guarantees",
			Recommendation:  "Remove unsafe blocks or provide strong safety invariants",
		})
	}

	if strings.Contains(content, "Box::into_raw") || strings.Contains(content, "ManuallyDrop") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Potential Memory Leak",
			Severity:        model.SeverityHigh,
			RiskDescription: "Memory leaks can cause resource exhaustion and contract failure",
			Recommendation:  "Ensure proper cleanup of resources and avoid manual memory management",
		})
	}

	if strings.Contains(content, "MaybeUninit") || strings.Contains(content, "std::mem::uninitialized") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Uninitialized Memory Usage",
			Severity:        model.SeverityCritical,
			RiskDescription: "Using uninitialized memory leads to undefined behavior",
			Recommendation:  "Initialize all memory before use and avoid MaybeUninit when possible",
		})
	}

	if strings.Contains(content, "'static") && strings.Contains(content, "&mut") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Suspicious Lifetime Usage",
			Severity:        model.SeverityMedium,
			RiskDescription: "Improper lifetime usage can lead to memory safety issues",
			Recommendation:  "Review lifetime annotations and ensure they are necessary",
		})
	}

	if strings.Contains(content, "stylus_sdk") {
		if strings.Contains(content, "Vec::with_capacity") && strings.Contains(content, ">1024") {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Large Memory Allocation",
				Severity:        model.SeverityHigh,
				RiskDescription: "Large memory allocations can cause contract execution failures",
				Recommendation:  "Use smaller, fixed-size allocations or paginate data",
			})
		}
		if strings.Contains(content, "storage::") && !strings.Contains(content, "try_") {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Unchecked Storage Access",
				Severity:        model.SeverityMedium,
				RiskDescription: "Storage operations without error handling may fail silently",
				Recommendation:  "Use try_ variants for storage operations and handle errors explicitly",
			})
		}
		if strings.Contains(content, "external::") && !strings.Contains(content, "Result<") {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Unchecked External Calls",
				Severity:        model.SeverityHigh,
				RiskDescription: "External calls without proper error handling can lead to undefined state",
				Recommendation:  "Always use Result for external calls and handle all error cases",
			})
		}
	}

	return vulns, nil
}
