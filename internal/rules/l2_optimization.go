package rules

import (
	"strings"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// l2Optimization flags patterns that inflate L2 execution or L1 posting
// costs: unbatched loops, uncompressed calldata, unpacked storage slots,
// unindexed events and dynamic allocation.
type l2Optimization struct{}

func (*l2Optimization) Name() string { return "L2 Optimization Analyzer" }

func (*l2Optimization) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability

	if strings.Contains(content, "loop") && !strings.Contains(content, "batch") {
		vulns = append(vulns, model.Vulnerability{
			Name:            "Missing Batch Operations",
			Severity:        model.SeverityMedium,
			RiskDescription: "Non-batched operations may lead to higher gas costs on L2",
			Recommendation:  "Implement batching for loop operations to optimize gas costs",
		})
	}

	if strings.Contains(content, "&[u8]") || strings.Contains(content, "Vec<u8>") {
		if !strings.Contains(content, "compression") && !strings.Contains(content, "compact") {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Unoptimized Calldata",
				Severity:        model.SeverityMedium,
				RiskDescription: "Uncompressed calldata increases L1 posting costs",
				Recommendation:  "Implement calldata compression for large data structures",
			})
		}
	}

	if strings.Contains(content, "StorageMap") || strings.Contains(content, "StorageVec") {
		if !strings.Contains(content, "packed") && !strings.Contains(content, "#[repr(packed)]") {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Unpacked Storage",
				Severity:        model.SeverityLow,
				RiskDescription: "Inefficient storage slot usage increases gas costs",
				Recommendation:  "Pack storage slots efficiently using appropriate data layouts",
			})
		}
	}

	if strings.Contains(content, "emit!") || strings.Contains(content, "log!") {
		if !strings.Contains(content, "indexed") {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Unoptimized Event Indexing",
				Severity:        model.SeverityLow,
				RiskDescription: "Non-indexed events may increase gas costs and reduce searchability",
				Recommendation:  "Use indexed parameters for searchable event data",
			})
		}
	}

	if strings.Contains(content, "stylus_sdk") {
		if !strings.Contains(content, "prealloc") &&
			(strings.Contains(content, "Vec::new") || strings.Contains(content, "String::new")) {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Non-preallocated Collections",
				Severity:        model.SeverityMedium,
				RiskDescription: "Dynamic allocation in Stylus contracts can be expensive",
				Recommendation:  "Use preallocation for collections when size is known",
			})
		}
		if strings.Contains(content, "call!") && !strings.Contains(content, "multicall") {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Unoptimized Cross-Contract Calls",
				Severity:        model.SeverityMedium,
				RiskDescription: "Multiple separate calls increase L2 operation costs",
				Recommendation:  "Use multicall pattern for batching cross-contract interactions",
			})
		}
	}

	return vulns, nil
}
