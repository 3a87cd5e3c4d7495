package rules

import (
	"regexp"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// gasPatterns applies regex heuristics for avoidable gas spend: repeated
// storage reads, storage reads inside loops, cloning and unallocated growth.
type gasPatterns struct{}

var gasChecks = []struct {
	re   *regexp.Regexp
	vuln model.Vulnerability
}{
	{
		re: regexp.MustCompile(`\.get\([^)]*\).*\.get\([^)]*\)`),
		vuln: model.Vulnerability{
			Name:            "Repeated Storage Reads",
			Severity:        model.SeverityMedium,
			RiskDescription: "Reading the same storage slot more than once per call wastes gas",
			Recommendation:  "Cache storage values in local variables when accessed multiple times",
		},
	},
	{
		re: regexp.MustCompile(`for\s+.*\s+in\s+.*\.get\(`),
		vuln: model.Vulnerability{
			Name:            "Storage Reads In Loop",
			Severity:        model.SeverityMedium,
			RiskDescription: "Per-iteration storage reads multiply gas costs with input size",
			Recommendation:  "Batch storage reads before loop iteration to reduce gas costs",
		},
	},
	{
		re: regexp.MustCompile(`\.clone\(\)|\.cloned\(\)`),
		vuln: model.Vulnerability{
			Name:            "Unnecessary Cloning",
			Severity:        model.SeverityLow,
			RiskDescription: "Cloning data that could be borrowed increases memory pressure",
			Recommendation:  "Use references instead of cloning where possible",
		},
	},
	{
		re: regexp.MustCompile(`Vec::new\(\)[\s\S]*\.push\(`),
		vuln: model.Vulnerability{
			Name:            "Vector Growth Without Preallocation",
			Severity:        model.SeverityLow,
			RiskDescription: "Growing a vector element by element pays repeated reallocation costs",
			Recommendation:  "Pre-allocate vector capacity when the final size is known",
		},
	},
}

func (*gasPatterns) Name() string { return "Gas Pattern Analyzer" }

func (*gasPatterns) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability
	for _, c := range gasChecks {
		if c.re.MatchString(content) {
			vulns = append(vulns, c.vuln)
		}
	}
	return vulns, nil
}
