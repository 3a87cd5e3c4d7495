package report

import (
	"fmt"
	"strings"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// Render produces the plain-text audit report for terminal output.
func Render(rep *model.Report, label string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Audit Report: %s\n", label)
	fmt.Fprintf(&b, "Findings: %d critical, %d high, %d medium, %d low\n\n",
		len(rep.Critical), len(rep.High), len(rep.Medium), len(rep.Low))

	renderBucket(&b, "Critical", rep.Critical)
	renderBucket(&b, "High", rep.High)
	renderBucket(&b, "Medium", rep.Medium)
	renderBucket(&b, "Low", rep.Low)

	fmt.Fprintf(&b, "Risk Score: %.1f / 10\n", rep.RiskScore)
	if len(rep.ActionItems) > 0 {
		b.WriteString("\nRecommended Actions:\n")
		for i, item := range rep.ActionItems {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, item)
		}
	}
	return b.String()
}

func renderBucket(b *strings.Builder, title string, vulns []model.Vulnerability) {
	if len(vulns) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, v := range vulns {
		fmt.Fprintf(b, "  - %s\n", v.Name)
		fmt.Fprintf(b, "    Risk: %s\n", v.RiskDescription)
		fmt.Fprintf(b, "    Mitigation: %s\n", v.Recommendation)
	}
	b.WriteString("\n")
}
