package rules

import (
	"fmt"

	"github.com/xab-mack/stylusaudit/internal/contract"
	"github.com/xab-mack/stylusaudit/internal/model"
)

// maxPackedFields is the widest structure that still plausibly packs into a
// small number of storage slots.
const maxPackedFields = 5

// structLayout is IR-aware: it walks parsed structures rather than raw text
// and flags ones too wide to pack.
type structLayout struct{}

func (*structLayout) Name() string { return "Struct Layout Analyzer" }

func (*structLayout) CheckContract(c *contract.ParsedContract) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability
	for _, s := range c.Structures {
		if len(s.Fields) > maxPackedFields {
			vulns = append(vulns, model.Vulnerability{
				Name:            "Oversized Struct",
				Severity:        model.SeverityLow,
				RiskDescription: fmt.Sprintf("Struct %s declares %d fields; wide structs defeat storage slot packing", s.Name, len(s.Fields)),
				Recommendation:  "Split wide structs or reorder fields to pack storage slots",
			})
		}
	}
	return vulns, nil
}
