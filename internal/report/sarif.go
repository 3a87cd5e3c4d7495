package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/xab-mack/stylusaudit/internal/model"
)

// ToSARIF renders the report as a SARIF 2.1.0 document for CI annotation
// tooling. label identifies the audited contract artifact.
func ToSARIF(rep *model.Report, label string) ([]byte, error) {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("stylusaudit", "https://github.com/xab-mack/stylusaudit")
	for _, v := range rep.All() {
		level := toSarifLevel(v.Severity)
		rule := run.AddRule(ruleID(v.Name)).
			WithDescription(v.RiskDescription).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: level,
			})

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(label)),
		)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(v.RiskDescription + ". " + v.Recommendation)).
			WithLevel(level).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	doc.AddRun(run)

	var buf bytes.Buffer
	if err := doc.PrettyWrite(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ruleID slugs a vulnerability name into a stable SARIF rule identifier.
func ruleID(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

func toSarifLevel(severity model.Severity) string {
	switch severity {
	case model.SeverityCritical, model.SeverityHigh:
		return "error"
	case model.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}
