package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/stylusaudit/internal/model"
)

func vuln(name, rec string, sev model.Severity) model.Vulnerability {
	return model.Vulnerability{Name: name, Severity: sev, RiskDescription: "r", Recommendation: rec}
}

func TestSummarizeDeduplicatesKeepFirst(t *testing.T) {
	res := &model.AuditResult{}
	first := vuln("Missing Access Control", "add a guard", model.SeverityHigh)
	first.RiskDescription = "first occurrence"
	res.Add(first)
	res.Add(vuln("Missing Access Control", "add a guard", model.SeverityHigh))
	res.Add(vuln("Missing Access Control", "different advice", model.SeverityHigh))

	rep := Summarize(res)
	require.Len(t, rep.High, 2)
	assert.Equal(t, "first occurrence", rep.High[0].RiskDescription)
	assert.Equal(t, "different advice", rep.High[1].Recommendation)
}

func TestSummarizeIsIdempotent(t *testing.T) {
	res := &model.AuditResult{}
	res.Add(vuln("A", "fix a", model.SeverityCritical))
	res.Add(vuln("A", "fix a", model.SeverityCritical))
	res.Add(vuln("B", "fix b", model.SeverityLow))

	rep := Summarize(res)
	again := Summarize(&model.AuditResult{
		Critical: rep.Critical, High: rep.High, Medium: rep.Medium, Low: rep.Low,
	})
	assert.Equal(t, rep, again)
}

func TestRiskScoreFormula(t *testing.T) {
	res := &model.AuditResult{}
	res.Add(vuln("c", "1", model.SeverityCritical))
	res.Add(vuln("h", "2", model.SeverityHigh))
	res.Add(vuln("m", "3", model.SeverityMedium))
	res.Add(vuln("l", "4", model.SeverityLow))

	rep := Summarize(res)
	assert.InDelta(t, 22.0/3.0, rep.RiskScore, 1e-9)
}

func TestRiskScoreBounds(t *testing.T) {
	assert.Zero(t, Summarize(&model.AuditResult{}).RiskScore)

	res := &model.AuditResult{}
	for i := 0; i < 20; i++ {
		res.Add(model.Vulnerability{
			Name:           "Critical Finding",
			Severity:       model.SeverityCritical,
			Recommendation: string(rune('a' + i)),
		})
	}
	rep := Summarize(res)
	assert.Equal(t, 10.0, rep.RiskScore)
}

func TestRiskScoreIgnoresDuplicates(t *testing.T) {
	res := &model.AuditResult{}
	res.Add(vuln("A", "fix a", model.SeverityCritical))
	res.Add(vuln("A", "fix a", model.SeverityCritical))

	rep := Summarize(res)
	assert.InDelta(t, 10.0/3.0, rep.RiskScore, 1e-9)
}

func TestActionItemsOrderedBySeverity(t *testing.T) {
	res := &model.AuditResult{}
	res.Add(vuln("l", "fix low", model.SeverityLow))
	res.Add(vuln("c", "fix critical", model.SeverityCritical))
	res.Add(vuln("m", "fix medium", model.SeverityMedium))
	res.Add(vuln("h", "fix high", model.SeverityHigh))

	rep := Summarize(res)
	assert.Equal(t, []string{"fix critical", "fix high", "fix medium", "fix low"}, rep.ActionItems)
}
