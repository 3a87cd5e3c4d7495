package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/stylusaudit/internal/model"
)

func TestRenderListsFindingsAndActions(t *testing.T) {
	res := &model.AuditResult{}
	res.Add(model.Vulnerability{
		Name:            "Unsafe Block Usage",
		Severity:        model.SeverityCritical,
		RiskDescription: "Unsafe blocks can bypass memory safety guarantees",
		Recommendation:  "Remove unsafe blocks or provide strong safety invariants",
	})
	res.Add(model.Vulnerability{
		Name:            "Unpacked Storage",
		Severity:        model.SeverityLow,
		RiskDescription: "Increased storage costs from unpacked data",
		Recommendation:  "Implement storage packing strategies",
	})
	rep := Summarize(res)

	out := Render(rep, "counter.rs")
	assert.Contains(t, out, "Audit Report: counter.rs")
	assert.Contains(t, out, "1 critical, 0 high, 0 medium, 1 low")
	assert.Contains(t, out, "  - Unsafe Block Usage")
	assert.Contains(t, out, "Risk: Unsafe blocks can bypass memory safety guarantees")
	assert.Contains(t, out, "Mitigation: Remove unsafe blocks or provide strong safety invariants")
	assert.Contains(t, out, "Risk Score: 3.7 / 10")
	assert.Contains(t, out, "1. Remove unsafe blocks or provide strong safety invariants")
	assert.Contains(t, out, "2. Implement storage packing strategies")
}

func TestRenderEmptyReport(t *testing.T) {
	out := Render(Summarize(&model.AuditResult{}), "empty.sol")
	assert.Contains(t, out, "0 critical, 0 high, 0 medium, 0 low")
	assert.Contains(t, out, "Risk Score: 0.0 / 10")
	assert.NotContains(t, out, "Recommended Actions")
}

func TestToSARIF(t *testing.T) {
	res := &model.AuditResult{}
	res.Add(model.Vulnerability{
		Name:            "Missing Access Control",
		Severity:        model.SeverityHigh,
		RiskDescription: "Functions can be called by unauthorized users",
		Recommendation:  "Implement role-based access control using Stylus SDK",
	})
	res.Add(model.Vulnerability{
		Name:            "Unpacked Storage",
		Severity:        model.SeverityLow,
		RiskDescription: "Increased storage costs from unpacked data",
		Recommendation:  "Implement storage packing strategies",
	})
	rep := Summarize(res)

	data, err := ToSARIF(rep, "vault.rs")
	require.NoError(t, err)

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string `json:"ruleId"`
				Level  string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)
	assert.Equal(t, "stylusaudit", doc.Runs[0].Tool.Driver.Name)
	require.Len(t, doc.Runs[0].Results, 2)
	assert.Equal(t, "missing-access-control", doc.Runs[0].Results[0].RuleID)
	assert.Equal(t, "error", doc.Runs[0].Results[0].Level)
	assert.Equal(t, "unpacked-storage", doc.Runs[0].Results[1].RuleID)
	assert.Equal(t, "note", doc.Runs[0].Results[1].Level)
}
