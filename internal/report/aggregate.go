package report

import (
	"github.com/xab-mack/stylusaudit/internal/model"
	"github.com/xab-mack/stylusaudit/internal/util"
)

// severity weights for the overall risk score
const (
	weightCritical = 10
	weightHigh     = 7
	weightMedium   = 4
	weightLow      = 1
)

// Summarize deduplicates each severity bucket, computes the risk score over
// the deduplicated counts and derives ordered action items. Findings with the
// same name but different recommendations are distinct; the first occurrence
// of a duplicate wins.
func Summarize(res *model.AuditResult) *model.Report {
	rep := &model.Report{
		Critical: dedupe(res.Critical),
		High:     dedupe(res.High),
		Medium:   dedupe(res.Medium),
		Low:      dedupe(res.Low),
	}
	rep.RiskScore = riskScore(len(rep.Critical), len(rep.High), len(rep.Medium), len(rep.Low))
	for _, v := range rep.All() {
		rep.ActionItems = append(rep.ActionItems, v.Recommendation)
	}
	return rep
}

func dedupe(vulns []model.Vulnerability) []model.Vulnerability {
	seen := make(map[string]bool, len(vulns))
	var out []model.Vulnerability
	for _, v := range vulns {
		key := util.Fingerprint(v.Name, v.Recommendation)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

func riskScore(critical, high, medium, low int) float64 {
	score := float64(critical*weightCritical+high*weightHigh+medium*weightMedium+low*weightLow) / 3.0
	if score > 10 {
		score = 10
	}
	if score < 0 {
		score = 0
	}
	return score
}
