package model

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func ParseSeverity(s string) Severity {
	switch s {
	case string(SeverityCritical):
		return SeverityCritical
	case string(SeverityHigh):
		return SeverityHigh
	case string(SeverityMedium):
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func SeverityGTE(a, b Severity) bool {
	order := map[Severity]int{SeverityLow: 1, SeverityMedium: 2, SeverityHigh: 3, SeverityCritical: 4}
	return order[a] >= order[b]
}

// Vulnerability is a single heuristic finding. It has no identity beyond its
// fields; rules create them, the aggregator copies them into buckets.
type Vulnerability struct {
	Name            string   `json:"name"`
	Severity        Severity `json:"severity"`
	RiskDescription string   `json:"riskDescription"`
	Recommendation  string   `json:"recommendation"`
}

// AuditResult buckets vulnerabilities by severity in emission order.
type AuditResult struct {
	Critical []Vulnerability `json:"critical"`
	High     []Vulnerability `json:"high"`
	Medium   []Vulnerability `json:"medium"`
	Low      []Vulnerability `json:"low"`
}

// Add routes a vulnerability into the bucket matching its severity.
// Unknown severities land in the low bucket, matching ParseSeverity.
func (r *AuditResult) Add(v Vulnerability) {
	switch v.Severity {
	case SeverityCritical:
		r.Critical = append(r.Critical, v)
	case SeverityHigh:
		r.High = append(r.High, v)
	case SeverityMedium:
		r.Medium = append(r.Medium, v)
	default:
		r.Low = append(r.Low, v)
	}
}

// All returns every vulnerability ordered critical, high, medium, low,
// preserving per-bucket insertion order.
func (r *AuditResult) All() []Vulnerability {
	out := make([]Vulnerability, 0, r.Total())
	out = append(out, r.Critical...)
	out = append(out, r.High...)
	out = append(out, r.Medium...)
	out = append(out, r.Low...)
	return out
}

func (r *AuditResult) Total() int {
	return len(r.Critical) + len(r.High) + len(r.Medium) + len(r.Low)
}

// Report is the aggregated, deduplicated view handed to renderers.
type Report struct {
	Critical    []Vulnerability `json:"critical"`
	High        []Vulnerability `json:"high"`
	Medium      []Vulnerability `json:"medium"`
	Low         []Vulnerability `json:"low"`
	RiskScore   float64         `json:"riskScore"`
	ActionItems []string        `json:"actionItems"`
}

func (r *Report) All() []Vulnerability {
	out := make([]Vulnerability, 0, len(r.Critical)+len(r.High)+len(r.Medium)+len(r.Low))
	out = append(out, r.Critical...)
	out = append(out, r.High...)
	out = append(out, r.Medium...)
	out = append(out, r.Low...)
	return out
}
