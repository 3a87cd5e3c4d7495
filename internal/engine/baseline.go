package engine

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/xab-mack/stylusaudit/internal/model"
	"github.com/xab-mack/stylusaudit/internal/util"
)

type baseline struct {
	GeneratedAt  time.Time       `json:"generatedAt"`
	Fingerprints map[string]bool `json:"fingerprints"`
}

// loadBaseline accepts either a bare JSON array of fingerprints or the full
// baseline struct.
func loadBaseline(path string) (baseline, error) {
	var b baseline
	if path == "" {
		return b, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	var fp []string
	if err := json.Unmarshal(data, &fp); err == nil {
		m := make(map[string]bool, len(fp))
		for _, f := range fp {
			m[f] = true
		}
		b.Fingerprints = m
		return b, nil
	}
	_ = json.Unmarshal(data, &b)
	if b.Fingerprints == nil {
		b.Fingerprints = map[string]bool{}
	}
	return b, nil
}

// ApplyBaseline removes findings whose fingerprints appear in the baseline
// file at path. An empty path is a no-op.
func ApplyBaseline(res *model.AuditResult, path string) (*model.AuditResult, error) {
	if path == "" {
		return res, nil
	}
	b, err := loadBaseline(path)
	if err != nil {
		return nil, err
	}
	if len(b.Fingerprints) == 0 {
		return res, nil
	}
	out := &model.AuditResult{}
	for _, v := range res.All() {
		if b.Fingerprints[util.Fingerprint(v.Name, v.Recommendation)] {
			continue
		}
		out.Add(v)
	}
	return out, nil
}

// WriteBaseline records the fingerprints of every current finding so later
// runs can report only new ones.
func WriteBaseline(path string, res *model.AuditResult) error {
	if path == "" {
		return nil
	}
	seen := make(map[string]bool)
	for _, v := range res.All() {
		seen[util.Fingerprint(v.Name, v.Recommendation)] = true
	}
	arr := make([]string, 0, len(seen))
	for k := range seen {
		arr = append(arr, k)
	}
	sort.Strings(arr)
	data, _ := json.MarshalIndent(arr, "", "  ")
	return os.WriteFile(path, data, 0o644)
}
