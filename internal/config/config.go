package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileName is the project configuration file searched for upwards from the
// audited contract's directory.
const FileName = ".stylusaudit.json"

type IgnoreRule struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type Config struct {
	SeverityThreshold string             `json:"severityThreshold"`
	Ignore            []IgnoreRule       `json:"ignore"`
	Rules             []string           `json:"rules"`
	PatternWeights    map[string]float64 `json:"patternWeights"`
}

func Default() Config {
	return Config{
		SeverityThreshold: "low",
	}
}

// Load searches upwards from startDir for the config file. When none is
// found the defaults apply and the returned path is empty. startDir is made
// absolute first so relative contract paths still ascend to the root.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return cfg, "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			b, err := os.ReadFile(candidate)
			if err != nil {
				return cfg, candidate, err
			}
			_ = json.Unmarshal(b, &cfg)
			return cfg, candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return cfg, "", nil
}
