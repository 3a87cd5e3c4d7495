package rules

import (
	"strings"
	"sync"

	"github.com/xab-mack/stylusaudit/internal/model"
	"github.com/xab-mack/stylusaudit/internal/util"
)

// learningThreshold is the confidence a weighted pattern must exceed before
// it is translated into a finding. Patterns at or below it are discarded.
const learningThreshold = 0.80

// signal is one scored pattern category.
type signal struct {
	category   string
	confidence float64
}

// weightedDetector scores multiple heuristic pattern categories instead of a
// single boolean condition. Each triggered category starts at a base
// confidence, gains fixed deltas from secondary signals, is multiplied by its
// configured weight and clamped to [0,1]; survivors of the learning threshold
// map one-to-one onto vulnerabilities.
type weightedDetector struct {
	mu      sync.Mutex
	cache   map[string][]signal
	weights map[string]float64
}

// newWeightedDetector builds a detector with a fresh weight table and cache.
// overrides replaces default weights per category; values at or below 1.0
// are rejected since a weight is always an amplifier.
func newWeightedDetector(overrides map[string]float64) *weightedDetector {
	weights := map[string]float64{
		"access_control":       1.2,
		"memory_safety":        1.3,
		"reentrancy":           1.3,
		"arithmetic_safety":    1.2,
		"denial_of_service":    1.15,
		"input_validation":     1.1,
		"batch_operations":     1.1,
		"calldata_compression": 1.2,
		"state_packing":        1.1,
		"sdk_usage":            1.2,
		"event_validation":     1.1,
		"upgrade_safety":       1.2,
		"cross_chain":          1.3,
		"timestamp_dependence": 1.1,
	}
	for k, v := range overrides {
		if v > 1.0 {
			weights[strings.ToLower(k)] = v
		}
	}
	return &weightedDetector{
		cache:   make(map[string][]signal),
		weights: weights,
	}
}

func (*weightedDetector) Name() string { return "Weighted Pattern Detector" }

func (d *weightedDetector) Check(content string) ([]model.Vulnerability, error) {
	var vulns []model.Vulnerability
	for _, s := range d.scorePatterns(content) {
		if s.confidence <= learningThreshold {
			continue
		}
		if v, ok := patternVulnerabilities[s.category]; ok {
			vulns = append(vulns, v)
		}
	}
	return vulns, nil
}

// scorePatterns computes weighted confidences, memoized by a hash of the full
// content. The cache is locked so the detector stays correct under the
// registry's worker pool.
func (d *weightedDetector) scorePatterns(content string) []signal {
	key := util.ContentKey(content)
	d.mu.Lock()
	if cached, ok := d.cache[key]; ok {
		d.mu.Unlock()
		return cached
	}
	d.mu.Unlock()

	raw := collectSignals(content)
	scored := make([]signal, 0, len(raw))
	for _, s := range raw {
		weight, ok := d.weights[s.category]
		if !ok {
			weight = 1.0
		}
		c := s.confidence * weight
		if c > 1 {
			c = 1
		}
		if c < 0 {
			c = 0
		}
		scored = append(scored, signal{category: s.category, confidence: c})
	}

	d.mu.Lock()
	d.cache[key] = scored
	d.mu.Unlock()
	return scored
}

// collectSignals runs every category trigger against the content and assigns
// unweighted confidences: a per-category base plus fixed deltas when
// corroborating substrings are absent (for risk categories) or present (for
// aggravating secondary signals).
func collectSignals(content string) []signal {
	var sigs []signal
	has := func(s string) bool { return strings.Contains(content, s) }

	// access control
	exposed := has("pub fn") || has("function")
	guarded := has("#[access_control") || has("require!(msg.sender") ||
		has("onlyOwner") || has("only_owner") || has("msg.sender ==")
	if exposed && !guarded {
		c := 0.80
		if has("admin") || has("owner") {
			c += 0.10
		}
		sigs = append(sigs, signal{"access_control", c})
	}

	// memory safety
	if has("unsafe") || has("*mut") || has("*const") {
		c := 0.85
		if !has("Box<") && !has("Rc<") {
			c += 0.10
		}
		sigs = append(sigs, signal{"memory_safety", c})
	}

	// reentrancy
	calls := has("external_call") || has(".call(") || has(".call{") || has("send(")
	if calls && !has("nonReentrant") && !has("ReentrancyGuard") && !has("mutex") {
		c := 0.80
		if has("withdraw") || has("transfer(") {
			c += 0.10
		}
		sigs = append(sigs, signal{"reentrancy", c})
	}

	// arithmetic safety
	wideInts := has("u256") || has("u128") || has("uint256")
	if wideInts && !has("checked_add") && !has("checked_mul") && !has("SafeMath") {
		c := 0.75
		if has("unchecked") {
			c += 0.15
		}
		sigs = append(sigs, signal{"arithmetic_safety", c})
	}

	// denial of service
	if (has("loop") || has("while") || has("for ")) && !has("limit") && !has("bound") {
		c := 0.75
		if has("push(") {
			c += 0.10
		}
		sigs = append(sigs, signal{"denial_of_service", c})
	}

	// input validation
	inputs := has("calldata") || has("input")
	if inputs && !has("require") && !has("ensure") && !has("assert") && !has("validate") {
		c := 0.78
		if has("decode") {
			c += 0.07
		}
		sigs = append(sigs, signal{"input_validation", c})
	}

	// batch operations
	if (has("loop") || has("for ")) && !has("batch") {
		c := 0.75
		if has("storage") || has("Storage") {
			c += 0.05
		}
		sigs = append(sigs, signal{"batch_operations", c})
	}

	// calldata compression
	bulkData := has("calldata") || has("&[u8]") || has("Vec<u8>")
	if bulkData && !has("compress") && !has("packed") && !has("compact") {
		c := 0.76
		if has("String") {
			c += 0.06
		}
		sigs = append(sigs, signal{"calldata_compression", c})
	}

	// state packing
	if (has("struct") || has("StorageMap")) && !has("#[repr(packed)]") && !has("packed") {
		c := 0.75
		if has("bool") {
			c += 0.05
		}
		sigs = append(sigs, signal{"state_packing", c})
	}

	// ecosystem SDK usage
	if has("stylus_sdk") && !has("#[stylus_sdk::contract]") && !has("#[entrypoint]") {
		c := 0.78
		if has("extern ") {
			c += 0.07
		}
		sigs = append(sigs, signal{"sdk_usage", c})
	}

	// event validation
	if (has("emit!") || has("log!") || has("emit ")) && !has("indexed") {
		c := 0.76
		if has("transfer") || has("Transfer") {
			c += 0.05
		}
		sigs = append(sigs, signal{"event_validation", c})
	}

	// upgrade safety
	if (has("proxy") || has("upgrade") || has("delegatecall")) && !has("timelock") {
		c := 0.80
		if has("delegatecall") {
			c += 0.10
		}
		sigs = append(sigs, signal{"upgrade_safety", c})
	}

	// cross-chain security
	crossChain := has("cross_chain") || has("bridge") || has("L1_to_L2")
	if crossChain && !has("verify_proof") && !has("verify_message") {
		c := 0.82
		if !has("delay") && !has("timelock") {
			c += 0.08
		}
		sigs = append(sigs, signal{"cross_chain", c})
	}

	// timestamp dependence
	if has("block.timestamp") || has("block.number") || has("timestamp()") {
		c := 0.75
		if has("random") || has("seed") {
			c += 0.10
		}
		sigs = append(sigs, signal{"timestamp_dependence", c})
	}

	return sigs
}

// patternVulnerabilities maps each category to the single finding it emits
// when its weighted confidence clears the learning threshold.
var patternVulnerabilities = map[string]model.Vulnerability{
	"access_control": {
		Name:            "Missing Access Control",
		Severity:        model.SeverityHigh,
		RiskDescription: "Functions can be called by unauthorized users",
		Recommendation:  "Implement role-based access control using Stylus SDK",
	},
	"memory_safety": {
		Name:            "Memory Safety Issue",
		Severity:        model.SeverityCritical,
		RiskDescription: "Memory corruption risk from unsafe operations",
		Recommendation:  "Replace unsafe operations with safe alternatives",
	},
	"reentrancy": {
		Name:            "Reentrancy Vulnerability",
		Severity:        model.SeverityCritical,
		RiskDescription: "Contract state manipulation risk in external calls",
		Recommendation:  "Implement reentrancy guards for external calls",
	},
	"arithmetic_safety": {
		Name:            "Integer Overflow Risk",
		Severity:        model.SeverityHigh,
		RiskDescription: "Arithmetic operations lack overflow protection",
		Recommendation:  "Use checked arithmetic operations for all calculations",
	},
	"denial_of_service": {
		Name:            "Unbounded Loop",
		Severity:        model.SeverityMedium,
		RiskDescription: "Loops without bounds can exhaust gas and block execution",
		Recommendation:  "Cap iteration counts or paginate unbounded work",
	},
	"input_validation": {
		Name:            "Missing Input Validation",
		Severity:        model.SeverityMedium,
		RiskDescription: "External input flows into the contract without validation",
		Recommendation:  "Validate and bound all externally supplied input",
	},
	"batch_operations": {
		Name:            "Unoptimized Batch Operations",
		Severity:        model.SeverityMedium,
		RiskDescription: "Higher gas costs from unoptimized loops",
		Recommendation:  "Implement batch processing for loop operations",
	},
	"calldata_compression": {
		Name:            "Unoptimized Calldata",
		Severity:        model.SeverityMedium,
		RiskDescription: "Uncompressed calldata increases L1 posting costs",
		Recommendation:  "Implement calldata compression for large data structures",
	},
	"state_packing": {
		Name:            "Inefficient State Packing",
		Severity:        model.SeverityLow,
		RiskDescription: "Increased storage costs from unpacked data",
		Recommendation:  "Implement storage packing strategies for contract state",
	},
	"sdk_usage": {
		Name:            "Improper SDK Integration",
		Severity:        model.SeverityMedium,
		RiskDescription: "Contract bypasses SDK entrypoint and storage conventions",
		Recommendation:  "Declare the contract through the SDK entrypoint macros",
	},
	"event_validation": {
		Name:            "Unindexed Event Parameters",
		Severity:        model.SeverityLow,
		RiskDescription: "Events without indexed parameters are hard to audit off-chain",
		Recommendation:  "Use indexed parameters for searchable event data",
	},
	"upgrade_safety": {
		Name:            "Unsafe Upgrade Path",
		Severity:        model.SeverityHigh,
		RiskDescription: "Upgradeable code paths lack delay or governance controls",
		Recommendation:  "Gate upgrades behind a timelock and explicit admin checks",
	},
	"cross_chain": {
		Name:            "Insufficient Cross-Chain Verification",
		Severity:        model.SeverityCritical,
		RiskDescription: "Cross-chain message without proper verification",
		Recommendation:  "Add proper verification for all cross-chain messages",
	},
	"timestamp_dependence": {
		Name:            "Timestamp Dependence",
		Severity:        model.SeverityMedium,
		RiskDescription: "Block timing values are sequencer-influenced and unreliable on L2",
		Recommendation:  "Avoid strict equality and tight windows on block timing values",
	},
}
