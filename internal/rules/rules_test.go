package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/stylusaudit/internal/model"
)

func names(vulns []model.Vulnerability) []string {
	out := make([]string, 0, len(vulns))
	for _, v := range vulns {
		out = append(out, v.Name)
	}
	return out
}

func TestMemorySafetyUnsafeBlockIsCritical(t *testing.T) {
	rule := &memorySafety{}
	vulns, err := rule.Check(`
pub fn read(&self) -> u64 {
    unsafe { *self.ptr }
}
`)
	require.NoError(t, err)
	require.Contains(t, names(vulns), "Unsafe Block Usage")
	for _, v := range vulns {
		if v.Name == "Unsafe Block Usage" {
			assert.Equal(t, model.SeverityCritical, v.Severity)
		}
	}
}

func TestMemorySafetyUnsafeTraitDoesNotFire(t *testing.T) {
	rule := &memorySafety{}
	vulns, err := rule.Check("unsafe trait Marker {}\n")
	require.NoError(t, err)
	assert.NotContains(t, names(vulns), "Unsafe Block Usage")
}

func TestAccessControlMissingGuard(t *testing.T) {
	rule := &accessControl{}
	vulns, err := rule.Check(`
pub fn withdraw(&mut self, amount: U256) {
    self.balance.set(self.balance.get() - amount);
}
`)
	require.NoError(t, err)
	assert.Contains(t, names(vulns), "Missing Access Control")
}

func TestAccessControlGuardSuppressesFinding(t *testing.T) {
	rule := &accessControl{}
	vulns, err := rule.Check(`
pub fn withdraw(&mut self, amount: U256) {
    require!(msg.sender == self.admin.get(), "not admin");
    self.balance.set(self.balance.get() - amount);
}
`)
	require.NoError(t, err)
	assert.NotContains(t, names(vulns), "Missing Access Control")
}

func TestCrossChainBothFindingsFire(t *testing.T) {
	rule := &crossChainPattern{}
	vulns, err := rule.Check(`
pub fn cross_chain_send(&mut self, payload: Vec<u8>) {
    self.queue.push(payload);
}
`)
	require.NoError(t, err)
	got := names(vulns)
	assert.Contains(t, got, "Missing Cross-Chain Delay")
	assert.Contains(t, got, "Insufficient Cross-Chain Verification")
}

func TestCrossChainVerifiedAndDelayedIsClean(t *testing.T) {
	rule := &crossChainPattern{}
	vulns, err := rule.Check(`
pub fn bridge_out(&mut self, payload: Vec<u8>, proof: Vec<u8>) {
    self.verify_proof(&proof);
    self.timelock.schedule(payload);
}
`)
	require.NoError(t, err)
	assert.Empty(t, vulns)
}

func TestCrossChainSkipsUnrelatedSource(t *testing.T) {
	rule := &crossChainPattern{}
	vulns, err := rule.Check("pub fn ping(&self) {}\n")
	require.NoError(t, err)
	assert.Empty(t, vulns)
}

func TestReentrancyExternalCall(t *testing.T) {
	rule := &reentrancyPattern{}
	vulns, err := rule.Check(`
function withdraw() external {
    msg.sender.call{value: bal}("");
    balances[msg.sender] = 0;
}
`)
	require.NoError(t, err)
	require.Len(t, vulns, 1)
	assert.Equal(t, "Potential Reentrancy", vulns[0].Name)
	assert.Equal(t, model.SeverityHigh, vulns[0].Severity)
}

func TestUnsafeCallKeepsDistinctRecommendation(t *testing.T) {
	// Same name as the memory safety finding but a different recommendation,
	// so aggregation treats them as distinct findings.
	boolRule := &unsafeCall{}
	memRule := &memorySafety{}
	content := "unsafe { core::ptr::read(p) }"

	bv, err := boolRule.Check(content)
	require.NoError(t, err)
	mv, err := memRule.Check(content)
	require.NoError(t, err)

	require.Len(t, bv, 1)
	require.NotEmpty(t, mv)
	assert.Equal(t, bv[0].Name, mv[0].Name)
	assert.NotEqual(t, bv[0].Recommendation, mv[0].Recommendation)
}

func TestGasPatternsLoopStorageRead(t *testing.T) {
	rule := &gasPatterns{}
	vulns, err := rule.Check(`
pub fn total(&self) -> U256 {
    let mut sum = U256::ZERO;
    for i in self.entries.get(0) {
        sum += i;
    }
    sum
}
`)
	require.NoError(t, err)
	assert.Contains(t, names(vulns), "Storage Reads In Loop")
}

func TestTestPatternsCleanModule(t *testing.T) {
	rule := &testPatterns{}
	vulns, err := rule.Check(`
#[cfg(test)]
mod integration {
    use proptest::prelude::*;

    #[test]
    #[should_panic]
    fn rejects_zero() {
        assert!(transfer(0).is_err());
    }
}
`)
	require.NoError(t, err)
	assert.Empty(t, vulns)
}
