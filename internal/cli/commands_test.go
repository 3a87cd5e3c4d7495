package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/stylusaudit/internal/model"
)

const auditedSource = `use stylus_sdk::prelude::*;

pub struct Bridge {
    queue: StorageVec<Vec<u8>>,
}

impl Bridge {
    pub fn bridge_out(&mut self, payload: Vec<u8>) {
        unsafe { self.raw_push(payload); }
    }
}
`

func newTestRoot() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	root := &cobra.Command{Use: "stylusaudit"}
	AddCommands(root)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	return root, &out, &errOut
}

func writeContract(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "bridge.rs")
	require.NoError(t, os.WriteFile(path, []byte(auditedSource), 0o644))
	return path
}

func TestAuditCommandJSONOutput(t *testing.T) {
	root, out, _ := newTestRoot()
	root.SetArgs([]string{"audit", writeContract(t), "--format", "json"})
	require.NoError(t, root.Execute())

	var rep model.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.NotEmpty(t, rep.Critical)
	assert.Greater(t, rep.RiskScore, 0.0)
	assert.NotEmpty(t, rep.ActionItems)
}

func TestAuditCommandTableOutput(t *testing.T) {
	root, out, _ := newTestRoot()
	path := writeContract(t)
	root.SetArgs([]string{"audit", path})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Audit Report: "+path)
	assert.Contains(t, out.String(), "Risk Score:")
}

func TestAuditCommandFailOn(t *testing.T) {
	root, _, _ := newTestRoot()
	root.SetArgs([]string{"audit", writeContract(t), "--fail-on", "critical"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fail-on threshold met")
}

func TestAuditCommandUnparseableSource(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "readme.txt")
	require.NoError(t, os.WriteFile(path, []byte("nothing here resembles a program"), 0o644))

	root, _, _ := newTestRoot()
	root.SetArgs([]string{"audit", path})
	require.Error(t, root.Execute())
}

func TestAuditCommandWriteAndUseBaseline(t *testing.T) {
	contractPath := writeContract(t)
	baselinePath := filepath.Join(t.TempDir(), "baseline.json")

	root, _, _ := newTestRoot()
	root.SetArgs([]string{"audit", contractPath, "--write-baseline", baselinePath})
	require.NoError(t, root.Execute())

	root, out, _ := newTestRoot()
	root.SetArgs([]string{"audit", contractPath, "--baseline", baselinePath, "--format", "json"})
	require.NoError(t, root.Execute())

	var rep model.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Empty(t, rep.All())
	assert.Zero(t, rep.RiskScore)
}

func TestRulesListCommand(t *testing.T) {
	root, out, _ := newTestRoot()
	root.SetArgs([]string{"rules", "list"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Weighted Pattern Detector")
	assert.Contains(t, out.String(), "Reentrancy Pattern Checker")
}

func TestInitCommandWritesConfig(t *testing.T) {
	dir := t.TempDir()
	root, _, _ := newTestRoot()
	root.SetArgs([]string{"init", "--dir", dir})
	require.NoError(t, root.Execute())

	_, err := os.Stat(filepath.Join(dir, ".stylusaudit.json"))
	assert.NoError(t, err)
}
