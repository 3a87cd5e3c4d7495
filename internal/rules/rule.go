package rules

import (
	"github.com/xab-mack/stylusaudit/internal/contract"
	"github.com/xab-mack/stylusaudit/internal/model"
)

// Rule inspects raw contract text and reports weaknesses. Implementations
// must be side-effect free over their input: the same content always yields
// the same vulnerabilities.
type Rule interface {
	Name() string
	Check(content string) ([]model.Vulnerability, error)
}

// ContractRule is the IR-aware capability. Rules implementing it receive the
// parsed contract instead of raw text.
type ContractRule interface {
	Name() string
	CheckContract(c *contract.ParsedContract) ([]model.Vulnerability, error)
}
