package contract

import (
	"fmt"
)

// ParseError reports source that matched neither supported grammar. It is
// fatal to the whole run; the rule runner never sees unparsed content.
type ParseError struct {
	Label  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("parse contract: %s", e.Reason)
	}
	return fmt.Sprintf("parse %s: %s", e.Label, e.Reason)
}

// Build parses source into the dialect-neutral IR. The Solidity grammar is
// attempted first; on failure the Rust item grammar. Pure function of the
// input: no I/O, no shared state. Callers that want caching wrap it.
func Build(source string) (*ParsedContract, error) {
	return BuildLabeled(source, "")
}

// BuildLabeled is Build with a contract label/path carried into diagnostics.
func BuildLabeled(source, label string) (*ParsedContract, error) {
	pc, err := parseSolidity(source)
	if err != nil {
		pc, err = parseRust(source)
	}
	if err != nil {
		return nil, &ParseError{Label: label, Reason: "source matches neither the Solidity contract grammar nor the Rust item grammar"}
	}
	return pc, nil
}

// blockAt returns the serialized brace-delimited block starting at or after
// from, without the outer braces. Returns the empty string when the
// declaration ends in a semicolon before any block opens.
func blockAt(source string, from int) string {
	open := -1
	for i := from; i < len(source); i++ {
		switch source[i] {
		case '{':
			open = i
		case ';':
			if open < 0 {
				return ""
			}
		}
		if open >= 0 {
			break
		}
	}
	if open < 0 {
		return ""
	}
	depth := 0
	for i := open; i < len(source); i++ {
		switch source[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return source[open+1 : i]
			}
		}
	}
	// unbalanced braces: serialize what is there
	return source[open+1:]
}
