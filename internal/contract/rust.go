package contract

import (
	"errors"
	"regexp"
	"strings"
)

// Rust-like grammar: a general-purpose item scan over fn and struct
// declarations, including items nested inside impl blocks.
var (
	reRustFunc   = regexp.MustCompile(`(?m)^\s*(pub(?:\([^)]*\))?\s+)?fn\s+(\w+)\s*\(([^)]*)\)\s*(?:->\s*([^{;]+))?`)
	reRustStruct = regexp.MustCompile(`(?m)^\s*(?:pub(?:\([^)]*\))?\s+)?struct\s+(\w+)\s*\{`)
)

var errNotRust = errors.New("no rust items found")

func parseRust(source string) (*ParsedContract, error) {
	fns := reRustFunc.FindAllStringSubmatchIndex(source, -1)
	sts := reRustStruct.FindAllStringSubmatchIndex(source, -1)
	if len(fns) == 0 && len(sts) == 0 {
		return nil, errNotRust
	}
	pc := &ParsedContract{Dialect: DialectRust, RawSource: source}

	for _, m := range fns {
		vis := VisibilityPrivate
		if m[2] >= 0 {
			vis = VisibilityPublic
		}
		var ret string
		if m[8] >= 0 {
			ret = strings.TrimSpace(source[m[8]:m[9]])
		}
		pc.Functions = append(pc.Functions, Function{
			Name:       source[m[4]:m[5]],
			Visibility: vis,
			Params:     parseRustParams(source[m[6]:m[7]]),
			Returns:    ret,
			Body:       blockAt(source, m[1]),
		})
	}

	for _, m := range sts {
		pc.Structures = append(pc.Structures, Structure{
			Name:   source[m[2]:m[3]],
			Fields: parseRustFields(blockAt(source, m[1]-1)),
		})
	}
	return pc, nil
}

// parseRustParams splits "from: Address, amount: U256" into typed
// descriptors. Receivers (self in any form) are not parameters.
func parseRustParams(list string) []Param {
	var out []Param
	for _, raw := range strings.Split(list, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasSuffix(raw, "self") {
			continue
		}
		name, typ, ok := strings.Cut(raw, ":")
		if !ok {
			continue
		}
		out = append(out, Param{Name: strings.TrimSpace(name), Type: strings.TrimSpace(typ)})
	}
	return out
}

func parseRustFields(body string) []Field {
	var out []Field
	for _, raw := range strings.Split(body, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasPrefix(raw, "#") || strings.HasPrefix(raw, "//") {
			continue
		}
		raw = strings.TrimPrefix(raw, "pub ")
		name, typ, ok := strings.Cut(raw, ":")
		if !ok {
			continue
		}
		out = append(out, Field{Name: strings.TrimSpace(name), Type: strings.TrimSpace(typ)})
	}
	return out
}
