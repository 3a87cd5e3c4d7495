package contract

import (
	"errors"
	"regexp"
	"strings"
)

// Solidity-like grammar. Declarations are recognized by regex and function
// bodies serialized by brace matching, the same lightweight treatment the
// heuristic rules need; this is not a full language front end.
var (
	reSolMarker = regexp.MustCompile(`(?m)^\s*(pragma\s+solidity|contract\s+\w+|abstract\s+contract\s+\w+|interface\s+\w+|library\s+\w+)`)
	reSolFunc   = regexp.MustCompile(`function\s+(\w+)\s*\(([^)]*)\)([^{;]*)`)
	reSolVis    = regexp.MustCompile(`\b(public|external|internal|private)\b`)
	reSolRet    = regexp.MustCompile(`returns\s*\(([^)]*)\)`)
	reSolStruct = regexp.MustCompile(`struct\s+(\w+)\s*\{`)
)

var errNotSolidity = errors.New("no solidity declaration found")

func parseSolidity(source string) (*ParsedContract, error) {
	if !reSolMarker.MatchString(source) {
		return nil, errNotSolidity
	}
	pc := &ParsedContract{Dialect: DialectSolidity, RawSource: source}

	for _, m := range reSolFunc.FindAllStringSubmatchIndex(source, -1) {
		name := source[m[2]:m[3]]
		tail := source[m[6]:m[7]]
		// The grammar does not force a visibility keyword; default to public.
		vis := VisibilityPublic
		if v := reSolVis.FindString(tail); v != "" {
			vis = Visibility(v)
		}
		var ret string
		if rm := reSolRet.FindStringSubmatch(tail); rm != nil {
			ret = strings.TrimSpace(rm[1])
		}
		pc.Functions = append(pc.Functions, Function{
			Name:       name,
			Visibility: vis,
			Params:     parseSolidityParams(source[m[4]:m[5]]),
			Returns:    ret,
			Body:       blockAt(source, m[1]),
		})
	}

	for _, m := range reSolStruct.FindAllStringSubmatchIndex(source, -1) {
		pc.Structures = append(pc.Structures, Structure{
			Name:   source[m[2]:m[3]],
			Fields: parseSolidityFields(blockAt(source, m[1]-1)),
		})
	}
	return pc, nil
}

// parseSolidityParams splits "uint256 amount, address to" into typed
// descriptors. Data-location keywords between type and name are skipped.
func parseSolidityParams(list string) []Param {
	var out []Param
	for _, raw := range strings.Split(list, ",") {
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		p := Param{Type: fields[0]}
		if len(fields) > 1 {
			p.Name = fields[len(fields)-1]
		}
		out = append(out, p)
	}
	return out
}

func parseSolidityFields(body string) []Field {
	var out []Field
	for _, raw := range strings.Split(body, ";") {
		fields := strings.Fields(raw)
		if len(fields) < 2 {
			continue
		}
		out = append(out, Field{Name: fields[len(fields)-1], Type: fields[0]})
	}
	return out
}
