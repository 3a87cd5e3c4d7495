package contract

// Dialect identifies which grammar produced the IR. Exactly one dialect is
// selected per contract; a source is never partially built from two grammars.
type Dialect string

const (
	DialectSolidity Dialect = "solidity"
	DialectRust     Dialect = "rust"
)

type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityExternal Visibility = "external"
	VisibilityInternal Visibility = "internal"
	VisibilityPrivate  Visibility = "private"
)

type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Function is a structural summary of one declared function. Body holds the
// serialized source of the function block; it is only ever substring-matched,
// never re-parsed or executed.
type Function struct {
	Name       string     `json:"name"`
	Visibility Visibility `json:"visibility"`
	Params     []Param    `json:"params"`
	Returns    string     `json:"returns,omitempty"`
	Body       string     `json:"body"`
}

type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Structure struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// ParsedContract is the dialect-neutral IR. Immutable after construction;
// rules share it by reference without synchronization.
type ParsedContract struct {
	Dialect    Dialect     `json:"dialect"`
	Functions  []Function  `json:"functions"`
	Structures []Structure `json:"structures"`
	RawSource  string      `json:"rawSource"`
}
