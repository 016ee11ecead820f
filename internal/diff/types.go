package diff

// Mapping is a flat key/value association with unique keys. Values are
// assumed to be simple scalar types (string, int, etc.); nesting is not
// supported and no type conversion is performed.
type Mapping map[string]any

// Action is the single-character instruction code. The codes are the wire
// contract with downstream consumers (e.g. a persistence layer) and must
// not change.
type Action string

// Known instruction actions.
const (
	// ActionKeep retains the original value.
	ActionKeep Action = "k"

	// ActionAdd introduces a new key/value.
	ActionAdd Action = "a"

	// ActionDelete removes a key/value.
	ActionDelete Action = "d"

	// ActionEdit replaces the value for an existing key.
	ActionEdit Action = "e"
)

// Instruction is one atomic edit directive. For Keep and Delete the value
// is the one being retained or removed; for Add and Edit it is the one
// being introduced. Key and Value retain their original types, never
// stringified forms.
type Instruction struct {
	Action Action
	Key    string
	Value  any
}

// Status classifies a key's membership and equality state across the two
// input mappings.
type Status string

// Key statuses.
const (
	// StatusDeleted means the key exists only in A.
	StatusDeleted Status = "Deleted"

	// StatusAdded means the key exists only in B.
	StatusAdded Status = "Added"

	// StatusUnchanged means the key exists in both with equal values.
	StatusUnchanged Status = "Unchanged"

	// StatusDifferent means the key exists in both with unequal values.
	StatusDifferent Status = "Different"
)

// Permissions controls which instruction actions Apply may execute.
// Not all of them make sense to disable, but there are only four actions
// so all four get a flag.
type Permissions struct {
	AllowAdd    bool
	AllowDelete bool
	AllowChange bool
	AllowKeep   bool
}

// DefaultPermissions returns a Permissions with every action allowed.
func DefaultPermissions() Permissions {
	return Permissions{
		AllowAdd:    true,
		AllowDelete: true,
		AllowChange: true,
		AllowKeep:   true,
	}
}

// Layout carries the column geometry for row rendering, computed once per
// pass from both mappings and passed explicitly rather than recomputed
// per row.
type Layout struct {
	// KeyWidth is the length of the longest key across both mappings.
	KeyWidth int

	// ValueWidth is the wrap width for each value column.
	ValueWidth int
}

// Presenter renders session output. Implementations own all formatting;
// the session only decides what to show and when.
type Presenter interface {
	// Title shows the banner for one diff pass.
	Title(text string)

	// Row shows one key with both values side by side and its status label.
	// A nil value means the key is absent on that side.
	Row(layout Layout, key string, left, right any, status Status)

	// Summary shows the accepted instruction batch, one line per
	// instruction, using the verbs Add/Delete/Keep/Change.
	Summary(instructions []Instruction)

	// Notice shows a short interactive message (e.g. unrecognized input).
	Notice(text string)
}

// Prompter collects operator input. AskChoice blocks until a full line is
// entered and returns it with the trailing newline stripped; it does not
// interpret the answer. A read failure (e.g. closed stdin) is returned as
// an error and aborts the session.
type Prompter interface {
	AskChoice(prompt string) (string, error)
}
