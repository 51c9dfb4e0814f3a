package tree

// Type is the closed, ordered lexical category enumeration used for rename
// compatibility (internal/ted, internal/distill) and highlighting
// (internal/highlight). Order matters: everything at or after
// NonInterchangeable is mutually incompatible across the boundary, and
// across it too.
type Type uint8

const (
	Virtual Type = iota

	Functions
	UserTypes
	Identifiers
	Jumps
	Specifiers
	Types
	LeftBrackets
	RightBrackets
	Comparisons
	Operators
	LogicalOperators
	Assignments
	Directives
	Comments
	NonInterchangeable
	StrConstants
	IntConstants
	FPConstants
	CharConstants
	Keywords
	Other
)

func (t Type) String() string {
	switch t {
	case Virtual:
		return "Virtual"
	case Functions:
		return "Functions"
	case UserTypes:
		return "UserTypes"
	case Identifiers:
		return "Identifiers"
	case Jumps:
		return "Jumps"
	case Specifiers:
		return "Specifiers"
	case Types:
		return "Types"
	case LeftBrackets:
		return "LeftBrackets"
	case RightBrackets:
		return "RightBrackets"
	case Comparisons:
		return "Comparisons"
	case Operators:
		return "Operators"
	case LogicalOperators:
		return "LogicalOperators"
	case Assignments:
		return "Assignments"
	case Directives:
		return "Directives"
	case Comments:
		return "Comments"
	case NonInterchangeable:
		return "NonInterchangeable"
	case StrConstants:
		return "StrConstants"
	case IntConstants:
		return "IntConstants"
	case FPConstants:
		return "FPConstants"
	case CharConstants:
		return "CharConstants"
	case Keywords:
		return "Keywords"
	case Other:
		return "Other"
	default:
		return "Unknown"
	}
}

// Canonicalize maps UserTypes to Types for match/rename purposes; every
// other type is returned unchanged.
func Canonicalize(t Type) Type {
	if t == UserTypes {
		return Types
	}
	return t
}

// State is a node's match outcome after distilling/TED/move detection.
type State uint8

const (
	Unchanged State = iota
	Deleted
	Inserted
	Updated
)

func (s State) String() string {
	switch s {
	case Unchanged:
		return "Unchanged"
	case Deleted:
		return "Deleted"
	case Inserted:
		return "Inserted"
	case Updated:
		return "Updated"
	default:
		return "Unknown"
	}
}
