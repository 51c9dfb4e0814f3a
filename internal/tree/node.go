package tree

// STYPE is the opaque, language-specific structural tag carried by a node
// (Node.SType). The core never interprets it beyond equality comparison;
// it's handed to Language predicates to interpret.
type STYPE = string

// Node represents either a leaf token or a grammatical construct inside a
// parsed syntax tree. Parent and Relative are non-owning references
// recomputed by traversals, never a second owner of the node (see the
// "cyclic/back references" design note).
type Node struct {
	// Label is the literal spelling at a leaf, or a structural tag at an
	// internal node (e.g. "if_statement").
	Label string
	// Spelling is, for leaves, the text that appears in the source; it may
	// contain embedded newlines.
	Spelling string
	// Line and Col are the 1-based source position of the first character.
	// Leaves always carry real values; internal nodes may be (0, 0).
	Line, Col int

	// Leaf is true iff this node models a terminal token.
	Leaf bool
	// Type is the closed lexical category (Type enumeration).
	Type Type
	// SType is the structural/syntactic category, opaque to the core.
	SType STYPE

	// Children is the ordered sequence of child nodes.
	Children []*Node

	// Next optionally points to an alternative, finer-grained
	// representation of the same source range ("layering" — see Innermost).
	Next *Node
	// Last marks the innermost layer of a layering chain.
	Last bool

	// Satellite marks nodes whose content is incidental and must not
	// participate in matching decisions (whitespace, punctuation carrying
	// no semantic weight).
	Satellite bool

	// valueIdx, if >= 0, is the index into Children designating this
	// node's "value" child, used as a secondary key during structural
	// matching. -1 means this node has no value relation.
	valueIdx int

	// Parent and PoID are transient, recomputed by PostOrder (Parent and
	// PoID, used by internal/distill) and SetParentLinks (Parent only,
	// used by internal/compare).
	Parent *Node
	PoID   int

	// Relative is the paired node in the other tree, or nil.
	Relative *Node
	// State is this node's match outcome; initial Unchanged.
	State State
	// Moved is set by move detection; initial false.
	Moved bool
}

// NewLeaf builds a terminal node.
func NewLeaf(label, spelling string, line, col int, typ Type, stype STYPE) *Node {
	return &Node{
		Label:    label,
		Spelling: spelling,
		Line:     line,
		Col:      col,
		Leaf:     true,
		Type:     typ,
		SType:    stype,
		valueIdx: -1,
	}
}

// NewInternal builds an internal (non-leaf) node.
func NewInternal(label string, typ Type, stype STYPE, children ...*Node) *Node {
	return &Node{
		Label:    label,
		Type:     typ,
		SType:    stype,
		Children: children,
		valueIdx: -1,
	}
}

// SetValue designates child as this node's value node. child must already
// be present in Children.
func (n *Node) SetValue(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.valueIdx = i
			return
		}
	}
}

// HasValue reports whether this node designates one of its children as its
// value node.
func (n *Node) HasValue() bool {
	return n != nil && n.valueIdx >= 0 && n.valueIdx < len(n.Children)
}

// GetValue returns the designated value child, or nil if none.
func (n *Node) GetValue() *Node {
	if !n.HasValue() {
		return nil
	}
	return n.Children[n.valueIdx]
}

// Innermost follows the Next chain to its end and returns that innermost
// layer (n itself when n has no Next).
func (n *Node) Innermost() *Node {
	for n.Next != nil {
		n = n.Next
	}
	return n
}
