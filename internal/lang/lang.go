// Package lang defines the capability surface a source language must
// implement for the comparison core (internal/ted, internal/distill,
// internal/compare, internal/highlight) to operate on it without any of
// those packages knowing the language's grammar.
package lang

import "github.com/oxhq/zograscope/internal/tree"

// Language answers the handful of structural questions the core needs
// while it matches, moves and highlights nodes. Every method is a pure
// predicate over a single node (or a small, fixed set of them); none of
// them may mutate the tree.
type Language interface {
	// IsSatellite reports whether a node carrying this structural tag is
	// incidental decoration (punctuation, whitespace) that must never
	// participate in matching and is skipped by every traversal.
	IsSatellite(stype tree.STYPE) bool

	// IsUnmovable reports whether node can never itself be the subject of
	// a reported move (its position is structurally fixed, e.g. the sole
	// body of an if-statement).
	IsUnmovable(node *tree.Node) bool

	// IsContainer reports whether node is a transparent wrapper whose own
	// identity never matches anything; only its children matter.
	IsContainer(node *tree.Node) bool

	// AlwaysMatches reports whether node is a sentinel structural node
	// (e.g. a translation unit root) that always matches and is never
	// Deleted/Inserted.
	AlwaysMatches(node *tree.Node) bool

	// IsDiffable reports whether node's spelling is worth an intra-token
	// diff when Updated, as opposed to a single opaque replacement.
	IsDiffable(node *tree.Node) bool

	// HasFixedStructure reports whether node's children occupy fixed,
	// semantically distinct slots (e.g. a ternary's condition/then/else)
	// rather than an interchangeable sequence.
	HasFixedStructure(node *tree.Node) bool

	// IsPayloadOfFixed reports whether node is the variable-content slot
	// of a HasFixedStructure parent, as opposed to one of its fixed
	// syntactic markers.
	IsPayloadOfFixed(node *tree.Node) bool

	// HasMoveableItems reports whether node's children form a sequence
	// whose members can be meaningfully reordered (a block of statements,
	// an argument list), making node eligible for move detection.
	HasMoveableItems(node *tree.Node) bool

	// CanBeFlattened reports whether child's finer-grained layer (via
	// Next) should be promoted in place of child when flattening parent
	// at the given level.
	CanBeFlattened(parent, child *tree.Node, level int) bool

	// IsTravellingNode reports whether node belongs to a class whose
	// reported move position should be computed relative to its sibling
	// chain rather than its immediate parent (e.g. a case label that
	// "travels" with the statements following it).
	IsTravellingNode(node *tree.Node) bool

	// CanForceLeafMatch reports whether two leaves with different
	// spellings may still be matched as a pair during terminal-match
	// generation (e.g. two integer literals of the same Type).
	CanForceLeafMatch(x, y *tree.Node) bool
}
