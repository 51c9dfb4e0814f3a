package tree

// Language is the minimal subset of the lang.Language capability the tree
// package itself needs (to decide which descendants of a moved subtree are
// satellites). The full capability interface lives in internal/lang; this
// local alias avoids an import cycle (internal/lang depends on
// internal/tree for Node, not the reverse).
type Language interface {
	IsSatellite(stype STYPE) bool
}

// Tree owns a root Node and a reference to the Language describing that
// tree's source language.
type Tree struct {
	Root *Node
	Lang Language
}

// New wraps root as a Tree for the given language.
func New(root *Node, lang Language) *Tree {
	return &Tree{Root: root, Lang: lang}
}

// MarkTreeAsMoved sets Moved exactly as MarkMoved does: on node, every
// non-satellite descendant, and each of their Relatives in the paired tree
// (marked directly here since Relative crosses trees by reference, not
// ownership).
func (t *Tree) MarkTreeAsMoved(node *Node) {
	MarkMoved(node)
}

// MarkMoved sets Moved on node, every non-satellite descendant, and on
// each of their Relatives (if any) — the shared implementation behind
// Tree.MarkTreeAsMoved, exported so internal/compare's move detector can
// apply it to either side of a pair without needing a *Tree handle.
func MarkMoved(node *Node) {
	node.Moved = true
	if node.Relative != nil {
		node.Relative.Moved = true
	}
	for _, child := range node.Children {
		if child.Satellite {
			continue
		}
		MarkMoved(child)
	}
}

// PostOrder returns root's non-satellite descendants (including root) in
// post-order, assigning Parent and PoID as it goes — the traversal every
// distiller/TED pass is built on. Relative is left untouched; callers that
// need a fresh match (internal/distill) clear it themselves.
func PostOrder(root *Node) []*Node {
	var out []*Node
	root.Parent = nil
	postOrder(root, &out)
	return out
}

func postOrder(node *Node, out *[]*Node) {
	if node.Satellite {
		return
	}
	for _, child := range node.Children {
		child.Parent = node
		postOrder(child, out)
	}
	node.PoID = len(*out)
	*out = append(*out, node)
}

// SetParentLinks rebuilds Parent links over the full tree (including
// satellites), used by internal/compare after flattening changes the
// shape of the tree.
func SetParentLinks(node *Node, parent *Node) {
	node.Parent = parent
	for _, child := range node.Children {
		SetParentLinks(child, node)
	}
}
