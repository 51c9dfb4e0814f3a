package compare

import (
	"github.com/oxhq/zograscope/internal/lang"
	"github.com/oxhq/zograscope/internal/tree"
)

// detectMoves walks the whole tree rooted at root, flagging a node Moved
// whenever it kept its match but changed effective parent, and recursing
// into every node whose children form a moveable sequence to find
// reordered items within an otherwise-unchanged parent.
func detectMoves(root *tree.Node, l lang.Language) {
	var walk func(x *tree.Node)
	walk = func(x *tree.Node) {
		if y := x.Relative; y != nil {
			px := effectiveParent(x, l)
			py := effectiveParent(y, l)
			if px != nil && py != nil && px.Relative != py && !l.IsUnmovable(x) {
				markMoved(x, y, l)
			}
			if len(x.Children) > 0 && l.HasMoveableItems(x) {
				if l.HasFixedStructure(x) {
					detectMovesInFixedStructure(x, y, l)
				} else {
					detectMovesSequence(x, y, l)
				}
			}
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(root)
}

// effectiveParent walks up from x skipping unmovable ancestors, since an
// unmovable wrapper (e.g. the sole then-branch slot of an if) can never
// itself be the site a move is reported against.
func effectiveParent(x *tree.Node, l lang.Language) *tree.Node {
	p := x.Parent
	for p != nil && l.IsUnmovable(p) {
		p = p.Parent
	}
	return p
}

// detectMovesSequence finds children of x that matched into y's children
// but sit outside the longest common (already-matched) subsequence
// between the two child lists, and flags each such outlier Moved.
func detectMovesSequence(x, y *tree.Node, l lang.Language) {
	xc, yc := x.Children, y.Children
	n, m := len(xc), len(yc)
	match := func(i, j int) bool { return xc[i].Relative != nil && xc[i].Relative == yc[j] }

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if match(i, j) {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	keep := make([]bool, n)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case match(i, j):
			keep[i] = true
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			i++
		default:
			j++
		}
	}

	for idx, c := range xc {
		if c.Relative != nil && !keep[idx] {
			markMoved(c, c.Relative, l)
		}
	}
}

// detectMovesInFixedStructure handles a parent whose children occupy
// fixed, semantically distinct slots: the payload children (the
// interchangeable part of an otherwise rigid construct) are checked for
// reordering directly by position, while every other matched child is
// checked via getMovePosOfAux, which counts how many already-matched,
// non-payload siblings precede it on each side.
func detectMovesInFixedStructure(x, y *tree.Node, l lang.Language) {
	var xPayload, yPayload []*tree.Node
	for _, c := range x.Children {
		if l.IsPayloadOfFixed(c) {
			xPayload = append(xPayload, c)
		}
	}
	for _, c := range y.Children {
		if l.IsPayloadOfFixed(c) {
			yPayload = append(yPayload, c)
		}
	}
	if len(xPayload) == len(yPayload) {
		for i, c := range xPayload {
			if c.Relative == nil {
				continue
			}
			if indexOfNode(yPayload, c.Relative) != i {
				markMoved(c, c.Relative, l)
			}
		}
	}

	for _, c := range x.Children {
		if c.Relative == nil || l.IsPayloadOfFixed(c) {
			continue
		}
		if getMovePosOfAux(c, l) != getMovePosOfAux(c.Relative, l) {
			markMoved(c, c.Relative, l)
		}
	}
}

func getMovePosOfAux(node *tree.Node, l lang.Language) int {
	if node.Parent == nil || node.Relative == nil {
		return 0
	}
	count := 0
	for _, sib := range node.Parent.Children {
		if sib == node {
			break
		}
		if sib.Relative == nil || l.IsPayloadOfFixed(sib) || sib.Moved {
			continue
		}
		if sib.Relative.Parent == node.Relative.Parent {
			count++
		}
	}
	return count
}

func indexOfNode(nodes []*tree.Node, n *tree.Node) int {
	for i, c := range nodes {
		if c == n {
			return i
		}
	}
	return -1
}

// markMoved flags x and y as moved, unless they form a "travelling" pair
// — a node whose reported position is meant to be read relative to its
// sibling chain (e.g. a case label travelling with the statements that
// follow it) rather than treated as an independent move.
func markMoved(x, y *tree.Node, l lang.Language) {
	if isTravellingPair(x, y, l) || isTravellingPair(y, x, l) {
		return
	}
	tree.MarkMoved(x)
	tree.MarkMoved(y)
}

// isTravellingPair reports whether x is a travelling node whose
// relative's effective position, found by walking up past x's travelling
// ancestors to the first non-travelling next sibling and then back down
// its leftmost-child chain, lands on y's parent.
func isTravellingPair(x, y *tree.Node, l lang.Language) bool {
	if !l.IsTravellingNode(x) {
		return false
	}

	p := x.Parent
	var landing *tree.Node
	for p != nil && landing == nil {
		landing = firstNonTravellingNextSibling(p, l)
		p = p.Parent
	}
	if landing == nil {
		return false
	}

	n := landing
	for {
		child := leftmostNonSatellite(n)
		if child == nil {
			break
		}
		n = child
	}
	return n.Relative == y.Parent
}

func firstNonTravellingNextSibling(node *tree.Node, l lang.Language) *tree.Node {
	if node.Parent == nil {
		return nil
	}
	siblings := node.Parent.Children
	idx := indexOfNode(siblings, node)
	if idx < 0 {
		return nil
	}
	for i := idx + 1; i < len(siblings); i++ {
		if !l.IsTravellingNode(siblings[i]) {
			return siblings[i]
		}
	}
	return nil
}

func leftmostNonSatellite(n *tree.Node) *tree.Node {
	for _, c := range n.Children {
		if !c.Satellite {
			return c
		}
	}
	return nil
}
