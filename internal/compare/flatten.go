package compare

import (
	"github.com/oxhq/zograscope/internal/lang"
	"github.com/oxhq/zograscope/internal/tree"
)

// flattenPair promotes a matched child's finer Next layer in place of the
// child itself, for every child where the language approves at the given
// level, provided doing so changes between one and four children — a
// small, deliberately narrow window meant to catch "this pair is really
// one token split across two grammar layers" without flattening whole
// subtrees.
func flattenPair(x, y *tree.Node, l lang.Language, level int) bool {
	count := 0
	count += flattenChildren(x, l, level, false)
	count += flattenChildren(y, l, level, false)
	if count <= 0 || count >= 5 {
		return false
	}
	flattenChildren(x, l, level, true)
	flattenChildren(y, l, level, true)
	return true
}

// flattenChildren walks n's children, replacing each c with c.Next where
// l.CanBeFlattened approves, recursing into children that have no Next
// layer of their own. It returns how many replacements it performed (or
// would perform, when apply is false), including those inside recursed
// children.
func flattenChildren(n *tree.Node, l lang.Language, level int, apply bool) int {
	count := 0
	for i, c := range n.Children {
		if c.Satellite || c.Relative == nil {
			continue
		}
		if c.Next == nil {
			count += flattenChildren(c, l, level, apply)
			continue
		}
		if c.Next.Last {
			continue
		}
		if !l.CanBeFlattened(n, c, level) {
			continue
		}
		count++
		if apply {
			n.Children[i] = c.Next
			n.Children[i].Parent = n
		}
	}
	return count
}
