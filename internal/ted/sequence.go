package ted

import "github.com/oxhq/zograscope/internal/tree"

// sequence is a tree flattened into postorder, 1-indexed (index 0 is an
// unused sentinel so postorder ids can double as array indices directly).
// lld[i] is the postorder id of i's leftmost leaf descendant, computed by
// skipping satellite children exactly like internal/tree's own traversals.
type sequence struct {
	nodes    []*tree.Node
	lld      []int
	keyroots []int
}

func buildSequence(root *tree.Node) *sequence {
	s := &sequence{
		nodes: []*tree.Node{nil},
		lld:   []int{0},
	}
	s.visit(root)
	s.keyroots = keyrootsOf(s.lld)
	return s
}

// visit walks node in post order, skipping satellites, and returns its own
// postorder id and leftmost-leaf-descendant id.
func (s *sequence) visit(node *tree.Node) (id, lld int) {
	haveChild := false
	firstLLD := 0
	for _, c := range node.Children {
		if c.Satellite {
			continue
		}
		_, clld := s.visit(c)
		if !haveChild {
			firstLLD = clld
			haveChild = true
		}
	}
	s.nodes = append(s.nodes, node)
	id = len(s.nodes) - 1
	if haveChild {
		lld = firstLLD
	} else {
		lld = id
	}
	s.lld = append(s.lld, lld)
	return id, lld
}

func (s *sequence) size() int { return len(s.nodes) - 1 }

// keyrootsOf returns, in ascending order, every postorder id i such that no
// j > i shares the same leftmost-leaf-descendant id — the set of subtree
// roots a Zhang-Shasha pass must iterate.
func keyrootsOf(lld []int) []int {
	n := len(lld) - 1
	seenLLD := make(map[int]bool, n)
	kr := make([]int, 0, n)
	for i := n; i >= 1; i-- {
		if !seenLLD[lld[i]] {
			kr = append(kr, i)
			seenLLD[lld[i]] = true
		}
	}
	for l, r := 0, len(kr)-1; l < r; l, r = l+1, r-1 {
		kr[l], kr[r] = kr[r], kr[l]
	}
	return kr
}
