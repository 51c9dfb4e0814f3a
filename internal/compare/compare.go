// Package compare drives the end-to-end subtree comparison pipeline: run
// the structural matcher, detect nodes that moved rather than changed,
// and hand any subtree pair the matcher left ambiguous to internal/ted
// for an exact edit-distance refinement.
package compare

import (
	"fmt"

	"github.com/oxhq/zograscope/internal/distill"
	"github.com/oxhq/zograscope/internal/lang"
	"github.com/oxhq/zograscope/internal/ted"
	"github.com/oxhq/zograscope/internal/tree"
)

// Options controls optional stages of the pipeline.
type Options struct {
	// SkipRefine disables the final tree-edit-distance refinement pass,
	// leaving change-distilling's own verdicts as final. Useful for
	// quick previews or huge files where TED's O(n^2 log n) cost matters.
	SkipRefine bool
}

// Compare distills, move-detects and (unless disabled) refines t1 against
// t2, leaving every node's State, Relative and Moved fields set for
// internal/project and internal/highlight to read. Both trees must share
// the same language implementation.
func Compare(t1, t2 *tree.Tree, opts Options) error {
	l, ok := t1.Lang.(lang.Language)
	if !ok {
		return fmt.Errorf("compare: tree 1 language does not implement lang.Language")
	}
	if _, ok := t2.Lang.(lang.Language); !ok {
		return fmt.Errorf("compare: tree 2 language does not implement lang.Language")
	}

	distill.Distill(t1, t2)

	tree.SetParentLinks(t1.Root, nil)
	tree.SetParentLinks(t2.Root, nil)

	detectMoves(t1.Root, l)
	compareChanged(t1.Root, 0, l)

	if !opts.SkipRefine {
		refine(t1.Root)
	}
	return nil
}

// compareChanged recurses through x looking for nodes whose finer-grained
// layer (Next) was left untouched by distilling because the coarse layer
// already matched: when both x and its relative have an un-flattened,
// non-satellite next layer, that pair is marked Unchanged and the whole
// comparison recurses one layer deeper. Before descending into a matched
// internal pair, it also gives the language a chance to promote a small
// number of grandchildren's Next layers in place of their coarser parents,
// catching a token that the grammar split across two layers on one side
// but not the other.
func compareChanged(x *tree.Node, level int, l lang.Language) {
	for _, c := range x.Children {
		if c.Relative != nil && c.Next != nil && c.Relative.Next != nil &&
			!c.Last && !c.Satellite && !c.Relative.Satellite {
			c.State = tree.Unchanged
			c.Relative.State = tree.Unchanged
			recompare(c.Next, c.Relative.Next, l)
			continue
		}
		if c.Relative != nil && !c.Leaf && !c.Satellite && !c.Relative.Satellite {
			flattenPair(c, c.Relative, l, level+1)
		}
		compareChanged(c, level+1, l)
	}
}

func recompare(x, y *tree.Node, l lang.Language) {
	t1 := tree.New(x, l)
	t2 := tree.New(y, l)
	distill.Distill(t1, t2)
	tree.SetParentLinks(x, x.Parent)
	tree.SetParentLinks(y, y.Parent)
	detectMoves(x, l)
	compareChanged(x, 0, l)
}

// refine walks the tree looking for leaf pairs change-distilling marked
// Updated that themselves carry a finer Next layer (e.g. a string literal
// re-parsed into its escape sequences): those leaves are reset to
// Unchanged and internal/ted.TED is run on their next layer instead,
// producing a more precise verdict than a single opaque leaf rename.
func refine(node *tree.Node) {
	if node.Leaf && node.State == tree.Updated && node.Next != nil && node.Relative != nil && node.Relative.Next != nil {
		node.State = tree.Unchanged
		node.Relative.State = tree.Unchanged
		ted.TED(node.Next, node.Relative.Next)
	}
	for _, c := range node.Children {
		refine(c)
	}
}
