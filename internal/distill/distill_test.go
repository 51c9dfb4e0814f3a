package distill

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/zograscope/internal/tree"
)

// stubLang is a minimal lang.Language for exercising the distiller
// without pulling in a real tree-sitter grammar.
type stubLang struct{}

func (stubLang) IsSatellite(tree.STYPE) bool               { return false }
func (stubLang) IsUnmovable(*tree.Node) bool                { return false }
func (stubLang) IsContainer(*tree.Node) bool                { return false }
func (stubLang) AlwaysMatches(n *tree.Node) bool            { return n.SType == "root" }
func (stubLang) IsDiffable(*tree.Node) bool                 { return true }
func (stubLang) HasFixedStructure(*tree.Node) bool          { return false }
func (stubLang) IsPayloadOfFixed(*tree.Node) bool           { return false }
func (stubLang) HasMoveableItems(*tree.Node) bool           { return true }
func (stubLang) CanBeFlattened(_, _ *tree.Node, _ int) bool { return false }
func (stubLang) IsTravellingNode(*tree.Node) bool           { return false }
func (stubLang) CanForceLeafMatch(_, _ *tree.Node) bool     { return false }

func leaf(label string, typ tree.Type) *tree.Node {
	return tree.NewLeaf(label, label, 1, 1, typ, "")
}

func TestDistillMatchesIdenticalTrees(t *testing.T) {
	build := func() *tree.Node {
		return tree.NewInternal("root", tree.Other, "root",
			leaf("foo", tree.Identifiers),
			leaf("=", tree.Assignments),
			leaf("42", tree.IntConstants),
		)
	}
	x, y := build(), build()
	t1 := tree.New(x, stubLang{})
	t2 := tree.New(y, stubLang{})

	Distill(t1, t2)

	require.Equal(t, y, x.Relative)
	require.Equal(t, tree.Unchanged, x.State)
	for i := range x.Children {
		require.NotNil(t, x.Children[i].Relative, "child %d", i)
		require.Equal(t, tree.Unchanged, x.Children[i].State)
	}
}

func TestDistillMarksUnmatchedAsDeletedOrInserted(t *testing.T) {
	x := tree.NewInternal("root", tree.Other, "root",
		leaf("foo", tree.Identifiers),
	)
	y := tree.NewInternal("root", tree.Other, "root",
		leaf("bar", tree.Identifiers),
		leaf("baz", tree.Identifiers),
	)
	t1 := tree.New(x, stubLang{})
	t2 := tree.New(y, stubLang{})

	Distill(t1, t2)

	require.Equal(t, y, x.Relative)
	unmatchedY := 0
	for _, c := range y.Children {
		if c.Relative == nil {
			require.Equal(t, tree.Inserted, c.State)
			unmatchedY++
		}
	}
	require.Equal(t, 1, unmatchedY)
}
