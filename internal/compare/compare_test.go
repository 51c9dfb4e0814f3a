package compare

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/zograscope/internal/tree"
)

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

func TestCompareIdenticalTreesAllUnchanged(t *testing.T) {
	build := func() *tree.Node {
		return tree.NewInternal("root", tree.Other, "root",
			leaf("foo", tree.Identifiers),
			leaf("bar", tree.Identifiers),
		)
	}
	x, y := build(), build()
	t1 := tree.New(x, stubLang{})
	t2 := tree.New(y, stubLang{})

	err := Compare(t1, t2, Options{})
	require.NoError(t, err)
	require.Equal(t, tree.Unchanged, x.State)
	require.False(t, x.Moved)
}

func TestCompareReorderedChildrenDetectedAsMoved(t *testing.T) {
	x := tree.NewInternal("root", tree.Other, "root",
		leaf("a", tree.Identifiers),
		leaf("b", tree.Identifiers),
	)
	y := tree.NewInternal("root", tree.Other, "root",
		leaf("b", tree.Identifiers),
		leaf("a", tree.Identifiers),
	)
	t1 := tree.New(x, stubLang{})
	t2 := tree.New(y, stubLang{})

	err := Compare(t1, t2, Options{})
	require.NoError(t, err)

	moved := 0
	for _, c := range x.Children {
		if c.Moved {
			moved++
		}
	}
	require.Equal(t, 1, moved)
}
