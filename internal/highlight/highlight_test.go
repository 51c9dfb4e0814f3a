package highlight

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/zograscope/internal/tree"
	"github.com/oxhq/zograscope/render"
)

type stubLang struct{}

func (stubLang) IsSatellite(tree.STYPE) bool               { return false }
func (stubLang) IsUnmovable(*tree.Node) bool                { return false }
func (stubLang) IsContainer(*tree.Node) bool                { return false }
func (stubLang) AlwaysMatches(*tree.Node) bool              { return false }
func (stubLang) IsDiffable(*tree.Node) bool                 { return true }
func (stubLang) HasFixedStructure(*tree.Node) bool          { return false }
func (stubLang) IsPayloadOfFixed(*tree.Node) bool           { return false }
func (stubLang) HasMoveableItems(*tree.Node) bool           { return true }
func (stubLang) CanBeFlattened(_, _ *tree.Node, _ int) bool { return false }
func (stubLang) IsTravellingNode(*tree.Node) bool           { return false }
func (stubLang) CanForceLeafMatch(_, _ *tree.Node) bool     { return false }

func TestHighlightLinesPlainIdentifier(t *testing.T) {
	n := tree.NewLeaf("foo", "foo", 1, 1, tree.Identifiers, "")
	canes := HighlightLines(n, stubLang{}, Range{From: 1, To: 1}, Options{Original: true})
	require.Len(t, canes, 1)
	require.Equal(t, "foo", canes[0].String())
}

func TestHighlightLinesUpdatedIdentifierGetsCharDiff(t *testing.T) {
	x := tree.NewLeaf("oldVarName", "oldVarName", 1, 1, tree.Identifiers, "")
	y := tree.NewLeaf("newVarName", "newVarName", 1, 1, tree.Identifiers, "")
	x.Relative, y.Relative = y, x
	x.State, y.State = tree.Updated, tree.Updated

	canes := HighlightLines(x, stubLang{}, Range{From: 1, To: 1}, Options{Original: true, PrintBrackets: true})
	require.Len(t, canes, 1)

	foundDeleted := false
	for _, p := range canes[0].Pieces {
		if p.Color == render.Deleted {
			foundDeleted = true
		}
	}
	require.True(t, foundDeleted)
}

func TestHighlightLinesMovedColorsEntireLeaf(t *testing.T) {
	n := tree.NewLeaf("foo", "foo", 1, 1, tree.Identifiers, "")
	n.Moved = true
	canes := HighlightLines(n, stubLang{}, Range{From: 1, To: 1}, Options{Original: true})
	require.Equal(t, render.Moved, canes[0].Pieces[0].Color)
}
