package project

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/zograscope/internal/tree"
)

func leafAt(label string, line, col int) *tree.Node {
	return tree.NewLeaf(label, label, line, col, tree.Identifiers, "")
}

func TestProjectReassemblesLinesInOrder(t *testing.T) {
	root := tree.NewInternal("block", tree.Other, "block",
		leafAt("foo", 1, 1),
		leafAt("bar", 2, 1),
	)
	lines := Project(root)
	require.Len(t, lines, 2)
	require.Equal(t, "foo", lines[0].Text)
	require.Equal(t, "bar", lines[1].Text)
}

func TestProjectMarksModifiedLines(t *testing.T) {
	changed := leafAt("bar", 2, 1)
	changed.State = tree.Updated
	root := tree.NewInternal("block", tree.Other, "block",
		leafAt("foo", 1, 1),
		changed,
	)
	lines := Project(root)
	require.False(t, lines[0].Modified)
	require.True(t, lines[1].Modified)
}
