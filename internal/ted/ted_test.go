package ted

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/zograscope/internal/tree"
)

func leaf(label string, typ tree.Type) *tree.Node {
	return tree.NewLeaf(label, label, 1, 1, typ, "")
}

func TestTEDIdenticalTreesCostZero(t *testing.T) {
	build := func() *tree.Node {
		return tree.NewInternal("block", tree.Other, "block",
			leaf("a", tree.Identifiers),
			leaf("b", tree.Identifiers),
		)
	}
	cost := TED(build(), build())
	require.Equal(t, 0, cost)
}

func TestTEDSingleRenameCostsWren(t *testing.T) {
	t1 := tree.NewInternal("block", tree.Other, "block", leaf("a", tree.Identifiers))
	t2 := tree.NewInternal("block", tree.Other, "block", leaf("b", tree.Identifiers))

	cost := TED(t1, t2)
	require.Equal(t, Wren, cost)
	require.Equal(t, tree.Updated, t1.Children[0].State)
	require.Equal(t, tree.Updated, t2.Children[0].State)
	require.Same(t, t2.Children[0], t1.Children[0].Relative)
}

func TestTEDDeletionAndInsertion(t *testing.T) {
	t1 := tree.NewInternal("block", tree.Other, "block",
		leaf("a", tree.Identifiers),
		leaf("b", tree.Identifiers),
	)
	t2 := tree.NewInternal("block", tree.Other, "block",
		leaf("a", tree.Identifiers),
		leaf("c", tree.Identifiers),
	)

	cost := TED(t1, t2)
	require.Greater(t, cost, 0)
	require.Equal(t, tree.Unchanged, t1.Children[0].State)
	require.NotEqual(t, tree.Deleted, t1.Children[0].State)
}

func TestTEDIncompatibleTypesForceReplace(t *testing.T) {
	t1 := tree.NewInternal("block", tree.Other, "block", leaf("1", tree.IntConstants))
	t2 := tree.NewInternal("block", tree.Other, "block", leaf("x", tree.Identifiers))

	cost := TED(t1, t2)
	require.Equal(t, Wch, cost)
}
