package golang

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/zograscope/internal/tree"
)

func TestParseProducesLeavesWithSpelling(t *testing.T) {
	src := []byte("package main\n\nfunc add(a, b int) int {\n\treturn a + b\n}\n")
	p := NewParser()
	tr, err := p.Parse(context.Background(), src)
	require.NoError(t, err)
	require.NotNil(t, tr.Root)

	var leaves []*tree.Node
	var walk func(*tree.Node)
	walk = func(n *tree.Node) {
		if n.Leaf {
			leaves = append(leaves, n)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tr.Root)
	require.NotEmpty(t, leaves)

	found := false
	for _, l := range leaves {
		if l.Spelling == "add" {
			found = true
			require.Equal(t, tree.Functions, l.Type)
		}
	}
	require.True(t, found)
}

func TestProviderClassifiesBuiltinTypeName(t *testing.T) {
	typ := mapLeafType("identifier", "int", "parameter_declaration")
	require.Equal(t, tree.Types, typ)
}

func TestProviderIsSatelliteForCommaAndSemicolon(t *testing.T) {
	p := Provider{}
	require.True(t, p.IsSatellite(","))
	require.True(t, p.IsSatellite(";"))
	require.False(t, p.IsSatellite("("))
}

func TestProviderAlwaysMatchesSourceFile(t *testing.T) {
	p := Provider{}
	n := tree.NewInternal("source_file", tree.Other, "source_file")
	require.True(t, p.AlwaysMatches(n))
}
