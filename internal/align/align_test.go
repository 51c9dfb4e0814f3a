package align

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/zograscope/internal/project"
	"github.com/oxhq/zograscope/render"
)

func lines(texts ...string) []project.Line {
	out := make([]project.Line, len(texts))
	for i, t := range texts {
		out[i] = project.Line{Number: i + 1, Text: t}
	}
	return out
}

func TestMakeDiffAllIdenticalNoFoldWhenShort(t *testing.T) {
	l := lines("a", "b", "c")
	r := lines("a", "b", "c")
	diff := MakeDiff(l, r)
	for _, d := range diff {
		require.Equal(t, render.Identical, d.Kind)
	}
}

func TestMakeDiffFoldsLongIdenticalRun(t *testing.T) {
	texts := make([]string, 20)
	for i := range texts {
		texts[i] = "same"
	}
	l := lines(texts...)
	r := lines(texts...)
	diff := MakeDiff(l, r)

	foundFold := false
	for _, d := range diff {
		if d.Kind == render.Fold {
			foundFold = true
			require.Greater(t, d.FoldCount, 0)
		}
	}
	require.True(t, foundFold)
}

func TestMakeDiffDetectsAddedLine(t *testing.T) {
	l := lines("a", "b")
	r := lines("a", "x", "b")
	diff := MakeDiff(l, r)

	foundRight := false
	for _, d := range diff {
		if d.Kind == render.Right {
			foundRight = true
		}
	}
	require.True(t, foundRight)
}
