package tokendiff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/zograscope/render"
)

func TestSESIdenticalSequences(t *testing.T) {
	a := []string{"a", "b", "c"}
	edits := SES(len(a), len(a), func(i, j int) bool { return a[i] == a[j] })
	for _, e := range edits {
		require.Equal(t, Common, e.Op)
	}
}

func TestSESDetectsInsertAndDelete(t *testing.T) {
	left := []string{"a", "b", "c"}
	right := []string{"a", "x", "c"}
	edits := SES(len(left), len(right), func(i, j int) bool { return left[i] == right[j] })

	var ops []Op
	for _, e := range edits {
		ops = append(ops, e.Op)
	}
	require.Contains(t, ops, Delete)
	require.Contains(t, ops, Insert)
}

func TestToWordsSkipsWhitespaceSplitsPunctuation(t *testing.T) {
	toks := ToWords("foo(bar, 1)")
	var texts []string
	for _, tok := range toks {
		texts = append(texts, tok.Text)
	}
	require.Equal(t, []string{"foo", "(", "bar", ",", "1", ")"}, texts)
}

func TestToCharsOneRunePerToken(t *testing.T) {
	toks := ToChars("ab")
	require.Len(t, toks, 2)
	require.Equal(t, "a", toks[0].Text)
	require.Equal(t, "b", toks[1].Text)
}

func TestDiffSpellingTrailingFillerHasCorrectLength(t *testing.T) {
	cc := DiffSpelling(true, "foo(bar) ", "foo(baz) ", SpellingDiff{})
	require.Equal(t, "foo(bar) ", cc.String())
	for _, p := range cc.Pieces {
		require.GreaterOrEqual(t, len(p.Text), 0)
	}
}

func TestDiffSpellingBelowSimilarityThresholdReplacesWhole(t *testing.T) {
	cc := DiffSpelling(true, "foo", "completely_different_token_shape", SpellingDiff{})
	require.Len(t, cc.Pieces, 1)
	require.Equal(t, render.Updated, cc.Pieces[0].Color)
	require.Equal(t, "foo", cc.Pieces[0].Text)
}

func TestDiffSpellingSurroundSingleWordRetokenizesToChars(t *testing.T) {
	cc := DiffSpelling(true, "oldVarName", "newVarName", SpellingDiff{Surround: true, PrintBrackets: true})
	require.Equal(t, "[oldVarName]", cc.String())
}
