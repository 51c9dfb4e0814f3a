package dice

import "testing"

import "github.com/stretchr/testify/require"

func TestSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"oldVarName", "x", "", "ab", "hello world"} {
		a := New(s)
		b := New(s)
		require.Equal(t, 1.0, Similarity(&a, &b), "s=%q", s)
	}
}

func TestSimilarityShortStrings(t *testing.T) {
	a := New("a")
	b := New("a")
	require.Equal(t, 1.0, Similarity(&a, &b))

	c := New("a")
	d := New("b")
	require.Equal(t, 0.0, Similarity(&c, &d))

	e := New("a")
	f := New("ab")
	require.Equal(t, 0.0, Similarity(&e, &f))

	g := New("")
	h := New("")
	require.Equal(t, 1.0, Similarity(&g, &h))
}

func TestSimilaritySymmetricAndBounded(t *testing.T) {
	a := New("oldVarName")
	b := New("newVarName")
	s1 := Similarity(&a, &b)
	s2 := Similarity(&b, &a)
	require.Equal(t, s1, s2)
	require.GreaterOrEqual(t, s1, 0.0)
	require.LessOrEqual(t, s1, 1.0)
}

func TestSimilarityCompletelyDifferent(t *testing.T) {
	a := New("cmd_group_begin")
	b := New("un_group_open")
	s := Similarity(&a, &b)
	require.Less(t, s, 0.5)
}

func TestBigramsCached(t *testing.T) {
	a := New("hello")
	first := a.Bigrams()
	second := a.Bigrams()
	require.Equal(t, first, second)
}
