// Package dice implements Dice-coefficient string similarity over cached
// bigram sets, the basic building block every other comparison package in
// zograscope leans on when it needs to ask "how similar are these two
// spellings".
package dice

import "sort"

// String pairs a piece of text with its bigram set, computed lazily and
// cached on first use so repeated comparisons (as happen throughout the
// distiller) don't re-tokenize the same label over and over.
type String struct {
	s       string
	bigrams []uint16
	done    bool
}

// New wraps s for similarity comparisons. The bigram set is not computed
// until the first call to Bigrams (which Similarity makes).
func New(s string) String {
	return String{s: s}
}

// Str returns the original string.
func (d String) Str() string {
	return d.s
}

// Bigrams returns the cached, sorted set of unique bigram codes for the
// string, computing it on first call.
func (d *String) Bigrams() []uint16 {
	if d.done {
		return d.bigrams
	}
	d.done = true

	if len(d.s) < 2 {
		return nil
	}

	codes := make([]uint16, 0, len(d.s)-1)
	for i := 0; i+1 < len(d.s); i++ {
		codes = append(codes, uint16(d.s[i])<<8|uint16(d.s[i+1]))
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	codes = dedup(codes)

	d.bigrams = codes
	return d.bigrams
}

func dedup(sorted []uint16) []uint16 {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Similarity computes the Dice coefficient between a and b, always in
// [0, 1]. Strings shorter than two bytes are handled specially: two such
// strings are similar (1.0) iff byte-equal, and a short string can never be
// similar to a longer one.
func Similarity(a, b *String) float64 {
	if len(a.s) < 2 || len(b.s) < 2 {
		if len(a.s) < 2 && len(b.s) < 2 {
			if a.s == b.s {
				return 1.0
			}
			return 0.0
		}
		return 0.0
	}

	ab := a.Bigrams()
	bb := b.Bigrams()

	common := intersectCount(ab, bb)
	return 2 * float64(common) / float64(len(ab)+len(bb))
}

// intersectCount counts the number of matching elements between two sorted
// slices via a sorted-merge walk.
func intersectCount(a, b []uint16) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return n
}
