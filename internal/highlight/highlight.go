// Package highlight projects a compared tree's leaves into colored,
// line-oriented output: every leaf's lexical category maps to a small
// closed color palette, a moved node is colored regardless of its
// category, and an Updated leaf with a finer-grained diffable spelling
// gets its change highlighted word-by-word (or char-by-char for a single-
// word rename) instead of being painted as one opaque replacement.
package highlight

import (
	"github.com/oxhq/zograscope/internal/lang"
	"github.com/oxhq/zograscope/internal/tree"
	"github.com/oxhq/zograscope/render"
)

// HighlightLines is the one-shot convenience entry point: it builds a
// Cursor over root, skips to rng.From and renders through rng.To. Callers
// that need to stream a large file incrementally should build a Cursor
// directly instead.
func HighlightLines(root *tree.Node, language lang.Language, rng Range, opts Options) []render.ColorCane {
	c := NewCursor(root, language, opts)
	c.SkipUntil(rng.From)
	return c.Print(rng)
}
