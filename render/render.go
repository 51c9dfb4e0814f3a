// Package render holds the output contracts shared by internal/highlight
// and internal/align: the colored, piece-wise representation of a single
// source line, and the line-level alignment entries a unified diff is
// built from.
package render

import "github.com/oxhq/zograscope/internal/tree"

// ColorGroup is the small, closed palette a terminal or HTML renderer
// maps to concrete colors. Multiple tree.Type values collapse onto the
// same group (see internal/highlight's type-to-group table); State and
// Moved can override a node's own type-derived group entirely.
type ColorGroup uint8

const (
	None ColorGroup = iota
	Deleted
	Inserted
	Updated
	UpdatedSurroundings
	Moved
	Specifiers
	UserTypes
	Types
	Directives
	Comments
	Functions
	Keywords
	Brackets
	Operators
	Constants
	Other
)

// Piece is one colored run of text within a line, optionally traceable
// back to the node that produced it (nil for synthetic filler such as
// inter-token whitespace).
type Piece struct {
	Text  string
	Color ColorGroup
	Node  *tree.Node
}

// ColorCane is an ordered sequence of Pieces making up one rendered line
// (or partial line, when a Print call stops mid-token and is resumed by
// the next one).
type ColorCane struct {
	Pieces []Piece
}

// Append adds a piece, coalescing it into the previous piece when both
// share a color and node (the common case of adjacent filler runs).
func (c *ColorCane) Append(text string, node *tree.Node, color ColorGroup) {
	if text == "" {
		return
	}
	if n := len(c.Pieces); n > 0 {
		last := &c.Pieces[n-1]
		if last.Color == color && last.Node == node {
			last.Text += text
			return
		}
	}
	c.Pieces = append(c.Pieces, Piece{Text: text, Color: color, Node: node})
}

// String concatenates the cane's text, discarding color information.
func (c ColorCane) String() string {
	s := ""
	for _, p := range c.Pieces {
		s += p.Text
	}
	return s
}

// Line is one line of a projected token stream: its 1-based source line
// number and the text it contains, used both as input to internal/align
// (whole-line comparison) and to correlate a DiffLine back to source.
type Line struct {
	Number int
	Text   string
}

// DiffKind classifies one entry of an aligned two-file diff.
type DiffKind uint8

const (
	Identical DiffKind = iota
	Different
	Left
	Right
	Fold
)

// DiffLine is one entry of internal/align's output: either a pair of
// lines (Identical/Different), a one-sided line (Left/Right), or a
// collapsed run of FoldCount identical lines elided from the output.
type DiffLine struct {
	Kind      DiffKind
	Left      Line
	Right     Line
	FoldCount int
}
