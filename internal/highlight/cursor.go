package highlight

import (
	"fmt"
	"strings"

	"github.com/oxhq/zograscope/internal/lang"
	"github.com/oxhq/zograscope/internal/tokendiff"
	"github.com/oxhq/zograscope/internal/tree"
	"github.com/oxhq/zograscope/render"
)

// Range is an inclusive 1-based line range. To == 0 means "through the
// end of the tree".
type Range struct {
	From, To int
}

func (r Range) contains(line int) bool {
	if line < r.From {
		return false
	}
	return r.To == 0 || line <= r.To
}

// RefIDs assigns a stable, monotonically increasing id to each Updated
// pair the first time either side of it is printed with references
// enabled, so a left-tree Cursor and its paired right-tree Cursor can be
// built to share the same numbering by passing the same *RefIDs to both.
type RefIDs struct {
	ids  map[*tree.Node]int
	next int
}

// NewRefIDs creates an empty, ready-to-use id table.
func NewRefIDs() *RefIDs { return &RefIDs{ids: make(map[*tree.Node]int)} }

func (r *RefIDs) idFor(canonical *tree.Node) int {
	if id, ok := r.ids[canonical]; ok {
		return id
	}
	r.next++
	r.ids[canonical] = r.next
	return r.next
}

// Options configures a Cursor's rendering.
type Options struct {
	// Original marks this cursor as walking the "left" tree of a
	// comparison; an Updated leaf's diff is then rendered from that
	// tree's point of view (deletions visible, insertions suppressed).
	// A cursor over the "right" tree should set this false.
	Original bool
	// PrintReferences wraps each Updated pair in a "{id}" marker so a
	// side-by-side renderer can visually tie a left change to its right
	// counterpart.
	PrintReferences bool
	// PrintBrackets wraps identifier/type/function-name renames in
	// "[...]" brackets in addition to the inner word/char diff.
	PrintBrackets bool
	// RefIDs supplies the shared numbering PrintReferences uses; if nil
	// and PrintReferences is set, a private one is allocated (so ids
	// will not match a sibling cursor over the other tree).
	RefIDs *RefIDs
}

// Cursor is a resumable walk over one tree's leaves in source order,
// producing one render.ColorCane per source line. It exists so a caller
// rendering a large file can skip straight to a visible window instead
// of paying for the whole file up front.
type Cursor struct {
	lang   lang.Language
	opts   Options
	leaves []*tree.Node
	pos    int
}

// NewCursor builds a cursor over root's leaves (following each node's
// finer Next layer where present).
func NewCursor(root *tree.Node, language lang.Language, opts Options) *Cursor {
	if opts.PrintReferences && opts.RefIDs == nil {
		opts.RefIDs = NewRefIDs()
	}
	return &Cursor{
		lang:   language,
		opts:   opts,
		leaves: flattenLeaves(root),
	}
}

func flattenLeaves(node *tree.Node) []*tree.Node {
	if node.Next != nil {
		return flattenLeaves(node.Next)
	}
	if node.Leaf {
		return []*tree.Node{node}
	}
	var out []*tree.Node
	for _, c := range node.Children {
		out = append(out, flattenLeaves(c)...)
	}
	return out
}

// SkipUntil advances the cursor to the first leaf at or after line,
// without producing any output.
func (c *Cursor) SkipUntil(line int) {
	for c.pos < len(c.leaves) && c.leaves[c.pos].Line < line {
		c.pos++
	}
}

// Print renders every line from the cursor's current position through
// the end of rng, advancing the cursor past what it emitted.
func (c *Cursor) Print(rng Range) []render.ColorCane {
	var out []render.ColorCane
	var cur *render.ColorCane
	curLine := -1
	col := 1
	prevColor := render.None
	prevWasLeaf := false
	prevMoved := false

	flushLine := func() {
		if cur != nil {
			out = append(out, *cur)
		}
		cur = nil
		col = 1
		prevColor = render.None
		prevWasLeaf = false
	}

	for c.pos < len(c.leaves) {
		node := c.leaves[c.pos]
		if node.Line < rng.From {
			c.pos++
			continue
		}
		if !rng.contains(node.Line) {
			break
		}
		if node.Line != curLine {
			flushLine()
			curLine = node.Line
			cur = &render.ColorCane{}
			col = 1
		}

		if node.Col > col {
			fill := render.None
			if prevWasLeaf && prevMoved && node.Moved {
				fill = prevColor
			}
			cur.Append(strings.Repeat(" ", node.Col-col), nil, fill)
		}

		c.appendLeaf(cur, node)

		lines := strings.Split(node.Spelling, "\n")
		if len(lines) > 1 {
			curLine += len(lines) - 1
			col = len(lines[len(lines)-1]) + 1
		} else {
			col = node.Col + len(node.Spelling)
		}

		prevColor = colorFor(node, node.Moved, node.State, c.lang)
		prevWasLeaf = true
		prevMoved = node.Moved
		c.pos++
	}
	flushLine()
	return out
}

// appendLeaf renders one leaf into cc: an intra-token diff when Updated
// and diffable, a single opaque piece otherwise.
func (c *Cursor) appendLeaf(cc *render.ColorCane, node *tree.Node) {
	if !isDiffable(node, c.lang) {
		cc.Append(node.Spelling, node, colorFor(node, node.Moved, node.State, c.lang))
		return
	}

	surround := node.Type == tree.Functions || node.Type == tree.Identifiers || node.Type == tree.UserTypes
	var l, r string
	if c.opts.Original {
		l, r = node.Spelling, node.Relative.Spelling
	} else {
		l, r = node.Relative.Spelling, node.Spelling
	}

	diff := tokendiff.DiffSpelling(c.opts.Original, l, r, tokendiff.SpellingDiff{
		Moved:         node.Moved,
		Surround:      surround,
		PrintBrackets: c.opts.PrintBrackets,
	})

	if c.opts.PrintReferences && c.opts.RefIDs != nil {
		canonical := node
		if !c.opts.Original {
			canonical = node.Relative
		}
		id := c.opts.RefIDs.idFor(canonical)
		cc.Append(fmt.Sprintf("{%d}", id), node, render.UpdatedSurroundings)
	}
	cc.Pieces = append(cc.Pieces, diff.Pieces...)
}
