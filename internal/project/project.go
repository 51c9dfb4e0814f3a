// Package project flattens a compared tree back into its source lines,
// the line view internal/align aligns, with each line flagged when the
// comparison changed or moved anything on it.
package project

import (
	"strings"

	"github.com/oxhq/zograscope/internal/tree"
)

// Line is one source line reconstructed from a tree's leaves, tagged with
// whether any leaf contributing to it was itself changed or moved.
type Line struct {
	Number   int
	Text     string
	Modified bool
}

// Project walks root's leaves in source order and reassembles them into
// Lines, treating any leaf that is Moved or not Unchanged as tainting
// every line its spelling touches.
func Project(root *tree.Node) []Line {
	p := &projector{currentLine: root.Line}
	p.run(root, false)
	p.flush()
	return p.lines
}

type projector struct {
	lines       []Line
	buffer      strings.Builder
	currentLine int
	modified    bool
	started     bool
}

func (p *projector) run(node *tree.Node, forceChanged bool) {
	forceChanged = forceChanged || node.Moved || node.State != tree.Unchanged

	if node.Next != nil {
		p.run(node.Next, forceChanged)
		return
	}
	if node.Leaf {
		p.emitLeaf(node, forceChanged)
		return
	}
	for _, c := range node.Children {
		p.run(c, forceChanged)
	}
}

func (p *projector) emitLeaf(node *tree.Node, forceChanged bool) {
	if !p.started {
		p.currentLine = node.Line
		p.started = true
	} else if node.Line != p.currentLine && p.buffer.Len() > 0 {
		p.flush()
		p.currentLine = node.Line
	}

	if pad := node.Col - 1 - p.buffer.Len(); pad > 0 {
		p.buffer.WriteString(strings.Repeat(" ", pad))
	}
	p.modified = p.modified || forceChanged

	segments := strings.Split(node.Spelling, "\n")
	for i, seg := range segments {
		if i > 0 {
			p.flush()
			p.currentLine++
			p.modified = forceChanged
		}
		p.buffer.WriteString(seg)
	}
}

func (p *projector) flush() {
	p.lines = append(p.lines, Line{
		Number:   p.currentLine,
		Text:     p.buffer.String(),
		Modified: p.modified,
	})
	p.buffer.Reset()
	p.modified = false
}
