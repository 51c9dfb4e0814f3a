// Package align computes a whole-file, line-level diff between two
// projected token streams of already-compared trees, folding long runs of
// untouched lines the way a unified diff does.
package align

import (
	"github.com/oxhq/zograscope/internal/dice"
	"github.com/oxhq/zograscope/internal/project"
	"github.com/oxhq/zograscope/internal/tokendiff"
	"github.com/oxhq/zograscope/render"
)

const (
	minFold = 3
	ctxSize = 2
)

// MakeDiff aligns left and right, matching lines whose Dice similarity is
// at least 0.8 and treating anything less similar (or either side's
// Modified flag) as genuinely Different rather than a fuzzy match.
func MakeDiff(left, right []project.Line) []render.DiffLine {
	lDice := make([]dice.String, len(left))
	for i, l := range left {
		lDice[i] = dice.New(l.Text)
	}
	rDice := make([]dice.String, len(right))
	for j, r := range right {
		rDice[j] = dice.New(r.Text)
	}

	edits := tokendiff.SES(len(left), len(right), func(i, j int) bool {
		return dice.Similarity(&lDice[i], &rDice[j]) >= 0.8
	})

	b := &builder{left: left, right: right}
	for _, e := range edits {
		switch e.Op {
		case tokendiff.Delete:
			b.foldIdentical(false)
			b.out = append(b.out, render.DiffLine{Kind: render.Left, Left: toLine(left[e.I])})
		case tokendiff.Insert:
			b.foldIdentical(false)
			b.out = append(b.out, render.DiffLine{Kind: render.Right, Right: toLine(right[e.J])})
		case tokendiff.Common:
			b.handleSame(e.I, e.J)
		}
	}
	b.foldIdentical(true)
	return b.out
}

type builder struct {
	left, right []project.Line
	out         []render.DiffLine
	run         []render.DiffLine
}

func (b *builder) handleSame(i, j int) {
	if b.left[i].Text == b.right[j].Text && !b.left[i].Modified && !b.right[j].Modified {
		b.run = append(b.run, render.DiffLine{Kind: render.Identical, Left: toLine(b.left[i]), Right: toLine(b.right[j])})
		return
	}
	b.foldIdentical(false)
	b.out = append(b.out, render.DiffLine{Kind: render.Different, Left: toLine(b.left[i]), Right: toLine(b.right[j])})
}

// foldIdentical flushes the buffered run of identical lines, collapsing
// its middle into a single Fold entry when the run is long enough to be
// worth eliding: it always keeps ctxSize lines of context at each end of
// the run (0 at an end that's the very start of the output, or the very
// last entry overall), and only folds when what's left in the middle
// still exceeds minFold lines.
func (b *builder) foldIdentical(isLast bool) {
	n := len(b.run)
	if n == 0 {
		return
	}
	startContext := ctxSize
	if len(b.out) == 0 {
		startContext = 0
	}
	endContext := ctxSize
	if isLast {
		endContext = 0
	}
	context := startContext + endContext

	if n >= context && n-context > minFold {
		b.out = append(b.out, b.run[:startContext]...)
		b.out = append(b.out, render.DiffLine{Kind: render.Fold, FoldCount: n - context})
		b.out = append(b.out, b.run[n-endContext:]...)
	} else {
		b.out = append(b.out, b.run...)
	}
	b.run = nil
}

func toLine(l project.Line) render.Line {
	return render.Line{Number: l.Number, Text: l.Text}
}
