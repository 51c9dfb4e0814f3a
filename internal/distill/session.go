// Package distill implements change-distilling structural matching: it
// pairs nodes across two parsed trees by a mix of leaf-spelling similarity
// and subtree-shape similarity, leaving internal/ted's tree edit distance
// to refine whatever a subtree pair it couldn't confidently resolve.
package distill

import (
	"sort"

	"github.com/oxhq/zograscope/internal/dice"
	"github.com/oxhq/zograscope/internal/lang"
	"github.com/oxhq/zograscope/internal/tree"
)

// session carries the per-call state shared across the distilling passes:
// the two trees' post-order node lists (satellites excluded), a label
// dice.String cache (labels get compared repeatedly across passes), and
// the language capabilities describing both trees (Distill requires both
// sides share a language).
type session struct {
	x, y  []*tree.Node
	dice  map[*tree.Node]*dice.String
	lang  lang.Language
}

func newSession(xRoot, yRoot *tree.Node, language lang.Language) *session {
	s := &session{
		x:    tree.PostOrder(xRoot),
		y:    tree.PostOrder(yRoot),
		dice: make(map[*tree.Node]*dice.String),
		lang: language,
	}
	for _, n := range s.x {
		d := dice.New(n.Label)
		s.dice[n] = &d
	}
	for _, n := range s.y {
		d := dice.New(n.Label)
		s.dice[n] = &d
	}
	return s
}

func (s *session) diceOf(n *tree.Node) *dice.String { return s.dice[n] }

func (s *session) labelSimilarity(x, y *tree.Node) float64 {
	return dice.Similarity(s.diceOf(x), s.diceOf(y))
}

// clear resets every node's match state and relative link, the
// reinitialization step between round 1 and round 2.
func (s *session) clear() {
	for _, n := range s.x {
		n.State = tree.Unchanged
		n.Relative = nil
	}
	for _, n := range s.y {
		n.State = tree.Unchanged
		n.Relative = nil
	}
}

// Distill pairs up nodes of t1 and t2, assigning Relative and State on
// every node it can confidently match or reject. It runs two rounds: the
// first conservative (value children excluded from partial matching, tie
// broken by raw token overlap), the second more permissive (value
// children included, ties broken by full terminal-context rating) so
// borderline pairs the first round left unmatched get a second chance
// with the benefit of the first round's already-settled matches.
func Distill(t1, t2 *tree.Tree) {
	l, ok := t1.Lang.(lang.Language)
	if !ok {
		return
	}
	s := newSession(t1.Root, t2.Root, l)

	candidates := s.generateTerminalMatches()
	s.sortCandidates(candidates, false)
	s.applyTerminalMatches(candidates)
	s.distillInternal()
	s.matchPartiallyMatchedInternal(true)
	s.matchFirstLevelMatchedInternal()

	s.sortCandidates(candidates, true)
	s.clear()
	s.applyTerminalMatches(candidates)
	s.distillInternal()
	s.matchPartiallyMatchedInternal(false)
	s.matchFirstLevelMatchedInternal()

	s.markUnmatched()
}

// sortCandidates orders match candidates by descending label similarity.
// On the second round (byContext), ties within 0.01 of the leading
// similarity are broken by the richer terminal-context rating instead of
// raw token overlap. That rating is recomputed here, at sort time, rather
// than stored on the candidate: round 1's passes have by now linked up
// plenty of Relative pairs that didn't exist when the candidates were
// first generated, and the whole point of the second round is to let the
// comparator see that freshly-settled state.
func (s *session) sortCandidates(candidates []*candidate, byContext bool) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if byContext && absFloat(a.sim-b.sim) <= 0.01 {
			return s.rateTerminalsMatch(a.x, a.y) > s.rateTerminalsMatch(b.x, b.y)
		}
		if a.sim != b.sim {
			return a.sim > b.sim
		}
		return a.tokenOverlap > b.tokenOverlap
	})
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
