package distill

import "github.com/oxhq/zograscope/internal/tree"

// candidate is a proposed leaf pairing awaiting confirmation. termsMatch
// is not stored here: round 2's sort recomputes it lazily (see
// sortCandidates) since its value depends on parent Relative links that
// keep changing as distilling proceeds.
type candidate struct {
	x, y         *tree.Node
	sim          float64
	tokenOverlap int
}

// canMatch gates which leaf pairs are even worth rating: same Type after
// canonicalization (UserTypes folds into Types), and neither already
// claimed by an earlier, stronger candidate.
func canMatch(x, y *tree.Node) bool {
	if x.Relative != nil || y.Relative != nil {
		return false
	}
	return tree.Canonicalize(x.Type) == tree.Canonicalize(y.Type)
}

// generateTerminalMatches proposes a candidate for every leaf pair that
// canMatch allows and whose label similarity clears 0.6, or whose
// language explicitly forces the pairing despite a weak label match
// (e.g. two integer literals of the same kind). The terminal-context
// rating is not computed here: it depends on parent Relative links that
// don't exist yet on round 1, and is computed lazily by sortCandidates
// instead.
func (s *session) generateTerminalMatches() []*candidate {
	var out []*candidate
	for _, x := range s.x {
		if !x.Leaf || x.Satellite {
			continue
		}
		for _, y := range s.y {
			if !y.Leaf || y.Satellite {
				continue
			}
			if !canMatch(x, y) {
				continue
			}
			sim := s.labelSimilarity(x, y)
			if sim < 0.6 && !s.lang.CanForceLeafMatch(x, y) {
				continue
			}
			out = append(out, &candidate{
				x:            x,
				y:            y,
				sim:          sim,
				tokenOverlap: s.rateOverlap(x, y, overlapToken),
			})
		}
	}
	return out
}

// applyTerminalMatches walks candidates in priority order and commits the
// first still-available pairing for each node, linking Relative both ways
// and marking Unchanged (exact spelling) or Updated.
func (s *session) applyTerminalMatches(candidates []*candidate) {
	for _, c := range candidates {
		if c.x.Relative != nil || c.y.Relative != nil {
			continue
		}
		s.match(c.x, c.y, stateFor(c.x, c.y))
	}
}

func stateFor(x, y *tree.Node) tree.State {
	if x.Label == y.Label {
		return tree.Unchanged
	}
	return tree.Updated
}

// match links x and y as relatives with the given state and propagates
// that state to their immediate satellite children (markNode). It does
// not pair up x's and y's satellite children with each other.
func (s *session) match(x, y *tree.Node, state tree.State) {
	x.Relative = y
	y.Relative = x
	x.State = state
	y.State = state
	s.markNode(x, y, state)
}

// markNode propagates a just-applied match's state down to immediate
// satellite children on both sides (those with an empty SType, without a
// Relative, or under a parent that has a value node): an Updated parent
// leaves them Unchanged, and any other state is copied onto them.
func (s *session) markNode(x, y *tree.Node, state tree.State) {
	leafState := state
	if state == tree.Updated {
		leafState = tree.Unchanged
	}
	for _, c := range x.Children {
		if !c.Satellite {
			continue
		}
		if c.SType == "" || x.HasValue() || c.Relative == nil {
			c.State = leafState
		}
	}
	for _, c := range y.Children {
		if !c.Satellite {
			continue
		}
		if c.SType == "" || y.HasValue() || c.Relative == nil {
			c.State = leafState
		}
	}
}

// overlapMode selects what rateOverlap treats as "the same" when
// comparing a neighbor pair: their already-established Relative link
// (Relation, meaningful only once matching is underway) or their raw
// spelling (Token, the only option available before any matching has
// happened at all).
type overlapMode int

const (
	overlapToken overlapMode = iota
	overlapRelation
)

func isAnOverlap(x, y *tree.Node, mode overlapMode) bool {
	if mode == overlapRelation {
		return x.Relative == y
	}
	return x.Label == y.Label
}

// rateOverlap counts how many of the up-to-3 nodes immediately before and
// after x and y in their respective post-order sequences overlap under
// mode, weighting closer neighbors more heavily and adding a bonus point
// when a right-side neighbor pair sits at the exact same post-order
// offset on both sides. It is only ever used to break near-ties between
// otherwise equally similar candidates.
func (s *session) rateOverlap(x, y *tree.Node, mode overlapMode) int {
	const span = 3
	overlap := 0

	maxLeft := min(x.PoID, y.PoID, span)
	for i := 1; i <= maxLeft; i++ {
		xi, yi := x.PoID-i, y.PoID-i
		if isAnOverlap(s.x[xi], s.y[yi], mode) {
			overlap += maxLeft - i + 1
		}
	}

	maxRight := min(len(s.x)-1-x.PoID, len(s.y)-1-y.PoID, span)
	for i := 1; i <= maxRight; i++ {
		xi, yi := x.PoID+i, y.PoID+i
		if isAnOverlap(s.x[xi], s.y[yi], mode) {
			bonus := 0
			if xi == yi {
				bonus = 1
			}
			overlap += maxRight - i + 1 + bonus
		}
	}

	return overlap
}

// rateTerminalsMatch scores how well x and y's surrounding context already
// agrees: 4+ (plus a Relation-mode overlap bonus) if their effective
// parents are already matched to each other, 3 if their parents' value
// nodes already match, 0 if their parents are matched to someone else, 1
// if both are parentless, 2 otherwise.
func (s *session) rateTerminalsMatch(x, y *tree.Node) int {
	xParent := s.getParent(x)
	yParent := s.getParent(y)

	if xParent != nil && xParent.Relative != nil && xParent.Relative == yParent {
		return 4 + s.rateOverlap(x, y, overlapRelation)
	}

	if xParent.HasValue() && yParent.HasValue() && xParent.GetValue().Relative == yParent.GetValue() {
		return 3
	}

	var xParentRelative *tree.Node
	if xParent != nil {
		xParentRelative = xParent.Relative
	}
	if xParentRelative != yParent {
		return 0
	}
	if yParent == nil {
		if xParent == nil {
			return 1
		}
		return 0
	}
	return 2
}
