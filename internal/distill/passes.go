package distill

import (
	"sort"

	"github.com/oxhq/zograscope/internal/tree"
)

// getParent walks up from node skipping container wrappers (nodes whose
// own identity is transparent, e.g. an expression-statement wrapper) so
// structural matching reasons about the nearest syntactically meaningful
// ancestor.
func (s *session) getParent(node *tree.Node) *tree.Node {
	p := node.Parent
	for p != nil && s.lang.IsContainer(p) {
		p = p.Parent
	}
	return p
}

// childrenSimilarity rates how much of x's and y's leaf sets already
// agree. A leaf counts toward selCommon only if its own (container-
// skipping) parent is either absent or already matched, so a leaf
// whose immediate context is still wholly unsettled doesn't inflate the
// score; leaves hidden inside satellite subtrees (never visited by the
// ordinary post-order leaf walk) are added back in separately via
// countAlreadyMatched, except for subtrees the language itself declares
// satellite. The ratio is taken over the larger
// side, and the acceptance bar is lower (0.4 instead of 0.6) for small
// subtrees, since a handful of shared leaves is much less likely to be
// coincidence in a large subtree than in a tiny one. When the ratio falls
// short, a second, more lenient attempt re-scores after excluding both
// sides' value subtrees entirely, for the case where only the value
// differs but the surrounding shape is otherwise identical.
func (s *session) childrenSimilarity(x, y *tree.Node) float64 {
	haveValues := x.HasValue() && y.HasValue()

	nonValueCommon, selCommon := 0, 0
	for _, yl := range leavesOf(y) {
		if yl.Relative == nil || !isDescendant(x, yl.Relative) {
			continue
		}
		if !haveValues || !isDescendant(y.GetValue(), yl) {
			nonValueCommon++
		}
		if parent := s.getParent(yl); parent == nil || parent.Relative != nil {
			selCommon++
		}
	}

	xLeaves := countLeaves(x)
	yLeaves := countLeaves(y)

	xExtra := s.countAlreadyMatched(x)
	yExtra := s.countAlreadyMatched(y)
	selCommon += min(xExtra, yExtra)
	xLeaves += xExtra
	yLeaves += yExtra

	selMaxLeaves := max(xLeaves, yLeaves)
	if selMaxLeaves == 0 {
		return 1.0
	}
	childrenSim := float64(selCommon) / float64(selMaxLeaves)

	threshold := 0.6
	if min(xLeaves, yLeaves) <= 4 {
		threshold = 0.4
	}
	if childrenSim >= threshold {
		return childrenSim
	}

	if haveValues && x.GetValue().Relative == nil && y.GetValue().Relative == nil {
		xLeaves -= countLeaves(x.GetValue())
		yLeaves -= countLeaves(y.GetValue())
		maxLeaves := max(xLeaves, yLeaves)
		nonValueSim := 1.0
		if maxLeaves != 0 {
			nonValueSim = float64(nonValueCommon) / float64(maxLeaves)
		}
		if nonValueSim >= 0.8 {
			return nonValueSim
		}
	}

	return 0.0
}

// countAlreadyMatched counts the terminal leaves hidden inside node's
// satellite descendants: leaves the ordinary post-order walk (which never
// descends into a satellite) never sees and so never counts toward
// childrenSimilarity's common-leaf ratio on its own. A subtree whose
// SType the language declares satellite (IsSatellite) counts as zero.
func (s *session) countAlreadyMatched(node *tree.Node) int {
	if node.Satellite {
		return s.countAlreadyMatchedLeaves(node)
	}
	count := 0
	for _, c := range node.Children {
		count += s.countAlreadyMatched(c)
	}
	return count
}

func (s *session) countAlreadyMatchedLeaves(node *tree.Node) int {
	if s.lang.IsSatellite(node.SType) {
		return 0
	}
	if len(node.Children) == 0 {
		return 1
	}
	count := 0
	for _, c := range node.Children {
		count += s.countAlreadyMatchedLeaves(c)
	}
	return count
}

func countLeaves(n *tree.Node) int {
	if n.Satellite {
		return 0
	}
	if n.Leaf {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += countLeaves(c)
	}
	return total
}

func leavesOf(n *tree.Node) []*tree.Node {
	var out []*tree.Node
	var walk func(*tree.Node)
	walk = func(node *tree.Node) {
		if node.Satellite {
			return
		}
		if node.Leaf {
			out = append(out, node)
			return
		}
		for _, c := range node.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

func isDescendant(ancestor, node *tree.Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// distillInternal matches internal (non-leaf) nodes bottom-up. For each
// unmatched x it scans s.y in post-order and commits to the first y that
// passes one of three gates, then stops scanning for that x entirely
// (it does not look for a "better" y further on):
//
//  1. y's language says it always matches (a translation-unit root, say):
//     paired unconditionally as Unchanged.
//  2. x is a container and both nodes' effective parents already have
//     matched value children: containers only pair when their parents'
//     values agree, since a container's own identity carries no
//     information of its own.
//  3. otherwise, childrenSimilarity must be nonzero and either the label
//     similarity clears 0.6 or childrenSimilarity clears 0.8; the pair is
//     then Unchanged only when both the label and the children are an
//     exact match, Updated otherwise.
func (s *session) distillInternal() {
	for _, x := range s.x {
		if x.Leaf || x.Satellite || x.Relative != nil {
			continue
		}

		for _, y := range s.y {
			if y.Leaf || y.Satellite || y.Relative != nil {
				continue
			}
			if tree.Canonicalize(x.Type) != tree.Canonicalize(y.Type) {
				continue
			}

			if s.lang.AlwaysMatches(y) {
				s.match(x, y, tree.Unchanged)
				break
			}

			xParent := s.getParent(x)
			yParent := s.getParent(y)
			if s.lang.IsContainer(x) && xParent.HasValue() && yParent.HasValue() &&
				xParent.GetValue().Relative != nil {
				if xParent.GetValue().Relative != yParent.GetValue() {
					continue
				}
				s.match(x, y, tree.Unchanged)
				break
			}

			childSim := s.childrenSimilarity(x, y)
			if childSim == 0 {
				continue
			}
			labelSim := s.labelSimilarity(x, y)
			if labelSim < 0.6 && childSim < 0.8 {
				continue
			}

			if labelSim == 1.0 && x.Label == y.Label && childSim == 1.0 {
				s.match(x, y, tree.Unchanged)
			} else {
				s.match(x, y, tree.Updated)
			}
			break
		}
	}
}

// matchPartiallyMatchedInternal handles internal nodes distillInternal
// skipped but which already share some matched descendants: it scores
// every remaining (x, y) pair by how many matched leaves they already
// have in common, accepting a candidate once common > 0 and the pair's
// own label similarity clears 0.5, sorts greedily by that count (ties
// broken by the unfiltered common-including-values count), and commits
// each pairing still available once sorted. On the first round
// (excludeValues) a leaf belonging to either side's value subtree is
// dropped from common entirely, so early matching isn't steered by value
// content; on the second round common is simply the unfiltered count.
func (s *session) matchPartiallyMatchedInternal(excludeValues bool) {
	type pair struct {
		x, y          *tree.Node
		common        int
		commonWithVal int
	}
	var pairs []pair
	for _, x := range s.x {
		if x.Leaf || x.Satellite || x.Relative != nil {
			continue
		}
		for _, y := range s.y {
			if y.Leaf || y.Satellite || y.Relative != nil {
				continue
			}
			if tree.Canonicalize(x.Type) != tree.Canonicalize(y.Type) {
				continue
			}
			common, commonWithVal := s.countCommon(x, y, excludeValues)
			if common > 0 && s.labelSimilarity(x, y) >= 0.5 {
				pairs = append(pairs, pair{x, y, common, commonWithVal})
			}
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].common != pairs[j].common {
			return pairs[i].common > pairs[j].common
		}
		return pairs[i].commonWithVal > pairs[j].commonWithVal
	})

	for _, p := range pairs {
		if p.x.Relative == nil && p.y.Relative == nil {
			s.match(p.x, p.y, tree.Unchanged)
		}
	}
}

// countCommon counts y's matched leaves that fall inside x's subtree.
// commonWithVal counts every such leaf unconditionally; common excludes
// one that falls inside either side's own value subtree, unless
// excludeValues is false, in which case common is just commonWithVal —
// the value-subtree exclusion only ever applies on the first round.
func (s *session) countCommon(x, y *tree.Node, excludeValues bool) (common, commonWithVal int) {
	haveValues := x.HasValue() && y.HasValue()
	for _, yl := range leavesOf(y) {
		if yl.Relative == nil || !isDescendant(x, yl.Relative) {
			continue
		}
		if !haveValues || (!isDescendant(y.GetValue(), yl) && !isDescendant(x.GetValue(), yl.Relative)) {
			common++
		}
		commonWithVal++
	}
	if !excludeValues {
		common = commonWithVal
	}
	return common, commonWithVal
}

// matchFirstLevelMatchedInternal handles the common case of two already
// (or partially) matched internal nodes whose direct, non-comment
// children still need pairing up lockstep: it walks both children slices
// in parallel, skipping Comments on either side independently, and
// proposes a match for each aligned pair that canMatch allows. Both
// sides' cursors advance symmetrically, including once one side runs out
// and the other still has trailing comments to skip.
func (s *session) matchFirstLevelMatchedInternal() {
	for _, x := range s.x {
		if x.Leaf || x.Satellite || x.Relative == nil {
			continue
		}
		y := x.Relative
		xChildren := nonSatelliteChildren(x)
		yChildren := nonSatelliteChildren(y)

		xi, yi := 0, 0
		for xi < len(xChildren) && yi < len(yChildren) {
			xc, yc := xChildren[xi], yChildren[yi]
			if xc.Type == tree.Comments {
				xi++
				continue
			}
			if yc.Type == tree.Comments {
				yi++
				continue
			}
			if xc.Relative == nil && yc.Relative == nil && canMatch(xc, yc) {
				s.match(xc, yc, stateFor(xc, yc))
			}
			xi++
			yi++
		}
		for xi < len(xChildren) {
			if xChildren[xi].Type == tree.Comments {
				xi++
				continue
			}
			xi++
		}
		for yi < len(yChildren) {
			if yChildren[yi].Type == tree.Comments {
				yi++
				continue
			}
			yi++
		}
	}
}

func nonSatelliteChildren(n *tree.Node) []*tree.Node {
	var out []*tree.Node
	for _, c := range n.Children {
		if !c.Satellite {
			out = append(out, c)
		}
	}
	return out
}

// markUnmatched marks every node (on either side) that survived both
// rounds without a Relative: Deleted on the x side, Inserted on the y
// side. Move detection and TED refinement run later, in internal/compare.
func (s *session) markUnmatched() {
	for _, n := range s.x {
		if n.Relative == nil {
			n.State = tree.Deleted
		}
	}
	for _, n := range s.y {
		if n.Relative == nil {
			n.State = tree.Inserted
		}
	}
}
