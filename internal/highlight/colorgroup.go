package highlight

import (
	"github.com/oxhq/zograscope/internal/lang"
	"github.com/oxhq/zograscope/internal/tree"
	"github.com/oxhq/zograscope/render"
)

// colorFor maps a node's match outcome and lexical category to the small
// closed ColorGroup palette. State takes priority over everything else:
// Deleted/Inserted always win, and an Updated node gets the Updated color
// when the language says it isn't worth a spelling diff (IsDiffable
// false), falling through to its type-based color otherwise; a merely
// Moved Unchanged node gets Moved instead of its type color.
func colorFor(node *tree.Node, moved bool, state tree.State, l lang.Language) render.ColorGroup {
	switch state {
	case tree.Deleted:
		return render.Deleted
	case tree.Inserted:
		return render.Inserted
	case tree.Updated:
		if !l.IsDiffable(node) {
			return render.Updated
		}
	case tree.Unchanged:
		if moved {
			return render.Moved
		}
	}

	switch tree.Canonicalize(node.Type) {
	case tree.Specifiers:
		return render.Specifiers
	case tree.Types:
		return render.Types
	case tree.Directives:
		return render.Directives
	case tree.Comments:
		return render.Comments
	case tree.Functions:
		return render.Functions
	case tree.Jumps, tree.Keywords:
		return render.Keywords
	case tree.LeftBrackets, tree.RightBrackets:
		return render.Brackets
	case tree.Assignments, tree.Operators, tree.LogicalOperators, tree.Comparisons:
		return render.Operators
	case tree.StrConstants, tree.IntConstants, tree.FPConstants, tree.CharConstants:
		return render.Constants
	default:
		return render.Other
	}
}

// isDiffable reports whether node is both Updated, matched, and the
// language considers its spelling worth an intra-token diff rather than a
// single opaque replacement piece.
func isDiffable(node *tree.Node, l lang.Language) bool {
	return node.Relative != nil && l.IsDiffable(node) && node.State == tree.Updated
}
