package golang

import "github.com/oxhq/zograscope/internal/tree"

// fixedStructureTypes are grammar nodes whose children occupy fixed,
// semantically distinct slots rather than an interchangeable sequence.
var fixedStructureTypes = map[string]bool{
	"if_statement": true, "binary_expression": true,
	"assignment_statement": true, "short_var_declaration": true,
	"for_statement": true,
}

var moveableItemTypes = map[string]bool{
	"block": true, "argument_list": true, "literal_value": true,
	"const_declaration": true, "var_declaration": true,
	"import_spec_list": true, "field_declaration_list": true,
}

var containerTypes = map[string]bool{
	"expression_statement": true, "parenthesized_expression": true,
}

var travellingTypes = map[string]bool{
	"expression_case": true, "default_case": true, "communication_case": true,
}

var diffableTypes = map[tree.Type]bool{
	tree.Identifiers:   true,
	tree.UserTypes:     true,
	tree.Functions:      true,
	tree.StrConstants:  true,
	tree.IntConstants:  true,
	tree.FPConstants:   true,
	tree.CharConstants: true,
	tree.Comments:      true,
}

// Provider implements internal/lang.Language for Go source parsed by
// Parser. It is a zero-size value; all decisions are pure functions of a
// node's grammar type string (SType, and for IsPayloadOfFixed its parent's)
// or Type.
type Provider struct{}

func (Provider) IsSatellite(stype tree.STYPE) bool { return virtualGlue[string(stype)] }

func (Provider) IsUnmovable(node *tree.Node) bool {
	return string(node.SType) == "block"
}

func (Provider) IsContainer(node *tree.Node) bool {
	return containerTypes[string(node.SType)]
}

func (Provider) AlwaysMatches(node *tree.Node) bool {
	return string(node.SType) == "source_file"
}

func (Provider) IsDiffable(node *tree.Node) bool {
	return diffableTypes[tree.Canonicalize(node.Type)]
}

func (Provider) HasFixedStructure(node *tree.Node) bool {
	return fixedStructureTypes[string(node.SType)]
}

func (Provider) IsPayloadOfFixed(node *tree.Node) bool {
	if node.Parent == nil || !fixedStructureTypes[string(node.Parent.SType)] {
		return false
	}
	switch node.Type {
	case tree.Keywords, tree.Jumps, tree.LeftBrackets, tree.RightBrackets,
		tree.Operators, tree.Comparisons, tree.Assignments, tree.LogicalOperators, tree.Virtual:
		return false
	default:
		return true
	}
}

func (Provider) HasMoveableItems(node *tree.Node) bool {
	return moveableItemTypes[string(node.SType)]
}

func (Provider) CanBeFlattened(_, _ *tree.Node, _ int) bool {
	// The Go provider never produces a finer-grained Next layer for any
	// node, so there is never anything to promote.
	return false
}

func (Provider) IsTravellingNode(node *tree.Node) bool {
	return travellingTypes[string(node.SType)]
}

func (Provider) CanForceLeafMatch(x, y *tree.Node) bool {
	t := tree.Canonicalize(x.Type)
	if t != tree.Canonicalize(y.Type) {
		return false
	}
	switch t {
	case tree.IntConstants, tree.FPConstants, tree.CharConstants:
		return true
	default:
		return false
	}
}
