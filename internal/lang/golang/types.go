package golang

import "github.com/oxhq/zograscope/internal/tree"

var builtinTypeNames = map[string]bool{
	"bool": true, "byte": true, "complex64": true, "complex128": true,
	"error": true, "float32": true, "float64": true, "int": true,
	"int8": true, "int16": true, "int32": true, "int64": true,
	"rune": true, "string": true, "uint": true, "uint8": true,
	"uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"any": true,
}

var jumpKeywords = map[string]bool{
	"return": true, "break": true, "continue": true, "goto": true, "fallthrough": true,
}

var specifierKeywords = map[string]bool{
	"var": true, "const": true,
}

var functionDeclTypes = map[string]bool{
	"function_declaration": true, "method_declaration": true, "func_literal": true,
}

var comparisonOps = map[string]bool{
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
}

var logicalOps = map[string]bool{"&&": true, "||": true, "!": true}

var assignmentOps = map[string]bool{
	"=": true, ":=": true, "+=": true, "-=": true, "*=": true, "/=": true,
	"%=": true, "&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true, "&^=": true,
}

var arithmeticOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"&": true, "|": true, "^": true, "<<": true, ">>": true, "&^": true, "~": true,
}

var leftBrackets = map[string]bool{"(": true, "{": true, "[": true}
var rightBrackets = map[string]bool{")": true, "}": true, "]": true}
var virtualGlue = map[string]bool{",": true, ";": true, ".": true, "...": true}

// mapLeafType decides a leaf's Type. spelling is the literal source text
// (for anonymous tokens the grammar's node "type" already is the literal,
// but for "identifier" nodes we need the actual text to recognize a
// built-in type name); parentType lets a bare "identifier" become
// Functions when it names a function or method declaration.
func mapLeafType(grammarType, spelling, parentType string) tree.Type {
	switch {
	case leftBrackets[grammarType]:
		return tree.LeftBrackets
	case rightBrackets[grammarType]:
		return tree.RightBrackets
	case virtualGlue[grammarType]:
		return tree.Virtual
	case comparisonOps[grammarType]:
		return tree.Comparisons
	case logicalOps[grammarType]:
		return tree.LogicalOperators
	case assignmentOps[grammarType]:
		return tree.Assignments
	case arithmeticOps[grammarType]:
		return tree.Operators
	case jumpKeywords[grammarType]:
		return tree.Jumps
	case specifierKeywords[grammarType]:
		return tree.Specifiers
	}

	switch grammarType {
	case "comment":
		return tree.Comments
	case "interpreted_string_literal", "raw_string_literal":
		return tree.StrConstants
	case "rune_literal":
		return tree.CharConstants
	case "int_literal":
		return tree.IntConstants
	case "float_literal", "imaginary_literal":
		return tree.FPConstants
	case "type_identifier":
		return tree.UserTypes
	case "package_identifier", "field_identifier", "label_name":
		return tree.Identifiers
	case "identifier":
		if builtinTypeNames[spelling] {
			return tree.Types
		}
		if functionDeclTypes[parentType] {
			return tree.Functions
		}
		return tree.Identifiers
	case "func", "if", "else", "for", "range", "go", "defer", "select",
		"switch", "case", "default", "struct", "interface", "map", "chan",
		"package", "import", "type":
		return tree.Keywords
	}
	return tree.Other
}

// mapInternalType assigns a Type to non-leaf grammar nodes. Most internal
// nodes are structural and get Other; function/method declarations get
// Functions so distill's type gate and highlight's color table both see
// them consistently with their name leaf.
func mapInternalType(grammarType string) tree.Type {
	switch grammarType {
	case "function_declaration", "method_declaration", "func_literal":
		return tree.Functions
	case "comment":
		return tree.Comments
	case "type_spec", "type_declaration":
		return tree.UserTypes
	}
	return tree.Other
}

// isSatellite marks purely incidental separators (commas, semicolons,
// the struct/selector dot, variadic ellipsis) as satellites: they never
// participate in matching but still render (in the Other color group).
func isSatellite(grammarType string) bool {
	return virtualGlue[grammarType]
}
