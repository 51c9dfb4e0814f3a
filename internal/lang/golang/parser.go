// Package golang provides the Go-language comparison capability: a
// tree-sitter-based parser producing internal/tree.Node trees, and a
// Provider implementing internal/lang.Language over the grammar's node
// types.
package golang

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	sittergo "github.com/smacker/go-tree-sitter/golang"

	"github.com/oxhq/zograscope/internal/tree"
)

// Parser wraps a tree-sitter parser configured for Go source.
type Parser struct {
	parser *sitter.Parser
}

// NewParser builds a ready-to-use Go Parser.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(sittergo.GetLanguage())
	return &Parser{parser: p}
}

// Parse parses src and returns a comparison-ready *tree.Tree whose
// language is the package-level Provider.
func (p *Parser) Parse(ctx context.Context, src []byte) (*tree.Tree, error) {
	sTree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("golang: parse: %w", err)
	}
	root := convert(sTree.RootNode(), src, "")
	return tree.New(root, Provider{}), nil
}

// convert recursively turns a tree-sitter node into a tree.Node,
// propagating the immediate parent's grammar type down so a handful of
// node-type decisions (is this identifier a function name?) can be made
// contextually instead of purely from the node's own type string.
func convert(n *sitter.Node, src []byte, parentType string) *tree.Node {
	nodeType := n.Type()
	count := int(n.ChildCount())

	if count == 0 {
		spelling := string(src[n.StartByte():n.EndByte()])
		typ := mapLeafType(nodeType, spelling, parentType)
		leaf := tree.NewLeaf(spelling, spelling,
			int(n.StartPoint().Row)+1, int(n.StartPoint().Column)+1,
			typ, tree.STYPE(nodeType))
		leaf.Satellite = isSatellite(nodeType)
		return leaf
	}

	children := make([]*tree.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, convert(n.Child(i), src, nodeType))
	}
	internal := tree.NewInternal(nodeType, mapInternalType(nodeType), tree.STYPE(nodeType), children...)
	internal.Line = int(n.StartPoint().Row) + 1
	internal.Col = int(n.StartPoint().Column) + 1
	return internal
}
