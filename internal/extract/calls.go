package extract

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codemapper/codemapper/internal/lang"
	"github.com/codemapper/codemapper/internal/parser"
)

// Calls extracts all call expressions beneath root. Call sites whose callee
// name cannot be determined are dropped, not reported as errors.
func Calls(root *tree_sitter.Node, source []byte, l lang.Language) []CallSite {
	spec := lang.ForLanguage(l)
	if spec == nil {
		return nil
	}

	callTypes := toSet(spec.CallNodeTypes)

	var calls []CallSite
	parser.Walk(root, func(node *tree_sitter.Node) bool {
		if !callTypes[node.Kind()] {
			return true
		}
		if name := calleeName(node, source, l); name != "" {
			calls = append(calls, CallSite{
				Name: name,
				Line: lineOf(node.StartPosition().Row),
			})
		}
		return true
	})
	return calls
}

// calleeName resolves the textual callee of a call node. Direct identifier
// callees are taken as-is; member/attribute/field calls keep only the
// trailing name and discard the receiver expression.
func calleeName(node *tree_sitter.Node, source []byte, l lang.Language) string {
	switch l {
	case lang.Python:
		fn := node.ChildByFieldName("function")
		if fn == nil {
			return ""
		}
		switch fn.Kind() {
		case "identifier":
			return parser.NodeText(fn, source)
		case "attribute":
			if attr := fn.ChildByFieldName("attribute"); attr != nil {
				return parser.NodeText(attr, source)
			}
		}

	case lang.JavaScript:
		fn := node.ChildByFieldName("function")
		if fn == nil {
			return ""
		}
		switch fn.Kind() {
		case "identifier":
			return parser.NodeText(fn, source)
		case "member_expression":
			if prop := fn.ChildByFieldName("property"); prop != nil {
				return parser.NodeText(prop, source)
			}
		}

	case lang.Java:
		if name := node.ChildByFieldName("name"); name != nil {
			return parser.NodeText(name, source)
		}

	case lang.CPP:
		fn := node.ChildByFieldName("function")
		if fn == nil {
			return ""
		}
		switch fn.Kind() {
		case "identifier":
			return parser.NodeText(fn, source)
		case "qualified_identifier":
			return lastQualifiedSegment(parser.NodeText(fn, source))
		case "field_expression":
			if field := fn.ChildByFieldName("field"); field != nil {
				return parser.NodeText(field, source)
			}
		}
	}
	return ""
}
