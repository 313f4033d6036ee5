package extract

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codemapper/codemapper/internal/lang"
	"github.com/codemapper/codemapper/internal/parser"
)

// functionName extracts the name from a function-definition node.
// ok=false means the node is not a usable function definition and must be
// dropped (e.g. a C++ declaration with no function declarator, or a named
// form whose name is missing from the tree). An anonymous JavaScript
// function is ok=true with an empty name: the span is kept, the name isn't.
func functionName(node *tree_sitter.Node, source []byte, l lang.Language) (string, bool) {
	switch l {
	case lang.Python, lang.Java:
		if id := firstChildOfKind(node, "identifier"); id != nil {
			return parser.NodeText(id, source), true
		}
		return "", false

	case lang.JavaScript:
		switch node.Kind() {
		case "function_declaration":
			if id := firstChildOfKind(node, "identifier"); id != nil {
				return parser.NodeText(id, source), true
			}
			return "", false
		case "method_definition":
			if id := firstChildOfKind(node, "property_identifier"); id != nil {
				return parser.NodeText(id, source), true
			}
			return "", false
		case "function_expression":
			if id := firstChildOfKind(node, "identifier"); id != nil {
				return parser.NodeText(id, source), true
			}
			return "", true // anonymous
		case "arrow_function":
			return "", true // anonymous
		}
		return "", false

	case lang.CPP:
		return cppFunctionName(node, source)
	}
	return "", false
}

// cppFunctionName digs through the declarator shape of C++ definitions and
// prototypes. Names live one level down inside a function_declarator, with
// one extra nesting level for constructors; qualified names like
// Calculator::add are truncated to their last segment.
func cppFunctionName(node *tree_sitter.Node, source []byte) (string, bool) {
	decl := firstChildOfKind(node, "function_declarator")
	if decl == nil {
		// A plain declaration ("int x;") is not a function.
		return "", false
	}
	if name := declaratorName(decl, source); name != "" {
		return name, true
	}
	if nested := firstChildOfKind(decl, "function_declarator"); nested != nil {
		if name := declaratorName(nested, source); name != "" {
			return name, true
		}
	}
	return "", false
}

// declaratorName scans the direct children of a function_declarator for a
// name-bearing node.
func declaratorName(decl *tree_sitter.Node, source []byte) string {
	for i := uint(0); i < decl.ChildCount(); i++ {
		child := decl.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier", "field_identifier", "destructor_name":
			return parser.NodeText(child, source)
		case "qualified_identifier":
			return lastQualifiedSegment(parser.NodeText(child, source))
		}
	}
	return ""
}

// className extracts the name from a class-like definition node.
func className(node *tree_sitter.Node, source []byte, l lang.Language) (string, bool) {
	kind := "identifier"
	if l == lang.CPP {
		kind = "type_identifier"
	}
	if id := firstChildOfKind(node, kind); id != nil {
		return parser.NodeText(id, source), true
	}
	return "", false
}

// lastQualifiedSegment truncates a C++ scoped name to its trailing segment.
func lastQualifiedSegment(name string) string {
	if idx := strings.LastIndex(name, "::"); idx >= 0 {
		return name[idx+2:]
	}
	return name
}
