package extract

import (
	"sort"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codemapper/codemapper/internal/lang"
	"github.com/codemapper/codemapper/internal/parser"
)

// Definitions extracts all function and class definitions beneath root.
// Nested definitions (a method inside a class, a closure inside a function)
// each appear independently; no parent/child linkage is recorded.
func Definitions(root *tree_sitter.Node, source []byte, l lang.Language) DefinitionSet {
	spec := lang.ForLanguage(l)
	if spec == nil {
		return DefinitionSet{}
	}

	funcTypes := toSet(spec.FunctionNodeTypes)
	classTypes := toSet(spec.ClassNodeTypes)

	var ds DefinitionSet
	parser.Walk(root, func(node *tree_sitter.Node) bool {
		kind := node.Kind()
		if funcTypes[kind] {
			if name, ok := functionName(node, source, l); ok {
				ds.Functions = append(ds.Functions, makeDefinition(name, KindFunction, node))
			}
		} else if classTypes[kind] {
			if name, ok := className(node, source, l); ok {
				ds.Classes = append(ds.Classes, makeDefinition(name, KindClass, node))
			}
		}
		return true
	})

	sortDefinitions(ds.Functions)
	sortDefinitions(ds.Classes)
	return ds
}

func makeDefinition(name, kind string, node *tree_sitter.Node) Definition {
	return Definition{
		Name:      name,
		Kind:      kind,
		StartLine: lineOf(node.StartPosition().Row),
		EndLine:   lineOf(node.EndPosition().Row),
	}
}

func sortDefinitions(defs []Definition) {
	sort.SliceStable(defs, func(i, j int) bool {
		if defs[i].StartLine != defs[j].StartLine {
			return defs[i].StartLine < defs[j].StartLine
		}
		return defs[i].EndLine < defs[j].EndLine
	})
}
