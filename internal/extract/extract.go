// Package extract walks tree-sitter ASTs and yields structural facts:
// function/class definitions and call sites. All extraction is best-effort —
// nodes whose name cannot be determined from the tree shape are dropped
// silently, and syntax errors in the source never abort a walk.
package extract

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

const (
	KindFunction = "function"
	KindClass    = "class"
)

// Definition is a located function or class declaration.
// Name is empty for anonymous definitions (e.g. arrow functions),
// which are excluded from name-based lookups but keep their span.
type Definition struct {
	Name      string `json:"name,omitempty"`
	Kind      string `json:"kind"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
}

// CallSite is a located call expression with an unresolved callee name.
// Name holds the bare identifier, or the trailing member/field segment
// for method-style calls — qualification prefixes are discarded.
type CallSite struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// DefinitionSet holds a single file's definitions, grouped by kind.
// Both slices are sorted by (start_line, end_line).
type DefinitionSet struct {
	Functions []Definition `json:"functions"`
	Classes   []Definition `json:"classes"`
}

// All returns functions followed by classes, preserving each group's order.
func (ds DefinitionSet) All() []Definition {
	all := make([]Definition, 0, len(ds.Functions)+len(ds.Classes))
	all = append(all, ds.Functions...)
	all = append(all, ds.Classes...)
	return all
}

func toSet(types []string) map[string]bool {
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

func firstChildOfKind(node *tree_sitter.Node, kind string) *tree_sitter.Node {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && child.Kind() == kind {
			return child
		}
	}
	return nil
}

// lineOf converts a 0-based tree-sitter row to a 1-based line number.
func lineOf(row uint) int {
	return int(row) + 1
}
