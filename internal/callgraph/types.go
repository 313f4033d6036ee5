// Package callgraph builds a cross-file call graph for a source tree.
// Files are parsed in parallel, call sites are attributed to their
// enclosing function, and calls are resolved against definitions in
// the same file.
package callgraph

import (
	"github.com/codemapper/codemapper/internal/extract"
	"github.com/codemapper/codemapper/internal/lang"
)

// Edge is one call site in the graph. FromFunc is empty when the call
// occurs outside any function body (module-level or global scope).
type Edge struct {
	FromFile         string        `json:"from_file"`
	FromFunc         string        `json:"from_func,omitempty"`
	SiteLine         int           `json:"site_line"`
	ToName           string        `json:"to_name"`
	Language         lang.Language `json:"language"`
	ResolvedSameFile bool          `json:"resolved_same_file"`
}

// FileSymbols holds the definitions extracted from one file.
type FileSymbols struct {
	Path      string               `json:"path"`
	Language  lang.Language        `json:"language"`
	Functions []extract.Definition `json:"functions"`
	Classes   []extract.Definition `json:"classes"`
}

// SymbolTable maps relative file paths to their extracted symbols.
type SymbolTable map[string]*FileSymbols

// Graph is the result of a build: the symbol table plus every call edge,
// in deterministic file-walk order.
type Graph struct {
	Symbols SymbolTable `json:"symbols"`
	Edges   []Edge      `json:"edges"`
}
