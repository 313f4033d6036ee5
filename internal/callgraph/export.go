package callgraph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// WriteJSON writes the graph as indented JSON.
func WriteJSON(w io.Writer, g *Graph, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(g)
}

// WriteEdgesNDJSON writes one edge per line, for consumers that stream
// the edge list without loading the symbol table.
func WriteEdgesNDJSON(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, e := range g.Edges {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

// WriteDOT renders the graph in Graphviz DOT format. Callers are grouped
// by file; edges to names that did not resolve in the same file are drawn
// dashed.
func WriteDOT(w io.Writer, g *Graph) error {
	dg := graph.New(graph.StringHash, graph.Directed())

	addVertex := func(id, label string) error {
		err := dg.AddVertex(id, graph.VertexAttribute("label", label))
		if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return err
		}
		return nil
	}

	for _, e := range g.Edges {
		from := e.FromFile
		fromLabel := e.FromFile
		if e.FromFunc != "" {
			from = e.FromFile + "::" + e.FromFunc
			fromLabel = fmt.Sprintf("%s\n%s", e.FromFunc, e.FromFile)
		}
		if err := addVertex(from, fromLabel); err != nil {
			return err
		}

		to := e.ToName
		if e.ResolvedSameFile {
			to = e.FromFile + "::" + e.ToName
			if err := addVertex(to, fmt.Sprintf("%s\n%s", e.ToName, e.FromFile)); err != nil {
				return err
			}
		} else if err := addVertex(to, e.ToName); err != nil {
			return err
		}

		var attrs []func(*graph.EdgeProperties)
		if !e.ResolvedSameFile {
			attrs = append(attrs, graph.EdgeAttribute("style", "dashed"))
		}
		err := dg.AddEdge(from, to, attrs...)
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return err
		}
	}

	return draw.DOT(dg, w)
}
