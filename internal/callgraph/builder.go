package callgraph

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/codemapper/codemapper/internal/discover"
	"github.com/codemapper/codemapper/internal/extract"
)

// Options configures a graph build. The callbacks are optional progress
// hooks; both may be nil.
type Options struct {
	// IgnorePatterns are forwarded to file discovery.
	IgnorePatterns []string
	// OnDiscover is called once with the number of files to process.
	OnDiscover func(total int)
	// OnFile is called after each file finishes, successfully or not.
	OnFile func(relPath string)
}

type fileResult struct {
	info     discover.FileInfo
	analysis *extract.Analysis
}

// Build discovers source files under root, extracts definitions and call
// sites from each, and assembles the call graph. Unreadable or unparsable
// files are logged and skipped; output order follows discovery order
// regardless of which worker finishes first.
func Build(ctx context.Context, root string, opts *Options) (*Graph, error) {
	if opts == nil {
		opts = &Options{}
	}

	files, err := discover.Discover(ctx, root, &discover.Options{
		IgnorePatterns: opts.IgnorePatterns,
	})
	if err != nil {
		return nil, err
	}
	if opts.OnDiscover != nil {
		opts.OnDiscover(len(files))
	}
	slog.Info("callgraph.build.start", "root", root, "files", len(files))

	results := make([]*fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer func() {
				if opts.OnFile != nil {
					opts.OnFile(f.RelPath)
				}
			}()

			source, err := os.ReadFile(f.Path)
			if err != nil {
				slog.Warn("callgraph.file.read_failed", "path", f.RelPath, "error", err)
				return nil
			}
			analysis, err := extract.Analyze(source, f.Language)
			if err != nil {
				slog.Warn("callgraph.file.parse_failed", "path", f.RelPath, "error", err)
				return nil
			}
			results[i] = &fileResult{info: f, analysis: analysis}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	graph := &Graph{Symbols: make(SymbolTable, len(results))}
	for _, r := range results {
		if r == nil {
			continue
		}
		rel := r.info.RelPath
		graph.Symbols[rel] = &FileSymbols{
			Path:      rel,
			Language:  r.info.Language,
			Functions: r.analysis.Functions,
			Classes:   r.analysis.Classes,
		}
		for _, call := range r.analysis.Calls {
			edge := Edge{
				FromFile: rel,
				SiteLine: call.Line,
				ToName:   call.Name,
				Language: r.info.Language,
			}
			if enc := extract.Enclosing(r.analysis.Functions, call.Line); enc != nil {
				edge.FromFunc = enc.Name
			}
			graph.Edges = append(graph.Edges, edge)
		}
	}

	graph.Edges = Resolve(graph.Symbols, graph.Edges)
	slog.Info("callgraph.build.done", "files", len(graph.Symbols), "edges", len(graph.Edges))
	return graph, nil
}
