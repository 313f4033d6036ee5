package callgraph

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
)

const mainPy = `def helper():
    pass

def run():
    helper()
    missing()

run()
`

const otherPy = `def lonely():
    helper()
`

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestBuild(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"main.py":  mainPy,
		"other.py": otherPy,
	})

	g, err := Build(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(g.Symbols) != 2 {
		t.Fatalf("symbols: got %d files, want 2", len(g.Symbols))
	}
	main := g.Symbols["main.py"]
	if main == nil || len(main.Functions) != 2 {
		t.Fatalf("main.py symbols = %+v, want 2 functions", main)
	}

	byCallee := map[string]Edge{}
	for _, e := range g.Edges {
		byCallee[e.FromFile+"/"+e.ToName] = e
	}

	// Call inside run attributed to its enclosing function and resolved.
	e := byCallee["main.py/helper"]
	if e.FromFunc != "run" || !e.ResolvedSameFile {
		t.Errorf("helper edge = %+v, want FromFunc=run resolved", e)
	}

	// Callee with no definition anywhere stays unresolved.
	e = byCallee["main.py/missing"]
	if e.FromFunc != "run" || e.ResolvedSameFile {
		t.Errorf("missing edge = %+v, want unresolved", e)
	}

	// Resolution is same-file only: other.py calls helper, defined in main.py.
	e = byCallee["other.py/helper"]
	if e.FromFunc != "lonely" || e.ResolvedSameFile {
		t.Errorf("cross-file edge = %+v, want unresolved", e)
	}
}

func TestBuildModuleLevelCall(t *testing.T) {
	// A call before any definition has no enclosing function at all; a call
	// after the last definition falls back to the nearest preceding one.
	dir := writeTree(t, map[string]string{
		"top.py": "configure()\n\ndef configure():\n    pass\n",
	})

	g, err := Build(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var edge *Edge
	for i, e := range g.Edges {
		if e.ToName == "configure" && e.SiteLine == 1 {
			edge = &g.Edges[i]
		}
	}
	if edge == nil {
		t.Fatal("missing top-of-file configure() edge")
	}
	if edge.FromFunc != "" {
		t.Errorf("FromFunc = %q, want empty for call preceding all definitions", edge.FromFunc)
	}
	if !edge.ResolvedSameFile {
		t.Error("configure() should resolve to same-file definition")
	}
}

func TestBuildTrailingCallFallsBack(t *testing.T) {
	dir := writeTree(t, map[string]string{"main.py": mainPy})

	g, err := Build(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var edge *Edge
	for i, e := range g.Edges {
		if e.ToName == "run" {
			edge = &g.Edges[i]
		}
	}
	if edge == nil {
		t.Fatal("missing module-level run() edge")
	}
	// Line 8 sits after run's span, so the nearest preceding definition wins.
	if edge.FromFunc != "run" {
		t.Errorf("FromFunc = %q, want run (nearest preceding definition)", edge.FromFunc)
	}
}

func TestBuildDeterministic(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.py": "def a():\n    b()\n",
		"b.py": "def b():\n    a()\n",
		"c.py": "def c():\n    c()\n",
	})

	first, err := Build(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Build(context.Background(), dir, nil)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if !reflect.DeepEqual(first.Edges, again.Edges) {
			t.Fatalf("edge order not deterministic:\n%v\n%v", first.Edges, again.Edges)
		}
	}
}

func TestBuildProgressHooks(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.py": "def a():\n    pass\n",
		"b.py": "def b():\n    pass\n",
	})

	var total int
	seen := map[string]bool{}
	var mu sync.Mutex
	_, err := Build(context.Background(), dir, &Options{
		OnDiscover: func(n int) { total = n },
		OnFile: func(rel string) {
			mu.Lock()
			seen[rel] = true
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if total != 2 {
		t.Errorf("OnDiscover total = %d, want 2", total)
	}
	if !seen["a.py"] || !seen["b.py"] {
		t.Errorf("OnFile saw %v, want both files", seen)
	}
}

func TestBuildMissingRoot(t *testing.T) {
	_, err := Build(context.Background(), filepath.Join(t.TempDir(), "nope"), nil)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestBuildIgnorePatterns(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"keep.py":      "def keep():\n    pass\n",
		"skip_test.py": "def skip():\n    pass\n",
	})

	g, err := Build(context.Background(), dir, &Options{
		IgnorePatterns: []string{"*_test.py"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for path := range g.Symbols {
		if strings.HasSuffix(path, "_test.py") {
			t.Errorf("ignored file %q present in symbol table", path)
		}
	}
	if g.Symbols["keep.py"] == nil {
		t.Error("keep.py missing from symbol table")
	}
}
