package callgraph

// Resolve returns a copy of edges with ResolvedSameFile set wherever the
// callee name matches a named function or class defined in the caller's
// own file. The input slice is never modified. Anonymous definitions do
// not participate in name lookup.
func Resolve(symbols SymbolTable, edges []Edge) []Edge {
	names := make(map[string]map[string]bool, len(symbols))
	for path, syms := range symbols {
		set := make(map[string]bool, len(syms.Functions)+len(syms.Classes))
		for _, d := range syms.Functions {
			if d.Name != "" {
				set[d.Name] = true
			}
		}
		for _, d := range syms.Classes {
			if d.Name != "" {
				set[d.Name] = true
			}
		}
		names[path] = set
	}

	resolved := make([]Edge, len(edges))
	for i, e := range edges {
		e.ResolvedSameFile = names[e.FromFile][e.ToName]
		resolved[i] = e
	}
	return resolved
}
