package extract

// Enclosing maps a line number to the smallest function definition whose
// span contains it — the tightest enclosing scope, which is the right
// answer for nested functions. When no span contains the line (partially
// matched or macro-heavy code may not produce one), it degrades to the
// definition with the largest start_line at or before the line; when none
// qualifies it returns nil.
func Enclosing(defs []Definition, line int) *Definition {
	var best *Definition
	for i := range defs {
		d := &defs[i]
		if d.StartLine <= line && line <= d.EndLine {
			if best == nil || span(d) < span(best) {
				best = d
			}
		}
	}
	if best != nil {
		return best
	}

	for i := range defs {
		d := &defs[i]
		if d.StartLine <= line {
			if best == nil || d.StartLine > best.StartLine {
				best = d
			}
		}
	}
	return best
}

func span(d *Definition) int {
	return d.EndLine - d.StartLine
}
