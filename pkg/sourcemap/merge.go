package sourcemap

// Merge composes two successive position-translating passes: first maps
// original sources to an intermediate generated file, second maps that
// intermediate file (as a single implicit "original" file, whatever its
// own sources claim) onward to the final output. The result keeps first's
// source/line/col keys with second's generated coordinates, letting a
// two-stage pipeline report original locations for fully optimized output.
//
// Positions of first with no counterpart in second were optimized away;
// their keys survive with empty lists rather than erroring or leaving
// placeholders.
func Merge(first, second *Index) *Index {
	// Flatten second across its sources into a plain line/col lookup.
	// Walking in rank order keeps collisions deterministic.
	lookup := make(map[int]map[int][]GeneratedPosition)
	_ = second.Walk(func(_ string, line, col int, positions []GeneratedPosition) error {
		cols, ok := lookup[line]
		if !ok {
			cols = make(map[int][]GeneratedPosition)
			lookup[line] = cols
		}
		cols[col] = append(cols[col], positions...)
		return nil
	})

	out := NewIndex()
	for _, source := range first.Sources() {
		out.AddSource(source)
	}
	_ = first.Walk(func(source string, line, col int, positions []GeneratedPosition) error {
		merged := make([]GeneratedPosition, 0, len(positions))
		for _, pos := range positions {
			merged = append(merged, lookup[pos.Line][pos.Col]...)
		}
		out.setList(source, line, col, merged)
		return nil
	})
	return out
}
