package sourcemap

import "sort"

// GeneratedPosition is one location in the generated file that an original
// position maps to. Named distinguishes "no name" from a name whose table
// index happens to be 0.
type GeneratedPosition struct {
	Line  int    `json:"line"`
	Col   int    `json:"col"`
	Name  string `json:"name,omitempty"`
	Named bool   `json:"-"`
}

// Index is the decoded, queryable form of a source map: source identifier
// to original line to original column to the generated positions mapped
// there. Source order is first-appearance rank and line/column levels
// iterate in numeric order. Encoding walks these levels in order to
// re-derive line gaps and column deltas, so the ordering is load-bearing.
type Index struct {
	sources []string
	rank    map[string]int
	entries map[string]map[int]map[int][]GeneratedPosition
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		rank:    make(map[string]int),
		entries: make(map[string]map[int]map[int][]GeneratedPosition),
	}
}

// AddSource registers a source identifier, assigning it the next rank if
// unseen. Registering every entry of a sources array up front keeps the
// index's key set equal to the array even for sources with no mappings.
func (x *Index) AddSource(source string) {
	if _, ok := x.rank[source]; ok {
		return
	}
	x.rank[source] = len(x.sources)
	x.sources = append(x.sources, source)
	x.entries[source] = make(map[int]map[int][]GeneratedPosition)
}

// Add appends a generated position at [source][line][col], registering the
// source if needed. Existing entries at the key are never overwritten:
// distinguishing optimizer passes can map one original position to several
// generated ones.
func (x *Index) Add(source string, line, col int, pos GeneratedPosition) {
	x.AddSource(source)
	lines := x.entries[source]
	cols, ok := lines[line]
	if !ok {
		cols = make(map[int][]GeneratedPosition)
		lines[line] = cols
	}
	cols[col] = append(cols[col], pos)
}

// setList installs a complete position list at a key, keeping the key even
// when the list is empty. Used by Merge so "mapped but optimized away"
// stays distinguishable from "never mapped".
func (x *Index) setList(source string, line, col int, positions []GeneratedPosition) {
	x.AddSource(source)
	lines := x.entries[source]
	cols, ok := lines[line]
	if !ok {
		cols = make(map[int][]GeneratedPosition)
		lines[line] = cols
	}
	cols[col] = positions
}

// Sources returns the source identifiers in rank (first-appearance) order.
func (x *Index) Sources() []string {
	out := make([]string, len(x.sources))
	copy(out, x.sources)
	return out
}

// At returns the generated positions recorded for an original position,
// or nil when none exist.
func (x *Index) At(source string, line, col int) []GeneratedPosition {
	lines, ok := x.entries[source]
	if !ok {
		return nil
	}
	cols, ok := lines[line]
	if !ok {
		return nil
	}
	return cols[col]
}

// Positions returns the total number of generated positions in the index.
func (x *Index) Positions() int {
	total := 0
	for _, lines := range x.entries {
		for _, cols := range lines {
			for _, positions := range cols {
				total += len(positions)
			}
		}
	}
	return total
}

// Walk visits every (source, line, col) key in source-rank order, then
// numeric line order, then numeric column order, stopping at the first
// error. Keys holding empty lists are visited too.
func (x *Index) Walk(fn func(source string, line, col int, positions []GeneratedPosition) error) error {
	for _, source := range x.sources {
		lines := x.entries[source]
		for _, line := range sortedKeys(lines) {
			cols := lines[line]
			for _, col := range sortedKeys(cols) {
				if err := fn(source, line, col, cols[col]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
