package sourcemap

import "strings"

// Options controls document assembly around an encoded index.
type Options struct {
	// File is the declared name of the generated file.
	File string
	// LineCount, when positive, is emitted as the document's lineCount
	// and pads the mappings string with empty groups up to that many
	// generated lines.
	LineCount int
	// Relativize rewrites each source identifier for the output sources
	// array. It is supplied by the surrounding build tool; nil means
	// identity.
	Relativize func(string) string
}

// absSegment is one placed segment in the working line array, still in
// absolute coordinates.
type absSegment struct {
	fields accumulator
	named  bool
}

// Encode inverts a position index into a complete source map document.
// Sources are emitted in index rank order, reproducing the original input
// order; names are assigned indices densely in first-use order. Encoding
// well-formed input never fails — a negative coordinate is a precondition
// violation reported before any output is assembled.
func Encode(idx *Index, opts Options) (*Document, error) {
	ranks := make(map[string]int, len(idx.Sources()))
	for i, source := range idx.Sources() {
		ranks[source] = i
	}

	// First pass: place every generated position into an array of
	// generated lines, growing with empty placeholders so gaps become
	// empty mapping groups rather than shifted indices.
	var lines [][]absSegment
	var names []string
	nameIndex := make(map[string]int)

	err := idx.Walk(func(source string, line, col int, positions []GeneratedPosition) error {
		if line < 0 || col < 0 {
			return &InvalidPositionError{Source: source, Line: line, Col: col, Reason: "negative original coordinate"}
		}
		for _, pos := range positions {
			if pos.Line < 0 || pos.Col < 0 {
				return &InvalidPositionError{Source: source, Line: pos.Line, Col: pos.Col, Reason: "negative generated coordinate"}
			}
			for len(lines) <= pos.Line {
				lines = append(lines, nil)
			}
			seg := absSegment{named: pos.Named}
			seg.fields[fieldGCol] = pos.Col
			seg.fields[fieldSource] = ranks[source]
			seg.fields[fieldOLine] = line
			seg.fields[fieldOCol] = col
			if pos.Named {
				id, ok := nameIndex[pos.Name]
				if !ok {
					id = len(names)
					nameIndex[pos.Name] = id
					names = append(names, pos.Name)
				}
				seg.fields[fieldName] = id
			}
			lines[pos.Line] = append(lines[pos.Line], seg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for len(lines) < opts.LineCount {
		lines = append(lines, nil)
	}

	// Second pass: delta-encode against a running previous state,
	// resetting only the generated-column total per line.
	prev := accumulator{}
	groups := make([]string, len(lines))
	for lineNo, segs := range lines {
		prev[fieldGCol] = 0
		tokens := make([]string, len(segs))
		for i, seg := range segs {
			width := segmentFields - 1
			if seg.named {
				width = segmentFields
			}
			tokens[i] = encodeSegment(encodeOffset(seg.fields, prev, width))
			next := prev
			for f := 0; f < width; f++ {
				next[f] = seg.fields[f]
			}
			prev = next
		}
		groups[lineNo] = strings.Join(tokens, ",")
	}

	sources := make([]string, 0, len(idx.Sources()))
	for _, source := range idx.Sources() {
		if opts.Relativize != nil {
			source = opts.Relativize(source)
		}
		sources = append(sources, source)
	}
	if names == nil {
		names = []string{}
	}

	return &Document{
		Version:   Version,
		File:      opts.File,
		Sources:   sources,
		Names:     names,
		Mappings:  strings.Join(groups, ";"),
		LineCount: opts.LineCount,
	}, nil
}
