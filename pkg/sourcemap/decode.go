package sourcemap

import (
	"fmt"
	"strings"
)

// Decode parses a mappings string against its sources and names tables
// into a position index. Every entry of sources is registered up front so
// the index's key set reproduces the array in order even when a source has
// no mappings.
//
// Segments must carry exactly 4 or 5 fields; the single-field
// generated-column-only form some emitters produce is rejected as
// malformed here, as are negative absolute coordinates. Corrupted input
// aborts the whole decode rather than yielding a map that points a
// debugger at the wrong line.
func Decode(mappings string, sources, names []string) (*Index, error) {
	idx := NewIndex()
	for _, source := range sources {
		idx.AddSource(source)
	}

	acc := accumulator{}
	for lineNo, line := range strings.Split(mappings, ";") {
		// Only the generated-column total resets at a line boundary.
		acc[fieldGCol] = 0
		if line == "" {
			continue
		}
		for segNo, token := range strings.Split(line, ",") {
			rel, err := decodeSegment(token)
			if err != nil {
				return nil, &MalformedMappingError{Line: lineNo, Segment: segNo, Reason: "invalid vlq run", Err: err}
			}
			if len(rel) != segmentFields && len(rel) != segmentFields-1 {
				return nil, &MalformedMappingError{
					Line:    lineNo,
					Segment: segNo,
					Reason:  fmt.Sprintf("segment has %d fields (want 4 or 5)", len(rel)),
				}
			}

			next, named := acc.apply(rel)
			if next[fieldGCol] < 0 || next[fieldOLine] < 0 || next[fieldOCol] < 0 {
				return nil, &MalformedMappingError{
					Line:    lineNo,
					Segment: segNo,
					Reason: fmt.Sprintf("negative absolute position (gcol=%d line=%d col=%d)",
						next[fieldGCol], next[fieldOLine], next[fieldOCol]),
				}
			}
			if next[fieldSource] < 0 || next[fieldSource] >= len(sources) {
				return nil, &IndexOutOfRangeError{Kind: "source", Index: next[fieldSource], Length: len(sources), Line: lineNo}
			}

			pos := GeneratedPosition{Line: lineNo, Col: next[fieldGCol]}
			if named {
				if next[fieldName] < 0 || next[fieldName] >= len(names) {
					return nil, &IndexOutOfRangeError{Kind: "name", Index: next[fieldName], Length: len(names), Line: lineNo}
				}
				pos.Name = names[next[fieldName]]
				pos.Named = true
			}
			idx.Add(sources[next[fieldSource]], next[fieldOLine], next[fieldOCol], pos)
			acc = next
		}
	}

	return idx, nil
}

// DecodeDocument decodes the mappings of a parsed v3 document.
func DecodeDocument(doc *Document) (*Index, error) {
	if doc.Version != Version {
		return nil, fmt.Errorf("unsupported source map version %d (want %d)", doc.Version, Version)
	}
	return Decode(doc.Mappings, doc.Sources, doc.Names)
}
