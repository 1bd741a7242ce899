package sourcemap

import (
	"strings"

	"github.com/srcmap-dev/srcmap/pkg/vlq"
)

// Field offsets within a segment tuple.
const (
	fieldGCol = iota
	fieldSource
	fieldOLine
	fieldOCol
	fieldName

	segmentFields = 5
)

// accumulator carries the running absolute value of every segment field.
// It is threaded through the decode and encode loops as a value: each step
// takes the previous state and returns the next, with no shared cell. The
// gcol field resets to 0 at every generated line boundary; the other four
// persist across lines and reset only at the start of the whole map.
type accumulator [segmentFields]int

// apply folds a relative tuple into the accumulator, returning the next
// absolute state and whether the tuple carried a name field. A 4-field
// tuple leaves the name total untouched but marks the segment nameless;
// omission and "delta 0" are distinct states.
func (a accumulator) apply(rel []int) (accumulator, bool) {
	next := a
	for i, d := range rel {
		next[i] += d
	}
	return next, len(rel) == segmentFields
}

// decodeSegment splits one comma-delimited mappings token into its
// relative integer fields. The token is a separator-free VLQ run, so each
// decode reports its width and the remainder is decoded in turn.
func decodeSegment(token string) ([]int, error) {
	fields := make([]int, 0, segmentFields)
	for rest := token; rest != ""; {
		value, width, err := vlq.Decode(rest)
		if err != nil {
			return nil, err
		}
		fields = append(fields, value)
		rest = rest[width:]
	}
	return fields, nil
}

// encodeOffset produces the relative tuple for cur against prev, covering
// the first n fields (4 for nameless segments, 5 otherwise).
func encodeOffset(cur, prev accumulator, n int) []int {
	rel := make([]int, n)
	for i := 0; i < n; i++ {
		rel[i] = cur[i] - prev[i]
	}
	return rel
}

// encodeSegment renders a relative tuple as a VLQ run.
func encodeSegment(rel []int) string {
	var b strings.Builder
	for _, d := range rel {
		b.WriteString(vlq.Encode(d))
	}
	return b.String()
}
