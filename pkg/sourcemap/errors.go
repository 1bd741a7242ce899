package sourcemap

import "fmt"

// MalformedMappingError reports a mappings segment that could not be
// decoded: an invalid VLQ run, a field count other than 4 or 5, or a
// negative absolute coordinate. Line and Segment locate the offending
// token in the generated output (both 0-based).
type MalformedMappingError struct {
	Line    int
	Segment int
	Reason  string
	Err     error
}

func (e *MalformedMappingError) Error() string {
	return fmt.Sprintf("malformed mapping at generated line %d, segment %d: %s", e.Line, e.Segment, e.Reason)
}

func (e *MalformedMappingError) Unwrap() error {
	return e.Err
}

// IndexOutOfRangeError reports a decoded source or name index that falls
// outside the supplied sources/names table.
type IndexOutOfRangeError struct {
	Kind   string // "source" or "name"
	Index  int
	Length int
	Line   int // generated line of the offending segment
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range (table has %d entries) at generated line %d", e.Kind, e.Index, e.Length, e.Line)
}

// InvalidPositionError reports an encode precondition violation, raised
// before any output is assembled.
type InvalidPositionError struct {
	Source string
	Line   int
	Col    int
	Reason string
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position %s:%d:%d: %s", e.Source, e.Line, e.Col, e.Reason)
}
