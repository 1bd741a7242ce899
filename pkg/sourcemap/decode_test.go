package sourcemap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcmap-dev/srcmap/pkg/vlq"
)

// twoLineMappings maps two generated lines, each with one named and one
// nameless segment, across two sources:
//
//	line 0: (a.js 0:0 name "x") at col 0, (a.js 0:3) at col 5
//	line 1: (b.js 2:1) at col 1, (b.js 2:2 name "x") at col 4
const twoLineMappings = "AAAAA,KAAG;CCEF,GAACA"

var (
	twoLineSources = []string{"a.js", "b.js"}
	twoLineNames   = []string{"x"}
)

func TestDecodeTwoLineMap(t *testing.T) {
	idx, err := Decode(twoLineMappings, twoLineSources, twoLineNames)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.js", "b.js"}, idx.Sources())
	assert.Equal(t, 4, idx.Positions())

	assert.Equal(t, []GeneratedPosition{{Line: 0, Col: 0, Name: "x", Named: true}}, idx.At("a.js", 0, 0))
	assert.Equal(t, []GeneratedPosition{{Line: 0, Col: 5}}, idx.At("a.js", 0, 3))
	assert.Equal(t, []GeneratedPosition{{Line: 1, Col: 1}}, idx.At("b.js", 2, 1))
	assert.Equal(t, []GeneratedPosition{{Line: 1, Col: 4, Name: "x", Named: true}}, idx.At("b.js", 2, 2))
}

func TestDecodeRegistersUnmappedSources(t *testing.T) {
	idx, err := Decode("AAAA", []string{"a.js", "unused.js"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.js", "unused.js"}, idx.Sources())
	assert.Nil(t, idx.At("unused.js", 0, 0))
}

func TestDecodeBlankLinesAdvanceGeneratedLine(t *testing.T) {
	// Two empty groups before the only mapped line.
	idx, err := Decode(";;AAAA", []string{"a.js"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []GeneratedPosition{{Line: 2, Col: 0}}, idx.At("a.js", 0, 0))
}

func TestDecodeAppendsDuplicateOriginalPositions(t *testing.T) {
	// Both segments resolve to a.js 0:0 from different generated lines.
	idx, err := Decode("AAAA;AAAA", []string{"a.js"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []GeneratedPosition{{Line: 0, Col: 0}, {Line: 1, Col: 0}}, idx.At("a.js", 0, 0))
}

func TestDecodeColumnResetsPerLineOtherFieldsPersist(t *testing.T) {
	// Line 0 ends at a.js 4:2; line 1's segment is relative to that,
	// except its generated column restarts from 0.
	idx, err := Decode("GAIE;GACC", []string{"a.js"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []GeneratedPosition{{Line: 0, Col: 3}}, idx.At("a.js", 4, 2))
	assert.Equal(t, []GeneratedPosition{{Line: 1, Col: 3}}, idx.At("a.js", 5, 3))
}

func TestDecodeMalformedVlq(t *testing.T) {
	for _, mappings := range []string{"*", "AA*A", "g"} {
		_, err := Decode(mappings, []string{"a.js"}, nil)

		var mapping *MalformedMappingError
		require.ErrorAs(t, err, &mapping, "mappings %q", mappings)
		var malformed *vlq.MalformedError
		assert.ErrorAs(t, err, &malformed, "mappings %q", mappings)
	}
}

func TestDecodeWrongFieldCount(t *testing.T) {
	cases := map[string]string{
		"one field":    "A",
		"three fields": "AAA",
		"six fields":   "AAAAAA",
	}
	for name, mappings := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(mappings, []string{"a.js"}, nil)

			var mapping *MalformedMappingError
			require.ErrorAs(t, err, &mapping)
			assert.Equal(t, 0, mapping.Line)
			assert.Contains(t, mapping.Reason, "want 4 or 5")
		})
	}
}

func TestDecodeNegativeAbsolutePosition(t *testing.T) {
	// Original line delta -1 from a zero accumulator.
	_, err := Decode("AADA", []string{"a.js"}, nil)

	var mapping *MalformedMappingError
	require.ErrorAs(t, err, &mapping)
	assert.Contains(t, mapping.Reason, "negative absolute position")
}

func TestDecodeErrorCarriesGeneratedLine(t *testing.T) {
	_, err := Decode("AAAA;AAAA,AAA", []string{"a.js"}, nil)

	var mapping *MalformedMappingError
	require.ErrorAs(t, err, &mapping)
	assert.Equal(t, 1, mapping.Line)
	assert.Equal(t, 1, mapping.Segment)
}

func TestDecodeIndexOutOfRange(t *testing.T) {
	t.Run("source", func(t *testing.T) {
		_, err := Decode("ACAA", []string{"a.js"}, nil)

		var outOfRange *IndexOutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		assert.Equal(t, "source", outOfRange.Kind)
		assert.Equal(t, 1, outOfRange.Index)
		assert.Equal(t, 1, outOfRange.Length)
	})

	t.Run("name", func(t *testing.T) {
		_, err := Decode("AAAAA", []string{"a.js"}, nil)

		var outOfRange *IndexOutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		assert.Equal(t, "name", outOfRange.Kind)
		assert.Equal(t, 0, outOfRange.Index)
		assert.Equal(t, 0, outOfRange.Length)
	})
}

func TestDecodeDocumentRejectsWrongVersion(t *testing.T) {
	_, err := DecodeDocument(&Document{Version: 2, Mappings: "AAAA", Sources: []string{"a.js"}})
	require.ErrorContains(t, err, "unsupported source map version 2")
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"version":3,"file":"out.js","sources":["a.js"],"names":[],"mappings":"AAAA"}`))
	require.NoError(t, err)
	assert.Equal(t, "out.js", doc.File)
	assert.Equal(t, []string{"a.js"}, doc.Sources)

	_, err = ParseDocument([]byte(`{"version":1,"mappings":""}`))
	assert.ErrorContains(t, err, "unsupported source map version 1")

	_, err = ParseDocument([]byte(`{`))
	assert.ErrorContains(t, err, "failed to parse source map document")
}

func BenchmarkDecode(b *testing.B) {
	// Delta-neutral lines so the accumulator stays in bounds at any length.
	mappings := strings.TrimSuffix(strings.Repeat("AAAAA,KAAG;", 1000), ";")
	for i := 0; i < b.N; i++ {
		if _, err := Decode(mappings, twoLineSources, twoLineNames); err != nil {
			b.Fatal(err)
		}
	}
}
