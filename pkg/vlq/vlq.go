// Package vlq implements the base64 VLQ integer encoding used in the
// "mappings" field of source map v3 documents.
//
// Each base64 character carries a 6-bit group: 5 payload bits plus a
// continuation flag (0x20). The integer's sign is folded into bit 0 of the
// first group (1 = negative), so this is sign-in-low-bit VLQ, not
// two's-complement VLQ.
package vlq

import "fmt"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const (
	continuationBit = 1 << 5
	payloadMask     = continuationBit - 1
)

// reverse maps a base64 character back to its 6-bit value; -1 for
// characters outside the alphabet.
var reverse = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = int8(i)
	}
	return table
}()

// MalformedError reports an invalid VLQ token: a character outside the
// base64 alphabet, an empty token, or a truncated continuation chain.
type MalformedError struct {
	Token  string
	Offset int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed vlq %q at offset %d: %s", e.Token, e.Offset, e.Reason)
}

// Encode returns the base64 VLQ encoding of n. Zero (and negative zero,
// which Go integers cannot express separately) encodes to exactly one
// character.
func Encode(n int) string {
	value := n << 1
	if n < 0 {
		value = (-n << 1) | 1
	}

	// Single-group values dominate real mappings strings.
	out := make([]byte, 0, 2)
	for {
		group := value & payloadMask
		value >>= 5
		if value > 0 {
			group |= continuationBit
		}
		out = append(out, alphabet[group])
		if value == 0 {
			return string(out)
		}
	}
}

// Decode reads one VLQ integer from the start of s, returning the decoded
// value and the number of characters consumed. Trailing characters beyond
// the first complete continuation chain are left for the caller.
func Decode(s string) (value, width int, err error) {
	if s == "" {
		return 0, 0, &MalformedError{Token: s, Offset: 0, Reason: "empty token"}
	}

	shift := uint(0)
	for i := 0; i < len(s); i++ {
		group := reverse[s[i]]
		if group < 0 {
			return 0, 0, &MalformedError{Token: s, Offset: i, Reason: fmt.Sprintf("character %q outside base64 alphabet", s[i])}
		}
		value |= int(group&payloadMask) << shift
		if group&continuationBit == 0 {
			width = i + 1
			if value&1 != 0 {
				return -(value >> 1), width, nil
			}
			return value >> 1, width, nil
		}
		shift += 5
	}

	return 0, 0, &MalformedError{Token: s, Offset: len(s) - 1, Reason: "truncated continuation chain"}
}
