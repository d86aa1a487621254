// Materializing a resolved span into a typed Go value. GetByPath and
// ParseLazy deliberately stop at locating/tokenizing bytes (spec.md's
// "no numeric conversion, no full DOM" contract); Decode is the
// opt-in bridge from there to a real Go value, for callers who've
// already paid the cost of descending to the value they want.
package jsn

import (
	json "github.com/goccy/go-json"
)

// Decode unmarshals raw — typically a Node's JSON field, or the span
// src[off:off+length] you've derived from a Token — into dst, using
// goccy/go-json as an encoding/json-compatible drop-in.
func Decode(dst any, raw []byte) error {
	return json.Unmarshal(raw, dst)
}

// SpanOf returns the raw byte span a Token describes, given the same
// src the token's offsets were computed against.
func SpanOf(src []byte, t Token) []byte {
	return src[t.Off : t.Off+t.Len]
}
