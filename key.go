package jsn

// matchKey is entered with *p one byte past the opening quote of a
// candidate object key. It scans the key to its closing quote and
// compares it against target, leaving *p one past the closing quote
// regardless of the outcome. It returns true on equality, false on
// inequality, and an error on a malformed key string.
//
// A key containing escapes is decoded before comparison, so a key that
// decodes to target matches even if its raw encoding differs (e.g. an
// escaped slash).
func matchKey(src []byte, p *int, target string) (bool, error) {
	start, esc, err := skipStringEscaped(src, p)
	if err != nil {
		return false, err
	}
	raw := src[start+1 : *p-1]
	if !esc {
		return string(raw) == target, nil
	}
	decoded, err := decodeEscapedString(raw)
	if err != nil {
		return false, err
	}
	return decoded == target, nil
}
