package jsn

// PathStep is one element of a path passed to GetByPath or ParseLazy.
// The only recognized dynamic types are string (an object key) and int,
// int32 or int64 (an array index; negative values are rejected).
// Any other dynamic type yields ErrUnsupportedType.
type PathStep = any

// Flags controls optional behavior of GetByPath.
type Flags uint64

// FlagLastKey requests that, on a successful path resolution, GetByPath
// return the offset of the opening quote of the last matched object key
// (the key whose value is the final result) instead of the value's own
// offset. Bit 1 matches spec.md's MASK_GET_LAST_KEY numbering; bit 0 is
// reserved and unused.
const FlagLastKey Flags = 1 << 1

// stepInt returns (index, true) if step is an int, int32 or int64 path
// step; other integer types are not recognized.
func stepInt(step PathStep) (int64, bool) {
	switch v := step.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	default:
		return 0, false
	}
}

func stepString(step PathStep) (string, bool) {
	s, ok := step.(string)
	return s, ok
}
