package jsn

// pathState is the path descender's finite state machine, encoded
// explicitly per spec.md's design notes rather than as goto-driven
// control flow.
type pathState int

const (
	stateQuery pathState = iota
	stateSkipInObj
	stateSkipInArr
)

// GetByPath advances *p to the byte position of the value named by path
// (a sequence of string-key and non-negative-integer-index steps),
// without materializing anything along the way. If sm is non-nil, the
// final value is skipped through the validating path (skipOne); if sm is
// nil, the faster, grammar-lax skipOneFast is used instead.
//
// With FlagLastKey set, a successful resolution returns the offset of
// the opening quote of the last object key actually matched on the path
// to the result, rather than the value's own offset; if the final step
// is an array index, that offset is the resolved element's first byte
// instead (spec.md §4.7, Open Question 2: lastKey is recaptured only on
// a matching key, never on a miss).
//
// On any error the cursor is left at the offending byte (or the EOF
// position), and a negative-in-spirit sentinel error is returned; *p is
// never left past the byte that triggered the failure.
func GetByPath(src []byte, p *int, path []PathStep, sm StateMachine, flags Flags) (int, error) {
	ps := 0
	lastKey := 0
	state := stateQuery
	var arrIndex int64

	for {
		switch state {
		case stateQuery:
			if ps == len(path) {
				var (
					r   int
					err error
				)
				if sm == nil {
					r, err = skipOneFast(src, p)
				} else {
					r, err = skipOne(src, p, sm)
				}
				if err != nil {
					return 0, err
				}
				if flags&FlagLastKey != 0 {
					return lastKey, nil
				}
				return r, nil
			}

			step := path[ps]
			c := advanceNS(src, p)
			if _, ok := stepString(step); ok {
				if c != '{' {
					*p--
					return 0, ErrUnsupportedType
				}
				state = stateSkipInObj
				continue
			}
			if idx, ok := stepInt(step); ok {
				if c != '[' {
					*p--
					return 0, ErrUnsupportedType
				}
				if idx < 0 {
					*p--
					return 0, ErrUnsupportedType
				}
				arrIndex = idx
				state = stateSkipInArr
				continue
			}
			*p--
			return 0, ErrUnsupportedType

		case stateSkipInObj:
			target, _ := stepString(path[ps])
			c := advanceNS(src, p)
			if c == '}' {
				*p--
				return 0, ErrNotFound
			}
			if c != '"' {
				*p--
				return 0, ErrUnexpectedToken
			}
			keyStart := *p - 1

			found, err := matchKey(src, p, target)
			if err != nil {
				return 0, err
			}

			c = advanceNS(src, p)
			if c != ':' {
				*p--
				return 0, ErrUnexpectedToken
			}
			if found {
				lastKey = keyStart
				ps++
				state = stateQuery
				continue
			}

			if _, err := skipOneFast(src, p); err != nil {
				return 0, err
			}
			c = advanceNS(src, p)
			if c == '}' {
				*p--
				return 0, ErrNotFound
			}
			if c != ',' {
				*p--
				return 0, ErrUnexpectedToken
			}
			// stay in stateSkipInObj for the next candidate key

		case stateSkipInArr:
			c := advanceNS(src, p)
			if c == ']' {
				*p--
				return 0, ErrNotFound
			}
			*p-- // rewind so the element scanner sees its first byte

			for arrIndex > 0 {
				arrIndex--
				if _, err := skipOneFast(src, p); err != nil {
					return 0, err
				}
				c = advanceNS(src, p)
				if c == ']' {
					*p--
					return 0, ErrNotFound
				}
				if c != ',' {
					*p--
					return 0, ErrUnexpectedToken
				}
			}
			// the element's first byte, past any whitespace after ','
			q := *p
			advanceNS(src, &q)
			lastKey = q - 1
			ps++
			state = stateQuery
		}
	}
}
