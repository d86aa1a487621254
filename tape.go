package jsn

// Kind is the type tag carried by every Token and every Node.
type Kind uint8

const (
	KindNull   Kind = 2
	KindTrue   Kind = 3
	KindFalse  Kind = 4
	KindArray  Kind = 5
	KindObject Kind = 6
	KindString Kind = 7
	KindNumber Kind = 8
)

// TokenFlag is a bitfield carried by Token and Node.
type TokenFlag uint16

// FlagEsc (bit 0) means the raw span of a STRING token contains at
// least one backslash escape. It is conservative: set implies at least
// one escape, clear implies none (spec.md invariant 4).
const FlagEsc TokenFlag = 1 << 0

// Token describes a single structural child produced by ParseLazy: its
// kind, escape flag, and the byte offset/length of its raw span in the
// original source. For strings the span begins at the opening quote;
// for containers, at the opening bracket.
type Token struct {
	Kind Kind
	Flag TokenFlag
	Off  uint32
	Len  uint32
}

// Node is the result of ParseLazy: the parsed value's kind, its raw
// byte span (JSON), and — for container kinds — a tape of its
// structural children. Tape is caller-allocated; its capacity bounds
// how many children a single call can emit before ParseLazy reports
// ErrMustRetry. For scalar kinds Tape is left empty.
//
// For an OBJECT, Tape holds keys and values interleaved: even indices
// are STRING keys, odd indices are the corresponding values, and
// len(Tape) is always even (spec.md invariant 3, testable property P3).
type Node struct {
	Kind Kind
	Flag TokenFlag
	JSON []byte
	Tape []Token
}

// parseScalar is entered with *p pointing at the dispatch byte of a
// non-container value (literal, number, or string). It writes Kind and
// Flag directly into node and sets node.JSON to the literal's span. It
// does not touch node.Tape.
func parseScalar(src []byte, p *int, node *Node) (int, error) {
	i := *p
	if i >= len(src) {
		return 0, ErrUnexpectedEOF
	}
	start := i

	switch c := src[i]; {
	case c == 't':
		*p = i + 1
		if err := matchLiteralTail(src, p, "rue"); err != nil {
			return 0, err
		}
		node.Kind = KindTrue
	case c == 'f':
		*p = i + 1
		if err := matchLiteralTail(src, p, "alse"); err != nil {
			return 0, err
		}
		node.Kind = KindFalse
	case c == 'n':
		*p = i + 1
		if err := matchLiteralTail(src, p, "ull"); err != nil {
			return 0, err
		}
		node.Kind = KindNull
	case c == '-' || (c >= '0' && c <= '9'):
		*p = i + 1
		if _, err := skipNumberStrict(src, p); err != nil {
			return 0, err
		}
		node.Kind = KindNumber
	case c == '"':
		*p = i + 1
		_, esc, err := skipStringEscaped(src, p)
		if err != nil {
			return 0, err
		}
		node.Kind = KindString
		if esc {
			node.Flag |= FlagEsc
		}
	default:
		return 0, ErrUnexpectedToken
	}

	node.JSON = src[start:*p]
	return start, nil
}

// loadLazy is invoked once the path has been exhausted. It reads the
// first non-whitespace byte at *p: for a scalar it delegates to
// parseScalar; for a container it tokenizes exactly one structural
// level into node.Tape, leaving nested values as raw spans.
func loadLazy(src []byte, p *int, node *Node) (int, error) {
	c := advanceNS(src, p)
	if c == 0 {
		return 0, ErrUnexpectedEOF
	}
	s := *p - 1

	if c != '{' && c != '[' {
		*p--
		node.Tape = node.Tape[:0]
		return parseScalar(src, p, node)
	}

	isObj := c == '{'
	if isObj {
		node.Kind = KindObject
	} else {
		node.Kind = KindArray
	}

	kcnt := 0
	lastIsKey := false

	for {
		c = advanceNS(src, p)
		if c == 0 {
			return 0, ErrUnexpectedEOF
		}
		i := *p

		// Only a value-starting byte consumes a tape slot; ':', ',' and
		// the closing bracket are structural and must not be charged
		// against capacity, or a tape sized exactly to the child count
		// would spuriously MUST_RETRY on the byte that closes it.
		startsValue := c == 't' || c == 'f' || c == 'n' || c == '"' || c == '{' || c == '[' ||
			c == '-' || (c >= '0' && c <= '9')
		if startsValue && kcnt == len(node.Tape) {
			return 0, ErrMustRetry
		}
		var tok *Token
		if startsValue {
			tok = &node.Tape[kcnt]
		}
		advanced := false

		switch {
		case c == 't':
			if err := matchLiteralTail(src, p, "rue"); err != nil {
				return 0, err
			}
			*tok = Token{Kind: KindTrue, Off: uint32(i - 1), Len: 4}
		case c == 'f':
			if err := matchLiteralTail(src, p, "alse"); err != nil {
				return 0, err
			}
			*tok = Token{Kind: KindFalse, Off: uint32(i - 1), Len: 5}
		case c == 'n':
			if err := matchLiteralTail(src, p, "ull"); err != nil {
				return 0, err
			}
			*tok = Token{Kind: KindNull, Off: uint32(i - 1), Len: 4}
		case c == '-' || (c >= '0' && c <= '9'):
			start, err := skipNumberFast(src, p)
			if err != nil {
				return 0, err
			}
			*tok = Token{Kind: KindNumber, Off: uint32(start), Len: uint32(*p - start)}
		case c == '"':
			start, esc, err := skipStringEscaped(src, p)
			if err != nil {
				return 0, err
			}
			flag := TokenFlag(0)
			if esc {
				flag = FlagEsc
			}
			*tok = Token{Kind: KindString, Flag: flag, Off: uint32(start), Len: uint32(*p - start)}
		case c == '{':
			start, err := skipContainerFast(src, p, '{', '}')
			if err != nil {
				return 0, err
			}
			*tok = Token{Kind: KindObject, Off: uint32(start), Len: uint32(*p - start)}
		case c == '[':
			start, err := skipContainerFast(src, p, '[', ']')
			if err != nil {
				return 0, err
			}
			*tok = Token{Kind: KindArray, Off: uint32(start), Len: uint32(*p - start)}
		case c == ':':
			if isObj && lastIsKey {
				advanced = true
				break
			}
			*p--
			return 0, ErrUnexpectedToken
		case c == ',':
			if !isObj {
				advanced = true
				break
			}
			if !lastIsKey {
				advanced = true
				break
			}
			*p--
			return 0, ErrUnexpectedToken
		case c == '}' || c == ']':
			if lastIsKey {
				// an object key with no value before the close
				*p--
				return 0, ErrUnexpectedToken
			}
			node.Tape = node.Tape[:kcnt]
			node.JSON = src[s:*p]
			return s, nil
		default:
			*p--
			return 0, ErrUnexpectedToken
		}

		if advanced {
			continue
		}
		kcnt++
		if isObj {
			lastIsKey = !lastIsKey
		}
	}
}

// ParseLazy descends path exactly as GetByPath does, then tokenizes one
// structural level at the destination into node.Tape (or, for a scalar
// destination, fills node directly with no tape entries). An empty or
// nil path parses the value starting at *p.
//
// If node.Tape is too small to hold every structural child of the
// destination, ParseLazy returns ErrMustRetry and leaves *p rewound to
// the position it started the destination parse from, so the caller
// can grow node.Tape and call again — or use ParseLazyGrow, which does
// this automatically.
func ParseLazy(src []byte, p *int, node *Node, path []PathStep) (int, error) {
	if len(path) == 0 {
		entry := *p
		r, err := loadLazy(src, p, node)
		if err == ErrMustRetry {
			*p = entry
		}
		return r, err
	}

	ps := 0
	state := stateQuery
	var arrIndex int64

	for {
		switch state {
		case stateQuery:
			if ps == len(path) {
				entry := *p
				r, err := loadLazy(src, p, node)
				if err != nil {
					if err == ErrMustRetry {
						*p = entry
					}
					return 0, err
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

		case stateSkipInArr:
			c := advanceNS(src, p)
			if c == ']' {
				*p--
				return 0, ErrNotFound
			}
			*p--

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
			ps++
			state = stateQuery
		}
	}
}

// ParseLazyGrow retries ParseLazy, growing node.Tape via grow whenever
// ParseLazy reports ErrMustRetry, until it either succeeds or fails for
// a reason other than capacity. grow receives the current capacity and
// returns the next one to try; it must return a value larger than its
// input or ParseLazyGrow returns ErrMustRetry itself rather than loop
// forever.
func ParseLazyGrow(src []byte, p *int, node *Node, path []PathStep, grow func(oldCap int) int) (int, error) {
	entry := *p
	for {
		*p = entry
		r, err := ParseLazy(src, p, node, path)
		if err != ErrMustRetry {
			return r, err
		}
		oldCap := cap(node.Tape)
		newCap := grow(oldCap)
		if newCap <= oldCap {
			return 0, ErrMustRetry
		}
		node.Tape = make([]Token, newCap)
	}
}
