package jsn

// StateMachine is the opaque contract a validating skip drives over every
// byte of a value. The lazy scanner only ever uses it through this
// interface — Reset before a fresh skip, Step once per consumed byte,
// Done once the fast skip has located the value's end, to ask whether
// everything fed to it formed a single valid JSON value.
//
// This package ships three implementations: NewNoopStateMachine (always
// valid, for callers who don't need the extra grammar check), in
// validate.go a bytedance/sonic-backed validator, and in materialize.go
// NewStrictScanner, a dependency-free validator.
type StateMachine interface {
	Reset()
	Step(b byte) error
	Done() (bool, error)
}

type noopStateMachine struct{}

// NewNoopStateMachine returns a StateMachine that accepts any byte
// sequence. It exists so skipOne's validating path can always be driven
// through the same interface, even when the caller has no grammar check
// to add beyond what skipOneFast already does.
func NewNoopStateMachine() StateMachine { return noopStateMachine{} }

func (noopStateMachine) Reset()              {}
func (noopStateMachine) Step(byte) error     { return nil }
func (noopStateMachine) Done() (bool, error) { return true, nil }

// skipOneFast dispatches on the first non-whitespace byte to the
// appropriate sub-skipper and advances *p past the value. It trusts
// bracket and quote balance; it does not validate nested grammar beyond
// what the sub-skippers already check. It returns the start offset of
// the value.
func skipOneFast(src []byte, p *int) (start int, err error) {
	c := advanceNS(src, p)
	switch {
	case c == 0:
		return *p, ErrUnexpectedEOF
	case c == '"':
		start, _, err = skipStringEscaped(src, p)
		return start, err
	case c == '{':
		return skipContainerFast(src, p, '{', '}')
	case c == '[':
		return skipContainerFast(src, p, '[', ']')
	case c == 't':
		start = *p - 1
		if err = matchLiteralTail(src, p, "rue"); err != nil {
			return start, err
		}
		return start, nil
	case c == 'f':
		start = *p - 1
		if err = matchLiteralTail(src, p, "alse"); err != nil {
			return start, err
		}
		return start, nil
	case c == 'n':
		start = *p - 1
		if err = matchLiteralTail(src, p, "ull"); err != nil {
			return start, err
		}
		return start, nil
	case c == '-' || (c >= '0' && c <= '9'):
		return skipNumberFast(src, p)
	default:
		*p--
		return *p, ErrUnexpectedToken
	}
}

// skipOne is the validating counterpart to skipOneFast: it performs the
// identical fast skip to find the value's extent, then replays every
// consumed byte through sm so a malformed sibling is caught even though
// skipOneFast's own checks are lax (numbers) or absent (nested grammar
// the sub-skippers don't themselves enforce).
func skipOne(src []byte, p *int, sm StateMachine) (start int, err error) {
	entry := *p
	start, err = skipOneFast(src, p)
	if err != nil {
		return start, err
	}
	sm.Reset()
	for i := entry; i < *p; i++ {
		if stepErr := sm.Step(src[i]); stepErr != nil {
			*p = i
			return start, stepErr
		}
	}
	ok, verr := sm.Done()
	if verr != nil {
		*p--
		return start, verr
	}
	if !ok {
		*p--
		return start, ErrUnexpectedToken
	}
	return start, nil
}
