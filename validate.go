// The concrete "host validator" referenced only opaquely by spec.md
// (§4.5, §4.9, Design Notes). skipOne drives any StateMachine
// byte-by-byte over a value it has already located with the fast skip;
// this file supplies a real one, backed by bytedance/sonic's own
// validity check, for callers who want the validating path to mean
// something stronger than NewNoopStateMachine.
package jsn

import (
	"github.com/bytedance/sonic"
)

// sonicValidator buffers every byte fed to it via Step and runs
// sonic.Valid over the accumulated buffer once Done is called. This
// trades streaming validation for simplicity: spec.md's non-goals
// already rule out streaming, and the full value is always addressable
// in src once skipOneFast has located its end, so there's no benefit to
// validating incrementally rather than once, at Done.
type sonicValidator struct {
	buf []byte
}

// NewSonicValidator returns a StateMachine that considers a value valid
// iff bytedance/sonic's own parser accepts it — a second, independent
// JSON engine checking the fast skip's work.
func NewSonicValidator() StateMachine {
	return &sonicValidator{}
}

func (v *sonicValidator) Reset() {
	v.buf = v.buf[:0]
}

func (v *sonicValidator) Step(b byte) error {
	v.buf = append(v.buf, b)
	return nil
}

func (v *sonicValidator) Done() (bool, error) {
	return sonic.Valid(v.buf), nil
}
