package decalpha

import (
	"errors"
	"fmt"
)

// Value is a DEC alpha word.
type Value uint64

// Sentinel values, per §6.
const (
	PosZero  Value = 0
	Infinity Value = InfinityMagnitude
	NaN      Value = InfinityMagnitude + 1
)

var errExponentRange = errors.New("decalpha: biased exponent out of range")

// FromIntegerAndBiasedExp returns the closest Value to i *
// 10^(exp-140). exp must be in [0, 0x7FFF_FFF0].
func FromIntegerAndBiasedExp(i uint64, exp int64) (Value, error) {
	if exp < 0 || exp > 0x7FFF_FFF0 {
		return 0, fmt.Errorf("%w: exp=%d", errExponentRange, exp)
	}
	return Value(Normalize(i, uint64(exp), false)), nil
}

// MustFromIntegerAndBiasedExp is like FromIntegerAndBiasedExp but
// panics instead of returning an error.
func MustFromIntegerAndBiasedExp(i uint64, exp int64) Value {
	v, err := FromIntegerAndBiasedExp(i, exp)
	if err != nil {
		panic(fmt.Sprintf("MustFromIntegerAndBiasedExp(%d, %d) failed: %v", i, exp, err))
	}
	return v
}

func split(v Value) (sign uint64, mag uint64) {
	u := uint64(v)
	return u & SignMask, u &^ SignMask
}

// Neg flips the sign bit, leaving the magnitude (including any NaN
// payload) untouched.
func (v Value) Neg() Value {
	return v ^ SignMask
}

// Sign reports whether v's sign bit is set.
func (v Value) Sign() bool {
	return uint64(v)&SignMask != 0
}

// Class reports v's classification.
func (v Value) Class() Class {
	_, m := split(v)
	return Classify(m)
}

// Add implements §4.7's addition dispatch: NaN propagation, infinity
// handling, same-sign addition via the additive core, and
// opposite-sign addition via the subtractive core.
func Add(x, y Value) Value {
	xs, xm := split(x)
	ys, ym := split(y)

	if Classify(xm) == ClassNaN {
		return x
	}
	if Classify(ym) == ClassNaN {
		return y
	}

	xInf := Classify(xm) == ClassInfinity
	yInf := Classify(ym) == ClassInfinity
	if xInf || yInf {
		switch {
		case xInf && yInf:
			if xs == ys {
				return x
			}
			return NaN
		case xInf:
			return x
		default:
			return y
		}
	}

	if xs == ys {
		return Value(xs | addMagnitudes(xm, ym))
	}
	if xm == ym {
		// Opposite signs, equal magnitude: the result is zero
		// regardless of which operand is x or y, so pick a canonical
		// sign instead of keying off argument order (commutativity,
		// spec.md §8 invariant 4).
		return PosZero
	}
	if xm >= ym {
		return Value(xs | subMagnitudes(xm, ym))
	}
	return Value(ys | subMagnitudes(ym, xm))
}

// Sub returns x - y: addition with y negated, per §4.7.
func Sub(x, y Value) Value {
	return Add(x, y.Neg())
}

// Mul implements §4.6/§4.7's multiplication dispatch: NaN propagation,
// infinity-times-zero is NaN, infinity-times-finite is signed
// infinity, and otherwise the multiplicative core with the sign set to
// the XOR of the operand signs — applied unconditionally, including
// to a zero result, so (-0)*(+3) is -0 (see DESIGN.md, Open Questions).
func Mul(x, y Value) Value {
	xs, xm := split(x)
	ys, ym := split(y)
	sign := xs ^ ys

	if Classify(xm) == ClassNaN {
		return x
	}
	if Classify(ym) == ClassNaN {
		return y
	}

	xInf := Classify(xm) == ClassInfinity
	yInf := Classify(ym) == ClassInfinity
	if xInf || yInf {
		if xm == 0 || ym == 0 {
			return NaN
		}
		return Value(sign | InfinityMagnitude)
	}

	return Value(sign | mulMagnitudes(xm, ym))
}

// Pred returns the value one ULP below x, defined only for
// non-negative finite x (§4.7).
func Pred(x Value) Value {
	return x - 1
}

// Succ returns the value one ULP above x, defined only for
// non-negative finite x (§4.7).
func Succ(x Value) Value {
	return x + 1
}
