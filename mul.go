package decalpha

import "math/bits"

// decadeLoE17 is DecadeLo * 10^17 as a 128-bit value (hi:lo), the
// threshold a raw 128-bit product must reach before it sits in the
// canonical decade that a 17-digit division can round from.
var decadeLoE17Hi, decadeLoE17Lo = bits.Mul64(DecadeLo, 100_000_000_000_000_000)

// mulMagnitudes multiplies two non-negative finite magnitudes (§4.6),
// rounding the product to a normal, subnormal, or zero result. sd is
// the 17-digit quotient of the renormalized product and rem the
// discarded remainder. A subnormal result rounds to nearest; on an
// exact tie it rounds up when rem is non-zero or sd (not the subnormal
// result) is odd. A normal sd above DecadeHi+4, or equal to it with a
// non-zero rem, carries to DecadeLo at the next exponent; any other sd
// from DecadeHi-5 up to DecadeHi+4 becomes DecadeHi whatever rem is;
// below that, sd rounds half-to-even on rem.
//
// This is the one component where SPEC_FULL.md's corrected behavior
// diverges from the original: the source this is grounded on drops
// subnormal products on the floor ("ignore subnormal results for
// now" / "if (exp<=0) return 0; // FIXME"); the subnormal branch below
// implements the fix instead of that bug.
func mulMagnitudes(xm, ym uint64) uint64 {
	xexp, xsd := Decode(xm)
	yexp, ysd := Decode(ym)

	exp := int64(xexp) + int64(yexp) - 123
	hi, lo := bits.Mul64(xsd, ysd)
	if hi == 0 && lo == 0 {
		return 0
	}

	for less128(hi, lo, decadeLoE17Hi, decadeLoE17Lo) {
		hi, lo = mul128By10(hi, lo)
		exp--
	}

	sd, rem := bits.Div64(hi, lo, 100_000_000_000_000_000)

	if exp < 0 {
		if exp < -16 {
			return 0
		}
		p := powers[-exp]
		rsd := sd / p
		rrem := sd % p
		half := p >> 1
		extra := rem != 0
		if rrem > half || (rrem == half && (extra || sd&1 != 0)) {
			rsd++
		}
		return rsd
	}

	switch {
	case sd > DecadeHi+4 || (sd == DecadeHi+4 && rem > 0):
		exp++
		sd = DecadeLo
	case sd >= DecadeHi-5:
		sd = DecadeHi
	default:
		if rem > 50_000_000_000_000_000 || (rem == 50_000_000_000_000_000 && sd&1 != 0) {
			sd++
		}
	}

	if exp >= ExpInfNaN {
		return InfinityMagnitude
	}
	return Encode(uint64(exp), sd)
}

func less128(h1, l1, h2, l2 uint64) bool {
	if h1 != h2 {
		return h1 < h2
	}
	return l1 < l2
}

// mul128By10 multiplies a 128-bit value by 10. Safe against overflow
// for every value this package ever passes it: the renormalization
// loop above stops as soon as the product clears decadeLoE17, which is
// far below the 2^128 ceiling.
func mul128By10(hi, lo uint64) (uint64, uint64) {
	hi10, lo10 := bits.Mul64(lo, 10)
	hi = hi*10 + hi10
	return hi, lo10
}
