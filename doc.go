// Package decalpha implements the DEC alpha decimal floating-point
// format: a 64-bit word holding a sign bit, a decimal biased exponent,
// and a 17-significant-digit significand, ordered so that unsigned
// integer comparison matches real-number comparison for non-negative
// finite values.
//
// # Internal Representation
//
// A [Value] is a plain, immutable, copyable 64-bit word. Bit 63 is the
// sign; the remaining 63 bits are a magnitude, classified by comparing
// it to DecadeLo: magnitudes below DecadeLo are subnormal or zero
// (value = magnitude * 10^ExpMin), magnitudes from DecadeLo up to the
// infinity sentinel are normal (value = significand *
// 10^(ExpMin+biased exponent)), the infinity sentinel itself is signed
// infinity, and every magnitude above it is NaN. [Decode] and [Encode]
// convert between a
// magnitude and its (biased exponent, significand) pair.
//
// # Rounding
//
// Addition, subtraction, and the constructor funnel their results
// through [Normalize], which rounds half-to-even except at the
// DecadeHi/DecadeLo(next exponent) boundary: because DecadeLo is odd
// and DecadeHi is even, "round to even" at that specific boundary keeps
// the tie at DecadeHi rather than carrying into the next decade. An
// accompanying "extra" flag lets the additive and subtractive cores
// tell the normalizer that non-zero digits were already discarded
// during alignment, upgrading an apparent tie into a forced round-up.
// Multiplication does not call [Normalize]: it rounds its 128-bit
// product itself, with its own rules at the DecadeHi edge and for
// subnormal results.
//
// # Scope
//
// This package is a pure, allocation-free arithmetic kernel: negation,
// addition, subtraction, multiplication, and the pred/succ ULP-
// stepping helpers. It does not parse strings, divide, or convert
// to/from IEEE binary floats; [Value.String] exists only to produce
// the one textual form used by the package's own tests and by the
// cmd/decalphademo smoke-test driver.
package decalpha
