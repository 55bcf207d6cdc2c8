package decalpha

// Encode assembles a biased exponent and a significand into a
// magnitude word (§4.2). Callers are responsible for checking exp
// against ExpInfNaN first; Encode itself performs no overflow check,
// matching the normalizer's own division of labor between scaling and
// encoding.
//
// sig - DecadeLo is computed in unsigned arithmetic and relies on its
// well-defined wraparound modulo 2^64 when sig < DecadeLo (exp == 0):
// that wraparound is exactly what reproduces the subnormal magnitude
// sig unchanged. See §9, "the miracle subnormal encoding".
func Encode(exp uint64, sig uint64) uint64 {
	return DecadeLo + (sig - DecadeLo) + (exp << ExpShift)
}
