package decalpha

// Bit layout and decade bounds for the DEC alpha format: a 64-bit word
// with the sign in bit 63 and a decimal significand/exponent pair
// packed into the remaining 63 bits, ordered so that unsigned integer
// comparison matches real-number comparison for non-negative finite
// values.
const (
	// DecadeLo is the smallest normal significand. It is odd.
	DecadeLo = 4_003_199_668_773_775
	// DecadeHi is the largest normal significand, DecadeLo*10-8. It is even.
	DecadeHi = 40_031_996_687_737_742

	// ExpShift is the bit position where the biased exponent begins.
	ExpShift = 55
	// SDMask isolates the significand offset within a decade.
	SDMask = (1 << ExpShift) - 1
	// SignMask isolates the sign bit.
	SignMask = 1 << 63

	// ExpMin is the unbiased exponent corresponding to biased exponent 0.
	ExpMin = -140
	// ExpInfNaN is the biased exponent reserved for infinities and NaNs.
	ExpInfNaN = 255
)

// InfinityMagnitude is the low-63-bit magnitude of positive infinity:
// biased exponent ExpInfNaN, significand offset zero.
const InfinityMagnitude = DecadeLo + (ExpInfNaN << ExpShift)

// powers holds 10^0 .. 10^16, the only shared read-only state the
// arithmetic core needs (§5): decade-difference shifts in the additive
// core and subnormal divisors in the multiplicative core never need
// more than 16 places.
var powers = [17]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
}
