package decalpha

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegInvolution(t *testing.T) {
	cases := []Value{
		PosZero,
		PosZero.Neg(),
		MustFromIntegerAndBiasedExp(1, 140),
		MustFromIntegerAndBiasedExp(1, 140).Neg(),
		Infinity,
		Infinity.Neg(),
	}
	for _, v := range cases {
		assert.Equal(t, v, v.Neg().Neg())
	}
}

func TestNegInvolutionNaN(t *testing.T) {
	// NaN bit patterns round-trip through Neg unchanged (spec.md §8
	// invariant 3 explicitly excepts NaN from the general rule, but
	// Neg only ever flips the sign bit, so the payload still survives
	// a double negation).
	assert.Equal(t, NaN, NaN.Neg().Neg())
}

func TestAddCommutativityOppositeSignEqualMagnitude(t *testing.T) {
	five := MustFromIntegerAndBiasedExp(5, 140)
	negFive := five.Neg()
	assert.Equal(t, Add(five, negFive), Add(negFive, five))
	assert.Equal(t, PosZero, Add(five, negFive))
	assert.Equal(t, PosZero, Add(negFive, five))
}

func TestPredSucc(t *testing.T) {
	one := MustFromIntegerAndBiasedExp(1, 140)
	assert.Equal(t, one, Pred(Succ(one)))
	assert.Equal(t, one, Succ(Pred(one)))
	assert.Equal(t, Value(uint64(one)-1), Pred(one))
	assert.Equal(t, Value(uint64(one)+1), Succ(one))
}

func TestPredSuccDecadeBoundary(t *testing.T) {
	assert.Equal(t, Value(DecadeLo-1), Pred(Value(DecadeLo)))
	assert.Equal(t, Value(DecadeLo), Succ(Value(DecadeLo-1)))
}

func TestFromIntegerAndBiasedExpRejectsOutOfRangeExp(t *testing.T) {
	_, err := FromIntegerAndBiasedExp(1, -1)
	assert.ErrorIs(t, err, errExponentRange)

	_, err = FromIntegerAndBiasedExp(1, 0x7FFF_FFF0+1)
	assert.ErrorIs(t, err, errExponentRange)
}

func TestFromIntegerAndBiasedExpAcceptsBoundaryExp(t *testing.T) {
	_, err := FromIntegerAndBiasedExp(1, 0)
	assert.NoError(t, err)

	_, err = FromIntegerAndBiasedExp(1, 0x7FFF_FFF0)
	assert.NoError(t, err)
}

func TestMustFromIntegerAndBiasedExpPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustFromIntegerAndBiasedExp(1, -1)
	})
}
