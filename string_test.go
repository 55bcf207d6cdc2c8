package decalpha

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringFinite(t *testing.T) {
	one := MustFromIntegerAndBiasedExp(1, 140)
	assert.Equal(t, "10000000000000000E-16", one.String())

	two := Add(one, one)
	assert.Equal(t, "20000000000000000E-16", two.String())

	negOne := one.Neg()
	assert.Equal(t, "-10000000000000000E-16", negOne.String())
}

func TestStringSubnormal(t *testing.T) {
	assert.Equal(t, "1E-140", Value(1).String())
	assert.Equal(t, "0E-140", PosZero.String())
	assert.Equal(t, "-0E-140", PosZero.Neg().String())
	assert.Equal(t, "4003199668773774E-140", Value(DecadeLo-1).String())
}

func TestStringInfinity(t *testing.T) {
	assert.Equal(t, "inf", Infinity.String())
	assert.Equal(t, "-inf", Infinity.Neg().String())
}

func TestStringNaN(t *testing.T) {
	assert.Equal(t, "NaN", NaN.String())
}

func TestAppendTextPrefixPreserved(t *testing.T) {
	buf := []byte("x=")
	buf = Infinity.AppendText(buf)
	assert.Equal(t, "x=inf", string(buf))
}

func TestFormatFallsBackToString(t *testing.T) {
	// Value.Format ignores the verb entirely and always writes
	// String(), the same way the teacher's Decimal.Format falls back
	// for any verb it doesn't specifically handle.
	one := MustFromIntegerAndBiasedExp(1, 140)
	for _, verb := range []string{"%v", "%s", "%d", "%q"} {
		got := fmt.Sprintf(verb, one)
		assert.Equal(t, one.String(), got, "verb %s", verb)
	}
}
