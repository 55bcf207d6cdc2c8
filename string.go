package decalpha

import (
	"fmt"
	"io"
	"strconv"
)

// AppendText appends v's textual rendering to buf and returns the
// extended buffer, avoiding an intermediate allocation in the hot
// path the way the teacher's own byte-buffer renderer does. The form
// is fixed by §6: a leading "-" for a set sign bit, then "inf", "NaN",
// or "<significand>E<unbiased exponent>".
func (v Value) AppendText(buf []byte) []byte {
	sign, m := split(v)
	if sign != 0 {
		buf = append(buf, '-')
	}
	switch Classify(m) {
	case ClassNaN:
		return append(buf, "NaN"...)
	case ClassInfinity:
		return append(buf, "inf"...)
	default:
		exp, sig := Decode(m)
		buf = strconv.AppendUint(buf, sig, 10)
		buf = append(buf, 'E')
		return strconv.AppendInt(buf, ExpMin+int64(exp), 10)
	}
}

// String renders v in the one textual form specified for seed tests
// (§6). It is not a parseable wire format.
func (v Value) String() string {
	return string(v.AppendText(nil))
}

// Format implements fmt.Formatter. Every verb falls back to String,
// the same way the teacher's Decimal.Format treats an unrecognized
// verb, since §6 specifies exactly one textual form.
func (v Value) Format(f fmt.State, verb rune) {
	io.WriteString(f, v.String())
}
