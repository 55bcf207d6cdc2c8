package decalpha

// addMagnitudes adds two non-negative finite magnitudes (§4.4).
func addMagnitudes(x, y uint64) uint64 {
	l, s := x, y
	if s > l {
		l, s = s, l
	}
	lexp, lsd := Decode(l)
	sexp, ssd := Decode(s)

	if lexp == sexp {
		return Normalize(lsd+ssd, lexp, false)
	}
	if lexp-sexp >= 17 {
		return l
	}

	lexp--
	lsd *= 10
	p := powers[lexp-sexp]
	d := ssd / p
	r := ssd % p
	extra := r != 0

	return Normalize(lsd+d, lexp, extra)
}

// subMagnitudes subtracts non-negative finite y from non-negative
// finite x, assuming x >= y as magnitudes (§4.5).
func subMagnitudes(x, y uint64) uint64 {
	xexp, xsd := Decode(x)
	yexp, ysd := Decode(y)

	if xexp-yexp >= 18 {
		return x
	}
	oneDecadeAbove := xexp == yexp+1
	if oneDecadeAbove {
		xsd *= 10
	}
	if oneDecadeAbove || xexp == yexp {
		return Normalize(xsd-ysd, yexp, false)
	}

	xexp -= 2
	xsd *= 100
	p := powers[xexp-yexp]
	d := ysd / p
	r := ysd % p
	extra := r != 0
	if extra {
		d++
	}

	return Normalize(xsd-d, xexp, extra)
}
