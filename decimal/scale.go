package decimal

import (
	"github.com/calebcase/fixed/integer"
)

// rescale changes the number of decimal places of the working copy in place.
// Reducing the scale rounds the dropped digits half away from zero.
func (d *Decimal) rescale(decimals int) *Decimal {
	switch {
	case decimals > d.decimals:
		d.base.Mul(d.base, integer.Pow10(decimals-d.decimals))
	case decimals < d.decimals:
		d.base = integer.QuoRound(d.base, integer.Pow10(d.decimals-decimals))
	}

	d.decimals = decimals

	return d
}

// trim removes trailing zeros from the working copy without going below
// zero decimals.
func (d *Decimal) trim() *Decimal {
	if d.base.Sign() == 0 {
		d.decimals = 0

		return d
	}

	n := integer.TrailingZeros(d.base, d.decimals)
	if n > 0 {
		d.rescale(d.decimals - n)
	}

	return d
}

// Round returns d rounded half away from zero to the given number of decimal
// places. Negative places are treated as zero.
func (d Decimal) Round(places int) Decimal {
	if places < 0 {
		places = 0
	}

	if places >= d.decimals {
		return d
	}

	return d.clone().rescale(places).trim().value()
}
