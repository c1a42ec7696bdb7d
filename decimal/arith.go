package decimal

import (
	"fmt"
	"math/big"
)

// Plus returns d + e.
func (d Decimal) Plus(e Input) (_ Decimal, err error) {
	defer Error.WrapP(&err)

	f, err := coerce(e)
	if err != nil {
		return Decimal{}, err
	}

	return add(d, f), nil
}

// Minus returns d - e.
func (d Decimal) Minus(e Input) (_ Decimal, err error) {
	defer Error.WrapP(&err)

	f, err := coerce(e)
	if err != nil {
		return Decimal{}, err
	}

	return add(d, f.Negated()), nil
}

// MultipliedBy returns d * e. The product is exact.
func (d Decimal) MultipliedBy(e Input) (_ Decimal, err error) {
	defer Error.WrapP(&err)

	f, err := coerce(e)
	if err != nil {
		return Decimal{}, err
	}

	return normalized(new(big.Int).Mul(d.int(), f.int()), d.decimals+f.decimals), nil
}

// DividedBy returns d / e.
//
// The dividend is scaled to max(2*d.Decimals(), 2*e.Decimals(), DivisionScale)
// places and the integer quotient is truncated, so the result is accurate to at
// least DivisionScale - max(d.Decimals(), e.Decimals()) places.
func (d Decimal) DividedBy(e Input) (_ Decimal, err error) {
	defer Error.WrapP(&err)

	f, err := coerce(e)
	if err != nil {
		return Decimal{}, err
	}

	if f.IsZero() {
		return Decimal{}, ErrDivisionByZero.New("%s / %s", d, f)
	}

	scale := maxInt(2*d.decimals, 2*f.decimals, DivisionScale)

	w := d.clone().rescale(scale)
	q := new(big.Int).Quo(w.base, f.int())

	return normalized(q, scale-f.decimals), nil
}

// Negated returns -d.
func (d Decimal) Negated() Decimal {
	return Decimal{
		base:     new(big.Int).Neg(d.int()),
		decimals: d.decimals,
	}
}

// AbsoluteValue returns |d|.
func (d Decimal) AbsoluteValue() Decimal {
	if d.Sign() < 0 {
		return d.Negated()
	}

	return d
}

func add(d, e Decimal) Decimal {
	scale := maxInt(d.decimals, e.decimals)

	a := d.clone().rescale(scale)
	b := e.clone().rescale(scale)
	a.base.Add(a.base, b.base)

	return a.trim().value()
}

func maxInt(x int, ys ...int) int {
	for _, y := range ys {
		if y > x {
			x = y
		}
	}

	return x
}

// MustPlus is like Plus but panics on error.
func (d Decimal) MustPlus(e Input) Decimal {
	f, err := d.Plus(e)
	if err != nil {
		panic(fmt.Sprintf("MustPlus(%v) failed: %v", d, err))
	}

	return f
}

// MustMinus is like Minus but panics on error.
func (d Decimal) MustMinus(e Input) Decimal {
	f, err := d.Minus(e)
	if err != nil {
		panic(fmt.Sprintf("MustMinus(%v) failed: %v", d, err))
	}

	return f
}

// MustMultipliedBy is like MultipliedBy but panics on error.
func (d Decimal) MustMultipliedBy(e Input) Decimal {
	f, err := d.MultipliedBy(e)
	if err != nil {
		panic(fmt.Sprintf("MustMultipliedBy(%v) failed: %v", d, err))
	}

	return f
}

// MustDividedBy is like DividedBy but panics on error.
func (d Decimal) MustDividedBy(e Input) Decimal {
	f, err := d.DividedBy(e)
	if err != nil {
		panic(fmt.Sprintf("MustDividedBy(%v) failed: %v", d, err))
	}

	return f
}
