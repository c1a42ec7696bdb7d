package decimal

// Ordering is the result of a three-way comparison.
type Ordering int

// Orderings.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}

	return "invalid"
}

// ComparedTo orders d relative to e.
func (d Decimal) ComparedTo(e Decimal) Ordering {
	scale := maxInt(d.decimals, e.decimals)

	a := d.clone().rescale(scale)
	b := e.clone().rescale(scale)

	return Ordering(a.base.Cmp(b.base))
}

// Equals reports whether d == e.
func (d Decimal) Equals(e Decimal) bool {
	return d.ComparedTo(e) == Equal
}

// GreaterThan reports whether d > e.
func (d Decimal) GreaterThan(e Decimal) bool {
	return d.ComparedTo(e) == Greater
}

// GreaterThanOrEqualTo reports whether d >= e.
func (d Decimal) GreaterThanOrEqualTo(e Decimal) bool {
	return d.ComparedTo(e) != Less
}

// LessThan reports whether d < e.
func (d Decimal) LessThan(e Decimal) bool {
	return d.ComparedTo(e) == Less
}

// LessThanOrEqualTo reports whether d <= e.
func (d Decimal) LessThanOrEqualTo(e Decimal) bool {
	return d.ComparedTo(e) != Greater
}

// Min returns the smaller of d and e, or d if they are equal.
func (d Decimal) Min(e Decimal) Decimal {
	if e.LessThan(d) {
		return e
	}

	return d
}

// Max returns the larger of d and e, or d if they are equal.
func (d Decimal) Max(e Decimal) Decimal {
	if e.GreaterThan(d) {
		return e
	}

	return d
}
