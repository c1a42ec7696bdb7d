package decimal

// Short forms of the arithmetic and comparison methods.

// Add is Plus.
func (d Decimal) Add(e Input) (Decimal, error) { return d.Plus(e) }

// Sub is Minus.
func (d Decimal) Sub(e Input) (Decimal, error) { return d.Minus(e) }

// Mul is MultipliedBy.
func (d Decimal) Mul(e Input) (Decimal, error) { return d.MultipliedBy(e) }

// Div is DividedBy.
func (d Decimal) Div(e Input) (Decimal, error) { return d.DividedBy(e) }

// Neg is Negated.
func (d Decimal) Neg() Decimal { return d.Negated() }

// Abs is AbsoluteValue.
func (d Decimal) Abs() Decimal { return d.AbsoluteValue() }

// Cmp is ComparedTo.
func (d Decimal) Cmp(e Decimal) Ordering { return d.ComparedTo(e) }

// Eq is Equals.
func (d Decimal) Eq(e Decimal) bool { return d.Equals(e) }

// Gt is GreaterThan.
func (d Decimal) Gt(e Decimal) bool { return d.GreaterThan(e) }

// Gte is GreaterThanOrEqualTo.
func (d Decimal) Gte(e Decimal) bool { return d.GreaterThanOrEqualTo(e) }

// Lt is LessThan.
func (d Decimal) Lt(e Decimal) bool { return d.LessThan(e) }

// Lte is LessThanOrEqualTo.
func (d Decimal) Lte(e Decimal) bool { return d.LessThanOrEqualTo(e) }
