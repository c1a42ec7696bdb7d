package decimal

import (
	"math/big"

	"github.com/calebcase/oops"

	"github.com/calebcase/fixed/integer"
)

// DivisionScale is the minimum number of decimal places carried by the
// working value of a division.
const DivisionScale = 20

// MaxExponent bounds the magnitude of a scientific notation exponent.
const MaxExponent = 1_000_000

var zero = new(big.Int)

// Decimal is a fixed point base 10 number.
//
//  number = base * 10^-decimals
//
// The zero value is 0. Decimals are immutable; every operation returns a new
// value and no two values share a base.
type Decimal struct {
	base     *big.Int
	decimals int
}

// Input is anything a Decimal can be constructed from. The set of inputs is
// closed: Float, String, Integer, Raw and Decimal.
type Input interface {
	input()
}

// Float is a float64 input.
//
// The number of decimal places is the number of digits after the point in
// strconv.FormatFloat(f, 'f', -1, 64). The base is f * 10^decimals computed
// in float64 and truncated toward zero. Because the scale comes from the
// printed form of a binary float and the base from a float multiplication,
// results near representation boundaries may be off by one unit in the last
// place (1.005 becomes 1.004). Construct from a String when exact digits
// matter.
//
// The truncation here differs from the half away from zero rounding used by
// every other operation. Float input is approximate and no rounding
// guarantee is made for it.
type Float float64

// String is a decimal or scientific notation input such as "-12.5" or
// "1.23e4". The exponent magnitude may not exceed MaxExponent.
//
// Integer literals with a 0b, 0o or 0x prefix (after at most one sign) are
// also accepted. The prefix takes precedence over exponent parsing, so
// "0x1e5" is the hexadecimal integer 485, not 0x1 * 10^5.
type String string

// Integer is an arbitrary precision integer input.
type Integer struct {
	Value *big.Int
}

// Raw is a (base, decimals) pair.
type Raw struct {
	Base     *big.Int
	Decimals int
}

func (Float) input()   {}
func (String) input()  {}
func (Integer) input() {}
func (Raw) input()     {}
func (Decimal) input() {}

// New constructs a normalized decimal from the input.
func New(in Input) (d Decimal, err error) {
	defer Error.WrapP(&err)

	return construct(in)
}

// MustNew is like New but panics on error.
func MustNew(in Input) Decimal {
	d, err := New(in)
	if err != nil {
		panic(err)
	}

	return d
}

// Parse constructs a decimal from a string.
func Parse(s string) (Decimal, error) {
	return New(String(s))
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Decimal {
	return MustNew(String(s))
}

// ParseInt constructs an integral decimal from a base 10 or 0b/0o/0x
// prefixed integer literal.
func ParseInt(s string) (d Decimal, err error) {
	defer Error.WrapP(&err)

	i, err := integer.Parse(s)
	if err != nil {
		return Decimal{}, ErrInvalidNumber.Wrap(oops.Trace(err))
	}

	return construct(Integer{Value: i})
}

// NewFromFloat64 constructs a decimal from a float. See Float for the
// precision caveats.
func NewFromFloat64(f float64) (Decimal, error) {
	return New(Float(f))
}

// NewFromBigInt constructs an integral decimal.
func NewFromBigInt(i *big.Int) (Decimal, error) {
	return New(Integer{Value: i})
}

// NewFromInt64 constructs an integral decimal.
func NewFromInt64(i int64) Decimal {
	return normalized(big.NewInt(i), 0)
}

// NewRaw constructs base * 10^-decimals. decimals must not be negative.
func NewRaw(base *big.Int, decimals int) (Decimal, error) {
	return New(Raw{Base: base, Decimals: decimals})
}

func construct(in Input) (Decimal, error) {
	switch v := in.(type) {
	case Decimal:
		return v.clone().trim().value(), nil
	case *Decimal:
		if v == nil {
			return Decimal{}, ErrUnsupportedInput.New("nil *Decimal")
		}

		return v.clone().trim().value(), nil
	case Float:
		return fromFloat(float64(v))
	case String:
		return fromString(string(v))
	case Integer:
		if v.Value == nil {
			return Decimal{}, ErrInvalidNumber.New("nil integer")
		}

		// The scale is fixed at zero before the base is derived from it.
		w := &Decimal{decimals: 0}
		w.base = new(big.Int).Mul(v.Value, integer.Pow10(w.decimals))

		return w.trim().value(), nil
	case Raw:
		if v.Base == nil {
			return Decimal{}, ErrInvalidNumber.New("nil base")
		}

		if v.Decimals < 0 {
			return Decimal{}, ErrInvalidNumber.New("negative decimals: %d", v.Decimals)
		}

		return normalized(new(big.Int).Set(v.Base), v.Decimals), nil
	}

	return Decimal{}, ErrUnsupportedInput.New("%T", in)
}

// coerce returns the right hand operand of an arithmetic operation.
func coerce(in Input) (Decimal, error) {
	if d, ok := in.(Decimal); ok {
		return d, nil
	}

	return construct(in)
}

// normalized takes ownership of base and returns the canonical value.
func normalized(base *big.Int, decimals int) Decimal {
	w := &Decimal{
		base:     base,
		decimals: decimals,
	}

	return w.trim().value()
}

// int returns the base, treating the zero value as 0. The result must not be
// modified.
func (d Decimal) int() *big.Int {
	if d.base == nil {
		return zero
	}

	return d.base
}

// clone returns a working copy that may be mutated.
func (d Decimal) clone() *Decimal {
	return &Decimal{
		base:     new(big.Int).Set(d.int()),
		decimals: d.decimals,
	}
}

func (d *Decimal) value() Decimal {
	return *d
}

// Base returns a copy of the unscaled integer.
func (d Decimal) Base() *big.Int {
	return new(big.Int).Set(d.int())
}

// Decimals returns the number of digits after the decimal point.
func (d Decimal) Decimals() int {
	return d.decimals
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	return d.int().Sign()
}

// IsZero reports whether d is 0.
func (d Decimal) IsZero() bool {
	return integer.IsZero(d.base)
}
