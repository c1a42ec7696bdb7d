package decimal

import (
	"strconv"
	"strings"

	"github.com/calebcase/fixed/integer"
)

// String returns the canonical decimal form: no exponent, no trailing zeros
// after the point, and a single 0 before the point when |d| < 1.
func (d Decimal) String() string {
	if d.IsZero() {
		return "0"
	}

	digits := integer.Digits(d.int())
	point := len(digits) - d.decimals

	sb := strings.Builder{}
	if d.Sign() < 0 {
		sb.WriteByte('-')
	}

	switch {
	case point <= 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -point))
		sb.WriteString(digits)
	case point < len(digits):
		sb.WriteString(digits[:point])
		sb.WriteByte('.')
		sb.WriteString(digits[point:])
	default:
		sb.WriteString(digits)
	}

	return sb.String()
}

// Fixed returns d rounded half away from zero and rendered with exactly
// places digits after the point. Negative places are treated as zero. A
// value that rounds to zero is rendered without a sign.
func (d Decimal) Fixed(places int) string {
	if places < 0 {
		places = 0
	}

	w := d.clone().rescale(places)

	digits := integer.Digits(w.base)
	if len(digits) <= places {
		digits = strings.Repeat("0", places-len(digits)+1) + digits
	}

	sb := strings.Builder{}
	if w.base.Sign() < 0 {
		sb.WriteByte('-')
	}

	point := len(digits) - places
	sb.WriteString(digits[:point])

	if places > 0 {
		sb.WriteByte('.')
		sb.WriteString(digits[point:])
	}

	return sb.String()
}

// Float64 returns the nearest float64. Magnitudes beyond the float64 range
// become ±Inf.
func (d Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)

	return f
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	v, err := New(String(text))
	if err != nil {
		return err
	}

	*d = v

	return nil
}
