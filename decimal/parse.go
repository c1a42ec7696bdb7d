package decimal

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/calebcase/oops"

	"github.com/calebcase/fixed/integer"
)

func fromFloat(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, ErrInvalidNumber.New("%v", f)
	}

	decimals := 0

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		decimals = len(s) - i - 1
	}

	// math.Pow10 overflows past 10^308, so subnormal inputs are scaled in
	// steps.
	scaled := f
	for n := decimals; n > 0; {
		step := n
		if step > 300 {
			step = 300
		}

		scaled *= math.Pow10(step)
		n -= step
	}

	base, _ := new(big.Float).SetFloat64(scaled).Int(nil)

	return normalized(base, decimals), nil
}

func fromString(s string) (Decimal, error) {
	unsigned := strings.TrimLeft(s, "+-")
	if len(s)-len(unsigned) <= 1 {
		if _, ok := integer.Prefix(unsigned); ok {
			i, err := integer.Parse(s)
			if err != nil {
				return Decimal{}, ErrInvalidNumber.Wrap(oops.Trace(err))
			}

			return construct(Integer{Value: i})
		}
	}

	mantissa, exponent := s, ""

	sep := strings.IndexAny(s, "eE")
	if sep >= 0 {
		mantissa, exponent = s[:sep], s[sep+1:]

		if strings.ContainsAny(exponent, "eE") {
			return Decimal{}, ErrInvalidNumber.New("%q: repeated exponent", s)
		}
	}

	digits, mantissaDecimals, neg, ok := splitMantissa(mantissa)
	if !ok {
		return Decimal{}, ErrInvalidNumber.New("%q: invalid mantissa", s)
	}

	exp := 0
	if sep >= 0 {
		exp, ok = parseExponent(exponent)
		if !ok {
			return Decimal{}, ErrInvalidNumber.New("%q: invalid exponent", s)
		}
	}

	base, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Decimal{}, ErrInvalidNumber.New("%q: invalid mantissa", s)
	}

	if neg {
		base.Neg(base)
	}

	if exp > mantissaDecimals {
		base.Mul(base, integer.Pow10(exp-mantissaDecimals))

		return normalized(base, 0), nil
	}

	return normalized(base, mantissaDecimals-exp), nil
}

// splitMantissa validates a decimal numeral and returns its digits with the
// point removed and the number of digits that followed the point.
func splitMantissa(m string) (digits string, decimals int, neg bool, ok bool) {
	switch {
	case strings.HasPrefix(m, "-"):
		neg = true
		m = m[1:]
	case strings.HasPrefix(m, "+"):
		m = m[1:]
	}

	whole, frac := m, ""
	if i := strings.IndexByte(m, '.'); i >= 0 {
		whole, frac = m[:i], m[i+1:]
	}

	if whole == "" && frac == "" {
		return "", 0, false, false
	}

	if !allDigits(whole) || !allDigits(frac) {
		return "", 0, false, false
	}

	return whole + frac, len(frac), neg, true
}

func parseExponent(e string) (int, bool) {
	body := strings.TrimPrefix(strings.TrimPrefix(e, "+"), "-")
	if body == "" || len(e)-len(body) > 1 || !allDigits(body) {
		return 0, false
	}

	exp, err := strconv.Atoi(e)
	if err != nil || exp > MaxExponent || exp < -MaxExponent {
		return 0, false
	}

	return exp, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
