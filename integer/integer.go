package integer

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	ten  = big.NewInt(10)
)

// pow10s caches the small powers of ten. Scales used by decimal arithmetic
// are almost always well under this bound.
var pow10s = func() (table [64]*big.Int) {
	table[0] = big.NewInt(1)
	for i := 1; i < len(table); i++ {
		table[i] = new(big.Int).Mul(table[i-1], ten)
	}

	return table
}()

// Pow10 returns 10^n as a new integer. n must not be negative.
func Pow10(n int) *big.Int {
	if n < 0 {
		panic("integer: negative power of ten")
	}

	if n < len(pow10s) {
		return new(big.Int).Set(pow10s[n])
	}

	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// QuoRound returns x/y rounded to the nearest integer with ties going away
// from zero. y must not be zero.
//
// The quotient is computed with truncated division (big.Int.QuoRem), so the
// remainder carries the sign of x. The quotient is then moved one unit away
// from zero when |2 * remainder| >= |y|.
func QuoRound(x, y *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() == 0 {
		return q
	}

	r.Abs(r)
	r.Lsh(r, 1)

	if r.CmpAbs(y) >= 0 {
		// Note: direction follows the sign of the exact quotient, which is
		// the sign of x for the positive divisors used by rescaling.
		if (x.Sign() < 0) != (y.Sign() < 0) {
			q.Sub(q, one)
		} else {
			q.Add(q, one)
		}
	}

	return q
}

// TrailingZeros returns the number of trailing decimal zero digits of x,
// capped at limit. Zero is treated as having limit trailing zeros.
func TrailingZeros(x *big.Int, limit int) (n int) {
	if limit <= 0 {
		return 0
	}

	if x.Sign() == 0 {
		return limit
	}

	q := new(big.Int).Abs(x)
	r := new(big.Int)

	for n < limit {
		q.QuoRem(q, ten, r)
		if r.Sign() != 0 {
			break
		}

		n++
	}

	return n
}

// Digits returns the decimal digits of |x| without sign.
func Digits(x *big.Int) string {
	if x.Sign() < 0 {
		return new(big.Int).Abs(x).Text(10)
	}

	return x.Text(10)
}

// Parse reads a signed integer literal. Base 10 is assumed unless the
// literal carries one of the 0b, 0o or 0x prefixes (any case).
func Parse(s string) (i *big.Int, err error) {
	body := s
	neg := false

	switch {
	case strings.HasPrefix(body, "-"):
		neg = true
		body = body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	base := 10
	if prefix, ok := Prefix(body); ok {
		base = prefix
		body = body[2:]
	}

	if body == "" {
		return nil, Error.New("invalid literal: %q", s)
	}

	for _, c := range body {
		if !validDigit(c, base) {
			return nil, Error.New("invalid literal: %q", s)
		}
	}

	i, ok := new(big.Int).SetString(body, base)
	if !ok {
		return nil, Error.New("invalid literal: %q", s)
	}

	if neg {
		i.Neg(i)
	}

	return i, nil
}

// Prefix reports the base selected by a leading 0b, 0o or 0x in s.
func Prefix(s string) (base int, ok bool) {
	if len(s) < 2 || s[0] != '0' {
		return 10, false
	}

	switch s[1] {
	case 'b', 'B':
		return 2, true
	case 'o', 'O':
		return 8, true
	case 'x', 'X':
		return 16, true
	}

	return 10, false
}

func validDigit(c rune, base int) bool {
	var v int

	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'f':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		v = int(c-'A') + 10
	default:
		return false
	}

	return v < base
}

// IsZero reports whether x is nil or zero.
func IsZero(x *big.Int) bool {
	return x == nil || x.Cmp(zero) == 0
}
