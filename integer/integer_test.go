package integer

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func bi(s string) *big.Int {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}

	return i
}

func TestPow10(t *testing.T) {
	type TC struct {
		n    int
		want string
	}

	tcs := []TC{
		{n: 0, want: "1"},
		{n: 1, want: "10"},
		{n: 18, want: "1000000000000000000"},
		{n: 63, want: "1" + fmt.Sprintf("%063d", 0)},
		{n: 64, want: "1" + fmt.Sprintf("%064d", 0)},
		{n: 100, want: "1" + fmt.Sprintf("%0100d", 0)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d", i, tc.n), func(t *testing.T) {
			require.Equal(t, tc.want, Pow10(tc.n).String())
		})
	}

	t.Run("copy", func(t *testing.T) {
		p := Pow10(2)
		p.SetInt64(7)
		require.Equal(t, "100", Pow10(2).String())
	})

	t.Run("negative", func(t *testing.T) {
		require.Panics(t, func() { Pow10(-1) })
	})
}

func TestQuoRound(t *testing.T) {
	type TC struct {
		x, y string
		want string
	}

	tcs := []TC{
		{x: "125", y: "10", want: "13"},
		{x: "-125", y: "10", want: "-13"},
		{x: "124", y: "10", want: "12"},
		{x: "-124", y: "10", want: "-12"},
		{x: "126", y: "10", want: "13"},
		{x: "5", y: "10", want: "1"},
		{x: "-5", y: "10", want: "-1"},
		{x: "4", y: "10", want: "0"},
		{x: "-4", y: "10", want: "0"},
		{x: "100", y: "10", want: "10"},
		{x: "0", y: "1000", want: "0"},
		{x: "15", y: "-10", want: "-2"},
		{x: "-15", y: "-10", want: "2"},
		{x: "123456789012345678901234567890", y: "1000000000000", want: "123456789012345679"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.x, tc.y), func(t *testing.T) {
			x, y := bi(tc.x), bi(tc.y)

			require.Equal(t, tc.want, QuoRound(x, y).String())

			// Operands are left untouched.
			require.Equal(t, tc.x, x.String())
			require.Equal(t, tc.y, y.String())
		})
	}
}

func TestTrailingZeros(t *testing.T) {
	type TC struct {
		x     string
		limit int
		want  int
	}

	tcs := []TC{
		{x: "0", limit: 0, want: 0},
		{x: "0", limit: 5, want: 5},
		{x: "1", limit: 5, want: 0},
		{x: "10", limit: 5, want: 1},
		{x: "-1000", limit: 5, want: 3},
		{x: "1000", limit: 2, want: 2},
		{x: "1000", limit: -1, want: 0},
		{x: "1230000000000000000000000000000", limit: 100, want: 28},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.x), func(t *testing.T) {
			x := bi(tc.x)
			require.Equal(t, tc.want, TrailingZeros(x, tc.limit))
			require.Equal(t, tc.x, x.String())
		})
	}
}

func TestDigits(t *testing.T) {
	require.Equal(t, "0", Digits(bi("0")))
	require.Equal(t, "123", Digits(bi("123")))
	require.Equal(t, "123", Digits(bi("-123")))

	x := bi("-5")
	_ = Digits(x)
	require.Equal(t, "-5", x.String())
}

func TestParse(t *testing.T) {
	type TC struct {
		name string
		want string
		err  bool
	}

	tcs := []TC{
		{name: "0", want: "0"},
		{name: "7", want: "7"},
		{name: "-7", want: "-7"},
		{name: "+7", want: "7"},
		{name: "0x1f", want: "31"},
		{name: "0X1F", want: "31"},
		{name: "-0x10", want: "-16"},
		{name: "0o17", want: "15"},
		{name: "0O17", want: "15"},
		{name: "0b101", want: "5"},
		{name: "0B101", want: "5"},
		{name: "0755", want: "755"},
		{name: "123456789012345678901234567890", want: "123456789012345678901234567890"},
		{name: "", err: true},
		{name: "-", err: true},
		{name: "0x", err: true},
		{name: "0b102", err: true},
		{name: "0o8", err: true},
		{name: "1a", err: true},
		{name: "1_000", err: true},
		{name: "1.5", err: true},
		{name: "--1", err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x, err := Parse(tc.name)
			if tc.err {
				require.Error(t, err)
				require.True(t, Error.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, x.String())
		})
	}
}

func TestPrefix(t *testing.T) {
	type TC struct {
		s    string
		base int
		ok   bool
	}

	tcs := []TC{
		{s: "0x", base: 16, ok: true},
		{s: "0o1", base: 8, ok: true},
		{s: "0b1", base: 2, ok: true},
		{s: "01", base: 10, ok: false},
		{s: "x1", base: 10, ok: false},
		{s: "0", base: 10, ok: false},
		{s: "", base: 10, ok: false},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.s), func(t *testing.T) {
			base, ok := Prefix(tc.s)
			require.Equal(t, tc.base, base)
			require.Equal(t, tc.ok, ok)
		})
	}
}

func TestIsZero(t *testing.T) {
	require.True(t, IsZero(nil))
	require.True(t, IsZero(new(big.Int)))
	require.False(t, IsZero(big.NewInt(-1)))
}
