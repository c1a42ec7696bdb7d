// Package decimal provides an exact fixed point base 10 number.
//
// The equation for a decimal number is:
//
//  number = base * 10 ^ -decimals
//
// Where base is an arbitrary precision signed integer and decimals is the
// non-negative number of digits after the decimal point. For example:
//
//  1.23 = 123 * 10^-2
//
// Canonical Form
//
// Every value is stored with the fewest decimals that represent it exactly.
// Trailing zeros of base are removed for as long as decimals stays at or
// above zero:
//
//  | Input    | base  | decimals |
//  |----------|-------|----------|
//  | "1.2300" | 123   | 2        |
//  | "1200"   | 1200  | 0        |
//  | "0.000"  | 0     | 0        |
//  | "1.23e4" | 12300 | 0        |
//  | "1.23e1" | 123   | 1        |
//  |----------|-------|----------|
//
// Construction
//
// New accepts one of the Input kinds: Float, String, Integer, Raw or another
// Decimal. Float input is approximate (see Float). String input accepts
// decimal and scientific notation as well as 0b, 0o and 0x prefixed integer
// literals.
//
// Rounding
//
// Reducing the number of decimals (Round, Fixed) rounds the dropped digits
// half away from zero:
//
//  |  Value  | Round(2) |
//  |---------|----------|
//  |  0.125  |  0.13    |
//  | -0.125  | -0.13    |
//  |  0.124  |  0.12    |
//  |---------|----------|
//
// Arithmetic
//
// Addition, subtraction and multiplication are exact. Division scales the
// dividend to at least DivisionScale places and truncates the integer
// quotient:
//
//  1 / 3 = 0.33333333333333333333
//
// Errors
//
// Failures are returned as errors of class Error and one of ErrInvalidNumber,
// ErrUnsupportedInput or ErrDivisionByZero.
package decimal
