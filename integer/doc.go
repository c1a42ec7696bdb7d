// Package integer provides the arbitrary precision integer operations used by
// the decimal package: powers of ten, rounded division, trailing zero counts
// and integer literal parsing.
package integer
