// Package parsemath implements a floating-point arithmetic calculator.
//
// Expressions are plain arithmetic over float64 values: "3+2*5" is 13,
// "2^3^2" is 512 (exponentiation associates to the right), and "-2^2" is
// the same as "-(2^2)". The bitwise operators & and | truncate their
// operands to 64-bit integers before operating, so "6.9&3" is 2; the
// fractional parts are discarded, not rounded.
//
// Parsing an expression once produces an immutable tree that can be
// evaluated any number of times, from any number of goroutines.
package parsemath
