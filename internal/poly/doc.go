// Package poly turns the transform backends into exact integer polynomial
// multiplication: operands are zero-padded to the next power of two, taken to
// the frequency domain, multiplied pointwise, inverted, and rounded back to
// integer coefficients. Squaring and exponentiation are built on top of
// multiplication.
package poly
