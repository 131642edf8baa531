package format

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxInlineCoefficients is the number of coefficients shown before the
// display switches to an elided head...tail form.
const MaxInlineCoefficients = 16

// FormatCoefficients renders a coefficient sequence for display, index 0
// first (constant term). Long sequences are elided in the middle so that the
// CLI never prints multi-megabyte result lines unless explicitly asked to.
//
// Parameters:
//   - coeffs: The coefficient sequence, ascending powers.
//   - full: When true, every coefficient is printed regardless of length.
//
// Returns:
//   - string: The rendered sequence, e.g. "[1 2 1]" or "[1 2 ... 2 1] (1025 coefficients)".
func FormatCoefficients(coeffs []int64, full bool) string {
	if full || len(coeffs) <= MaxInlineCoefficients {
		return "[" + joinInt64(coeffs, " ") + "]"
	}

	head := joinInt64(coeffs[:MaxInlineCoefficients/2], " ")
	tail := joinInt64(coeffs[len(coeffs)-MaxInlineCoefficients/2:], " ")
	return fmt.Sprintf("[%s ... %s] (%d coefficients)", head, tail, len(coeffs))
}

// FormatPolynomial renders a coefficient sequence as a human-readable
// polynomial in x, skipping zero coefficients. Intended for small inputs;
// falls back to FormatCoefficients beyond MaxInlineCoefficients terms.
//
// Parameters:
//   - coeffs: The coefficient sequence, ascending powers.
//
// Returns:
//   - string: A rendering such as "1 + 2x + x^2".
func FormatPolynomial(coeffs []int64) string {
	if len(coeffs) > MaxInlineCoefficients {
		return FormatCoefficients(coeffs, false)
	}

	var terms []string
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, strconv.FormatInt(c, 10))
		case i == 1 && c == 1:
			terms = append(terms, "x")
		case i == 1:
			terms = append(terms, fmt.Sprintf("%dx", c))
		case c == 1:
			terms = append(terms, fmt.Sprintf("x^%d", i))
		default:
			terms = append(terms, fmt.Sprintf("%dx^%d", c, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// joinInt64 joins int64 values with the given separator.
func joinInt64(values []int64, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, sep)
}
