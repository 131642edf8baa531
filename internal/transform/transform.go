package transform

import (
	"context"
	"fmt"

	apperrors "github.com/agbru/polymul/internal/errors"
)

// Direction selects the sign of the twiddle exponent. The forward transform
// uses e^{-2πik/n}; the inverse uses e^{+2πik/n} and divides by n.
type Direction int

const (
	// Forward evaluates the polynomial at the n-th roots of unity.
	Forward Direction = -1
	// Inverse interpolates coefficients back from root-of-unity evaluations.
	Inverse Direction = +1
)

// String returns the human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

//go:generate mockgen -destination=mocks/mock_transformer.go -package=mocks github.com/agbru/polymul/internal/transform Transformer

// Transformer is the strategy interface implemented by every DFT backend.
// Implementations never mutate the input slice and always return a fresh
// slice of the same length. The inverse direction returns values already
// normalized by 1/n.
type Transformer interface {
	// Name returns the stable backend identifier used for selection and display.
	Name() string

	// Transform computes the DFT (dir == Forward) or normalized IDFT
	// (dir == Inverse) of data, whose length must be a power of two ≥ 1.
	Transform(ctx context.Context, data []complex128, dir Direction) ([]complex128, error)
}

// ValidateLength checks the power-of-two precondition shared by all backends.
// It fails fast with a ValidationError; no backend returns partial results.
//
// Parameters:
//   - n: The input sequence length.
//
// Returns:
//   - error: nil, or a ValidationError describing the violation.
func ValidateLength(n int) error {
	if n < 1 {
		return apperrors.ValidationError{
			Field:   "data",
			Message: fmt.Sprintf("length must be at least 1, got %d", n),
		}
	}
	if n&(n-1) != 0 {
		return apperrors.ValidationError{
			Field:   "data",
			Message: fmt.Sprintf("length %d is not a power of two", n),
		}
	}
	return nil
}

// validateCall bundles the checks every backend performs on entry.
func validateCall(ctx context.Context, data []complex128, dir Direction) error {
	if err := ValidateLength(len(data)); err != nil {
		return err
	}
	if dir != Forward && dir != Inverse {
		return apperrors.ValidationError{
			Field:   "dir",
			Message: fmt.Sprintf("unknown direction %d", int(dir)),
		}
	}
	return ctx.Err()
}

// normalize applies the 1/n inverse-transform normalization in place.
func normalize(data []complex128) {
	inv := complex(1/float64(len(data)), 0)
	for i := range data {
		data[i] *= inv
	}
}
