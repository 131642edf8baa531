package poly

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/agbru/polymul/internal/errors"
)

// Power raises the polynomial p to the k-th power using binary
// exponentiation: k is scanned from its least-significant bit upward, the
// accumulator is multiplied by the running power whenever the current bit is
// set, and the running power is squared between iterations. This performs
// O(log k) multiplications regardless of k's bit pattern.
//
// Parameters:
//   - ctx: Context propagated to every multiplication.
//   - p: Operand coefficient sequence; must be non-empty.
//   - k: Exponent; must be ≥ 1.
//   - opts: Backend selection and precision checking, shared by every step.
//
// Returns:
//   - []int64: Coefficients of p^k, length k·(len(p)−1)+1.
//   - error: Validation, transform, context, or precision error.
func Power(ctx context.Context, p []int64, k uint, opts Options) ([]int64, error) {
	if err := validateOperand("p", p); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, apperrors.ValidationError{Field: "k", Message: "exponent must be at least 1"}
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "poly.Power")
	span.SetAttributes(
		attribute.Int("poly.exponent", int(k)),
		attribute.Int("poly.operand_length", len(p)),
	)
	defer span.End()

	// Multiplicative identity: the constant polynomial 1.
	result := []int64{1}
	base := slices.Clone(p)

	for k > 0 {
		if k&1 == 1 {
			product, err := Multiply(ctx, result, base, opts)
			if err != nil {
				return nil, recordSpanError(span, err)
			}
			result = product
		}
		k >>= 1
		if k > 0 {
			squared, err := Square(ctx, base, opts)
			if err != nil {
				return nil, recordSpanError(span, err)
			}
			base = squared
		}
	}
	return result, nil
}
