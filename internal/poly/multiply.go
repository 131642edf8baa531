package poly

import (
	"context"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/transform"
)

// tracerName identifies this package's spans.
const tracerName = "github.com/agbru/polymul/internal/poly"

// RoundingSlack is the residual |real − rounded| above which the optional
// precision check declares a coefficient unreliable. Correct results keep the
// residual far below this; a residual approaching 0.5 means the float64
// precision ceiling was reached and the rounded integer can no longer be
// trusted, so the check fires well before that point.
const RoundingSlack = 0.25

// Options configures a multiplication call.
type Options struct {
	// Backend is the transform backend to use. Defaults to the iterative
	// backend when nil.
	Backend transform.Transformer

	// CheckPrecision enables the rounding diagnostic: instead of silently
	// returning a wrong integer when coefficients exceed the float64
	// precision ceiling, the call fails with a PrecisionError.
	CheckPrecision bool
}

// backend returns the configured backend or the default.
func (o Options) backend() transform.Transformer {
	if o.Backend != nil {
		return o.Backend
	}
	return transform.NewIterative()
}

// Multiply computes the product of the polynomials p and q given as
// coefficient sequences in ascending powers (index 0 is the constant term).
// The result is the exact linear convolution of length len(p)+len(q)−1,
// assuming coefficients stay under the float64 precision ceiling (enable
// Options.CheckPrecision to detect violations).
//
// Neither input is mutated.
//
// Parameters:
//   - ctx: Context propagated to the transform backend.
//   - p, q: Operand coefficient sequences; both must be non-empty.
//   - opts: Backend selection and precision checking.
//
// Returns:
//   - []int64: Product coefficients, length len(p)+len(q)−1.
//   - error: Validation, transform, context, or precision error.
func Multiply(ctx context.Context, p, q []int64, opts Options) ([]int64, error) {
	if err := validateOperand("p", p); err != nil {
		return nil, err
	}
	if err := validateOperand("q", q); err != nil {
		return nil, err
	}

	tr := opts.backend()
	resultLen := len(p) + len(q) - 1
	n := NextPowerOfTwo(resultLen)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "poly.Multiply")
	span.SetAttributes(
		attribute.String("poly.backend", tr.Name()),
		attribute.Int("poly.transform_length", n),
		attribute.Int("poly.result_length", resultLen),
	)
	defer span.End()

	fp, err := tr.Transform(ctx, padComplex(p, n), transform.Forward)
	if err != nil {
		return nil, recordSpanError(span, err)
	}
	fq, err := tr.Transform(ctx, padComplex(q, n), transform.Forward)
	if err != nil {
		return nil, recordSpanError(span, err)
	}

	pointwiseMul(fp, fq)

	inv, err := tr.Transform(ctx, fp, transform.Inverse)
	if err != nil {
		return nil, recordSpanError(span, err)
	}

	out, err := roundCoefficients(inv, resultLen, opts.CheckPrecision)
	if err != nil {
		return nil, recordSpanError(span, err)
	}
	return out, nil
}

// Square computes p·p. It transforms p only once and squares pointwise,
// saving one forward transform compared to Multiply(p, p); the result is
// identical.
//
// Parameters:
//   - ctx: Context propagated to the transform backend.
//   - p: Operand coefficient sequence; must be non-empty.
//   - opts: Backend selection and precision checking.
//
// Returns:
//   - []int64: Square coefficients, length 2·len(p)−1.
//   - error: Validation, transform, context, or precision error.
func Square(ctx context.Context, p []int64, opts Options) ([]int64, error) {
	if err := validateOperand("p", p); err != nil {
		return nil, err
	}

	tr := opts.backend()
	resultLen := 2*len(p) - 1
	n := NextPowerOfTwo(resultLen)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "poly.Square")
	span.SetAttributes(
		attribute.String("poly.backend", tr.Name()),
		attribute.Int("poly.transform_length", n),
	)
	defer span.End()

	fp, err := tr.Transform(ctx, padComplex(p, n), transform.Forward)
	if err != nil {
		return nil, recordSpanError(span, err)
	}

	pointwiseMul(fp, fp)

	inv, err := tr.Transform(ctx, fp, transform.Inverse)
	if err != nil {
		return nil, recordSpanError(span, err)
	}

	out, err := roundCoefficients(inv, resultLen, opts.CheckPrecision)
	if err != nil {
		return nil, recordSpanError(span, err)
	}
	return out, nil
}

// validateOperand rejects empty coefficient sequences.
func validateOperand(field string, coeffs []int64) error {
	if len(coeffs) == 0 {
		return apperrors.ValidationError{Field: field, Message: "operand must have at least one coefficient"}
	}
	return nil
}

// pointwiseMul multiplies dst by src element-wise, in place in dst.
// dst and src may alias (squaring).
func pointwiseMul(dst, src []complex128) {
	for i := range dst {
		dst[i] *= src[i]
	}
}

// roundCoefficients rounds the real parts of the first resultLen inverse
// transform outputs to integers. Values beyond resultLen are numerical noise
// from padding and are discarded here, not merely ignored by callers.
func roundCoefficients(inv []complex128, resultLen int, check bool) ([]int64, error) {
	out := make([]int64, resultLen)
	for i := 0; i < resultLen; i++ {
		re := real(inv[i])
		rounded := math.Round(re)
		if check {
			if residual := math.Abs(re - rounded); residual >= RoundingSlack {
				return nil, apperrors.PrecisionError{
					Index:    i,
					Value:    re,
					Rounded:  int64(rounded),
					Residual: residual,
				}
			}
		}
		out[i] = int64(rounded)
	}
	return out, nil
}

// recordSpanError marks the span failed and passes err through.
func recordSpanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
