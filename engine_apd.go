package decimal

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// APDEngine is the default [Engine], backed by the cockroachdb/apd
// arbitrary-precision decimal package.
// Every operation runs in a context whose precision is computed to keep
// the intermediate result exact and whose rounding is directed toward
// zero, so that digits beyond the requested scale are truncated.
type APDEngine struct{}

// NewAPDEngine returns an engine backed by cockroachdb/apd.
func NewAPDEngine() APDEngine {
	return APDEngine{}
}

// truncContext returns a context that truncates toward zero at the given
// precision.
func truncContext(prec int64) *apd.Context {
	if prec < 1 {
		prec = 1
	}
	if prec > maxPowDigits {
		prec = maxPowDigits
	}
	return &apd.Context{
		Precision:   uint32(prec),
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Rounding:    apd.RoundDown,
		Traps:       apd.DefaultTraps,
	}
}

func (e APDEngine) parse(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", s, ErrInvalidInput)
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("parsing %q: not a finite number: %w", s, ErrInvalidInput)
	}
	return d, nil
}

func (e APDEngine) parse2(x, y string) (*apd.Decimal, *apd.Decimal, error) {
	a, err := e.parse(x)
	if err != nil {
		return nil, nil, err
	}
	b, err := e.parse(y)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// fracDigits returns the number of digits after the decimal point.
func fracDigits(d *apd.Decimal) int64 {
	if d.Exponent < 0 {
		return int64(-d.Exponent)
	}
	return 0
}

// exactPrec is a precision that keeps the exact result of an addition,
// subtraction, multiplication, or remainder of a and b at the given scale.
func exactPrec(a, b *apd.Decimal, scale int) int64 {
	return a.NumDigits() + b.NumDigits() + fracDigits(a) + fracDigits(b) + int64(scale) + 8
}

// fixed truncates d to the scale and renders it without an exponent.
func (e APDEngine) fixed(d *apd.Decimal, scale int) (string, error) {
	ctx := truncContext(d.NumDigits() + int64(scale) + 4)
	if _, err := ctx.Quantize(d, d, -int32(scale)); err != nil {
		return "", fmt.Errorf("rescaling to %v digit(s): %w", scale, err)
	}
	if d.IsZero() {
		d.Negative = false
	}
	return d.Text('f'), nil
}

func (e APDEngine) Add(x, y string, scale int) (string, error) {
	a, b, err := e.parse2(x, y)
	if err != nil {
		return "", err
	}
	res := new(apd.Decimal)
	if _, err := truncContext(exactPrec(a, b, scale)).Add(res, a, b); err != nil {
		return "", fmt.Errorf("adding %q and %q: %w", x, y, err)
	}
	return e.fixed(res, scale)
}

func (e APDEngine) Sub(x, y string, scale int) (string, error) {
	a, b, err := e.parse2(x, y)
	if err != nil {
		return "", err
	}
	res := new(apd.Decimal)
	if _, err := truncContext(exactPrec(a, b, scale)).Sub(res, a, b); err != nil {
		return "", fmt.Errorf("subtracting %q from %q: %w", y, x, err)
	}
	return e.fixed(res, scale)
}

func (e APDEngine) Mul(x, y string, scale int) (string, error) {
	a, b, err := e.parse2(x, y)
	if err != nil {
		return "", err
	}
	res := new(apd.Decimal)
	if _, err := truncContext(exactPrec(a, b, scale)).Mul(res, a, b); err != nil {
		return "", fmt.Errorf("multiplying %q by %q: %w", x, y, err)
	}
	return e.fixed(res, scale)
}

func (e APDEngine) Quo(x, y string, scale int) (string, error) {
	a, b, err := e.parse2(x, y)
	if err != nil {
		return "", err
	}
	if b.IsZero() {
		return "", fmt.Errorf("dividing %q by %q: %w", x, y, ErrDivisionByZero)
	}
	// The quotient has at most NumDigits(a) + fracDigits(b) integral
	// digits; truncating at a higher precision and then at the scale is
	// the same as truncating the exact quotient at the scale.
	prec := a.NumDigits() + fracDigits(b) + int64(scale) + 8
	res := new(apd.Decimal)
	if _, err := truncContext(prec).Quo(res, a, b); err != nil {
		return "", fmt.Errorf("dividing %q by %q: %w", x, y, err)
	}
	return e.fixed(res, scale)
}

func (e APDEngine) Mod(x, y string, scale int) (string, error) {
	a, b, err := e.parse2(x, y)
	if err != nil {
		return "", err
	}
	if b.IsZero() {
		return "", fmt.Errorf("dividing %q by %q: %w", x, y, ErrDivisionByZero)
	}
	res := new(apd.Decimal)
	if _, err := truncContext(exactPrec(a, b, scale)).Rem(res, a, b); err != nil {
		return "", fmt.Errorf("dividing %q by %q: %w", x, y, err)
	}
	return e.fixed(res, scale)
}

func (e APDEngine) Pow(x, exp string, scale int) (string, error) {
	a, b, err := e.parse2(x, exp)
	if err != nil {
		return "", err
	}
	// Integral exponent only; the fractional part is discarded.
	whole := new(apd.Decimal)
	if _, err := truncContext(b.NumDigits() + 4).Quantize(whole, b, 0); err != nil {
		return "", fmt.Errorf("truncating exponent %q: %w", exp, err)
	}
	n, err := whole.Int64()
	if err != nil {
		return "", fmt.Errorf("exponent %q: %w", exp, ErrOverflow)
	}
	if n == 0 {
		return e.fixed(apd.New(1, 0), scale)
	}
	if a.IsZero() {
		if n < 0 {
			return "", fmt.Errorf("raising %q to %v: %w", x, n, ErrDivisionByZero)
		}
		return e.fixed(apd.New(0, 0), scale)
	}

	abs := n
	if abs < 0 {
		abs = -abs
	}
	est := (a.NumDigits()+fracDigits(a))*abs + int64(scale) + 8
	if est > maxPowDigits {
		return "", fmt.Errorf("raising %q to %v: %w", x, n, ErrOverflow)
	}
	ctx := truncContext(est)

	// Exponentiation by squaring; the context precision keeps every
	// intermediate product exact.
	res := apd.New(1, 0)
	base := new(apd.Decimal).Set(a)
	for m := abs; m > 0; m >>= 1 {
		if m&1 == 1 {
			if _, err := ctx.Mul(res, res, base); err != nil {
				return "", fmt.Errorf("raising %q to %v: %w", x, n, err)
			}
		}
		if m > 1 {
			if _, err := ctx.Mul(base, base, base); err != nil {
				return "", fmt.Errorf("raising %q to %v: %w", x, n, err)
			}
		}
	}
	if n < 0 {
		qctx := truncContext(res.NumDigits() + fracDigits(res) + int64(scale) + 8)
		if _, err := qctx.Quo(res, apd.New(1, 0), res); err != nil {
			return "", fmt.Errorf("raising %q to %v: %w", x, n, err)
		}
	}
	return e.fixed(res, scale)
}

func (e APDEngine) Sqrt(x string, scale int) (string, error) {
	a, err := e.parse(x)
	if err != nil {
		return "", err
	}
	if a.Negative && !a.IsZero() {
		return "", fmt.Errorf("square root of %q: %w", x, ErrInvalidInput)
	}
	prec := a.NumDigits() + int64(scale) + 16
	res := new(apd.Decimal)
	if _, err := truncContext(prec).Sqrt(res, a); err != nil {
		return "", fmt.Errorf("square root of %q: %w", x, err)
	}
	return e.fixed(res, scale)
}

func (e APDEngine) Cmp(x, y string, scale int) (int, error) {
	a, b, err := e.parse2(x, y)
	if err != nil {
		return 0, err
	}
	ctx := truncContext(exactPrec(a, b, scale))
	if _, err := ctx.Quantize(a, a, -int32(scale)); err != nil {
		return 0, fmt.Errorf("comparing %q and %q: %w", x, y, err)
	}
	if _, err := ctx.Quantize(b, b, -int32(scale)); err != nil {
		return 0, fmt.Errorf("comparing %q and %q: %w", x, y, err)
	}
	return a.Cmp(b), nil
}
