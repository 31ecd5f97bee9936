package decimal

import (
	"fmt"
)

// Add returns the exact sum of d and e.
// The scale of the result is the larger of the operands' scales.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	scale := max(d.Scale(), e.Scale())
	s, err := arith.Add(d.String(), e.String(), scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	return ParseExact(s, scale)
}

// Sub returns the exact difference of d and e.
// The scale of the result is the larger of the operands' scales.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	scale := max(d.Scale(), e.Scale())
	s, err := arith.Sub(d.String(), e.String(), scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	return ParseExact(s, scale)
}

// Mul returns the exact product of d and e.
// The scale of the result is the sum of the operands' scales.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	scale := d.Scale() + e.Scale()
	s, err := arith.Mul(d.String(), e.String(), scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return ParseExact(s, scale)
}

// Quo returns the quotient of d and e at the given scale.
// Digits beyond the scale are discarded, not rounded.
// There is no default scale for division; the caller always chooses one.
//
// Quo returns an error wrapping [ErrDivisionByZero] if e is zero and an
// error wrapping [ErrInvalidInput] if the scale is negative.
func (d Decimal) Quo(e Decimal, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: scale must be non-negative: %w", d, e, ErrInvalidInput)
	}
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}
	s, err := arith.Quo(d.String(), e.String(), scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return ParseExact(s, scale)
}

// Mod returns the remainder d - e * t, where t is the quotient d / e
// truncated to an integer.
// The sign of the result follows the sign of d, and its scale is the
// scale of d.
//
// Mod returns an error wrapping [ErrDivisionByZero] if e is zero.
func (d Decimal) Mod(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("computing [%v mod %v]: %w", d, e, ErrDivisionByZero)
	}
	scale := d.Scale()
	s, err := arith.Mod(d.String(), e.String(), scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v mod %v]: %w", d, e, err)
	}
	return ParseExact(s, scale)
}

// Pow returns d raised to the power e, truncated to the scale of d.
// A fractional exponent is truncated to its integer part before the power
// is computed, and d⁰ is 1 even for a zero d.
//
// Pow returns an error wrapping [ErrDivisionByZero] if d is zero and the
// exponent is negative, and an error wrapping [ErrOverflow] if the result
// would have an unreasonably large number of digits.
func (d Decimal) Pow(e Decimal) (Decimal, error) {
	exp, err := e.Trunc(0)
	if err != nil {
		return Decimal{}, err
	}
	if d.IsZero() && exp.IsNeg() {
		return Decimal{}, fmt.Errorf("computing [%v ^ %v]: %w", d, e, ErrDivisionByZero)
	}
	scale := d.Scale()
	s, err := arith.Pow(d.String(), exp.String(), scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v ^ %v]: %w", d, e, err)
	}
	return ParseExact(s, scale)
}

// Sqrt returns the square root of d, truncated to the scale of d.
//
// Sqrt returns an error wrapping [ErrInvalidInput] if d is negative.
func (d Decimal) Sqrt() (Decimal, error) {
	if d.IsNeg() {
		return Decimal{}, fmt.Errorf("computing sqrt(%v): negative operand: %w", d, ErrInvalidInput)
	}
	scale := d.Scale()
	s, err := arith.Sqrt(d.String(), scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing sqrt(%v): %w", d, err)
	}
	return ParseExact(s, scale)
}

// Cmp numerically compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// The comparison is exact: operands of different scales are compared at the
// larger of the two scales, so 1.5 and 1.50 are equal.
func (d Decimal) Cmp(e Decimal) int {
	scale := max(d.Scale(), e.Scale())
	c, err := arith.Cmp(d.String(), e.String(), scale)
	if err != nil {
		// Both operands are canonical by construction.
		panic(fmt.Sprintf("%q.Cmp(%q) failed: %v", d, e, err))
	}
	return c
}

// Equal returns true if d and e are numerically equal regardless of their
// scales.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// GreaterThan returns true if d is strictly greater than e.
func (d Decimal) GreaterThan(e Decimal) bool {
	return d.Cmp(e) > 0
}

// GreaterThanOrEqual returns true if d is greater than or equal to e.
func (d Decimal) GreaterThanOrEqual(e Decimal) bool {
	return d.Cmp(e) >= 0
}

// LessThan returns true if d is strictly less than e.
func (d Decimal) LessThan(e Decimal) bool {
	return d.Cmp(e) < 0
}

// LessThanOrEqual returns true if d is less than or equal to e.
func (d Decimal) LessThanOrEqual(e Decimal) bool {
	return d.Cmp(e) <= 0
}

// Max returns the larger decimal.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller decimal.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}
