package decimal

import (
	"fmt"
	"strings"
)

// Round returns d rounded to the given number of digits after the decimal
// point using the half-up rule: a discarded half is rounded away from zero,
// so both 2.5 and -2.5 round to a whole 3 in magnitude.
// If the scale is larger than the current scale, the fractional part is
// right-padded with zeros.
//
// Round returns an error wrapping [ErrInvalidInput] if the scale is
// negative.
func (d Decimal) Round(scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("rounding %q: scale must be non-negative: %w", d, ErrInvalidInput)
	}
	half := halfULP(scale)
	var (
		s   string
		err error
	)
	if d.neg {
		s, err = arith.Sub(d.String(), half, scale)
	} else {
		s, err = arith.Add(d.String(), half, scale)
	}
	if err != nil {
		return Decimal{}, fmt.Errorf("rounding %q: %w", d, err)
	}
	return ParseExact(s, scale)
}

// Ceil returns d rounded up, toward positive infinity, to the given number
// of digits after the decimal point.
// A value that is already exact at the requested granularity is returned
// unchanged at the new scale.
//
// Ceil returns an error wrapping [ErrInvalidInput] if the scale is
// negative.
func (d Decimal) Ceil(scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("ceiling %q: scale must be non-negative: %w", d, ErrInvalidInput)
	}
	t, exact := d.cut(scale)
	if exact || d.neg {
		return ParseExact(t.String(), scale)
	}
	s, err := arith.Add(t.String(), onesULP(scale), scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("ceiling %q: %w", d, err)
	}
	return ParseExact(s, scale)
}

// Floor returns d rounded down, toward negative infinity, to the given
// number of digits after the decimal point.
// A value that is already exact at the requested granularity is returned
// unchanged at the new scale.
//
// Floor returns an error wrapping [ErrInvalidInput] if the scale is
// negative.
func (d Decimal) Floor(scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("flooring %q: scale must be non-negative: %w", d, ErrInvalidInput)
	}
	t, exact := d.cut(scale)
	if exact || !d.neg {
		return ParseExact(t.String(), scale)
	}
	s, err := arith.Sub(t.String(), onesULP(scale), scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("flooring %q: %w", d, err)
	}
	return ParseExact(s, scale)
}

// Trunc returns d with fractional digits beyond the given scale discarded
// by a direct cut, without any arithmetic rounding.
// A scale larger than the current scale leaves the decimal unchanged.
//
// Trunc returns an error wrapping [ErrInvalidInput] if the scale is
// negative.
func (d Decimal) Trunc(scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("truncating %q: scale must be non-negative: %w", d, ErrInvalidInput)
	}
	t, _ := d.cut(scale)
	return t, nil
}

// cut discards fractional digits beyond the scale and reports whether the
// discarded digits were all zero.
func (d Decimal) cut(scale int) (Decimal, bool) {
	if scale >= len(d.fpart) {
		return d, true
	}
	dropped := d.fpart[scale:]
	return newDecimal(d.neg, d.intPart(), d.fpart[:scale]), allZeros(dropped)
}

// halfULP is half a unit in the last place at the given scale: 0.5 for
// scale 0, 0.05 for scale 1, and so on.
func halfULP(scale int) string {
	return "0." + strings.Repeat("0", scale) + "5"
}

// onesULP is one unit in the last place at the given scale: 1 for scale 0,
// 0.1 for scale 1, and so on.
func onesULP(scale int) string {
	if scale == 0 {
		return "1"
	}
	return "0." + strings.Repeat("0", scale-1) + "1"
}
