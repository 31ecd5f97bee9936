package decimal

import (
	"fmt"
	"strings"
)

// noScale marks a construction without an explicitly requested scale.
const noScale = -1

// maxExponent limits the exponent accepted in scientific notation, since
// expanding the notation materializes one digit per shifted position.
const maxExponent = 100_000

// Parse converts a string to a (possibly signed) decimal.
// The input may be a plain integer ("123"), a fixed-point number ("-12.5",
// ".5"), or scientific notation ("1.005e2", "1e-9"); surrounding white
// space is ignored.
// The scale of the result is the number of digits after the decimal point
// once any exponent has been expanded.
//
// Parse returns an error wrapping [ErrInvalidInput] if the string is not
// a valid number.
func Parse(s string) (Decimal, error) {
	return parse(s, noScale, false)
}

// ParseExact is like [Parse], but it sets the scale of the result to exactly
// the given number of digits, right-padding the fractional part with zeros
// or truncating it without rounding.
func ParseExact(s string, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("parsing %q: scale must be non-negative: %w", s, ErrInvalidInput)
	}
	return parse(s, scale, false)
}

// ParseStrict is like [ParseExact], but instead of truncating excess
// fractional digits it returns an error wrapping [ErrPrecisionLoss].
func ParseStrict(s string, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("parsing %q: scale must be non-negative: %w", s, ErrInvalidInput)
	}
	return parse(s, scale, true)
}

func parse(s string, scale int, strict bool) (Decimal, error) {
	neg, ipart, fpart, err := scanNumber(strings.TrimSpace(s))
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	if scale != noScale {
		switch {
		case len(fpart) > scale:
			if strict {
				return Decimal{}, fmt.Errorf("parsing %q: %v fractional digit(s) exceed declared scale %v: %w", s, len(fpart), scale, ErrPrecisionLoss)
			}
			fpart = fpart[:scale]
		case len(fpart) < scale:
			fpart += strings.Repeat("0", scale-len(fpart))
		}
	}
	return newDecimal(neg, ipart, fpart), nil
}

// scanNumber tokenizes one of the three accepted syntactic forms: plain
// integer, fixed-point, or scientific notation.
// It returns the sign and the integral and fractional digit runs with any
// exponent already expanded.
func scanNumber(s string) (neg bool, ipart, fpart string, err error) {
	var (
		pos     int
		width   int
		istart  int
		fstart  int
		hascoef bool
		hase    bool
		hasexp  bool
		eneg    bool
		exp     int
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	istart = pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		pos++
	}
	ipart = s[istart:pos]

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		fstart = pos
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			pos++
		}
		fpart = s[fstart:pos]
	}

	// Exponent
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hase = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			exp = exp*10 + int(s[pos]-'0')
			if exp > maxExponent {
				return false, "", "", fmt.Errorf("exponent out of range: %w", ErrInvalidInput)
			}
			hasexp = true
			pos++
		}
	}

	switch {
	case pos != width:
		return false, "", "", fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidInput)
	case !hascoef:
		return false, "", "", fmt.Errorf("no digits: %w", ErrInvalidInput)
	case hase && !hasexp:
		return false, "", "", fmt.Errorf("no exponent digits: %w", ErrInvalidInput)
	}

	if hase {
		if eneg {
			exp = -exp
		}
		ipart, fpart = shiftPoint(ipart, fpart, exp)
	}
	if ipart == "" {
		ipart = "0"
	}
	return neg, ipart, fpart, nil
}

// shiftPoint moves the decimal point of the digit runs by exp positions,
// materializing zeros as needed.
func shiftPoint(ipart, fpart string, exp int) (string, string) {
	digits := ipart + fpart
	point := len(ipart) + exp
	switch {
	case point <= 0:
		return "0", strings.Repeat("0", -point) + digits
	case point >= len(digits):
		return digits + strings.Repeat("0", point-len(digits)), ""
	default:
		return digits[:point], digits[point:]
	}
}
