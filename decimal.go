package decimal

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Decimal type is a representation of a finite decimal number with a fixed
// number of digits after the decimal point.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Integral part: the digits before the decimal point, without leading zeros.
//   - Fractional part: the digits after the decimal point, with trailing zeros
//     retained.
//
// The scale of a decimal is the length of its fractional part.
// For example, 1.50 has a scale of 2 and 1.5 has a scale of 1; the two
// decimals are numerically equal but have different representations.
// Trailing zeros are only removed when explicitly requested via [Decimal.Trim].
//
// The decimal does not support special values such as NaN, Infinity,
// or signed zeros: a value of zero magnitude is never negative.
//
// Arithmetic is delegated to an arbitrary-precision [Engine] operating on
// canonical decimal strings, so the magnitude of a decimal is not limited
// by a machine word.
type Decimal struct {
	neg   bool   // indicates whether the decimal is negative
	ipart string // digits before the decimal point, "" reads as "0"
	fpart string // digits after the decimal point, trailing zeros retained
}

var (
	// ErrInvalidInput indicates that a value is not numeric, that its
	// integer, fixed-point, or scientific syntax is malformed, or that an
	// operation was given a negative scale.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPrecisionLoss indicates that a strict construction detected more
	// fractional digits than the declared scale allows.
	ErrPrecisionLoss = errors.New("loss of precision")

	// ErrDivisionByZero indicates a division or modulo by a zero-magnitude
	// operand.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow indicates a conversion to a native numeric type whose
	// range cannot hold the value.
	ErrOverflow = errors.New("overflow")
)

// newDecimal constructs a decimal from raw digit runs, collapsing leading
// integral zeros and dropping the sign of a zero magnitude.
func newDecimal(neg bool, ipart, fpart string) Decimal {
	ipart = trimLeadingZeros(ipart)
	if ipart == "0" && allZeros(fpart) {
		neg = false
	}
	return Decimal{neg: neg, ipart: ipart, fpart: fpart}
}

// trimLeadingZeros collapses redundant leading zeros, keeping at least
// one digit.
func trimLeadingZeros(digits string) string {
	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	if digits == "" {
		return "0"
	}
	return digits[i:]
}

func allZeros(digits string) bool {
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			return false
		}
	}
	return true
}

// intPart returns the integral digits, reading the zero value as "0".
func (d Decimal) intPart() string {
	if d.ipart == "" {
		return "0"
	}
	return d.ipart
}

// New converts a value to a (possibly signed) decimal with its natural scale.
// It accepts strings, all integer and unsigned integer types, floating-point
// values, [fmt.Stringer] implementations, and decimals themselves.
// Floating-point values are converted through their shortest exact decimal
// representation.
//
// New returns an error if the value is not numeric or is of an
// unsupported type.
func New(value any) (Decimal, error) {
	s, err := canonical(value)
	if err != nil {
		return Decimal{}, err
	}
	return Parse(s)
}

// NewExact is like [New], but it sets the scale of the result to exactly the
// given number of digits, right-padding the fractional part with zeros or
// truncating it without rounding.
func NewExact(value any, scale int) (Decimal, error) {
	s, err := canonical(value)
	if err != nil {
		return Decimal{}, err
	}
	return ParseExact(s, scale)
}

// NewStrict is like [NewExact], but instead of truncating excess fractional
// digits it returns an error wrapping [ErrPrecisionLoss].
func NewStrict(value any, scale int) (Decimal, error) {
	s, err := canonical(value)
	if err != nil {
		return Decimal{}, err
	}
	return ParseStrict(s, scale)
}

// canonical converts a supported value to its decimal string form.
func canonical(value any) (string, error) {
	switch v := value.(type) {
	case Decimal:
		return v.String(), nil
	case string:
		return v, nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("converting %T to decimal: %w", value, ErrInvalidInput)
	}
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical representation of a decimal value.
// The returned string does not use scientific notation and is formatted
// according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// The fractional part, including its trailing zeros, is present only when
// the scale is positive.
// Parsing the returned string at the same scale reproduces an equal decimal.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	var b strings.Builder
	b.Grow(len(d.intPart()) + len(d.fpart) + 2)
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteString(d.intPart())
	if d.fpart != "" {
		b.WriteByte('.')
		b.WriteString(d.fpart)
	}
	return b.String()
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return len(d.fpart)
}

// IsZero returns true if the magnitude of d is zero.
func (d Decimal) IsZero() bool {
	return d.intPart() == "0" && allZeros(d.fpart)
}

// IsNeg returns true if d is less than zero.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsPos returns true if d is greater than zero.
func (d Decimal) IsPos() bool {
	return !d.neg && !d.IsZero()
}

// IsInt returns true if the fractional part of d, after stripping trailing
// zeros, is empty.
func (d Decimal) IsInt() bool {
	return allZeros(d.fpart)
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	default:
		return 1
	}
}

// Trim returns a decimal with trailing zeros removed from the fractional
// part.
func (d Decimal) Trim() Decimal {
	return newDecimal(d.neg, d.intPart(), strings.TrimRight(d.fpart, "0"))
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	return newDecimal(false, d.intPart(), d.fpart)
}

// Neg returns d with the opposite sign.
// The negation of zero is zero.
func (d Decimal) Neg() Decimal {
	return newDecimal(!d.neg, d.intPart(), d.fpart)
}

// maxInt64Digits and minInt64Digits are the decimal digit runs of the
// int64 range boundaries.
const (
	maxInt64Digits = "9223372036854775807"
	minInt64Digits = "9223372036854775808"
)

// cmpDigits compares two digit runs as unsigned integers,
// ignoring leading zeros.
func cmpDigits(x, y string) int {
	x = trimLeadingZeros(x)
	y = trimLeadingZeros(y)
	switch {
	case len(x) != len(y):
		if len(x) < len(y) {
			return -1
		}
		return 1
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// IsBigInt returns true if the integral part of d does not fit
// into an int64.
func (d Decimal) IsBigInt() bool {
	limit := maxInt64Digits
	if d.neg {
		limit = minInt64Digits
	}
	return cmpDigits(d.intPart(), limit) > 0
}

// IsBigDecimal returns true if [Decimal.IsBigInt] is true or the fractional
// digit run of d, read as an integer, does not fit into an int64.
func (d Decimal) IsBigDecimal() bool {
	if d.IsBigInt() {
		return true
	}
	return cmpDigits(d.fpart, maxInt64Digits) > 0
}

// Int64 returns the integral part of d as an int64, discarding the
// fractional digits without rounding.
//
// If d does not fit into an int64, the error wraps [ErrOverflow].
func (d Decimal) Int64() (int64, error) {
	if d.IsBigInt() {
		return 0, fmt.Errorf("converting %q to int64: %w", d, ErrOverflow)
	}
	s := d.intPart()
	if d.neg {
		s = "-" + s
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("converting %q to int64: %w", d, ErrOverflow)
	}
	return i, nil
}

// Float64 returns the nearest binary floating-point approximation of d.
// The conversion is lossy by design.
//
// If [Decimal.IsBigDecimal] is true, the error wraps [ErrOverflow].
func (d Decimal) Float64() (float64, error) {
	if d.IsBigDecimal() {
		return 0, fmt.Errorf("converting %q to float64: %w", d, ErrOverflow)
	}
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("converting %q to float64: %w", d, ErrOverflow)
	}
	return f, nil
}

// Scientific returns d in the normalized scientific notation d.ddd...e±n,
// where the mantissa has exactly one non-zero digit before the decimal
// point.
// Zero is rendered as "0e0".
func (d Decimal) Scientific() string {
	if d.IsZero() {
		return "0e0"
	}
	var (
		digits string
		exp    int
	)
	if d.intPart() != "0" {
		digits = d.intPart() + d.fpart
		exp = len(d.intPart()) - 1
	} else {
		i := 0
		for d.fpart[i] == '0' {
			i++
		}
		digits = d.fpart[i:]
		exp = -(i + 1)
	}
	var b strings.Builder
	b.Grow(len(digits) + 8)
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The decimal is marshaled as a bare JSON string holding the canonical
// representation, never as a JSON number.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts both JSON strings and JSON numbers.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		var err error
		s, err = strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("unmarshaling %s: %w", data, ErrInvalidInput)
		}
	}
	var err error
	*d, err = Parse(s)
	return err
}

// Value implements the [driver.Valuer] interface.
// The decimal is stored as its canonical string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch v := value.(type) {
	case string:
		*d, err = Parse(v)
	case []byte:
		*d, err = Parse(string(v))
	case int64:
		*d, err = New(v)
	case float64:
		*d, err = New(v)
	default:
		err = fmt.Errorf("scanning %T into decimal: %w", value, ErrInvalidInput)
	}
	return err
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// The format flags '+', ' ', '0', and '-' can be used with all verbs.
// Precision is only supported for the %f verb; rounding uses the half-up
// rule of [Decimal.Round], and a precision larger than the scale pads the
// result with trailing zeros.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q', 'f', 'F':
		// ok
	default:
		fmt.Fprintf(state, "%%!%c(decimal.Decimal=%s)", verb, d.String())
		return
	}

	e := d
	tzeroes := 0
	if verb == 'f' || verb == 'F' {
		if p, ok := state.Precision(); ok {
			if p < 0 {
				p = 0
			}
			if p < e.Scale() {
				if r, err := e.Round(p); err == nil {
					e = r
				}
			} else {
				tzeroes = p - e.Scale()
			}
		}
	}

	digits := e.intPart()
	if e.fpart != "" || tzeroes > 0 {
		digits += "." + e.fpart
	}
	digits += strings.Repeat("0", tzeroes)

	sign := ""
	switch {
	case e.neg:
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	lzeroes, lspaces, tspaces := 0, 0, 0
	width := 2*len(quote) + len(sign) + len(digits)
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lspaces))
	b.WriteString(quote)
	b.WriteString(sign)
	b.WriteString(strings.Repeat("0", lzeroes))
	b.WriteString(digits)
	b.WriteString(quote)
	b.WriteString(strings.Repeat(" ", tspaces))
	state.Write([]byte(b.String()))
}
