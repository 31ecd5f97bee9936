package decimal

import (
	"fmt"
	"math/big"
	"strings"
)

// BigEngine is an [Engine] backed by the standard library's math/big,
// representing every operand as a scaled integer coefficient.
// It exists to demonstrate that the arithmetic backend is swappable and
// to cross-check the default engine in tests.
type BigEngine struct{}

// NewBigEngine returns an engine backed by math/big.
func NewBigEngine() BigEngine {
	return BigEngine{}
}

var bigTen = big.NewInt(10)

// pow10big returns 10^n.
func pow10big(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// parseCoef converts a plain or fixed-point decimal string to a signed
// coefficient and its scale, so that the value is coef / 10^scale.
func (e BigEngine) parseCoef(s string) (*big.Int, int, error) {
	var (
		pos   int
		width int
		neg   bool
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
	istart := pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	digits := s[istart:pos]

	// Fraction
	scale := 0
	if pos < width && s[pos] == '.' {
		pos++
		fstart := pos
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			pos++
		}
		digits += s[fstart:pos]
		scale = pos - fstart
	}

	if pos != width || digits == "" {
		return nil, 0, fmt.Errorf("parsing %q: %w", s, ErrInvalidInput)
	}

	coef, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, 0, fmt.Errorf("parsing %q: %w", s, ErrInvalidInput)
	}
	if neg {
		coef.Neg(coef)
	}
	return coef, scale, nil
}

func (e BigEngine) parseCoef2(x, y string) (*big.Int, int, *big.Int, int, error) {
	ca, sa, err := e.parseCoef(x)
	if err != nil {
		return nil, 0, nil, 0, err
	}
	cb, sb, err := e.parseCoef(y)
	if err != nil {
		return nil, 0, nil, 0, err
	}
	return ca, sa, cb, sb, nil
}

// rescale converts a coefficient from one scale to another, truncating
// toward zero when digits are dropped.
func rescale(coef *big.Int, from, to int) *big.Int {
	switch {
	case to > from:
		return new(big.Int).Mul(coef, pow10big(to-from))
	case to < from:
		return new(big.Int).Quo(coef, pow10big(from-to))
	default:
		return coef
	}
}

// render formats a coefficient at the given scale as a plain decimal
// string with exactly scale digits after the decimal point.
func render(coef *big.Int, scale int) string {
	digits := new(big.Int).Abs(coef).String()
	if len(digits) < scale+1 {
		digits = strings.Repeat("0", scale+1-len(digits)) + digits
	}
	var b strings.Builder
	b.Grow(len(digits) + 2)
	if coef.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(digits[:len(digits)-scale])
	if scale > 0 {
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-scale:])
	}
	return b.String()
}

func (e BigEngine) Add(x, y string, scale int) (string, error) {
	ca, sa, cb, sb, err := e.parseCoef2(x, y)
	if err != nil {
		return "", err
	}
	m := max(sa, sb)
	sum := new(big.Int).Add(rescale(ca, sa, m), rescale(cb, sb, m))
	return render(rescale(sum, m, scale), scale), nil
}

func (e BigEngine) Sub(x, y string, scale int) (string, error) {
	ca, sa, cb, sb, err := e.parseCoef2(x, y)
	if err != nil {
		return "", err
	}
	m := max(sa, sb)
	diff := new(big.Int).Sub(rescale(ca, sa, m), rescale(cb, sb, m))
	return render(rescale(diff, m, scale), scale), nil
}

func (e BigEngine) Mul(x, y string, scale int) (string, error) {
	ca, sa, cb, sb, err := e.parseCoef2(x, y)
	if err != nil {
		return "", err
	}
	prod := new(big.Int).Mul(ca, cb)
	return render(rescale(prod, sa+sb, scale), scale), nil
}

func (e BigEngine) Quo(x, y string, scale int) (string, error) {
	ca, sa, cb, sb, err := e.parseCoef2(x, y)
	if err != nil {
		return "", err
	}
	if cb.Sign() == 0 {
		return "", fmt.Errorf("dividing %q by %q: %w", x, y, ErrDivisionByZero)
	}
	// coef = ⌊ca * 10^(scale+sb) / (cb * 10^sa)⌋, truncated toward zero.
	num := new(big.Int).Mul(ca, pow10big(scale+sb))
	den := new(big.Int).Mul(cb, pow10big(sa))
	return render(num.Quo(num, den), scale), nil
}

func (e BigEngine) Mod(x, y string, scale int) (string, error) {
	ca, sa, cb, sb, err := e.parseCoef2(x, y)
	if err != nil {
		return "", err
	}
	if cb.Sign() == 0 {
		return "", fmt.Errorf("dividing %q by %q: %w", x, y, ErrDivisionByZero)
	}
	// Integer quotient of the values, truncated toward zero.
	num := new(big.Int).Mul(ca, pow10big(sb))
	den := new(big.Int).Mul(cb, pow10big(sa))
	q := num.Quo(num, den)

	m := max(sa, sb)
	rem := new(big.Int).Mul(q, rescale(cb, sb, m))
	rem.Sub(rescale(ca, sa, m), rem)
	return render(rescale(rem, m, scale), scale), nil
}

func (e BigEngine) Pow(x, exp string, scale int) (string, error) {
	ca, sa, err := e.parseCoef(x)
	if err != nil {
		return "", err
	}
	ce, se, err := e.parseCoef(exp)
	if err != nil {
		return "", err
	}
	// Integral exponent only; the fractional part is discarded.
	whole := rescale(ce, se, 0)
	if !whole.IsInt64() {
		return "", fmt.Errorf("exponent %q: %w", exp, ErrOverflow)
	}
	n := whole.Int64()

	if n == 0 {
		return render(pow10big(scale), scale), nil
	}
	if ca.Sign() == 0 {
		if n < 0 {
			return "", fmt.Errorf("raising %q to %v: %w", x, n, ErrDivisionByZero)
		}
		return render(big.NewInt(0), scale), nil
	}

	abs := n
	if abs < 0 {
		abs = -abs
	}
	est := (int64(len(ca.String())) + int64(sa)) * abs
	if est+int64(scale) > maxPowDigits {
		return "", fmt.Errorf("raising %q to %v: %w", x, n, ErrOverflow)
	}

	p := new(big.Int).Exp(new(big.Int).Abs(ca), big.NewInt(abs), nil)
	if ca.Sign() < 0 && abs%2 == 1 {
		p.Neg(p)
	}
	ps := sa * int(abs)
	if n > 0 {
		return render(rescale(p, ps, scale), scale), nil
	}
	// coef = ⌊10^(scale+ps) / p⌋, truncated toward zero.
	num := pow10big(scale + ps)
	return render(num.Quo(num, p), scale), nil
}

func (e BigEngine) Sqrt(x string, scale int) (string, error) {
	ca, sa, err := e.parseCoef(x)
	if err != nil {
		return "", err
	}
	if ca.Sign() < 0 {
		return "", fmt.Errorf("square root of %q: %w", x, ErrInvalidInput)
	}
	// coef = ⌊√(ca * 10^(2*scale-sa))⌋; the shift is padded to an even
	// power so the root of the padding divides out exactly.
	shift := 2*scale - sa
	k := 0
	if shift < 0 {
		k = (-shift + 1) / 2
	}
	m := new(big.Int).Mul(ca, pow10big(shift+2*k))
	root := m.Sqrt(m)
	if k > 0 {
		root.Quo(root, pow10big(k))
	}
	return render(root, scale), nil
}

func (e BigEngine) Cmp(x, y string, scale int) (int, error) {
	ca, sa, cb, sb, err := e.parseCoef2(x, y)
	if err != nil {
		return 0, err
	}
	return rescale(ca, sa, scale).Cmp(rescale(cb, sb, scale)), nil
}
