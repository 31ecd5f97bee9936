package decimal

// Engine is an arbitrary-precision calculator over canonical decimal
// strings.
// Every operation produces its result at the requested non-negative scale,
// discarding digits beyond it without rounding, in the manner of bcmath.
// Rounding is always applied explicitly by the decimal type on top of
// these truncating primitives.
//
// An Engine must be a pure function of its operands: no shared mutable
// state, safe for concurrent use.
type Engine interface {
	// Add returns x + y at the given scale.
	Add(x, y string, scale int) (string, error)
	// Sub returns x - y at the given scale.
	Sub(x, y string, scale int) (string, error)
	// Mul returns x * y at the given scale.
	Mul(x, y string, scale int) (string, error)
	// Quo returns x / y at the given scale.
	// It returns an error wrapping [ErrDivisionByZero] if y is zero.
	Quo(x, y string, scale int) (string, error)
	// Mod returns x - y * t at the given scale, where t is x / y truncated
	// to an integer. The sign of the result follows x.
	// It returns an error wrapping [ErrDivisionByZero] if y is zero.
	Mod(x, y string, scale int) (string, error)
	// Pow returns x raised to the integral exponent exp at the given scale.
	// A fractional part of exp is discarded.
	Pow(x, exp string, scale int) (string, error)
	// Sqrt returns the square root of x at the given scale.
	// It returns an error wrapping [ErrInvalidInput] if x is negative.
	Sqrt(x string, scale int) (string, error)
	// Cmp compares x and y, both truncated to the given scale, and
	// returns -1, 0, or +1.
	Cmp(x, y string, scale int) (int, error)
}

// maxPowDigits limits the estimated digit count of a power's result.
// Beyond it, Pow fails with [ErrOverflow] instead of materializing an
// arbitrarily large coefficient.
const maxPowDigits = 1 << 16

// arith is the engine all decimals delegate their arithmetic to.
var arith Engine = APDEngine{}

// SetEngine replaces the package-level arithmetic engine.
// It is intended for program initialization and is not synchronized with
// concurrent decimal operations.
func SetEngine(e Engine) {
	if e == nil {
		panic("decimal: nil engine")
	}
	arith = e
}

// DefaultEngine returns the engine currently used by all decimals.
func DefaultEngine() Engine {
	return arith
}
