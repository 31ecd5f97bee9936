/*
Package decimal implements immutable arbitrary-precision decimal numbers.
It is designed for monetary and financial computations, where exact
representation of decimal fractions and explicit, controllable precision
matter more than raw speed.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Integral part: the digits before the decimal point, stored without
    leading zeros.
  - Fractional part: the digits after the decimal point, stored with
    trailing zeros retained.

The scale of a decimal is the length of its fractional part.
For example, 1.5 and 1.50 are numerically equal but have scales of 1 and 2.
This makes the scale an explicit property of every value: constructing a
decimal with an explicit scale pads or truncates the fractional digits to
exactly that length, and every arithmetic operation documents the scale of
its result.

Special values such as NaN, Infinity, or negative zeros are not supported.
A value of zero magnitude is never negative, even when constructed
from "-0".

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [ParseExact], [ParseStrict], [Decimal.String],
    [Decimal.Scientific], [Decimal.Format].
  - from arbitrary values:
    [New], [NewExact], [NewStrict] accept strings, integers,
    floating-point values, and [fmt.Stringer] implementations.
  - to native types:
    [Decimal.Int64], [Decimal.Float64], both failing with [ErrOverflow]
    when the value is outside the native range.

See the documentation for each method for more details.

# Operations

The decimal type does not implement arbitrary-precision arithmetic itself.
Every operation converts its operands to their canonical strings,
delegates the computation to an [Engine], and parses the result back.
The engine contract follows bcmath: results are produced at an explicitly
requested scale, and digits beyond that scale are discarded, never rounded.
Rounding is always an explicit step on top of the truncating primitives.

Two engines are provided:

  - [APDEngine] (the default), backed by the cockroachdb/apd
    arbitrary-precision decimal package.
  - [BigEngine], backed by the standard library's math/big.

[SetEngine] swaps the backend at program initialization.

The scale of each result is resolved as follows:

  - [Decimal.Add], [Decimal.Sub]:
    the larger scale of the two operands.
  - [Decimal.Mul]:
    the sum of the operands' scales.
  - [Decimal.Quo]:
    always chosen by the caller; there is no default scale for division.
  - [Decimal.Pow], [Decimal.Sqrt], [Decimal.Mod]:
    the scale of the receiver.

# Rounding

The package provides several methods for explicit rounding:

  - half-up rounding, away from zero on a discarded half:
    [Decimal.Round].
  - rounding towards positive infinity:
    [Decimal.Ceil].
  - rounding towards negative infinity:
    [Decimal.Floor].
  - discarding digits without rounding:
    [Decimal.Trunc].

# Errors

All methods are pure and return errors rather than panic.
Four sentinel errors classify every failure and can be tested
with [errors.Is]:

  - [ErrInvalidInput]:
    a value is not numeric, its syntax is malformed, a scale argument is
    negative, or a square root of a negative value was requested.
  - [ErrPrecisionLoss]:
    a strict construction detected more fractional digits than the
    declared scale allows.
  - [ErrDivisionByZero]:
    division or modulo by a zero-magnitude operand, or zero raised to a
    negative power.
  - [ErrOverflow]:
    a conversion to int64 or float64 whose range cannot hold the value.

[errors.Is]: https://pkg.go.dev/errors#Is
*/
package decimal
