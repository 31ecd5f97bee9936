package decimal

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustNew is like [New] but panics if the value cannot be converted.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(value any) Decimal {
	d, err := New(value)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v) failed: %v", value, err))
	}
	return d
}

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal) MustAdd(e Decimal) Decimal {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal) MustSub(e Decimal) Decimal {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal) MustMul(e Decimal) Decimal {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal, scale int) Decimal {
	f, err := d.Quo(e, scale)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", e, scale, err))
	}
	return f
}
