package decimal

import (
	"errors"
	"testing"
)

func TestDecimal_Add(t *testing.T) {
	tests := []struct {
		x, y string
		want string
	}{
		{"0.1", "0.2", "0.3"},
		{"1.50", "2.3", "3.80"},
		{"2", "3", "5"},
		{"-1", "1", "0"},
		{"-1.5", "-2.5", "-4.0"},
		{"0.000", "0", "0.000"},
		{"99999999999999999999", "1", "100000000000000000000"},
		{"0.9", "0.1", "1.0"},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.x).Add(MustParse(tt.y))
		if err != nil {
			t.Errorf("%q.Add(%q) failed: %v", tt.x, tt.y, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.Add(%q) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecimal_Add_Properties(t *testing.T) {
	operands := []string{"0", "0.1", "-0.1", "1.50", "-2.3", "99999999999999999999.99"}
	for _, x := range operands {
		for _, y := range operands {
			a, b := MustParse(x), MustParse(y)
			got := a.MustAdd(b)
			want := b.MustAdd(a)
			if got != want {
				t.Errorf("%q.Add(%q) = %q, but %q.Add(%q) = %q", x, y, got, y, x, want)
			}
		}
	}
	for _, x := range operands {
		a := MustParse(x)
		got := a.MustAdd(MustParse("0"))
		if !got.Equal(a) {
			t.Errorf("%q.Add(0) = %q, want %q", x, got, a)
		}
	}
	// Associativity at a common scale.
	a, b, c := MustParse("0.1"), MustParse("0.2"), MustParse("0.3")
	left := a.MustAdd(b).MustAdd(c)
	right := a.MustAdd(b.MustAdd(c))
	if left != right {
		t.Errorf("(a+b)+c = %q, a+(b+c) = %q", left, right)
	}
}

func TestDecimal_Sub(t *testing.T) {
	tests := []struct {
		x, y string
		want string
	}{
		{"0.3", "0.1", "0.2"},
		{"1", "2", "-1"},
		{"-0.5", "-0.5", "0.0"},
		{"3.80", "2.3", "1.50"},
		{"0", "1.5", "-1.5"},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.x).Sub(MustParse(tt.y))
		if err != nil {
			t.Errorf("%q.Sub(%q) failed: %v", tt.x, tt.y, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.Sub(%q) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecimal_Mul(t *testing.T) {
	tests := []struct {
		x, y string
		want string
	}{
		{"1.5", "1.5", "2.25"},
		{"0.1", "0.2", "0.02"},
		{"-2", "3", "-6"},
		{"1.50", "2", "3.00"},
		{"0.00", "5", "0.00"},
		{"99999999999999999999", "99999999999999999999", "9999999999999999999800000000000000000001"},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.x).Mul(MustParse(tt.y))
		if err != nil {
			t.Errorf("%q.Mul(%q) failed: %v", tt.x, tt.y, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%q.Mul(%q) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}

	// Commutativity and identity.
	a, b := MustParse("1.5"), MustParse("-2.25")
	if a.MustMul(b) != b.MustMul(a) {
		t.Errorf("%q.Mul(%q) != %q.Mul(%q)", a, b, b, a)
	}
	if got := a.MustMul(MustParse("1")); !got.Equal(a) {
		t.Errorf("%q.Mul(1) = %q, want %q", a, got, a)
	}
}

func TestDecimal_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y  string
			scale int
			want  string
		}{
			{"10", "3", 4, "3.3333"},
			{"1", "3", 2, "0.33"},
			{"-10", "3", 2, "-3.33"},
			{"10", "-3", 2, "-3.33"},
			{"5", "2", 0, "2"},
			{"1.5", "0.5", 1, "3.0"},
			{"1", "8", 3, "0.125"},
			{"0", "3", 2, "0.00"},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.x).Quo(MustParse(tt.y), tt.scale)
			if err != nil {
				t.Errorf("%q.Quo(%q, %v) failed: %v", tt.x, tt.y, tt.scale, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Quo(%q, %v) = %q, want %q", tt.x, tt.y, tt.scale, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParse("5").Quo(MustParse("0"), 2)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("5.Quo(0, 2) = %v, want %v", err, ErrDivisionByZero)
		}
		_, err = MustParse("5").Quo(MustParse("0.00"), 2)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("5.Quo(0.00, 2) = %v, want %v", err, ErrDivisionByZero)
		}
		_, err = MustParse("5").Quo(MustParse("2"), -1)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("5.Quo(2, -1) = %v, want %v", err, ErrInvalidInput)
		}
	})
}

func TestDecimal_Pow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y string
			want string
		}{
			{"2", "10", "1024"},
			{"2.5", "2", "6.2"},
			{"2.50", "2", "6.25"},
			{"-2", "3", "-8"},
			{"2.00", "-2", "0.25"},
			{"2", "-2", "0"},
			{"5", "0", "1"},
			{"0", "0", "1"},
			{"0", "5", "0"},
			{"2", "2.9", "4"},
			{"10.0", "3", "1000.0"},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.x).Pow(MustParse(tt.y))
			if err != nil {
				t.Errorf("%q.Pow(%q) failed: %v", tt.x, tt.y, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Pow(%q) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParse("0").Pow(MustParse("-1"))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("0.Pow(-1) = %v, want %v", err, ErrDivisionByZero)
		}
		_, err = MustParse("10").Pow(MustParse("99999999999999999999"))
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("10.Pow(1e20) = %v, want %v", err, ErrOverflow)
		}
	})
}

func TestDecimal_Sqrt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x    string
			want string
		}{
			{"4", "2"},
			{"9", "3"},
			{"2", "1"},
			{"2.0000", "1.4142"},
			{"6.25", "2.50"},
			{"0", "0"},
			{"0.00", "0.00"},
			{"100.00", "10.00"},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.x).Sqrt()
			if err != nil {
				t.Errorf("%q.Sqrt() failed: %v", tt.x, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Sqrt() = %q, want %q", tt.x, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParse("-1").Sqrt()
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("-1.Sqrt() = %v, want %v", err, ErrInvalidInput)
		}
	})
}

func TestDecimal_Mod(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y string
			want string
		}{
			{"10.5", "3", "1.5"},
			{"-10.5", "3", "-1.5"},
			{"10", "3", "1"},
			{"7.5", "2.5", "0.0"},
			{"1", "0.3", "0"},
			{"1.0", "0.3", "0.1"},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.x).Mod(MustParse(tt.y))
			if err != nil {
				t.Errorf("%q.Mod(%q) failed: %v", tt.x, tt.y, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Mod(%q) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParse("5").Mod(MustParse("0"))
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("5.Mod(0) = %v, want %v", err, ErrDivisionByZero)
		}
	})
}

func TestDecimal_Cmp(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"1.1", "1.10", 0},
		{"1.5", "1.5", 0},
		{"0", "-0", 0},
		{"2", "1", 1},
		{"1", "2", -1},
		{"-2", "1", -1},
		{"1", "-2", 1},
		{"-1", "-2", 1},
		{"0.001", "0.0001", 1},
		{"99999999999999999999", "99999999999999999998", 1},
	}
	for _, tt := range tests {
		got := MustParse(tt.x).Cmp(MustParse(tt.y))
		if got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecimal_Comparisons(t *testing.T) {
	a, b := MustParse("1.5"), MustParse("2.5")
	if !a.LessThan(b) || a.GreaterThan(b) {
		t.Errorf("%q is not less than %q", a, b)
	}
	if !b.GreaterThan(a) || b.LessThan(a) {
		t.Errorf("%q is not greater than %q", b, a)
	}
	if !a.Equal(MustParse("1.50")) {
		t.Errorf("%q is not equal to %q", a, "1.50")
	}
	if !a.LessThanOrEqual(a) || !a.GreaterThanOrEqual(a) {
		t.Errorf("%q is not less than or equal to itself", a)
	}
}

func TestDecimal_MaxMin(t *testing.T) {
	tests := []struct {
		x, y     string
		max, min string
	}{
		{"1.5", "2.5", "2.5", "1.5"},
		{"-1", "1", "1", "-1"},
		{"1.5", "1.50", "1.5", "1.5"},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.x), MustParse(tt.y)
		if got := a.Max(b); got.String() != tt.max {
			t.Errorf("%q.Max(%q) = %q, want %q", tt.x, tt.y, got, tt.max)
		}
		if got := a.Min(b); got.String() != tt.min {
			t.Errorf("%q.Min(%q) = %q, want %q", tt.x, tt.y, got, tt.min)
		}
	}
}
