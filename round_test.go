package decimal

import (
	"errors"
	"testing"
)

func TestDecimal_Round(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s     string
			scale int
			want  string
		}{
			{"2.5", 0, "3"},
			{"-2.5", 0, "-3"},
			{"2.4", 0, "2"},
			{"-2.4", 0, "-2"},
			{"0.49", 0, "0"},
			{"-0.5", 0, "-1"},
			{"1.005", 2, "1.01"},
			{"1.004", 2, "1.00"},
			{"1.249", 2, "1.25"},
			{"2.5", 1, "2.5"},
			{"1.5", 3, "1.500"},
			{"0", 2, "0.00"},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.s).Round(tt.scale)
			if err != nil {
				t.Errorf("%q.Round(%v) failed: %v", tt.s, tt.scale, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Round(%v) = %q, want %q", tt.s, tt.scale, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParse("1.5").Round(-1)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("1.5.Round(-1) = %v, want %v", err, ErrInvalidInput)
		}
	})
}

func TestDecimal_Ceil(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s     string
			scale int
			want  string
		}{
			{"2.1", 0, "3"},
			{"2.9", 0, "3"},
			{"-2.9", 0, "-2"},
			{"-0.5", 0, "0"},
			{"2.00", 0, "2"},
			{"2", 0, "2"},
			{"1.21", 1, "1.3"},
			{"-1.29", 1, "-1.2"},
			{"1.5", 2, "1.50"},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.s).Ceil(tt.scale)
			if err != nil {
				t.Errorf("%q.Ceil(%v) failed: %v", tt.s, tt.scale, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Ceil(%v) = %q, want %q", tt.s, tt.scale, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParse("1.5").Ceil(-1)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("1.5.Ceil(-1) = %v, want %v", err, ErrInvalidInput)
		}
	})
}

func TestDecimal_Floor(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s     string
			scale int
			want  string
		}{
			{"2.9", 0, "2"},
			{"2.1", 0, "2"},
			{"-2.1", 0, "-3"},
			{"-0.5", 0, "-1"},
			{"2.00", 0, "2"},
			{"-2.00", 0, "-2"},
			{"1.29", 1, "1.2"},
			{"-1.21", 1, "-1.3"},
			{"-1.20", 1, "-1.2"},
			{"1.5", 2, "1.50"},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.s).Floor(tt.scale)
			if err != nil {
				t.Errorf("%q.Floor(%v) failed: %v", tt.s, tt.scale, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Floor(%v) = %q, want %q", tt.s, tt.scale, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParse("1.5").Floor(-1)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("1.5.Floor(-1) = %v, want %v", err, ErrInvalidInput)
		}
	})
}

func TestDecimal_Trunc(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s     string
			scale int
			want  string
		}{
			{"1.999", 2, "1.99"},
			{"1.999", 0, "1"},
			{"-1.999", 0, "-1"},
			{"-0.5", 0, "0"},
			{"1.5", 3, "1.5"},
			{"2", 0, "2"},
			{"1.50", 1, "1.5"},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.s).Trunc(tt.scale)
			if err != nil {
				t.Errorf("%q.Trunc(%v) failed: %v", tt.s, tt.scale, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Trunc(%v) = %q, want %q", tt.s, tt.scale, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := MustParse("1.5").Trunc(-1)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("1.5.Trunc(-1) = %v, want %v", err, ErrInvalidInput)
		}
	})
}
