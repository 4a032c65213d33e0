package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTanzaniaPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0752628215", "+255752628215"},
		{"255752628215", "+255752628215"},
		{"+255752628215", "+255752628215"},
		{" 0712000111 ", "+255712000111"},
	}
	for _, c := range cases {
		if got := TanzaniaPhone(c.in); got != c.want {
			t.Errorf("TanzaniaPhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInternationalPhone(t *testing.T) {
	if got := InternationalPhone("255752628215"); got != "+255752628215" {
		t.Errorf("InternationalPhone = %q", got)
	}
	if got := InternationalPhone("+255752628215"); got != "+255752628215" {
		t.Errorf("InternationalPhone should not double-prefix, got %q", got)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234567.89", "1,234,568"},
		{"-4500000", "-4,500,000"},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.in)
		if err != nil {
			t.Fatalf("bad test amount %q: %v", c.in, err)
		}
		if got := FormatAmount(d); got != c.want {
			t.Errorf("FormatAmount(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}
