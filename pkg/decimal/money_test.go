package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(1234.56)
	if m.String() != "1234.56" {
		t.Fatalf("expected 1234.56, got %s", m.String())
	}
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1000.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.String() != "1000.50" {
		t.Fatalf("expected 1000.50, got %s", m.String())
	}

	if _, err := NewMoneyFromString("not money"); err == nil {
		t.Fatalf("expected an error for a malformed amount")
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoney(100)
	b := NewMoney(40)

	if !a.Add(b).Equal(NewMoney(140)) {
		t.Fatalf("expected 140, got %s", a.Add(b))
	}
	if !a.Sub(b).Equal(NewMoney(60)) {
		t.Fatalf("expected 60, got %s", a.Sub(b))
	}
	if !a.Mul(decimal.NewFromInt(2)).Equal(NewMoney(200)) {
		t.Fatalf("expected 200, got %s", a.Mul(decimal.NewFromInt(2)))
	}
	if !a.Div(decimal.NewFromInt(4)).Equal(NewMoney(25)) {
		t.Fatalf("expected 25, got %s", a.Div(decimal.NewFromInt(4)))
	}
}

func TestMoney_AnnualMonthly(t *testing.T) {
	monthly := NewMoney(1000)
	if !monthly.Annual().Equal(NewMoney(12000)) {
		t.Fatalf("expected 12000, got %s", monthly.Annual())
	}
	if !monthly.Annual().Monthly().Equal(monthly) {
		t.Fatalf("annual/monthly round trip failed")
	}
}

func TestMoney_Round(t *testing.T) {
	m := NewMoney(10.004)
	if m.Round().String() != "10.00" {
		t.Fatalf("expected rounding to 10.00, got %s", m.Round().String())
	}
	m = NewMoney(10.005)
	if m.Round().String() != "10.01" {
		t.Fatalf("expected rounding to 10.01, got %s", m.Round().String())
	}
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoney(5)
	b := NewMoney(10)

	if !a.LessThan(b) || !b.GreaterThan(a) {
		t.Fatalf("comparison failure between %s and %s", a, b)
	}
	if !a.LessThanOrEqual(a) || !a.GreaterThanOrEqual(a) {
		t.Fatalf("reflexive comparison failure")
	}
	if !Min(a, b).Equal(a) || !Max(a, b).Equal(b) {
		t.Fatalf("min/max failure")
	}
}

func TestMoney_Predicates(t *testing.T) {
	if !Zero().IsZero() {
		t.Fatalf("expected zero to be zero")
	}
	if !NewMoney(1).IsPositive() {
		t.Fatalf("expected 1 to be positive")
	}
	if !NewMoney(-1).IsNegative() {
		t.Fatalf("expected -1 to be negative")
	}
}

func TestMoney_FormatCHF(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "CHF 0"},
		{950, "CHF 950"},
		{1000, "CHF 1'000"},
		{1000000, "CHF 1'000'000"},
		{1234567.89, "CHF 1'234'568"},
		{-54321, "CHF -54'321"},
	}
	for _, c := range cases {
		if got := NewMoney(c.in).FormatCHF(); got != c.want {
			t.Fatalf("FormatCHF(%v): expected %q, got %q", c.in, c.want, got)
		}
	}
}
