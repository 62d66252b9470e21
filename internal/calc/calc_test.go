package calc

import (
	"testing"

	"familaw-engine/internal/statutes"
)

func TestRoundHalfTowardPositiveInfinity(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{2.5, 3},
		{2.49, 2},
		{-2.5, -2},
		{-2.51, -3},
		{105.6, 106},
		{0, 0},
	}
	for _, c := range cases {
		if got := round(c.in); got != c.want {
			t.Fatalf("round(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := round2(0.5625); got != 0.56 {
		t.Fatalf("expected 0.56, got %v", got)
	}
	if got := round2(0.4375); got != 0.44 {
		t.Fatalf("expected 0.44, got %v", got)
	}
}

func TestIncomeSharesZeroCombined(t *testing.T) {
	a, b := IncomeShares(0, 0)
	if a != 0.5 || b != 0.5 {
		t.Fatalf("expected even split, got %v/%v", a, b)
	}
}

func newCalculator() *Calculator {
	return New(statutes.Default())
}
