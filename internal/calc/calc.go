// Package calc implements the family-law calculators: child support under the
// income shares model, parenting-time classification and equitable asset
// division.
//
// Every function here is pure. Inputs are expected to be validated by the
// caller (see package calculators); the calculators never log, never perform
// I/O and are safe for concurrent use.
package calc

import (
	"math"

	"familaw-engine/internal/statutes"
)

// Disclaimer accompanies every list of recommendations.
const Disclaimer = "Recommendations are advisory only and are not legal determinations."

// Calculator evaluates the calculators against one rule table.
type Calculator struct {
	rules *statutes.Table
}

func New(rules *statutes.Table) *Calculator {
	return &Calculator{rules: rules}
}

func (c *Calculator) Rules() *statutes.Table { return c.rules }

// round rounds half toward positive infinity, so -2.5 becomes -2 and 2.5 becomes 3.
// Published figures depend on this exact behavior.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// round2 rounds to two decimal places using round.
func round2(x float64) float64 {
	return round(x*100) / 100
}
