// Package calculators validates raw calculator payloads and applies them to a
// calc.Calculator. Each calculator is registered under a name used by the
// batch engine and the HTTP routes.
package calculators

import (
	json "github.com/goccy/go-json"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/model"
)

// Handler defines the contract for all calculator implementations.
// Validate reports input problems as messages; Apply is only called when
// Validate produced no CRITICAL message.
type Handler interface {
	Validate(c *calc.Calculator, props json.RawMessage) []model.CalculationMessage
	Apply(c *calc.Calculator, props json.RawMessage) (any, []model.CalculationMessage)
}
