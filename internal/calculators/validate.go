package calculators

import (
	"bytes"
	"fmt"
	"math"

	json "github.com/goccy/go-json"

	"familaw-engine/internal/model"
)

// Message codes emitted during validation.
const (
	CodeInvalidProperties       = "INVALID_PROPERTIES"
	CodeMissingField            = "MISSING_FIELD"
	CodeNotFinite               = "NOT_FINITE"
	CodeNegativeValue           = "NEGATIVE_VALUE"
	CodeNotAnInteger            = "NOT_AN_INTEGER"
	CodeInvalidChildCount       = "INVALID_CHILD_COUNT"
	CodeInvalidSchedule         = "INVALID_SCHEDULE"
	CodeOvernightsOutOfRange    = "OVERNIGHTS_OUT_OF_RANGE"
	CodeInvalidMaintenance      = "INVALID_MAINTENANCE_FACTOR"
	CodeZeroCombinedIncome      = "ZERO_COMBINED_INCOME"
	CodeIncomeBelowLowThreshold = "INCOME_BELOW_LOW_THRESHOLD"
	CodeIncomeAboveHigh         = "INCOME_ABOVE_HIGH_THRESHOLD"
	CodeOvernightsNotPartition  = "OVERNIGHTS_NOT_PARTITIONED"
	CodeChildCountClamped       = "CHILD_COUNT_CLAMPED"
)

// checker accumulates messages for one payload.
type checker struct {
	msgs []model.CalculationMessage
}

func (c *checker) critical(field, code, format string, args ...any) {
	c.msgs = append(c.msgs, model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *checker) warn(field, code, format string, args ...any) {
	c.msgs = append(c.msgs, model.CalculationMessage{
		Level:   model.LevelWarning,
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *checker) failed() bool { return model.HasCritical(c.msgs) }

// decode unmarshals props into v and checks that every required top-level key
// is present. It returns false when the payload cannot be used at all.
func (c *checker) decode(props json.RawMessage, v any, required ...string) bool {
	if len(bytes.TrimSpace(props)) == 0 {
		c.critical("", CodeInvalidProperties, "properties are required")
		return false
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(props, &keys); err != nil {
		c.critical("", CodeInvalidProperties, "properties must be a JSON object: %v", err)
		return false
	}
	c.require(keys, "", required...)
	if c.failed() {
		return false
	}
	if err := json.Unmarshal(props, v); err != nil {
		c.critical("", CodeInvalidProperties, "invalid properties: %v", err)
		return false
	}
	return true
}

// require flags every key of obj that is absent or null. Fields are reported
// under prefix when it is set.
func (c *checker) require(obj map[string]json.RawMessage, prefix string, keys ...string) {
	for _, f := range keys {
		raw, ok := obj[f]
		if ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		if prefix != "" {
			f = prefix + "." + f
		}
		c.critical(f, CodeMissingField, "%s is required", f)
	}
}

func (c *checker) finite(field string, v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		c.critical(field, CodeNotFinite, "%s must be a finite number", field)
		return false
	}
	return true
}

func (c *checker) nonNegative(field string, v float64) bool {
	if !c.finite(field, v) {
		return false
	}
	if v < 0 {
		c.critical(field, CodeNegativeValue, "%s must be non-negative, got %v", field, v)
		return false
	}
	return true
}

func (c *checker) optionalNonNegative(field string, v *float64) {
	if v != nil {
		c.nonNegative(field, *v)
	}
}

func (c *checker) integer(field string, v float64) bool {
	if !c.finite(field, v) {
		return false
	}
	if v != math.Trunc(v) {
		c.critical(field, CodeNotAnInteger, "%s must be a whole number, got %v", field, v)
		return false
	}
	return true
}

// within checks lo <= v <= hi and reports code otherwise.
func (c *checker) within(field, code string, v, lo, hi float64) bool {
	if v < lo || v > hi {
		c.critical(field, code, "%s must be between %v and %v, got %v", field, lo, hi, v)
		return false
	}
	return true
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
