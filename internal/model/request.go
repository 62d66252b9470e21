package model

import json "github.com/goccy/go-json"

// ChildSupportRequest mirrors POST /api/calculators/child-support. Counts are
// plain JSON numbers and are checked for integrality during validation.
type ChildSupportRequest struct {
	ParentAIncome         float64  `json:"parentAIncome"`
	ParentBIncome         float64  `json:"parentBIncome"`
	ChildrenCount         float64  `json:"childrenCount"`
	OvernightsParentA     float64  `json:"overnightsParentA"`
	OvernightsParentB     float64  `json:"overnightsParentB"`
	ExtraordinaryMedical  *float64 `json:"extraordinaryMedical,omitempty"`
	ExtraordinaryExpenses *float64 `json:"extraordinaryExpenses,omitempty"`
	EducationalExpenses   *float64 `json:"educationalExpenses,omitempty"`
	OtherChildSupport     *float64 `json:"otherChildSupport,omitempty"`
}

type ParentingTimeRequest struct {
	RegularSchedule RegularSchedule `json:"regularSchedule"`
	SummerSchedule  *SummerSchedule `json:"summerSchedule,omitempty"`
	SchoolBreaks    *SchoolBreaks   `json:"schoolBreaks,omitempty"`
}

type RegularSchedule struct {
	WeekdaysParentA float64 `json:"weekdaysParentA"`
	WeekendsParentA float64 `json:"weekendsParentA"`
	HolidaysParentA float64 `json:"holidaysParentA"`
}

type SummerSchedule struct {
	WeeksParentA float64 `json:"weeksParentA"`
}

type SchoolBreaks struct {
	SpringBreakParentA     bool `json:"springBreakParentA"`
	FallBreakParentA       bool `json:"fallBreakParentA"`
	WinterBreakAlternating bool `json:"winterBreakAlternating"`
}

type AssetDivisionRequest struct {
	MaritalAssets     float64  `json:"maritalAssets"`
	MaritalDebts      float64  `json:"maritalDebts"`
	SeparatePropertyA float64  `json:"separatePropertyA"`
	SeparatePropertyB float64  `json:"separatePropertyB"`
	MaintenanceFactor *float64 `json:"maintenanceFactor,omitempty"`
}

// CalculationRequest is the batch envelope for POST /api/calculations.
type CalculationRequest struct {
	CaseID       string        `json:"case_id"`
	Calculations []Calculation `json:"calculations"`
}

type Calculation struct {
	CalculationID string          `json:"calculation_id"`
	Calculator    string          `json:"calculator"`
	Properties    json.RawMessage `json:"properties"`
}

// CompareRequest holds two payloads for the same calculator.
type CompareRequest struct {
	Baseline json.RawMessage `json:"baseline"`
	Proposed json.RawMessage `json:"proposed"`
}
