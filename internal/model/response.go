package model

import (
	json "github.com/goccy/go-json"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/jsonpatch"
)

type (
	ChildSupportResponse  = calc.SupportResult
	ParentingTimeResponse = calc.ParentingTimeResult
	AssetDivisionResponse = calc.AssetDivisionResult
)

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CaseID                 string `json:"case_id"`
	RulesVersion           string `json:"rules_version"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages     []CalculationMessage   `json:"messages"`
	Calculations []ProcessedCalculation `json:"calculations"`
}

type ProcessedCalculation struct {
	Calculation               Calculation     `json:"calculation"`
	Output                    json.RawMessage `json:"output,omitempty"`
	CalculationMessageIndexes []int           `json:"calculation_message_indexes,omitempty"`
}

type CompareResponse struct {
	Baseline json.RawMessage       `json:"baseline"`
	Proposed json.RawMessage       `json:"proposed"`
	Patch    []jsonpatch.Operation `json:"patch"`
	Messages []CalculationMessage  `json:"messages"`
}

type FormSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	RulesVersion string `json:"rules_version"`
	RulesSource  string `json:"rules_source"`
}

type ErrorResponse struct {
	Status   int                  `json:"status"`
	Message  string               `json:"message"`
	Messages []CalculationMessage `json:"messages,omitempty"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
