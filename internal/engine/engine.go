package engine

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/calculators"
	"familaw-engine/internal/jsonpatch"
	"familaw-engine/internal/model"
)

// Process runs each calculation in order. The first CRITICAL message stops
// the batch; calculations already completed keep their output.
func Process(c *calc.Calculator, req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	var allMessages []model.CalculationMessage
	var processed []model.ProcessedCalculation
	outcome := model.OutcomeSuccess

	record := func(msgs []model.CalculationMessage) []int {
		var idx []int
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			idx = append(idx, m.ID)
		}
		return idx
	}

	for _, calcReq := range req.Calculations {
		handler, ok := calculators.Get(calcReq.Calculator)
		if !ok {
			idx := record([]model.CalculationMessage{{
				Level:   model.LevelCritical,
				Code:    "UNKNOWN_CALCULATOR",
				Field:   "calculator",
				Message: fmt.Sprintf("Unknown calculator: %s", calcReq.Calculator),
			}})
			processed = append(processed, model.ProcessedCalculation{
				Calculation:               calcReq,
				CalculationMessageIndexes: idx,
			})
			outcome = model.OutcomeFailure
			break
		}

		validationMsgs := handler.Validate(c, calcReq.Properties)
		msgIndexes := record(validationMsgs)
		if model.HasCritical(validationMsgs) {
			processed = append(processed, model.ProcessedCalculation{
				Calculation:               calcReq,
				CalculationMessageIndexes: msgIndexes,
			})
			outcome = model.OutcomeFailure
			break
		}

		out, applyMsgs := handler.Apply(c, calcReq.Properties)
		var output json.RawMessage
		if out != nil {
			raw, err := json.Marshal(out)
			if err != nil {
				applyMsgs = append(applyMsgs, model.CalculationMessage{
					Level:   model.LevelCritical,
					Code:    "ENCODING_FAILED",
					Message: err.Error(),
				})
			}
			output = raw
		}
		msgIndexes = append(msgIndexes, record(applyMsgs)...)

		processed = append(processed, model.ProcessedCalculation{
			Calculation:               calcReq,
			Output:                    output,
			CalculationMessageIndexes: msgIndexes,
		})

		if model.HasCritical(applyMsgs) {
			outcome = model.OutcomeFailure
			break
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}
	if processed == nil {
		processed = []model.ProcessedCalculation{}
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CaseID:                 req.CaseID,
			RulesVersion:           c.Rules().Version,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:     allMessages,
			Calculations: processed,
		},
	}
}

// Compare runs one calculator on a baseline and a proposed payload and
// returns both outputs with the patch from baseline to proposed. Validation
// and calculation messages are returned for both payloads; a CRITICAL one on
// either side leaves outputs and patch empty.
func Compare(c *calc.Calculator, name string, req *model.CompareRequest) (*model.CompareResponse, error) {
	handler, ok := calculators.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", calculators.ErrUnknownCalculator, name)
	}
	return compare(c, handler, req)
}

func compare(c *calc.Calculator, handler calculators.Handler, req *model.CompareRequest) (*model.CompareResponse, error) {
	resp := &model.CompareResponse{Messages: []model.CalculationMessage{}, Patch: []jsonpatch.Operation{}}
	record := func(label string, msgs []model.CalculationMessage) {
		for _, m := range msgs {
			m.ID = len(resp.Messages)
			if m.Field != "" {
				m.Field = label + "." + m.Field
			} else {
				m.Field = label
			}
			resp.Messages = append(resp.Messages, m)
		}
	}

	record("baseline", handler.Validate(c, req.Baseline))
	record("proposed", handler.Validate(c, req.Proposed))
	if model.HasCritical(resp.Messages) {
		return resp, nil
	}

	baseline, baselineMsgs := handler.Apply(c, req.Baseline)
	proposed, proposedMsgs := handler.Apply(c, req.Proposed)
	record("baseline", baselineMsgs)
	record("proposed", proposedMsgs)
	if model.HasCritical(resp.Messages) {
		return resp, nil
	}

	ops, err := jsonpatch.Between(baseline, proposed)
	if err != nil {
		return nil, fmt.Errorf("diff scenarios: %w", err)
	}
	if resp.Baseline, err = json.Marshal(baseline); err != nil {
		return nil, fmt.Errorf("encode baseline: %w", err)
	}
	if resp.Proposed, err = json.Marshal(proposed); err != nil {
		return nil, fmt.Errorf("encode proposed: %w", err)
	}
	if ops != nil {
		resp.Patch = ops
	}
	return resp, nil
}
