package engine

import (
	"testing"

	json "github.com/goccy/go-json"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/model"
	"familaw-engine/internal/statutes"
)

func newCalculator() *calc.Calculator {
	return calc.New(statutes.Default())
}

func TestProcessChildSupport(t *testing.T) {
	req := &model.CalculationRequest{
		CaseID: "case-2024-0117",
		Calculations: []model.Calculation{
			{
				CalculationID: "a1111111-1111-1111-1111-111111111111",
				Calculator:    "child_support",
				Properties: json.RawMessage(`{
					"parentAIncome": 4500,
					"parentBIncome": 3500,
					"childrenCount": 1,
					"overnightsParentA": 182,
					"overnightsParentB": 183
				}`),
			},
		},
	}

	resp := Process(newCalculator(), req)

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.CaseID != "case-2024-0117" {
		t.Fatalf("expected case_id case-2024-0117, got %s", resp.CalculationMetadata.CaseID)
	}
	if resp.CalculationMetadata.RulesVersion != statutes.DefaultVersion {
		t.Fatalf("expected rules version %s, got %s", statutes.DefaultVersion, resp.CalculationMetadata.RulesVersion)
	}
	if resp.CalculationMetadata.CalculationID == "" {
		t.Fatal("expected a calculation id")
	}
	if len(resp.CalculationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.CalculationResult.Messages))
	}
	if len(resp.CalculationResult.Calculations) != 1 {
		t.Fatalf("expected 1 calculation, got %d", len(resp.CalculationResult.Calculations))
	}

	var out calc.SupportResult
	if err := json.Unmarshal(resp.CalculationResult.Calculations[0].Output, &out); err != nil {
		t.Fatalf("output does not decode: %v", err)
	}
	if out.MonthlySupport != 106 {
		t.Fatalf("expected monthly support 106, got %v", out.MonthlySupport)
	}
	if out.FormJDF1360Data.OvernightSchedule != "182/183" {
		t.Fatalf("expected overnight schedule 182/183, got %s", out.FormJDF1360Data.OvernightSchedule)
	}
}

func TestProcessStopsOnCritical(t *testing.T) {
	req := &model.CalculationRequest{
		CaseID: "case-1",
		Calculations: []model.Calculation{
			{
				CalculationID: "first",
				Calculator:    "asset_division",
				Properties:    json.RawMessage(`{"maritalAssets":200000,"maritalDebts":50000,"separatePropertyA":0,"separatePropertyB":0,"maintenanceFactor":0.05}`),
			},
			{
				CalculationID: "second",
				Calculator:    "child_support",
				Properties:    json.RawMessage(`{"parentAIncome":-10,"parentBIncome":3500,"childrenCount":1,"overnightsParentA":182,"overnightsParentB":183}`),
			},
			{
				CalculationID: "third",
				Calculator:    "parenting_time",
				Properties:    json.RawMessage(`{"regularSchedule":{"weekdaysParentA":1,"weekendsParentA":1,"holidaysParentA":1}}`),
			},
		},
	}

	resp := Process(newCalculator(), req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	calcs := resp.CalculationResult.Calculations
	if len(calcs) != 2 {
		t.Fatalf("expected 2 processed calculations, got %d", len(calcs))
	}
	if calcs[0].Output == nil {
		t.Fatal("first calculation should keep its output")
	}
	if calcs[1].Output != nil {
		t.Fatal("rejected calculation must not have output")
	}
	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Code != "NEGATIVE_VALUE" || msgs[0].Field != "parentAIncome" {
		t.Fatalf("unexpected messages %+v", msgs)
	}
	if len(calcs[1].CalculationMessageIndexes) != 1 || calcs[1].CalculationMessageIndexes[0] != 0 {
		t.Fatalf("unexpected message indexes %v", calcs[1].CalculationMessageIndexes)
	}
}

func TestProcessWarningsDoNotStop(t *testing.T) {
	req := &model.CalculationRequest{
		Calculations: []model.Calculation{
			{
				CalculationID: "zero",
				Calculator:    "child-support",
				Properties:    json.RawMessage(`{"parentAIncome":0,"parentBIncome":0,"childrenCount":2,"overnightsParentA":100,"overnightsParentB":265}`),
			},
			{
				CalculationID: "pt",
				Calculator:    "parenting_time",
				Properties:    json.RawMessage(`{"regularSchedule":{"weekdaysParentA":3,"weekendsParentA":1,"holidaysParentA":5}}`),
			},
		},
	}

	resp := Process(newCalculator(), req)

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.CalculationResult.Calculations) != 2 {
		t.Fatalf("expected 2 calculations, got %d", len(resp.CalculationResult.Calculations))
	}
	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Level != model.LevelWarning || msgs[0].Code != "ZERO_COMBINED_INCOME" {
		t.Fatalf("expected one zero-income warning, got %+v", msgs)
	}
}

func TestProcessUnknownCalculator(t *testing.T) {
	req := &model.CalculationRequest{
		Calculations: []model.Calculation{
			{CalculationID: "x", Calculator: "alimony", Properties: json.RawMessage(`{}`)},
		},
	}

	resp := Process(newCalculator(), req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Messages[0].Code != "UNKNOWN_CALCULATOR" {
		t.Fatalf("expected UNKNOWN_CALCULATOR, got %s", resp.CalculationResult.Messages[0].Code)
	}
}

func TestCompareChildSupport(t *testing.T) {
	req := &model.CompareRequest{
		Baseline: json.RawMessage(`{"parentAIncome":4500,"parentBIncome":3500,"childrenCount":1,"overnightsParentA":100,"overnightsParentB":265}`),
		Proposed: json.RawMessage(`{"parentAIncome":4500,"parentBIncome":3500,"childrenCount":1,"overnightsParentA":182,"overnightsParentB":183}`),
	}

	resp, err := Compare(newCalculator(), "child-support", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Messages) != 0 {
		t.Fatalf("expected no messages, got %+v", resp.Messages)
	}

	found := false
	for _, op := range resp.Patch {
		if op.Path == "/breakdown/parentingTimeAdjustment" {
			found = true
			if op.Op != "replace" || op.Value != 0.5 {
				t.Fatalf("unexpected adjustment op %+v", op)
			}
		}
	}
	if !found {
		t.Fatalf("expected the adjustment to change, patch %+v", resp.Patch)
	}
}

func TestCompareIdenticalScenarios(t *testing.T) {
	props := json.RawMessage(`{"maritalAssets":1000,"maritalDebts":10,"separatePropertyA":0,"separatePropertyB":0}`)
	resp, err := Compare(newCalculator(), "asset_division", &model.CompareRequest{Baseline: props, Proposed: props})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Patch) != 0 {
		t.Fatalf("expected empty patch, got %+v", resp.Patch)
	}
}

func TestCompareReportsBothSides(t *testing.T) {
	resp, err := Compare(newCalculator(), "asset_division", &model.CompareRequest{
		Baseline: json.RawMessage(`{"maritalAssets":-1,"maritalDebts":0,"separatePropertyA":0,"separatePropertyB":0}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("expected one message per side, got %+v", resp.Messages)
	}
	if resp.Messages[0].Field != "baseline.maritalAssets" || resp.Messages[1].Field != "proposed" {
		t.Fatalf("unexpected fields %+v", resp.Messages)
	}
	if resp.Baseline != nil {
		t.Fatal("no output expected when validation fails")
	}
}

func TestCompareUnknownCalculator(t *testing.T) {
	if _, err := Compare(newCalculator(), "nope", &model.CompareRequest{}); err == nil {
		t.Fatal("expected an error")
	}
}

// stubHandler accepts every payload and reports msgs from Apply for the
// payload equal to fail.
type stubHandler struct {
	fail string
	msgs []model.CalculationMessage
}

func (h stubHandler) Validate(*calc.Calculator, json.RawMessage) []model.CalculationMessage {
	return nil
}

func (h stubHandler) Apply(_ *calc.Calculator, props json.RawMessage) (any, []model.CalculationMessage) {
	out := map[string]any{"value": string(props)}
	if string(props) == h.fail {
		return out, h.msgs
	}
	return out, nil
}

func TestCompareKeepsCalculationMessages(t *testing.T) {
	h := stubHandler{fail: `"b"`, msgs: []model.CalculationMessage{{Level: model.LevelCritical, Code: "INVALID_PROPERTIES"}}}
	resp, err := compare(newCalculator(), h, &model.CompareRequest{
		Baseline: json.RawMessage(`"a"`),
		Proposed: json.RawMessage(`"b"`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].Field != "proposed" || resp.Messages[0].Code != "INVALID_PROPERTIES" {
		t.Fatalf("unexpected messages %+v", resp.Messages)
	}
	if resp.Baseline != nil || resp.Proposed != nil || len(resp.Patch) != 0 {
		t.Fatal("no output expected when a calculation fails")
	}
}

func TestCompareCarriesCalculationWarnings(t *testing.T) {
	h := stubHandler{fail: `"a"`, msgs: []model.CalculationMessage{{Level: model.LevelWarning, Code: "ROUNDED", Field: "total"}}}
	resp, err := compare(newCalculator(), h, &model.CompareRequest{
		Baseline: json.RawMessage(`"a"`),
		Proposed: json.RawMessage(`"b"`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].Field != "baseline.total" || resp.Messages[0].ID != 0 {
		t.Fatalf("unexpected messages %+v", resp.Messages)
	}
	if resp.Proposed == nil {
		t.Fatal("warnings must not suppress output")
	}
}
