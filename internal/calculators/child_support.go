package calculators

import (
	json "github.com/goccy/go-json"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/model"
)

// maxPlausibleChildren bounds childrenCount before clamping to the schedule.
const maxPlausibleChildren = 20

type ChildSupportHandler struct{}

func (h *ChildSupportHandler) Validate(c *calc.Calculator, props json.RawMessage) []model.CalculationMessage {
	var ck checker
	var req model.ChildSupportRequest
	if !ck.decode(props, &req, "parentAIncome", "parentBIncome", "childrenCount", "overnightsParentA", "overnightsParentB") {
		return ck.msgs
	}
	validateChildSupport(c, &req, &ck)
	return ck.msgs
}

func (h *ChildSupportHandler) Apply(c *calc.Calculator, props json.RawMessage) (any, []model.CalculationMessage) {
	var req model.ChildSupportRequest
	if err := json.Unmarshal(props, &req); err != nil {
		return nil, []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    CodeInvalidProperties,
			Message: err.Error(),
		}}
	}
	return c.ChildSupport(SupportInput(&req)), nil
}

// validateChildSupport checks an already-decoded request.
func validateChildSupport(c *calc.Calculator, req *model.ChildSupportRequest, ck *checker) {
	rules := c.Rules()
	days := float64(rules.ParentingTime.DaysPerYear)

	okA := ck.nonNegative("parentAIncome", req.ParentAIncome)
	okB := ck.nonNegative("parentBIncome", req.ParentBIncome)
	ck.optionalNonNegative("extraordinaryMedical", req.ExtraordinaryMedical)
	ck.optionalNonNegative("extraordinaryExpenses", req.ExtraordinaryExpenses)
	ck.optionalNonNegative("educationalExpenses", req.EducationalExpenses)
	ck.optionalNonNegative("otherChildSupport", req.OtherChildSupport)

	if ck.integer("childrenCount", req.ChildrenCount) &&
		ck.within("childrenCount", CodeInvalidChildCount, req.ChildrenCount, 0, maxPlausibleChildren) {
		n := int(req.ChildrenCount)
		if clamped := rules.ClampChildren(n); clamped != n {
			ck.warn("childrenCount", CodeChildCountClamped,
				"childrenCount %d is outside the schedule; the %d-child obligation applies", n, clamped)
		}
	}

	okNA := ck.integer("overnightsParentA", req.OvernightsParentA) &&
		ck.nonNegative("overnightsParentA", req.OvernightsParentA) &&
		ck.within("overnightsParentA", CodeOvernightsOutOfRange, req.OvernightsParentA, 0, days)
	okNB := ck.integer("overnightsParentB", req.OvernightsParentB) &&
		ck.nonNegative("overnightsParentB", req.OvernightsParentB) &&
		ck.within("overnightsParentB", CodeOvernightsOutOfRange, req.OvernightsParentB, 0, days)
	if okNA && okNB && req.OvernightsParentA+req.OvernightsParentB != days {
		ck.warn("overnightsParentB", CodeOvernightsNotPartition,
			"overnights add up to %v, not %v", req.OvernightsParentA+req.OvernightsParentB, days)
	}

	if !okA || !okB {
		return
	}
	combined := req.ParentAIncome + req.ParentBIncome
	switch {
	case combined == 0:
		ck.warn("parentAIncome", CodeZeroCombinedIncome,
			"combined income is zero; income shares default to 50/50")
	case combined < rules.ChildSupport.LowIncomeThreshold:
		ck.warn("parentAIncome", CodeIncomeBelowLowThreshold,
			"combined income %v is below the low-income threshold of %v", combined, rules.ChildSupport.LowIncomeThreshold)
	case combined > rules.ChildSupport.HighIncomeThreshold:
		ck.warn("parentAIncome", CodeIncomeAboveHigh,
			"combined income %v exceeds the schedule ceiling of %v", combined, rules.ChildSupport.HighIncomeThreshold)
	}
}

// SupportInput converts a validated request into calculator input.
func SupportInput(req *model.ChildSupportRequest) calc.SupportInput {
	return calc.SupportInput{
		IncomeA:               req.ParentAIncome,
		IncomeB:               req.ParentBIncome,
		Children:              int(req.ChildrenCount),
		OvernightsA:           int(req.OvernightsParentA),
		OvernightsB:           int(req.OvernightsParentB),
		ExtraordinaryMedical:  valueOr(req.ExtraordinaryMedical, 0),
		ExtraordinaryExpenses: valueOr(req.ExtraordinaryExpenses, 0),
		EducationalExpenses:   valueOr(req.EducationalExpenses, 0),
		OtherChildSupport:     valueOr(req.OtherChildSupport, 0),
	}
}
