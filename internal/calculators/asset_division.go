package calculators

import (
	json "github.com/goccy/go-json"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/model"
)

// maxMaintenanceFactor bounds how far the split may move from equal.
const maxMaintenanceFactor = 0.5

type AssetDivisionHandler struct{}

func (h *AssetDivisionHandler) Validate(c *calc.Calculator, props json.RawMessage) []model.CalculationMessage {
	var ck checker
	var req model.AssetDivisionRequest
	if !ck.decode(props, &req, "maritalAssets", "maritalDebts", "separatePropertyA", "separatePropertyB") {
		return ck.msgs
	}
	validateAssetDivision(&req, &ck)
	return ck.msgs
}

func (h *AssetDivisionHandler) Apply(c *calc.Calculator, props json.RawMessage) (any, []model.CalculationMessage) {
	var req model.AssetDivisionRequest
	if err := json.Unmarshal(props, &req); err != nil {
		return nil, []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    CodeInvalidProperties,
			Message: err.Error(),
		}}
	}
	return c.AssetDivision(AssetInput(&req)), nil
}

func validateAssetDivision(req *model.AssetDivisionRequest, ck *checker) {
	ck.nonNegative("maritalAssets", req.MaritalAssets)
	ck.nonNegative("maritalDebts", req.MaritalDebts)
	ck.nonNegative("separatePropertyA", req.SeparatePropertyA)
	ck.nonNegative("separatePropertyB", req.SeparatePropertyB)
	if f := req.MaintenanceFactor; f != nil && ck.finite("maintenanceFactor", *f) {
		ck.within("maintenanceFactor", CodeInvalidMaintenance, *f, -maxMaintenanceFactor, maxMaintenanceFactor)
	}
}

// AssetInput converts a validated request into calculator input.
func AssetInput(req *model.AssetDivisionRequest) calc.AssetInput {
	return calc.AssetInput{
		MaritalAssets:     req.MaritalAssets,
		MaritalDebts:      req.MaritalDebts,
		SeparatePropertyA: req.SeparatePropertyA,
		SeparatePropertyB: req.SeparatePropertyB,
		MaintenanceFactor: valueOr(req.MaintenanceFactor, 0),
	}
}
