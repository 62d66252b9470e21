package calc

import (
	"math"
	"strconv"
)

// SupportInput carries monthly gross incomes and the overnight split for one
// child support computation. Optional expense fields default to zero.
type SupportInput struct {
	IncomeA     float64
	IncomeB     float64
	Children    int
	OvernightsA int
	OvernightsB int

	ExtraordinaryMedical  float64
	ExtraordinaryExpenses float64
	EducationalExpenses   float64
	// OtherChildSupport is recorded on the worksheet but does not enter the formula.
	OtherChildSupport float64
}

type SupportResult struct {
	MonthlySupport    float64          `json:"monthlySupport"`
	AnnualSupport     float64          `json:"annualSupport"`
	ParentAObligation float64          `json:"parentAObligation"`
	ParentBObligation float64          `json:"parentBObligation"`
	Breakdown         SupportBreakdown `json:"breakdown"`
	ColoradoCompliant bool             `json:"coloradoCompliant"`
	FormJDF1360Data   JDF1360Data      `json:"formJDF1360Data"`
}

type SupportBreakdown struct {
	BasicObligation         float64 `json:"basicObligation"`
	CombinedIncome          float64 `json:"combinedIncome"`
	ParentAShare            float64 `json:"parentAShare"`
	ParentBShare            float64 `json:"parentBShare"`
	ParentingTimeAdjustment float64 `json:"parentingTimeAdjustment"`
	TotalAdjustments        float64 `json:"totalAdjustments"`
}

// JDF1360Data is the projection used to fill the child support worksheet.
type JDF1360Data struct {
	GrossIncomeA                float64 `json:"grossIncomeA"`
	GrossIncomeB                float64 `json:"grossIncomeB"`
	ChildrenCount               int     `json:"childrenCount"`
	OvernightSchedule           string  `json:"overnightSchedule"`
	BasicChildSupportObligation float64 `json:"basicChildSupportObligation"`
	MonthlySupport              float64 `json:"monthlySupport"`
}

// IncomeShares returns each parent's fraction of combined income. With no
// combined income the shares are split evenly instead of dividing by zero.
func IncomeShares(incomeA, incomeB float64) (shareA, shareB float64) {
	combined := incomeA + incomeB
	if combined == 0 {
		return 0.5, 0.5
	}
	shareA = incomeA / combined
	return shareA, 1 - shareA
}

// ChildSupport computes the monthly support owed between two parents.
//
// The base obligation for the family size is scaled linearly by combined
// income over the table's income scale, apportioned by income share, reduced
// by the parenting-time bracket of parent A's overnights, and netted. The
// higher earner pays. Extraordinary items are added in parent A's share.
func (c *Calculator) ChildSupport(in SupportInput) SupportResult {
	rules := c.rules.ChildSupport

	basic := c.rules.BasicObligation(in.Children)
	combined := in.IncomeA + in.IncomeB
	shareA, shareB := IncomeShares(in.IncomeA, in.IncomeB)

	base := basic * (combined / rules.IncomeScale)
	adjustment := c.rules.BracketFor(in.OvernightsA).Adjustment

	obligationA := base * shareA * (1 - adjustment)
	obligationB := base * shareB * (1 - adjustment)

	var monthly float64
	if in.IncomeA > in.IncomeB {
		monthly = math.Max(0, obligationA-obligationB)
	} else {
		monthly = math.Max(0, obligationB-obligationA)
	}

	extras := in.ExtraordinaryMedical + in.ExtraordinaryExpenses + in.EducationalExpenses
	final := round(monthly + extras*shareA)

	return SupportResult{
		MonthlySupport:    final,
		AnnualSupport:     final * 12,
		ParentAObligation: round(obligationA),
		ParentBObligation: round(obligationB),
		Breakdown: SupportBreakdown{
			BasicObligation:         basic,
			CombinedIncome:          combined,
			ParentAShare:            round2(shareA),
			ParentBShare:            round2(shareB),
			ParentingTimeAdjustment: adjustment,
			TotalAdjustments:        extras,
		},
		ColoradoCompliant: true,
		FormJDF1360Data: JDF1360Data{
			GrossIncomeA:                in.IncomeA,
			GrossIncomeB:                in.IncomeB,
			ChildrenCount:               in.Children,
			OvernightSchedule:           strconv.Itoa(in.OvernightsA) + "/" + strconv.Itoa(in.OvernightsB),
			BasicChildSupportObligation: basic,
			MonthlySupport:              final,
		},
	}
}
