package calc

// Schedule describes parent A's share of a typical year. Weekday and weekend
// figures are overnights per school week.
type Schedule struct {
	WeekdaysA float64
	WeekendsA float64
	HolidaysA float64

	// SummerWeeksA overrides the summer estimate when set.
	SummerWeeksA *float64

	SpringBreakA           bool
	FallBreakA             bool
	WinterBreakAlternating bool
}

type PartyNights struct {
	ParentA int `json:"parentA"`
	ParentB int `json:"parentB"`
}

type ParentingTimeResult struct {
	AnnualOvernights       PartyNights `json:"annualOvernights"`
	Percentages            PartyNights `json:"percentages"`
	ChildSupportAdjustment float64     `json:"childSupportAdjustment"`
	ColoradoClassification string      `json:"coloradoClassification"`
	Recommendations        []string    `json:"recommendations"`
	Disclaimer             string      `json:"disclaimer"`
}

// AnnualOvernightsA annualizes parent A's overnights from a weekly schedule.
// The result is not clamped to the days in a year.
func (c *Calculator) AnnualOvernightsA(s Schedule) int {
	pt := c.rules.ParentingTime

	regular := s.WeekdaysA*pt.SchoolYearWeeks + s.WeekendsA*pt.SchoolYearWeeks + s.HolidaysA

	var summer float64
	if s.SummerWeeksA != nil {
		summer = *s.SummerWeeksA * 7
	} else {
		summer = (s.WeekdaysA + s.WeekendsA) * (pt.SummerWeeks / 7)
	}

	var breaks float64
	if s.SpringBreakA {
		breaks += pt.SpringBreakNights
	}
	if s.FallBreakA {
		breaks += pt.FallBreakNights
	}
	if s.WinterBreakAlternating {
		breaks += pt.WinterBreakNights
	}

	return int(round(regular + summer + breaks))
}

// ParentingTime annualizes a schedule and classifies it with the same brackets
// the child support calculator uses, so ChildSupportAdjustment always equals
// the adjustment ChildSupport would apply to the same overnight count.
func (c *Calculator) ParentingTime(s Schedule) ParentingTimeResult {
	days := c.rules.ParentingTime.DaysPerYear

	totalA := c.AnnualOvernightsA(s)
	totalB := days - totalA

	pctA := int(round(float64(totalA) / float64(days) * 100))

	bracket := c.rules.BracketFor(totalA)
	recs := []string{}
	if bracket.Advice != "" {
		recs = append(recs, bracket.Advice)
	}

	return ParentingTimeResult{
		AnnualOvernights:       PartyNights{ParentA: totalA, ParentB: totalB},
		Percentages:            PartyNights{ParentA: pctA, ParentB: 100 - pctA},
		ChildSupportAdjustment: bracket.Adjustment,
		ColoradoClassification: bracket.Label,
		Recommendations:        recs,
		Disclaimer:             Disclaimer,
	}
}
