package calculators

import (
	json "github.com/goccy/go-json"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/model"
)

const (
	maxWeekdayNights = 5
	maxWeekendNights = 2
	maxSummerWeeks   = 52
)

type ParentingTimeHandler struct{}

func (h *ParentingTimeHandler) Validate(c *calc.Calculator, props json.RawMessage) []model.CalculationMessage {
	var ck checker
	var req model.ParentingTimeRequest
	if !ck.decode(props, &req, "regularSchedule") {
		return ck.msgs
	}
	var top struct {
		RegularSchedule map[string]json.RawMessage `json:"regularSchedule"`
	}
	if err := json.Unmarshal(props, &top); err == nil {
		ck.require(top.RegularSchedule, "regularSchedule", "weekdaysParentA", "weekendsParentA", "holidaysParentA")
	}
	if ck.failed() {
		return ck.msgs
	}
	validateParentingTime(c, &req, &ck)
	return ck.msgs
}

func (h *ParentingTimeHandler) Apply(c *calc.Calculator, props json.RawMessage) (any, []model.CalculationMessage) {
	var req model.ParentingTimeRequest
	if err := json.Unmarshal(props, &req); err != nil {
		return nil, []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    CodeInvalidProperties,
			Message: err.Error(),
		}}
	}
	return c.ParentingTime(Schedule(&req)), nil
}

// validateParentingTime rejects malformed schedules and schedules whose
// annualized total does not fit in one year, which keeps A+B = days intact.
func validateParentingTime(c *calc.Calculator, req *model.ParentingTimeRequest, ck *checker) {
	pt := c.Rules().ParentingTime
	days := float64(pt.DaysPerYear)
	rs := req.RegularSchedule

	if ck.nonNegative("regularSchedule.weekdaysParentA", rs.WeekdaysParentA) {
		ck.within("regularSchedule.weekdaysParentA", CodeInvalidSchedule, rs.WeekdaysParentA, 0, maxWeekdayNights)
	}
	if ck.nonNegative("regularSchedule.weekendsParentA", rs.WeekendsParentA) {
		ck.within("regularSchedule.weekendsParentA", CodeInvalidSchedule, rs.WeekendsParentA, 0, maxWeekendNights)
	}
	if ck.nonNegative("regularSchedule.holidaysParentA", rs.HolidaysParentA) {
		ck.within("regularSchedule.holidaysParentA", CodeInvalidSchedule, rs.HolidaysParentA, 0, days)
	}
	if req.SummerSchedule != nil && ck.nonNegative("summerSchedule.weeksParentA", req.SummerSchedule.WeeksParentA) {
		ck.within("summerSchedule.weeksParentA", CodeInvalidSchedule, req.SummerSchedule.WeeksParentA, 0, maxSummerWeeks)
	}
	if ck.failed() {
		return
	}

	if total := c.AnnualOvernightsA(Schedule(req)); total < 0 || total > pt.DaysPerYear {
		ck.critical("regularSchedule", CodeOvernightsOutOfRange,
			"schedule yields %d overnights for parent A, more than the %d days in a year", total, pt.DaysPerYear)
	}
}

// Schedule converts a validated request into calculator input.
func Schedule(req *model.ParentingTimeRequest) calc.Schedule {
	s := calc.Schedule{
		WeekdaysA: req.RegularSchedule.WeekdaysParentA,
		WeekendsA: req.RegularSchedule.WeekendsParentA,
		HolidaysA: req.RegularSchedule.HolidaysParentA,
	}
	if req.SummerSchedule != nil {
		w := req.SummerSchedule.WeeksParentA
		s.SummerWeeksA = &w
	}
	if b := req.SchoolBreaks; b != nil {
		s.SpringBreakA = b.SpringBreakParentA
		s.FallBreakA = b.FallBreakParentA
		s.WinterBreakAlternating = b.WinterBreakAlternating
	}
	return s
}
