package calculators_test

import (
	"testing"

	json "github.com/goccy/go-json"
	. "github.com/smartystreets/goconvey/convey"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/calculators"
	"familaw-engine/internal/model"
	"familaw-engine/internal/statutes"
)

func codes(msgs []model.CalculationMessage) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Code)
	}
	return out
}

func fields(msgs []model.CalculationMessage) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Field)
	}
	return out
}

func TestRegistry(t *testing.T) {
	Convey("Given the calculator registry", t, func() {
		Convey("Then route-style and canonical names resolve", func() {
			for _, n := range []string{"child_support", "child-support", " Parenting-Time ", "asset_division"} {
				_, ok := calculators.Get(n)
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Then unknown names do not resolve", func() {
			_, ok := calculators.Get("spousal_maintenance")
			So(ok, ShouldBeFalse)
		})

		Convey("Then names are listed in order", func() {
			So(calculators.Names(), ShouldResemble, []string{"asset_division", "child_support", "parenting_time"})
		})
	})
}

func TestChildSupportValidation(t *testing.T) {
	c := calc.New(statutes.Default())
	h, _ := calculators.Get(calculators.ChildSupport)

	Convey("Given the child support handler", t, func() {
		Convey("When the payload is valid", func() {
			props := json.RawMessage(`{"parentAIncome":4500,"parentBIncome":3500,"childrenCount":1,"overnightsParentA":182,"overnightsParentB":183}`)

			Convey("Then no message is produced and the result matches the calculator", func() {
				So(h.Validate(c, props), ShouldBeEmpty)
				out, msgs := h.Apply(c, props)
				So(msgs, ShouldBeEmpty)
				res, ok := out.(calc.SupportResult)
				So(ok, ShouldBeTrue)
				So(res.MonthlySupport, ShouldEqual, 106)
			})
		})

		Convey("When a required field is missing", func() {
			msgs := h.Validate(c, json.RawMessage(`{"parentAIncome":4500,"childrenCount":1,"overnightsParentA":182,"overnightsParentB":183}`))

			Convey("Then the field is named", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeMissingField})
				So(fields(msgs), ShouldResemble, []string{"parentBIncome"})
				So(model.HasCritical(msgs), ShouldBeTrue)
			})
		})

		Convey("When an income is negative", func() {
			msgs := h.Validate(c, json.RawMessage(`{"parentAIncome":-1,"parentBIncome":3500,"childrenCount":1,"overnightsParentA":182,"overnightsParentB":183}`))

			Convey("Then it is rejected by field", func() {
				So(codes(msgs), ShouldContain, calculators.CodeNegativeValue)
				So(fields(msgs), ShouldContain, "parentAIncome")
			})
		})

		Convey("When the child count is fractional", func() {
			msgs := h.Validate(c, json.RawMessage(`{"parentAIncome":1,"parentBIncome":3500,"childrenCount":2.5,"overnightsParentA":182,"overnightsParentB":183}`))

			Convey("Then it is rejected", func() {
				So(codes(msgs), ShouldContain, calculators.CodeNotAnInteger)
			})
		})

		Convey("When the child count is above the schedule", func() {
			msgs := h.Validate(c, json.RawMessage(`{"parentAIncome":5000,"parentBIncome":3500,"childrenCount":8,"overnightsParentA":100,"overnightsParentB":265}`))

			Convey("Then a clamp warning is produced", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeChildCountClamped})
				So(model.HasCritical(msgs), ShouldBeFalse)
			})
		})

		Convey("When the child count is zero", func() {
			msgs := h.Validate(c, json.RawMessage(`{"parentAIncome":5000,"parentBIncome":3500,"childrenCount":0,"overnightsParentA":100,"overnightsParentB":265}`))

			Convey("Then it is clamped to one child with a warning", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeChildCountClamped})
				So(msgs[0].Level, ShouldEqual, model.LevelWarning)
			})
		})

		Convey("When the child count is negative", func() {
			msgs := h.Validate(c, json.RawMessage(`{"parentAIncome":5000,"parentBIncome":3500,"childrenCount":-1,"overnightsParentA":100,"overnightsParentB":265}`))

			Convey("Then it is rejected", func() {
				So(model.HasCritical(msgs), ShouldBeTrue)
				So(fields(msgs), ShouldContain, "childrenCount")
			})
		})

		Convey("When the child count is implausible", func() {
			msgs := h.Validate(c, json.RawMessage(`{"parentAIncome":5000,"parentBIncome":3500,"childrenCount":40,"overnightsParentA":100,"overnightsParentB":265}`))

			Convey("Then it is rejected", func() {
				So(codes(msgs), ShouldContain, calculators.CodeInvalidChildCount)
			})
		})

		Convey("When combined income is zero", func() {
			msgs := h.Validate(c, json.RawMessage(`{"parentAIncome":0,"parentBIncome":0,"childrenCount":1,"overnightsParentA":100,"overnightsParentB":265}`))

			Convey("Then only a warning is produced", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeZeroCombinedIncome})
			})
		})

		Convey("When overnights do not cover a year", func() {
			msgs := h.Validate(c, json.RawMessage(`{"parentAIncome":5000,"parentBIncome":3500,"childrenCount":1,"overnightsParentA":100,"overnightsParentB":200}`))

			Convey("Then the gap is reported as a warning", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeOvernightsNotPartition})
			})
		})

		Convey("When overnights exceed a year", func() {
			msgs := h.Validate(c, json.RawMessage(`{"parentAIncome":5000,"parentBIncome":3500,"childrenCount":1,"overnightsParentA":500,"overnightsParentB":0}`))

			Convey("Then they are rejected", func() {
				So(codes(msgs), ShouldContain, calculators.CodeOvernightsOutOfRange)
			})
		})

		Convey("When the payload is not an object", func() {
			msgs := h.Validate(c, json.RawMessage(`[1,2,3]`))

			Convey("Then it is rejected", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeInvalidProperties})
			})
		})

		Convey("When income is above the schedule ceiling", func() {
			msgs := h.Validate(c, json.RawMessage(`{"parentAIncome":40000,"parentBIncome":3500,"childrenCount":1,"overnightsParentA":100,"overnightsParentB":265}`))

			Convey("Then a warning is produced", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeIncomeAboveHigh})
			})
		})
	})
}

func TestParentingTimeValidation(t *testing.T) {
	c := calc.New(statutes.Default())
	h, _ := calculators.Get(calculators.ParentingTime)

	Convey("Given the parenting time handler", t, func() {
		Convey("When the schedule is valid", func() {
			props := json.RawMessage(`{"regularSchedule":{"weekdaysParentA":3,"weekendsParentA":1,"holidaysParentA":5},"summerSchedule":{"weeksParentA":6},"schoolBreaks":{"springBreakParentA":true,"fallBreakParentA":false,"winterBreakAlternating":true}}`)

			Convey("Then it classifies the schedule", func() {
				So(h.Validate(c, props), ShouldBeEmpty)
				out, _ := h.Apply(c, props)
				res := out.(calc.ParentingTimeResult)
				So(res.AnnualOvernights.ParentA, ShouldEqual, 205)
				So(res.ColoradoClassification, ShouldEqual, "Primary Parenting Time")
			})
		})

		Convey("When a nested field is missing", func() {
			msgs := h.Validate(c, json.RawMessage(`{"regularSchedule":{"weekdaysParentA":3,"holidaysParentA":5}}`))

			Convey("Then its path is named", func() {
				So(fields(msgs), ShouldResemble, []string{"regularSchedule.weekendsParentA"})
			})
		})

		Convey("When a nested field is null", func() {
			msgs := h.Validate(c, json.RawMessage(`{"regularSchedule":{"weekdaysParentA":null,"weekendsParentA":1,"holidaysParentA":5}}`))

			Convey("Then it is treated as missing", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeMissingField})
				So(fields(msgs), ShouldResemble, []string{"regularSchedule.weekdaysParentA"})
			})
		})

		Convey("When summer runs longer than the default estimate", func() {
			msgs := h.Validate(c, json.RawMessage(`{"regularSchedule":{"weekdaysParentA":0,"weekendsParentA":0,"holidaysParentA":0},"summerSchedule":{"weeksParentA":20}}`))

			Convey("Then it is accepted", func() {
				So(msgs, ShouldBeEmpty)
			})
		})

		Convey("When summer runs longer than a year", func() {
			msgs := h.Validate(c, json.RawMessage(`{"regularSchedule":{"weekdaysParentA":0,"weekendsParentA":0,"holidaysParentA":0},"summerSchedule":{"weeksParentA":53}}`))

			Convey("Then the schedule is rejected", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeInvalidSchedule})
				So(fields(msgs), ShouldResemble, []string{"summerSchedule.weeksParentA"})
			})
		})

		Convey("When weekdays exceed a school week", func() {
			msgs := h.Validate(c, json.RawMessage(`{"regularSchedule":{"weekdaysParentA":6,"weekendsParentA":1,"holidaysParentA":5}}`))

			Convey("Then the schedule is rejected", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeInvalidSchedule})
			})
		})

		Convey("When the schedule totals more than a year", func() {
			msgs := h.Validate(c, json.RawMessage(`{"regularSchedule":{"weekdaysParentA":5,"weekendsParentA":2,"holidaysParentA":200}}`))

			Convey("Then the total is rejected", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeOvernightsOutOfRange})
			})
		})
	})
}

func TestAssetDivisionValidation(t *testing.T) {
	c := calc.New(statutes.Default())
	h, _ := calculators.Get(calculators.AssetDivision)

	Convey("Given the asset division handler", t, func() {
		Convey("When the maintenance factor is omitted", func() {
			props := json.RawMessage(`{"maritalAssets":200000,"maritalDebts":50000,"separatePropertyA":0,"separatePropertyB":0}`)

			Convey("Then it defaults to zero", func() {
				So(h.Validate(c, props), ShouldBeEmpty)
				out, _ := h.Apply(c, props)
				res := out.(calc.AssetDivisionResult)
				So(res.WithMaintenance, ShouldResemble, calc.PartyAmounts{PartyA: 75000, PartyB: 75000})
			})
		})

		Convey("When the maintenance factor is out of range", func() {
			msgs := h.Validate(c, json.RawMessage(`{"maritalAssets":1,"maritalDebts":0,"separatePropertyA":0,"separatePropertyB":0,"maintenanceFactor":0.9}`))

			Convey("Then it is rejected", func() {
				So(codes(msgs), ShouldResemble, []string{calculators.CodeInvalidMaintenance})
			})
		})

		Convey("When debts are negative", func() {
			msgs := h.Validate(c, json.RawMessage(`{"maritalAssets":1,"maritalDebts":-5,"separatePropertyA":0,"separatePropertyB":0}`))

			Convey("Then the field is named", func() {
				So(fields(msgs), ShouldResemble, []string{"maritalDebts"})
			})
		})
	})
}
