package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"familaw-engine/internal/calculators"
	"familaw-engine/internal/model"
)

var calculatorCommands = []subcommands.Command{
	&childSupportCmd{},
	&parentingTimeCmd{},
	&assetDivisionCmd{},
}

// supportFlags are shared by child-support and worksheet.
type supportFlags struct {
	incomeA, incomeB         float64
	children                 int
	overnightsA, overnightsB int
	medical, expenses        float64
	education, otherSupport  float64
}

func (s *supportFlags) register(f *flag.FlagSet) {
	f.Float64Var(&s.incomeA, "income-a", 0, "Parent A gross monthly income.")
	f.Float64Var(&s.incomeB, "income-b", 0, "Parent B gross monthly income.")
	f.IntVar(&s.children, "children", 1, "Number of children.")
	f.IntVar(&s.overnightsA, "overnights-a", 0, "Annual overnights with parent A.")
	f.IntVar(&s.overnightsB, "overnights-b", 0, "Annual overnights with parent B.")
	f.Float64Var(&s.medical, "medical", 0, "Extraordinary medical expenses per month.")
	f.Float64Var(&s.expenses, "expenses", 0, "Extraordinary child care expenses per month.")
	f.Float64Var(&s.education, "education", 0, "Educational expenses per month.")
	f.Float64Var(&s.otherSupport, "other-support", 0, "Child support paid for other children, recorded only.")
}

func (s *supportFlags) request(f *flag.FlagSet) *model.ChildSupportRequest {
	return &model.ChildSupportRequest{
		ParentAIncome:         s.incomeA,
		ParentBIncome:         s.incomeB,
		ChildrenCount:         float64(s.children),
		OvernightsParentA:     float64(s.overnightsA),
		OvernightsParentB:     float64(s.overnightsB),
		ExtraordinaryMedical:  floatPtr(f, "medical", s.medical),
		ExtraordinaryExpenses: floatPtr(f, "expenses", s.expenses),
		EducationalExpenses:   floatPtr(f, "education", s.education),
		OtherChildSupport:     floatPtr(f, "other-support", s.otherSupport),
	}
}

type childSupportCmd struct {
	supportFlags
}

func (*childSupportCmd) Name() string     { return "child-support" }
func (*childSupportCmd) Synopsis() string { return "compute monthly child support" }
func (*childSupportCmd) Usage() string {
	return `child-support -income-a <n> -income-b <n> -children <n> -overnights-a <n> -overnights-b <n>

  Computes monthly child support under the income shares model.
`
}

func (c *childSupportCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *childSupportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runCalculator(ctx, os.Stdout, calculators.ChildSupport, c.request(f))
}

type parentingTimeCmd struct {
	weekdays, weekends, holidays float64
	summerWeeks                  float64
	springBreak, fallBreak       bool
	winterAlternating            bool
}

func (*parentingTimeCmd) Name() string     { return "parenting-time" }
func (*parentingTimeCmd) Synopsis() string { return "annualize and classify a parenting schedule" }
func (*parentingTimeCmd) Usage() string {
	return `parenting-time -weekdays <n> -weekends <n> -holidays <n> [-summer-weeks <n>] [-spring-break] [-fall-break] [-winter-alternating]

  Estimates parent A's annual overnights and the parenting-time classification.
`
}

func (c *parentingTimeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.weekdays, "weekdays", 0, "Parent A overnights per school week on weekdays.")
	f.Float64Var(&c.weekends, "weekends", 0, "Parent A overnights per school week on weekends.")
	f.Float64Var(&c.holidays, "holidays", 0, "Parent A holiday overnights per year.")
	f.Float64Var(&c.summerWeeks, "summer-weeks", 0, "Summer weeks with parent A. Defaults to the weekly pattern.")
	f.BoolVar(&c.springBreak, "spring-break", false, "Parent A has spring break.")
	f.BoolVar(&c.fallBreak, "fall-break", false, "Parent A has fall break.")
	f.BoolVar(&c.winterAlternating, "winter-alternating", false, "Winter break alternates between parents.")
}

func (c *parentingTimeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req := &model.ParentingTimeRequest{
		RegularSchedule: model.RegularSchedule{
			WeekdaysParentA: c.weekdays,
			WeekendsParentA: c.weekends,
			HolidaysParentA: c.holidays,
		},
		SchoolBreaks: &model.SchoolBreaks{
			SpringBreakParentA:     c.springBreak,
			FallBreakParentA:       c.fallBreak,
			WinterBreakAlternating: c.winterAlternating,
		},
	}
	if weeks := floatPtr(f, "summer-weeks", c.summerWeeks); weeks != nil {
		req.SummerSchedule = &model.SummerSchedule{WeeksParentA: *weeks}
	}
	return runCalculator(ctx, os.Stdout, calculators.ParentingTime, req)
}

type assetDivisionCmd struct {
	assets, debts        float64
	separateA, separateB float64
	maintenance          float64
}

func (*assetDivisionCmd) Name() string     { return "asset-division" }
func (*assetDivisionCmd) Synopsis() string { return "divide the net marital estate" }
func (*assetDivisionCmd) Usage() string {
	return `asset-division -assets <n> -debts <n> [-separate-a <n>] [-separate-b <n>] [-maintenance <f>]

  Splits the net marital estate equally and with a maintenance shift.
`
}

func (c *assetDivisionCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.assets, "assets", 0, "Total marital assets.")
	f.Float64Var(&c.debts, "debts", 0, "Total marital debts.")
	f.Float64Var(&c.separateA, "separate-a", 0, "Separate property of party A.")
	f.Float64Var(&c.separateB, "separate-b", 0, "Separate property of party B.")
	f.Float64Var(&c.maintenance, "maintenance", 0, "Fraction of the estate shifted from party A to party B.")
}

func (c *assetDivisionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req := &model.AssetDivisionRequest{
		MaritalAssets:     c.assets,
		MaritalDebts:      c.debts,
		SeparatePropertyA: c.separateA,
		SeparatePropertyB: c.separateB,
		MaintenanceFactor: floatPtr(f, "maintenance", c.maintenance),
	}
	return runCalculator(ctx, os.Stdout, calculators.AssetDivision, req)
}
