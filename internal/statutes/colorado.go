package statutes

// DefaultVersion identifies the built-in Colorado table.
const DefaultVersion = "co-crs-title14-2024.1"

// Default returns a fresh copy of the built-in Colorado table (C.R.S. Title 14).
// Each call builds new slices and maps so callers never share state.
func Default() *Table {
	return &Table{
		Version:      DefaultVersion,
		Jurisdiction: "Colorado",
		ChildSupport: ChildSupportRules{
			// C.R.S. 14-10-115 income shares schedule, one through six or more children.
			BasicObligations: []float64{1056, 1328, 1536, 1680, 1790, 1900},
			IncomeScale:      5000,
			Brackets: []Bracket{
				{Min: 92, Max: 109, Adjustment: 0, Label: "Standard Schedule"},
				{Min: 110, Max: 127, Adjustment: 0.10, Label: "Increased Parenting Time"},
				{Min: 128, Max: 142, Adjustment: 0.25, Label: "Substantially Equal Parenting Time",
					Advice: "May qualify for shared parenting time benefits"},
				{Min: 143, Max: 182, Adjustment: 0.50, Label: "Majority Parenting Time"},
				{Min: 183, Max: 0, Adjustment: 0.75, Label: "Primary Parenting Time",
					Advice: "Consider modification of primary residence designation"},
			},
			Fallback: Bracket{Min: 0, Max: 91, Adjustment: 0, Label: "Standard Schedule",
				Advice: "Consider supervised visitation or step-up plan"},
			LowIncomeThreshold:  1050,
			HighIncomeThreshold: 30000,
			DeviationFactors: []string{
				"extraordinary_medical",
				"extraordinary_expenses",
				"educational_expenses",
				"travel_costs",
				"other_children",
			},
		},
		ParentingTime: ParentingTimeRules{
			SchoolYearWeeks:   36,
			SummerWeeks:       12,
			SpringBreakNights: 7,
			FallBreakNights:   4,
			WinterBreakNights: 7,
			DaysPerYear:       365,
			StandardSchedule: StandardSchedule{
				WeekdayHours:    4,
				WeekendHours:    48,
				HolidayRotation: "alternating",
				SummerWeeks:     4,
			},
			// C.R.S. 14-10-124
			BestInterestsFactors: []string{
				"wishes_of_child",
				"wishes_of_parents",
				"interaction_and_interrelationship",
				"childs_adjustment",
				"mental_physical_health",
				"physical_proximity",
				"ability_to_encourage_relationship",
				"history_of_involvement",
				"domestic_violence_history",
			},
		},
		Forms: map[string]Form{
			"JDF_1111": {
				Number:    "JDF 1111",
				Name:      "Petition for Dissolution of Marriage or Legal Separation",
				ShortName: "Petition for Dissolution of Marriage",
				Required:  []string{"petitioner", "respondent", "marriage_date", "separation_date", "jurisdiction_basis"},
				CourtFee:  230.00,
			},
			"JDF_1113": {
				Number:      "JDF 1113",
				Name:        "Parenting Plan",
				ShortName:   "Parenting Plan",
				Required:    []string{"children", "residential_schedule", "decision_making", "parenting_time"},
				MustInclude: []string{"holiday_schedule", "transportation", "communication"},
			},
			"JDF_1115": {
				Number:    "JDF 1115",
				Name:      "Permanent Orders",
				ShortName: "Permanent Orders",
				Required:  []string{"child_support", "parenting_time", "property_division"},
			},
			"JDF_1360": {
				Number:      "JDF 1360",
				Name:        "Child Support Calculation",
				ShortName:   "Child Support Worksheet",
				Required:    []string{"gross_income_a", "gross_income_b", "children_count", "overnight_schedule"},
				Calculation: "income_shares_model",
			},
		},
		Counties: map[string]County{
			"denver": {
				Name:         "Denver County",
				Jurisdiction: "2nd Judicial District",
				LocalRules:   "D.C.R.L.M.",
				EFile:        true,
				Mediation:    MediationMandatoryForParenting,
			},
			"arapahoe": {
				Name:         "Arapahoe County",
				Jurisdiction: "18th Judicial District",
				LocalRules:   "18th J.D. Local Rules",
				EFile:        true,
				Mediation:    MediationMandatoryForParenting,
			},
			"jefferson": {
				Name:         "Jefferson County",
				Jurisdiction: "1st Judicial District",
				LocalRules:   "1st J.D. Local Rules",
				EFile:        true,
				Mediation:    MediationMandatoryForParenting,
			},
			"boulder": {
				Name:         "Boulder County",
				Jurisdiction: "20th Judicial District",
				LocalRules:   "20th J.D. Local Rules",
				EFile:        true,
				Mediation:    MediationMandatoryForParenting,
			},
		},
		Deadlines: map[string]int{
			DeadlineResponseToPetition:     21,
			DeadlineFinancialDisclosures:   42,
			DeadlinePermanentOrdersHearing: 182,
			DeadlineAppeal:                 49,
			DeadlineModificationWaiting:    730,
		},
	}
}
