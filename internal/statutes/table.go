// Package statutes holds the jurisdiction rule table the calculators read:
// basic child support obligations, parenting-time brackets, court forms,
// county metadata and filing deadlines.
//
// A Table is built once at process start and must not be mutated afterwards.
package statutes

import (
	"fmt"
	"sort"
	"strings"
)

type Table struct {
	Version       string             `json:"version" koanf:"version"`
	Jurisdiction  string             `json:"jurisdiction" koanf:"jurisdiction"`
	ChildSupport  ChildSupportRules  `json:"child_support" koanf:"child_support"`
	ParentingTime ParentingTimeRules `json:"parenting_time" koanf:"parenting_time"`
	Forms         map[string]Form    `json:"forms" koanf:"forms"`
	Counties      map[string]County  `json:"counties" koanf:"counties"`
	Deadlines     map[string]int     `json:"deadlines" koanf:"deadlines"`
}

type ChildSupportRules struct {
	// BasicObligations is indexed by child count minus one. The last entry
	// applies to every larger family.
	BasicObligations    []float64 `json:"basic_obligations" koanf:"basic_obligations"`
	IncomeScale         float64   `json:"income_scale" koanf:"income_scale"`
	Brackets            []Bracket `json:"brackets" koanf:"brackets"`
	Fallback            Bracket   `json:"fallback" koanf:"fallback"`
	LowIncomeThreshold  float64   `json:"low_income_threshold" koanf:"low_income_threshold"`
	HighIncomeThreshold float64   `json:"high_income_threshold" koanf:"high_income_threshold"`
	DeviationFactors    []string  `json:"deviation_factors" koanf:"deviation_factors"`
}

// Bracket maps an inclusive overnight range to a support reduction and a
// parenting-time label. Max of 0 means the bracket has no upper bound.
// Advice is optional non-binding guidance shown with a classification.
type Bracket struct {
	Min        int     `json:"min" koanf:"min"`
	Max        int     `json:"max" koanf:"max"`
	Adjustment float64 `json:"adjustment" koanf:"adjustment"`
	Label      string  `json:"label" koanf:"label"`
	Advice     string  `json:"advice,omitempty" koanf:"advice"`
}

func (b Bracket) Contains(overnights int) bool {
	return overnights >= b.Min && (b.Max == 0 || overnights <= b.Max)
}

type ParentingTimeRules struct {
	SchoolYearWeeks      float64          `json:"school_year_weeks" koanf:"school_year_weeks"`
	SummerWeeks          float64          `json:"summer_weeks" koanf:"summer_weeks"`
	SpringBreakNights    float64          `json:"spring_break_nights" koanf:"spring_break_nights"`
	FallBreakNights      float64          `json:"fall_break_nights" koanf:"fall_break_nights"`
	WinterBreakNights    float64          `json:"winter_break_nights" koanf:"winter_break_nights"`
	DaysPerYear          int              `json:"days_per_year" koanf:"days_per_year"`
	StandardSchedule     StandardSchedule `json:"standard_schedule" koanf:"standard_schedule"`
	BestInterestsFactors []string         `json:"best_interests_factors" koanf:"best_interests_factors"`
}

type StandardSchedule struct {
	WeekdayHours    int    `json:"weekday_hours" koanf:"weekday_hours"`
	WeekendHours    int    `json:"weekend_hours" koanf:"weekend_hours"`
	HolidayRotation string `json:"holiday_rotation" koanf:"holiday_rotation"`
	SummerWeeks     int    `json:"summer_weeks" koanf:"summer_weeks"`
}

type Form struct {
	Number      string   `json:"number" koanf:"number"`
	Name        string   `json:"name" koanf:"name"`
	ShortName   string   `json:"short_name" koanf:"short_name"`
	Required    []string `json:"required" koanf:"required"`
	MustInclude []string `json:"must_include,omitempty" koanf:"must_include"`
	CourtFee    float64  `json:"court_fee,omitempty" koanf:"court_fee"`
	Calculation string   `json:"calculation,omitempty" koanf:"calculation"`
}

type County struct {
	Name         string `json:"name" koanf:"name"`
	Jurisdiction string `json:"jurisdiction" koanf:"jurisdiction"`
	LocalRules   string `json:"local_rules" koanf:"local_rules"`
	EFile        bool   `json:"efile" koanf:"efile"`
	Mediation    string `json:"mediation" koanf:"mediation"`
}

const MediationMandatoryForParenting = "mandatory_for_parenting"

// Deadline names.
const (
	DeadlineResponseToPetition     = "response_to_petition"
	DeadlineFinancialDisclosures   = "financial_disclosures"
	DeadlinePermanentOrdersHearing = "permanent_orders_hearing"
	DeadlineAppeal                 = "appeal_deadline"
	DeadlineModificationWaiting    = "modification_waiting_period"
)

// MaxChildren is the child count at which the obligation schedule stops growing.
func (t *Table) MaxChildren() int {
	return len(t.ChildSupport.BasicObligations)
}

// ClampChildren pins a child count into the range covered by the schedule.
func (t *Table) ClampChildren(children int) int {
	if children < 1 {
		return 1
	}
	if n := t.MaxChildren(); children > n {
		return n
	}
	return children
}

// BasicObligation returns the monthly base obligation for a clamped child count.
func (t *Table) BasicObligation(children int) float64 {
	return t.ChildSupport.BasicObligations[t.ClampChildren(children)-1]
}

// BracketFor returns the bracket containing overnights. Counts below the first
// bracket resolve to the fallback bracket.
func (t *Table) BracketFor(overnights int) Bracket {
	for _, b := range t.ChildSupport.Brackets {
		if b.Contains(overnights) {
			return b
		}
	}
	return t.ChildSupport.Fallback
}

// IsValidCounty reports whether the county is known, ignoring case.
func (t *Table) IsValidCounty(county string) bool {
	_, ok := t.Counties[strings.ToLower(strings.TrimSpace(county))]
	return ok
}

// LookupForm finds a form by number. "JDF_1360", "jdf 1360" and "JDF-1360"
// all resolve to the same entry.
func (t *Table) LookupForm(number string) (Form, bool) {
	f, ok := t.Forms[formKey(number)]
	return f, ok
}

func (t *Table) IsValidForm(number string) bool {
	_, ok := t.LookupForm(number)
	return ok
}

// RequiresMediation reports whether a case of the given type filed in county
// must go through mediation first.
func (t *Table) RequiresMediation(caseType, county string) bool {
	c, ok := t.Counties[strings.ToLower(strings.TrimSpace(county))]
	if !ok {
		return false
	}
	return c.Mediation == MediationMandatoryForParenting && strings.Contains(caseType, "parenting")
}

// Deadline returns the number of days allowed for the named step.
func (t *Table) Deadline(name string) (int, bool) {
	d, ok := t.Deadlines[name]
	return d, ok
}

// FormList returns forms ordered by number.
func (t *Table) FormList() []Form {
	out := make([]Form, 0, len(t.Forms))
	for _, f := range t.Forms {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// CountyKeys returns the county keys in lexical order.
func (t *Table) CountyKeys() []string {
	keys := make([]string, 0, len(t.Counties))
	for k := range t.Counties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the structural invariants the calculators rely on.
func (t *Table) Validate() error {
	cs := t.ChildSupport
	if len(cs.BasicObligations) == 0 {
		return fmt.Errorf("%w: no basic obligations", ErrInvalidTable)
	}
	for i, v := range cs.BasicObligations {
		if v <= 0 {
			return fmt.Errorf("%w: basic obligation for %d children must be positive", ErrInvalidTable, i+1)
		}
		if i > 0 && v < cs.BasicObligations[i-1] {
			return fmt.Errorf("%w: basic obligation for %d children is lower than for %d", ErrInvalidTable, i+1, i)
		}
	}
	if cs.IncomeScale <= 0 {
		return fmt.Errorf("%w: income scale must be positive", ErrInvalidTable)
	}
	if len(cs.Brackets) == 0 {
		return fmt.Errorf("%w: no parenting-time brackets", ErrInvalidTable)
	}
	for i, b := range cs.Brackets {
		last := i == len(cs.Brackets)-1
		switch {
		case b.Adjustment < 0 || b.Adjustment >= 1:
			return fmt.Errorf("%w: bracket %d adjustment %v outside [0,1)", ErrInvalidTable, i, b.Adjustment)
		case b.Label == "":
			return fmt.Errorf("%w: bracket %d has no label", ErrInvalidTable, i)
		case last && b.Max != 0:
			return fmt.Errorf("%w: last bracket must be open-ended", ErrInvalidTable)
		case !last && b.Max < b.Min:
			return fmt.Errorf("%w: bracket %d is empty or open-ended", ErrInvalidTable, i)
		}
		if i > 0 && b.Min != cs.Brackets[i-1].Max+1 {
			return fmt.Errorf("%w: bracket %d starts at %d, expected %d", ErrInvalidTable, i, b.Min, cs.Brackets[i-1].Max+1)
		}
	}
	if cs.Fallback.Label == "" {
		return fmt.Errorf("%w: fallback bracket has no label", ErrInvalidTable)
	}
	if cs.Fallback.Max != cs.Brackets[0].Min-1 {
		return fmt.Errorf("%w: fallback bracket must end right below the first bracket", ErrInvalidTable)
	}
	pt := t.ParentingTime
	if pt.DaysPerYear <= 0 || pt.SchoolYearWeeks <= 0 || pt.SummerWeeks <= 0 {
		return fmt.Errorf("%w: parenting-time calendar constants must be positive", ErrInvalidTable)
	}
	return nil
}

func formKey(number string) string {
	s := strings.ToUpper(strings.TrimSpace(number))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}
