// Package worksheet lays a child support result out as the statutory
// worksheet (JDF 1360) and renders it as Markdown or HTML.
package worksheet

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/statutes"
)

const (
	currency   = money.USD
	formNumber = "JDF 1360"
)

// Line is one numbered worksheet row. Empty cells are left blank.
type Line struct {
	Number   int
	Label    string
	ParentA  string
	ParentB  string
	Combined string
}

type Worksheet struct {
	FormNumber   string
	Title        string
	RulesVersion string
	Payer        string
	Lines        []Line
	Disclaimer   string
}

// Build fills the worksheet from the input and the calculated result.
func Build(rules *statutes.Table, in calc.SupportInput, res calc.SupportResult) *Worksheet {
	title := "Child Support Worksheet"
	if f, ok := rules.LookupForm(formNumber); ok {
		title = f.Name
	}

	payer := "Parent B"
	if in.IncomeA > in.IncomeB {
		payer = "Parent A"
	}
	bd := res.Breakdown
	shareA, shareB := calc.IncomeShares(in.IncomeA, in.IncomeB)

	rows := []Line{
		{Label: "Gross monthly income", ParentA: Amount(in.IncomeA), ParentB: Amount(in.IncomeB), Combined: Amount(bd.CombinedIncome)},
		{Label: "Percentage of combined income", ParentA: Percent(shareA), ParentB: Percent(shareB), Combined: Percent(1)},
		{Label: fmt.Sprintf("Basic obligation (%s)", children(in.Children)), Combined: Amount(bd.BasicObligation)},
		{Label: "Annual overnights", ParentA: strconv.Itoa(in.OvernightsA), ParentB: strconv.Itoa(in.OvernightsB), Combined: strconv.Itoa(in.OvernightsA + in.OvernightsB)},
		{Label: "Parenting-time adjustment", Combined: Percent(bd.ParentingTimeAdjustment)},
		{Label: "Adjusted obligation", ParentA: Amount(res.ParentAObligation), ParentB: Amount(res.ParentBObligation)},
		{Label: "Extraordinary medical expenses", Combined: Amount(in.ExtraordinaryMedical)},
		{Label: "Extraordinary child care expenses", Combined: Amount(in.ExtraordinaryExpenses)},
		{Label: "Educational expenses", Combined: Amount(in.EducationalExpenses)},
		{Label: "Other child support paid (informational)", Combined: Amount(in.OtherChildSupport)},
		{Label: "Monthly child support", Combined: Amount(res.MonthlySupport)},
		{Label: "Annual child support", Combined: Amount(res.AnnualSupport)},
	}
	for i := range rows {
		rows[i].Number = i + 1
	}

	return &Worksheet{
		FormNumber:   formNumber,
		Title:        title,
		RulesVersion: rules.Version,
		Payer:        payer,
		Lines:        rows,
		Disclaimer:   calc.Disclaimer,
	}
}

func children(n int) string {
	if n == 1 {
		return "1 child"
	}
	return strconv.Itoa(n) + " children"
}

// Amount formats v as US dollars, e.g. $4,500.00.
func Amount(v float64) string {
	cur := money.GetCurrency(currency)
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	minor := decimal.NewFromFloat(v).Mul(factor).Round(0)
	return money.New(minor.IntPart(), currency).Display()
}

// Percent formats a fraction with one decimal, e.g. 0.5625 -> 56.3%.
func Percent(fraction float64) string {
	return decimal.NewFromFloat(fraction).Shift(2).StringFixed(1) + "%"
}

// Markdown renders the worksheet as a heading and a GitHub-style table.
func (w *Worksheet) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", w.Title, w.FormNumber)
	fmt.Fprintf(&b, "Rules: `%s`. Paying parent: **%s**.\n\n", w.RulesVersion, w.Payer)
	b.WriteString("| Line | Item | Parent A | Parent B | Total |\n")
	b.WriteString("|---:|:---|---:|---:|---:|\n")
	for _, l := range w.Lines {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", l.Number, l.Label, l.ParentA, l.ParentB, l.Combined)
	}
	fmt.Fprintf(&b, "\n_%s_\n", w.Disclaimer)
	return b.String()
}

var (
	md = goldmark.New(goldmark.WithExtensions(
		extension.NewTable(extension.WithTableCellAlignMethod(extension.TableCellAlignAttribute)),
	))

	// Titles and labels can come from a rule file, so rendered HTML is
	// restricted to what the worksheet itself produces.
	htmlPolicy = func() *bluemonday.Policy {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("align").Matching(bluemonday.Paragraph).OnElements("th", "td")
		return p
	}()
)

// HTML renders the Markdown form to a sanitized HTML fragment.
func (w *Worksheet) HTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(w.Markdown()), &buf); err != nil {
		return nil, fmt.Errorf("render worksheet: %w", err)
	}
	return htmlPolicy.SanitizeBytes(buf.Bytes()), nil
}
