package statutes

import (
	"errors"
	"testing"
)

func TestDefaultTableValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default table should validate: %v", err)
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.ChildSupport.BasicObligations[0] = 1
	a.Counties["denver"] = County{Name: "changed"}

	b := Default()
	if b.ChildSupport.BasicObligations[0] != 1056 {
		t.Fatalf("expected 1056, got %v", b.ChildSupport.BasicObligations[0])
	}
	if b.Counties["denver"].Name != "Denver County" {
		t.Fatalf("county map leaked between copies")
	}
}

func TestBasicObligationClamps(t *testing.T) {
	tbl := Default()
	cases := []struct {
		children int
		want     float64
	}{
		{-3, 1056},
		{0, 1056},
		{1, 1056},
		{2, 1328},
		{3, 1536},
		{4, 1680},
		{5, 1790},
		{6, 1900},
		{7, 1900},
		{10, 1900},
	}
	for _, c := range cases {
		if got := tbl.BasicObligation(c.children); got != c.want {
			t.Fatalf("children=%d: expected %v, got %v", c.children, c.want, got)
		}
	}
}

func TestBracketBoundaries(t *testing.T) {
	tbl := Default()
	cases := []struct {
		overnights int
		adj        float64
		label      string
	}{
		{0, 0, "Standard Schedule"},
		{91, 0, "Standard Schedule"},
		{92, 0, "Standard Schedule"},
		{109, 0, "Standard Schedule"},
		{110, 0.10, "Increased Parenting Time"},
		{127, 0.10, "Increased Parenting Time"},
		{128, 0.25, "Substantially Equal Parenting Time"},
		{142, 0.25, "Substantially Equal Parenting Time"},
		{143, 0.50, "Majority Parenting Time"},
		{182, 0.50, "Majority Parenting Time"},
		{183, 0.75, "Primary Parenting Time"},
		{365, 0.75, "Primary Parenting Time"},
		{500, 0.75, "Primary Parenting Time"},
	}
	for _, c := range cases {
		b := tbl.BracketFor(c.overnights)
		if b.Adjustment != c.adj || b.Label != c.label {
			t.Fatalf("overnights=%d: expected %v/%q, got %v/%q", c.overnights, c.adj, c.label, b.Adjustment, b.Label)
		}
	}
}

func TestValidateRejectsGap(t *testing.T) {
	tbl := Default()
	tbl.ChildSupport.Brackets[1].Min = 111
	err := tbl.Validate()
	if !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("expected ErrInvalidTable, got %v", err)
	}
}

func TestValidateRejectsOverlap(t *testing.T) {
	tbl := Default()
	tbl.ChildSupport.Brackets[2].Min = 120
	if err := tbl.Validate(); !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("expected ErrInvalidTable, got %v", err)
	}
}

func TestValidateRejectsClosedLastBracket(t *testing.T) {
	tbl := Default()
	tbl.ChildSupport.Brackets[4].Max = 365
	if err := tbl.Validate(); !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("expected ErrInvalidTable, got %v", err)
	}
}

func TestValidateRejectsDecreasingObligations(t *testing.T) {
	tbl := Default()
	tbl.ChildSupport.BasicObligations[3] = 1000
	if err := tbl.Validate(); !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("expected ErrInvalidTable, got %v", err)
	}
}

func TestCountyAndFormLookups(t *testing.T) {
	tbl := Default()

	if !tbl.IsValidCounty("Denver") || !tbl.IsValidCounty(" boulder ") {
		t.Fatal("expected known counties to validate regardless of case")
	}
	if tbl.IsValidCounty("el paso") {
		t.Fatal("el paso is not in the table")
	}

	for _, n := range []string{"JDF_1360", "jdf 1360", "Jdf-1360"} {
		f, ok := tbl.LookupForm(n)
		if !ok {
			t.Fatalf("expected %q to resolve", n)
		}
		if f.Calculation != "income_shares_model" {
			t.Fatalf("unexpected form for %q: %+v", n, f)
		}
	}
	if tbl.IsValidForm("JDF_9999") {
		t.Fatal("JDF_9999 should not resolve")
	}

	forms := tbl.FormList()
	if len(forms) != 4 || forms[0].Number != "JDF 1111" || forms[3].Number != "JDF 1360" {
		t.Fatalf("unexpected form order: %+v", forms)
	}
}

func TestRequiresMediation(t *testing.T) {
	tbl := Default()
	if !tbl.RequiresMediation("parenting_time", "DENVER") {
		t.Fatal("denver parenting cases require mediation")
	}
	if tbl.RequiresMediation("property_division", "denver") {
		t.Fatal("non-parenting cases do not require mediation")
	}
	if tbl.RequiresMediation("parenting_time", "nowhere") {
		t.Fatal("unknown county must not require mediation")
	}
}

func TestDeadlines(t *testing.T) {
	tbl := Default()
	if d, ok := tbl.Deadline(DeadlineModificationWaiting); !ok || d != 730 {
		t.Fatalf("expected 730, got %d (%v)", d, ok)
	}
	if _, ok := tbl.Deadline("unknown"); ok {
		t.Fatal("unknown deadline should not resolve")
	}
}
