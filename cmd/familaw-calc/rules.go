package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"familaw-engine/internal/statutes"
	"familaw-engine/internal/worksheet"
)

type rulesCmd struct {
	markdown bool
	plain    bool
}

func (*rulesCmd) Name() string     { return "rules" }
func (*rulesCmd) Synopsis() string { return "show the active rule table" }
func (*rulesCmd) Usage() string {
	return `rules [-md [-plain]]

  Prints the rule table selected by -rules or -rules-url, as JSON or as a
  Markdown summary.
`
}

func (c *rulesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "Print a Markdown summary instead of JSON.")
	f.BoolVar(&c.plain, "plain", false, "With -md, print raw Markdown.")
}

func (c *rulesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	calculator, err := openCalculator(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.markdown {
		printMarkdown(os.Stdout, rulesMarkdown(calculator.Rules()), c.plain)
		return subcommands.ExitSuccess
	}
	if err := printJSON(os.Stdout, calculator.Rules()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing rules: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func rulesMarkdown(t *statutes.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s rules `%s`\n\n", t.Jurisdiction, t.Version)

	b.WriteString("## Basic support obligation\n\n| Children | Monthly |\n|---:|---:|\n")
	for i, v := range t.ChildSupport.BasicObligations {
		n := strconv.Itoa(i + 1)
		if i == len(t.ChildSupport.BasicObligations)-1 {
			n += "+"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", n, worksheet.Amount(v))
	}

	b.WriteString("\n## Parenting time\n\n| Overnights | Classification | Support reduction |\n|:---|:---|---:|\n")
	brackets := append([]statutes.Bracket{t.ChildSupport.Fallback}, t.ChildSupport.Brackets...)
	for _, br := range brackets {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", overnightRange(br), br.Label, worksheet.Percent(br.Adjustment))
	}

	b.WriteString("\n## Forms\n\n")
	for _, f := range t.FormList() {
		fmt.Fprintf(&b, "- **%s** %s\n", f.Number, f.Name)
	}

	b.WriteString("\n## Counties\n\n")
	for _, k := range t.CountyKeys() {
		cty := t.Counties[k]
		fmt.Fprintf(&b, "- %s (%s)\n", cty.Name, cty.Jurisdiction)
	}

	b.WriteString("\n## Deadlines\n\n")
	names := make([]string, 0, len(t.Deadlines))
	for k := range t.Deadlines {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(&b, "- %s: %d days\n", strings.ReplaceAll(k, "_", " "), t.Deadlines[k])
	}
	return b.String()
}

func overnightRange(b statutes.Bracket) string {
	if b.Max == 0 {
		return strconv.Itoa(b.Min) + "+"
	}
	return strconv.Itoa(b.Min) + "-" + strconv.Itoa(b.Max)
}
