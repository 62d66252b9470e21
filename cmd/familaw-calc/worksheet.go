package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/calculators"
	"familaw-engine/internal/worksheet"
)

type worksheetCmd struct {
	supportFlags
	plain bool
	html  bool
}

func (*worksheetCmd) Name() string     { return "worksheet" }
func (*worksheetCmd) Synopsis() string { return "fill the child support worksheet (JDF 1360)" }
func (*worksheetCmd) Usage() string {
	return `worksheet [-plain | -html] <child-support flags>

  Computes child support and prints the filled worksheet.
`
}

func (c *worksheetCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.BoolVar(&c.plain, "plain", false, "Print raw Markdown instead of rendering it.")
	f.BoolVar(&c.html, "html", false, "Print HTML.")
}

func (c *worksheetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	calculator, err := openCalculator(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		return subcommands.ExitFailure
	}

	req := c.request(f)
	out, ok := evaluate(calculator, calculators.ChildSupport, req)
	if !ok {
		return subcommands.ExitFailure
	}
	ws := worksheet.Build(calculator.Rules(), calculators.SupportInput(req), out.(calc.SupportResult))

	if c.html {
		html, err := ws.HTML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering worksheet: %v\n", err)
			return subcommands.ExitFailure
		}
		_, _ = os.Stdout.Write(html)
		return subcommands.ExitSuccess
	}
	printMarkdown(os.Stdout, ws.Markdown(), c.plain)
	return subcommands.ExitSuccess
}
