package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	json "github.com/goccy/go-json"
	"github.com/google/subcommands"

	"familaw-engine/internal/calc"
	"familaw-engine/internal/calculators"
	"familaw-engine/internal/model"
	"familaw-engine/internal/rulesource"
)

var (
	rulesFile = flag.String("rules", "", "Path to a YAML or JSON rule table. Defaults to the built-in table.")
	rulesURL  = flag.String("rules-url", "", "URL of a remote rule table. Falls back to the built-in table when unreachable.")
	rulesPath = flag.String("rules-path", "$", "JSONPath selecting the table inside the remote document.")
)

// openCalculator loads the rule table selected by the global flags.
func openCalculator(ctx context.Context) (*calc.Calculator, error) {
	res, err := rulesource.Load(ctx, rulesource.Options{URL: *rulesURL, Path: *rulesPath, File: *rulesFile})
	if err != nil {
		return nil, err
	}
	if res.Fallback != nil {
		fmt.Fprintf(os.Stderr, "warning: using built-in rules: %v\n", res.Fallback)
	}
	return calc.New(res.Table), nil
}

// runCalculator validates req with the named calculator, reports messages on
// stderr and writes the result as indented JSON.
func runCalculator(ctx context.Context, w io.Writer, name string, req any) subcommands.ExitStatus {
	c, err := openCalculator(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		return subcommands.ExitFailure
	}
	out, ok := evaluate(c, name, req)
	if !ok {
		return subcommands.ExitFailure
	}
	if err := printJSON(w, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func evaluate(c *calc.Calculator, name string, req any) (any, bool) {
	h, found := calculators.Get(name)
	if !found {
		fmt.Fprintf(os.Stderr, "Unknown calculator %q\n", name)
		return nil, false
	}
	props, err := json.Marshal(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding input: %v\n", err)
		return nil, false
	}

	msgs := h.Validate(c, props)
	printMessages(os.Stderr, msgs)
	if model.HasCritical(msgs) {
		return nil, false
	}
	out, msgs := h.Apply(c, props)
	printMessages(os.Stderr, msgs)
	return out, !model.HasCritical(msgs)
}

func printMessages(w io.Writer, msgs []model.CalculationMessage) {
	for _, m := range msgs {
		if m.Field != "" {
			fmt.Fprintf(w, "%s %s (%s): %s\n", m.Level, m.Code, m.Field, m.Message)
			continue
		}
		fmt.Fprintf(w, "%s %s: %s\n", m.Level, m.Code, m.Message)
	}
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// printMarkdown renders md for the terminal, or writes it raw when plain is set
// or rendering fails.
func printMarkdown(w io.Writer, md string, plain bool) {
	if !plain {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				fmt.Fprint(w, out)
				return
			}
		}
	}
	fmt.Fprint(w, md)
}

// floatPtr returns &v when the flag called name was set on f.
func floatPtr(f *flag.FlagSet, name string, v float64) *float64 {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	if !set {
		return nil
	}
	return &v
}
