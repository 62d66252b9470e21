// Command familaw-calc runs the family-law calculators from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range calculatorCommands {
		commander.Register(c, "calculators")
	}
	commander.Register(&worksheetCmd{}, "forms")
	commander.Register(&rulesCmd{}, "rules")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
