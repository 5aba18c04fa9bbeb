package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/scorta/magazzino"
	"github.com/scorta/magazzino/renderer"
)

type logCmd struct {
	category string
	typ      string
	head     int
	tail     int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "show the movement history" }
func (*logCmd) Usage() string {
	return `mgz log [-c <category>] [-t <type>] [-head <n> | -tail <n>]

  Lists recorded movements in recording order, oldest first, with options
  for filtering and limiting the output. The log is the audit history: it
  shows what happened, not the current stock.

Usage Examples:
$ mgz log
$ mgz log -c Bevande -t unload -tail 10
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Show only movements of this category.")
	f.StringVar(&c.typ, "t", "", "Show only movements of this type (load or unload).")
	f.IntVar(&c.head, "head", 0, "Show only the first N movements.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N movements.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	var filters []func(magazzino.Movement) bool
	if c.category != "" {
		category, err := magazzino.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, magazzino.ByCategory(category))
	}
	if c.typ != "" {
		t, err := magazzino.ParseMovementType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, magazzino.ByType(t))
	}

	journal, err := openStore().LoadJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var movements []magazzino.Movement
	for _, m := range journal.Movements(filters...) {
		movements = append(movements, m)
	}

	if c.head > 0 && len(movements) > c.head {
		movements = movements[:c.head]
	}
	if c.tail > 0 && len(movements) > c.tail {
		movements = movements[len(movements)-c.tail:]
	}

	printMarkdown(renderer.Movements(movements))
	return subcommands.ExitSuccess
}
