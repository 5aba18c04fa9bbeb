package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/scorta/magazzino/renderer"
)

type listCmd struct {
	search string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "show the current stock, by category" }
func (*listCmd) Usage() string {
	return `mgz list [-s <query>]

  Shows the current stock grouped by category, in canonical order. With -s,
  only products whose name contains the query (ignoring case) are shown.

Usage Examples:
$ mgz list
$ mgz list -s acqua
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "s", "", "Show only products containing this text.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stock, err := openStore().LoadStock()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Stock(stock.ByProduct(c.search)))
	return subcommands.ExitSuccess
}
