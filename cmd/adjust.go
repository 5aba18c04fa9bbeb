package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/scorta/magazzino"
)

type adjustCmd struct {
	category string
	product  string
	by       int
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "quickly correct a product's stock by a few units" }
func (*adjustCmd) Usage() string {
	return `mgz adjust -p <product> -by <n> [-c <category>]

  Adjusts a product's stock by n units: positive adds, negative removes.
  The adjustment goes through the same rules as load and unload and is
  recorded in the movement log, so the audit history stays complete.

Usage Examples:
$ mgz adjust -p Pasta -by -1
$ mgz adjust -c Bevande -p Vino -by 2
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", string(magazzino.Food), "Category of the product (Cibo or Bevande)")
	f.StringVar(&c.product, "p", "", "Product name (required)")
	f.IntVar(&c.by, "by", 0, "Units to add (positive) or remove (negative)")
}

func (c *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.by == 0 {
		fmt.Fprintln(os.Stderr, "Error: -by must be a non-zero number of units.")
		return subcommands.ExitUsageError
	}
	t := magazzino.Load
	if c.by < 0 {
		t = magazzino.Unload
	}
	quantity := strconv.Itoa(max(c.by, -c.by))
	return applyAndRecord(t, c.category, c.product, quantity, "")
}
