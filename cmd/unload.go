package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/scorta/magazzino"
)

type unloadCmd struct {
	category string
	product  string
	quantity string
	date     string
}

func (*unloadCmd) Name() string     { return "unload" }
func (*unloadCmd) Synopsis() string { return "take stock of a product" }
func (*unloadCmd) Usage() string {
	return `mgz unload -p <product> -q <quantity> [-c <category>] [-d <date>]

  Records an unload movement: the quantity is subtracted from the product's
  stock, never going below zero. Unloading a product that was never loaded is
  an error, no entry is created by taking stock.

Usage Examples:
$ mgz unload -p Pasta -q 2
$ mgz unload -c Bevande -p Vino -q 1 -d -1d
`
}

func (c *unloadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", string(magazzino.Food), "Category of the product (Cibo or Bevande)")
	f.StringVar(&c.product, "p", "", "Product name (required)")
	f.StringVar(&c.quantity, "q", "", "Quantity to unload (required, positive integer)")
	f.StringVar(&c.date, "d", "", "Date of the movement (defaults to today)")
}

func (c *unloadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return applyAndRecord(magazzino.Unload, c.category, c.product, c.quantity, c.date)
}
