package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/scorta/magazzino"
)

type loadCmd struct {
	category string
	product  string
	quantity string
	date     string
}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "add stock for a product, creating it if needed" }
func (*loadCmd) Usage() string {
	return `mgz load -p <product> -q <quantity> [-c <category>] [-d <date>]

  Records a load movement: the quantity is added to the product's stock, and
  the product is created in its category if it was never loaded before. The
  movement is appended to the movement log.

  The product name is matched ignoring case, accents, and surrounding
  whitespace. The date defaults to today.

Usage Examples:
$ mgz load -p Pasta -q 5
$ mgz load -c Bevande -p "Acqua frizzante" -q 6 -d 2026-08-30
`
}

func (c *loadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", string(magazzino.Food), "Category of the product (Cibo or Bevande)")
	f.StringVar(&c.product, "p", "", "Product name (required)")
	f.StringVar(&c.quantity, "q", "", "Quantity to load (required, positive integer)")
	f.StringVar(&c.date, "d", "", "Date of the movement (defaults to today)")
}

func (c *loadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return applyAndRecord(magazzino.Load, c.category, c.product, c.quantity, c.date)
}
