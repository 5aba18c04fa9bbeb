package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/scorta/magazzino"
)

type deleteCmd struct {
	category string
	product  string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a product from the stock" }
func (*deleteCmd) Usage() string {
	return `mgz delete -p <product> [-c <category>]

  Removes a product's entry from the stock entirely, whatever its quantity.
  The product is matched with the same rule as load and unload. Deletion is
  a correction of the current view, not a movement: the movement log keeps
  the product's history.

Usage Examples:
$ mgz delete -p Pasta
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", string(magazzino.Food), "Category of the product (Cibo or Bevande)")
	f.StringVar(&c.product, "p", "", "Product name (required)")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := magazzino.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	stock, err := store.LoadStock()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	updated, ok := stock.Delete(category, c.product)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no %q in %s.\n", magazzino.NormalizeName(c.product), category)
		return subcommands.ExitFailure
	}

	if err := store.SaveStock(updated); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %q from %s.\n", magazzino.NormalizeName(c.product), category)
	return subcommands.ExitSuccess
}
