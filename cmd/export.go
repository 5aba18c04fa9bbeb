package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/scorta/magazzino"
)

type exportCmd struct {
	what   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a pretty-printed JSON snapshot of the data" }
func (*exportCmd) Usage() string {
	return `mgz export [-what stock|movements|all] [-o <file>]

  Writes a read-only snapshot of the stock, the movement log, or both, as
  pretty-printed JSON. The snapshot is for backup and sharing; importing it
  back is just copying the files into the data directory.

Usage Examples:
$ mgz export
$ mgz export -what movements -o -
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.what, "what", "stock", "What to export: stock, movements, or all.")
	f.StringVar(&c.output, "o", "Magazzino-export.json", "Output file, or - for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()

	var snapshot any
	switch c.what {
	case "stock":
		stock, err := store.LoadStock()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		snapshot = stock
	case "movements":
		journal, err := store.LoadJournal()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		snapshot = collect(journal)
	case "all":
		stock, err := store.LoadStock()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		journal, err := store.LoadJournal()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		snapshot = struct {
			Stock     magazzino.Stock      `json:"stock"`
			Movements []magazzino.Movement `json:"movements"`
		}{stock, collect(journal)}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown export target %q, want stock, movements or all.\n", c.what)
		return subcommands.ExitUsageError
	}

	out := os.Stdout
	if c.output != "-" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating export file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := magazzino.ExportJSON(out, snapshot); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.output != "-" {
		fmt.Printf("Exported %s to %s\n", c.what, c.output)
	}
	return subcommands.ExitSuccess
}

// collect flattens the journal to a slice for the snapshot.
func collect(j *magazzino.Journal) []magazzino.Movement {
	movements := make([]magazzino.Movement, 0, j.Len())
	for _, m := range j.Movements() {
		movements = append(movements, m)
	}
	return movements
}
