// Package cmd implements the CLI application to manage a local stock.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/scorta/magazzino"
	"github.com/scorta/magazzino/renderer"
)

// Commands lists all subcommands. A main package registers them on a
// Commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&loadCmd{},
	&unloadCmd{},
	&adjustCmd{},
	&deleteCmd{},
	&listCmd{},
	&logCmd{},
	&exportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("magazzino", defaultDataDir(), "Path to the magazzino data directory")

// defaultDataDir resolves the store directory: MAGAZZINO_DIR if set,
// otherwise the current directory.
func defaultDataDir() string {
	if dir := os.Getenv("MAGAZZINO_DIR"); dir != "" {
		return dir
	}
	return "."
}

// openStore opens the store every command reads from and writes to.
func openStore() *magazzino.Store {
	return magazzino.NewStore(*dataDir)
}

// applyAndRecord is the one write path shared by load, unload and adjust:
// apply the movement to the stock, and only if accepted, record it in the
// journal and save both stores. The two saves are deliberately independent,
// the journal is an audit trail, not a source the stock is rebuilt from.
func applyAndRecord(t magazzino.MovementType, rawCategory, product, quantity, rawDate string) subcommands.ExitStatus {
	category, err := magazzino.ParseCategory(rawCategory)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var on magazzino.Date
	if rawDate != "" {
		on, err = magazzino.ParseDate(rawDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store := openStore()
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

	updated, mov, err := stock.Apply(t, category, product, quantity, on)
	if err != nil {
		// a rejection is an input problem, not a fault: nothing was changed
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	journal.Record(mov)

	if err := store.SaveStock(updated); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SaveJournal(journal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if i := updated.Find(category, product); i >= 0 {
		fmt.Println(renderer.Movement(mov))
		fmt.Println("Now in stock:", renderer.Entry(updated[i]))
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown string to the terminal through glamour,
// falling back to the raw markdown when rendering is not possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
