// Package renderer turns magazzino domain values into markdown strings.
package renderer

import (
	"fmt"
	"strings"

	"github.com/scorta/magazzino"
)

// Stock renders the current stock as a markdown report, one section per
// category. The stock is assumed to already be in canonical order; rendering
// never reorders it.
func Stock(stock magazzino.Stock) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Magazzino\n\n")

	if len(stock) == 0 {
		fmt.Fprintf(b, "Vuoto.\n")
		return b.String()
	}

	for _, category := range magazzino.Categories() {
		entries := stock.InCategory(category)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(b, "## %s\n\n", category)
		fmt.Fprintf(b, "| Prodotto | Quantità | Aggiornato |\n")
		fmt.Fprintf(b, "|:---|---:|:---|\n")
		for _, e := range entries {
			fmt.Fprintf(b, "| %s | %d %s | %s |\n", e.Product, e.Quantity, category.Unit(), e.LastUpdated.Format("02/01/2006"))
		}
		fmt.Fprintf(b, "\n")
	}
	return b.String()
}

// Entry renders a one-line summary of a stock entry, used by the movement
// commands to confirm the new level.
func Entry(e magazzino.Entry) string {
	return fmt.Sprintf("%s (%s): %d %s", e.Product, e.Category, e.Quantity, e.Category.Unit())
}
