package renderer

import (
	"fmt"
	"strings"

	"github.com/scorta/magazzino"
)

// Movement renders a movement to a one-line string.
func Movement(m magazzino.Movement) string {
	switch m.Type {
	case magazzino.Load:
		return fmt.Sprintf("Loaded %d %s of %s (%s) on %s", m.Quantity, m.Category.Unit(), m.Product, m.Category, m.Date)
	case magazzino.Unload:
		return fmt.Sprintf("Unloaded %d %s of %s (%s) on %s", m.Quantity, m.Category.Unit(), m.Product, m.Category, m.Date)
	default:
		return string(m.Type)
	}
}

// Movements renders the movement log as a markdown table, in recording order.
func Movements(movements []magazzino.Movement) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Movimenti\n\n")

	if len(movements) == 0 {
		fmt.Fprintf(b, "Nessun movimento.\n")
		return b.String()
	}

	fmt.Fprintf(b, "| Data | Tipo | Categoria | Prodotto | Quantità |\n")
	fmt.Fprintf(b, "|:---|:---|:---|:---|---:|\n")
	for _, m := range movements {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %d |\n", m.Date, m.Type, m.Category, m.Product, m.Quantity)
	}
	return b.String()
}
