// Package magazzino tracks stock levels of named goods across a small set of
// categories, for a single operator keeping a local inventory.
//
// The package is built around two independent records:
//   - Stock: the current-quantity view, one entry per (category, product).
//     Every load or unload movement is validated and applied by the
//     reconciliation core (Stock.Apply), which returns a new canonically
//     sorted collection and never leaves a quantity below zero.
//   - Journal: the append-only audit history of accepted movements. It is
//     written alongside the stock but never replayed into it.
//
// Product identity is deliberately forgiving: names are trimmed and compared
// case-insensitively with locale collation at base sensitivity, so "Pane" and
// "  pane  " are the same product. The same comparator orders the stock, so
// identity and sort order can never disagree.
//
// Persistence is plain JSON, one array per store, read and written in full.
// This package is the foundation of the `mgz` command-line tool.
package magazzino
