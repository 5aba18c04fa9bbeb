package magazzino

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Validation outcomes of the reconciliation core. They are detected before
// any mutation: a rejected movement always leaves the stock unchanged.
var (
	// ErrEmptyName rejects a movement whose product name is empty after trimming.
	ErrEmptyName = errors.New("product name required")
	// ErrNonPositiveQuantity rejects a movement whose quantity is zero or negative.
	ErrNonPositiveQuantity = errors.New("quantity must be > 0")
	// ErrUnknownItem rejects an unload that targets a product never loaded.
	ErrUnknownItem = errors.New("item does not exist: perform a load first")
)

// names compares product names the way the operator reads them: case and
// diacritics are ignored (base sensitivity). The same collator decides both
// identity ("is this the same product") and sort order, so the two can never
// disagree.
var names = collate.New(language.Italian, collate.Loose)

// SameName reports whether two product names denote the same product.
func SameName(a, b string) bool { return names.CompareString(a, b) == 0 }

// NormalizeName trims the surrounding whitespace from a raw product name.
func NormalizeName(raw string) string { return strings.TrimSpace(raw) }

// Entry is the current stock of one product in one category.
//
// Its identity key is (Category, Product) under SameName; the id is an opaque
// handle assigned at creation and never reused for matching.
type Entry struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	Product     string    `json:"product"`
	Quantity    int       `json:"quantity"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Stock is the collection of all stock entries, one per (category, product).
//
// A Stock returned by Apply or Sorted is in canonical order: category label
// ascending, then product name ascending under the shared collator.
type Stock []Entry

// Compare is the total order over entries used for the canonical sort.
func Compare(a, b Entry) int {
	if c := strings.Compare(string(a.Category), string(b.Category)); c != 0 {
		return c
	}
	return names.CompareString(a.Product, b.Product)
}

// Sorted returns a copy of the stock in canonical order. The sort is stable,
// so entries with equal keys keep their relative order.
func (s Stock) Sorted() Stock {
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, Compare)
	return sorted
}

// Find returns the index of the entry matching (category, rawName) under the
// shared name comparator, or -1 if there is none. It is the single matching
// rule: apply, adjust and delete all resolve products through it.
func (s Stock) Find(category Category, rawName string) int {
	name := NormalizeName(rawName)
	return slices.IndexFunc(s, func(e Entry) bool {
		return e.Category == category && SameName(e.Product, name)
	})
}

// parseQuantity parses a raw quantity input. Anything non-numeric or negative
// is coerced to 0, which Apply then rejects as non-positive.
func parseQuantity(raw string) int {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || q < 0 {
		return 0
	}
	return q
}

// Apply validates a candidate movement and applies it to the stock.
//
// On success it returns the new canonically sorted stock together with the
// movement descriptor to hand to the journal; the receiver is left untouched.
// On rejection it returns the receiver unchanged, a zero Movement, and one of
// ErrEmptyName, ErrNonPositiveQuantity or ErrUnknownItem, whose message is
// the user-facing reason.
//
// A load on an unknown product creates its entry; an unload on a known
// product is clamped at zero, a deficit is not an error. An unload on an
// unknown product is rejected: stock is never created by taking from it.
func (s Stock) Apply(t MovementType, category Category, rawName, rawQuantity string, on Date) (Stock, Movement, error) {
	name := NormalizeName(rawName)
	if name == "" {
		return s, Movement{}, ErrEmptyName
	}
	q := parseQuantity(rawQuantity)
	if q <= 0 {
		return s, Movement{}, ErrNonPositiveQuantity
	}
	if on.IsZero() {
		on = Today()
	}

	mov := Movement{Date: on, Type: t, Category: category, Product: name, Quantity: q}

	i := s.Find(category, name)
	if i < 0 {
		if t != Load {
			return s, Movement{}, ErrUnknownItem
		}
		created := Entry{
			ID:          uuid.NewString(),
			Category:    category,
			Product:     name,
			Quantity:    q,
			LastUpdated: time.Now(),
		}
		return append(slices.Clone(s), created).Sorted(), mov, nil
	}

	updated := slices.Clone(s)
	if t == Load {
		updated[i].Quantity += q
	} else {
		updated[i].Quantity = max(0, updated[i].Quantity-q)
	}
	updated[i].LastUpdated = time.Now()
	return updated.Sorted(), mov, nil
}

// Delete removes the entry matching (category, rawName) and returns the new
// stock. It reports false if there is no such entry. Deletion is an explicit
// correction, not a movement: nothing is journaled for it.
func (s Stock) Delete(category Category, rawName string) (Stock, bool) {
	i := s.Find(category, rawName)
	if i < 0 {
		return s, false
	}
	return slices.Delete(slices.Clone(s), i, i+1), true
}

// ByProduct returns the entries whose product name contains the query,
// case-insensitively, preserving order. An empty query keeps everything.
func (s Stock) ByProduct(query string) Stock {
	query = NormalizeName(query)
	if query == "" {
		return s
	}
	var filtered Stock
	for _, e := range s {
		if strings.Contains(strings.ToLower(e.Product), strings.ToLower(query)) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// InCategory returns the entries of one category, preserving order.
func (s Stock) InCategory(category Category) Stock {
	var filtered Stock
	for _, e := range s {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
