package magazzino

import (
	"errors"
	"slices"
	"testing"
)

// entry is a test helper to build a stock entry without id and timestamp,
// which Apply assigns and the assertions ignore.
func entry(c Category, product string, quantity int) Entry {
	return Entry{Category: c, Product: product, Quantity: quantity}
}

// quantities projects a stock onto the (category, product, quantity) triples
// the tests care about.
func quantities(s Stock) []Entry {
	out := make([]Entry, 0, len(s))
	for _, e := range s {
		out = append(out, entry(e.Category, e.Product, e.Quantity))
	}
	return out
}

func TestStock_Apply(t *testing.T) {
	testCases := []struct {
		name     string
		stock    Stock
		typ      MovementType
		category Category
		product  string
		quantity string
		wantErr  error
		want     []Entry
	}{
		{
			name:     "Load on empty stock creates the entry",
			stock:    Stock{},
			typ:      Load,
			category: Food,
			product:  "Pasta",
			quantity: "5",
			want:     []Entry{entry(Food, "Pasta", 5)},
		},
		{
			name:     "Load on existing entry adds up",
			stock:    Stock{entry(Food, "Pasta", 5)},
			typ:      Load,
			category: Food,
			product:  "Pasta",
			quantity: "3",
			want:     []Entry{entry(Food, "Pasta", 8)},
		},
		{
			name:     "Unload subtracts",
			stock:    Stock{entry(Food, "Pasta", 5)},
			typ:      Unload,
			category: Food,
			product:  "Pasta",
			quantity: "2",
			want:     []Entry{entry(Food, "Pasta", 3)},
		},
		{
			name:     "Unload deficit clamps to zero",
			stock:    Stock{entry(Food, "Pasta", 5)},
			typ:      Unload,
			category: Food,
			product:  "Pasta",
			quantity: "8",
			want:     []Entry{entry(Food, "Pasta", 0)},
		},
		{
			name:     "Unload on unknown product is rejected",
			stock:    Stock{},
			typ:      Unload,
			category: Food,
			product:  "Pasta",
			quantity: "1",
			wantErr:  ErrUnknownItem,
		},
		{
			name:     "Unload on wrong category is rejected",
			stock:    Stock{entry(Food, "Acqua", 5)},
			typ:      Unload,
			category: Beverage,
			product:  "Acqua",
			quantity: "1",
			wantErr:  ErrUnknownItem,
		},
		{
			name:     "Empty name is rejected",
			stock:    Stock{},
			typ:      Load,
			category: Food,
			product:  "   ",
			quantity: "5",
			wantErr:  ErrEmptyName,
		},
		{
			name:     "Negative quantity clamps to zero and is rejected",
			stock:    Stock{},
			typ:      Load,
			category: Food,
			product:  "Pasta",
			quantity: "-5",
			wantErr:  ErrNonPositiveQuantity,
		},
		{
			name:     "Non numeric quantity is rejected",
			stock:    Stock{},
			typ:      Load,
			category: Food,
			product:  "Pasta",
			quantity: "tanta",
			wantErr:  ErrNonPositiveQuantity,
		},
		{
			name:     "Zero quantity is rejected",
			stock:    Stock{entry(Food, "Pasta", 5)},
			typ:      Load,
			category: Food,
			product:  "Pasta",
			quantity: "0",
			wantErr:  ErrNonPositiveQuantity,
		},
		{
			name:     "Name matching ignores case and whitespace",
			stock:    Stock{entry(Food, "Pane", 2)},
			typ:      Load,
			category: Food,
			product:  "  pane  ",
			quantity: "3",
			want:     []Entry{entry(Food, "Pane", 5)},
		},
		{
			name:     "Name matching ignores diacritics",
			stock:    Stock{entry(Beverage, "Caffè", 4)},
			typ:      Unload,
			category: Beverage,
			product:  "caffe",
			quantity: "1",
			want:     []Entry{entry(Beverage, "Caffè", 3)},
		},
		{
			name:     "Same name in another category is a distinct product",
			stock:    Stock{entry(Food, "Cola", 1)},
			typ:      Load,
			category: Beverage,
			product:  "Cola",
			quantity: "6",
			want:     []Entry{entry(Beverage, "Cola", 6), entry(Food, "Cola", 1)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := slices.Clone(tc.stock)
			got, mov, err := tc.stock.Apply(tc.typ, tc.category, tc.product, tc.quantity, Date{})

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Apply() error = %v, want %v", err, tc.wantErr)
				}
				if !slices.Equal(got, before) {
					t.Errorf("Apply() mutated the stock on rejection: %v", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("Apply() unexpected error: %v", err)
			}
			if !slices.Equal(quantities(got), tc.want) {
				t.Errorf("Apply() = %v, want %v", quantities(got), tc.want)
			}
			if !slices.Equal(tc.stock, before) {
				t.Errorf("Apply() mutated its receiver: %v", tc.stock)
			}
			if mov.Quantity <= 0 || mov.Product == "" {
				t.Errorf("Apply() returned an incomplete movement: %+v", mov)
			}
			if mov.Date.IsZero() {
				t.Errorf("Apply() did not default the movement date")
			}
		})
	}
}

func TestStock_Apply_neverNegative(t *testing.T) {
	// Hammer one key with an arbitrary accepted sequence and check the
	// invariant after every step.
	stock := Stock{}
	steps := []struct {
		typ MovementType
		qty string
	}{
		{Load, "3"}, {Unload, "10"}, {Load, "1"}, {Unload, "1"},
		{Unload, "5"}, {Load, "7"}, {Unload, "2"}, {Unload, "100"},
	}
	for i, step := range steps {
		next, _, err := stock.Apply(step.typ, Food, "Pasta", step.qty, Date{})
		if err != nil {
			t.Fatalf("step %d: unexpected rejection: %v", i, err)
		}
		stock = next
		for _, e := range stock {
			if e.Quantity < 0 {
				t.Fatalf("step %d: negative quantity %d for %s", i, e.Quantity, e.Product)
			}
		}
	}
}

func TestStock_Apply_loadThenUnloadRestoresQuantity(t *testing.T) {
	stock := Stock{entry(Food, "Riso", 4)}
	loaded, _, err := stock.Apply(Load, Food, "Riso", "9", Date{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	unloaded, _, err := loaded.Apply(Unload, Food, "Riso", "9", Date{})
	if err != nil {
		t.Fatalf("unload: %v", err)
	}
	if got := unloaded[0].Quantity; got != 4 {
		t.Errorf("quantity after load+unload of the same amount = %d, want 4", got)
	}
}

func TestStock_Apply_keepsCanonicalOrder(t *testing.T) {
	// Insert out of order, across categories, with mixed case.
	stock := Stock{}
	for _, in := range []struct {
		c Category
		p string
	}{
		{Food, "zucchine"}, {Beverage, "Vino"}, {Food, "Pane"},
		{Beverage, "acqua"}, {Food, "Aglio"}, {Beverage, "Birra"},
	} {
		var err error
		stock, _, err = stock.Apply(Load, in.c, in.p, "1", Date{})
		if err != nil {
			t.Fatalf("loading %q: %v", in.p, err)
		}
	}

	want := []string{"acqua", "Birra", "Vino", "Aglio", "Pane", "zucchine"}
	var got []string
	for _, e := range stock {
		got = append(got, e.Product)
	}
	if !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if !slices.IsSortedFunc(stock, Compare) {
		t.Errorf("stock is not sorted under its own comparator")
	}
}

func TestStock_Apply_datePassedThrough(t *testing.T) {
	on := MustParseDate("2026-3-15")
	_, mov, err := Stock{}.Apply(Load, Beverage, "Succo", "2", on)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mov.Date != on {
		t.Errorf("movement date = %s, want %s", mov.Date, on)
	}
}

func TestStock_Delete(t *testing.T) {
	stock := Stock{entry(Beverage, "Acqua", 6), entry(Food, "Pane", 2)}

	got, ok := stock.Delete(Food, " PANE ")
	if !ok {
		t.Fatalf("Delete() did not find the entry")
	}
	if !slices.Equal(quantities(got), []Entry{entry(Beverage, "Acqua", 6)}) {
		t.Errorf("Delete() = %v", quantities(got))
	}

	if _, ok := stock.Delete(Food, "Latte"); ok {
		t.Errorf("Delete() removed a non-existing entry")
	}
}

func TestStock_ByProduct(t *testing.T) {
	stock := Stock{
		entry(Beverage, "Acqua frizzante", 6),
		entry(Beverage, "Acqua naturale", 4),
		entry(Food, "Pane", 2),
	}
	if got := stock.ByProduct("ACQUA"); len(got) != 2 {
		t.Errorf("ByProduct(ACQUA) matched %d entries, want 2", len(got))
	}
	if got := stock.ByProduct(""); len(got) != 3 {
		t.Errorf("ByProduct(empty) matched %d entries, want all 3", len(got))
	}
	if got := stock.ByProduct("latte"); len(got) != 0 {
		t.Errorf("ByProduct(latte) matched %d entries, want 0", len(got))
	}
}

func TestParseCategory(t *testing.T) {
	for _, s := range []string{"Cibo", "cibo", "CIBO"} {
		c, err := ParseCategory(s)
		if err != nil || c != Food {
			t.Errorf("ParseCategory(%q) = %v, %v", s, c, err)
		}
	}
	if _, err := ParseCategory("Surgelati"); err == nil {
		t.Errorf("ParseCategory accepted an unknown category")
	}
}

func TestCategory_Unit(t *testing.T) {
	if got := Food.Unit(); got != "pz" {
		t.Errorf("Food.Unit() = %q, want pz", got)
	}
	if got := Beverage.Unit(); got != "bott" {
		t.Errorf("Beverage.Unit() = %q, want bott", got)
	}
}
