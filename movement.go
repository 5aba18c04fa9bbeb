package magazzino

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
)

// MovementType says whether a movement puts stock in or takes stock out.
type MovementType string

const (
	// Load increases the stock of a product, creating its entry if needed.
	Load MovementType = "load"
	// Unload decreases the stock of a product, clamped at zero.
	Unload MovementType = "unload"
)

// ParseMovementType parses a string into a MovementType.
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case Load, Unload:
		return MovementType(s), nil
	default:
		return "", fmt.Errorf("unknown movement type: %q", s)
	}
}

func (t MovementType) String() string { return string(t) }

// Movement is one accepted load or unload, as recorded in the journal.
//
// Date is the calendar day the movement happened; CreatedAt is when it was
// entered into the system. The two differ when the operator backfills.
type Movement struct {
	ID        string       `json:"id"`
	Date      Date         `json:"date"`
	Type      MovementType `json:"type"`
	Category  Category     `json:"category"`
	Product   string       `json:"product"`
	Quantity  int          `json:"quantity"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Journal is the append-only audit history of accepted movements.
//
// It records what the stock ledger accepted and nothing else: it never
// rejects a movement, never rewrites one, and is never replayed to rebuild
// the stock. The stock and the journal are two independent records that the
// caller updates together.
type Journal struct {
	movements []Movement
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{movements: make([]Movement, 0)}
}

// newJournal builds a journal from already-recorded movements, for decoding.
func newJournal(movements []Movement) *Journal {
	return &Journal{movements: movements}
}

// Record appends a movement to the journal and returns it with its assigned
// id and creation time. Ids and timestamps already present are kept, so
// decoding and re-recording is lossless.
func (j *Journal) Record(m Movement) Movement {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	j.movements = append(j.movements, m)
	return m
}

// Len returns the number of recorded movements.
func (j *Journal) Len() int { return len(j.movements) }

// Movements returns an iterator over recorded movements in recording order.
// Movements are yielded only if they pass all the given filters.
func (j *Journal) Movements(filters ...func(Movement) bool) iter.Seq2[int, Movement] {
	return func(yield func(int, Movement) bool) {
		for i, m := range j.movements {
			accept := true
			for _, filter := range filters {
				if !filter(m) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, m) {
				return
			}
		}
	}
}

// ByCategory returns a predicate that keeps movements of one category.
func ByCategory(category Category) func(Movement) bool {
	return func(m Movement) bool { return m.Category == category }
}

// ByType returns a predicate that keeps movements of one type.
func ByType(t MovementType) func(Movement) bool {
	return func(m Movement) bool { return m.Type == t }
}
