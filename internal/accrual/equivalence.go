package accrual

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/debtclock/internal/model"
)

// ErrInvalidUnitCost is returned when an equivalence has a unit cost that
// is zero, negative or NaN.
var ErrInvalidUnitCost = errors.New("equivalence unit cost must be positive")

// Equivalences is a validated, ordered table of reference items.
type Equivalences struct {
	items []model.Equivalence
}

// NewEquivalences validates entries and returns a table in the same order.
func NewEquivalences(entries []model.Equivalence) (Equivalences, error) {
	items := make([]model.Equivalence, 0, len(entries))
	for i, e := range entries {
		if e.Label == "" {
			return Equivalences{}, fmt.Errorf("equivalence %d: label is required", i)
		}
		if !(e.UnitCost > 0) {
			return Equivalences{}, fmt.Errorf("equivalence %q: %w", e.Label, ErrInvalidUnitCost)
		}
		switch e.Rule {
		case "":
			e.Rule = model.RuleOneDecimal
		case model.RuleWhole, model.RuleOneDecimal:
		default:
			return Equivalences{}, fmt.Errorf("equivalence %q: unknown rule %q", e.Label, e.Rule)
		}
		items = append(items, e)
	}
	return Equivalences{items: items}, nil
}

// MustEquivalences is NewEquivalences for compiled-in tables; it panics on
// an invalid entry.
func MustEquivalences(entries []model.Equivalence) Equivalences {
	eq, err := NewEquivalences(entries)
	if err != nil {
		panic(err)
	}
	return eq
}

// Len returns the number of items in the table.
func (e Equivalences) Len() int { return len(e.items) }

// Items returns a copy of the table entries.
func (e Equivalences) Items() []model.Equivalence {
	out := make([]model.Equivalence, len(e.items))
	copy(out, e.items)
	return out
}

// Evaluate divides total by each unit cost.
func (e Equivalences) Evaluate(total float64) []model.EquivalenceValue {
	out := make([]model.EquivalenceValue, len(e.items))
	for i, item := range e.items {
		out[i] = model.EquivalenceValue{
			Equivalence: item,
			Count:       total / item.UnitCost,
		}
	}
	return out
}
