package app

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dwikikusuma/shoping-demo/internal/cart/domain"
	"github.com/dwikikusuma/shoping-demo/pkg/apperr"
)

// Ledger holds the line items of one shopping session in insertion order.
// It is not safe for concurrent use.
type Ledger struct {
	id    string
	items []domain.LineItem
	log   *slog.Logger
}

func NewLedger(log *slog.Logger) *Ledger {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	id := uuid.NewString()
	return &Ledger{
		id:  id,
		log: log.With(slog.String("cart_id", id)),
	}
}

func (l *Ledger) ID() string {
	return l.id
}

// AddItem appends item. Items sharing an ID are kept as separate rows.
func (l *Ledger) AddItem(item domain.LineItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	l.items = append(l.items, item)
	l.log.Debug("item added",
		slog.String("item_id", item.ID),
		slog.String("name", item.Name),
		slog.Int("quantity", item.Quantity),
	)
	return nil
}

// RemoveItem drops the first row with the given id.
func (l *Ledger) RemoveItem(id string) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return apperr.NotFoundf("item %q", id)
	}

	l.items = slices.Delete(l.items, idx, idx+1)
	l.log.Debug("item removed", slog.String("item_id", id))
	return nil
}

func (l *Ledger) CalculateTotal() float64 {
	return domain.Total(l.items)
}

func (l *Ledger) FindItem(id string) (domain.LineItem, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return domain.LineItem{}, apperr.NotFoundf("item %q", id)
	}
	return l.items[idx], nil
}

// ItemCount is the number of rows, not the sum of quantities.
func (l *Ledger) ItemCount() int {
	return len(l.items)
}

// Items returns a copy of the rows in insertion order.
func (l *Ledger) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Clear() {
	l.items = nil
	l.log.Debug("cart cleared")
}

func (l *Ledger) indexOf(id string) int {
	return slices.IndexFunc(l.items, func(it domain.LineItem) bool {
		return it.ID == id
	})
}
