package adapter

import (
	cartapp "github.com/dwikikusuma/shoping-demo/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/shoping-demo/internal/checkout/app"
)

type LedgerReader struct {
	ledger *cartapp.Ledger
}

func NewLedgerReader(ledger *cartapp.Ledger) *LedgerReader {
	return &LedgerReader{ledger: ledger}
}

func (r *LedgerReader) CartItems() ([]checkoutapp.CartItem, error) {
	rows := r.ledger.Items()

	items := make([]checkoutapp.CartItem, 0, len(rows))
	for _, it := range rows {
		items = append(items, checkoutapp.CartItem{
			ID:        it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return items, nil
}
