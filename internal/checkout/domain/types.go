package domain

import (
	"fmt"
	"strings"

	"github.com/dwikikusuma/shoping-demo/pkg/format"
)

type QuoteLine struct {
	ItemID    string
	Name      string
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

type Quote struct {
	Lines           []QuoteLine
	Subtotal        float64
	DiscountPercent float64
	Total           float64
}

// Display renders the quote as a plain-text receipt.
func (q Quote) Display() string {
	var b strings.Builder
	for _, l := range q.Lines {
		fmt.Fprintf(&b, "%s x%d @ %s = %s\n", l.Name, l.Quantity, format.Currency(l.UnitPrice), format.Currency(l.LineTotal))
	}
	fmt.Fprintf(&b, "subtotal: %s\n", format.Currency(q.Subtotal))
	if q.DiscountPercent > 0 {
		fmt.Fprintf(&b, "discount: %g%%\n", q.DiscountPercent)
	}
	fmt.Fprintf(&b, "total: %s\n", format.Currency(q.Total))
	return b.String()
}
