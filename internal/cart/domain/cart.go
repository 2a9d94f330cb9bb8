package domain

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/shoping-demo/pkg/apperr"
)

type LineItem struct {
	ID        string
	Name      string
	UnitPrice float64
	Quantity  int
}

// Validate returns every malformed field joined into one error, or nil.
func (it LineItem) Validate() error {
	var errs []error
	if strings.TrimSpace(it.ID) == "" {
		errs = append(errs, apperr.Field("id", "is required"))
	}
	if strings.TrimSpace(it.Name) == "" {
		errs = append(errs, apperr.Field("name", "is required"))
	}
	if math.IsNaN(it.UnitPrice) || math.IsInf(it.UnitPrice, 0) {
		errs = append(errs, apperr.Field("unit_price", "must be a finite number"))
	} else if it.UnitPrice < 0 {
		errs = append(errs, apperr.Field("unit_price", "cannot be negative"))
	}
	if it.Quantity < 1 {
		errs = append(errs, apperr.Field("quantity", "must be positive"))
	}
	return errors.Join(errs...)
}

func (it LineItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Total sums unit price times quantity over items.
func Total(items []LineItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum.InexactFloat64()
}
