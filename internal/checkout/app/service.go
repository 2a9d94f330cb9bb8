package app

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/shoping-demo/internal/checkout/domain"
	"github.com/dwikikusuma/shoping-demo/pkg/apperr"
	"github.com/dwikikusuma/shoping-demo/pkg/format"
)

type CartReader interface {
	CartItems() ([]CartItem, error)
}

type CartItem struct {
	ID        string
	Name      string
	Quantity  int
	UnitPrice float64
}

type Service struct {
	Cart CartReader
}

func NewService(cart CartReader) *Service {
	return &Service{Cart: cart}
}

var ErrEmptyCart = fmt.Errorf("%w: cart is empty", apperr.ErrValidation)

// Quote prices every cart line and takes discountPercent off the subtotal.
func (s *Service) Quote(discountPercent float64) (domain.Quote, error) {
	if math.IsNaN(discountPercent) || discountPercent < 0 || discountPercent > 100 {
		return domain.Quote{}, apperr.Field("discount_percent", "must be between 0 and 100")
	}

	items, err := s.Cart.CartItems()
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	subtotal := decimal.Zero
	var errs []error

	for idx, it := range items {
		if it.Quantity <= 0 {
			errs = append(errs, fmt.Errorf("line %d: %w", idx, apperr.Field("quantity", "must be positive")))
			continue
		}
		if math.IsNaN(it.UnitPrice) || math.IsInf(it.UnitPrice, 0) || it.UnitPrice < 0 {
			errs = append(errs, fmt.Errorf("line %d: %w", idx, apperr.Field("unit_price", "must be a non-negative number")))
			continue
		}

		lineTotal := decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		lines[idx] = domain.QuoteLine{
			ItemID:    it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: lineTotal.InexactFloat64(),
		}
	}

	if err := errors.Join(errs...); err != nil {
		return domain.Quote{}, err
	}

	sub := subtotal.InexactFloat64()
	return domain.Quote{
		Lines:           lines,
		Subtotal:        sub,
		DiscountPercent: discountPercent,
		Total:           format.DiscountPrice(sub, discountPercent),
	}, nil
}
