package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/shoping-demo/pkg/apperr"
)

type fakeCart struct {
	items []CartItem
	err   error
}

func (f fakeCart) CartItems() ([]CartItem, error) { return f.items, f.err }

func TestQuote(t *testing.T) {
	cart := fakeCart{items: []CartItem{
		{ID: "1", Name: "Laptop", Quantity: 3, UnitPrice: 100},
		{ID: "2", Name: "Mouse", Quantity: 1, UnitPrice: 50},
	}}

	t.Run("no discount -> subtotal", func(t *testing.T) {
		q, err := NewService(cart).Quote(0)
		require.NoError(t, err)
		require.Len(t, q.Lines, 2)
		assert.Equal(t, 300.0, q.Lines[0].LineTotal)
		assert.Equal(t, 50.0, q.Lines[1].LineTotal)
		assert.Equal(t, 350.0, q.Subtotal)
		assert.Equal(t, 350.0, q.Total)
	})

	t.Run("10 percent -> final price", func(t *testing.T) {
		q, err := NewService(cart).Quote(10)
		require.NoError(t, err)
		assert.Equal(t, 315.0, q.Total)
		assert.Equal(t, 10.0, q.DiscountPercent)
	})

	t.Run("empty cart -> ErrEmptyCart", func(t *testing.T) {
		_, err := NewService(fakeCart{}).Quote(0)
		assert.True(t, errors.Is(err, ErrEmptyCart))
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("discount out of range -> invalid", func(t *testing.T) {
		for _, pct := range []float64{-1, 100.5} {
			_, err := NewService(cart).Quote(pct)
			assert.True(t, errors.Is(err, apperr.ErrValidation), "pct %v: got %v", pct, err)
		}
	})

	t.Run("bad line -> invalid", func(t *testing.T) {
		bad := fakeCart{items: []CartItem{{ID: "1", Name: "x", Quantity: 0, UnitPrice: 1}}}
		_, err := NewService(bad).Quote(0)
		assert.True(t, errors.Is(err, apperr.ErrValidation), "got %v", err)
		assert.Contains(t, err.Error(), "line 0")
	})

	t.Run("reader error -> returned", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := NewService(fakeCart{err: boom}).Quote(0)
		assert.ErrorIs(t, err, boom)
	})
}
