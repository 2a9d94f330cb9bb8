// Package format holds the pure money and text helpers shared by the demo
// components.
package format

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/shoping-demo/pkg/apperr"
)

// Percentage returns value as a percentage of total.
func Percentage(value, total float64) (float64, error) {
	if total == 0 {
		return 0, apperr.ErrDivisionByZero
	}
	return (value / total) * 100, nil
}

// Currency renders amount in dollars with two decimals. The sign goes in
// front of the symbol: -10 renders as "-$10.00".
func Currency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "NaN"
	case math.IsInf(amount, 1):
		return "$Inf"
	case math.IsInf(amount, -1):
		return "-$Inf"
	}

	d := decimal.NewFromFloat(amount).Round(2)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// DiscountPrice returns the price left after taking discountPercent off.
func DiscountPrice(price, discountPercent float64) float64 {
	if !finite(price, discountPercent) {
		return price - price*discountPercent/100
	}

	p := decimal.NewFromFloat(price)
	off := p.Mul(decimal.NewFromFloat(discountPercent)).Div(decimal.NewFromInt(100))
	return p.Sub(off).InexactFloat64()
}

func CapitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(s[size:])
	return b.String()
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
