package utils

import "github.com/shopspring/decimal"

// RoundTo rounds value to the given number of decimal places, half away
// from zero. Decimal arithmetic avoids the usual float drift around .5.
func RoundTo(value float64, places int32) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(places).Float64()
	return rounded
}

// DiscountedPrice derives a price reduced by discountPct percent, rounded
// to 2 decimal places for currency display.
func DiscountedPrice(price, discountPct float64) float64 {
	p := decimal.NewFromFloat(price)
	d := decimal.NewFromFloat(discountPct)

	discounted := p.Sub(p.Mul(d).Div(decimal.NewFromInt(100)))
	result, _ := discounted.Round(2).Float64()
	return result
}
