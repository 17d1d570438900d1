package pricing

import (
	"github.com/shopspring/decimal"
)

// Rates holds the checkout pricing constants. They are configuration,
// not recomputed later: a placed order keeps whatever was quoted.
type Rates struct {
	TaxRate     decimal.Decimal
	ServiceFee  decimal.Decimal
	DeliveryFee decimal.Decimal
}

// Line is anything priced per unit with a quantity.
type Line struct {
	Price    decimal.Decimal
	Quantity int
}

// Quote is the money breakdown of an order: Total = Subtotal + Tax +
// ServiceFee + DeliveryFee, every field rounded to cents.
type Quote struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	ServiceFee  decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// Subtotal sums price*quantity over the lines, rounded half-up to 2dp.
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum.Round(2)
}

// QuoteFor prices a cart against the given rates.
func QuoteFor(lines []Line, r Rates) Quote {
	subtotal := Subtotal(lines)
	tax := subtotal.Mul(r.TaxRate).Round(2)
	total := subtotal.Add(tax).Add(r.ServiceFee).Add(r.DeliveryFee).Round(2)
	return Quote{
		Subtotal:    subtotal,
		Tax:         tax,
		ServiceFee:  r.ServiceFee,
		DeliveryFee: r.DeliveryFee,
		Total:       total,
	}
}
