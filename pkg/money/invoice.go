package money

import "github.com/shopspring/decimal"

// Breakdown is the invoice arithmetic for one subtotal.
type Breakdown struct {
	Subtotal      int64 `json:"subtotal"`
	TaxAmount     int64 `json:"taxAmount"`
	ServiceCharge int64 `json:"serviceCharge"`
	Total         int64 `json:"total"`
}

// Settle applies tax and service charge, both on the subtotal.
func Settle(subtotal int64, taxRate, serviceChargeRate decimal.Decimal) Breakdown {
	b := Breakdown{
		Subtotal:      subtotal,
		TaxAmount:     Percent(subtotal, taxRate),
		ServiceCharge: Percent(subtotal, serviceChargeRate),
	}
	b.Total = b.Subtotal + b.TaxAmount + b.ServiceCharge
	return b
}

// Preview is what the customer sees before placing an order: tax only.
func Preview(subtotal int64, taxRate decimal.Decimal) Breakdown {
	b := Breakdown{Subtotal: subtotal, TaxAmount: Percent(subtotal, taxRate)}
	b.Total = b.Subtotal + b.TaxAmount
	return b
}
