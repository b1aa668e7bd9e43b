package entity

import "github.com/shopspring/decimal"

// Settings is process-wide configuration, editable for the session only.
type Settings struct {
	RestaurantName    string          `json:"restaurantName"`
	CurrencySymbol    string          `json:"currencySymbol"`
	TaxRate           decimal.Decimal `json:"taxRate"`
	ServiceChargeRate decimal.Decimal `json:"serviceChargeRate"`
}
