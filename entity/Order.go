package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string      `gorm:"size:20;index" json:"orderNumber"`
	TableNumber string      `gorm:"size:20;index" json:"tableNumber"`
	Status      OrderStatus `gorm:"size:20;index" json:"status"`

	// stored independently, never recomputed from lines
	Subtotal      int64 `json:"subtotal"`
	TaxAmount     int64 `json:"taxAmount"`
	ServiceCharge int64 `json:"serviceCharge"`
	Total         int64 `json:"total"`

	// rates in effect when the amounts were computed
	TaxRate           decimal.Decimal `gorm:"type:text" json:"taxRate"`
	ServiceChargeRate decimal.Decimal `gorm:"type:text" json:"serviceChargeRate"`

	// set only when the order is settled
	PaymentMethod   PaymentMethod `gorm:"size:10" json:"paymentMethod,omitempty"`
	PrepTimeMinutes int           `json:"prepTimeMinutes"`

	Lines []OrderLine `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
