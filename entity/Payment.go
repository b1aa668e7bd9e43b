package entity

import (
	"time"

	"gorm.io/gorm"
)

// Payment records a settlement. One per order.
type Payment struct {
	gorm.Model
	OrderID uint          `gorm:"uniqueIndex" json:"orderId"`
	Amount  int64         `json:"amount"`
	Method  PaymentMethod `gorm:"size:10;index" json:"method"`
	PaidAt  time.Time     `json:"paidAt"`
}
