package entity

import (
	"gorm.io/gorm"
)

type OrderLine struct {
	gorm.Model
	OrderID    uint   `gorm:"index" json:"orderId"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"` // snapshot
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
	Note       string `json:"note,omitempty"`
}

func (l OrderLine) Total() int64 { return l.UnitPrice * int64(l.Quantity) }
