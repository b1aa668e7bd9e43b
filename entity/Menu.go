package entity

import (
	"tableorder/pkg/cart"

	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"size:120;not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // minor units
	Category    string `gorm:"size:60;index" json:"category"`
	ImageURL    string `json:"imageUrl"`

	IsAvailable     bool `gorm:"index" json:"isAvailable"`
	IsVegetarian    bool `json:"isVegetarian"`
	PrepTimeMinutes int  `json:"prepTimeMinutes"`
}

// Snapshot is what the cart keeps of the item at the time it is added.
func (m MenuItem) Snapshot() cart.Item {
	return cart.Item{
		ID:       m.ID,
		Name:     m.Name,
		Price:    m.Price,
		Category: m.Category,
		ImageURL: m.ImageURL,
	}
}
