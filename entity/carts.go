package entity

import (
	"time"

	"tableorder/pkg/cart"
)

// Cart is a customer session's selection, keyed by session id.
type Cart struct {
	ID          string `gorm:"primaryKey;size:36" json:"sessionId"`
	TableNumber string `gorm:"size:20;index" json:"tableNumber"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lines []CartLine `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Reducer copies the stored lines into a pkg/cart value, preserving order.
func (c *Cart) Reducer() *cart.Cart {
	out := &cart.Cart{TableNumber: c.TableNumber}
	for _, l := range c.Lines {
		out.Lines = append(out.Lines, cart.Line{
			Item: cart.Item{
				ID:       l.MenuItemID,
				Name:     l.Name,
				Price:    l.Price,
				Category: l.Category,
				ImageURL: l.ImageURL,
			},
			Quantity: l.Quantity,
		})
	}
	return out
}
