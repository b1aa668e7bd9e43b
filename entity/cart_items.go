package entity

import (
	"tableorder/pkg/cart"
)

type CartLine struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	CartID   string `gorm:"size:36;index" json:"-"`
	Position int    `json:"-"`

	MenuItemID uint   `json:"id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Category   string `json:"category"`
	ImageURL   string `json:"imageUrl,omitempty"`
	Quantity   int    `json:"quantity"`
}

// CartLinesFrom turns reducer lines back into rows for cartID.
func CartLinesFrom(cartID string, lines []cart.Line) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for i, l := range lines {
		out = append(out, CartLine{
			CartID:     cartID,
			Position:   i,
			MenuItemID: l.ID,
			Name:       l.Name,
			Price:      l.Price,
			Category:   l.Category,
			ImageURL:   l.ImageURL,
			Quantity:   l.Quantity,
		})
	}
	return out
}
