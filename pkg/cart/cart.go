// Package cart is the customer's in-progress selection. Every operation is
// total: unknown ids are no-ops and nothing returns an error.
package cart

// Item is the catalog snapshot taken when an item is added.
type Item struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// MaxQuantity bounds a single line so line totals stay far from int64 limits.
const MaxQuantity = 999

// Line is an Item with a quantity of at least 1.
type Line struct {
	Item
	Quantity int `json:"quantity"`
}

// Total is price * quantity for the line.
func (l Line) Total() int64 { return l.Price * int64(l.Quantity) }

// Cart holds at most one line per item id, in insertion order.
type Cart struct {
	Lines       []Line `json:"items"`
	TableNumber string `json:"tableNumber"`
}

func (c *Cart) index(id uint) int {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			return i
		}
	}
	return -1
}

// AddItem increments the quantity of an existing line or appends a new one.
func (c *Cart) AddItem(it Item) {
	if i := c.index(it.ID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, Line{Item: it, Quantity: 1})
}

func (c *Cart) RemoveItem(id uint) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
}

// UpdateQuantity sets an absolute quantity; zero or less removes the line.
func (c *Cart) UpdateQuantity(id uint, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	if i := c.index(id); i >= 0 {
		c.Lines[i].Quantity = quantity
	}
}

// QuantityOf returns the quantity held for id, 0 when absent.
func (c *Cart) QuantityOf(id uint) int {
	if i := c.index(id); i >= 0 {
		return c.Lines[i].Quantity
	}
	return 0
}

// Clear drops all lines but keeps the table binding.
func (c *Cart) Clear() { c.Lines = nil }

func (c *Cart) SetTableNumber(table string) { c.TableNumber = table }

func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }

// TotalItems sums quantities, not lines.
func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the undiscounted, untaxed sum of price * quantity.
func (c *Cart) TotalPrice() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.Total()
	}
	return sum
}
