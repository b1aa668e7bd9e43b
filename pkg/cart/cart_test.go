package cart

import (
	"math/rand"
	"testing"
)

func item(id uint, price int64) Item {
	return Item{ID: id, Name: "item", Price: price, Category: "Starters"}
}

func TestAddDistinctItems(t *testing.T) {
	var c Cart
	for id := uint(1); id <= 5; id++ {
		c.AddItem(item(id, 100))
	}
	if len(c.Lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(c.Lines))
	}
	for i, l := range c.Lines {
		if l.Quantity != 1 {
			t.Errorf("line %d quantity = %d, want 1", i, l.Quantity)
		}
		if l.ID != uint(i+1) {
			t.Errorf("line %d id = %d, want insertion order", i, l.ID)
		}
	}
}

func TestAddSameItemMerges(t *testing.T) {
	var c Cart
	c.AddItem(item(1, 100))
	c.AddItem(item(2, 50))
	c.AddItem(item(1, 100))

	if len(c.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(c.Lines))
	}
	if c.Lines[0].ID != 1 || c.Lines[0].Quantity != 2 {
		t.Errorf("first line = %+v, want id 1 qty 2", c.Lines[0])
	}
}

func TestUpdateQuantity(t *testing.T) {
	var c Cart
	c.AddItem(item(1, 100))
	c.AddItem(item(2, 50))

	c.UpdateQuantity(1, 4)
	if c.Lines[0].Quantity != 4 {
		t.Errorf("quantity = %d, want absolute 4", c.Lines[0].Quantity)
	}

	c.UpdateQuantity(99, 3)
	if len(c.Lines) != 2 {
		t.Errorf("unknown id changed cart: %+v", c.Lines)
	}

	c.UpdateQuantity(1, 0)
	if len(c.Lines) != 1 || c.Lines[0].ID != 2 {
		t.Fatalf("zero quantity did not remove line: %+v", c.Lines)
	}
	if c.TotalItems() != 1 {
		t.Errorf("TotalItems = %d, want 1", c.TotalItems())
	}

	c.UpdateQuantity(2, -3)
	if !c.IsEmpty() {
		t.Errorf("negative quantity did not remove line: %+v", c.Lines)
	}
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	var c Cart
	c.AddItem(item(1, 100))
	c.RemoveItem(42)
	if len(c.Lines) != 1 {
		t.Fatalf("lines = %d", len(c.Lines))
	}
}

func TestClearKeepsTable(t *testing.T) {
	var c Cart
	c.SetTableNumber("T3")
	c.AddItem(item(1, 100))
	c.Clear()
	if !c.IsEmpty() || c.TableNumber != "T3" {
		t.Fatalf("after clear: %+v", c)
	}
	c.SetTableNumber("T3")
	if c.TableNumber != "T3" {
		t.Fatalf("SetTableNumber not idempotent")
	}
}

func TestTotals(t *testing.T) {
	var c Cart
	a, b := item(1, 10000), item(2, 5000)
	c.AddItem(a)
	c.AddItem(a)
	c.AddItem(b)
	if got := c.TotalPrice(); got != 25000 {
		t.Errorf("TotalPrice = %d, want 25000", got)
	}
	if got := c.TotalItems(); got != 3 {
		t.Errorf("TotalItems = %d, want 3", got)
	}
}

func TestTotalPriceMatchesLinesUnderRandomOps(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	var c Cart
	for step := 0; step < 500; step++ {
		id := uint(r.Intn(6) + 1)
		switch r.Intn(3) {
		case 0:
			c.AddItem(item(id, int64(id)*125))
		case 1:
			c.UpdateQuantity(id, r.Intn(5)-1)
		case 2:
			c.RemoveItem(id)
		}

		var want int64
		seen := map[uint]bool{}
		for _, l := range c.Lines {
			if l.Quantity < 1 {
				t.Fatalf("step %d: line with quantity %d", step, l.Quantity)
			}
			if seen[l.ID] {
				t.Fatalf("step %d: duplicate line %d", step, l.ID)
			}
			seen[l.ID] = true
			want += l.Price * int64(l.Quantity)
		}
		if got := c.TotalPrice(); got != want {
			t.Fatalf("step %d: TotalPrice = %d, want %d", step, got, want)
		}
	}
}
