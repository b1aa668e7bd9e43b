package repository

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"tableorder/configs"
	"tableorder/entity"
	"tableorder/pkg/cart"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.OpenDatabase(configs.MemoryDSN(t.Name()))
	if err != nil {
		t.Fatal(err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestCartReplaceKeepsLineOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(openDB(t))
	if err := repo.Create(ctx, &entity.Cart{ID: "s1"}); err != nil {
		t.Fatal(err)
	}

	state := &cart.Cart{}
	state.AddItem(cart.Item{ID: 7, Name: "Lassi", Price: 9900})
	state.AddItem(cart.Item{ID: 3, Name: "Pizza", Price: 34900})
	state.AddItem(cart.Item{ID: 7, Name: "Lassi", Price: 9900})
	state.SetTableNumber("T6")
	if err := repo.Replace(ctx, "s1", state); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	r := got.Reducer()
	if r.TableNumber != "T6" || len(r.Lines) != 2 || r.Lines[0].ID != 7 || r.Lines[0].Quantity != 2 {
		t.Fatalf("stored cart = %+v", r)
	}

	state.Clear()
	if err := repo.Replace(ctx, "s1", state); err != nil {
		t.Fatal(err)
	}
	got, _ = repo.Get(ctx, "s1")
	if len(got.Lines) != 0 || got.TableNumber != "T6" {
		t.Errorf("cleared cart = %+v", got)
	}
}

func TestOrderGuards(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(openDB(t))

	o := &entity.Order{
		TableNumber: "T2",
		Status:      entity.OrderPending,
		Lines:       []entity.OrderLine{{MenuItemID: 1, Name: "Burger", Quantity: 2, UnitPrice: 24900}},
	}
	if err := repo.CreateOrder(ctx, o); err != nil {
		t.Fatal(err)
	}
	if o.OrderNumber != "ORD001" {
		t.Errorf("number = %q", o.OrderNumber)
	}

	busy, _ := repo.HasOpenOrder(ctx, "T2")
	if !busy {
		t.Error("pending order should hold the table")
	}

	n, err := repo.UpdateStatusGuard(ctx, o.ID, entity.OrderPreparing, entity.OrderReady)
	if err != nil || n != 0 {
		t.Fatalf("guard mismatch affected %d, %v", n, err)
	}
	n, _ = repo.UpdateStatusGuard(ctx, o.ID, entity.OrderPending, entity.OrderPreparing)
	if n != 1 {
		t.Fatalf("guard match affected %d", n)
	}
	if n, _ = repo.SettleGuard(ctx, o.ID, entity.OrderReady, entity.OrderCompleted, entity.PaymentCash); n != 0 {
		t.Fatalf("settled a preparing order")
	}

	open, _ := repo.ListOpen(ctx)
	if len(open) != 1 {
		t.Errorf("open = %d", len(open))
	}
	got, _ := repo.GetOrder(ctx, o.ID)
	if len(got.Lines) != 1 || got.Lines[0].Total() != 49800 {
		t.Errorf("lines = %+v", got.Lines)
	}
}
