package services

import (
	"context"
	"errors"
	"testing"

	"tableorder/entity"
)

func placeOn(t *testing.T, e *env, table string, items ...uint) *entity.Order {
	t.Helper()
	ctx := context.Background()
	s, err := e.carts.OpenSession(ctx, table)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range items {
		if _, err := e.carts.Add(ctx, s.Cart.SessionID, id); err != nil {
			t.Fatal(err)
		}
	}
	o, err := e.orders.PlaceFromCart(ctx, s.Cart.SessionID, nil)
	if err != nil {
		t.Fatalf("PlaceFromCart: %v", err)
	}
	return o
}

func TestPlaceFromCart(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	s, _ := e.carts.OpenSession(ctx, "T2")
	sid := s.Cart.SessionID
	e.carts.Add(ctx, sid, classicBurgerID)
	e.carts.Add(ctx, sid, classicBurgerID)
	e.carts.Add(ctx, sid, chickenBiryaniID)

	o, err := e.orders.PlaceFromCart(ctx, sid, &PlaceOrderIn{Notes: map[uint]string{classicBurgerID: " no onions "}})
	if err != nil {
		t.Fatal(err)
	}
	if o.Status != entity.OrderPending || o.TableNumber != "T2" || o.OrderNumber != "ORD004" {
		t.Errorf("order = %+v", o)
	}
	// 249*2 + 299 = 797.00 at 5% tax and 5% service
	if o.Subtotal != 79700 || o.TaxAmount != 3985 || o.ServiceCharge != 3985 || o.Total != 87670 {
		t.Errorf("amounts = %d %d %d %d", o.Subtotal, o.TaxAmount, o.ServiceCharge, o.Total)
	}
	if o.PrepTimeMinutes != 25 {
		t.Errorf("prep = %d", o.PrepTimeMinutes)
	}
	if len(o.Lines) != 2 || o.Lines[0].Quantity != 2 || o.Lines[0].Note != "no onions" {
		t.Errorf("lines = %+v", o.Lines)
	}

	v, _ := e.carts.Get(ctx, sid)
	if len(v.Items) != 0 || v.TableNumber != "T2" {
		t.Errorf("cart after place = %+v", v)
	}

	mine, err := e.orders.ListForSession(ctx, sid)
	if err != nil || len(mine) != 1 || mine[0].ID != o.ID {
		t.Errorf("ListForSession = %v, %v", mine, err)
	}

	types := e.events.types()
	if len(types) == 0 || types[len(types)-1] != EventOrderCreated {
		t.Errorf("events = %v", types)
	}
}

func TestPlaceFromCartRejects(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	empty, _ := e.carts.OpenSession(ctx, "T2")
	unbound, _ := e.carts.OpenSession(ctx, "")
	e.carts.Add(ctx, unbound.Cart.SessionID, classicBurgerID)
	busy, _ := e.carts.OpenSession(ctx, "T1")
	e.carts.Add(ctx, busy.Cart.SessionID, classicBurgerID)

	// items that leave the menu after being carted
	withdrawn, _ := e.carts.OpenSession(ctx, "T4")
	e.carts.Add(ctx, withdrawn.Cart.SessionID, classicBurgerID)
	e.carts.Add(ctx, withdrawn.Cart.SessionID, chickenBiryaniID)
	deleted, _ := e.carts.OpenSession(ctx, "T6")
	e.carts.Add(ctx, deleted.Cart.SessionID, frenchFriesID)
	if _, err := e.menu.ToggleAvailability(ctx, chickenBiryaniID); err != nil {
		t.Fatal(err)
	}
	if err := e.menu.Delete(ctx, frenchFriesID); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		session string
		field   string
		wantErr error
	}{
		{name: "empty cart", session: empty.Cart.SessionID, field: "items"},
		{name: "no table", session: unbound.Cart.SessionID, field: "tableNumber"},
		{name: "table busy", session: busy.Cart.SessionID, wantErr: ErrTableBusy},
		{name: "item unavailable", session: withdrawn.Cart.SessionID, field: "items"},
		{name: "item deleted", session: deleted.Cart.SessionID, field: "items"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.orders.PlaceFromCart(ctx, tt.session, nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Fatalf("err = %v, want validation on %s", err, tt.field)
			}
		})
	}

	// a rejected order leaves the cart untouched
	v, _ := e.carts.Get(ctx, busy.Cart.SessionID)
	if len(v.Items) != 1 {
		t.Errorf("cart changed: %+v", v.Items)
	}
	v, _ = e.carts.Get(ctx, withdrawn.Cart.SessionID)
	if len(v.Items) != 2 {
		t.Errorf("withdrawn cart changed: %+v", v.Items)
	}
	if open, _ := e.orders.ListForSession(ctx, withdrawn.Cart.SessionID); len(open) != 0 {
		t.Errorf("orders placed for withdrawn cart: %+v", open)
	}
}

func TestOrderLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	o := placeOn(t, e, "T2", classicBurgerID, classicBurgerID)

	// 498.00 at 5%/5%
	if o.Total != 54780 {
		t.Fatalf("total = %d", o.Total)
	}

	var it *InvalidTransitionError
	if _, err := e.orders.MarkReady(ctx, o.ID); !errors.As(err, &it) || it.From != "pending" {
		t.Fatalf("ready from pending: %v", err)
	}
	if _, err := e.orders.Settle(ctx, o.ID, "cash"); !errors.As(err, &it) {
		t.Fatalf("settle from pending: %v", err)
	}

	got, err := e.orders.StartPreparation(ctx, o.ID)
	if err != nil || got.Status != entity.OrderPreparing {
		t.Fatalf("start: %v %v", got, err)
	}
	if got, err = e.orders.MarkReady(ctx, o.ID); err != nil || got.Status != entity.OrderReady {
		t.Fatalf("ready: %v %v", got, err)
	}
	if got, err = e.orders.Settle(ctx, o.ID, " UPI "); err != nil {
		t.Fatalf("settle: %v", err)
	}
	if got.Status != entity.OrderCompleted || got.PaymentMethod != entity.PaymentUPI {
		t.Errorf("settled = %+v", got)
	}

	p, err := e.orders.Payments.GetByOrderID(ctx, o.ID)
	if err != nil || p.Amount != 54780 || p.Method != entity.PaymentUPI {
		t.Errorf("payment = %+v, %v", p, err)
	}

	if _, err := e.orders.StartPreparation(ctx, o.ID); !errors.As(err, &it) || it.From != "completed" {
		t.Errorf("regress: %v", err)
	}

	// the table is free again once its order is completed
	placeOn(t, e, "T2", frenchFriesID)
}

func TestTransitionUnknownOrder(t *testing.T) {
	e := newEnv(t)
	var nf *NotFoundError
	if _, err := e.orders.StartPreparation(context.Background(), 999); !errors.As(err, &nf) || nf.Entity != "order" {
		t.Fatalf("err = %v", err)
	}
	if _, err := e.orders.Settle(context.Background(), 999, "card"); !errors.As(err, &nf) {
		t.Fatalf("settle err = %v", err)
	}
}

func TestSettlePaymentMethod(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// ORD003 is seeded ready
	if _, err := e.orders.Settle(ctx, 3, ""); !errors.Is(err, ErrMissingPaymentMethod) {
		t.Errorf("empty method: %v", err)
	}
	var ve *ValidationError
	if _, err := e.orders.Settle(ctx, 3, "cheque"); !errors.As(err, &ve) || ve.Field != "paymentMethod" {
		t.Errorf("bad method: %v", err)
	}
	o, _ := e.orders.Get(ctx, 3)
	if o.Status != entity.OrderReady {
		t.Errorf("status changed to %s", o.Status)
	}
}

func TestKitchenBoard(t *testing.T) {
	e := newEnv(t)
	b, err := e.orders.KitchenBoard(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Pending) != 1 || len(b.Preparing) != 1 || len(b.Ready) != 1 {
		t.Fatalf("board = %d/%d/%d", len(b.Pending), len(b.Preparing), len(b.Ready))
	}
	if b.Ready[0].WaitingMinutes < 25 || b.Ready[0].Elapsed == "" {
		t.Errorf("ready ticket = %+v", b.Ready[0])
	}
}

func TestListByStatusRejectsUnknown(t *testing.T) {
	e := newEnv(t)
	if _, err := e.orders.ListByStatus(context.Background(), "cooking"); err == nil {
		t.Fatal("expected validation error")
	}
}
