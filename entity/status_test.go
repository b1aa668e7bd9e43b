package entity

import "testing"

func TestOrderStatusNext(t *testing.T) {
	tests := []struct {
		from   OrderStatus
		want   OrderStatus
		wantOK bool
	}{
		{OrderPending, OrderPreparing, true},
		{OrderPreparing, OrderReady, true},
		{OrderReady, OrderCompleted, true},
		{OrderCompleted, "", false},
		{OrderStatus("cancelled"), "", false},
	}
	for _, tt := range tests {
		got, ok := tt.from.Next()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%q.Next() = %q, %v; want %q, %v", tt.from, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCallStatusNext(t *testing.T) {
	tests := []struct {
		from   CallStatus
		want   CallStatus
		wantOK bool
	}{
		{CallPending, CallAcknowledged, true},
		{CallAcknowledged, CallResolved, true},
		{CallResolved, "", false},
		{CallStatus("escalated"), "", false},
	}
	for _, tt := range tests {
		got, ok := tt.from.Next()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%q.Next() = %q, %v; want %q, %v", tt.from, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestEffectiveStatus(t *testing.T) {
	t1 := Table{TableNumber: "T1", Status: TableOccupied}
	t2 := Table{TableNumber: "T2", Status: TableIdle}
	orders := []Order{
		{TableNumber: "T1", Status: OrderCompleted},
		{TableNumber: "T1", Status: OrderPreparing},
		{TableNumber: "T1", Status: OrderReady},
		{TableNumber: "T2", Status: OrderCompleted},
	}

	if got := EffectiveStatus(t1, orders); got != string(OrderPreparing) {
		t.Errorf("T1 = %s, want first open order status", got)
	}
	if got := EffectiveStatus(t2, orders); got != string(TableIdle) {
		t.Errorf("T2 = %s, want base status", got)
	}
	if got := EffectiveStatus(t2, nil); got != string(TableIdle) {
		t.Errorf("no orders = %s", got)
	}
}

func TestParsePaymentMethod(t *testing.T) {
	if m, ok := ParsePaymentMethod(" UPI "); !ok || m != PaymentUPI {
		t.Errorf("got %q %v", m, ok)
	}
	if _, ok := ParsePaymentMethod("cheque"); ok {
		t.Errorf("cheque accepted")
	}
	if _, ok := ParsePaymentMethod(""); ok {
		t.Errorf("empty accepted")
	}
}
