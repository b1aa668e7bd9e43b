package services

import (
	"context"
	"errors"
	"testing"

	"tableorder/entity"
)

func TestWaiterCallLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	s, _ := e.carts.OpenSession(ctx, "T4")
	c, err := e.calls.Create(ctx, s.Cart.SessionID, "  ")
	if err != nil {
		t.Fatal(err)
	}
	if c.TableNumber != "T4" || c.Reason != "Need assistance" || c.Status != entity.CallPending {
		t.Fatalf("call = %+v", c)
	}

	var it *InvalidTransitionError
	if _, err := e.calls.Resolve(ctx, c.ID); !errors.As(err, &it) || it.From != "pending" {
		t.Fatalf("resolve pending: %v", err)
	}
	if c, err = e.calls.Acknowledge(ctx, c.ID); err != nil || c.Status != entity.CallAcknowledged {
		t.Fatalf("ack: %+v %v", c, err)
	}
	if _, err := e.calls.Acknowledge(ctx, c.ID); !errors.As(err, &it) {
		t.Fatalf("double ack: %v", err)
	}
	if c, err = e.calls.Resolve(ctx, c.ID); err != nil || c.Status != entity.CallResolved {
		t.Fatalf("resolve: %+v %v", c, err)
	}

	var nf *NotFoundError
	if _, err := e.calls.Acknowledge(ctx, 404); !errors.As(err, &nf) {
		t.Errorf("unknown call: %v", err)
	}
}

func TestWaiterCallList(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	pending, err := e.calls.List(ctx, "pending")
	if err != nil || len(pending) != 2 {
		t.Fatalf("pending = %d, %v", len(pending), err)
	}
	if _, err := e.calls.Acknowledge(ctx, pending[0].ID); err != nil {
		t.Fatal(err)
	}
	n, _ := e.calls.PendingCount(ctx)
	if n != 1 {
		t.Errorf("pending count = %d", n)
	}
	all, _ := e.calls.List(ctx, "")
	if len(all) != 2 {
		t.Errorf("all = %d", len(all))
	}
	if _, err := e.calls.List(ctx, "closed"); err == nil {
		t.Error("unknown status accepted")
	}
}

func TestWaiterCallNeedsTable(t *testing.T) {
	e := newEnv(t)
	s, _ := e.carts.OpenSession(context.Background(), "")
	var ve *ValidationError
	if _, err := e.calls.Create(context.Background(), s.Cart.SessionID, "water"); !errors.As(err, &ve) {
		t.Fatalf("err = %v", err)
	}
}
