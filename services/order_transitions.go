package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"tableorder/entity"
)

// ----- Kitchen actions -----

func (s *OrderService) StartPreparation(ctx context.Context, orderID uint) (*entity.Order, error) {
	return s.transition(ctx, orderID, entity.OrderPending)
}

func (s *OrderService) MarkReady(ctx context.Context, orderID uint) (*entity.Order, error) {
	return s.transition(ctx, orderID, entity.OrderPreparing)
}

// advanceFrom returns the successor of from in the order flow.
func advanceFrom(from entity.OrderStatus) (entity.OrderStatus, error) {
	to, ok := from.Next()
	if !ok {
		return "", fmt.Errorf("order status %q has no successor", from)
	}
	return to, nil
}

// transition moves an order from one status to the next one in the flow with
// a guarded update; a miss is reported as NotFound or InvalidTransition
// depending on whether the order exists.
func (s *OrderService) transition(ctx context.Context, orderID uint, from entity.OrderStatus) (*entity.Order, error) {
	to, err := advanceFrom(from)
	if err != nil {
		return nil, err
	}
	var out *entity.Order
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		affected, err := repo.UpdateStatusGuard(ctx, orderID, from, to)
		if err != nil {
			return err
		}
		o, err := repo.GetOrder(ctx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("order", orderID)
		}
		if err != nil {
			return err
		}
		if affected == 0 {
			return &InvalidTransitionError{Entity: "order", ID: orderID, From: string(o.Status), To: string(to)}
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info(ctx, "order_transition", "order status changed",
		slog.String("order_number", out.OrderNumber),
		slog.String("from", string(from)),
		slog.String("to", string(to)))
	s.Notify.Publish(Event{
		Type: EventOrderStatusChanged, OrderID: out.ID, OrderNumber: out.OrderNumber,
		TableNumber: out.TableNumber, Status: string(out.Status), At: s.Now(),
	})
	return out, nil
}

// ----- Billing actions -----

// Settle completes a ready order and records how it was paid. There is no
// default method: the caller must choose cash, upi or card.
func (s *OrderService) Settle(ctx context.Context, orderID uint, methodKey string) (*entity.Order, error) {
	if strings.TrimSpace(methodKey) == "" {
		return nil, ErrMissingPaymentMethod
	}
	method, ok := entity.ParsePaymentMethod(methodKey)
	if !ok {
		return nil, &ValidationError{Field: "paymentMethod", Message: "must be one of cash, upi, card"}
	}

	from := entity.OrderReady
	to, err := advanceFrom(from)
	if err != nil {
		return nil, err
	}

	var out *entity.Order
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		affected, err := repo.SettleGuard(ctx, orderID, from, to, method)
		if err != nil {
			return err
		}
		o, err := repo.GetOrder(ctx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("order", orderID)
		}
		if err != nil {
			return err
		}
		if affected == 0 {
			return &InvalidTransitionError{Entity: "order", ID: orderID, From: string(o.Status), To: string(to)}
		}
		p := &entity.Payment{OrderID: o.ID, Amount: o.Total, Method: method, PaidAt: s.Now()}
		if err := s.Payments.WithTx(tx).Create(ctx, p); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info(ctx, "order_settle", "order settled",
		slog.String("order_number", out.OrderNumber),
		slog.String("payment_method", string(method)),
		slog.Int64("total", out.Total))
	s.Notify.Publish(Event{
		Type: EventOrderSettled, OrderID: out.ID, OrderNumber: out.OrderNumber,
		TableNumber: out.TableNumber, Status: string(out.Status), At: s.Now(),
	})
	return out, nil
}
