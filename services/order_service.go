package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"tableorder/entity"
	"tableorder/pkg/logger"
	"tableorder/pkg/money"
	"tableorder/repository"
	"tableorder/utils"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	Payments *repository.PaymentRepository
	Settings *SettingsService
	Log      *logger.Logger
	Notify   Notifier

	Now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	menuRepo *repository.MenuRepository,
	payments *repository.PaymentRepository,
	settings *SettingsService,
	log *logger.Logger,
	notify Notifier,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, MenuRepo: menuRepo, Payments: payments,
		Settings: settings, Log: log, Notify: notifierOrNop(notify), Now: time.Now,
	}
}

// PlaceOrderIn carries optional per-item kitchen notes keyed by menu item id.
type PlaceOrderIn struct {
	Notes map[uint]string `json:"notes"`
}

// PlaceFromCart turns the session's cart into a pending order and clears
// the cart. A table may hold only one non-completed order at a time.
func (s *OrderService) PlaceFromCart(ctx context.Context, sessionID string, in *PlaceOrderIn) (*entity.Order, error) {
	settings := s.Settings.Get()
	var order *entity.Order

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		carts := s.CartRepo.WithTx(tx)
		orders := s.Repo.WithTx(tx)

		row, err := carts.Get(ctx, sessionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("session", sessionID)
		}
		if err != nil {
			return err
		}
		state := row.Reducer()
		if state.IsEmpty() {
			return &ValidationError{Field: "items", Message: "cart is empty"}
		}
		if state.TableNumber == "" {
			return &ValidationError{Field: "tableNumber", Message: "no table selected"}
		}

		busy, err := orders.HasOpenOrder(ctx, state.TableNumber)
		if err != nil {
			return err
		}
		if busy {
			return ErrTableBusy
		}

		ids := make([]uint, 0, len(state.Lines))
		for _, l := range state.Lines {
			ids = append(ids, l.ID)
		}
		items, err := s.MenuRepo.WithTx(tx).FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		prep := map[uint]int{}
		for _, m := range items {
			if m.IsAvailable {
				prep[m.ID] = m.PrepTimeMinutes
			}
		}
		for _, l := range state.Lines {
			if _, ok := prep[l.ID]; !ok {
				return &ValidationError{Field: "items", Message: l.Name + " is no longer available"}
			}
		}

		o := &entity.Order{TableNumber: state.TableNumber, Status: entity.OrderPending}
		for _, l := range state.Lines {
			line := entity.OrderLine{
				MenuItemID: l.ID,
				Name:       l.Name,
				Quantity:   l.Quantity,
				UnitPrice:  l.Price,
			}
			if in != nil {
				line.Note = strings.TrimSpace(in.Notes[l.ID])
			}
			o.Lines = append(o.Lines, line)
			if prep[l.ID] > o.PrepTimeMinutes {
				o.PrepTimeMinutes = prep[l.ID]
			}
		}
		b := money.Settle(state.TotalPrice(), settings.TaxRate, settings.ServiceChargeRate)
		o.Subtotal, o.TaxAmount, o.ServiceCharge, o.Total = b.Subtotal, b.TaxAmount, b.ServiceCharge, b.Total
		o.TaxRate, o.ServiceChargeRate = settings.TaxRate, settings.ServiceChargeRate

		if err := orders.CreateOrder(ctx, o); err != nil {
			return err
		}

		state.Clear()
		if err := carts.Replace(ctx, sessionID, state); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info(ctx, "order_place", "order placed",
		slog.String("order_number", order.OrderNumber),
		slog.String("table_number", order.TableNumber),
		slog.Int64("total", order.Total))
	s.Notify.Publish(Event{
		Type: EventOrderCreated, OrderID: order.ID, OrderNumber: order.OrderNumber,
		TableNumber: order.TableNumber, Status: string(order.Status), At: s.Now(),
	})
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("order", id)
	}
	return o, err
}

// ListByStatus filters the collection; no statuses lists everything.
func (s *OrderService) ListByStatus(ctx context.Context, statuses ...entity.OrderStatus) ([]entity.Order, error) {
	for _, st := range statuses {
		if !st.Valid() {
			return nil, &ValidationError{Field: "status", Message: "unknown order status " + string(st)}
		}
	}
	return s.Repo.ListByStatus(ctx, statuses...)
}

// ListForSession returns the orders of the table bound to the session, newest first.
func (s *OrderService) ListForSession(ctx context.Context, sessionID string) ([]entity.Order, error) {
	row, err := s.CartRepo.Get(ctx, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("session", sessionID)
	}
	if err != nil {
		return nil, err
	}
	if row.TableNumber == "" {
		return []entity.Order{}, nil
	}
	return s.Repo.ListForTable(ctx, row.TableNumber)
}

type KitchenTicket struct {
	entity.Order
	WaitingMinutes int    `json:"waitingMinutes"`
	Elapsed        string `json:"elapsed"`
}

type KitchenBoard struct {
	Pending   []KitchenTicket `json:"pending"`
	Preparing []KitchenTicket `json:"preparing"`
	Ready     []KitchenTicket `json:"ready"`
}

// KitchenBoard groups open orders by stage. Elapsed time is computed now.
func (s *OrderService) KitchenBoard(ctx context.Context) (*KitchenBoard, error) {
	orders, err := s.Repo.ListByStatus(ctx, entity.OrderPending, entity.OrderPreparing, entity.OrderReady)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	board := &KitchenBoard{Pending: []KitchenTicket{}, Preparing: []KitchenTicket{}, Ready: []KitchenTicket{}}
	for _, o := range orders {
		t := KitchenTicket{
			Order:          o,
			WaitingMinutes: utils.MinutesSince(o.CreatedAt, now),
			Elapsed:        utils.TimeAgo(o.CreatedAt, now),
		}
		switch o.Status {
		case entity.OrderPending:
			board.Pending = append(board.Pending, t)
		case entity.OrderPreparing:
			board.Preparing = append(board.Preparing, t)
		case entity.OrderReady:
			board.Ready = append(board.Ready, t)
		}
	}
	return board, nil
}
