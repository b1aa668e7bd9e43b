package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"tableorder/entity"
	"tableorder/pkg/logger"
	"tableorder/repository"
)

const defaultCallReason = "Need assistance"

type WaiterCallService struct {
	DB       *gorm.DB
	Repo     *repository.WaiterCallRepository
	CartRepo *repository.CartRepository
	Log      *logger.Logger
	Notify   Notifier
}

func NewWaiterCallService(db *gorm.DB, repo *repository.WaiterCallRepository, cartRepo *repository.CartRepository, log *logger.Logger, notify Notifier) *WaiterCallService {
	return &WaiterCallService{DB: db, Repo: repo, CartRepo: cartRepo, Log: log, Notify: notifierOrNop(notify)}
}

// Create raises a call from the table bound to the customer session.
func (s *WaiterCallService) Create(ctx context.Context, sessionID, reason string) (*entity.WaiterCall, error) {
	row, err := s.CartRepo.Get(ctx, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("session", sessionID)
	}
	if err != nil {
		return nil, err
	}
	if row.TableNumber == "" {
		return nil, &ValidationError{Field: "tableNumber", Message: "no table selected"}
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultCallReason
	}

	c := &entity.WaiterCall{TableNumber: row.TableNumber, Reason: reason, Status: entity.CallPending}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.Log.Info(ctx, "call_create", "waiter called",
		slog.Uint64("call_id", uint64(c.ID)), slog.String("table_number", c.TableNumber))
	s.Notify.Publish(Event{Type: EventCallCreated, CallID: c.ID, TableNumber: c.TableNumber, Status: string(c.Status), At: time.Now()})
	return c, nil
}

// List filters by status; an empty status lists every call.
func (s *WaiterCallService) List(ctx context.Context, status string) ([]entity.WaiterCall, error) {
	if status == "" {
		return s.Repo.List(ctx, nil)
	}
	st := entity.CallStatus(status)
	if !st.Valid() {
		return nil, &ValidationError{Field: "status", Message: "must be one of pending, acknowledged, resolved"}
	}
	return s.Repo.List(ctx, &st)
}

func (s *WaiterCallService) PendingCount(ctx context.Context) (int64, error) {
	return s.Repo.CountByStatus(ctx, entity.CallPending)
}

func (s *WaiterCallService) Acknowledge(ctx context.Context, id uint) (*entity.WaiterCall, error) {
	return s.transition(ctx, id, entity.CallPending)
}

// Resolve is only reachable from acknowledged.
func (s *WaiterCallService) Resolve(ctx context.Context, id uint) (*entity.WaiterCall, error) {
	return s.transition(ctx, id, entity.CallAcknowledged)
}

// transition moves a call from one status to the next one in the call flow.
func (s *WaiterCallService) transition(ctx context.Context, id uint, from entity.CallStatus) (*entity.WaiterCall, error) {
	to, ok := from.Next()
	if !ok {
		return nil, fmt.Errorf("call status %q has no successor", from)
	}
	var out *entity.WaiterCall
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		affected, err := repo.UpdateStatusGuard(ctx, id, from, to)
		if err != nil {
			return err
		}
		c, err := repo.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("waiter_call", id)
		}
		if err != nil {
			return err
		}
		if affected == 0 {
			return &InvalidTransitionError{Entity: "waiter_call", ID: id, From: string(c.Status), To: string(to)}
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info(ctx, "call_transition", "waiter call status changed",
		slog.Uint64("call_id", uint64(id)), slog.String("from", string(from)), slog.String("to", string(to)))
	s.Notify.Publish(Event{Type: EventCallStatusChanged, CallID: out.ID, TableNumber: out.TableNumber, Status: string(out.Status), At: time.Now()})
	return out, nil
}
