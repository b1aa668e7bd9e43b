package services

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"gorm.io/gorm"

	"tableorder/entity"
	"tableorder/pkg/logger"
	"tableorder/repository"
)

type TableService struct {
	Repo    *repository.TableRepository
	Orders  *repository.OrderRepository
	Log     *logger.Logger
	Notify  Notifier
	BaseURL string
}

func NewTableService(repo *repository.TableRepository, orders *repository.OrderRepository, log *logger.Logger, notify Notifier, baseURL string) *TableService {
	return &TableService{Repo: repo, Orders: orders, Log: log, Notify: notifierOrNop(notify), BaseURL: baseURL}
}

type TableView struct {
	entity.Table
	EffectiveStatus string `json:"effectiveStatus"`
}

// List resolves each table's effective status against the open orders.
func (s *TableService) List(ctx context.Context, search string) ([]TableView, error) {
	tables, err := s.Repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	open, err := s.Orders.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TableView, 0, len(tables))
	for _, t := range tables {
		out = append(out, TableView{Table: t, EffectiveStatus: entity.EffectiveStatus(t, open)})
	}
	return out, nil
}

// ActiveCount counts tables whose effective status is not idle.
func (s *TableService) ActiveCount(ctx context.Context) (int, error) {
	views, err := s.List(ctx, "")
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range views {
		if v.EffectiveStatus != string(entity.TableIdle) {
			n++
		}
	}
	return n, nil
}

func (s *TableService) get(ctx context.Context, id uint) (*entity.Table, error) {
	t, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("table", id)
	}
	return t, err
}

// SetBaseStatus changes the stored status; open orders still override it.
func (s *TableService) SetBaseStatus(ctx context.Context, id uint, status string) (*entity.Table, error) {
	st := entity.TableStatus(status)
	if !st.Valid() {
		return nil, &ValidationError{Field: "status", Message: "must be one of idle, occupied, ordering, waiting"}
	}
	t, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Repo.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	t.Status = st
	s.Log.Info(ctx, "table_status", "table status changed",
		slog.String("table_number", t.TableNumber), slog.String("status", status))
	s.Notify.Publish(Event{Type: EventTableChanged, TableNumber: t.TableNumber, Status: status, At: time.Now()})
	return t, nil
}

type EntryLink struct {
	TableNumber string `json:"tableNumber"`
	URL         string `json:"url"`
}

// EntryLink is the URL a table's QR code encodes.
func (s *TableService) EntryLink(ctx context.Context, id uint) (*EntryLink, error) {
	t, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("table", t.TableNumber)
	return &EntryLink{
		TableNumber: t.TableNumber,
		URL:         s.BaseURL + "/menu?" + q.Encode(),
	}, nil
}
