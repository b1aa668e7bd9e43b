package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tableorder/entity"
	"tableorder/pkg/logger"
	"tableorder/pkg/money"
	"tableorder/repository"
)

const (
	defaultCategory        = "Starters"
	defaultPrepTimeMinutes = 15
	defaultImageURL        = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400"
)

var maxPrice = decimal.NewFromInt(10_000_000)

type MenuService struct {
	Repo   *repository.MenuRepository
	Log    *logger.Logger
	Notify Notifier
}

func NewMenuService(repo *repository.MenuRepository, log *logger.Logger, notify Notifier) *MenuService {
	return &MenuService{Repo: repo, Log: log, Notify: notifierOrNop(notify)}
}

// ListForCustomer shows only available items.
func (s *MenuService) ListForCustomer(ctx context.Context, category, search string) ([]entity.MenuItem, error) {
	return s.Repo.List(ctx, repository.MenuFilter{AvailableOnly: true, Category: category, Search: search})
}

func (s *MenuService) ListAll(ctx context.Context) ([]entity.MenuItem, error) {
	return s.Repo.List(ctx, repository.MenuFilter{})
}

// Categories is the customer category picker: "All" followed by every
// category that still has something orderable.
func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.Repo.Categories(ctx, true)
	if err != nil {
		return nil, err
	}
	return append([]string{"All"}, cats...), nil
}

func (s *MenuService) Get(ctx context.Context, id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("menu_item", id)
	}
	return m, err
}

type CreateMenuItemIn struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"` // major units, e.g. 249.50
	Category        string          `json:"category"`
	ImageURL        string          `json:"imageUrl"`
	IsVegetarian    bool            `json:"isVegetarian"`
	PrepTimeMinutes int             `json:"prepTimeMinutes"`
}

func (s *MenuService) Create(ctx context.Context, in *CreateMenuItemIn) (*entity.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	if in.Price.IsZero() {
		return nil, &ValidationError{Field: "price", Message: "is required"}
	}
	if in.Price.GreaterThan(maxPrice) {
		return nil, &ValidationError{Field: "price", Message: "must be at most " + maxPrice.String()}
	}
	price := money.FromMajor(in.Price)
	if price <= 0 {
		return nil, &ValidationError{Field: "price", Message: "must be positive"}
	}

	m := &entity.MenuItem{
		Name:            name,
		Description:     strings.TrimSpace(in.Description),
		Price:           price,
		Category:        strings.TrimSpace(in.Category),
		ImageURL:        strings.TrimSpace(in.ImageURL),
		IsAvailable:     true,
		IsVegetarian:    in.IsVegetarian,
		PrepTimeMinutes: in.PrepTimeMinutes,
	}
	if m.Category == "" {
		m.Category = defaultCategory
	}
	if m.ImageURL == "" {
		m.ImageURL = defaultImageURL
	}
	if m.PrepTimeMinutes <= 0 {
		m.PrepTimeMinutes = defaultPrepTimeMinutes
	}

	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.Log.Info(ctx, "menu_create", "menu item added", slog.Uint64("menu_item_id", uint64(m.ID)), slog.String("name", m.Name))
	s.Notify.Publish(Event{Type: EventMenuChanged, MenuItemID: m.ID, At: time.Now()})
	return m, nil
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound("menu_item", id)
	}
	s.Log.Info(ctx, "menu_delete", "menu item removed", slog.Uint64("menu_item_id", uint64(id)))
	s.Notify.Publish(Event{Type: EventMenuChanged, MenuItemID: id, At: time.Now()})
	return nil
}

// ToggleAvailability flips the item's availability and returns the new state.
func (s *MenuService) ToggleAvailability(ctx context.Context, id uint) (*entity.MenuItem, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	m.IsAvailable = !m.IsAvailable
	if _, err := s.Repo.SetAvailability(ctx, id, m.IsAvailable); err != nil {
		return nil, err
	}
	s.Log.Info(ctx, "menu_availability", "menu availability changed",
		slog.Uint64("menu_item_id", uint64(id)), slog.Bool("available", m.IsAvailable))
	s.Notify.Publish(Event{Type: EventMenuChanged, MenuItemID: id, At: time.Now()})
	return m, nil
}
