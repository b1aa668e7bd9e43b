package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tableorder/entity"
	"tableorder/pkg/cart"
	"tableorder/pkg/logger"
	"tableorder/pkg/money"
	"tableorder/repository"
	"tableorder/utils"
)

var errQuantityLimit = &ValidationError{Field: "quantity", Message: fmt.Sprintf("must be at most %d", cart.MaxQuantity)}

type CartService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	MenuRepo  *repository.MenuRepository
	TableRepo *repository.TableRepository
	Settings  *SettingsService
	Log       *logger.Logger

	Secret string
	TTL    time.Duration
}

func NewCartService(
	db *gorm.DB,
	cr *repository.CartRepository,
	mr *repository.MenuRepository,
	tr *repository.TableRepository,
	settings *SettingsService,
	log *logger.Logger,
	secret string,
	ttl time.Duration,
) *CartService {
	return &CartService{
		DB: db, CartRepo: cr, MenuRepo: mr, TableRepo: tr,
		Settings: settings, Log: log, Secret: secret, TTL: ttl,
	}
}

// CartView is the cart plus its pre-order preview. The preview carries
// tax only; service charge is added when the order is placed.
type CartView struct {
	SessionID   string          `json:"sessionId"`
	TableNumber string          `json:"tableNumber"`
	Items       []cart.Line     `json:"items"`
	TotalItems  int             `json:"totalItems"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Preview     money.Breakdown `json:"preview"`
	Display     PreviewDisplay  `json:"display"`
}

type PreviewDisplay struct {
	Subtotal  string `json:"subtotal"`
	TaxAmount string `json:"taxAmount"`
	Total     string `json:"total"`
}

type SessionOut struct {
	Token string    `json:"token"`
	Cart  *CartView `json:"cart"`
}

func (s *CartService) view(sessionID string, c *cart.Cart) *CartView {
	settings := s.Settings.Get()
	b := money.Preview(c.TotalPrice(), settings.TaxRate)
	items := c.Lines
	if items == nil {
		items = []cart.Line{}
	}
	return &CartView{
		SessionID:   sessionID,
		TableNumber: c.TableNumber,
		Items:       items,
		TotalItems:  c.TotalItems(),
		TaxRate:     settings.TaxRate,
		Preview:     b,
		Display: PreviewDisplay{
			Subtotal:  money.Display(settings.CurrencySymbol, b.Subtotal),
			TaxAmount: money.Display(settings.CurrencySymbol, b.TaxAmount),
			Total:     money.Display(settings.CurrencySymbol, b.Total),
		},
	}
}

func (s *CartService) requireTable(ctx context.Context, table string) (string, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return "", &ValidationError{Field: "tableNumber", Message: "is required"}
	}
	t, err := s.TableRepo.FindByNumber(ctx, table)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", notFound("table", table)
	}
	if err != nil {
		return "", err
	}
	return t.TableNumber, nil
}

// OpenSession starts a customer session from the entry link. An empty table
// leaves the session unbound until SetTable is called.
func (s *CartService) OpenSession(ctx context.Context, table string) (*SessionOut, error) {
	row := &entity.Cart{ID: uuid.NewString()}
	if strings.TrimSpace(table) != "" {
		number, err := s.requireTable(ctx, table)
		if err != nil {
			return nil, err
		}
		row.TableNumber = number
	}
	if err := s.CartRepo.Create(ctx, row); err != nil {
		return nil, err
	}
	token, err := utils.GenerateSessionToken(row.ID, s.Secret, s.TTL)
	if err != nil {
		return nil, err
	}
	s.Log.Info(ctx, "session_open", "customer session opened",
		slog.String("session_id", row.ID), slog.String("table_number", row.TableNumber))
	return &SessionOut{Token: token, Cart: s.view(row.ID, row.Reducer())}, nil
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*CartView, error) {
	row, err := s.CartRepo.Get(ctx, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("session", sessionID)
	}
	if err != nil {
		return nil, err
	}
	return s.view(sessionID, row.Reducer()), nil
}

// mutate loads the cart, applies fn and stores the result in one transaction.
// An error from fn leaves the stored cart untouched.
func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(c *cart.Cart) error) (*CartView, error) {
	var out *CartView
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.CartRepo.WithTx(tx)
		row, err := repo.Get(ctx, sessionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("session", sessionID)
		}
		if err != nil {
			return err
		}
		state := row.Reducer()
		if err := fn(state); err != nil {
			return err
		}
		if err := repo.Replace(ctx, sessionID, state); err != nil {
			return err
		}
		out = s.view(sessionID, state)
		return nil
	})
	return out, err
}

// Add puts one unit of a catalog item in the cart.
func (s *CartService) Add(ctx context.Context, sessionID string, menuItemID uint) (*CartView, error) {
	m, err := s.MenuRepo.FindByID(ctx, menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("menu_item", menuItemID)
	}
	if err != nil {
		return nil, err
	}
	if !m.IsAvailable {
		return nil, &ValidationError{Field: "menuItemId", Message: "item is not available"}
	}
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		if c.QuantityOf(m.ID) >= cart.MaxQuantity {
			return errQuantityLimit
		}
		c.AddItem(m.Snapshot())
		return nil
	})
}

func (s *CartService) Remove(ctx context.Context, sessionID string, menuItemID uint) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.RemoveItem(menuItemID)
		return nil
	})
}

// UpdateQuantity sets an absolute quantity, at most cart.MaxQuantity.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, menuItemID uint, qty int) (*CartView, error) {
	if qty > cart.MaxQuantity {
		return nil, errQuantityLimit
	}
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.UpdateQuantity(menuItemID, qty)
		return nil
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

func (s *CartService) SetTable(ctx context.Context, sessionID, table string) (*CartView, error) {
	number, err := s.requireTable(ctx, table)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.SetTableNumber(number)
		return nil
	})
}

// TableOf returns the table bound to a session, possibly empty.
func (s *CartService) TableOf(ctx context.Context, sessionID string) (string, error) {
	row, err := s.CartRepo.Get(ctx, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", notFound("session", sessionID)
	}
	if err != nil {
		return "", err
	}
	return row.TableNumber, nil
}
