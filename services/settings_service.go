package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"tableorder/entity"
)

var hundredPercent = decimal.NewFromInt(100)

// SettingsService holds the editable settings for the lifetime of the process.
type SettingsService struct {
	mu      sync.RWMutex
	current entity.Settings
	notify  Notifier
}

func NewSettingsService(defaults entity.Settings, notify Notifier) *SettingsService {
	return &SettingsService{current: defaults, notify: notifierOrNop(notify)}
}

func (s *SettingsService) Get() entity.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *SettingsService) Update(_ context.Context, in entity.Settings) (entity.Settings, error) {
	in.RestaurantName = strings.TrimSpace(in.RestaurantName)
	in.CurrencySymbol = strings.TrimSpace(in.CurrencySymbol)
	if in.RestaurantName == "" {
		return entity.Settings{}, &ValidationError{Field: "restaurantName", Message: "is required"}
	}
	if in.CurrencySymbol == "" {
		return entity.Settings{}, &ValidationError{Field: "currencySymbol", Message: "is required"}
	}
	if !validRate(in.TaxRate) {
		return entity.Settings{}, &ValidationError{Field: "taxRate", Message: "must be between 0 and 100"}
	}
	if !validRate(in.ServiceChargeRate) {
		return entity.Settings{}, &ValidationError{Field: "serviceChargeRate", Message: "must be between 0 and 100"}
	}

	s.mu.Lock()
	s.current = in
	s.mu.Unlock()

	s.notify.Publish(Event{Type: EventSettingsChanged, At: time.Now()})
	return in, nil
}

func validRate(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(hundredPercent)
}
