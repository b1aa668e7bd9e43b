package services

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tableorder/configs"
	"tableorder/entity"
	"tableorder/pkg/logger"
	"tableorder/repository"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Publish(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

type env struct {
	settings *SettingsService
	menu     *MenuService
	carts    *CartService
	orders   *OrderService
	tables   *TableService
	calls    *WaiterCallService
	billing  *BillingService
	reports  *ReportService
	events   *recorder
}

// newEnv seeds the embedded fixture with tax 5% and service charge 5%.
func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := configs.OpenDatabase(configs.MemoryDSN(t.Name()))
	if err != nil {
		t.Fatal(err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatal(err)
	}
	defaults := entity.Settings{
		RestaurantName:    "QR Restaurant",
		CurrencySymbol:    "₹",
		TaxRate:           decimal.NewFromInt(5),
		ServiceChargeRate: decimal.NewFromInt(5),
	}
	data, err := configs.SeedData("")
	if err != nil {
		t.Fatal(err)
	}
	if err := configs.Seed(db, data, defaults, time.Now()); err != nil {
		t.Fatal(err)
	}

	log := logger.Discard()
	rec := &recorder{}

	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	callRepo := repository.NewWaiterCallRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	settings := NewSettingsService(defaults, rec)
	e := &env{settings: settings, events: rec}
	e.menu = NewMenuService(menuRepo, log, rec)
	e.carts = NewCartService(db, cartRepo, menuRepo, tableRepo, settings, log, "test-secret", time.Hour)
	e.orders = NewOrderService(db, orderRepo, cartRepo, menuRepo, paymentRepo, settings, log, rec)
	e.tables = NewTableService(tableRepo, orderRepo, log, rec, "http://localhost:5173")
	e.calls = NewWaiterCallService(db, callRepo, cartRepo, log, rec)
	e.billing = NewBillingService(e.orders, settings)
	e.reports = NewReportService(orderRepo, paymentRepo, menuRepo, e.tables, e.calls, settings)
	return e
}

// seeded menu ids follow fixture order
const (
	classicBurgerID  uint = 1
	veggieBurgerID   uint = 2
	chickenBiryaniID uint = 5
	frenchFriesID    uint = 12
)
