package routes

import (
	"gorm.io/gorm"

	"tableorder/configs"
	"tableorder/pkg/logger"
	"tableorder/repository"
	"tableorder/services"
)

// Deps is the wired service layer shared by every route group.
type Deps struct {
	Settings *services.SettingsService
	Menu     *services.MenuService
	Carts    *services.CartService
	Orders   *services.OrderService
	Tables   *services.TableService
	Calls    *services.WaiterCallService
	Billing  *services.BillingService
	Reports  *services.ReportService

	SessionSecret string
}

func NewDeps(db *gorm.DB, cfg *configs.Config, log *logger.Logger, notify services.Notifier) *Deps {
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	callRepo := repository.NewWaiterCallRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	d := &Deps{SessionSecret: cfg.SessionSecret}
	d.Settings = services.NewSettingsService(cfg.DefaultSettings(), notify)
	d.Menu = services.NewMenuService(menuRepo, log, notify)
	d.Carts = services.NewCartService(db, cartRepo, menuRepo, tableRepo, d.Settings, log, cfg.SessionSecret, cfg.SessionTTL)
	d.Orders = services.NewOrderService(db, orderRepo, cartRepo, menuRepo, paymentRepo, d.Settings, log, notify)
	d.Tables = services.NewTableService(tableRepo, orderRepo, log, notify, cfg.PublicBaseURL)
	d.Calls = services.NewWaiterCallService(db, callRepo, cartRepo, log, notify)
	d.Billing = services.NewBillingService(d.Orders, d.Settings)
	d.Reports = services.NewReportService(orderRepo, paymentRepo, menuRepo, d.Tables, d.Calls, d.Settings)
	return d
}
