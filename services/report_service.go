package services

import (
	"context"

	"tableorder/entity"
	"tableorder/pkg/money"
	"tableorder/repository"
)

// ReportService builds the admin dashboard figures.
type ReportService struct {
	Orders   *repository.OrderRepository
	Payments *repository.PaymentRepository
	Menu     *repository.MenuRepository
	Tables   *TableService
	Calls    *WaiterCallService
	Settings *SettingsService
}

func NewReportService(
	orders *repository.OrderRepository,
	payments *repository.PaymentRepository,
	menu *repository.MenuRepository,
	tables *TableService,
	calls *WaiterCallService,
	settings *SettingsService,
) *ReportService {
	return &ReportService{Orders: orders, Payments: payments, Menu: menu, Tables: tables, Calls: calls, Settings: settings}
}

type Dashboard struct {
	CompletedOrders int                        `json:"completedOrders"`
	OpenOrders      int                        `json:"openOrders"`
	Revenue         int64                      `json:"revenue"`
	RevenueDisplay  string                     `json:"revenueDisplay"`
	ByMethod        []repository.MethodTotal   `json:"byMethod"`
	ActiveTables    int                        `json:"activeTables"`
	PendingCalls    int64                      `json:"pendingCalls"`
	MenuItems       int64                      `json:"menuItems"`
	OrdersByStatus  map[entity.OrderStatus]int `json:"ordersByStatus"`
}

// Dashboard sums completed order totals as revenue.
func (s *ReportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	orders, err := s.Orders.ListByStatus(ctx)
	if err != nil {
		return nil, err
	}
	d := &Dashboard{OrdersByStatus: map[entity.OrderStatus]int{}}
	for _, o := range orders {
		d.OrdersByStatus[o.Status]++
		if o.Status == entity.OrderCompleted {
			d.CompletedOrders++
			d.Revenue += o.Total
		} else {
			d.OpenOrders++
		}
	}
	d.RevenueDisplay = money.Display(s.Settings.Get().CurrencySymbol, d.Revenue)

	if d.ByMethod, err = s.Payments.TotalsByMethod(ctx); err != nil {
		return nil, err
	}
	if d.ByMethod == nil {
		d.ByMethod = []repository.MethodTotal{}
	}
	if d.ActiveTables, err = s.Tables.ActiveCount(ctx); err != nil {
		return nil, err
	}
	if d.PendingCalls, err = s.Calls.PendingCount(ctx); err != nil {
		return nil, err
	}
	if d.MenuItems, err = s.Menu.Count(ctx); err != nil {
		return nil, err
	}
	return d, nil
}
