package services

import (
	"context"

	"github.com/shopspring/decimal"

	"tableorder/entity"
	"tableorder/pkg/money"
)

// BillingService renders stored order amounts for the billing counter.
type BillingService struct {
	Orders   *OrderService
	Settings *SettingsService
}

func NewBillingService(orders *OrderService, settings *SettingsService) *BillingService {
	return &BillingService{Orders: orders, Settings: settings}
}

type InvoiceLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Total     string `json:"total"`
	Note      string `json:"note,omitempty"`
}

type Invoice struct {
	RestaurantName    string               `json:"restaurantName"`
	OrderID           uint                 `json:"orderId"`
	OrderNumber       string               `json:"orderNumber"`
	TableNumber       string               `json:"tableNumber"`
	Status            entity.OrderStatus   `json:"status"`
	PaymentMethod     entity.PaymentMethod `json:"paymentMethod,omitempty"`
	TaxRate           decimal.Decimal      `json:"taxRate"`
	ServiceChargeRate decimal.Decimal      `json:"serviceChargeRate"`
	Amounts           money.Breakdown      `json:"amounts"`
	Lines             []InvoiceLine        `json:"lines"`
	Subtotal          string               `json:"subtotal"`
	TaxAmount         string               `json:"taxAmount"`
	ServiceCharge     string               `json:"serviceCharge"`
	Total             string               `json:"total"`
}

// Invoice formats the amounts and rates stored on the order; they are not
// recomputed from the current settings.
func (s *BillingService) Invoice(ctx context.Context, orderID uint) (*Invoice, error) {
	o, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	st := s.Settings.Get()
	sym := st.CurrencySymbol

	inv := &Invoice{
		RestaurantName:    st.RestaurantName,
		OrderID:           o.ID,
		OrderNumber:       o.OrderNumber,
		TableNumber:       o.TableNumber,
		Status:            o.Status,
		PaymentMethod:     o.PaymentMethod,
		TaxRate:           o.TaxRate,
		ServiceChargeRate: o.ServiceChargeRate,
		Amounts: money.Breakdown{
			Subtotal: o.Subtotal, TaxAmount: o.TaxAmount, ServiceCharge: o.ServiceCharge, Total: o.Total,
		},
		Lines:         make([]InvoiceLine, 0, len(o.Lines)),
		Subtotal:      money.Display(sym, o.Subtotal),
		TaxAmount:     money.Display(sym, o.TaxAmount),
		ServiceCharge: money.Display(sym, o.ServiceCharge),
		Total:         money.Display(sym, o.Total),
	}
	for _, l := range o.Lines {
		inv.Lines = append(inv.Lines, InvoiceLine{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: money.Display(sym, l.UnitPrice),
			Total:     money.Display(sym, l.Total()),
			Note:      l.Note,
		})
	}
	return inv, nil
}

// Queue lists orders for the billing counter: ready by default, or completed.
func (s *BillingService) Queue(ctx context.Context, status string) ([]entity.Order, error) {
	if status == "" {
		status = string(entity.OrderReady)
	}
	st := entity.OrderStatus(status)
	if st != entity.OrderReady && st != entity.OrderCompleted {
		return nil, &ValidationError{Field: "status", Message: "must be ready or completed"}
	}
	return s.Orders.ListByStatus(ctx, st)
}
