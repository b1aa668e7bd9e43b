package services

import "time"

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderSettled       = "order.settled"
	EventCallCreated        = "call.created"
	EventCallStatusChanged  = "call.status_changed"
	EventMenuChanged        = "menu.changed"
	EventTableChanged       = "table.changed"
	EventSettingsChanged    = "settings.changed"
)

// Event describes one state change so other role views can refresh.
type Event struct {
	Type        string    `json:"type"`
	OrderID     uint      `json:"orderId,omitempty"`
	OrderNumber string    `json:"orderNumber,omitempty"`
	CallID      uint      `json:"callId,omitempty"`
	MenuItemID  uint      `json:"menuItemId,omitempty"`
	TableNumber string    `json:"tableNumber,omitempty"`
	Status      string    `json:"status,omitempty"`
	At          time.Time `json:"at"`
}

// Notifier fans events out to subscribers. Publish must not block.
type Notifier interface {
	Publish(ev Event)
}

type nopNotifier struct{}

func (nopNotifier) Publish(Event) {}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
