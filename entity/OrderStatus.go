package entity

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
)

// orderFlow is the only path an order may take.
var orderFlow = []OrderStatus{OrderPending, OrderPreparing, OrderReady, OrderCompleted}

func (s OrderStatus) Valid() bool {
	for _, st := range orderFlow {
		if st == s {
			return true
		}
	}
	return false
}

// Next returns the status that follows s, false for completed or unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, st := range orderFlow {
		if st == s && i+1 < len(orderFlow) {
			return orderFlow[i+1], true
		}
	}
	return "", false
}

func (s OrderStatus) IsOpen() bool { return s != OrderCompleted }
