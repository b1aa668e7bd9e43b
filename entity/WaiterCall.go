package entity

import (
	"gorm.io/gorm"
)

type CallStatus string

const (
	CallPending      CallStatus = "pending"
	CallAcknowledged CallStatus = "acknowledged"
	CallResolved     CallStatus = "resolved"
)

func (s CallStatus) Valid() bool {
	switch s {
	case CallPending, CallAcknowledged, CallResolved:
		return true
	}
	return false
}

// callFlow is the only path a call may take; resolving needs an acknowledgement first.
var callFlow = []CallStatus{CallPending, CallAcknowledged, CallResolved}

// Next returns the status that follows s, false for resolved or unknown.
func (s CallStatus) Next() (CallStatus, bool) {
	for i, st := range callFlow {
		if st == s && i+1 < len(callFlow) {
			return callFlow[i+1], true
		}
	}
	return "", false
}

type WaiterCall struct {
	gorm.Model
	TableNumber string     `gorm:"size:20;index" json:"tableNumber"`
	Reason      string     `json:"reason"`
	Status      CallStatus `gorm:"size:20;index" json:"status"`
}
