package entity

import (
	"gorm.io/gorm"
)

type TableStatus string

const (
	TableIdle     TableStatus = "idle"
	TableOccupied TableStatus = "occupied"
	TableOrdering TableStatus = "ordering"
	TableWaiting  TableStatus = "waiting"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableIdle, TableOccupied, TableOrdering, TableWaiting:
		return true
	}
	return false
}

type Table struct {
	gorm.Model
	TableNumber string      `gorm:"size:20;uniqueIndex;not null" json:"tableNumber"`
	Capacity    int         `json:"capacity"`
	Status      TableStatus `gorm:"size:20" json:"status"`
}

// EffectiveStatus is the status shown for a table: the status of the first
// non-completed order bound to its number, else the table's own status.
func EffectiveStatus(t Table, orders []Order) string {
	for _, o := range orders {
		if o.TableNumber == t.TableNumber && o.Status.IsOpen() {
			return string(o.Status)
		}
	}
	return string(t.Status)
}
