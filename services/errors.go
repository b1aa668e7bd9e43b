package services

import (
	"errors"
	"fmt"
)

// ValidationError is a recoverable input problem reported to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidTransitionError is returned when the current state is not the
// expected source state of a transition.
type InvalidTransitionError struct {
	Entity string
	ID     uint
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s %d cannot move from %s to %s", e.Entity, e.ID, e.From, e.To)
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func notFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: fmt.Sprint(id)}
}

var (
	ErrTableBusy = errors.New("table already has an open order")

	ErrMissingPaymentMethod = &ValidationError{Field: "paymentMethod", Message: "payment method is required"}
)
