package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tableorder/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// WithTx binds the repository to a transaction.
func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: tx}
}

func linesInOrder(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }

// ---------------- Orders ----------------

// CreateOrder inserts the order with its lines and assigns ORD%03d from the id.
func (r *OrderRepository) CreateOrder(ctx context.Context, o *entity.Order) error {
	db := r.DB.WithContext(ctx)
	if err := db.Create(o).Error; err != nil {
		return err
	}
	if o.OrderNumber != "" {
		return nil
	}
	o.OrderNumber = fmt.Sprintf("ORD%03d", o.ID)
	return db.Model(o).Update("order_number", o.OrderNumber).Error
}

func (r *OrderRepository) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).Preload("Lines", linesInOrder).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByStatus returns orders in collection order; no statuses means all.
func (r *OrderRepository) ListByStatus(ctx context.Context, statuses ...entity.OrderStatus) ([]entity.Order, error) {
	q := r.DB.WithContext(ctx).Preload("Lines", linesInOrder)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var out []entity.Order
	err := q.Order("id ASC").Find(&out).Error
	return out, err
}

// ListOpen returns every non-completed order in collection order.
func (r *OrderRepository) ListOpen(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.WithContext(ctx).
		Where("status <> ?", entity.OrderCompleted).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// ListForTable returns a table's orders, newest first.
func (r *OrderRepository) ListForTable(ctx context.Context, table string) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.WithContext(ctx).Preload("Lines", linesInOrder).
		Where("table_number = ?", table).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) HasOpenOrder(ctx context.Context, table string) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("table_number = ? AND status <> ?", table, entity.OrderCompleted).
		Count(&cnt).Error
	return cnt > 0, err
}

// UpdateStatusGuard moves an order from -> to and reports rows affected;
// zero means the order is missing or not in the from state.
func (r *OrderRepository) UpdateStatusGuard(ctx context.Context, id uint, from, to entity.OrderStatus) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// SettleGuard is UpdateStatusGuard that also records the payment method.
func (r *OrderRepository) SettleGuard(ctx context.Context, id uint, from, to entity.OrderStatus, method entity.PaymentMethod) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":         to,
			"payment_method": method,
		})
	return res.RowsAffected, res.Error
}
