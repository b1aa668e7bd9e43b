package repository

import (
	"context"

	"gorm.io/gorm"

	"tableorder/entity"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) WithTx(tx *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: tx}
}

func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type MethodTotal struct {
	Method entity.PaymentMethod `json:"method"`
	Count  int64                `json:"count"`
	Amount int64                `json:"amount"`
}

// TotalsByMethod groups recorded payments by method.
func (r *PaymentRepository) TotalsByMethod(ctx context.Context) ([]MethodTotal, error) {
	var out []MethodTotal
	err := r.DB.WithContext(ctx).Model(&entity.Payment{}).
		Select("method, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Group("method").
		Order("method ASC").
		Scan(&out).Error
	return out, err
}
