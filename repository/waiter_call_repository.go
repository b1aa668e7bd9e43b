package repository

import (
	"context"

	"gorm.io/gorm"

	"tableorder/entity"
)

type WaiterCallRepository struct {
	DB *gorm.DB
}

func NewWaiterCallRepository(db *gorm.DB) *WaiterCallRepository {
	return &WaiterCallRepository{DB: db}
}

func (r *WaiterCallRepository) WithTx(tx *gorm.DB) *WaiterCallRepository {
	return &WaiterCallRepository{DB: tx}
}

func (r *WaiterCallRepository) Create(ctx context.Context, c *entity.WaiterCall) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *WaiterCallRepository) FindByID(ctx context.Context, id uint) (*entity.WaiterCall, error) {
	var c entity.WaiterCall
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns calls oldest first; nil status means all.
func (r *WaiterCallRepository) List(ctx context.Context, status *entity.CallStatus) ([]entity.WaiterCall, error) {
	q := r.DB.WithContext(ctx).Model(&entity.WaiterCall{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var out []entity.WaiterCall
	err := q.Order("id ASC").Find(&out).Error
	return out, err
}

func (r *WaiterCallRepository) CountByStatus(ctx context.Context, status entity.CallStatus) (int64, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.WaiterCall{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}

func (r *WaiterCallRepository) UpdateStatusGuard(ctx context.Context, id uint, from, to entity.CallStatus) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.WaiterCall{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
