package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"tableorder/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) WithTx(tx *gorm.DB) *TableRepository {
	return &TableRepository{DB: tx}
}

func (r *TableRepository) List(ctx context.Context, search string) ([]entity.Table, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Table{})
	if s := strings.TrimSpace(search); s != "" {
		q = q.Where("LOWER(table_number) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	var out []entity.Table
	err := q.Order("id ASC").Find(&out).Error
	return out, err
}

func (r *TableRepository) FindByID(ctx context.Context, id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) FindByNumber(ctx context.Context, number string) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.WithContext(ctx).Where("table_number = ?", number).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) UpdateStatus(ctx context.Context, id uint, status entity.TableStatus) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Table{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}
