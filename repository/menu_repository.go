package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"tableorder/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) WithTx(tx *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: tx}
}

type MenuFilter struct {
	AvailableOnly bool
	Category      string // empty or "All" means every category
	Search        string // case-insensitive substring of the name
}

// catalog order is insertion order
func (r *MenuRepository) List(ctx context.Context, f MenuFilter) ([]entity.MenuItem, error) {
	q := r.DB.WithContext(ctx).Model(&entity.MenuItem{})
	if f.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}
	if f.Category != "" && !strings.EqualFold(f.Category, "all") {
		q = q.Where("category = ?", f.Category)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	var items []entity.MenuItem
	err := q.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(ctx context.Context, id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	if len(ids) == 0 {
		return out, nil
	}
	err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).Count(&cnt).Error
	return cnt, err
}

// Categories lists distinct categories in the order they first appear.
// With availableOnly, categories whose items are all unavailable are left out.
func (r *MenuRepository) Categories(ctx context.Context, availableOnly bool) ([]string, error) {
	var out []string
	q := r.DB.WithContext(ctx).Model(&entity.MenuItem{})
	if availableOnly {
		q = q.Where("is_available = ?", true)
	}
	err := q.Group("category").
		Order("MIN(id) ASC").
		Pluck("category", &out).Error
	return out, err
}

func (r *MenuRepository) Create(ctx context.Context, m *entity.MenuItem) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *MenuRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}

// SetAvailability stores the availability flag set by an admin.
func (r *MenuRepository) SetAvailability(ctx context.Context, id uint, available bool) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("is_available", available)
	return res.RowsAffected, res.Error
}
