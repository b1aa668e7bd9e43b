package repository

import (
	"context"

	"gorm.io/gorm"

	"tableorder/entity"
	"tableorder/pkg/cart"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) WithTx(tx *gorm.DB) *CartRepository { return &CartRepository{DB: tx} }

func (r *CartRepository) Create(ctx context.Context, c *entity.Cart) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

// Get loads a session's cart with lines in insertion order.
func (r *CartRepository) Get(ctx context.Context, sessionID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ?", sessionID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Replace stores the reducer state: table binding plus the full line set.
func (r *CartRepository) Replace(ctx context.Context, sessionID string, state *cart.Cart) error {
	db := r.DB.WithContext(ctx)
	if err := db.Model(&entity.Cart{}).
		Where("id = ?", sessionID).
		Update("table_number", state.TableNumber).Error; err != nil {
		return err
	}
	if err := db.Where("cart_id = ?", sessionID).Delete(&entity.CartLine{}).Error; err != nil {
		return err
	}
	rows := entity.CartLinesFrom(sessionID, state.Lines)
	if len(rows) == 0 {
		return nil
	}
	return db.Create(&rows).Error
}
