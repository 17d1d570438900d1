package repository

import (
	"errors"
	"time"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// UpsertLine adds a line or folds it into the existing one for the same
// (user, restaurant, item name) in a single statement, so two rapid adds
// both land as increments instead of racing a read-then-write.
func (r *CartRepository) UpsertLine(tx *gorm.DB, row *entity.CartItem) (*entity.CartItem, error) {
	now := time.Now()
	err := tx.Exec(`
		INSERT INTO cart_items (user_id, restaurant_id, item_name, menu_item_id, price, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, restaurant_id, item_name) DO UPDATE
		   SET quantity   = quantity + excluded.quantity,
		       updated_at = excluded.updated_at
	`, row.UserID, row.RestaurantID, row.ItemName, row.MenuItemID, row.Price, row.Quantity, now, now).Error
	if err != nil {
		return nil, err
	}

	var out entity.CartItem
	err = tx.Where("user_id = ? AND restaurant_id = ? AND item_name = ?",
		row.UserID, row.RestaurantID, row.ItemName).First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CartRepository) GetLine(lineID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	if err := r.DB.First(&line, lineID).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

func (r *CartRepository) UpdateQuantity(tx *gorm.DB, lineID uint, qty int) error {
	return tx.Model(&entity.CartItem{}).
		Where("id = ?", lineID).
		Updates(map[string]any{"quantity": qty, "updated_at": time.Now()}).Error
}

func (r *CartRepository) RemoveLine(tx *gorm.DB, lineID uint) error {
	return tx.Delete(&entity.CartItem{}, lineID).Error
}

// ClearForUser bulk-deletes every line for the user.
func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
