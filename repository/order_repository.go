package repository

import (
	"time"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// ---------------- Status transitions ----------------

// UpdateStatusGuard flips status only when the row still holds the
// expected predecessor. RowsAffected==0 means someone got there first.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{
			"status":     to,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

// ScheduleTransition records the next timed hop for the worker.
func (r *OrderRepository) ScheduleTransition(tx *gorm.DB, orderID uint, next string, at time.Time) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"next_status": next, "next_status_at": at}).Error
}

// ClearTransition drops whatever hop was scheduled.
func (r *OrderRepository) ClearTransition(tx *gorm.DB, orderID uint) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"next_status": "", "next_status_at": nil}).Error
}

// DueTransitions returns orders whose scheduled hop has come due.
func (r *OrderRepository) DueTransitions(now time.Time, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entity.Order
	err := r.DB.Where("next_status <> '' AND next_status_at IS NOT NULL AND next_status_at <= ?", now).
		Order("next_status_at ASC").Limit(limit).
		Find(&out).Error
	return out, err
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	return tx.Create(&items).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}
