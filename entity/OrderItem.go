package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a snapshot of one cart line at checkout time. Price and
// name are copied, not referenced, so later menu edits never touch a
// placed order.
type OrderItem struct {
	gorm.Model
	ItemName string          `json:"itemName"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`

	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	RestaurantID uint `json:"restaurantId"`
	MenuItemID   uint `json:"menuItemId"`
}
