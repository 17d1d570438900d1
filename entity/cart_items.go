package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one (user, restaurant, item name) line with a quantity.
// No soft delete: removed lines are gone for real, so the unique index
// only ever covers live rows and a re-add after remove works.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID       uint            `gorm:"uniqueIndex:idx_cart_identity;not null" json:"userId"`
	RestaurantID uint            `gorm:"uniqueIndex:idx_cart_identity;not null" json:"restaurantId"`
	ItemName     string          `gorm:"uniqueIndex:idx_cart_identity;not null" json:"itemName"`
	MenuItemID   uint            `json:"menuItemId"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Quantity     int             `json:"quantity"`
}
