package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses. Pending orders may be cancelled by the user; the two
// timed hops are applied by the status worker.
const (
	OrderStatusPending   = "pending"
	OrderStatusApproved  = "approved"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	OrderNumber string          `gorm:"uniqueIndex;not null" json:"orderNumber"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Tax         decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	ServiceFee  decimal.Decimal `gorm:"type:decimal(10,2)" json:"serviceFee"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	DeliveryAddress     string `json:"deliveryAddress"`
	DeliveryCity        string `json:"deliveryCity"`
	DeliveryProvince    string `json:"deliveryProvince"`
	DeliveryPostalCode  string `json:"deliveryPostalCode"`
	ContactPhone        string `json:"contactPhone"`
	ContactEmail        string `json:"contactEmail"`
	PaymentMethod       string `json:"paymentMethod"`
	SpecialInstructions string `json:"specialInstructions"`

	Status string `gorm:"not null;default:pending;index" json:"status"`

	// Scheduled transition, applied by the status worker with a
	// compare-and-swap on Status. Empty NextStatus means nothing is due.
	NextStatus   string     `json:"-"`
	NextStatusAt *time.Time `gorm:"index" json:"-"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	// preload only for detail
	OrderItems []OrderItem `json:"-"`
}
