package entity

import (
	"time"

	"gorm.io/gorm"
)

type CateringRequest struct {
	gorm.Model
	Reference    string    `gorm:"uniqueIndex" json:"reference"`
	EventName    string    `json:"eventName"`
	EventDate    time.Time `json:"eventDate"`
	EventTime    string    `json:"eventTime"`
	NumGuests    int       `json:"numGuests"`
	ContactName  string    `json:"contactName"`
	ContactPhone string    `json:"contactPhone"`
	ContactEmail string    `json:"contactEmail"`
	Message      string    `json:"message"`
	Status       string    `gorm:"default:received" json:"status"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
