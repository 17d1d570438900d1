package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	CuisineType       string  `json:"cuisineType"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	Province          string  `json:"province"`
	PhoneNumber       string  `json:"phoneNumber"`
	Rating            float64 `json:"rating"`
	PriceRange        string  `json:"priceRange"`
	ImageURL          string  `json:"imageUrl"`
	CateringAvailable bool    `json:"cateringAvailable"`

	MenuItems []MenuItem `json:"-"`
}
