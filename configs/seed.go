package configs

import (
	"log"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedRestaurants loads the demo storefront data when the restaurants
// table is empty.
func SeedRestaurants() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	price := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}

	restaurants := []struct {
		r     entity.Restaurant
		items []entity.MenuItem
	}{
		{
			r: entity.Restaurant{
				Name: "Bombay Spice House", CuisineType: "Indian",
				Description: "Family-run North Indian kitchen with daily tandoor specials.",
				Address:     "1240 Granville St", City: "Vancouver", Province: "BC",
				PhoneNumber: "604-555-0132", Rating: 4.6, PriceRange: "$$",
				CateringAvailable: true,
			},
			items: []entity.MenuItem{
				{Name: "Butter Chicken", Category: "Mains", Price: price("15.99"), Description: "Tandoori chicken in tomato cream sauce"},
				{Name: "Palak Paneer", Category: "Mains", Price: price("13.49"), Description: "Spinach and cottage cheese curry"},
				{Name: "Garlic Naan", Category: "Sides", Price: price("3.99")},
				{Name: "Mango Lassi", Category: "Drinks", Price: price("4.99")},
			},
		},
		{
			r: entity.Restaurant{
				Name: "Golden Dragon", CuisineType: "Chinese",
				Description: "Cantonese classics and dim sum until late.",
				Address:     "88 Keefer Pl", City: "Vancouver", Province: "BC",
				PhoneNumber: "604-555-0178", Rating: 4.3, PriceRange: "$$",
				CateringAvailable: true,
			},
			items: []entity.MenuItem{
				{Name: "Sweet and Sour Pork", Category: "Mains", Price: price("14.50")},
				{Name: "Shrimp Dumplings", Category: "Dim Sum", Price: price("7.25")},
				{Name: "Fried Rice", Category: "Sides", Price: price("11.00")},
			},
		},
		{
			r: entity.Restaurant{
				Name: "Trattoria Nonna", CuisineType: "Italian",
				Description: "Hand-made pasta, wood-fired pizza.",
				Address:     "2611 Commercial Dr", City: "Vancouver", Province: "BC",
				PhoneNumber: "604-555-0190", Rating: 4.8, PriceRange: "$$$",
				CateringAvailable: false,
			},
			items: []entity.MenuItem{
				{Name: "Margherita Pizza", Category: "Pizza", Price: price("16.00")},
				{Name: "Tagliatelle al Ragu", Category: "Pasta", Price: price("18.50")},
				{Name: "Tiramisu", Category: "Dessert", Price: price("8.00")},
			},
		},
	}

	for _, seed := range restaurants {
		if err := db.Create(&seed.r).Error; err != nil {
			return err
		}
		for i := range seed.items {
			seed.items[i].RestaurantID = seed.r.ID
			seed.items[i].IsAvailable = true
		}
		if err := db.Create(&seed.items).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d restaurants", len(restaurants))
	return nil
}
