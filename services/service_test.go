package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/pkg/pricing"
	"github.com/VinitO1/Food-Order-Catering/repository"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database per test. The named
// shared-cache DSN keeps every pooled connection on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.CateringRequest{},
		&entity.ContactMessage{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testRates() pricing.Rates {
	return pricing.Rates{
		TaxRate:     dec("0.12"),
		ServiceFee:  dec("5.00"),
		DeliveryFee: dec("5.99"),
	}
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewRestaurantRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	cartSvc := newCartService(db)
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		cartSvc, testRates(),
		15*time.Second, 30*time.Second)
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{Name: name, CuisineType: "Test", CateringAvailable: true}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return r
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
