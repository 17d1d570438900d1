package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
)

func TestAddItemMergesByIdentity(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	rest := seedRestaurant(t, db, "Bombay Spice House")

	in := &AddItemIn{RestaurantID: rest.ID, ItemName: "Butter Chicken", Price: dec("10.00"), Quantity: 1}
	if _, err := svc.AddItem(1, in); err != nil {
		t.Fatalf("first add: %v", err)
	}
	line, err := svc.AddItem(1, in)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if line.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", line.Quantity)
	}

	var count int64
	db.Model(&entity.CartItem{}).
		Where("user_id = ? AND restaurant_id = ? AND item_name = ?", 1, rest.ID, "Butter Chicken").
		Count(&count)
	if count != 1 {
		t.Errorf("line count = %d, want exactly 1", count)
	}

	lines, subtotal, err := svc.List(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("listed %d lines, want 1", len(lines))
	}
	if !subtotal.Equal(dec("20.00")) {
		t.Errorf("subtotal = %s, want 20.00", subtotal)
	}
}

func TestAddItemIncrementSums(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	rest := seedRestaurant(t, db, "Golden Dragon")

	increments := []int{1, 3, 2}
	for _, n := range increments {
		in := &AddItemIn{RestaurantID: rest.ID, ItemName: "Fried Rice", Price: dec("11.00"), Quantity: n}
		if _, err := svc.AddItem(7, in); err != nil {
			t.Fatalf("add qty %d: %v", n, err)
		}
	}

	var line entity.CartItem
	if err := db.Where("user_id = ?", 7).First(&line).Error; err != nil {
		t.Fatalf("fetch line: %v", err)
	}
	if line.Quantity != 6 {
		t.Errorf("quantity = %d, want sum of increments 6", line.Quantity)
	}

	// omitted quantity still counts as one item
	added, err := svc.AddItem(7, &AddItemIn{RestaurantID: rest.ID, ItemName: "Spring Rolls", Price: dec("4.50")})
	if err != nil {
		t.Fatalf("add without quantity: %v", err)
	}
	if added.Quantity != 1 {
		t.Errorf("quantity = %d, want default 1", added.Quantity)
	}
}

func TestAddItemValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	tests := []struct {
		name string
		user uint
		in   AddItemIn
		want error
	}{
		{"no session", 0, AddItemIn{RestaurantID: 1, ItemName: "X", Price: dec("1.00"), Quantity: 1}, apperr.ErrAuthenticationRequired},
		{"empty name", 1, AddItemIn{RestaurantID: 1, ItemName: "  ", Price: dec("1.00"), Quantity: 1}, apperr.ErrValidation},
		{"zero price", 1, AddItemIn{RestaurantID: 1, ItemName: "X", Price: dec("0"), Quantity: 1}, apperr.ErrValidation},
		{"negative price", 1, AddItemIn{RestaurantID: 1, ItemName: "X", Price: dec("-2.50"), Quantity: 1}, apperr.ErrValidation},
		{"negative quantity", 1, AddItemIn{RestaurantID: 1, ItemName: "X", Price: dec("1.00"), Quantity: -3}, apperr.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddItem(tt.user, &tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	var count int64
	db.Model(&entity.CartItem{}).Count(&count)
	if count != 0 {
		t.Errorf("failed adds wrote %d rows", count)
	}
}

func TestSetQuantity(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	rest := seedRestaurant(t, db, "Trattoria Nonna")

	line, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, ItemName: "Tiramisu", Price: dec("8.00"), Quantity: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := svc.SetQuantity(1, line.ID, 0); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("qty 0: err = %v, want validation error", err)
	}

	// another user may not touch the line
	if _, err := svc.SetQuantity(2, line.ID, 3); !errors.Is(err, apperr.ErrNotAuthorized) {
		t.Errorf("foreign user: err = %v, want ErrNotAuthorized", err)
	}
	var unchanged entity.CartItem
	db.First(&unchanged, line.ID)
	if unchanged.Quantity != 1 {
		t.Errorf("failed update changed quantity to %d", unchanged.Quantity)
	}

	updated, err := svc.SetQuantity(1, line.ID, 5)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if updated.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", updated.Quantity)
	}
}

func TestRemoveItem(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	rest := seedRestaurant(t, db, "Golden Dragon")

	line, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, ItemName: "Shrimp Dumplings", Price: dec("7.25"), Quantity: 2})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.RemoveItem(2, line.ID); !errors.Is(err, apperr.ErrNotAuthorized) {
		t.Errorf("foreign remove: err = %v, want ErrNotAuthorized", err)
	}
	if err := svc.RemoveItem(1, line.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.RemoveItem(1, line.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second remove: err = %v, want ErrNotFound", err)
	}

	// a removed identity can be re-added fresh
	readd, err := svc.AddItem(1, &AddItemIn{RestaurantID: rest.ID, ItemName: "Shrimp Dumplings", Price: dec("7.25"), Quantity: 1})
	if err != nil {
		t.Fatalf("re-add after remove: %v", err)
	}
	if readd.Quantity != 1 {
		t.Errorf("re-added quantity = %d, want 1", readd.Quantity)
	}
}

func TestListUsesPlaceholderForMissingRestaurant(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	const danglingID = 9999
	if _, err := svc.AddItem(1, &AddItemIn{RestaurantID: danglingID, ItemName: "Mystery Meal", Price: dec("9.99"), Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	lines, _, err := svc.List(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := fmt.Sprintf("Restaurant %d", danglingID)
	if lines[0].RestaurantName != want {
		t.Errorf("restaurant name = %q, want placeholder %q", lines[0].RestaurantName, want)
	}
}

func TestAddItemChecksCatalogReference(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	restA := seedRestaurant(t, db, "Bombay Spice House")
	restB := seedRestaurant(t, db, "Trattoria Nonna")

	item := &entity.MenuItem{RestaurantID: restA.ID, Name: "Palak Paneer", Price: dec("13.49"), IsAvailable: true}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	offMenu := &entity.MenuItem{RestaurantID: restA.ID, Name: "Seasonal Thali", Price: dec("18.00"), IsAvailable: false}
	if err := db.Create(offMenu).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}

	// valid reference goes through
	if _, err := svc.AddItem(1, &AddItemIn{RestaurantID: restA.ID, MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 1}); err != nil {
		t.Fatalf("add with catalog reference: %v", err)
	}

	cases := []struct {
		name string
		in   *AddItemIn
	}{
		{"unknown menu item", &AddItemIn{RestaurantID: restA.ID, MenuItemID: 9999, ItemName: "Ghost Dish", Price: dec("5.00")}},
		{"item from another restaurant", &AddItemIn{RestaurantID: restB.ID, MenuItemID: item.ID, ItemName: item.Name, Price: item.Price}},
		{"unavailable item", &AddItemIn{RestaurantID: restA.ID, MenuItemID: offMenu.ID, ItemName: offMenu.Name, Price: offMenu.Price}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddItem(1, tc.in); !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}
