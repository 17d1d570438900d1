package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
	"github.com/VinitO1/Food-Order-Catering/pkg/pricing"
	"github.com/VinitO1/Food-Order-Catering/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var cartLog = zerolog.New(os.Stdout).With().Timestamp().Str("service", "cart").Logger()

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, rr *repository.RestaurantRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, RestRepo: rr}
}

type AddItemIn struct {
	RestaurantID uint            `json:"restaurantId" binding:"required"`
	MenuItemID   uint            `json:"menuItemId"`
	ItemName     string          `json:"itemName" binding:"required"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Quantity     int             `json:"quantity"`
}

// CartLineOut is a cart line plus the denormalized restaurant name.
type CartLineOut struct {
	entity.CartItem
	RestaurantName string `json:"restaurantName"`
}

// AddItem merges the item into the user's cart: a second add of the same
// (restaurant, item name) increments the existing line instead of
// creating a duplicate.
func (s *CartService) AddItem(userID uint, in *AddItemIn) (*entity.CartItem, error) {
	if userID == 0 {
		return nil, apperr.ErrAuthenticationRequired
	}
	if strings.TrimSpace(in.ItemName) == "" {
		return nil, apperr.Validationf("item name is required")
	}
	if !in.Price.IsPositive() {
		return nil, apperr.Validationf("price must be positive")
	}
	if in.Quantity < 0 {
		return nil, apperr.Validationf("quantity must be at least 1")
	}
	if in.Quantity == 0 {
		// omitted field defaults to a single item
		in.Quantity = 1
	}

	// When the client references a catalog item, make sure it exists,
	// belongs to the stated restaurant and is still orderable.
	if in.MenuItemID != 0 {
		m, err := s.RestRepo.GetMenuItem(in.MenuItemID)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil, apperr.Validationf("menu item %d does not exist", in.MenuItemID)
			}
			return nil, apperr.Persistence(err)
		}
		if m.RestaurantID != in.RestaurantID {
			return nil, apperr.Validationf("menu item %d does not belong to restaurant %d", in.MenuItemID, in.RestaurantID)
		}
		if !m.IsAvailable {
			return nil, apperr.Validationf("menu item %q is currently unavailable", m.Name)
		}
	}

	row := &entity.CartItem{
		UserID:       userID,
		RestaurantID: in.RestaurantID,
		MenuItemID:   in.MenuItemID,
		ItemName:     strings.TrimSpace(in.ItemName),
		Price:        in.Price.Round(2),
		Quantity:     in.Quantity,
	}

	var out *entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := s.CartRepo.UpsertLine(tx, row)
		if err != nil {
			return err
		}
		out = line
		return nil
	})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return out, nil
}

// SetQuantity overwrites a line's quantity. Quantities below 1 are
// rejected; removal is an explicit operation.
func (s *CartService) SetQuantity(userID, lineID uint, qty int) (*entity.CartItem, error) {
	if userID == 0 {
		return nil, apperr.ErrAuthenticationRequired
	}
	if qty < 1 {
		return nil, apperr.Validationf("quantity must be at least 1, remove the item instead")
	}

	line, err := s.CartRepo.GetLine(lineID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence(err)
	}
	if err := authorizeOwner(userID, line.UserID); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQuantity(tx, lineID, qty)
	})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	line.Quantity = qty
	return line, nil
}

func (s *CartService) RemoveItem(userID, lineID uint) error {
	if userID == 0 {
		return apperr.ErrAuthenticationRequired
	}

	line, err := s.CartRepo.GetLine(lineID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperr.ErrNotFound
		}
		return apperr.Persistence(err)
	}
	if err := authorizeOwner(userID, line.UserID); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveLine(tx, lineID)
	})
	if err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return apperr.ErrAuthenticationRequired
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearForUser(tx, userID)
	})
	if err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

// List returns the user's cart lines enriched with restaurant display
// names. A dangling restaurant reference gets a placeholder instead of
// failing the whole read.
func (s *CartService) List(userID uint) ([]CartLineOut, decimal.Decimal, error) {
	if userID == 0 {
		return nil, decimal.Zero, apperr.ErrAuthenticationRequired
	}

	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, decimal.Zero, apperr.Persistence(err)
	}

	ids := make([]uint, 0, len(lines))
	seen := make(map[uint]bool, len(lines))
	for _, l := range lines {
		if !seen[l.RestaurantID] {
			seen[l.RestaurantID] = true
			ids = append(ids, l.RestaurantID)
		}
	}
	names, err := s.RestRepo.NamesByIDs(ids)
	if err != nil {
		cartLog.Warn().Err(err).Msg("restaurant name lookup failed, using placeholders")
		names = map[uint]string{}
	}

	out := make([]CartLineOut, 0, len(lines))
	for _, l := range lines {
		name, ok := names[l.RestaurantID]
		if !ok {
			name = fmt.Sprintf("Restaurant %d", l.RestaurantID)
		}
		out = append(out, CartLineOut{CartItem: l, RestaurantName: name})
	}
	return out, s.Subtotal(lines), nil
}

// Subtotal is pure: sum of price*quantity over the lines, 2dp half-up.
func (s *CartService) Subtotal(lines []entity.CartItem) decimal.Decimal {
	pls := make([]pricing.Line, 0, len(lines))
	for _, l := range lines {
		pls = append(pls, pricing.Line{Price: l.Price, Quantity: l.Quantity})
	}
	return pricing.Subtotal(pls)
}
