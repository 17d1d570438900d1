package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
	"github.com/VinitO1/Food-Order-Catering/pkg/pricing"
	"github.com/VinitO1/Food-Order-Catering/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var orderLog = zerolog.New(os.Stdout).With().Timestamp().Str("service", "order").Logger()

// orderNumberAttempts bounds the regenerate loop when a generated number
// collides with the unique index.
const orderNumberAttempts = 3

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	CartSvc  *CartService

	Rates        pricing.Rates
	ApproveAfter time.Duration
	DeliverAfter time.Duration
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	cartSvc *CartService,
	rates pricing.Rates,
	approveAfter, deliverAfter time.Duration,
) *OrderService {
	return &OrderService{
		DB:           db,
		Repo:         repo,
		CartRepo:     cartRepo,
		CartSvc:      cartSvc,
		Rates:        rates,
		ApproveAfter: approveAfter,
		DeliverAfter: deliverAfter,
	}
}

type PlaceOrderIn struct {
	DeliveryAddress     string `json:"deliveryAddress" binding:"required"`
	DeliveryCity        string `json:"deliveryCity" binding:"required"`
	DeliveryProvince    string `json:"deliveryProvince"`
	DeliveryPostalCode  string `json:"deliveryPostalCode"`
	ContactPhone        string `json:"contactPhone" binding:"required"`
	ContactEmail        string `json:"contactEmail"`
	PaymentMethod       string `json:"paymentMethod" binding:"omitempty,oneof=credit_card debit_card paypal cash_on_delivery"`
	SpecialInstructions string `json:"specialInstructions"`
}

// PlaceOrder snapshots the user's cart into an order plus order items in
// one transaction, schedules the pending->approved hop, then clears the
// cart. A failed clear leaves the order placed and is only logged.
func (s *OrderService) PlaceOrder(userID uint, in *PlaceOrderIn) (*entity.Order, error) {
	if userID == 0 {
		return nil, apperr.ErrAuthenticationRequired
	}

	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if len(lines) == 0 {
		return nil, apperr.ErrEmptyCart
	}

	pls := make([]pricing.Line, 0, len(lines))
	for _, l := range lines {
		pls = append(pls, pricing.Line{Price: l.Price, Quantity: l.Quantity})
	}
	quote := pricing.QuoteFor(pls, s.Rates)

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "credit_card"
	}

	var order *entity.Order
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		candidate := &entity.Order{
			OrderNumber:         generateOrderNumber(),
			Subtotal:            quote.Subtotal,
			Tax:                 quote.Tax,
			ServiceFee:          quote.ServiceFee,
			DeliveryFee:         quote.DeliveryFee,
			Total:               quote.Total,
			DeliveryAddress:     in.DeliveryAddress,
			DeliveryCity:        in.DeliveryCity,
			DeliveryProvince:    in.DeliveryProvince,
			DeliveryPostalCode:  in.DeliveryPostalCode,
			ContactPhone:        in.ContactPhone,
			ContactEmail:        in.ContactEmail,
			PaymentMethod:       paymentMethod,
			SpecialInstructions: in.SpecialInstructions,
			Status:              entity.OrderStatusPending,
			UserID:              userID,
		}

		err = s.DB.Transaction(func(tx *gorm.DB) error {
			if err := s.Repo.CreateOrder(tx, candidate); err != nil {
				return err
			}

			items := make([]entity.OrderItem, 0, len(lines))
			for _, l := range lines {
				items = append(items, entity.OrderItem{
					OrderID:      candidate.ID,
					RestaurantID: l.RestaurantID,
					MenuItemID:   l.MenuItemID,
					ItemName:     l.ItemName,
					Price:        l.Price,
					Quantity:     l.Quantity,
					Subtotal:     l.Price.Mul(decimalFromInt(l.Quantity)).Round(2),
				})
			}
			if err := s.Repo.CreateOrderItems(tx, items); err != nil {
				return err
			}

			at := time.Now().Add(s.ApproveAfter)
			return s.Repo.ScheduleTransition(tx, candidate.ID, entity.OrderStatusApproved, at)
		})
		if err == nil {
			order = candidate
			break
		}
		if !isUniqueOrderNumber(err) {
			return nil, apperr.Persistence(err)
		}
		orderLog.Warn().Str("order_number", candidate.OrderNumber).Msg("order number collision, regenerating")
	}
	if order == nil {
		return nil, apperr.Persistence(err)
	}

	// Cart cleanliness is secondary to the placed order.
	if err := s.CartRepo.ClearForUser(s.DB, userID); err != nil {
		orderLog.Warn().Err(err).Uint("user_id", userID).Uint("order_id", order.ID).
			Msg("order placed but cart clear failed")
	}

	return order, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	if userID == 0 {
		return nil, apperr.ErrAuthenticationRequired
	}
	out, err := s.Repo.ListOrdersForUser(userID, limit)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return out, nil
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	if userID == 0 {
		return nil, apperr.ErrAuthenticationRequired
	}
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence(err)
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// generateOrderNumber builds a human-presentable number from the current
// time plus a short random suffix. Uniqueness is enforced by the DB
// index, not by this function.
func generateOrderNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), strings.ToUpper(suffix))
}

func isUniqueOrderNumber(err error) bool {
	return err != nil && strings.Contains(err.Error(), "orders.order_number")
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
