package services

import (
	"strings"
	"time"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
	"github.com/VinitO1/Food-Order-Catering/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CateringService struct {
	DB       *gorm.DB
	RestRepo *repository.RestaurantRepository
}

func NewCateringService(db *gorm.DB, rr *repository.RestaurantRepository) *CateringService {
	return &CateringService{DB: db, RestRepo: rr}
}

type CateringRequestIn struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	EventName    string `json:"eventName" binding:"required"`
	EventDate    string `json:"eventDate" binding:"required"` // YYYY-MM-DD
	EventTime    string `json:"eventTime"`
	NumGuests    int    `json:"numGuests" binding:"required"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	Message      string `json:"message"`
}

// Submit files a catering request against a restaurant that offers
// catering. The short reference is what support quotes back to the user.
func (s *CateringService) Submit(userID uint, in *CateringRequestIn) (*entity.CateringRequest, error) {
	if userID == 0 {
		return nil, apperr.ErrAuthenticationRequired
	}
	if in.NumGuests < 1 {
		return nil, apperr.Validationf("number of guests must be at least 1")
	}
	eventDate, err := time.Parse("2006-01-02", in.EventDate)
	if err != nil {
		return nil, apperr.Validationf("event date must be YYYY-MM-DD")
	}
	if eventDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, apperr.Validationf("event date must be in the future")
	}

	rest, err := s.RestRepo.Get(in.RestaurantID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence(err)
	}
	if !rest.CateringAvailable {
		return nil, apperr.Validationf("restaurant does not offer catering")
	}

	req := &entity.CateringRequest{
		Reference:    "CAT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8]),
		EventName:    strings.TrimSpace(in.EventName),
		EventDate:    eventDate,
		EventTime:    in.EventTime,
		NumGuests:    in.NumGuests,
		ContactName:  strings.TrimSpace(in.ContactName),
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		ContactEmail: strings.TrimSpace(in.ContactEmail),
		Message:      in.Message,
		Status:       "received",
		UserID:       userID,
		RestaurantID: in.RestaurantID,
	}
	if err := s.DB.Create(req).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return req, nil
}

func (s *CateringService) ListForUser(userID uint) ([]entity.CateringRequest, error) {
	if userID == 0 {
		return nil, apperr.ErrAuthenticationRequired
	}
	var out []entity.CateringRequest
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return out, nil
}

// ListAll returns recent requests across all users, newest first. Staff
// working the catering inbox see every request, not just their own.
func (s *CateringService) ListAll(limit int) ([]entity.CateringRequest, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entity.CateringRequest
	err := s.DB.Order("created_at DESC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return out, nil
}
