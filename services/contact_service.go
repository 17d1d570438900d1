package services

import (
	"strings"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
	"gorm.io/gorm"
)

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

type ContactMessageIn struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (s *ContactService) Submit(in *ContactMessageIn) (*entity.ContactMessage, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, apperr.Validationf("message is required")
	}
	msg := &entity.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	}
	if err := s.DB.Create(msg).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return msg, nil
}

// List returns recent messages, newest first.
func (s *ContactService) List(limit int) ([]entity.ContactMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entity.ContactMessage
	if err := s.DB.Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return out, nil
}
