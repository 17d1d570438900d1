package services

import (
	"strings"
	"time"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
	"github.com/VinitO1/Food-Order-Catering/repository"
	"github.com/VinitO1/Food-Order-Catering/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles register/login business logic.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a new user; duplicate email is rejected.
func (s *AuthService) Register(email, password, firstName, lastName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperr.Validationf("email is required")
	}
	if len(password) < 6 {
		return nil, apperr.Validationf("password must be at least 6 characters")
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if count > 0 {
		return nil, apperr.Validationf("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        "customer",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Persistence(err)
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.ErrAuthenticationRequired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.ErrAuthenticationRequired
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	if userID == 0 {
		return nil, apperr.ErrAuthenticationRequired
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.ErrAuthenticationRequired
		}
		return nil, apperr.Persistence(err)
	}
	return user, nil
}
