package services

import (
	"errors"
	"strings"

	"github.com/meghk47/FindWorker/entity"
	"github.com/meghk47/FindWorker/repository"
)

var (
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username taken")
)

// AuthService handles login/register business logic.
type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(repo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: repo}
}

// Register creates a new user. The role is stored verbatim; anything
// other than exactly "admin" behaves as a customer downstream.
func (s *AuthService) Register(username, password, phone, role string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	phone = strings.TrimSpace(phone)
	role = strings.TrimSpace(role)

	if username == "" || password == "" || phone == "" {
		return nil, ErrFieldsRequired
	}
	if role == "" {
		role = "customer"
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	user := &entity.User{
		Username: username,
		Password: password,
		Role:     role,
		Phone:    phone,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials with exact equality. Empty fields fail
// before any store lookup, and a miss is reported generically without
// distinguishing unknown user from wrong password.
func (s *AuthService) Login(username, password string) (*entity.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrFieldsRequired
	}

	user, err := s.userRepo.FindByCredentials(username, password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetProfile loads the account behind an authenticated request.
func (s *AuthService) GetProfile(username string) (*entity.User, error) {
	return s.userRepo.FindByUsername(username)
}
