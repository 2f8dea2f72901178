package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"collab-finder/models"
	"collab-finder/repositories"
	"collab-finder/utils"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	userRepo *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
	}
}

// Register creates the user and its empty profile. Emails are normalized and
// case-folded before the duplicate check, so "User@X" and "user@x" collide.
func (s *AuthService) Register(email, password string) (*models.User, error) {
	email = strings.ToLower(utils.NormalizeText(email))
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.CreateWithProfile(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(utils.NormalizeText(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.PasswordHash, password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
