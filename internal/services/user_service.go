package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"johuart/internal/models"
)

type UserStore interface {
	CreateUser(ctx context.Context, user models.User, passwordHash string) (models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

type UserService struct {
	UserRepo UserStore
}

// CreateUser registers a user record. A supplied password is stored as a
// bcrypt hash; nothing verifies it at sign-in yet (see the trust-model note
// in the README).
func (s *UserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if strings.TrimSpace(user.Email) == "" {
		return models.User{}, models.ErrEmailRequired
	}

	var passwordHash string
	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		passwordHash = string(hash)
	}

	return s.UserRepo.CreateUser(ctx, user, passwordHash)
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetUsers(ctx)
}
