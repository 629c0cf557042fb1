package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ops-tracker/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Login verifies the claimed identity and that the account is allowed into the
// selected portal. A disabled account with correct credentials reports
// ErrAccountDisabled, never ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string, portal model.Portal) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, model.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, model.ErrAccountDisabled
	}

	switch portal {
	case model.PortalAdmin:
		if u.Role != model.RoleAdmin {
			return nil, fmt.Errorf("%w: not an authorized administrator account", model.ErrRoleMismatch)
		}
	case model.PortalTeam:
		if u.Role == model.RoleAdmin {
			return nil, fmt.Errorf("%w: please use the admin portal for administrator accounts", model.ErrRoleMismatch)
		}
	}

	return &u, nil
}

// RegisterAdmin is the bootstrap path on the login screen: anyone can create an
// administrator account, duplicates are rejected on the email unique key.
func (s *AuthService) RegisterAdmin(ctx context.Context, name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrEmailTaken
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return &u, nil
}
