package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"socialnet/internal/config"
	"socialnet/internal/model"
	"socialnet/internal/repository"
)

// AuthService handles registration, login, and access-token issuance. Tokens
// carry the user id and role so downstream handlers never re-read the users
// table just to authorize.
type AuthService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Register creates a new account. At most one admin may exist; the check here
// gives a clean error on the common path and the partial unique index on
// users(role) closes the race between two concurrent admin registrations.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Password == "" {
		return nil, model.ErrInvalidCredentials
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	if !role.Valid() {
		return nil, model.ErrInvalidRole
	}

	if role == model.RoleAdmin {
		exists, err := s.userRepo.AdminExists(ctx)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, model.ErrAdminExists
		}
	}

	exists, err := s.userRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrNameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:           name,
		PasswordHashed: string(hashed),
		Role:           role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (string, *model.User, error) {
	user, err := s.userRepo.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", nil, model.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password)) != nil {
		return "", nil, model.ErrInvalidCredentials
	}

	token, err := s.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GenerateAccessToken issues an HS256 token with a fixed expiry.
func (s *AuthService) GenerateAccessToken(userID int64, role model.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(time.Duration(s.config.AccessTokenMaxAge) * time.Second).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
