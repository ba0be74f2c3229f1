package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/echofashion/storefront-api/internal/config"
	"github.com/echofashion/storefront-api/internal/dto"
	"github.com/echofashion/storefront-api/internal/model"
	"github.com/echofashion/storefront-api/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	adminUserID  = "1"
	adminName    = "Admin User"
	customerName = "Customer"
)

// AuthService implements the stand-in credential check: the reserved admin
// pair yields the admin identity, any other non-empty pair a customer
// identity. A production build must replace this with a real identity
// provider.
type AuthService struct {
	sessionRepo repository.SessionRepository
	cartRepo    repository.CartRepository
	adminEmail  string
	adminHash   []byte
	jwtSecret   []byte
	jwtExpiry   time.Duration
}

func NewAuthService(sessionRepo repository.SessionRepository, cartRepo repository.CartRepository, cfg config.AuthConfig) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AuthService{
		sessionRepo: sessionRepo,
		cartRepo:    cartRepo,
		adminEmail:  cfg.AdminEmail,
		adminHash:   hash,
		jwtSecret:   []byte(cfg.JWTSecret),
		jwtExpiry:   cfg.JWTExpiration,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user := model.User{ID: uuid.NewString(), Email: req.Email, Name: customerName}
	if req.Email == s.adminEmail && bcrypt.CompareHashAndPassword(s.adminHash, []byte(req.Password)) == nil {
		user = model.User{ID: adminUserID, Email: req.Email, Name: adminName, IsAdmin: true}
	}

	if err := s.sessionRepo.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

// Logout clears the identity and the cart unconditionally; no guest cart
// survives logout.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := s.cartRepo.Clear(ctx); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Current returns the active identity, or nil when nobody is logged in.
func (s *AuthService) Current(ctx context.Context) (*model.User, error) {
	return s.sessionRepo.Current(ctx)
}

func (s *AuthService) generateToken(user model.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"admin": user.IsAdmin,
		"exp":   time.Now().Add(s.jwtExpiry).Unix(),
		"iat":   time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func toUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name, IsAdmin: user.IsAdmin}
}
