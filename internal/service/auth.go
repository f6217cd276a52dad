package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/abidbilal/deskservice/internal/config"
	"github.com/abidbilal/deskservice/internal/entity"
	"github.com/abidbilal/deskservice/internal/errs"
)

const minPasswordLength = 8

// UserStore is the persistence surface AuthService needs.
type UserStore interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// AuthService handles staff registration and login. Passwords are stored as
// bcrypt hashes; successful logins mint an HS256 JWT.
type AuthService struct {
	store UserStore
	cfg   config.AuthConfig
}

// NewAuthService creates an AuthService.
func NewAuthService(store UserStore, cfg config.AuthConfig) *AuthService {
	return &AuthService{store: store, cfg: cfg}
}

// Register creates a staff account and returns its identifier.
func (s *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	username = strings.TrimSpace(username)

	var fieldErrors []errs.FieldError
	if username == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "username", Error: "is required"})
	}
	if len(password) < minPasswordLength {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "password", Error: "must be at least 8 characters"})
	}
	if len(fieldErrors) > 0 {
		return 0, errs.NewValidationError("Registration input is invalid", fieldErrors)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	return s.store.Create(ctx, &entity.User{
		Username:     username,
		PasswordHash: string(hash),
	})
}

// Login verifies credentials and returns a signed token. Unknown usernames
// and wrong passwords produce the same error, so callers learn nothing
// about which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", errs.NewUnauthorizedError("Invalid username or password", true)
	}

	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errs.NewUnauthorizedError("Invalid username or password", true)
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errs.NewUnauthorizedError("Invalid username or password", true)
	}

	return s.mintToken(user)
}

func (s *AuthService) mintToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.ID,
		"usr": user.Username,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(s.cfg.TokenTTL) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", err
	}

	return signed, nil
}
