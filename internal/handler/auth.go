package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/abidbilal/deskservice/internal/server"
	"github.com/abidbilal/deskservice/internal/service"
)

// AuthHandler serves staff registration and login.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// RegisterRequest is the payload for creating a staff account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8,max=200"`
}

func (r *RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// Register creates a staff account.
func (h *AuthHandler) Register(c echo.Context, req *RegisterRequest) (IDResponse, error) {
	id, err := h.auth.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return IDResponse{}, err
	}

	return IDResponse{ID: id}, nil
}

// LoginRequest is the payload for signing in.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// TokenResponse carries the session token of a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// Login verifies credentials and returns a session token.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (TokenResponse, error) {
	token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{Token: token}, nil
}
