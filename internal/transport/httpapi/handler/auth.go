package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/platform/user"
	apperr "github.com/kislikjeka/bookstore/internal/shared/errors"
	"github.com/kislikjeka/bookstore/internal/transport/httpapi/middleware"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// UserServiceInterface defines the user operations needed by AuthHandler
type UserServiceInterface interface {
	Login(ctx context.Context, login, password string) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// JWTServiceInterface defines the interface for JWT operations
type JWTServiceInterface interface {
	GenerateToken(u *user.User) (string, error)
	TTL() time.Duration
}

// CookieConfig controls the auth cookie set on login
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	responder
	userService UserServiceInterface
	jwtService  JWTServiceInterface
	cookie      CookieConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService UserServiceInterface, jwtService JWTServiceInterface, cookie CookieConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		responder:   responder{logger: log},
		userService: userService,
		jwtService:  jwtService,
		cookie:      cookie,
	}
}

// LoginRequest represents the login request body. Login is a username or an email.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      *user.User `json:"user"`
}

// Login handles POST /auth/login. The token is returned in the body and set
// as an HttpOnly cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	u, err := h.userService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	token, err := h.jwtService.GenerateToken(u)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	expires := time.Now().Add(h.jwtService.TTL())

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(h.jwtService.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, AuthResponse{Token: token, ExpiresAt: expires.UTC(), User: u}, http.StatusOK)
}

// Logout handles POST /auth/logout by expiring the auth cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.fail(w, r, apperr.Unauthorized("unauthorized"))
		return
	}
	u, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, u, http.StatusOK)
}
