package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/yogi-fashion/embroidery-service/internal/api"
	"github.com/yogi-fashion/embroidery-service/internal/middleware"
	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/service"
)

// AuthHandler handles registration, login and password changes
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type sessionResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
}

// Register creates an account and signs it in
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// The confirmation is optional for API clients.
	confirm := req.ConfirmPassword
	if confirm == "" {
		confirm = req.Password
	}

	id, err := h.authService.RegisterConfirmed(r.Context(), req.Username, req.Password, confirm)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.respondSession(w, http.StatusCreated, id)
}

// Login verifies credentials and returns a session token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.respondSession(w, http.StatusOK, id)
}

// ChangePassword changes the current user's password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		api.MethodNotAllowed(w)
		return
	}

	var req models.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		api.RespondJSON(w, http.StatusUnauthorized, api.APIError{Detail: "authorization required"})
		return
	}

	if err := h.authService.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		api.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) respondSession(w http.ResponseWriter, status int, id uuid.UUID) {
	token, err := h.authService.IssueToken(id)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, status, sessionResponse{Token: token, UserID: id})
}
