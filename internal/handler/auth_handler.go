package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
	"github.com/eligiorbautista/niyoghub-server/internal/service"
)

// AuthHandler serves account registration and login.
type AuthHandler struct {
	auth   service.IAuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth service.IAuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body."})
		return
	}

	user, credential, err := h.auth.Register(req.Email, req.FullName, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	setSessionCookie(w, credential)
	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: credential})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body."})
		return
	}

	user, credential, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	setSessionCookie(w, credential)
	writeJSON(w, http.StatusOK, authResponse{User: user, Token: credential})
}

func setSessionCookie(w http.ResponseWriter, credential string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    credential,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
