package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"socialnet/internal/httputil"
	"socialnet/internal/model"
	"socialnet/internal/service"
	"socialnet/internal/transport/http/middleware"
)

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNameTaken):
			httputil.WriteConflict(w, "Username already taken")
		case errors.Is(err, model.ErrAdminExists):
			httputil.WriteValidation(w, "An admin user already exists. You cannot register as admin.")
		case errors.Is(err, model.ErrInvalidRole):
			httputil.WriteValidation(w, "Role must be user or admin")
		case errors.Is(err, model.ErrInvalidCredentials):
			httputil.WriteBadRequest(w, "Name and password are required")
		default:
			log.Printf("[ERROR] Register handler: name=%q err=%v", req.Name, err)
			httputil.WriteInternalError(w, "Failed to register")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	token, user, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			httputil.WriteBadRequest(w, "Invalid credentials")
			return
		}
		log.Printf("[ERROR] Login handler: name=%q err=%v", req.Name, err)
		httputil.WriteInternalError(w, "Failed to log in")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// Me handles GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.userService.Get(r.Context(), viewer.ID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Me handler: user=%d err=%v", viewer.ID, err)
		httputil.WriteInternalError(w, "Failed to load user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}
