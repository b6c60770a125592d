package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"socialnet/internal/httputil"
	"socialnet/internal/model"
	"socialnet/internal/service"
	"socialnet/internal/transport/http/middleware"
)

type UserHandler struct {
	userService  *service.UserService
	mediaService *service.MediaService
}

func NewUserHandler(userService *service.UserService, mediaService *service.MediaService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		mediaService: mediaService,
	}
}

// GetProfile handles GET /users/{id}
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Get profile handler: user=%d err=%v", userID, err)
		httputil.WriteInternalError(w, "Failed to get profile")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

// Delete handles DELETE /users/{id}
// Self or admin only; the store cascades everything the user owns.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	err = h.userService.Delete(r.Context(), *viewer, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrForbidden):
			httputil.WriteForbidden(w, "You may only delete your own account")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] Delete user handler: actor=%d user=%d err=%v", viewer.ID, userID, err)
			httputil.WriteInternalError(w, "Failed to delete user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "User deleted successfully",
	})
}

// UploadAvatar handles POST /users/me/avatar (multipart form, field "file")
func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(model.MaxAvatarSizeBytes); err != nil {
		httputil.WriteBadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteBadRequest(w, "Missing file field")
		return
	}
	defer file.Close()

	upload, err := h.mediaService.UploadAvatar(r.Context(), file, header)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrFileTooLarge):
			httputil.WriteValidation(w, "Avatar exceeds the size limit")
		case errors.Is(err, model.ErrUnsupportedImage):
			httputil.WriteValidation(w, "Unsupported image format")
		default:
			log.Printf("[ERROR] Upload avatar handler: user=%d err=%v", viewer.ID, err)
			httputil.WriteInternalError(w, "Failed to upload avatar")
		}
		return
	}

	if err := h.userService.SetAvatar(r.Context(), viewer.ID, upload); err != nil {
		log.Printf("[ERROR] Set avatar handler: user=%d err=%v", viewer.ID, err)
		httputil.WriteInternalError(w, "Failed to save avatar")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, upload)
}
