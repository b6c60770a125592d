package handler

import (
	"encoding/json"
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

type StoryHandler struct {
	storyService *service.StoryService
}

func NewStoryHandler(storyService *service.StoryService) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
	}
}

// Create handles POST /stories
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	story, err := h.storyService.Create(r.Context(), viewer.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidVisibility):
			httputil.WriteValidation(w, "Visibility must be public, friends, or group")
		case errors.Is(err, model.ErrEmptyContent):
			httputil.WriteValidation(w, "Content must not be empty")
		case errors.Is(err, model.ErrGroupIDRequired):
			httputil.WriteValidation(w, "A group id is required for group visibility")
		case errors.Is(err, model.ErrGroupNotFound):
			httputil.WriteNotFound(w, "Group not found")
		default:
			log.Printf("[ERROR] Create story handler: user=%d err=%v", viewer.ID, err)
			httputil.WriteInternalError(w, "Failed to create story")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, story)
}

// List handles GET /stories. Anonymous callers get the public slice of the
// last 24 hours; authenticated callers get whatever the resolver lets through.
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.GetViewerFromContext(r.Context())

	stories, err := h.storyService.List(r.Context(), viewer)
	if err != nil {
		log.Printf("[ERROR] List stories handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to list stories")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"stories": stories})
}

// Get handles GET /stories/{id}. No 24-hour filter on direct fetches.
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.GetViewerFromContext(r.Context())

	storyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid story ID")
		return
	}

	story, err := h.storyService.Get(r.Context(), viewer, storyID)
	if err != nil {
		if errors.Is(err, model.ErrStoryNotFound) {
			httputil.WriteNotFound(w, "Story not found")
			return
		}
		writeViewError(w, err, "Get story handler")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, story)
}

// React handles POST /stories/{id}/reactions
func (h *StoryHandler) React(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	storyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid story ID")
		return
	}

	var req model.ReactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	err = h.storyService.React(r.Context(), viewer.ID, storyID, req.Emoji)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrStoryNotFound):
			httputil.WriteNotFound(w, "Story not found")
		case errors.Is(err, model.ErrEmptyEmoji):
			httputil.WriteValidation(w, "Emoji must not be empty")
		default:
			log.Printf("[ERROR] React handler: user=%d story=%d err=%v", viewer.ID, storyID, err)
			httputil.WriteInternalError(w, "Failed to add reaction")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Reaction added",
	})
}

// Delete handles DELETE /stories/{id}. Works on expired stories too.
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	storyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid story ID")
		return
	}

	err = h.storyService.Delete(r.Context(), *viewer, storyID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrStoryNotFound):
			httputil.WriteNotFound(w, "Story not found")
		case errors.Is(err, model.ErrNotStoryAuthor):
			httputil.WriteForbidden(w, "Only the author or an admin can delete this story")
		default:
			log.Printf("[ERROR] Delete story handler: user=%d story=%d err=%v", viewer.ID, storyID, err)
			httputil.WriteInternalError(w, "Failed to delete story")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Story deleted successfully",
	})
}
