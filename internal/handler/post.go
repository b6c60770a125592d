package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"socialnet/internal/authz"
	"socialnet/internal/httputil"
	"socialnet/internal/model"
	"socialnet/internal/service"
	"socialnet/internal/transport/http/middleware"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// writeViewError maps a visibility resolver failure onto the wire. A Denied
// is the caller's problem (403); a missing group ref is ours (500).
func writeViewError(w http.ResponseWriter, err error, logPrefix string) {
	var denied *authz.Denied
	switch {
	case errors.As(err, &denied):
		httputil.WriteForbidden(w, denied.Reason)
	case errors.Is(err, authz.ErrMissingGroupRef):
		log.Printf("[ERROR] %s: %v", logPrefix, err)
		httputil.WriteInternalError(w, "Content is misconfigured")
	default:
		log.Printf("[ERROR] %s: %v", logPrefix, err)
		httputil.WriteInternalError(w, "Something went wrong")
	}
}

// Create handles POST /posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	post, err := h.postService.Create(r.Context(), viewer.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidPostType):
			httputil.WriteValidation(w, "Post type must be text or picture")
		case errors.Is(err, model.ErrInvalidVisibility):
			httputil.WriteValidation(w, "Visibility must be public, friends, or group")
		case errors.Is(err, model.ErrEmptyContent):
			httputil.WriteValidation(w, "Content must not be empty")
		case errors.Is(err, model.ErrGroupIDRequired):
			httputil.WriteValidation(w, "A group id is required for group visibility")
		case errors.Is(err, model.ErrGroupNotFound):
			httputil.WriteNotFound(w, "Group not found")
		default:
			log.Printf("[ERROR] Create post handler: user=%d err=%v", viewer.ID, err)
			httputil.WriteInternalError(w, "Failed to create post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, post)
}

// Get handles GET /posts/{id}. Works for anonymous callers; the resolver
// decides what they may see.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.GetViewerFromContext(r.Context())

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	post, err := h.postService.Get(r.Context(), viewer, postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		writeViewError(w, err, "Get post handler")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}

// Update handles PUT /posts/{id}
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	var req model.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	err = h.postService.Update(r.Context(), *viewer, postID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrNotPostAuthor):
			httputil.WriteForbidden(w, "Only the author can edit this post")
		case errors.Is(err, model.ErrInvalidVisibility):
			httputil.WriteValidation(w, "Visibility must be public, friends, or group")
		case errors.Is(err, model.ErrGroupIDRequired):
			httputil.WriteValidation(w, "Post has no group; cannot switch to group visibility")
		case errors.Is(err, model.ErrEmptyContent):
			httputil.WriteValidation(w, "Content must not be empty")
		default:
			log.Printf("[ERROR] Update post handler: user=%d post=%d err=%v", viewer.ID, postID, err)
			httputil.WriteInternalError(w, "Failed to update post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Post updated successfully",
	})
}

// Delete handles DELETE /posts/{id}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	err = h.postService.Delete(r.Context(), *viewer, postID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrNotPostAuthor):
			httputil.WriteForbidden(w, "Only the author or an admin can delete this post")
		default:
			log.Printf("[ERROR] Delete post handler: user=%d post=%d err=%v", viewer.ID, postID, err)
			httputil.WriteInternalError(w, "Failed to delete post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Post deleted successfully",
	})
}

// ToggleLike handles POST /posts/{id}/like
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	result, err := h.postService.ToggleLike(r.Context(), *viewer, postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		writeViewError(w, err, "Toggle like handler")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// CreateComment handles POST /posts/{id}/comments
func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	comment, err := h.postService.Comment(r.Context(), *viewer, postID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrEmptyContent):
			httputil.WriteValidation(w, "Comment must not be empty")
		default:
			writeViewError(w, err, "Create comment handler")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, comment)
}

// ListComments handles GET /posts/{id}/comments. Gated by the post's own
// visibility, so anonymous callers can read comments on public posts only.
func (h *PostHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.GetViewerFromContext(r.Context())

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	comments, err := h.postService.Comments(r.Context(), viewer, postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		writeViewError(w, err, "List comments handler")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
}
