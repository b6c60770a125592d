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

type FriendHandler struct {
	friendService *service.FriendService
}

func NewFriendHandler(friendService *service.FriendService) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
	}
}

// SendRequest handles POST /friends/requests
// A duplicate send is a benign 200, never an error.
func (h *FriendHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.SendFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	outcome, err := h.friendService.SendRequest(r.Context(), viewer.ID, req.ReceiverID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSelfFriendRequest):
			httputil.WriteValidation(w, "Cannot send a friend request to yourself")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "Receiver not found")
		default:
			log.Printf("[ERROR] Send friend request handler: requester=%d receiver=%d err=%v",
				viewer.ID, req.ReceiverID, err)
			httputil.WriteInternalError(w, "Failed to send friend request")
		}
		return
	}

	message := "Friend request sent successfully"
	if !outcome.Created {
		message = "Friend request already sent or you are already friends"
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}

// Respond handles POST /friends/requests/{requesterID}/respond
// Only the receiver of the pending request can act on it.
func (h *FriendHandler) Respond(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	requesterID, err := strconv.ParseInt(chi.URLParam(r, "requesterID"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid requester ID")
		return
	}

	var req model.RespondFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	err = h.friendService.Respond(r.Context(), viewer.ID, requesterID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoPendingRequest):
			httputil.WriteNotFound(w, "No pending friend request found")
		case errors.Is(err, model.ErrInvalidFriendAction):
			httputil.WriteBadRequest(w, "Action must be accept or decline")
		default:
			log.Printf("[ERROR] Respond friend request handler: receiver=%d requester=%d err=%v",
				viewer.ID, requesterID, err)
			httputil.WriteInternalError(w, "Failed to respond to friend request")
		}
		return
	}

	message := "Friend request accepted"
	if req.Action == model.FriendActionDecline {
		message = "Friend request declined"
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}

// List handles GET /friends
func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	friends, err := h.friendService.ListFriends(r.Context(), viewer.ID)
	if err != nil {
		log.Printf("[ERROR] List friends handler: user=%d err=%v", viewer.ID, err)
		httputil.WriteInternalError(w, "Failed to list friends")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"friends": friends})
}

// Unfriend handles DELETE /friends/{userID}
func (h *FriendHandler) Unfriend(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	friendID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	err = h.friendService.Unfriend(r.Context(), viewer.ID, friendID)
	if err != nil {
		if errors.Is(err, model.ErrFriendshipNotFound) {
			httputil.WriteNotFound(w, "Friendship not found")
			return
		}
		log.Printf("[ERROR] Unfriend handler: user=%d friend=%d err=%v", viewer.ID, friendID, err)
		httputil.WriteInternalError(w, "Failed to remove friend")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Friend removed successfully",
	})
}
