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

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Send handles POST /messages. Friendship-gated; strangers get a 403.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	msg, err := h.chatService.Send(r.Context(), viewer.ID, req.ReceiverID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyContent):
			httputil.WriteValidation(w, "Message must not be empty")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "Receiver not found")
		case errors.Is(err, model.ErrNotFriends):
			httputil.WriteForbidden(w, "You can only message your friends")
		default:
			log.Printf("[ERROR] Send message handler: sender=%d receiver=%d err=%v",
				viewer.ID, req.ReceiverID, err)
			httputil.WriteInternalError(w, "Failed to send message")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, msg)
}

// Conversation handles GET /messages/{userID}. Returns the full history in
// timestamp order, oldest first.
func (h *ChatHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	otherID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	conversation, err := h.chatService.Conversation(r.Context(), viewer.ID, otherID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		log.Printf("[ERROR] Conversation handler: user=%d other=%d err=%v", viewer.ID, otherID, err)
		httputil.WriteInternalError(w, "Failed to load conversation")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, conversation)
}
