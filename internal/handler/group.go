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

type GroupHandler struct {
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// Create handles POST /groups
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	group, err := h.groupService.Create(r.Context(), viewer.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyContent):
			httputil.WriteValidation(w, "Group name must not be empty")
		case errors.Is(err, model.ErrMemberNotFound):
			httputil.WriteNotFound(w, "One or more member ids do not exist")
		default:
			log.Printf("[ERROR] Create group handler: owner=%d err=%v", viewer.ID, err)
			httputil.WriteInternalError(w, "Failed to create group")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, group)
}

// AddMember handles POST /groups/{id}/members
func (h *GroupHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	groupID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid group ID")
		return
	}

	var req model.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	err = h.groupService.AddMember(r.Context(), viewer.ID, groupID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrGroupNotFound):
			httputil.WriteNotFound(w, "Group not found")
		case errors.Is(err, model.ErrUserNotFound), errors.Is(err, model.ErrMemberNotFound):
			httputil.WriteNotFound(w, "User to add not found")
		case errors.Is(err, model.ErrNotGroupOwner):
			httputil.WriteForbidden(w, "Only the group owner can add members")
		case errors.Is(err, model.ErrAlreadyMember):
			httputil.WriteConflict(w, "User is already in the group")
		default:
			log.Printf("[ERROR] Add member handler: actor=%d group=%d user=%d err=%v",
				viewer.ID, groupID, req.UserID, err)
			httputil.WriteInternalError(w, "Failed to add member")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "User added to group successfully",
	})
}

// RemoveMember handles DELETE /groups/{id}/members/{userID}
func (h *GroupHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	groupID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid group ID")
		return
	}
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	err = h.groupService.RemoveMember(r.Context(), viewer.ID, groupID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrGroupNotFound):
			httputil.WriteNotFound(w, "Group not found")
		case errors.Is(err, model.ErrNotGroupOwner):
			httputil.WriteForbidden(w, "Only the group owner can remove members")
		case errors.Is(err, model.ErrNotMember):
			httputil.WriteNotFound(w, "User is not a member of this group")
		default:
			log.Printf("[ERROR] Remove member handler: actor=%d group=%d user=%d err=%v",
				viewer.ID, groupID, userID, err)
			httputil.WriteInternalError(w, "Failed to remove member")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Member removed from group successfully",
	})
}

// Delete handles DELETE /groups/{id}
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewerFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	groupID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid group ID")
		return
	}

	err = h.groupService.Delete(r.Context(), viewer.ID, groupID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrGroupNotFound):
			httputil.WriteNotFound(w, "Group not found")
		case errors.Is(err, model.ErrNotGroupOwner):
			httputil.WriteForbidden(w, "Only the group owner can delete the group")
		default:
			log.Printf("[ERROR] Delete group handler: actor=%d group=%d err=%v", viewer.ID, groupID, err)
			httputil.WriteInternalError(w, "Failed to delete group")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Group deleted successfully",
	})
}
