package model

import (
	"errors"
	"time"
)

// Group is a membership roster owned by a single user. The owner is the sole
// authority for membership changes and deletion; admins get no override here.
type Group struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	OwnerID   int64     `db:"owner_id" json:"owner_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateGroupRequest is the request body for POST /groups.
type CreateGroupRequest struct {
	Name      string  `json:"name"`
	MemberIDs []int64 `json:"member_ids"`
}

// AddMemberRequest is the request body for POST /groups/{id}/members.
type AddMemberRequest struct {
	UserID int64 `json:"user_id"`
}

var (
	// ErrGroupNotFound is returned when a group cannot be found
	ErrGroupNotFound = errors.New("group not found")

	// ErrNotGroupOwner is returned when a non-owner attempts a membership change or deletion
	ErrNotGroupOwner = errors.New("only the group owner may do this")

	// ErrAlreadyMember is returned when adding a user who is already in the group
	ErrAlreadyMember = errors.New("user is already a member of this group")

	// ErrNotMember is returned when removing a user who is not in the group
	ErrNotMember = errors.New("user is not a member of this group")

	// ErrMemberNotFound is returned when an initial or added member id does not exist
	ErrMemberNotFound = errors.New("member user not found")
)
