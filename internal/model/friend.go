package model

import (
	"errors"
	"time"
)

// FriendStatus is the state of a directed friend edge.
type FriendStatus string

const (
	FriendPending  FriendStatus = "pending"
	FriendAccepted FriendStatus = "accepted"
)

// FriendEdge is a single directed request edge. A friendship is one edge with
// status accepted; existence checks query both directions.
type FriendEdge struct {
	RequesterID int64        `db:"requester_id" json:"requester_id"`
	ReceiverID  int64        `db:"receiver_id" json:"receiver_id"`
	Status      FriendStatus `db:"status" json:"status"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}

// FriendRequestAction is the receiver's response to a pending request.
type FriendRequestAction string

const (
	FriendActionAccept  FriendRequestAction = "accept"
	FriendActionDecline FriendRequestAction = "decline"
)

// SendFriendRequest is the request body for POST /friends/requests.
type SendFriendRequest struct {
	ReceiverID int64 `json:"receiver_id"`
}

// RespondFriendRequest is the request body for responding to a pending request.
type RespondFriendRequest struct {
	Action FriendRequestAction `json:"action"`
}

var (
	// ErrNoPendingRequest is returned when accepting/declining a request that is not pending
	ErrNoPendingRequest = errors.New("no pending friend request found")

	// ErrFriendshipNotFound is returned when unfriending users who are not related
	ErrFriendshipNotFound = errors.New("friendship not found")

	// ErrSelfFriendRequest is returned when a user sends a request to themselves
	ErrSelfFriendRequest = errors.New("cannot send a friend request to yourself")

	// ErrInvalidFriendAction is returned for an action other than accept/decline
	ErrInvalidFriendAction = errors.New("invalid friend request action")
)
