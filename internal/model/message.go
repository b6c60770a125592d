package model

import (
	"errors"
	"time"
)

// Message is a direct message between two friends. Immutable once created.
type Message struct {
	ID         int64     `db:"id" json:"id"`
	SenderID   int64     `db:"sender_id" json:"sender_id"`
	ReceiverID int64     `db:"receiver_id" json:"receiver_id"`
	Content    string    `db:"content" json:"content"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`

	// SenderName is joined for chat history responses.
	SenderName string `db:"sender_name" json:"sender_name,omitempty"`
}

// SendMessageRequest is the request body for POST /messages.
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id"`
	Content    string `json:"content"`
}

// Conversation is the full message history between two users, ascending by
// timestamp regardless of direction.
type Conversation struct {
	Participants [2]int64  `json:"chat_participants"`
	Messages     []Message `json:"messages"`
}

var (
	// ErrNotFriends is returned when messaging a user without an accepted friendship
	ErrNotFriends = errors.New("you can only message a friend")
)
