package model

import (
	"errors"
	"time"
)

// StoryLifetime is the listing window for stories. Older stories stay in the
// store and remain reachable by id; only the listing endpoint filters them.
const StoryLifetime = 24 * time.Hour

// Story is structurally a post without a type, plus a creation timestamp that
// drives the listing window.
type Story struct {
	ID         int64      `db:"id" json:"id"`
	UserID     int64      `db:"user_id" json:"user_id"`
	Content    string     `db:"content" json:"content"`
	Visibility Visibility `db:"visibility" json:"visibility"`
	GroupID    *int64     `db:"group_id" json:"group_id"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`

	// Reactions maps emoji to aggregated count. Populated by the listing and
	// single-story queries, not stored on the stories table.
	Reactions map[string]int `json:"reactions,omitempty"`
}

// CreateStoryRequest is the request body for POST /stories.
type CreateStoryRequest struct {
	Content    string     `json:"content"`
	Visibility Visibility `json:"visibility"`
	GroupID    *int64     `json:"group_id"`
}

// ReactRequest is the request body for POST /stories/{id}/reactions.
// Reactions are intentionally not deduplicated per user.
type ReactRequest struct {
	Emoji string `json:"emoji"`
}

var (
	// ErrStoryNotFound is returned when a story cannot be found
	ErrStoryNotFound = errors.New("story not found")

	// ErrNotStoryAuthor is returned when a non-author, non-admin deletes a story
	ErrNotStoryAuthor = errors.New("not the author of this story")

	// ErrEmptyEmoji is returned when a reaction has no emoji
	ErrEmptyEmoji = errors.New("emoji must not be empty")
)
