package model

import (
	"errors"
	"time"
)

// Visibility is the access tier of a content item.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityGroup   Visibility = "group"
)

// Valid reports whether the visibility is one of the three known tiers.
// Anything else is rejected at creation time; the resolver treats unknown
// values as unreachable.
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityFriends || v == VisibilityGroup
}

// PostType distinguishes text posts from picture posts.
type PostType string

const (
	PostText    PostType = "text"
	PostPicture PostType = "picture"
)

func (t PostType) Valid() bool {
	return t == PostText || t == PostPicture
}

// Post is a content item with an access tier and optional group binding.
type Post struct {
	ID         int64      `db:"id" json:"id"`
	UserID     int64      `db:"user_id" json:"user_id"`
	PostType   PostType   `db:"post_type" json:"post_type"`
	Content    string     `db:"content" json:"content"`
	Visibility Visibility `db:"visibility" json:"visibility"`
	GroupID    *int64     `db:"group_id" json:"group_id"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`

	// Joined fields (not in posts table)
	Tags      []string `json:"tags,omitempty"`
	LikeCount int      `json:"like_count"`
}

// Comment is a user's comment on a post.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"-"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreatePostRequest is the request body for POST /posts.
type CreatePostRequest struct {
	PostType   PostType   `json:"post_type"`
	Content    string     `json:"content"`
	Visibility Visibility `json:"visibility"`
	GroupID    *int64     `json:"group_id"`
	Tags       []string   `json:"tags"`
}

// UpdatePostRequest is the request body for PUT /posts/{id}. Nil fields are
// left unchanged.
type UpdatePostRequest struct {
	Content    *string     `json:"content"`
	Visibility *Visibility `json:"visibility"`
}

// CreateCommentRequest is the request body for POST /posts/{id}/comments.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

var (
	// ErrPostNotFound is returned when a post cannot be found
	ErrPostNotFound = errors.New("post not found")

	// ErrNotPostAuthor is returned when a non-author attempts an author-only action
	ErrNotPostAuthor = errors.New("not the author of this post")

	// ErrGroupIDRequired is returned when visibility is group but no group id is given
	ErrGroupIDRequired = errors.New("group id is required for group visibility")

	// ErrInvalidVisibility is returned when the visibility value is unknown
	ErrInvalidVisibility = errors.New("invalid visibility")

	// ErrInvalidPostType is returned when the post type is unknown
	ErrInvalidPostType = errors.New("invalid post type")

	// ErrEmptyContent is returned when a post or comment body is empty
	ErrEmptyContent = errors.New("content must not be empty")
)
