package repository

import (
	"context"
	"time"

	"socialnet/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByName(ctx context.Context, name string) (*model.User, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	AdminExists(ctx context.Context) (bool, error)
	AllExist(ctx context.Context, ids []int64) (bool, error)
	SetAvatar(ctx context.Context, userID int64, url, key string) error
	Delete(ctx context.Context, id int64) error
}

type FriendRepository interface {
	// CreateRequest inserts a pending edge. Returns false without error when
	// an edge for the ordered pair already exists (idempotent send).
	CreateRequest(ctx context.Context, requesterID, receiverID int64) (bool, error)
	// Accept flips a pending edge to accepted. Zero rows means no pending request.
	Accept(ctx context.Context, requesterID, receiverID int64) error
	// Decline deletes a pending edge. Zero rows means no pending request.
	Decline(ctx context.Context, requesterID, receiverID int64) error
	// DeleteBetween removes any edge between the two users, either direction.
	DeleteBetween(ctx context.Context, a, b int64) error
	// AreFriends is symmetric: an accepted edge in either direction counts.
	AreFriends(ctx context.Context, a, b int64) (bool, error)
	ListFriends(ctx context.Context, userID int64) ([]model.UserSummary, error)
}

type GroupRepository interface {
	Create(ctx context.Context, group *model.Group, memberIDs []int64) error
	GetByID(ctx context.Context, id int64) (*model.Group, error)
	Delete(ctx context.Context, id int64) error
	AddMember(ctx context.Context, groupID, userID int64) error
	RemoveMember(ctx context.Context, groupID, userID int64) error
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post, tags []string) error
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	Update(ctx context.Context, postID int64, content *string, visibility *model.Visibility) error
	Delete(ctx context.Context, postID int64) error
	GetTags(ctx context.Context, postID int64) ([]string, error)
	// ToggleLike inserts a like if absent, deletes it if present. Returns the
	// resulting liked state and like count.
	ToggleLike(ctx context.Context, postID, userID int64) (*model.LikeResult, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComments(ctx context.Context, postID int64) ([]model.Comment, error)
	LikeCount(ctx context.Context, postID int64) (int, error)
}

type StoryRepository interface {
	Create(ctx context.Context, story *model.Story) error
	GetByID(ctx context.Context, storyID int64) (*model.Story, error)
	// ListSince returns stories created at or after the cutoff, newest first,
	// with reaction counts attached. Visibility filtering happens in the
	// service via the resolver.
	ListSince(ctx context.Context, cutoff time.Time) ([]model.Story, error)
	Delete(ctx context.Context, storyID int64) error
	AddReaction(ctx context.Context, storyID, userID int64, emoji string) error
	ReactionCounts(ctx context.Context, storyID int64) (map[string]int, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	// GetConversation returns every message between the two users in strict
	// timestamp-ascending order, regardless of direction.
	GetConversation(ctx context.Context, a, b int64) ([]model.Message, error)
}
