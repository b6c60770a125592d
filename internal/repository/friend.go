package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialnet/internal/model"
)

type friendRepository struct {
	db *sqlx.DB
}

func NewFriendRepository(db *sqlx.DB) FriendRepository {
	return &friendRepository{db: db}
}

// CreateRequest inserts a pending edge for the ordered pair. The primary key
// on (requester_id, receiver_id) is the idempotency guard: a duplicate insert
// reports (false, nil) so the caller can answer with a benign "already sent".
func (r *friendRepository) CreateRequest(ctx context.Context, requesterID, receiverID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO friends (requester_id, receiver_id, status)
		VALUES ($1, $2, 'pending')
		ON CONFLICT (requester_id, receiver_id) DO NOTHING
	`, requesterID, receiverID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return false, model.ErrUserNotFound
		}
		return false, fmt.Errorf("insert friend request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	return rows > 0, nil
}

// Accept flips the pending edge (requester -> receiver) to accepted.
func (r *friendRepository) Accept(ctx context.Context, requesterID, receiverID int64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE friends SET status = 'accepted'
		WHERE requester_id = $1 AND receiver_id = $2 AND status = 'pending'
	`, requesterID, receiverID)
	if err != nil {
		return fmt.Errorf("accept friend request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNoPendingRequest
	}
	return nil
}

// Decline deletes the pending edge, returning the pair to the "none" state.
func (r *friendRepository) Decline(ctx context.Context, requesterID, receiverID int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM friends
		WHERE requester_id = $1 AND receiver_id = $2 AND status = 'pending'
	`, requesterID, receiverID)
	if err != nil {
		return fmt.Errorf("decline friend request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNoPendingRequest
	}
	return nil
}

// DeleteBetween removes whatever edge exists between the two users, in either
// direction. Used by unfriend.
func (r *friendRepository) DeleteBetween(ctx context.Context, a, b int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM friends
		WHERE (requester_id = $1 AND receiver_id = $2)
		   OR (requester_id = $2 AND receiver_id = $1)
	`, a, b)
	if err != nil {
		return fmt.Errorf("delete friendship: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrFriendshipNotFound
	}
	return nil
}

// AreFriends is symmetric by construction: one accepted edge in either
// direction makes the pair friends.
func (r *friendRepository) AreFriends(ctx context.Context, a, b int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM friends
			WHERE ((requester_id = $1 AND receiver_id = $2)
			    OR (requester_id = $2 AND receiver_id = $1))
			  AND status = 'accepted'
		)
	`, a, b)
	if err != nil {
		return false, fmt.Errorf("check friendship: %w", err)
	}
	return exists, nil
}

// ListFriends collapses accepted edges from both directions into a single
// user list.
func (r *friendRepository) ListFriends(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	friends := []model.UserSummary{}
	err := r.db.SelectContext(ctx, &friends, `
		SELECT u.id, u.name, u.avatar_url
		FROM users u
		JOIN friends f ON (u.id = f.requester_id OR u.id = f.receiver_id)
		WHERE (f.requester_id = $1 OR f.receiver_id = $1)
		  AND f.status = 'accepted'
		  AND u.id <> $1
		ORDER BY u.name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	return friends, nil
}
