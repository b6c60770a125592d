package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialnet/internal/model"
)

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) GroupRepository {
	return &groupRepository{db: db}
}

// Create inserts the group and its initial roster in one transaction so a bad
// member id leaves nothing behind.
func (r *groupRepository) Create(ctx context.Context, group *model.Group, memberIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO groups (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err = tx.QueryRowxContext(ctx, query, group.Name, group.OwnerID).
		Scan(&group.ID, &group.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert group: %w", err)
	}

	for _, memberID := range memberIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)
			ON CONFLICT (group_id, user_id) DO NOTHING
		`, group.ID, memberID)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
				return model.ErrMemberNotFound
			}
			return fmt.Errorf("insert membership %d: %w", memberID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *groupRepository) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	var group model.Group
	err := r.db.GetContext(ctx, &group, `
		SELECT id, name, owner_id, created_at FROM groups WHERE id = $1
	`, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &group, nil
}

// Delete removes the group; membership rows and group-bound content cascade.
func (r *groupRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrGroupNotFound
	}
	return nil
}

// AddMember inserts a membership row. The composite primary key reports a
// duplicate as ErrAlreadyMember.
func (r *groupRepository) AddMember(ctx context.Context, groupID, userID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)
	`, groupID, userID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return model.ErrAlreadyMember
			case "23503":
				return model.ErrMemberNotFound
			}
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM group_members WHERE group_id = $1 AND user_id = $2
	`, groupID, userID)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotMember
	}
	return nil
}

func (r *groupRepository) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)
	`, groupID, userID)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return exists, nil
}
