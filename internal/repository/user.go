package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialnet/internal/model"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. The partial unique index on role turns a second
// admin registration into a unique violation, reported as ErrAdminExists.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (name, password_hashed, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, user.Name, user.PasswordHashed, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "users_single_admin" {
				return model.ErrAdminExists
			}
			return model.ErrNameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, password_hashed, role, avatar_url, avatar_key, created_at
		FROM users WHERE id = $1
	`, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, password_hashed, role, avatar_url, avatar_key, created_at
		FROM users WHERE name = $1
	`, name)
	if err == sql.ErrNoRows {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by name: %w", err)
	}
	return &user, nil
}

func (r *userRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE name = $1)`, name)
	if err != nil {
		return false, fmt.Errorf("check user name exists: %w", err)
	}
	return exists, nil
}

func (r *userRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

func (r *userRepository) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE role = 'admin')`)
	if err != nil {
		return false, fmt.Errorf("check admin exists: %w", err)
	}
	return exists, nil
}

// AllExist reports whether every id in the slice names an existing user.
func (r *userRepository) AllExist(ctx context.Context, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(DISTINCT id) FROM users WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return false, fmt.Errorf("check users exist: %w", err)
	}

	distinct := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}
	return count == len(distinct), nil
}

func (r *userRepository) SetAvatar(ctx context.Context, userID int64, url, key string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET avatar_url = $1, avatar_key = $2 WHERE id = $3`, url, key, userID)
	if err != nil {
		return fmt.Errorf("set avatar: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// Delete removes the user row; foreign keys cascade the deletion through
// edges, memberships, content, and messages.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
