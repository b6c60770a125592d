package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialnet/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and its tags in a transaction. Tags are upserted by
// content so the same tag text is shared across posts.
func (r *postRepository) Create(ctx context.Context, post *model.Post, tags []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (user_id, post_type, content, visibility, group_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRowxContext(ctx, query,
		post.UserID, post.PostType, post.Content, post.Visibility, post.GroupID).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return model.ErrGroupNotFound
		}
		return fmt.Errorf("insert post: %w", err)
	}

	for _, tag := range tags {
		var tagID int64
		err = tx.QueryRowxContext(ctx, `
			INSERT INTO tags (content) VALUES ($1)
			ON CONFLICT (content) DO UPDATE SET content = EXCLUDED.content
			RETURNING id
		`, tag).Scan(&tagID)
		if err != nil {
			return fmt.Errorf("upsert tag %q: %w", tag, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, post.ID, tagID)
		if err != nil {
			return fmt.Errorf("link tag %q: %w", tag, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	post.Tags = tags
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	var post model.Post
	err := r.db.GetContext(ctx, &post, `
		SELECT id, user_id, post_type, content, visibility, group_id, created_at, updated_at
		FROM posts WHERE id = $1
	`, postID)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

// Update applies partial changes; nil fields are left untouched.
func (r *postRepository) Update(ctx context.Context, postID int64, content *string, visibility *model.Visibility) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE posts
		SET content    = COALESCE($1, content),
		    visibility = COALESCE($2, visibility),
		    updated_at = NOW()
		WHERE id = $3
	`, content, visibility, postID)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) GetTags(ctx context.Context, postID int64) ([]string, error) {
	tags := []string{}
	err := r.db.SelectContext(ctx, &tags, `
		SELECT t.content
		FROM tags t
		JOIN post_tags pt ON t.id = pt.tag_id
		WHERE pt.post_id = $1
		ORDER BY t.content
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	return tags, nil
}

// ToggleLike is a read-then-write pair of independent statements, not an
// isolated transaction. A concurrent double toggle can produce an extra
// insert or delete, which is acceptable: counts are recomputed from rows.
func (r *postRepository) ToggleLike(ctx context.Context, postID, userID int64) (*model.LikeResult, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2
	`, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("delete like: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("get rows affected: %w", err)
	}

	liked := false
	if deleted == 0 {
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, postID, userID)
		if err != nil {
			return nil, fmt.Errorf("insert like: %w", err)
		}
		liked = true
	}

	count, err := r.LikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &model.LikeResult{Liked: liked, LikeCount: count}, nil
}

func (r *postRepository) LikeCount(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM post_likes WHERE post_id = $1
	`, postID)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

func (r *postRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (user_id, post_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, comment.UserID, comment.PostID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *postRepository) GetComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	comments := []model.Comment{}
	err := r.db.SelectContext(ctx, &comments, `
		SELECT id, user_id, post_id, content, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC, id ASC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}
	return comments, nil
}
