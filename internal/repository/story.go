package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialnet/internal/model"
)

type storyRepository struct {
	db *sqlx.DB
}

func NewStoryRepository(db *sqlx.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *model.Story) error {
	query := `
		INSERT INTO stories (user_id, content, visibility, group_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		story.UserID, story.Content, story.Visibility, story.GroupID).
		Scan(&story.ID, &story.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return model.ErrGroupNotFound
		}
		return fmt.Errorf("insert story: %w", err)
	}
	return nil
}

func (r *storyRepository) GetByID(ctx context.Context, storyID int64) (*model.Story, error) {
	var story model.Story
	err := r.db.GetContext(ctx, &story, `
		SELECT id, user_id, content, visibility, group_id, created_at
		FROM stories WHERE id = $1
	`, storyID)
	if err == sql.ErrNoRows {
		return nil, model.ErrStoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get story: %w", err)
	}
	return &story, nil
}

// ListSince applies the listing window only. Expired stories stay in the
// table and are still reachable by id.
func (r *storyRepository) ListSince(ctx context.Context, cutoff time.Time) ([]model.Story, error) {
	stories := []model.Story{}
	err := r.db.SelectContext(ctx, &stories, `
		SELECT id, user_id, content, visibility, group_id, created_at
		FROM stories
		WHERE created_at >= $1
		ORDER BY created_at DESC, id DESC
	`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	if len(stories) == 0 {
		return stories, nil
	}

	ids := make([]int64, len(stories))
	for i, s := range stories {
		ids[i] = s.ID
	}
	counts, err := r.reactionCountsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range stories {
		stories[i].Reactions = counts[stories[i].ID]
	}
	return stories, nil
}

func (r *storyRepository) Delete(ctx context.Context, storyID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stories WHERE id = $1`, storyID)
	if err != nil {
		return fmt.Errorf("delete story: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrStoryNotFound
	}
	return nil
}

// AddReaction inserts unconditionally: reactions are not deduplicated per
// user, only counted.
func (r *storyRepository) AddReaction(ctx context.Context, storyID, userID int64, emoji string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO story_reactions (story_id, user_id, emoji) VALUES ($1, $2, $3)
	`, storyID, userID, emoji)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return model.ErrStoryNotFound
		}
		return fmt.Errorf("insert reaction: %w", err)
	}
	return nil
}

func (r *storyRepository) ReactionCounts(ctx context.Context, storyID int64) (map[string]int, error) {
	counts, err := r.reactionCountsFor(ctx, []int64{storyID})
	if err != nil {
		return nil, err
	}
	if c, ok := counts[storyID]; ok {
		return c, nil
	}
	return map[string]int{}, nil
}

func (r *storyRepository) reactionCountsFor(ctx context.Context, storyIDs []int64) (map[int64]map[string]int, error) {
	type row struct {
		StoryID int64  `db:"story_id"`
		Emoji   string `db:"emoji"`
		Count   int    `db:"count"`
	}
	var rows []row
	err := r.db.SelectContext(ctx, &rows, `
		SELECT story_id, emoji, COUNT(*) AS count
		FROM story_reactions
		WHERE story_id = ANY($1)
		GROUP BY story_id, emoji
	`, pq.Array(storyIDs))
	if err != nil {
		return nil, fmt.Errorf("count reactions: %w", err)
	}

	result := make(map[int64]map[string]int)
	for _, r := range rows {
		if result[r.StoryID] == nil {
			result[r.StoryID] = make(map[string]int)
		}
		result[r.StoryID][r.Emoji] = r.Count
	}
	return result, nil
}
