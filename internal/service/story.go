package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"socialnet/internal/authz"
	"socialnet/internal/model"
	"socialnet/internal/repository"
)

type StoryService struct {
	storyRepo repository.StoryRepository
	resolver  *authz.Resolver

	// now is swappable for the 24-hour window tests.
	now func() time.Time
}

func NewStoryService(storyRepo repository.StoryRepository, resolver *authz.Resolver) *StoryService {
	return &StoryService{
		storyRepo: storyRepo,
		resolver:  resolver,
		now:       time.Now,
	}
}

func (s *StoryService) Create(ctx context.Context, userID int64, req model.CreateStoryRequest) (*model.Story, error) {
	if !req.Visibility.Valid() {
		return nil, model.ErrInvalidVisibility
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, model.ErrEmptyContent
	}
	if req.Visibility == model.VisibilityGroup && req.GroupID == nil {
		return nil, model.ErrGroupIDRequired
	}

	story := &model.Story{
		UserID:     userID,
		Content:    req.Content,
		Visibility: req.Visibility,
		GroupID:    req.GroupID,
	}
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// List returns the viewer's story feed: only stories inside the 24-hour
// window, each filtered through the visibility resolver. The time filter
// applies to listing only; expired stories remain reachable by id.
func (s *StoryService) List(ctx context.Context, viewer *authz.Viewer) ([]model.Story, error) {
	cutoff := s.now().Add(-model.StoryLifetime)
	stories, err := s.storyRepo.ListSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	visible := []model.Story{}
	for _, story := range stories {
		err := s.resolver.CanView(ctx, viewer, storyCapability(&story))
		if err != nil {
			var denied *authz.Denied
			if errors.As(err, &denied) {
				continue
			}
			if errors.Is(err, authz.ErrMissingGroupRef) {
				// Corrupted row; skip it rather than failing the whole feed.
				continue
			}
			return nil, err
		}
		visible = append(visible, story)
	}
	return visible, nil
}

// Get fetches a single story with reaction counts. No time filter here.
func (s *StoryService) Get(ctx context.Context, viewer *authz.Viewer, storyID int64) (*model.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return nil, err
	}

	if err := s.resolver.CanView(ctx, viewer, storyCapability(story)); err != nil {
		return nil, err
	}

	counts, err := s.storyRepo.ReactionCounts(ctx, storyID)
	if err != nil {
		return nil, err
	}
	story.Reactions = counts
	return story, nil
}

// React appends a reaction. Deliberately unbounded per user; only aggregate
// counts ever leave the store.
func (s *StoryService) React(ctx context.Context, actorID, storyID int64, emoji string) error {
	if strings.TrimSpace(emoji) == "" {
		return model.ErrEmptyEmoji
	}

	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return err
	}
	return s.storyRepo.AddReaction(ctx, story.ID, actorID, emoji)
}

// Delete removes a story. Author or admin; works on expired stories too.
func (s *StoryService) Delete(ctx context.Context, actor authz.Viewer, storyID int64) error {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return err
	}
	if !authz.CanDelete(actor, story.UserID) {
		return model.ErrNotStoryAuthor
	}
	return s.storyRepo.Delete(ctx, storyID)
}

func storyCapability(story *model.Story) authz.Content {
	return authz.Content{
		AuthorID:   story.UserID,
		Visibility: story.Visibility,
		GroupID:    story.GroupID,
	}
}
