package service

import (
	"context"
	"strings"

	"socialnet/internal/authz"
	"socialnet/internal/model"
	"socialnet/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	resolver *authz.Resolver
}

func NewPostService(postRepo repository.PostRepository, resolver *authz.Resolver) *PostService {
	return &PostService{
		postRepo: postRepo,
		resolver: resolver,
	}
}

// Create validates the request and inserts the post with its tags. The
// group-id requirement is checked before anything touches the store.
func (s *PostService) Create(ctx context.Context, userID int64, req model.CreatePostRequest) (*model.Post, error) {
	if !req.PostType.Valid() {
		return nil, model.ErrInvalidPostType
	}
	if !req.Visibility.Valid() {
		return nil, model.ErrInvalidVisibility
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, model.ErrEmptyContent
	}
	if req.Visibility == model.VisibilityGroup && req.GroupID == nil {
		return nil, model.ErrGroupIDRequired
	}

	post := &model.Post{
		UserID:     userID,
		PostType:   req.PostType,
		Content:    req.Content,
		Visibility: req.Visibility,
		GroupID:    req.GroupID,
	}
	if err := s.postRepo.Create(ctx, post, req.Tags); err != nil {
		return nil, err
	}
	return post, nil
}

// Get loads a post and runs the visibility resolver for the viewer. On allow
// the post is returned with tags and like count attached.
func (s *PostService) Get(ctx context.Context, viewer *authz.Viewer, postID int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.resolver.CanView(ctx, viewer, capability(post)); err != nil {
		return nil, err
	}

	tags, err := s.postRepo.GetTags(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Tags = tags

	count, err := s.postRepo.LikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.LikeCount = count

	return post, nil
}

// Update edits content and/or visibility. Author only: the admin override
// applies to delete, never to edit.
func (s *PostService) Update(ctx context.Context, actor authz.Viewer, postID int64, req model.UpdatePostRequest) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !authz.CanEdit(actor, post.UserID) {
		return model.ErrNotPostAuthor
	}

	if req.Visibility != nil {
		if !req.Visibility.Valid() {
			return model.ErrInvalidVisibility
		}
		// Flipping to group visibility needs an existing group binding;
		// update cannot add one.
		if *req.Visibility == model.VisibilityGroup && post.GroupID == nil {
			return model.ErrGroupIDRequired
		}
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return model.ErrEmptyContent
	}

	return s.postRepo.Update(ctx, postID, req.Content, req.Visibility)
}

// Delete removes a post. Author or admin.
func (s *PostService) Delete(ctx context.Context, actor authz.Viewer, postID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !authz.CanDelete(actor, post.UserID) {
		return model.ErrNotPostAuthor
	}
	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the caller's like on a post they are allowed to see.
func (s *PostService) ToggleLike(ctx context.Context, actor authz.Viewer, postID int64) (*model.LikeResult, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.CanView(ctx, &actor, capability(post)); err != nil {
		return nil, err
	}
	return s.postRepo.ToggleLike(ctx, postID, actor.ID)
}

// Comment adds a comment to a post the caller is allowed to see.
func (s *PostService) Comment(ctx context.Context, actor authz.Viewer, postID int64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.ErrEmptyContent
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.CanView(ctx, &actor, capability(post)); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  actor.ID,
		Content: content,
	}
	if err := s.postRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Comments lists a post's comments, gated by the post's visibility.
func (s *PostService) Comments(ctx context.Context, viewer *authz.Viewer, postID int64) ([]model.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.CanView(ctx, viewer, capability(post)); err != nil {
		return nil, err
	}
	return s.postRepo.GetComments(ctx, postID)
}

func capability(post *model.Post) authz.Content {
	return authz.Content{
		AuthorID:   post.UserID,
		Visibility: post.Visibility,
		GroupID:    post.GroupID,
	}
}
