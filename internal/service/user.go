package service

import (
	"context"

	"socialnet/internal/authz"
	"socialnet/internal/model"
	"socialnet/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Get returns the full user row for the account holder's own views.
func (s *UserService) Get(ctx context.Context, userID int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// GetProfile returns a user's public shape.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*model.UserSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.UserSummary{
		ID:        user.ID,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}, nil
}

// Delete removes an account. Only the account holder or an admin may; the
// store cascades relationships, content, memberships, and messages.
func (s *UserService) Delete(ctx context.Context, actor authz.Viewer, userID int64) error {
	if !authz.CanDelete(actor, userID) {
		return model.ErrForbidden
	}
	return s.userRepo.Delete(ctx, userID)
}

// SetAvatar records an uploaded avatar's URL and storage key on the user row.
func (s *UserService) SetAvatar(ctx context.Context, userID int64, upload *model.UploadResult) error {
	return s.userRepo.SetAvatar(ctx, userID, upload.URL, upload.Key)
}
