package service

import (
	"context"

	"socialnet/internal/model"
	"socialnet/internal/repository"
)

// SendRequestOutcome tells the handler whether a send actually created an
// edge or hit the idempotent no-op path.
type SendRequestOutcome struct {
	Created bool
}

type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// SendRequest creates a pending edge from requester to receiver. A duplicate
// for the same ordered pair, pending or already accepted, is a benign no-op
// so clients can retry freely.
func (s *FriendService) SendRequest(ctx context.Context, requesterID, receiverID int64) (*SendRequestOutcome, error) {
	if requesterID == receiverID {
		return nil, model.ErrSelfFriendRequest
	}

	exists, err := s.userRepo.ExistsByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	created, err := s.friendRepo.CreateRequest(ctx, requesterID, receiverID)
	if err != nil {
		return nil, err
	}
	return &SendRequestOutcome{Created: created}, nil
}

// Respond handles the receiver's accept or decline of a pending request.
// Both act only on the (requester -> receiver) edge while it is pending.
func (s *FriendService) Respond(ctx context.Context, receiverID, requesterID int64, action model.FriendRequestAction) error {
	switch action {
	case model.FriendActionAccept:
		return s.friendRepo.Accept(ctx, requesterID, receiverID)
	case model.FriendActionDecline:
		return s.friendRepo.Decline(ctx, requesterID, receiverID)
	default:
		return model.ErrInvalidFriendAction
	}
}

// Unfriend removes the relation in whichever direction it was stored.
func (s *FriendService) Unfriend(ctx context.Context, userID, friendID int64) error {
	return s.friendRepo.DeleteBetween(ctx, userID, friendID)
}

func (s *FriendService) ListFriends(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	return s.friendRepo.ListFriends(ctx, userID)
}

// AreFriends is the symmetric friendship check shared by messaging and
// friends-only visibility.
func (s *FriendService) AreFriends(ctx context.Context, a, b int64) (bool, error) {
	return s.friendRepo.AreFriends(ctx, a, b)
}
