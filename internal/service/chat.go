package service

import (
	"context"
	"strings"

	"socialnet/internal/model"
	"socialnet/internal/repository"
)

type ChatService struct {
	messageRepo repository.MessageRepository
	friendRepo  repository.FriendRepository
	userRepo    repository.UserRepository
}

func NewChatService(
	messageRepo repository.MessageRepository,
	friendRepo repository.FriendRepository,
	userRepo repository.UserRepository,
) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
		friendRepo:  friendRepo,
		userRepo:    userRepo,
	}
}

// Send delivers a message to an accepted friend. Messages are immutable once
// written.
func (s *ChatService) Send(ctx context.Context, senderID, receiverID int64, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.ErrEmptyContent
	}

	exists, err := s.userRepo.ExistsByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	friends, err := s.friendRepo.AreFriends(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, model.ErrNotFriends
	}

	msg := &model.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Conversation returns the full history between the caller and another user,
// ascending by timestamp regardless of who sent what.
func (s *ChatService) Conversation(ctx context.Context, userID, otherID int64) (*model.Conversation, error) {
	exists, err := s.userRepo.ExistsByID(ctx, otherID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	messages, err := s.messageRepo.GetConversation(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}

	return &model.Conversation{
		Participants: [2]int64{userID, otherID},
		Messages:     messages,
	}, nil
}
