package service

import (
	"context"
	"strings"

	"socialnet/internal/model"
	"socialnet/internal/repository"
)

type GroupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// Create makes a group owned by the caller and seeds its roster. Initial
// member ids are validated up front; an unknown id fails the whole request
// before any row is written.
func (s *GroupService) Create(ctx context.Context, ownerID int64, req model.CreateGroupRequest) (*model.Group, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.ErrEmptyContent
	}

	ok, err := s.userRepo.AllExist(ctx, req.MemberIDs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrMemberNotFound
	}

	group := &model.Group{
		Name:    name,
		OwnerID: ownerID,
	}
	if err := s.groupRepo.Create(ctx, group, req.MemberIDs); err != nil {
		return nil, err
	}
	return group, nil
}

// AddMember is owner-only; admins get no override on group operations.
func (s *GroupService) AddMember(ctx context.Context, actorID, groupID, newMemberID int64) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.OwnerID != actorID {
		return model.ErrNotGroupOwner
	}

	exists, err := s.userRepo.ExistsByID(ctx, newMemberID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrUserNotFound
	}

	return s.groupRepo.AddMember(ctx, groupID, newMemberID)
}

func (s *GroupService) RemoveMember(ctx context.Context, actorID, groupID, memberID int64) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.OwnerID != actorID {
		return model.ErrNotGroupOwner
	}

	return s.groupRepo.RemoveMember(ctx, groupID, memberID)
}

// Delete removes the group and cascades its membership roster.
func (s *GroupService) Delete(ctx context.Context, actorID, groupID int64) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.OwnerID != actorID {
		return model.ErrNotGroupOwner
	}

	return s.groupRepo.Delete(ctx, groupID)
}
