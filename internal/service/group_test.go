package service

import (
	"context"
	"errors"
	"testing"

	"socialnet/internal/model"
)

func TestGroupService_Create_Success(t *testing.T) {
	mockGroups := &mockGroupRepo{
		createFn: func(ctx context.Context, group *model.Group, memberIDs []int64) error {
			group.ID = 1
			if len(memberIDs) != 2 {
				t.Errorf("got %d member ids, want 2", len(memberIDs))
			}
			return nil
		},
	}
	svc := NewGroupService(mockGroups, &mockUserRepo{})

	group, err := svc.Create(context.Background(), 1, model.CreateGroupRequest{
		Name:      "  hiking crew  ",
		MemberIDs: []int64{2, 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if group.Name != "hiking crew" {
		t.Errorf("name = %q, want trimmed %q", group.Name, "hiking crew")
	}
	if group.OwnerID != 1 {
		t.Errorf("owner = %d, want 1", group.OwnerID)
	}
}

func TestGroupService_Create_UnknownMember(t *testing.T) {
	mockUsers := &mockUserRepo{
		allExistFn: func(ctx context.Context, ids []int64) (bool, error) {
			return false, nil
		},
	}
	mockGroups := &mockGroupRepo{}
	svc := NewGroupService(mockGroups, mockUsers)

	_, err := svc.Create(context.Background(), 1, model.CreateGroupRequest{
		Name:      "crew",
		MemberIDs: []int64{2, 99},
	})
	if !errors.Is(err, model.ErrMemberNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrMemberNotFound)
	}

	// An unknown member id must fail the whole request before any write.
	if mockGroups.createCalls != 0 {
		t.Error("Create should not be called when a member id is unknown")
	}
}

func TestGroupService_Create_EmptyName(t *testing.T) {
	svc := NewGroupService(&mockGroupRepo{}, &mockUserRepo{})

	_, err := svc.Create(context.Background(), 1, model.CreateGroupRequest{Name: "   "})
	if !errors.Is(err, model.ErrEmptyContent) {
		t.Errorf("error = %v, want %v", err, model.ErrEmptyContent)
	}
}

func TestGroupService_OwnerOnlyOperations(t *testing.T) {
	group := &model.Group{ID: 10, Name: "crew", OwnerID: 1}
	mockGroups := func() *mockGroupRepo {
		return &mockGroupRepo{
			getByIDFn: func(ctx context.Context, id int64) (*model.Group, error) {
				return group, nil
			},
		}
	}

	t.Run("non-owner cannot add members", func(t *testing.T) {
		svc := NewGroupService(mockGroups(), &mockUserRepo{})
		err := svc.AddMember(context.Background(), 2, 10, 3)
		if !errors.Is(err, model.ErrNotGroupOwner) {
			t.Errorf("error = %v, want %v", err, model.ErrNotGroupOwner)
		}
	})

	t.Run("non-owner cannot remove members", func(t *testing.T) {
		svc := NewGroupService(mockGroups(), &mockUserRepo{})
		err := svc.RemoveMember(context.Background(), 2, 10, 3)
		if !errors.Is(err, model.ErrNotGroupOwner) {
			t.Errorf("error = %v, want %v", err, model.ErrNotGroupOwner)
		}
	})

	t.Run("non-owner cannot delete the group", func(t *testing.T) {
		svc := NewGroupService(mockGroups(), &mockUserRepo{})
		err := svc.Delete(context.Background(), 2, 10)
		if !errors.Is(err, model.ErrNotGroupOwner) {
			t.Errorf("error = %v, want %v", err, model.ErrNotGroupOwner)
		}
	})

	t.Run("owner can add members", func(t *testing.T) {
		repo := mockGroups()
		svc := NewGroupService(repo, &mockUserRepo{})
		if err := svc.AddMember(context.Background(), 1, 10, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.addMemberCalls != 1 {
			t.Errorf("AddMember called %d times, want 1", repo.addMemberCalls)
		}
	})

	t.Run("owner can delete the group", func(t *testing.T) {
		repo := mockGroups()
		svc := NewGroupService(repo, &mockUserRepo{})
		if err := svc.Delete(context.Background(), 1, 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.deleteCalls != 1 {
			t.Errorf("Delete called %d times, want 1", repo.deleteCalls)
		}
	})
}

func TestGroupService_AddMember_GroupMissing(t *testing.T) {
	svc := NewGroupService(&mockGroupRepo{}, &mockUserRepo{})

	err := svc.AddMember(context.Background(), 1, 99, 3)
	if !errors.Is(err, model.ErrGroupNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrGroupNotFound)
	}
}

func TestGroupService_AddMember_UserMissing(t *testing.T) {
	mockGroups := &mockGroupRepo{
		getByIDFn: func(ctx context.Context, id int64) (*model.Group, error) {
			return &model.Group{ID: id, OwnerID: 1}, nil
		},
	}
	mockUsers := &mockUserRepo{
		existsByIDFn: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	}
	svc := NewGroupService(mockGroups, mockUsers)

	err := svc.AddMember(context.Background(), 1, 10, 99)
	if !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrUserNotFound)
	}
}
