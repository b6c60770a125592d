package authz

import (
	"context"
	"errors"
	"testing"

	"socialnet/internal/model"
)

type mockFriends struct {
	areFriendsFn func(ctx context.Context, a, b int64) (bool, error)
	calls        [][2]int64
}

func (m *mockFriends) AreFriends(ctx context.Context, a, b int64) (bool, error) {
	m.calls = append(m.calls, [2]int64{a, b})
	if m.areFriendsFn != nil {
		return m.areFriendsFn(ctx, a, b)
	}
	return false, nil
}

type mockGroups struct {
	isMemberFn func(ctx context.Context, groupID, userID int64) (bool, error)
}

func (m *mockGroups) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	if m.isMemberFn != nil {
		return m.isMemberFn(ctx, groupID, userID)
	}
	return false, nil
}

func groupID(id int64) *int64 {
	return &id
}

func TestCanView_PublicVisibleToEveryone(t *testing.T) {
	r := NewResolver(&mockFriends{}, &mockGroups{})
	content := Content{AuthorID: 1, Visibility: model.VisibilityPublic}

	viewers := map[string]*Viewer{
		"anonymous": nil,
		"stranger":  {ID: 99, Role: model.RoleUser},
		"author":    {ID: 1, Role: model.RoleUser},
		"admin":     {ID: 50, Role: model.RoleAdmin},
	}

	for name, viewer := range viewers {
		if err := r.CanView(context.Background(), viewer, content); err != nil {
			t.Errorf("%s: expected allow for public content, got %v", name, err)
		}
	}
}

func TestCanView_FriendsOnly_AnonymousDenied(t *testing.T) {
	r := NewResolver(&mockFriends{}, &mockGroups{})
	content := Content{AuthorID: 1, Visibility: model.VisibilityFriends}

	err := r.CanView(context.Background(), nil, content)

	var denied *Denied
	if !errors.As(err, &denied) {
		t.Fatalf("expected Denied, got %v", err)
	}
}

func TestCanView_FriendsOnly_NonFriendDenied(t *testing.T) {
	friends := &mockFriends{
		areFriendsFn: func(ctx context.Context, a, b int64) (bool, error) {
			return false, nil
		},
	}
	r := NewResolver(friends, &mockGroups{})
	content := Content{AuthorID: 1, Visibility: model.VisibilityFriends}

	err := r.CanView(context.Background(), &Viewer{ID: 2, Role: model.RoleUser}, content)

	var denied *Denied
	if !errors.As(err, &denied) {
		t.Fatalf("expected Denied, got %v", err)
	}
}

func TestCanView_FriendsOnly_AcceptedFriendAllowed(t *testing.T) {
	friends := &mockFriends{
		areFriendsFn: func(ctx context.Context, a, b int64) (bool, error) {
			return true, nil
		},
	}
	r := NewResolver(friends, &mockGroups{})
	content := Content{AuthorID: 1, Visibility: model.VisibilityFriends}

	if err := r.CanView(context.Background(), &Viewer{ID: 2, Role: model.RoleUser}, content); err != nil {
		t.Fatalf("expected allow for accepted friend, got %v", err)
	}

	if len(friends.calls) != 1 {
		t.Fatalf("AreFriends called %d times, want 1", len(friends.calls))
	}
	if friends.calls[0] != [2]int64{1, 2} {
		t.Errorf("AreFriends called with %v, want author then viewer", friends.calls[0])
	}
}

func TestCanView_FriendsOnly_AuthorAllowedWithoutFriendship(t *testing.T) {
	// Friendship check must never run for the author, even when it would
	// report false.
	friends := &mockFriends{
		areFriendsFn: func(ctx context.Context, a, b int64) (bool, error) {
			return false, nil
		},
	}
	r := NewResolver(friends, &mockGroups{})
	content := Content{AuthorID: 1, Visibility: model.VisibilityFriends}

	if err := r.CanView(context.Background(), &Viewer{ID: 1, Role: model.RoleUser}, content); err != nil {
		t.Fatalf("expected allow for author, got %v", err)
	}
	if len(friends.calls) != 0 {
		t.Errorf("AreFriends called %d times for author view, want 0", len(friends.calls))
	}
}

func TestCanView_AdminOverridesEveryTier(t *testing.T) {
	r := NewResolver(&mockFriends{}, &mockGroups{})
	admin := &Viewer{ID: 50, Role: model.RoleAdmin}

	contents := []Content{
		{AuthorID: 1, Visibility: model.VisibilityFriends},
		{AuthorID: 1, Visibility: model.VisibilityGroup, GroupID: groupID(7)},
		// Even corrupted group content is visible to an admin: the
		// admin-or-author branch comes first.
		{AuthorID: 1, Visibility: model.VisibilityGroup},
	}
	for i, c := range contents {
		if err := r.CanView(context.Background(), admin, c); err != nil {
			t.Errorf("content %d: expected admin allow, got %v", i, err)
		}
	}
}

func TestCanView_Group_AnonymousDenied(t *testing.T) {
	r := NewResolver(&mockFriends{}, &mockGroups{})
	content := Content{AuthorID: 1, Visibility: model.VisibilityGroup, GroupID: groupID(7)}

	err := r.CanView(context.Background(), nil, content)

	var denied *Denied
	if !errors.As(err, &denied) {
		t.Fatalf("expected Denied, got %v", err)
	}
}

func TestCanView_Group_MissingGroupRefIsServerError(t *testing.T) {
	r := NewResolver(&mockFriends{}, &mockGroups{})
	content := Content{AuthorID: 1, Visibility: model.VisibilityGroup}

	err := r.CanView(context.Background(), &Viewer{ID: 2, Role: model.RoleUser}, content)

	if !errors.Is(err, ErrMissingGroupRef) {
		t.Fatalf("expected ErrMissingGroupRef, got %v", err)
	}
	var denied *Denied
	if errors.As(err, &denied) {
		t.Fatal("data-integrity failure must not look like a permission denial")
	}
}

func TestCanView_Group_MemberAllowedNonMemberDenied(t *testing.T) {
	groups := &mockGroups{
		isMemberFn: func(ctx context.Context, gID, userID int64) (bool, error) {
			return userID == 2, nil
		},
	}
	r := NewResolver(&mockFriends{}, groups)
	content := Content{AuthorID: 1, Visibility: model.VisibilityGroup, GroupID: groupID(7)}

	if err := r.CanView(context.Background(), &Viewer{ID: 2, Role: model.RoleUser}, content); err != nil {
		t.Errorf("member: expected allow, got %v", err)
	}

	err := r.CanView(context.Background(), &Viewer{ID: 3, Role: model.RoleUser}, content)
	var denied *Denied
	if !errors.As(err, &denied) {
		t.Errorf("non-member: expected Denied, got %v", err)
	}
}

func TestCanView_FriendshipCheckErrorPropagates(t *testing.T) {
	friends := &mockFriends{
		areFriendsFn: func(ctx context.Context, a, b int64) (bool, error) {
			return false, errors.New("db down")
		},
	}
	r := NewResolver(friends, &mockGroups{})
	content := Content{AuthorID: 1, Visibility: model.VisibilityFriends}

	err := r.CanView(context.Background(), &Viewer{ID: 2, Role: model.RoleUser}, content)

	if err == nil {
		t.Fatal("expected error")
	}
	var denied *Denied
	if errors.As(err, &denied) {
		t.Fatal("store failure must not be reported as a denial")
	}
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name    string
		actor   Viewer
		ownerID int64
		want    bool
	}{
		{"owner", Viewer{ID: 1, Role: model.RoleUser}, 1, true},
		{"admin on any content", Viewer{ID: 50, Role: model.RoleAdmin}, 1, true},
		{"other user", Viewer{ID: 2, Role: model.RoleUser}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanDelete(tt.actor, tt.ownerID); got != tt.want {
				t.Errorf("CanDelete = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanEdit_AdminGetsNoOverride(t *testing.T) {
	if !CanEdit(Viewer{ID: 1, Role: model.RoleUser}, 1) {
		t.Error("author should be able to edit")
	}
	if CanEdit(Viewer{ID: 2, Role: model.RoleUser}, 1) {
		t.Error("non-author should not be able to edit")
	}
	// Delete and edit are asymmetric: admins may delete any post but may
	// never edit someone else's.
	if CanEdit(Viewer{ID: 50, Role: model.RoleAdmin}, 1) {
		t.Error("admin must not be able to edit another user's post")
	}
}
