// Package authz holds the visibility and mutation decision logic shared by
// posts, stories, and groups. Handlers resolve the caller to a Viewer and the
// target to a Content record; everything else is decided here so the rules
// live in exactly one place.
package authz

import (
	"context"
	"errors"
	"fmt"

	"socialnet/internal/model"
)

// Viewer is a resolved identity. A nil *Viewer is an anonymous caller; there
// is no stored "guest" role.
type Viewer struct {
	ID   int64
	Role model.Role
}

// IsAdmin reports whether the viewer holds the admin role.
func (v *Viewer) IsAdmin() bool {
	return v != nil && v.Role == model.RoleAdmin
}

// Content is the capability record for a post or story: the three fields the
// visibility rules need, independent of the concrete content type.
type Content struct {
	AuthorID   int64
	Visibility model.Visibility
	GroupID    *int64
}

// FriendshipChecker answers whether an accepted friend edge exists between
// two users, in either direction.
type FriendshipChecker interface {
	AreFriends(ctx context.Context, a, b int64) (bool, error)
}

// MembershipChecker answers whether a user is on a group's roster.
type MembershipChecker interface {
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
}

// Denied is returned by CanView when the visibility rules reject the viewer.
// The reason is safe to surface to the client as a 403.
type Denied struct {
	Reason string
}

func (d *Denied) Error() string {
	return d.Reason
}

// ErrMissingGroupRef signals a data-integrity failure: group-visibility
// content without a group reference. Surfaced as a server error, never as a
// permission denial.
var ErrMissingGroupRef = errors.New("group-visibility content has no group reference")

// Resolver decides whether a viewer may see a content item.
type Resolver struct {
	friends FriendshipChecker
	groups  MembershipChecker
}

func NewResolver(friends FriendshipChecker, groups MembershipChecker) *Resolver {
	return &Resolver{
		friends: friends,
		groups:  groups,
	}
}

// CanView evaluates the visibility rules in fixed order. The order matters:
// ownership and admin win over every tier, so a friends-only post is visible
// to its author even with no friends, and an admin sees group content without
// membership.
//
//  1. admin or author: allow
//  2. public: allow
//  3. friends: deny anonymous; allow accepted friends (either direction)
//  4. group: deny anonymous; nil group ref is a server error; allow members
//
// Unknown visibility values are rejected at creation time and unreachable
// here; hitting one is reported as an internal error.
func (r *Resolver) CanView(ctx context.Context, viewer *Viewer, c Content) error {
	if viewer.IsAdmin() || (viewer != nil && viewer.ID == c.AuthorID) {
		return nil
	}

	switch c.Visibility {
	case model.VisibilityPublic:
		return nil

	case model.VisibilityFriends:
		if viewer == nil {
			return &Denied{Reason: "guests cannot view friends-only content"}
		}
		friends, err := r.friends.AreFriends(ctx, c.AuthorID, viewer.ID)
		if err != nil {
			return fmt.Errorf("check friendship: %w", err)
		}
		if !friends {
			return &Denied{Reason: "you must be a friend to view this content"}
		}
		return nil

	case model.VisibilityGroup:
		if viewer == nil {
			return &Denied{Reason: "guests cannot view group content"}
		}
		if c.GroupID == nil {
			return ErrMissingGroupRef
		}
		member, err := r.groups.IsMember(ctx, *c.GroupID, viewer.ID)
		if err != nil {
			return fmt.Errorf("check membership: %w", err)
		}
		if !member {
			return &Denied{Reason: "you must be a member of the group to view this content"}
		}
		return nil

	default:
		return fmt.Errorf("unknown visibility %q", c.Visibility)
	}
}

// CanDelete reports whether the actor may delete a content item: the owner
// always may, and so may an admin.
func CanDelete(actor Viewer, ownerID int64) bool {
	return actor.ID == ownerID || actor.Role == model.RoleAdmin
}

// CanEdit reports whether the actor may edit a post. Only the original author
// may; the admin override deliberately does not apply to edits.
func CanEdit(actor Viewer, authorID int64) bool {
	return actor.ID == authorID
}
