package service

import (
	"context"
	"time"

	"socialnet/internal/model"
)

// Function-field mocks for every repository interface. Each test wires only
// the methods it cares about; unset methods fall back to a harmless default.

type mockUserRepo struct {
	createFn       func(ctx context.Context, user *model.User) error
	getByIDFn      func(ctx context.Context, id int64) (*model.User, error)
	getByNameFn    func(ctx context.Context, name string) (*model.User, error)
	existsByNameFn func(ctx context.Context, name string) (bool, error)
	existsByIDFn   func(ctx context.Context, id int64) (bool, error)
	adminExistsFn  func(ctx context.Context) (bool, error)
	allExistFn     func(ctx context.Context, ids []int64) (bool, error)
	setAvatarFn    func(ctx context.Context, userID int64, url, key string) error
	deleteFn       func(ctx context.Context, id int64) error

	createCalls int
	deleteCalls int
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepo) GetByName(ctx context.Context, name string) (*model.User, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.existsByNameFn != nil {
		return m.existsByNameFn(ctx, name)
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.existsByIDFn != nil {
		return m.existsByIDFn(ctx, id)
	}
	return true, nil
}

func (m *mockUserRepo) AdminExists(ctx context.Context) (bool, error) {
	if m.adminExistsFn != nil {
		return m.adminExistsFn(ctx)
	}
	return false, nil
}

func (m *mockUserRepo) AllExist(ctx context.Context, ids []int64) (bool, error) {
	if m.allExistFn != nil {
		return m.allExistFn(ctx, ids)
	}
	return true, nil
}

func (m *mockUserRepo) SetAvatar(ctx context.Context, userID int64, url, key string) error {
	if m.setAvatarFn != nil {
		return m.setAvatarFn(ctx, userID, url, key)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockFriendRepo struct {
	createRequestFn func(ctx context.Context, requesterID, receiverID int64) (bool, error)
	acceptFn        func(ctx context.Context, requesterID, receiverID int64) error
	declineFn       func(ctx context.Context, requesterID, receiverID int64) error
	deleteBetweenFn func(ctx context.Context, a, b int64) error
	areFriendsFn    func(ctx context.Context, a, b int64) (bool, error)
	listFriendsFn   func(ctx context.Context, userID int64) ([]model.UserSummary, error)

	acceptCalls  int
	declineCalls int
}

func (m *mockFriendRepo) CreateRequest(ctx context.Context, requesterID, receiverID int64) (bool, error) {
	if m.createRequestFn != nil {
		return m.createRequestFn(ctx, requesterID, receiverID)
	}
	return true, nil
}

func (m *mockFriendRepo) Accept(ctx context.Context, requesterID, receiverID int64) error {
	m.acceptCalls++
	if m.acceptFn != nil {
		return m.acceptFn(ctx, requesterID, receiverID)
	}
	return nil
}

func (m *mockFriendRepo) Decline(ctx context.Context, requesterID, receiverID int64) error {
	m.declineCalls++
	if m.declineFn != nil {
		return m.declineFn(ctx, requesterID, receiverID)
	}
	return nil
}

func (m *mockFriendRepo) DeleteBetween(ctx context.Context, a, b int64) error {
	if m.deleteBetweenFn != nil {
		return m.deleteBetweenFn(ctx, a, b)
	}
	return nil
}

func (m *mockFriendRepo) AreFriends(ctx context.Context, a, b int64) (bool, error) {
	if m.areFriendsFn != nil {
		return m.areFriendsFn(ctx, a, b)
	}
	return false, nil
}

func (m *mockFriendRepo) ListFriends(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	if m.listFriendsFn != nil {
		return m.listFriendsFn(ctx, userID)
	}
	return nil, nil
}

type mockGroupRepo struct {
	createFn       func(ctx context.Context, group *model.Group, memberIDs []int64) error
	getByIDFn      func(ctx context.Context, id int64) (*model.Group, error)
	deleteFn       func(ctx context.Context, id int64) error
	addMemberFn    func(ctx context.Context, groupID, userID int64) error
	removeMemberFn func(ctx context.Context, groupID, userID int64) error
	isMemberFn     func(ctx context.Context, groupID, userID int64) (bool, error)

	createCalls    int
	addMemberCalls int
	deleteCalls    int
}

func (m *mockGroupRepo) Create(ctx context.Context, group *model.Group, memberIDs []int64) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, group, memberIDs)
	}
	group.ID = 1
	return nil
}

func (m *mockGroupRepo) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrGroupNotFound
}

func (m *mockGroupRepo) Delete(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockGroupRepo) AddMember(ctx context.Context, groupID, userID int64) error {
	m.addMemberCalls++
	if m.addMemberFn != nil {
		return m.addMemberFn(ctx, groupID, userID)
	}
	return nil
}

func (m *mockGroupRepo) RemoveMember(ctx context.Context, groupID, userID int64) error {
	if m.removeMemberFn != nil {
		return m.removeMemberFn(ctx, groupID, userID)
	}
	return nil
}

func (m *mockGroupRepo) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	if m.isMemberFn != nil {
		return m.isMemberFn(ctx, groupID, userID)
	}
	return false, nil
}

type mockPostRepo struct {
	createFn        func(ctx context.Context, post *model.Post, tags []string) error
	getByIDFn       func(ctx context.Context, postID int64) (*model.Post, error)
	updateFn        func(ctx context.Context, postID int64, content *string, visibility *model.Visibility) error
	deleteFn        func(ctx context.Context, postID int64) error
	getTagsFn       func(ctx context.Context, postID int64) ([]string, error)
	toggleLikeFn    func(ctx context.Context, postID, userID int64) (*model.LikeResult, error)
	createCommentFn func(ctx context.Context, comment *model.Comment) error
	getCommentsFn   func(ctx context.Context, postID int64) ([]model.Comment, error)
	likeCountFn     func(ctx context.Context, postID int64) (int, error)

	createCalls  int
	updateCalls  int
	deleteCalls  int
	commentCalls int
}

func (m *mockPostRepo) Create(ctx context.Context, post *model.Post, tags []string) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, post, tags)
	}
	post.ID = 1
	return nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, postID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepo) Update(ctx context.Context, postID int64, content *string, visibility *model.Visibility) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, postID, content, visibility)
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, postID int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID)
	}
	return nil
}

func (m *mockPostRepo) GetTags(ctx context.Context, postID int64) ([]string, error) {
	if m.getTagsFn != nil {
		return m.getTagsFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockPostRepo) ToggleLike(ctx context.Context, postID, userID int64) (*model.LikeResult, error) {
	if m.toggleLikeFn != nil {
		return m.toggleLikeFn(ctx, postID, userID)
	}
	return &model.LikeResult{Liked: true, LikeCount: 1}, nil
}

func (m *mockPostRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	m.commentCalls++
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, comment)
	}
	comment.ID = 1
	return nil
}

func (m *mockPostRepo) GetComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	if m.getCommentsFn != nil {
		return m.getCommentsFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockPostRepo) LikeCount(ctx context.Context, postID int64) (int, error) {
	if m.likeCountFn != nil {
		return m.likeCountFn(ctx, postID)
	}
	return 0, nil
}

type mockStoryRepo struct {
	createFn         func(ctx context.Context, story *model.Story) error
	getByIDFn        func(ctx context.Context, storyID int64) (*model.Story, error)
	listSinceFn      func(ctx context.Context, cutoff time.Time) ([]model.Story, error)
	deleteFn         func(ctx context.Context, storyID int64) error
	addReactionFn    func(ctx context.Context, storyID, userID int64, emoji string) error
	reactionCountsFn func(ctx context.Context, storyID int64) (map[string]int, error)

	reactionCalls int
	deleteCalls   int
	listCutoffs   []time.Time
}

func (m *mockStoryRepo) Create(ctx context.Context, story *model.Story) error {
	if m.createFn != nil {
		return m.createFn(ctx, story)
	}
	story.ID = 1
	return nil
}

func (m *mockStoryRepo) GetByID(ctx context.Context, storyID int64) (*model.Story, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, storyID)
	}
	return nil, model.ErrStoryNotFound
}

func (m *mockStoryRepo) ListSince(ctx context.Context, cutoff time.Time) ([]model.Story, error) {
	m.listCutoffs = append(m.listCutoffs, cutoff)
	if m.listSinceFn != nil {
		return m.listSinceFn(ctx, cutoff)
	}
	return nil, nil
}

func (m *mockStoryRepo) Delete(ctx context.Context, storyID int64) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, storyID)
	}
	return nil
}

func (m *mockStoryRepo) AddReaction(ctx context.Context, storyID, userID int64, emoji string) error {
	m.reactionCalls++
	if m.addReactionFn != nil {
		return m.addReactionFn(ctx, storyID, userID, emoji)
	}
	return nil
}

func (m *mockStoryRepo) ReactionCounts(ctx context.Context, storyID int64) (map[string]int, error) {
	if m.reactionCountsFn != nil {
		return m.reactionCountsFn(ctx, storyID)
	}
	return map[string]int{}, nil
}

type mockMessageRepo struct {
	createFn          func(ctx context.Context, msg *model.Message) error
	getConversationFn func(ctx context.Context, a, b int64) ([]model.Message, error)

	createCalls int
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, msg)
	}
	msg.ID = 1
	return nil
}

func (m *mockMessageRepo) GetConversation(ctx context.Context, a, b int64) ([]model.Message, error) {
	if m.getConversationFn != nil {
		return m.getConversationFn(ctx, a, b)
	}
	return nil, nil
}
