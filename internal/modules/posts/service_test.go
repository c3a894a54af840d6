package posts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sigmagram/internal/database"
	"sigmagram/internal/domain"
	"sigmagram/internal/repository"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Community{},
		&domain.CommunityFollower{},
		&domain.Post{},
		&domain.Like{},
	))

	svc := NewService(
		repository.NewPostRepository(db),
		repository.NewFollowerRepository(db),
		repository.NewLikeRepository(db),
	)
	return svc, db
}

func seedCommunity(t *testing.T, db *gorm.DB, category string) *domain.Community {
	t.Helper()
	c := &domain.Community{Category: category, CreatorID: "creator-1"}
	require.NoError(t, db.Create(c).Error)
	return c
}

func follow(t *testing.T, db *gorm.DB, userID, communityID string) {
	t.Helper()
	require.NoError(t, db.Create(&domain.CommunityFollower{UserID: userID, CommunityID: communityID}).Error)
}

func TestFeedEmptyWhenFollowingNone(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	community := seedCommunity(t, db, "Technology")
	_, err := svc.Create(ctx, "author-1", CreatePostRequest{Content: "post", CommunityID: community.ID})
	require.NoError(t, err)

	feed, err := svc.FindAll(ctx, "viewer-1", 0, 20, "")
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFeedShowsFollowedCommunitiesOnly(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	tech := seedCommunity(t, db, "Technology")
	gaming := seedCommunity(t, db, "Gaming")

	_, err := svc.Create(ctx, "author-1", CreatePostRequest{Content: "tech post", CommunityID: tech.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "author-1", CreatePostRequest{Content: "gaming post", CommunityID: gaming.ID})
	require.NoError(t, err)

	follow(t, db, "viewer-1", tech.ID)

	feed, err := svc.FindAll(ctx, "viewer-1", 0, 20, "")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "tech post", feed[0].Content)
}

func TestFindAllByCommunity(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	tech := seedCommunity(t, db, "Technology")
	gaming := seedCommunity(t, db, "Gaming")

	_, err := svc.Create(ctx, "author-1", CreatePostRequest{Content: "tech post", CommunityID: tech.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "author-1", CreatePostRequest{Content: "gaming post", CommunityID: gaming.ID})
	require.NoError(t, err)

	// Explicit community filter works without following it.
	posts, err := svc.FindAll(ctx, "viewer-1", 0, 20, gaming.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "gaming post", posts[0].Content)
}

func TestFeedAnnotatesLikeStatus(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	tech := seedCommunity(t, db, "Technology")
	liked, err := svc.Create(ctx, "author-1", CreatePostRequest{Content: "liked post", CommunityID: tech.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "author-1", CreatePostRequest{Content: "other post", CommunityID: tech.ID})
	require.NoError(t, err)

	follow(t, db, "viewer-1", tech.ID)
	require.NoError(t, db.Create(&domain.Like{UserID: "viewer-1", PostID: liked.ID}).Error)

	feed, err := svc.FindAll(ctx, "viewer-1", 0, 20, "")
	require.NoError(t, err)
	require.Len(t, feed, 2)

	byContent := map[string]bool{}
	for _, p := range feed {
		byContent[p.Content] = p.IsLiked
	}
	assert.True(t, byContent["liked post"])
	assert.False(t, byContent["other post"])
}

func TestUpdateOwnershipGuard(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	tech := seedCommunity(t, db, "Technology")
	post, err := svc.Create(ctx, "author-1", CreatePostRequest{Content: "original", CommunityID: tech.ID})
	require.NoError(t, err)

	content := "edited"
	_, err = svc.Update(ctx, post.ID, "intruder", UpdatePostRequest{Content: &content})
	assert.ErrorIs(t, err, ErrNotPostAuthor)

	updated, err := svc.Update(ctx, post.ID, "author-1", UpdatePostRequest{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestRemoveOwnershipGuard(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	tech := seedCommunity(t, db, "Technology")
	post, err := svc.Create(ctx, "author-1", CreatePostRequest{Content: "post", CommunityID: tech.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Remove(ctx, post.ID, "intruder"), ErrNotPostAuthor)
	require.NoError(t, svc.Remove(ctx, post.ID, "author-1"))

	_, err = svc.FindOne(ctx, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
