package communities

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sigmagram/internal/database"
	"sigmagram/internal/domain"
	"sigmagram/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// One shared connection: each pooled connection would otherwise get its
	// own private in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Community{},
		&domain.CommunityFollower{},
	))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewService(repository.NewCommunityRepository(db), repository.NewFollowerRepository(db)), db
}

func seedCommunity(t *testing.T, db *gorm.DB, creatorID string) *domain.Community {
	t.Helper()
	c := &domain.Community{Category: "Technology", Description: "tech", CreatorID: creatorID}
	require.NoError(t, db.Create(c).Error)
	return c
}

func followersCount(t *testing.T, db *gorm.DB, id string) int64 {
	t.Helper()
	var c domain.Community
	require.NoError(t, db.First(&c, "id = ?", id).Error)
	return c.FollowersCount
}

func relationCount(t *testing.T, db *gorm.DB, communityID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.CommunityFollower{}).
		Where("community_id = ?", communityID).Count(&n).Error)
	return n
}

func TestFollowIncrementsCounter(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	community := seedCommunity(t, db, "creator-1")

	follow, err := svc.Follow(ctx, "user-1", community.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", follow.UserID)

	assert.EqualValues(t, 1, followersCount(t, db, community.ID))
	assert.EqualValues(t, 1, relationCount(t, db, community.ID))
}

func TestFollowTwiceConflicts(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	community := seedCommunity(t, db, "creator-1")

	_, err := svc.Follow(ctx, "user-1", community.ID)
	require.NoError(t, err)

	_, err = svc.Follow(ctx, "user-1", community.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)

	// Counter moved exactly once.
	assert.EqualValues(t, 1, followersCount(t, db, community.ID))
}

func TestFollowMissingCommunity(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Follow(context.Background(), "user-1", "no-such-community")
	assert.ErrorIs(t, err, ErrCommunityNotFound)
}

func TestUnfollowDecrementsCounter(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	community := seedCommunity(t, db, "creator-1")

	_, err := svc.Follow(ctx, "user-1", community.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Unfollow(ctx, "user-1", community.ID))
	assert.EqualValues(t, 0, followersCount(t, db, community.ID))
	assert.EqualValues(t, 0, relationCount(t, db, community.ID))
}

func TestUnfollowNotFollowing(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	community := seedCommunity(t, db, "creator-1")

	err := svc.Unfollow(ctx, "user-1", community.ID)
	assert.ErrorIs(t, err, ErrNotFollowing)

	// Failed unfollow leaves the counter untouched.
	assert.EqualValues(t, 0, followersCount(t, db, community.ID))
}

func TestCounterMatchesRelationRows(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	community := seedCommunity(t, db, "creator-1")

	users := []string{"u1", "u2", "u3"}
	for _, u := range users {
		_, err := svc.Follow(ctx, u, community.ID)
		require.NoError(t, err)
	}
	require.NoError(t, svc.Unfollow(ctx, "u2", community.ID))
	_ = svc.Unfollow(ctx, "u2", community.ID) // second unfollow must not decrement

	assert.Equal(t, relationCount(t, db, community.ID), followersCount(t, db, community.ID))
	assert.EqualValues(t, 2, followersCount(t, db, community.ID))
}

func TestConcurrentFollowOneWinner(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	community := seedCommunity(t, db, "creator-1")

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Follow(ctx, "user-1", community.ID)
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrAlreadyFollowing):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)
	assert.EqualValues(t, 1, followersCount(t, db, community.ID))
}

func TestFindOneReportsFollowStatus(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	community := seedCommunity(t, db, "creator-1")

	_, err := svc.Follow(ctx, "user-1", community.ID)
	require.NoError(t, err)

	followed, err := svc.FindOne(ctx, community.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, followed.IsFollowed)

	stranger, err := svc.FindOne(ctx, community.ID, "user-2")
	require.NoError(t, err)
	assert.False(t, stranger.IsFollowed)
}

func TestUpdateOwnershipGuard(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	community := seedCommunity(t, db, "creator-1")

	desc := "updated"
	_, err := svc.Update(ctx, community.ID, "intruder", UpdateCommunityRequest{Description: &desc})
	assert.ErrorIs(t, err, ErrNotCommunityOwner)

	updated, err := svc.Update(ctx, community.ID, "creator-1", UpdateCommunityRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Description)
}

func TestRemoveOwnershipGuard(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	community := seedCommunity(t, db, "creator-1")

	assert.ErrorIs(t, svc.Remove(ctx, community.ID, "intruder"), ErrNotCommunityOwner)
	require.NoError(t, svc.Remove(ctx, community.ID, "creator-1"))

	_, err := svc.FindOne(ctx, community.ID, "")
	assert.ErrorIs(t, err, ErrCommunityNotFound)
}
