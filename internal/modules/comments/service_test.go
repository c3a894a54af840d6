package comments

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

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Post{}, &domain.Comment{}))
	return NewService(repository.NewCommentRepository(db)), db
}

func seedPost(t *testing.T, db *gorm.DB) *domain.Post {
	t.Helper()
	p := &domain.Post{Content: "hello", AuthorID: "author-1", CommunityID: "community-1"}
	require.NoError(t, db.Create(p).Error)
	return p
}

func commentsCount(t *testing.T, db *gorm.DB, postID string) int64 {
	t.Helper()
	var p domain.Post
	require.NoError(t, db.First(&p, "id = ?", postID).Error)
	return p.CommentsCount
}

func TestCreateIncrementsCounter(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	post := seedPost(t, db)

	first, err := svc.Create(ctx, "user-1", CreateCommentRequest{PostID: post.ID, Content: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "nice", first.Content)

	// Comments are not unique per user: a second one goes straight through.
	_, err = svc.Create(ctx, "user-1", CreateCommentRequest{PostID: post.ID, Content: "again"})
	require.NoError(t, err)

	assert.EqualValues(t, 2, commentsCount(t, db, post.ID))
}

func TestRemoveDecrementsCounter(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	post := seedPost(t, db)

	comment, err := svc.Create(ctx, "user-1", CreateCommentRequest{PostID: post.ID, Content: "nice"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, comment.ID, "user-1"))
	assert.EqualValues(t, 0, commentsCount(t, db, post.ID))

	assert.ErrorIs(t, svc.Remove(ctx, comment.ID, "user-1"), ErrCommentNotFound)
}

func TestUpdateOwnershipGuard(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	post := seedPost(t, db)

	comment, err := svc.Create(ctx, "user-1", CreateCommentRequest{PostID: post.ID, Content: "nice"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, comment.ID, "intruder", UpdateCommentRequest{Content: "hacked"})
	assert.ErrorIs(t, err, ErrNotCommentAuthor)

	updated, err := svc.Update(ctx, comment.ID, "user-1", UpdateCommentRequest{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	// Updates do not move the counter.
	assert.EqualValues(t, 1, commentsCount(t, db, post.ID))
}

func TestRemoveOwnershipGuard(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	post := seedPost(t, db)

	comment, err := svc.Create(ctx, "user-1", CreateCommentRequest{PostID: post.ID, Content: "nice"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Remove(ctx, comment.ID, "intruder"), ErrNotCommentAuthor)
	assert.EqualValues(t, 1, commentsCount(t, db, post.ID))
}

func TestFindAllByPostNewestFirst(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	post := seedPost(t, db)

	_, err := svc.Create(ctx, "user-1", CreateCommentRequest{PostID: post.ID, Content: "first"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-2", CreateCommentRequest{PostID: post.ID, Content: "second"})
	require.NoError(t, err)

	comments, err := svc.FindAllByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
}
