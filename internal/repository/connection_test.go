package repository

import (
	"context"
	"testing"

	"liberty/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionRepository_RequestAndAccept(t *testing.T) {
	t.Parallel()

	db := setupSQLiteDB(t)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	conn := &models.Connection{
		RequesterID: alice.ID,
		AddresseeID: bob.ID,
		Status:      models.ConnectionStatusPending,
	}
	require.NoError(t, repo.Create(ctx, conn))

	pending, err := repo.ListPendingIncoming(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, alice.ID, pending[0].RequesterID)

	require.NoError(t, repo.Accept(ctx, conn))

	accepted, err := repo.ListAccepted(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, models.ConnectionStatusAccepted, accepted[0].Status)

	// Duplicate request for the same pair hits the unique index.
	dup := &models.Connection{RequesterID: alice.ID, AddresseeID: bob.ID}
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestConnectionRepository_PairUniqueAcrossDirections(t *testing.T) {
	t.Parallel()

	db := setupSQLiteDB(t)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice3@example.com")
	bob := createTestUser(t, db, "bob3@example.com")

	require.NoError(t, repo.Create(ctx, &models.Connection{
		RequesterID: alice.ID,
		AddresseeID: bob.ID,
		Status:      models.ConnectionStatusPending,
	}))

	// The mirror-image request is the same pair; the canonical index rejects
	// it even when no handler-level pre-check ran.
	err := repo.Create(ctx, &models.Connection{
		RequesterID: bob.ID,
		AddresseeID: alice.ID,
		Status:      models.ConnectionStatusPending,
	})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)

	var count int64
	require.NoError(t, db.Model(&models.Connection{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConnectionRepository_FollowIdempotent(t *testing.T) {
	t.Parallel()

	db := setupSQLiteDB(t)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice2@example.com")
	bob := createTestUser(t, db, "bob2@example.com")

	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", alice.ID, bob.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", alice.ID, bob.ID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestConnectionRepository_RelationsFor(t *testing.T) {
	t.Parallel()

	db := setupSQLiteDB(t)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	viewer := createTestUser(t, db, "viewer@example.com")
	friend := createTestUser(t, db, "friend@example.com")
	idol := createTestUser(t, db, "idol@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")
	both := createTestUser(t, db, "both@example.com")

	// friend: accepted connection where the viewer is the addressee.
	require.NoError(t, db.Create(&models.Connection{
		RequesterID: friend.ID,
		AddresseeID: viewer.ID,
		Status:      models.ConnectionStatusAccepted,
	}).Error)

	// idol: followed only.
	require.NoError(t, repo.Follow(ctx, viewer.ID, idol.ID))

	// both: followed and connected; acquaintance must win.
	require.NoError(t, repo.Follow(ctx, viewer.ID, both.ID))
	require.NoError(t, db.Create(&models.Connection{
		RequesterID: viewer.ID,
		AddresseeID: both.ID,
		Status:      models.ConnectionStatusAccepted,
	}).Error)

	relations, err := repo.RelationsFor(ctx, viewer.ID,
		[]uint{viewer.ID, friend.ID, idol.ID, stranger.ID, both.ID})
	require.NoError(t, err)

	assert.Equal(t, models.RelationSelf, relations[viewer.ID])
	assert.Equal(t, models.RelationAcquaintance, relations[friend.ID])
	assert.Equal(t, models.RelationFollowing, relations[idol.ID])
	assert.Equal(t, models.RelationStranger, relations[stranger.ID])
	assert.Equal(t, models.RelationAcquaintance, relations[both.ID])
}

func TestConnectionRepository_PendingIsNotAcquaintance(t *testing.T) {
	t.Parallel()

	db := setupSQLiteDB(t)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	viewer := createTestUser(t, db, "v2@example.com")
	pending := createTestUser(t, db, "p2@example.com")

	require.NoError(t, db.Create(&models.Connection{
		RequesterID: viewer.ID,
		AddresseeID: pending.ID,
		Status:      models.ConnectionStatusPending,
	}).Error)

	relations, err := repo.RelationsFor(ctx, viewer.ID, []uint{pending.ID})
	require.NoError(t, err)
	assert.Equal(t, models.RelationStranger, relations[pending.ID])
}
