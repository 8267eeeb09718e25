package repository

import (
	"context"
	"testing"
	"time"

	"liberty/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Group{},
		&models.GroupMembership{},
		&models.Connection{},
		&models.Follow{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestPostRepository_ListPage(t *testing.T) {
	t.Parallel()

	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com")

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		post := &models.Post{
			Content:   "post",
			AuthorID:  author.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(post).Error)
	}

	// First page: newest first, one extra row for look-ahead.
	page, err := repo.ListPage(ctx, nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.True(t, page[0].CreatedAt.After(page[1].CreatedAt))

	// Second page starts strictly after the served items.
	cursor := &FeedCursor{CreatedAt: page[1].CreatedAt, ID: page[1].ID}
	next, err := repo.ListPage(ctx, cursor, 2)
	require.NoError(t, err)
	require.Len(t, next, 3)
	for _, p := range next {
		assert.NotEqual(t, page[0].ID, p.ID)
		assert.NotEqual(t, page[1].ID, p.ID)
	}
}

func TestPostRepository_ListPage_TieBreakOnID(t *testing.T) {
	t.Parallel()

	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "tie@example.com")

	// All posts share a timestamp so ordering falls back to the ID.
	ts := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	var ids []uint
	for i := 0; i < 4; i++ {
		post := &models.Post{Content: "post", AuthorID: author.ID, CreatedAt: ts}
		require.NoError(t, db.Create(post).Error)
		ids = append(ids, post.ID)
	}

	page, err := repo.ListPage(ctx, nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, ids[3], page[0].ID)
	assert.Equal(t, ids[2], page[1].ID)

	cursor := &FeedCursor{CreatedAt: page[1].CreatedAt, ID: page[1].ID}
	next, err := repo.ListPage(ctx, cursor, 2)
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.Equal(t, ids[1], next[0].ID)
	assert.Equal(t, ids[0], next[1].ID)
}

func TestPostRepository_ListPage_PreloadsAuthor(t *testing.T) {
	t.Parallel()

	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "preload@example.com")
	author.Username = "preloaded"
	require.NoError(t, db.Save(author).Error)

	require.NoError(t, repo.Create(ctx, &models.Post{Content: "hello", AuthorID: author.ID}))

	page, err := repo.ListPage(ctx, nil, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "preloaded", page[0].Author.Username)
}
