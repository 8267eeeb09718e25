package repository

import (
	"context"
	"time"

	"liberty/internal/models"
	"liberty/internal/observability"

	"gorm.io/gorm"
)

// FeedCursor is a stable position in the reverse-chronological feed ordering:
// the (created_at, id) pair of the last item served. Rows strictly older than
// the cursor form the next page, so inserts after pagination began cannot
// shift or duplicate already-served results.
type FeedCursor struct {
	CreatedAt time.Time
	ID        uint
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListPage(ctx context.Context, after *FeedCursor, limit int) ([]*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("insert", "posts")()
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	defer observability.TrackQuery("select", "posts")()
	if err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// ListPage returns up to limit+1 posts strictly older than the cursor,
// newest first. The caller uses the extra row to decide whether a next
// page exists.
func (r *postRepository) ListPage(ctx context.Context, after *FeedCursor, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	defer observability.TrackQuery("select", "posts")()

	query := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(limit + 1)

	if after != nil {
		query = query.Where(
			"created_at < ? OR (created_at = ? AND id < ?)",
			after.CreatedAt, after.CreatedAt, after.ID,
		)
	}

	if err := query.Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
