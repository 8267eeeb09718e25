package server

import (
	"time"

	"liberty/internal/models"
	"liberty/internal/repository"
	"liberty/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

// feedAuthor is the author identity embedded in each feed item.
type feedAuthor struct {
	ID       uint   `json:"id"`
	Username string `json:"username,omitempty"`
}

// feedItem is a single entry in the public square feed. Relation is only
// present for authenticated callers.
type feedItem struct {
	ID        uint            `json:"id"`
	Content   string          `json:"content"`
	CreatedAt string          `json:"createdAt"`
	Author    feedAuthor      `json:"author"`
	Relation  models.Relation `json:"relation,omitempty"`
}

// feedResponse is the page envelope. NextCursor is null on the last page.
type feedResponse struct {
	Items      []feedItem `json:"items"`
	NextCursor *string    `json:"nextCursor"`
}

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	content, err := validation.ValidatePostContent(req.Content)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	post := &models.Post{
		Content:  content,
		AuthorID: userID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// Load author data for the response
	post, err = s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPublicFeed handles GET /feed/public-square
func (s *Server) GetPublicFeed(c *fiber.Ctx) error {
	ctx := c.Context()

	limit := c.QueryInt("limit", defaultFeedLimit)
	if limit < 1 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	var after *repository.FeedCursor
	if token := c.Query("cursor"); token != "" {
		cur, err := decodeFeedCursor(token)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid cursor"))
		}
		after = cur
	}

	posts, err := s.postRepo.ListPage(ctx, after, limit)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// The repository fetched one extra row to detect a next page.
	hasMore := len(posts) > limit
	if hasMore {
		posts = posts[:limit]
	}

	viewerID, authenticated := s.optionalUserID(c)

	var relations map[uint]models.Relation
	if authenticated && len(posts) > 0 {
		authorIDs := make([]uint, 0, len(posts))
		seen := make(map[uint]bool, len(posts))
		for _, post := range posts {
			if !seen[post.AuthorID] {
				seen[post.AuthorID] = true
				authorIDs = append(authorIDs, post.AuthorID)
			}
		}
		relations, err = s.connectionRepo.RelationsFor(ctx, viewerID, authorIDs)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
	}

	items := make([]feedItem, 0, len(posts))
	for _, post := range posts {
		item := feedItem{
			ID:        post.ID,
			Content:   post.Content,
			CreatedAt: post.CreatedAt.UTC().Format(time.RFC3339Nano),
			Author: feedAuthor{
				ID:       post.AuthorID,
				Username: post.Author.Username,
			},
		}
		if relations != nil {
			item.Relation = relations[post.AuthorID]
		}
		items = append(items, item)
	}

	var nextCursor *string
	if hasMore {
		last := posts[len(posts)-1]
		token := encodeFeedCursor(repository.FeedCursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
		nextCursor = &token
	}

	return c.JSON(feedResponse{
		Items:      items,
		NextCursor: nextCursor,
	})
}
