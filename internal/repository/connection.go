package repository

import (
	"context"
	"errors"

	"liberty/internal/models"
	"liberty/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConnectionRepository defines persistence operations for the connection and
// follow graphs.
type ConnectionRepository interface {
	Create(ctx context.Context, conn *models.Connection) error
	GetByID(ctx context.Context, id uint) (*models.Connection, error)
	GetBetweenUsers(ctx context.Context, userA, userB uint) (*models.Connection, error)
	Accept(ctx context.Context, conn *models.Connection) error
	DeleteBetweenUsers(ctx context.Context, userA, userB uint) error
	ListAccepted(ctx context.Context, userID uint) ([]models.Connection, error)
	ListPendingIncoming(ctx context.Context, userID uint) ([]models.Connection, error)
	Follow(ctx context.Context, followerID, followeeID uint) error
	Unfollow(ctx context.Context, followerID, followeeID uint) error
	RelationsFor(ctx context.Context, viewerID uint, authorIDs []uint) (map[uint]models.Relation, error)
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository returns a new ConnectionRepository implementation.
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	defer observability.TrackQuery("insert", "connections")()
	if err := r.db.WithContext(ctx).Create(conn).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Connection request already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Addressee").
		First(&conn, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Connection request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

func (r *connectionRepository) GetBetweenUsers(ctx context.Context, userA, userB uint) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.WithContext(ctx).
		Where(
			"(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA,
		).
		First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

func (r *connectionRepository) Accept(ctx context.Context, conn *models.Connection) error {
	conn.Status = models.ConnectionStatusAccepted
	if err := r.db.WithContext(ctx).Save(conn).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) DeleteBetweenUsers(ctx context.Context, userA, userB uint) error {
	err := r.db.WithContext(ctx).
		Where(
			"(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA,
		).
		Delete(&models.Connection{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) ListAccepted(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Addressee").
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
			userID, userID, models.ConnectionStatusAccepted).
		Order("updated_at DESC").
		Find(&conns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

func (r *connectionRepository) ListPendingIncoming(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, models.ConnectionStatusPending).
		Order("created_at DESC").
		Find(&conns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

// Follow is idempotent: repeating an existing follow is a no-op.
func (r *connectionRepository) Follow(ctx context.Context, followerID, followeeID uint) error {
	follow := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RelationsFor classifies each author relative to the viewer in two batched
// queries, regardless of page size. Priority when several apply:
// self > acquaintance > following > stranger.
func (r *connectionRepository) RelationsFor(ctx context.Context, viewerID uint, authorIDs []uint) (map[uint]models.Relation, error) {
	relations := make(map[uint]models.Relation, len(authorIDs))
	others := make([]uint, 0, len(authorIDs))
	for _, id := range authorIDs {
		if id == viewerID {
			relations[id] = models.RelationSelf
		} else {
			relations[id] = models.RelationStranger
			others = append(others, id)
		}
	}
	if len(others) == 0 {
		return relations, nil
	}

	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id IN ?", viewerID, others).
		Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, f := range follows {
		relations[f.FolloweeID] = models.RelationFollowing
	}

	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND ((requester_id = ? AND addressee_id IN ?) OR (addressee_id = ? AND requester_id IN ?))",
			models.ConnectionStatusAccepted, viewerID, others, viewerID, others,
		).
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, conn := range conns {
		other := conn.RequesterID
		if other == viewerID {
			other = conn.AddresseeID
		}
		relations[other] = models.RelationAcquaintance
	}

	return relations, nil
}
