package repository

import (
	"context"

	"liberty/internal/models"
	"liberty/internal/observability"

	"gorm.io/gorm"
)

// GroupRepository defines persistence operations for groups and memberships.
type GroupRepository interface {
	CreateWithOwner(ctx context.Context, group *models.Group) error
	ListForUser(ctx context.Context, userID uint) ([]models.Group, error)
	GetByID(ctx context.Context, id uint) (*models.Group, error)
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository returns a new GroupRepository implementation.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// CreateWithOwner persists the group and the creator's admin membership in
// one transaction so a group can never exist without its admin.
func (r *groupRepository) CreateWithOwner(ctx context.Context, group *models.Group) error {
	defer observability.TrackQuery("insert", "groups")()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		membership := models.GroupMembership{
			GroupID: group.ID,
			UserID:  group.CreatedByUserID,
			Role:    models.GroupMembershipRoleAdmin,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListForUser returns groups the user created or belongs to. Membership rows
// cover both cases because creation writes the admin membership.
func (r *groupRepository) ListForUser(ctx context.Context, userID uint) ([]models.Group, error) {
	var groups []models.Group
	defer observability.TrackQuery("select", "groups")()
	err := r.db.WithContext(ctx).
		Joins("JOIN group_memberships ON group_memberships.group_id = groups.id").
		Where("group_memberships.user_id = ?", userID).
		Order("groups.created_at ASC").
		Find(&groups).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

func (r *groupRepository) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	defer observability.TrackQuery("select", "groups")()
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("Group", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &group, nil
}
