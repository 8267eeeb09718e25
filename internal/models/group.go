package models

import "time"

// GroupType defines the visibility of a group.
type GroupType string

const (
	// GroupTypePublic is a group anyone can discover and join.
	GroupTypePublic GroupType = "PUBLIC"
	// GroupTypePrivate is a group visible only to its members.
	GroupTypePrivate GroupType = "PRIVATE"
)

// ValidGroupType reports whether t is a known group type.
func ValidGroupType(t GroupType) bool {
	return t == GroupTypePublic || t == GroupTypePrivate
}

// Group is a user-owned community.
type Group struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:120;not null" json:"name"`
	GroupType       GroupType `gorm:"type:varchar(20);not null;default:'PUBLIC'" json:"groupType"`
	CreatedByUserID uint      `gorm:"not null;index" json:"created_by_user_id"`
	CreatedByUser   *User     `gorm:"foreignKey:CreatedByUserID" json:"created_by_user,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Group) TableName() string {
	return "groups"
}

// GroupMembershipRole defines a member's role in a group.
type GroupMembershipRole string

const (
	// GroupMembershipRoleAdmin is held by the group creator.
	GroupMembershipRoleAdmin GroupMembershipRole = "admin"
	// GroupMembershipRoleMember is the default member role.
	GroupMembershipRoleMember GroupMembershipRole = "member"
)

// GroupMembership maps users to groups and tracks role.
type GroupMembership struct {
	GroupID   uint                `gorm:"primaryKey;autoIncrement:false" json:"group_id"`
	Group     *Group              `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	UserID    uint                `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	User      *User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role      GroupMembershipRole `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
