package models

import (
	"time"

	"gorm.io/gorm"
)

// ConnectionStatus represents the status of a connection request.
type ConnectionStatus string

const (
	// ConnectionStatusPending indicates a connection request awaiting acceptance.
	ConnectionStatusPending ConnectionStatus = "pending"
	// ConnectionStatusAccepted indicates a mutual connection.
	ConnectionStatusAccepted ConnectionStatus = "accepted"
)

// Connection is a two-way relationship between accounts. An accepted
// connection makes the two users acquaintances of each other.
//
// UserLowID/UserHighID hold the pair in canonical order so one unique index
// covers both directions: A->B and B->A racing each other collide on the
// index instead of producing two rows for the same pair.
type Connection struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RequesterID uint             `gorm:"not null;index:idx_connection_users" json:"requester_id"`
	AddresseeID uint             `gorm:"not null;index:idx_connection_users" json:"addressee_id"`
	UserLowID   uint             `gorm:"not null;uniqueIndex:idx_connection_pair" json:"-"`
	UserHighID  uint             `gorm:"not null;uniqueIndex:idx_connection_pair" json:"-"`
	Status      ConnectionStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Addressee User `gorm:"foreignKey:AddresseeID" json:"addressee,omitempty"`
}

// BeforeCreate derives the canonical pair columns from the directed pair.
func (c *Connection) BeforeCreate(tx *gorm.DB) error {
	c.UserLowID, c.UserHighID = c.RequesterID, c.AddresseeID
	if c.UserLowID > c.UserHighID {
		c.UserLowID, c.UserHighID = c.UserHighID, c.UserLowID
	}
	return nil
}

// TableName specifies the table name for GORM.
func (Connection) TableName() string {
	return "connections"
}

// Follow is a one-way relationship: the follower sees the followee's posts
// tagged as "following" in the feed.
type Follow struct {
	FollowerID uint      `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FolloweeID uint      `gorm:"primaryKey;autoIncrement:false" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}

// Relation classifies a post author relative to the viewing account.
type Relation string

const (
	// RelationSelf means the viewer authored the post.
	RelationSelf Relation = "self"
	// RelationAcquaintance means viewer and author share an accepted connection.
	RelationAcquaintance Relation = "acquaintance"
	// RelationFollowing means the viewer follows the author.
	RelationFollowing Relation = "following"
	// RelationStranger is everyone else.
	RelationStranger Relation = "stranger"
)
