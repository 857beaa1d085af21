package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a platform user in the database.
type User struct {
	ID        string `gorm:"type:char(36);primaryKey" json:"id"`
	FirstName string `gorm:"type:varchar(250);" json:"firstName"`
	LastName  string `gorm:"type:varchar(250);" json:"lastName"`
	Bio       string `gorm:"type:text;" json:"bio"`
	Email     string `gorm:"size:250;not null;unique" json:"email"`
	Image     string `gorm:"type:varchar(512);" json:"image"`
	Password  string `gorm:"type:varchar(250);" json:"-"`
	Country   string `gorm:"type:varchar(250);" json:"country"`

	// Team relationships
	Teams        []*UserTeam `gorm:"foreignKey:UserID;references:ID" json:"teams,omitempty"`
	CreatedTeams []*Team     `gorm:"foreignKey:CreatorID;references:ID" json:"created_teams,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserUpdate is used for partial updates of a user profile.
type UserUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Bio       *string `json:"bio"`
	Country   *string `json:"country"`
	Image     *string `json:"image"`
}

// UserEntity is the composed user view returned by orchestration:
// profile fields plus derived follower/following counts.
type UserEntity struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
	Image     string `json:"image"`
	Country   string `json:"country"`
	Followers int64  `json:"followers"`
	Following int64  `json:"following"`
}

// UserFollow is a directed follow edge between two users. The core only
// reads it to derive the counts on UserEntity.
type UserFollow struct {
	ID         string `gorm:"type:char(36);primaryKey" json:"id"`
	FollowerID string `gorm:"type:char(36);not null;index" json:"follower_id"`
	FollowedID string `gorm:"type:char(36);not null;index" json:"followed_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}
