package models

import (
	"time"
)

// UserTeam represents the many-to-many relationship between users and
// teams. The composite unique index enforces at the storage layer that
// no duplicate membership row exists for the same (user, team) pair,
// which the existence check alone cannot guarantee under concurrency.
type UserTeam struct {
	ID     string `gorm:"type:char(36);primaryKey" json:"id"`
	UserID string `gorm:"type:char(36);not null;uniqueIndex:idx_user_team" json:"user_id"`
	TeamID string `gorm:"type:char(36);not null;uniqueIndex:idx_user_team" json:"team_id"`

	User *User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Team *Team `gorm:"foreignKey:TeamID;references:ID;constraint:OnDelete:CASCADE;" json:"team,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserTeam) TableName() string {
	return "user_team"
}
