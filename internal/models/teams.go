package models

import (
	"time"
)

// DefaultTeamImage is used when a team is created without an image.
const DefaultTeamImage = "https://i.pinimg.com/736x/6d/05/75/6d0575fb1f66c830cb71f07184cb2f94.jpg"

// Team represents a team entity in the database. Exactly one creator
// per team; creator-only operations check CreatorID.
type Team struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	CreatorID   string    `gorm:"type:char(36);not null;index" json:"creator_id"`
	Title       string    `gorm:"type:varchar(512);not null" json:"title"`
	Description string    `gorm:"type:varchar(1024);" json:"description"`
	Image       string    `gorm:"type:varchar(512);" json:"image"`
	Date        time.Time `gorm:"autoCreateTime" json:"date"`

	Creator *User       `gorm:"foreignKey:CreatorID;references:ID" json:"creator,omitempty"`
	Members []*UserTeam `gorm:"foreignKey:TeamID;references:ID" json:"members,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamInput carries the client-supplied team fields.
type TeamInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// TeamEntity is the composed team view: team fields plus the creator's
// display name and image.
type TeamEntity struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatorID    string    `json:"creator_id"`
	CreatorImage string    `json:"creator_image"`
	Image        string    `json:"image"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreateAt     time.Time `json:"create_at"`
}

// NewTeamEntity composes a team with its creator's display fields.
// A nil creator leaves the display fields blank (post-delete snapshots).
func NewTeamEntity(team *Team, creator *User) TeamEntity {
	entity := TeamEntity{
		ID:          team.ID,
		Title:       team.Title,
		Description: team.Description,
		CreatorID:   team.CreatorID,
		Image:       team.Image,
		CreateAt:    team.Date,
	}
	if creator != nil {
		entity.CreatorImage = creator.Image
		entity.FirstName = creator.FirstName
		entity.LastName = creator.LastName
	}
	return entity
}
