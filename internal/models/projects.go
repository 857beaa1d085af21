package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Project groups a team's sketches under a title. Sketch ids are stored
// as a JSON array; the sketches themselves live outside this core.
type Project struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(512);not null" json:"title"`
	TeamID    string         `gorm:"type:char(36);not null;index" json:"team_id"`
	SketchIDs datatypes.JSON `gorm:"type:jsonb" json:"sketch_ids"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"create_at"`
}

func (Project) TableName() string {
	return "projects"
}

// DecodeSketchIDs unmarshals the stored sketch id array. An empty
// column decodes to an empty slice.
func (p *Project) DecodeSketchIDs() ([]string, error) {
	if len(p.SketchIDs) == 0 {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal(p.SketchIDs, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetSketchIDs replaces the stored array with the given ids.
func (p *Project) SetSketchIDs(ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	p.SketchIDs = datatypes.JSON(raw)
	return nil
}

// ProjectEntity is the plain view of a project.
type ProjectEntity struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	TeamID    string    `json:"team_id"`
	SketchIDs []string  `json:"sketch_ids"`
	CreateAt  time.Time `json:"create_at"`
}
