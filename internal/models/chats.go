package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Chat is an ordered message log. Team chats share their ID with the
// owning team. Messages are stored as one JSON column so an appended
// pair commits as a single unit.
type Chat struct {
	ID       string         `gorm:"type:char(36);primaryKey" json:"id"`
	Title    string         `gorm:"type:varchar(512);" json:"title"`
	Messages datatypes.JSON `gorm:"type:jsonb" json:"messages"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Chat) TableName() string {
	return "chats"
}

// DecodeMessages unmarshals the stored message sequence. An empty
// column decodes to an empty slice.
func (c *Chat) DecodeMessages() ([]Message, error) {
	if len(c.Messages) == 0 {
		return []Message{}, nil
	}
	var messages []Message
	if err := json.Unmarshal(c.Messages, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}
	return messages, nil
}

// SetMessages replaces the stored sequence with the given messages.
func (c *Chat) SetMessages(messages []Message) error {
	encoded, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to encode chat messages: %w", err)
	}
	c.Messages = datatypes.JSON(encoded)
	return nil
}

// ChatEntity is the composed chat view returned by orchestration.
type ChatEntity struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Messages []Message `json:"messages"`
}
