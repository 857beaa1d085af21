package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerationUsage records one successful generation call and its cost.
// Rows feed billing; orchestration writes them best effort.
type GenerationUsage struct {
	ID     string          `gorm:"type:char(12);primaryKey" json:"id"`
	ChatID string          `gorm:"type:char(36);not null;index" json:"chat_id"`
	Model  string          `gorm:"type:varchar(50);not null" json:"model"`
	Cost   decimal.Decimal `gorm:"type:numeric(10,4);" json:"cost"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (GenerationUsage) TableName() string {
	return "generation_usages"
}
