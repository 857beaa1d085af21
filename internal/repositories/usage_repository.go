package repositories

import (
	"context"

	"crayon-server/internal/models"

	"gorm.io/gorm"
)

// GormUsageRepository is the PostgreSQL-backed UsageRepository.
type GormUsageRepository struct {
	db *gorm.DB
}

// NewUsageRepository creates a UsageRepository on top of the given DB handle.
func NewUsageRepository(db *gorm.DB) *GormUsageRepository {
	return &GormUsageRepository{db: db}
}

func (r *GormUsageRepository) Record(ctx context.Context, usage *models.GenerationUsage) error {
	return r.db.WithContext(ctx).Create(usage).Error
}
