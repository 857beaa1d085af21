package repositories

import (
	"context"
	"errors"

	"crayon-server/internal/models"

	"gorm.io/gorm"
)

// GormChatRepository is the PostgreSQL-backed ChatRepository.
type GormChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a ChatRepository on top of the given DB handle.
func NewChatRepository(db *gorm.DB) *GormChatRepository {
	return &GormChatRepository{db: db}
}

func (r *GormChatRepository) FindByID(ctx context.Context, id string) (*models.Chat, error) {
	var chat models.Chat
	if err := r.db.WithContext(ctx).First(&chat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

func (r *GormChatRepository) Save(ctx context.Context, chat *models.Chat) error {
	return r.db.WithContext(ctx).Save(chat).Error
}

func (r *GormChatRepository) Delete(ctx context.Context, chat *models.Chat) error {
	return r.db.WithContext(ctx).Delete(chat).Error
}
