package logics

import (
	"context"
	"time"

	"crayon-server/internal/ai"
	"crayon-server/internal/ai/cache"
	"crayon-server/internal/failures"
	"crayon-server/internal/models"

	"go.uber.org/zap"
)

const freeChatCacheTTL = 24 * time.Hour

// FreeService serves the anonymous generation endpoint. Results are
// cached by prompt so repeated free requests do not burn generations.
type FreeService struct {
	generation ai.Generation
	cache      cache.Cache
	logger     *zap.Logger
}

// NewFreeService creates a new instance of FreeService. cache may be
// nil; every request then hits the generation service.
func NewFreeService(generation ai.Generation, cache cache.Cache, logger *zap.Logger) *FreeService {
	return &FreeService{
		generation: generation,
		cache:      cache,
		logger:     logger,
	}
}

// FreeChat generates an image for an anonymous prompt.
func (s *FreeService) FreeChat(ctx context.Context, input models.Free) (*models.FreeEntity, error) {
	if input.Prompt == "" {
		return nil, failures.InvalidRequest("prompt is required")
	}

	payload := map[string]any{"prompt": input.Prompt}

	if s.cache != nil {
		var cached models.FreeEntity
		hit, err := s.cache.Get(ctx, "free_chat", payload, &cached)
		if err != nil {
			s.logger.Warn("Free chat cache lookup failed", zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	url, err := s.generation.CreateFromText(ctx, payload)
	if err != nil {
		return nil, failures.Generation("Error getting image from text", err)
	}

	entity := models.FreeEntity{
		Prompt: input.Prompt,
		Image:  url,
	}

	if s.cache != nil {
		if err := s.cache.SetWithExpiration(ctx, "free_chat", payload, &entity, freeChatCacheTTL); err != nil {
			s.logger.Warn("Free chat cache store failed", zap.Error(err))
		}
	}

	return &entity, nil
}
