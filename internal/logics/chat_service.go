package logics

import (
	"context"
	"fmt"
	"time"

	"crayon-server/internal/ai"
	"crayon-server/internal/failures"
	"crayon-server/internal/models"
	"crayon-server/internal/repositories"
	"crayon-server/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// imageEndpoints maps the image generation modes onto the external
// service's endpoints.
var imageEndpoints = map[string]string{
	models.ModelTextToImage:  ai.EndpointText2Img,
	models.ModelImageToImage: ai.EndpointImg2Img,
	models.ModelControlNet:   ai.EndpointControlNet,
	models.ModelPainting:     ai.EndpointInpaint,
	models.ModelInstruction:  ai.EndpointPix2Pix,
}

// generationCosts holds the per-call cost charged for each mode.
var generationCosts = map[string]decimal.Decimal{
	models.ModelTextToImage:   decimal.NewFromFloat(0.02),
	models.ModelImageToImage:  decimal.NewFromFloat(0.02),
	models.ModelControlNet:    decimal.NewFromFloat(0.02),
	models.ModelPainting:      decimal.NewFromFloat(0.02),
	models.ModelInstruction:   decimal.NewFromFloat(0.02),
	models.ModelImageVariant:  decimal.NewFromFloat(0.02),
	models.ModelEditImage:     decimal.NewFromFloat(0.02),
	models.ModelImageFromText: decimal.NewFromFloat(0.02),
	models.ModelChatbot:       decimal.NewFromFloat(0.002),
	models.ModelAnalysis:      decimal.NewFromFloat(0.004),
	models.ModelTextTo3D:      decimal.NewFromFloat(0.08),
	models.ModelImageTo3D:     decimal.NewFromFloat(0.08),
}

// ChatService runs the team chat turns: it dispatches the requested
// generation mode, appends the user/AI message pair and persists the
// sequence as a single unit.
type ChatService struct {
	chatRepo   repositories.ChatRepository
	usageRepo  repositories.UsageRepository
	generation ai.Generation
	logger     *zap.Logger
}

// NewChatService creates a new instance of ChatService. usageRepo may
// be nil; usage accounting is then skipped.
func NewChatService(
	chatRepo repositories.ChatRepository,
	usageRepo repositories.UsageRepository,
	generation ai.Generation,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		chatRepo:   chatRepo,
		usageRepo:  usageRepo,
		generation: generation,
		logger:     logger,
	}
}

// generationResult carries whatever a dispatched mode produced, plus
// the hosted copy of the user's input image when one was uploaded.
type generationResult struct {
	imageAI   string
	chat      string
	analysis  models.Analysis
	threeD    string
	userImage string
}

// TeamChat runs one chat turn. The prompt is validated before any
// lookup or external call so a bad request never costs a generation.
func (s *ChatService) TeamChat(ctx context.Context, input models.MessageInput, chatID string) (*models.Message, error) {
	if input.Prompt == "" {
		return nil, failures.InvalidRequest("prompt is required")
	}

	chat, err := s.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat: %w", err)
	}
	if chat == nil {
		return nil, failures.NotFound("Chat does not exist")
	}

	result, err := s.dispatch(ctx, input)
	if err != nil {
		return nil, err
	}

	messages, err := chat.DecodeMessages()
	if err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	now := time.Now().UTC()

	userMsgID, err := utils.GenerateUniqueID("m")
	if err != nil {
		return nil, fmt.Errorf("failed to generate message id: %w", err)
	}
	userMsg := models.Message{
		ID:        userMsgID,
		Sender:    models.SenderUser,
		Date:      now,
		Prompt:    input.Prompt,
		ImageUser: result.userImage,
		Model:     input.Model,
	}

	aiID, err := utils.GenerateUniqueID("m")
	if err != nil {
		return nil, fmt.Errorf("failed to generate message id: %w", err)
	}
	aiMsg := models.Message{
		ID:       aiID,
		Sender:   models.SenderAI,
		Date:     now,
		ImageAI:  result.imageAI,
		Model:    input.Model,
		Analysis: result.analysis,
		ThreeD:   result.threeD,
		Chat:     result.chat,
	}

	messages = append(messages, userMsg, aiMsg)
	if err := chat.SetMessages(messages); err != nil {
		return nil, fmt.Errorf("failed to encode messages: %w", err)
	}
	if err := s.chatRepo.Save(ctx, chat); err != nil {
		return nil, fmt.Errorf("failed to save chat: %w", err)
	}

	s.recordUsage(ctx, chatID, input.Model)

	return &aiMsg, nil
}

// dispatch routes the turn to the generation capability selected by the
// input's model field.
func (s *ChatService) dispatch(ctx context.Context, input models.MessageInput) (*generationResult, error) {
	switch input.Model {
	case models.ModelTextToImage, models.ModelImageToImage, models.ModelControlNet,
		models.ModelPainting, models.ModelInstruction:
		return s.dispatchImage(ctx, input)

	case models.ModelImageVariant:
		url, err := s.generation.ImageVariant(ctx, map[string]any{"image": input.Image})
		if err != nil {
			return nil, failures.Generation("Error getting image variant", err)
		}
		return &generationResult{imageAI: url}, nil

	case models.ModelEditImage:
		uploaded, err := s.generation.UploadImage(ctx, input.Image)
		if err != nil {
			return nil, failures.Generation("Error uploading image", err)
		}
		url, err := s.generation.ImageVariant(ctx, map[string]any{
			"prompt": input.Prompt,
			"image":  uploaded,
		})
		if err != nil {
			return nil, failures.Generation("Error getting image variant", err)
		}
		return &generationResult{imageAI: url, userImage: uploaded}, nil

	case models.ModelImageFromText:
		url, err := s.generation.CreateFromText(ctx, map[string]any{"prompt": input.Prompt})
		if err != nil {
			return nil, failures.Generation("Error getting image from text", err)
		}
		return &generationResult{imageAI: url}, nil

	case models.ModelChatbot:
		reply, err := s.generation.Chatbot(ctx, map[string]any{"prompt": input.Prompt})
		if err != nil {
			return nil, failures.Generation("Error getting chatbot response", err)
		}
		return &generationResult{chat: reply}, nil

	case models.ModelAnalysis:
		uploaded, err := s.generation.UploadImage(ctx, input.Image)
		if err != nil {
			return nil, failures.Generation("Error uploading image", err)
		}
		analysis, err := s.generation.Analysis(ctx, map[string]any{
			"prompt": input.Prompt,
			"image":  uploaded,
		})
		if err != nil {
			return nil, failures.Generation("Error analysing image", err)
		}
		return &generationResult{analysis: *analysis, userImage: uploaded}, nil

	case models.ModelTextTo3D:
		url, err := s.generation.TextTo3D(ctx, map[string]any{"prompt": input.Prompt})
		if err != nil {
			return nil, failures.Generation("Error generating 3D from text", err)
		}
		return &generationResult{threeD: url}, nil

	case models.ModelImageTo3D:
		uploaded, err := s.generation.UploadImage(ctx, input.Image)
		if err != nil {
			return nil, failures.Generation("Error uploading image", err)
		}
		url, err := s.generation.ImageTo3D(ctx, map[string]any{"image": uploaded})
		if err != nil {
			return nil, failures.Generation("Error generating 3D from image", err)
		}
		return &generationResult{threeD: url, userImage: uploaded}, nil

	default:
		return nil, failures.UnsupportedModel(fmt.Sprintf("Unknown generation model %q", input.Model))
	}
}

// dispatchImage handles the modes sharing the image endpoint family.
// All but text_to_image upload the input image and pass it along.
func (s *ChatService) dispatchImage(ctx context.Context, input models.MessageInput) (*generationResult, error) {
	payload := map[string]any{"prompt": input.Prompt}
	result := generationResult{}

	if input.Model != models.ModelTextToImage {
		uploaded, err := s.generation.UploadImage(ctx, input.Image)
		if err != nil {
			return nil, failures.Generation("Error uploading image", err)
		}
		payload["init_image"] = uploaded
		result.userImage = uploaded
	}

	url, err := s.generation.GenerateImage(ctx, imageEndpoints[input.Model], payload)
	if err != nil {
		return nil, failures.Generation("Error generating image", err)
	}
	result.imageAI = url
	return &result, nil
}

// recordUsage books the turn's cost. Accounting is best effort; the
// generated message is already committed when this runs.
func (s *ChatService) recordUsage(ctx context.Context, chatID, model string) {
	if s.usageRepo == nil {
		return
	}
	cost, ok := generationCosts[model]
	if !ok {
		return
	}
	id, err := utils.GenerateUniqueID("g")
	if err != nil {
		s.logger.Warn("Failed to generate usage id", zap.Error(err))
		return
	}
	usage := models.GenerationUsage{
		ID:     id,
		ChatID: chatID,
		Model:  model,
		Cost:   cost,
	}
	if err := s.usageRepo.Record(ctx, &usage); err != nil {
		s.logger.Warn("Failed to record generation usage",
			zap.String("chatID", chatID),
			zap.String("model", model),
			zap.Error(err),
		)
	}
}

// ViewChat retrieves a chat with its decoded message sequence.
func (s *ChatService) ViewChat(ctx context.Context, chatID string) (*models.ChatEntity, error) {
	chat, err := s.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat: %w", err)
	}
	if chat == nil {
		return nil, failures.NotFound("Chat does not exist")
	}

	messages, err := chat.DecodeMessages()
	if err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	return &models.ChatEntity{
		ID:       chat.ID,
		Title:    chat.Title,
		Messages: messages,
	}, nil
}

// DeleteChat removes a chat and its message history.
func (s *ChatService) DeleteChat(ctx context.Context, chatID string) (*models.ChatEntity, error) {
	entity, err := s.ViewChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	chat := models.Chat{ID: chatID}
	if err := s.chatRepo.Delete(ctx, &chat); err != nil {
		return nil, fmt.Errorf("failed to delete chat: %w", err)
	}
	return entity, nil
}
