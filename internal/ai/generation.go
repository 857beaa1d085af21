package ai

import (
	"context"

	"crayon-server/internal/models"
)

// Endpoints of the generation service's image API, all under /api/v3.
// The chat orchestration picks one per generation mode.
const (
	EndpointText2Img   = "text2img"
	EndpointImg2Img    = "img2img"
	EndpointControlNet = "controlnet"
	EndpointInpaint    = "inpaint"
	EndpointPix2Pix    = "pix2pix"

	endpointVariations = "img_variations"
	endpointText23D    = "text23d"
	endpointImg23D     = "img23d"
)

// Generation is the facade over the external AI service. One method per
// generation capability; every call honors its context and returns a
// plain error for the orchestration layer to wrap.
type Generation interface {
	// GenerateImage posts the payload to the given image endpoint and
	// returns the produced image URL.
	GenerateImage(ctx context.Context, endpoint string, payload map[string]any) (string, error)

	// UploadImage stores a user-supplied source image (data URI, base64
	// or remote URL) and returns its hosted URL.
	UploadImage(ctx context.Context, source string) (string, error)

	ImageVariant(ctx context.Context, payload map[string]any) (string, error)
	CreateFromText(ctx context.Context, payload map[string]any) (string, error)
	Chatbot(ctx context.Context, payload map[string]any) (string, error)
	Analysis(ctx context.Context, payload map[string]any) (*models.Analysis, error)
	TextTo3D(ctx context.Context, payload map[string]any) (string, error)
	ImageTo3D(ctx context.Context, payload map[string]any) (string, error)
}

// Notify is the generation service's response envelope.
type Notify struct {
	Status         string            `json:"status"`
	GenerationTime string            `json:"generationTime"`
	ID             string            `json:"id"`
	Output         []string          `json:"output"`
	Meta           map[string]string `json:"meta"`
}
