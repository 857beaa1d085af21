package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"crayon-server/configs"
	"crayon-server/internal/models"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"
)

const analysisInstruction = "You are an art critic. Analyse the image the user sends " +
	"and reply with a JSON object of exactly two string fields: " +
	`"title" (a short headline) and "detail" (a paragraph of analysis). ` +
	"Reply with the JSON object only."

// Client implements the Generation facade. Image and 3D modes go to the
// generation service's HTTP API, conversational modes go to OpenAI, and
// uploads go to the injected Uploader.
type Client struct {
	baseURL     string
	apiKey      string
	http        *http.Client
	uploader    Uploader
	openai      *openai.Client
	chatModel   string
	visionModel string
	logger      *zap.Logger
}

// NewClient creates the generation client. The base URL and timeout come
// from configuration; nothing in this package reads global state.
func NewClient(cfg configs.GenerationConfig, openaiCfg configs.OpenaiConfig, uploader Uploader, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	chatModel := openaiCfg.ChatModel
	if chatModel == "" {
		chatModel = string(openai.ChatModelGPT4o)
	}
	visionModel := openaiCfg.VisionModel
	if visionModel == "" {
		visionModel = chatModel
	}

	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:      cfg.ApiKey,
		http:        &http.Client{Timeout: timeout},
		uploader:    uploader,
		openai:      openai.NewClient(option.WithAPIKey(openaiCfg.ApiKey)),
		chatModel:   chatModel,
		visionModel: visionModel,
		logger:      logger,
	}
}

// post sends the payload to one of the generation endpoints and returns
// the decoded Notify envelope.
func (c *Client) post(ctx context.Context, endpoint string, payload map[string]any) (*Notify, error) {
	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["key"] = c.apiKey

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/v3/%s", c.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation service returned status %d", resp.StatusCode)
	}

	var notify Notify
	if err := json.NewDecoder(resp.Body).Decode(&notify); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}

	c.logger.Info("Generation call completed",
		zap.String("endpoint", endpoint),
		zap.String("status", notify.Status),
		zap.Duration("elapsed", time.Since(start)),
	)

	if notify.Status != "success" {
		return nil, fmt.Errorf("generation service reported status %q", notify.Status)
	}
	if len(notify.Output) == 0 {
		return nil, fmt.Errorf("generation service returned no output")
	}
	return &notify, nil
}

func (c *Client) GenerateImage(ctx context.Context, endpoint string, payload map[string]any) (string, error) {
	notify, err := c.post(ctx, endpoint, payload)
	if err != nil {
		return "", err
	}
	return notify.Output[0], nil
}

func (c *Client) UploadImage(ctx context.Context, source string) (string, error) {
	return c.uploader.Upload(ctx, source)
}

func (c *Client) ImageVariant(ctx context.Context, payload map[string]any) (string, error) {
	notify, err := c.post(ctx, endpointVariations, payload)
	if err != nil {
		return "", err
	}
	return notify.Output[0], nil
}

func (c *Client) CreateFromText(ctx context.Context, payload map[string]any) (string, error) {
	notify, err := c.post(ctx, EndpointText2Img, payload)
	if err != nil {
		return "", err
	}
	return notify.Output[0], nil
}

func (c *Client) TextTo3D(ctx context.Context, payload map[string]any) (string, error) {
	notify, err := c.post(ctx, endpointText23D, payload)
	if err != nil {
		return "", err
	}
	return notify.Output[0], nil
}

func (c *Client) ImageTo3D(ctx context.Context, payload map[string]any) (string, error) {
	notify, err := c.post(ctx, endpointImg23D, payload)
	if err != nil {
		return "", err
	}
	return notify.Output[0], nil
}

func (c *Client) Chatbot(ctx context.Context, payload map[string]any) (string, error) {
	prompt, _ := payload["prompt"].(string)

	completion, err := c.openai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model: openai.F(openai.ChatModel(c.chatModel)),
	})
	if err != nil {
		return "", fmt.Errorf("chatbot request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chatbot returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

func (c *Client) Analysis(ctx context.Context, payload map[string]any) (*models.Analysis, error) {
	prompt, _ := payload["prompt"].(string)
	image, _ := payload["image"].(string)

	completion, err := c.openai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(analysisInstruction),
			openai.UserMessageParts(
				openai.TextPart(prompt),
				openai.ImagePart(image),
			),
		}),
		Model: openai.F(openai.ChatModel(c.visionModel)),
	})
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("analysis returned no choices")
	}

	content := completion.Choices[0].Message.Content

	var analysis models.Analysis
	if err := json.Unmarshal([]byte(extractJSON(content)), &analysis); err != nil {
		// Model replied with prose instead of JSON; keep the text.
		return &models.Analysis{Title: "Image analysis", Detail: content}, nil
	}
	return &analysis, nil
}

// extractJSON trims markdown fences the model sometimes wraps around
// its JSON reply.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			return content[start : end+1]
		}
	}
	return content
}
