package models

import (
	"time"
)

// Message senders. Every chat turn produces exactly one message of each.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// Generation modes dispatched by the chat orchestration.
const (
	ModelTextToImage   = "text_to_image"
	ModelImageToImage  = "image_to_image"
	ModelControlNet    = "controlNet"
	ModelPainting      = "painting"
	ModelInstruction   = "instruction"
	ModelImageVariant  = "image_variant"
	ModelEditImage     = "edit_image"
	ModelImageFromText = "image_from_text"
	ModelChatbot       = "chatbot"
	ModelAnalysis      = "analysis"
	ModelTextTo3D      = "text_to_3D"
	ModelImageTo3D     = "image_to_3D"
)

// Analysis is the structured result of the image-analysis mode.
type Analysis struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Message is one entry in a chat's message sequence. Fields that do not
// apply to a given sender or generation mode stay at their empty
// placeholder values.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Date      time.Time `json:"date"`
	Prompt    string    `json:"prompt"`
	ImageUser string    `json:"imageUser"`
	ImageAI   string    `json:"imageAI"`
	Model     string    `json:"model"`
	Analysis  Analysis  `json:"analysis"`
	ThreeD    string    `json:"3D"`
	Chat      string    `json:"chat"`
}

// MessageInput is the client payload for one chat turn.
type MessageInput struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Image  string `json:"image"`
}
