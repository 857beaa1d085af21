package controllers

import (
	"net/http"

	"crayon-server/internal/logics"
	"crayon-server/internal/models"

	"github.com/labstack/echo/v4"
)

// ChatController handles chat-related HTTP requests.
type ChatController struct {
	chatService *logics.ChatService
}

// NewChatController creates a new instance of ChatController.
func NewChatController(chatService *logics.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// TeamChat runs one chat turn against the team's chat.
func (cc *ChatController) TeamChat(c echo.Context) error {
	var input models.MessageInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	message, err := cc.chatService.TeamChat(c.Request().Context(), input, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, message)
}

// ViewChat retrieves a chat with its full message history.
func (cc *ChatController) ViewChat(c echo.Context) error {
	entity, err := cc.chatService.ViewChat(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

// DeleteChat removes a chat and its history.
func (cc *ChatController) DeleteChat(c echo.Context) error {
	entity, err := cc.chatService.DeleteChat(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}
