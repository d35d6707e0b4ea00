package handler

import (
	"net/http"

	"portfolio_api/internal/model"
	"portfolio_api/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler accepts contact form submissions and lists them for the
// administrator
type MessageHandler struct {
	service service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(s service.MessageService) *MessageHandler {
	return &MessageHandler{service: s}
}

func (h *MessageHandler) Contact(c *gin.Context) {
	var req model.CreateMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}

func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// RegisterMessageRoutes registers the public contact route and the
// protected inbox
func (h *MessageHandler) RegisterMessageRoutes(rg *gin.RouterGroup, authMW, readMW gin.HandlerFunc) {
	rg.POST("/contact", h.Contact)
	rg.GET("/messages", authMW, readMW, h.List)
}
