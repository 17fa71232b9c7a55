// handlers/message.go
package handlers

import (
	"net/http"

	"myadvisor/services/message"

	"github.com/gin-gonic/gin"
)

// MessageHandler exposes direct-messaging endpoints.
type MessageHandler struct {
	MessageService message.MessageService
}

func NewMessageHandler(svc message.MessageService) *MessageHandler {
	return &MessageHandler{MessageService: svc}
}

// SendMessageHandler handles POST /api/messages.
func (h *MessageHandler) SendMessageHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	var req struct {
		RecipientID uint   `json:"recipient_id" binding:"required"`
		Content     string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sent, err := h.MessageService.Send(usr.ID, req.RecipientID, req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sent)
}

// GetConversationHandler handles GET /api/messages/:userID.
func (h *MessageHandler) GetConversationHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	otherID, err := uintParam(c, "userID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	messages, err := h.MessageService.Conversation(usr.ID, otherID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}
