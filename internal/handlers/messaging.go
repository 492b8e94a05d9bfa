package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/agrovia/partnership-api/internal/errors"
	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MessagingHandler coordinates notification and chat HTTP handlers.
type MessagingHandler struct {
	messagingService *services.MessagingService
}

// NewMessagingHandler creates a new MessagingHandler.
func NewMessagingHandler(messagingService *services.MessagingService) *MessagingHandler {
	return &MessagingHandler{
		messagingService: messagingService,
	}
}

// CreateNotification creates a notification for a user.
func (h *MessagingHandler) CreateNotification(c *gin.Context) {
	type CreateNotificationRequest struct {
		UserID           uint64                  `json:"user_id" binding:"required"`
		Title            string                  `json:"title" binding:"required"`
		Message          string                  `json:"message" binding:"required"`
		NotificationType models.NotificationType `json:"notification_type" binding:"required,oneof=payment progress_update risk_alert event general"`
	}

	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	notification, err := h.messagingService.CreateNotification(services.CreateNotificationInput{
		UserID:           req.UserID,
		Title:            req.Title,
		Message:          req.Message,
		NotificationType: req.NotificationType,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notification)
}

// GetUserNotifications lists a user's notifications, most recent first.
func (h *MessagingHandler) GetUserNotifications(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notifications, err := h.messagingService.ListUserNotifications(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
	})
}

// SendChatMessage stores a message between two users.
func (h *MessagingHandler) SendChatMessage(c *gin.Context) {
	type SendChatMessageRequest struct {
		SenderID   uint64 `json:"sender_id" binding:"required"`
		ReceiverID uint64 `json:"receiver_id" binding:"required"`
		Message    string `json:"message" binding:"required"`
	}

	var req SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.messagingService.SendChatMessage(services.SendChatMessageInput{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// GetChatMessages lists the conversation between two users in chronological
// order, both directions included.
func (h *MessagingHandler) GetChatMessages(c *gin.Context) {
	userID1, err := strconv.ParseUint(c.Query("user1"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user1")
		return
	}
	userID2, err := strconv.ParseUint(c.Query("user2"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user2")
		return
	}

	messages, err := h.messagingService.GetConversation(userID1, userID2)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
	})
}
