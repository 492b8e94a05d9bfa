package services

import (
	"errors"
	"fmt"

	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSenderNotFound   = errors.New("sender does not exist")
	ErrReceiverNotFound = errors.New("receiver does not exist")
)

// MessagingService provides business logic for notifications and chat.
type MessagingService struct {
	notificationRepo repository.NotificationRepository
	chatRepo         repository.ChatMessageRepository
	userRepo         repository.UserRepository
}

// NewMessagingService creates a new MessagingService.
func NewMessagingService(
	notificationRepo repository.NotificationRepository,
	chatRepo repository.ChatMessageRepository,
	userRepo repository.UserRepository,
) *MessagingService {
	return &MessagingService{
		notificationRepo: notificationRepo,
		chatRepo:         chatRepo,
		userRepo:         userRepo,
	}
}

// CreateNotificationInput represents parameters to create a notification.
type CreateNotificationInput struct {
	UserID           uint64
	Title            string
	Message          string
	NotificationType models.NotificationType
}

// CreateNotification validates the user reference and creates the
// notification unread.
func (s *MessagingService) CreateNotification(input CreateNotificationInput) (*models.Notification, error) {
	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	notification := &models.Notification{
		UserID:           input.UserID,
		Title:            input.Title,
		Message:          input.Message,
		NotificationType: input.NotificationType,
		IsRead:           false,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification, nil
}

// ListUserNotifications lists a user's notifications, most recent first.
func (s *MessagingService) ListUserNotifications(userID uint64) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// SendChatMessageInput represents parameters to send a chat message.
type SendChatMessageInput struct {
	SenderID   uint64
	ReceiverID uint64
	Message    string
}

// SendChatMessage validates both participants and stores the message unread.
func (s *MessagingService) SendChatMessage(input SendChatMessageInput) (*models.ChatMessage, error) {
	if _, err := s.userRepo.FindByID(input.SenderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSenderNotFound
		}
		return nil, fmt.Errorf("failed to find sender: %w", err)
	}

	if _, err := s.userRepo.FindByID(input.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, fmt.Errorf("failed to find receiver: %w", err)
	}

	message := &models.ChatMessage{
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Message:    input.Message,
		IsRead:     false,
	}

	if err := s.chatRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to send chat message: %w", err)
	}

	return message, nil
}

// GetConversation lists every message exchanged between two users in
// chronological order.
func (s *MessagingService) GetConversation(userID1, userID2 uint64) ([]models.ChatMessage, error) {
	messages, err := s.chatRepo.ListConversation(userID1, userID2)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}
