package repository

import (
	"github.com/agrovia/partnership-api/internal/models"
	"gorm.io/gorm"
)

// GormChatMessageRepository is a GORM implementation of ChatMessageRepository
type GormChatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new ChatMessageRepository
func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &GormChatMessageRepository{db: db}
}

// Create creates a new chat message
func (r *GormChatMessageRepository) Create(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

// ListConversation lists every message exchanged between two users in
// chronological order
func (r *GormChatMessageRepository) ListConversation(userID1, userID2 uint64) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID1, userID2, userID2, userID1).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
