package repository

import (
	"context"
	"fmt"
	"time"
	"twitterclone/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type conversationRepository struct {
	db *sqlx.DB
}

func NewConversationRepository(db *sqlx.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, conversation *models.Conversation) error {
	if conversation.ConversationID == "" {
		conversation.ConversationID = uuid.New().String()
	}

	now := time.Now()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now

	query := `
		INSERT INTO conversations (conversation_id, sender_id, receiver_id, content, created_at, updated_at)
		VALUES (:conversation_id, :sender_id, :receiver_id, :content, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, conversation)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении сообщения: %w", err)
	}

	return nil
}

// GetConversations - переписка в обе стороны, новые сообщения первыми
func (r *conversationRepository) GetConversations(ctx context.Context, senderID, receiverID string, limit, page int) ([]models.Conversation, error) {
	query := `
		SELECT * FROM conversations
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	var conversations []models.Conversation
	err := r.db.SelectContext(ctx, &conversations, query, senderID, receiverID, limit, limit*(page-1))
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении переписки: %w", err)
	}

	return conversations, nil
}
