package service

import (
	"context"
	"twitterclone/internal/models"
	"twitterclone/internal/repository"
)

type ConversationService interface {
	SaveMessage(ctx context.Context, senderID, receiverID, content string) (*models.Conversation, error)
	GetConversations(ctx context.Context, senderID, receiverID string, limit, page int) ([]models.Conversation, error)
}

type conversationService struct {
	conversationRepo repository.ConversationRepository
}

func NewConversationService(conversationRepo repository.ConversationRepository) ConversationService {
	return &conversationService{conversationRepo: conversationRepo}
}

func (s *conversationService) SaveMessage(ctx context.Context, senderID, receiverID, content string) (*models.Conversation, error) {
	conversation := &models.Conversation{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}

	err := s.conversationRepo.Create(ctx, conversation)
	if err != nil {
		return nil, err
	}

	return conversation, nil
}

func (s *conversationService) GetConversations(ctx context.Context, senderID, receiverID string, limit, page int) ([]models.Conversation, error) {
	return s.conversationRepo.GetConversations(ctx, senderID, receiverID, limit, page)
}
