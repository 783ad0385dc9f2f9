// internal/service/chat_service.go
package service

import (
	"context"
	"fmt"

	"localscoop/internal/domain"
	"localscoop/internal/repository"
	"localscoop/internal/util"
)

// ChatService defines the interface for buyer/store conversations.
type ChatService interface {
	OpenChat(ctx context.Context, buyerID, storeID int64) (*domain.Chat, error)
	GetBuyerChats(ctx context.Context, buyerID int64) ([]domain.Chat, error)
	GetSellerChats(ctx context.Context, storeID int64) ([]domain.Chat, error)
}

type chatService struct {
	dbExecutor repository.DBExecutor
	chatRepo   repository.ChatRepository
}

// NewChatService creates a new instance of ChatService.
func NewChatService(dbExecutor repository.DBExecutor, chatRepo repository.ChatRepository) ChatService {
	return &chatService{dbExecutor: dbExecutor, chatRepo: chatRepo}
}

// OpenChat returns the conversation between buyer and store, creating it on first contact.
func (s *chatService) OpenChat(ctx context.Context, buyerID, storeID int64) (*domain.Chat, error) {
	chat, err := s.chatRepo.CreateChat(ctx, s.dbExecutor, buyerID, storeID)
	if err != nil {
		if util.IsError(err, util.ErrInvalidInput) {
			return nil, fmt.Errorf("open chat: buyer %d or store %d: %w", buyerID, storeID, util.ErrNotFound)
		}
		return nil, fmt.Errorf("open chat: %w", err)
	}
	return chat, nil
}

func (s *chatService) GetBuyerChats(ctx context.Context, buyerID int64) ([]domain.Chat, error) {
	chats, err := s.chatRepo.GetBuyerChats(ctx, s.dbExecutor, buyerID)
	if err != nil {
		return nil, fmt.Errorf("get buyer chats: %w", err)
	}
	return chats, nil
}

func (s *chatService) GetSellerChats(ctx context.Context, storeID int64) ([]domain.Chat, error) {
	chats, err := s.chatRepo.GetSellerChats(ctx, s.dbExecutor, storeID)
	if err != nil {
		return nil, fmt.Errorf("get seller chats: %w", err)
	}
	return chats, nil
}
