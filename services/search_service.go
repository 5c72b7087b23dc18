package services

import (
	"context"
	"fmt"

	"chat-core/domain"
	"chat-core/errors"
	"chat-core/repositories"
)

type ISearchService interface {
	SearchMessages(ctx context.Context, chatID domain.ChatID, requesterID domain.UserID, terms string, limit int) ([]domain.MessageID, error)
}

// SearchService exposes full-text search over a chat's messages with
// the same participant authorization as listing them.
type SearchService struct {
	directChats repositories.IDirectChatRepository
	groupChats  repositories.IGroupChatRepository
	index       repositories.IMessageSearchIndex
}

func NewSearchService(
	directChats repositories.IDirectChatRepository,
	groupChats repositories.IGroupChatRepository,
	index repositories.IMessageSearchIndex,
) *SearchService {
	return &SearchService{directChats: directChats, groupChats: groupChats, index: index}
}

func (s *SearchService) SearchMessages(ctx context.Context, chatID domain.ChatID, requesterID domain.UserID, terms string, limit int) ([]domain.MessageID, error) {
	allowed, err := s.isParticipant(chatID, requesterID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: requester is not a participant of this chat", errors.ErrUnauthorized)
	}
	return s.index.Search(ctx, chatID, terms, limit)
}

func (s *SearchService) isParticipant(chatID domain.ChatID, userID domain.UserID) (bool, error) {
	direct, err := s.directChats.FindByID(chatID)
	if err == nil {
		return direct.CanSendMessage(userID), nil
	}
	if !errors.Is(err, errors.ErrChatNotFound) {
		return false, err
	}

	group, err := s.groupChats.FindByID(chatID)
	if err == nil {
		return group.CanSendMessage(userID), nil
	}
	if !errors.Is(err, errors.ErrGroupChatNotFound) {
		return false, err
	}
	return false, fmt.Errorf("%w: %s", errors.ErrChatNotFound, chatID)
}
