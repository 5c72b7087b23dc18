// Package services hosts the use-case layer: each service loads
// aggregates from repositories, invokes domain methods, and persists
// the result. Services depend only on repository interfaces and domain
// aggregates, never on each other.
package services

import (
	"fmt"
	"log/slog"

	"chat-core/domain"
	"chat-core/errors"
	"chat-core/repositories"
)

type IDirectChatService interface {
	Create(requesterID, otherUserID domain.UserID) (*domain.DirectChat, error)
}

type DirectChatService struct {
	users repositories.IUserRepository
	chats repositories.IDirectChatRepository
	log   *slog.Logger
}

func NewDirectChatService(
	users repositories.IUserRepository,
	chats repositories.IDirectChatRepository,
	log *slog.Logger,
) *DirectChatService {
	return &DirectChatService{users: users, chats: chats, log: log}
}

// Create returns the direct chat between the two users, creating it if
// needed. The pair is canonicalized before lookup so (A,B) and (B,A)
// resolve to the same chat, and a duplicate-creation race is recovered
// by re-reading the winner, so the call is idempotent.
func (s *DirectChatService) Create(requesterID, otherUserID domain.UserID) (*domain.DirectChat, error) {
	if requesterID == otherUserID {
		return nil, errors.ErrInvalidChat
	}
	if _, err := s.users.FindByID(requesterID); err != nil {
		return nil, fmt.Errorf("requester %s: %w", requesterID, err)
	}
	if _, err := s.users.FindByID(otherUserID); err != nil {
		return nil, fmt.Errorf("other user %s: %w", otherUserID, err)
	}

	first, second := requesterID, otherUserID
	if second < first {
		first, second = second, first
	}

	existing, err := s.chats.FindByUsers(first, second)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errors.ErrChatNotFound) {
		return nil, err
	}

	chat, err := domain.NewDirectChat(domain.NewChatID(), []domain.UserID{first, second})
	if err != nil {
		return nil, err
	}

	if err := s.chats.Save(chat); err != nil {
		if errors.Is(err, errors.ErrChatAlreadyExists) {
			// Lost the creation race: the winner's chat exists now.
			s.log.Debug("direct chat creation race, re-reading winner", "users", []domain.UserID{first, second})
			return s.chats.FindByUsers(first, second)
		}
		return nil, err
	}
	return chat, nil
}
