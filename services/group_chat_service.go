package services

import (
	"fmt"
	"log/slog"

	"chat-core/domain"
	"chat-core/errors"
	"chat-core/repositories"

	"github.com/samber/lo"
)

type IGroupChatService interface {
	Create(requesterID domain.UserID, groupName string, memberIDs []domain.UserID) (*domain.GroupChat, error)
	Rename(requesterID domain.UserID, chatID domain.ChatID, newName string) (*domain.GroupChat, error)
	AddParticipant(requesterID domain.UserID, chatID domain.ChatID, userID domain.UserID) (*domain.GroupChat, error)
	RemoveParticipant(requesterID domain.UserID, chatID domain.ChatID, targetID domain.UserID) (*domain.GroupChat, error)
	Delete(requesterID domain.UserID, chatID domain.ChatID) error
}

type GroupChatService struct {
	users repositories.IUserRepository
	chats repositories.IGroupChatRepository
	log   *slog.Logger
}

func NewGroupChatService(
	users repositories.IUserRepository,
	chats repositories.IGroupChatRepository,
	log *slog.Logger,
) *GroupChatService {
	return &GroupChatService{users: users, chats: chats, log: log}
}

// Create builds a group from the requester plus the given members. The
// member list is deduplicated and the requester is always included
// exactly once, as ADMIN, whatever the member list says. The aggregate
// enforces the resulting set (>= 3 unique participants, >= 1 admin).
func (s *GroupChatService) Create(requesterID domain.UserID, groupName string, memberIDs []domain.UserID) (*domain.GroupChat, error) {
	if _, err := s.users.FindByID(requesterID); err != nil {
		return nil, fmt.Errorf("requester %s: %w", requesterID, err)
	}

	members := lo.Uniq(lo.Reject(memberIDs, func(id domain.UserID, _ int) bool {
		return id == requesterID
	}))
	for _, memberID := range members {
		if _, err := s.users.FindByID(memberID); err != nil {
			return nil, fmt.Errorf("member %s: %w", memberID, err)
		}
	}

	participants := append(
		[]domain.Participant{{UserID: requesterID, Role: domain.RoleAdmin}},
		lo.Map(members, func(id domain.UserID, _ int) domain.Participant {
			return domain.Participant{UserID: id, Role: domain.RoleMember}
		})...,
	)

	chat, err := domain.NewGroupChat(domain.NewChatID(), participants, groupName)
	if err != nil {
		return nil, err
	}
	if err := s.chats.Save(chat); err != nil {
		return nil, err
	}
	s.log.Info("group chat created", "chat_id", chat.ChatID(), "participants", len(participants))
	return chat, nil
}

func (s *GroupChatService) Rename(requesterID domain.UserID, chatID domain.ChatID, newName string) (*domain.GroupChat, error) {
	chat, err := s.loadChatAndRequester(chatID, requesterID)
	if err != nil {
		return nil, err
	}
	if !chat.IsAdmin(requesterID) {
		return nil, fmt.Errorf("%w: only admins can rename the group chat", errors.ErrUnauthorized)
	}
	if err := chat.Rename(newName); err != nil {
		return nil, err
	}
	if err := s.chats.Save(chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *GroupChatService) AddParticipant(requesterID domain.UserID, chatID domain.ChatID, userID domain.UserID) (*domain.GroupChat, error) {
	chat, err := s.loadChatAndRequester(chatID, requesterID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(userID); err != nil {
		return nil, fmt.Errorf("new participant %s: %w", userID, err)
	}

	participant, err := domain.NewParticipant(userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	if err := chat.AddParticipant(requesterID, participant); err != nil {
		return nil, err
	}
	if err := s.chats.Save(chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *GroupChatService) RemoveParticipant(requesterID domain.UserID, chatID domain.ChatID, targetID domain.UserID) (*domain.GroupChat, error) {
	chat, err := s.loadChatAndRequester(chatID, requesterID)
	if err != nil {
		return nil, err
	}
	if err := chat.RemoveParticipant(requesterID, targetID); err != nil {
		return nil, err
	}
	if err := s.chats.Save(chat); err != nil {
		return nil, err
	}
	return chat, nil
}

// Delete does not mutate the aggregate, so it derives the admin check
// itself before asking the repository to drop the chat.
func (s *GroupChatService) Delete(requesterID domain.UserID, chatID domain.ChatID) error {
	chat, err := s.loadChatAndRequester(chatID, requesterID)
	if err != nil {
		return err
	}
	if !chat.IsAdmin(requesterID) {
		return fmt.Errorf("%w: only admins can delete the group chat", errors.ErrUnauthorized)
	}
	if err := s.chats.Delete(chat); err != nil {
		return err
	}
	s.log.Info("group chat deleted", "chat_id", chatID, "requester_id", requesterID)
	return nil
}

func (s *GroupChatService) loadChatAndRequester(chatID domain.ChatID, requesterID domain.UserID) (*domain.GroupChat, error) {
	chat, err := s.chats.FindByID(chatID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(requesterID); err != nil {
		return nil, fmt.Errorf("requester %s: %w", requesterID, err)
	}
	return chat, nil
}
