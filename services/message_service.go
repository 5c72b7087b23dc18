package services

import (
	"fmt"
	"log/slog"

	"chat-core/domain"
	"chat-core/errors"
	"chat-core/events"
	"chat-core/moderation"
	"chat-core/repositories"
)

type IMessageService interface {
	Send(chatID domain.ChatID, senderID domain.UserID, content string) (*domain.Message, error)
	List(chatID domain.ChatID, requesterID domain.UserID, limit int) ([]*domain.Message, error)
}

type MessageService struct {
	messages    repositories.IMessageRepository
	directChats repositories.IDirectChatRepository
	groupChats  repositories.IGroupChatRepository
	publisher   events.IMessageEventPublisher
	index       repositories.IMessageSearchIndex
	moderator   *moderation.Moderator
	log         *slog.Logger
}

// NewMessageService wires the send/list use-cases. The moderator and
// the search index are optional: nil disables censoring and indexing.
func NewMessageService(
	messages repositories.IMessageRepository,
	directChats repositories.IDirectChatRepository,
	groupChats repositories.IGroupChatRepository,
	publisher events.IMessageEventPublisher,
	index repositories.IMessageSearchIndex,
	moderator *moderation.Moderator,
	log *slog.Logger,
) *MessageService {
	return &MessageService{
		messages:    messages,
		directChats: directChats,
		groupChats:  groupChats,
		publisher:   publisher,
		index:       index,
		moderator:   moderator,
		log:         log,
	}
}

// resolvedChat is the sum type over the two chat kinds sharing the
// chat id namespace. Exactly one of direct/group is set.
type resolvedChat struct {
	direct *domain.DirectChat
	group  *domain.GroupChat
}

func (c resolvedChat) canSendMessage(userID domain.UserID) bool {
	if c.direct != nil {
		return c.direct.CanSendMessage(userID)
	}
	return c.group.CanSendMessage(userID)
}

func (c resolvedChat) updateLastMessage(messageID domain.MessageID) {
	if c.direct != nil {
		c.direct.UpdateLastMessage(messageID)
		return
	}
	c.group.UpdateLastMessage(messageID)
}

// Send persists a message into the resolved chat and updates the
// chat's last-message pointer. The two writes are separate: when the
// chat update fails the message is already durable and the pointer
// self-heals on the next successful send, so the error is surfaced
// after a warn log rather than compensated.
func (s *MessageService) Send(chatID domain.ChatID, senderID domain.UserID, content string) (*domain.Message, error) {
	chat, err := s.resolveChat(chatID)
	if err != nil {
		return nil, err
	}
	if !chat.canSendMessage(senderID) {
		return nil, fmt.Errorf("%w: sender is not a participant of this chat", errors.ErrUnauthorized)
	}

	if s.moderator != nil {
		content = s.moderator.Censor(content)
	}

	message, err := domain.NewMessage(domain.NewMessageID(), chatID, senderID, content)
	if err != nil {
		return nil, err
	}
	if err := s.messages.Save(message); err != nil {
		return nil, err
	}
	if s.index != nil {
		if err := s.index.Index(message); err != nil {
			s.log.Warn("message indexing failed", "message_id", message.MessageID(), "error", err)
		}
	}
	s.publisher.PublishMessageSent(events.NewMessageSent(message))

	chat.updateLastMessage(message.MessageID())
	if err := s.saveChat(chat); err != nil {
		s.log.Warn("last message pointer update failed",
			"chat_id", chatID, "message_id", message.MessageID(), "error", err)
		return nil, err
	}
	return message, nil
}

// List returns up to limit messages of the chat, newest first. A limit
// of zero means no limit; a negative limit is rejected. The requester
// must be a participant of the resolved chat.
func (s *MessageService) List(chatID domain.ChatID, requesterID domain.UserID, limit int) ([]*domain.Message, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: got %d", errors.ErrInvalidLimit, limit)
	}
	chat, err := s.resolveChat(chatID)
	if err != nil {
		return nil, err
	}
	if !chat.canSendMessage(requesterID) {
		return nil, fmt.Errorf("%w: requester is not a participant of this chat", errors.ErrUnauthorized)
	}
	return s.messages.FindLastNMessages(chatID, limit)
}

// resolveChat tries the direct chat store first, then the group chat
// store.
func (s *MessageService) resolveChat(chatID domain.ChatID) (resolvedChat, error) {
	direct, err := s.directChats.FindByID(chatID)
	if err == nil {
		return resolvedChat{direct: direct}, nil
	}
	if !errors.Is(err, errors.ErrChatNotFound) {
		return resolvedChat{}, err
	}

	group, err := s.groupChats.FindByID(chatID)
	if err == nil {
		return resolvedChat{group: group}, nil
	}
	if !errors.Is(err, errors.ErrGroupChatNotFound) {
		return resolvedChat{}, err
	}
	return resolvedChat{}, fmt.Errorf("%w: %s", errors.ErrChatNotFound, chatID)
}

func (s *MessageService) saveChat(chat resolvedChat) error {
	if chat.direct != nil {
		return s.directChats.Save(chat.direct)
	}
	return s.groupChats.Save(chat.group)
}
