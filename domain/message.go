package domain

import (
	"strings"
	"time"

	"chat-core/errors"
)

type MessageStatus string

const (
	MessageSent      MessageStatus = "SENT"
	MessageDelivered MessageStatus = "DELIVERED"
	MessageRead      MessageStatus = "READ"
)

// Message is a chat message with a strictly forward-only delivery
// state machine: SENT -> DELIVERED -> READ.
type Message struct {
	messageID MessageID
	chatID    ChatID
	senderID  UserID
	content   string
	status    MessageStatus
	createdAt time.Time
	updatedAt time.Time
}

func NewMessage(messageID MessageID, chatID ChatID, senderID UserID, content string) (*Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.ErrEmptyContent
	}
	now := time.Now().UTC()
	return &Message{
		messageID: messageID,
		chatID:    chatID,
		senderID:  senderID,
		content:   content,
		status:    MessageSent,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// RestoreMessage rebuilds a message from persisted state. Repository use only.
func RestoreMessage(
	messageID MessageID,
	chatID ChatID,
	senderID UserID,
	content string,
	status MessageStatus,
	createdAt, updatedAt time.Time,
) *Message {
	return &Message{
		messageID: messageID,
		chatID:    chatID,
		senderID:  senderID,
		content:   content,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (m *Message) MarkDelivered() error {
	if m.status != MessageSent {
		return errors.ErrInvalidStateTransition
	}
	m.status = MessageDelivered
	return nil
}

func (m *Message) MarkRead() error {
	if m.status != MessageDelivered {
		return errors.ErrInvalidStateTransition
	}
	m.status = MessageRead
	return nil
}

func (m *Message) EditContent(newContent string) error {
	if strings.TrimSpace(newContent) == "" {
		return errors.ErrEmptyContent
	}
	m.content = newContent
	m.updatedAt = time.Now().UTC()
	return nil
}

func (m *Message) MessageID() MessageID {
	return m.messageID
}

func (m *Message) ChatID() ChatID {
	return m.chatID
}

func (m *Message) SenderID() UserID {
	return m.senderID
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) Status() MessageStatus {
	return m.status
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) UpdatedAt() time.Time {
	return m.updatedAt
}
