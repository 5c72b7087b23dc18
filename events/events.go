//go:generate go run go.uber.org/mock/mockgen -source=events.go -destination=../mocks/mock_message_event_publisher.go -package=mocks

// Package events carries the notifications the core emits after
// successful persistence. Publishing is fire-and-forget: the core never
// depends on delivery or ordering.
package events

import (
	"time"

	"chat-core/domain"

	"github.com/abadojack/whatlanggo"
)

// MessageSent is emitted after a message has been persisted.
type MessageSent struct {
	MessageID string
	ChatID    string
	SenderID  string
	Content   string
	// Lang is the ISO 639-3 code of the detected content language,
	// empty when detection is unreliable.
	Lang string
	At   time.Time
}

func NewMessageSent(message *domain.Message) MessageSent {
	return MessageSent{
		MessageID: message.MessageID().String(),
		ChatID:    message.ChatID().String(),
		SenderID:  message.SenderID().String(),
		Content:   message.Content(),
		Lang:      detectLang(message.Content()),
		At:        message.CreatedAt(),
	}
}

func detectLang(content string) string {
	info := whatlanggo.Detect(content)
	if !info.IsReliable() {
		return ""
	}
	return whatlanggo.LangToString(info.Lang)
}

type IMessageEventPublisher interface {
	PublishMessageSent(event MessageSent)
}
