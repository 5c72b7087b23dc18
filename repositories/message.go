//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"chat-core/domain"

	"github.com/dgraph-io/badger/v4"
)

type IMessageRepository interface {
	// FindLastNMessages returns up to limit messages, newest first.
	FindLastNMessages(chatID domain.ChatID, limit int) ([]*domain.Message, error)
	// FindLastMessage returns (nil, nil) when the chat has no messages.
	FindLastMessage(chatID domain.ChatID) (*domain.Message, error)
	Save(message *domain.Message) error
}

// MessageRepository persists messages in BadgerDB. The key is formatted
// as "msg:{chat_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using the message id as a collision
//     disconnector if two messages arrive at the same nanosecond.
type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

type messageRecord struct {
	ID        string `json:"id"`
	ChatID    string `json:"chat_id"`
	SenderID  string `json:"sender_id"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func (r *MessageRepository) Save(message *domain.Message) error {
	key := messageKey(message.ChatID(), message.CreatedAt(), message.MessageID())
	data, err := json.Marshal(fromMessage(message))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// FindLastNMessages walks the chat prefix in reverse: thanks to the
// padded timestamp in the key, reverse iteration yields newest first.
func (r *MessageRepository) FindLastNMessages(chatID domain.ChatID, limit int) ([]*domain.Message, error) {
	var byteMessages [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", chatID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible key for this chat, then walk back.
		seekKey := append(append([]byte(nil), prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(byteMessages) == limit {
				r.log.Debug("message scan limit reached", "chat_id", chatID, "limit", limit)
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			byteMessages = append(byteMessages, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var messages []*domain.Message
	for _, data := range byteMessages {
		var record messageRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, err
		}
		messages = append(messages, toMessage(record))
	}
	return messages, nil
}

func (r *MessageRepository) FindLastMessage(chatID domain.ChatID) (*domain.Message, error) {
	messages, err := r.FindLastNMessages(chatID, 1)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, nil
	}
	return messages[0], nil
}

func fromMessage(message *domain.Message) messageRecord {
	return messageRecord{
		ID:        message.MessageID().String(),
		ChatID:    message.ChatID().String(),
		SenderID:  message.SenderID().String(),
		Content:   message.Content(),
		Status:    string(message.Status()),
		CreatedAt: message.CreatedAt().UnixNano(),
		UpdatedAt: message.UpdatedAt().UnixNano(),
	}
}

func toMessage(record messageRecord) *domain.Message {
	return domain.RestoreMessage(
		domain.MessageIDOf(record.ID),
		domain.ChatIDOf(record.ChatID),
		domain.UserIDOf(record.SenderID),
		record.Content,
		domain.MessageStatus(record.Status),
		time.Unix(0, record.CreatedAt).UTC(),
		time.Unix(0, record.UpdatedAt).UTC(),
	)
}

func messageKey(chatID domain.ChatID, createdAt time.Time, messageID domain.MessageID) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", chatID, createdAt.UnixNano(), messageID))
}
