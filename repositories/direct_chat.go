//go:generate go run go.uber.org/mock/mockgen -source=direct_chat.go -destination=../mocks/mock_direct_chat_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"chat-core/domain"
	"chat-core/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type IDirectChatRepository interface {
	FindByID(chatID domain.ChatID) (*domain.DirectChat, error)
	FindByUsers(a, b domain.UserID) (*domain.DirectChat, error)
	FindByParticipant(userID domain.UserID) ([]*domain.DirectChat, error)
	Save(chat *domain.DirectChat) error
	Delete(chat *domain.DirectChat) error
}

// DirectChatRepository persists direct chats in BadgerDB. The canonical
// pair key makes the (A,B) chat unique regardless of argument order:
//
//	dchat:id:{chatId}        -> record
//	dchat:pair:{lo}:{hi}     -> chatId (uniqueness anchor)
//	dchat:user:{uid}:{chatId} -> chatId (participant index)
type DirectChatRepository struct {
	db *badger.DB
}

func NewDirectChatRepository(db *badger.DB) *DirectChatRepository {
	return &DirectChatRepository{db: db}
}

type directChatRecord struct {
	ID            string   `json:"id"`
	Participants  []string `json:"participants"`
	CreatedAt     int64    `json:"created_at"`
	LastMessageID string   `json:"last_message_id,omitempty"`
}

func (r *DirectChatRepository) FindByID(chatID domain.ChatID) (*domain.DirectChat, error) {
	var record directChatRecord
	err := r.db.View(func(txn *badger.Txn) error {
		data, err := readValue(txn, directChatIDKey(chatID))
		if err != nil {
			return err
		}
		return json.Unmarshal(data, &record)
	})
	if err != nil {
		if isKeyNotFound(err) {
			return nil, errors.ErrChatNotFound
		}
		return nil, err
	}
	return toDirectChat(record), nil
}

func (r *DirectChatRepository) FindByUsers(a, b domain.UserID) (*domain.DirectChat, error) {
	var chatID domain.ChatID
	err := r.db.View(func(txn *badger.Txn) error {
		id, err := readValue(txn, directChatPairKey(a, b))
		if err != nil {
			return err
		}
		chatID = domain.ChatIDOf(string(id))
		return nil
	})
	if err != nil {
		if isKeyNotFound(err) {
			return nil, errors.ErrChatNotFound
		}
		return nil, err
	}
	return r.FindByID(chatID)
}

func (r *DirectChatRepository) FindByParticipant(userID domain.UserID) ([]*domain.DirectChat, error) {
	var chats []*domain.DirectChat
	err := r.db.View(func(txn *badger.Txn) error {
		ids, err := scanValues(txn, []byte(fmt.Sprintf("dchat:user:%s:", userID)))
		if err != nil {
			return err
		}
		for _, id := range ids {
			data, err := readValue(txn, directChatIDKey(domain.ChatIDOf(string(id))))
			if err != nil {
				return err
			}
			var record directChatRecord
			if err := json.Unmarshal(data, &record); err != nil {
				return err
			}
			chats = append(chats, toDirectChat(record))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chats, nil
}

// Save upserts the chat. A pair key already owned by another chat id
// signals the duplicate-creation race with ErrChatAlreadyExists; the
// create use-case recovers by re-reading the winner.
func (r *DirectChatRepository) Save(chat *domain.DirectChat) error {
	data, err := json.Marshal(fromDirectChat(chat))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	participants := chat.Participants()
	pairKey := directChatPairKey(participants[0], participants[1])

	return r.db.Update(func(txn *badger.Txn) error {
		owner, err := readValue(txn, pairKey)
		if err != nil && !isKeyNotFound(err) {
			return err
		}
		if err == nil && string(owner) != chat.ChatID().String() {
			return errors.ErrChatAlreadyExists
		}
		if err := txn.Set(directChatIDKey(chat.ChatID()), data); err != nil {
			return err
		}
		if err := txn.Set(pairKey, []byte(chat.ChatID())); err != nil {
			return err
		}
		for _, userID := range participants {
			key := []byte(fmt.Sprintf("dchat:user:%s:%s", userID, chat.ChatID()))
			if err := txn.Set(key, []byte(chat.ChatID())); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DirectChatRepository) Delete(chat *domain.DirectChat) error {
	participants := chat.Participants()
	return r.db.Update(func(txn *badger.Txn) error {
		keys := [][]byte{
			directChatIDKey(chat.ChatID()),
			directChatPairKey(participants[0], participants[1]),
		}
		for _, userID := range participants {
			keys = append(keys, []byte(fmt.Sprintf("dchat:user:%s:%s", userID, chat.ChatID())))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func fromDirectChat(chat *domain.DirectChat) directChatRecord {
	return directChatRecord{
		ID: chat.ChatID().String(),
		Participants: lo.Map(chat.Participants(), func(id domain.UserID, _ int) string {
			return id.String()
		}),
		CreatedAt:     chat.CreatedAt().UnixNano(),
		LastMessageID: chat.LastMessageID().String(),
	}
}

func toDirectChat(record directChatRecord) *domain.DirectChat {
	return domain.RestoreDirectChat(
		domain.ChatIDOf(record.ID),
		lo.Map(record.Participants, func(id string, _ int) domain.UserID {
			return domain.UserIDOf(id)
		}),
		time.Unix(0, record.CreatedAt).UTC(),
		domain.MessageIDOf(record.LastMessageID),
	)
}

func directChatIDKey(chatID domain.ChatID) []byte {
	return []byte("dchat:id:" + chatID)
}

// directChatPairKey orders the two ids lexicographically so (A,B) and
// (B,A) map to the same key.
func directChatPairKey(a, b domain.UserID) []byte {
	lower, higher := a, b
	if b < a {
		lower, higher = b, a
	}
	return []byte(fmt.Sprintf("dchat:pair:%s:%s", lower, higher))
}
