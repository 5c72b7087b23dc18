//go:generate go run go.uber.org/mock/mockgen -source=group_chat.go -destination=../mocks/mock_group_chat_repository.go -package=mocks
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

type IGroupChatRepository interface {
	FindByID(chatID domain.ChatID) (*domain.GroupChat, error)
	FindByParticipant(userID domain.UserID) ([]*domain.GroupChat, error)
	Save(chat *domain.GroupChat) error
	Delete(chat *domain.GroupChat) error
}

// GroupChatRepository persists group chats in BadgerDB:
//
//	gchat:id:{chatId}         -> record
//	gchat:user:{uid}:{chatId} -> chatId (participant index)
//
// Saving rewrites the participant index from the current membership, so
// removed participants stop seeing the chat in FindByParticipant.
type GroupChatRepository struct {
	db *badger.DB
}

func NewGroupChatRepository(db *badger.DB) *GroupChatRepository {
	return &GroupChatRepository{db: db}
}

type groupParticipantRecord struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type groupChatRecord struct {
	ID            string                   `json:"id"`
	Participants  []groupParticipantRecord `json:"participants"`
	GroupName     string                   `json:"group_name"`
	CreatedAt     int64                    `json:"created_at"`
	State         string                   `json:"state"`
	LastMessageID string                   `json:"last_message_id,omitempty"`
}

func (r *GroupChatRepository) FindByID(chatID domain.ChatID) (*domain.GroupChat, error) {
	var record groupChatRecord
	err := r.db.View(func(txn *badger.Txn) error {
		data, err := readValue(txn, groupChatIDKey(chatID))
		if err != nil {
			return err
		}
		return json.Unmarshal(data, &record)
	})
	if err != nil {
		if isKeyNotFound(err) {
			return nil, errors.ErrGroupChatNotFound
		}
		return nil, err
	}
	return toGroupChat(record), nil
}

func (r *GroupChatRepository) FindByParticipant(userID domain.UserID) ([]*domain.GroupChat, error) {
	var chats []*domain.GroupChat
	err := r.db.View(func(txn *badger.Txn) error {
		ids, err := scanValues(txn, []byte(fmt.Sprintf("gchat:user:%s:", userID)))
		if err != nil {
			return err
		}
		for _, id := range ids {
			data, err := readValue(txn, groupChatIDKey(domain.ChatIDOf(string(id))))
			if err != nil {
				return err
			}
			var record groupChatRecord
			if err := json.Unmarshal(data, &record); err != nil {
				return err
			}
			chats = append(chats, toGroupChat(record))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *GroupChatRepository) Save(chat *domain.GroupChat) error {
	data, err := json.Marshal(fromGroupChat(chat))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		if err := r.dropParticipantIndex(txn, chat.ChatID()); err != nil {
			return err
		}
		if err := txn.Set(groupChatIDKey(chat.ChatID()), data); err != nil {
			return err
		}
		for _, participant := range chat.Participants() {
			key := groupChatUserKey(participant.UserID, chat.ChatID())
			if err := txn.Set(key, []byte(chat.ChatID())); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GroupChatRepository) Delete(chat *domain.GroupChat) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := r.dropParticipantIndex(txn, chat.ChatID()); err != nil {
			return err
		}
		return txn.Delete(groupChatIDKey(chat.ChatID()))
	})
}

// dropParticipantIndex removes index entries for the previously stored
// membership, if any.
func (r *GroupChatRepository) dropParticipantIndex(txn *badger.Txn, chatID domain.ChatID) error {
	data, err := readValue(txn, groupChatIDKey(chatID))
	if err != nil {
		if isKeyNotFound(err) {
			return nil
		}
		return err
	}
	var stored groupChatRecord
	if err := json.Unmarshal(data, &stored); err != nil {
		return err
	}
	for _, participant := range stored.Participants {
		key := groupChatUserKey(domain.UserIDOf(participant.UserID), chatID)
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func fromGroupChat(chat *domain.GroupChat) groupChatRecord {
	return groupChatRecord{
		ID: chat.ChatID().String(),
		Participants: lo.Map(chat.Participants(), func(p domain.Participant, _ int) groupParticipantRecord {
			return groupParticipantRecord{UserID: p.UserID.String(), Role: string(p.Role)}
		}),
		GroupName:     chat.GroupName(),
		CreatedAt:     chat.CreatedAt().UnixNano(),
		State:         string(chat.State()),
		LastMessageID: chat.LastMessageID().String(),
	}
}

func toGroupChat(record groupChatRecord) *domain.GroupChat {
	return domain.RestoreGroupChat(
		domain.ChatIDOf(record.ID),
		lo.Map(record.Participants, func(p groupParticipantRecord, _ int) domain.Participant {
			return domain.Participant{UserID: domain.UserIDOf(p.UserID), Role: domain.Role(p.Role)}
		}),
		record.GroupName,
		time.Unix(0, record.CreatedAt).UTC(),
		domain.GroupChatState(record.State),
		domain.MessageIDOf(record.LastMessageID),
	)
}

func groupChatIDKey(chatID domain.ChatID) []byte {
	return []byte("gchat:id:" + chatID)
}

func groupChatUserKey(userID domain.UserID, chatID domain.ChatID) []byte {
	return []byte(fmt.Sprintf("gchat:user:%s:%s", userID, chatID))
}
