package services

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"chat-core/domain"
	"chat-core/errors"
	"chat-core/mocks"
	"chat-core/moderation"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type messageServiceMocks struct {
	messages    *mocks.MockIMessageRepository
	directChats *mocks.MockIDirectChatRepository
	groupChats  *mocks.MockIGroupChatRepository
	publisher   *mocks.MockIMessageEventPublisher
	index       *mocks.MockIMessageSearchIndex
}

func newMessageServiceMocks(ctrl *gomock.Controller) messageServiceMocks {
	return messageServiceMocks{
		messages:    mocks.NewMockIMessageRepository(ctrl),
		directChats: mocks.NewMockIDirectChatRepository(ctrl),
		groupChats:  mocks.NewMockIGroupChatRepository(ctrl),
		publisher:   mocks.NewMockIMessageEventPublisher(ctrl),
		index:       mocks.NewMockIMessageSearchIndex(ctrl),
	}
}

func (m messageServiceMocks) service(moderator *moderation.Moderator) *MessageService {
	return NewMessageService(
		m.messages, m.directChats, m.groupChats,
		m.publisher, m.index, moderator, slog.Default(),
	)
}

func TestMessageService_Send(t *testing.T) {
	alice := domain.NewUserID()
	bob := domain.NewUserID()
	stranger := domain.NewUserID()

	directChat := func(chatID domain.ChatID) *domain.DirectChat {
		return domain.RestoreDirectChat(chatID, []domain.UserID{alice, bob}, time.Now().UTC(), "")
	}

	t.Run("should persist, index, publish and update the chat pointer", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMessageServiceMocks(ctrl)
		chatID := domain.NewChatID()
		chat := directChat(chatID)

		m.directChats.EXPECT().FindByID(chatID).Return(chat, nil)
		m.messages.EXPECT().Save(gomock.Any()).Return(nil)
		m.index.EXPECT().Index(gomock.Any()).Return(nil)
		m.publisher.EXPECT().PublishMessageSent(gomock.Any())
		m.directChats.EXPECT().Save(chat).Return(nil)

		message, err := m.service(nil).Send(chatID, alice, "hello bob")

		req.NoError(err)
		req.Equal("hello bob", message.Content())
		req.Equal(domain.MessageSent, message.Status())
		req.Equal(message.MessageID(), chat.LastMessageID())
	})

	t.Run("should refuse a sender outside the chat without persisting", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMessageServiceMocks(ctrl)
		chatID := domain.NewChatID()

		m.directChats.EXPECT().FindByID(chatID).Return(directChat(chatID), nil)
		m.messages.EXPECT().Save(gomock.Any()).Times(0)

		_, err := m.service(nil).Send(chatID, stranger, "let me in")

		req.ErrorIs(err, errors.ErrUnauthorized)
	})

	t.Run("should resolve group chats after a direct chat miss", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMessageServiceMocks(ctrl)
		chatID := domain.NewChatID()
		group := storedGroup(chatID,
			domain.Participant{UserID: alice, Role: domain.RoleAdmin},
			domain.Participant{UserID: bob, Role: domain.RoleMember},
			domain.Participant{UserID: stranger, Role: domain.RoleMember},
		)

		m.directChats.EXPECT().FindByID(chatID).Return(nil, errors.ErrChatNotFound)
		m.groupChats.EXPECT().FindByID(chatID).Return(group, nil)
		m.messages.EXPECT().Save(gomock.Any()).Return(nil)
		m.index.EXPECT().Index(gomock.Any()).Return(nil)
		m.publisher.EXPECT().PublishMessageSent(gomock.Any())
		m.groupChats.EXPECT().Save(group).Return(nil)

		message, err := m.service(nil).Send(chatID, bob, "standup in 5")

		req.NoError(err)
		req.Equal(message.MessageID(), group.LastMessageID())
	})

	t.Run("should report chat not found when both stores miss", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMessageServiceMocks(ctrl)
		chatID := domain.NewChatID()

		m.directChats.EXPECT().FindByID(chatID).Return(nil, errors.ErrChatNotFound)
		m.groupChats.EXPECT().FindByID(chatID).Return(nil, errors.ErrGroupChatNotFound)

		_, err := m.service(nil).Send(chatID, alice, "anyone here")

		req.ErrorIs(err, errors.ErrChatNotFound)
	})

	t.Run("should reject blank content", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMessageServiceMocks(ctrl)
		chatID := domain.NewChatID()

		m.directChats.EXPECT().FindByID(chatID).Return(directChat(chatID), nil)
		m.messages.EXPECT().Save(gomock.Any()).Times(0)

		_, err := m.service(nil).Send(chatID, alice, "   ")

		req.ErrorIs(err, errors.ErrEmptyContent)
	})

	t.Run("should censor content before persisting", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMessageServiceMocks(ctrl)
		chatID := domain.NewChatID()
		chat := directChat(chatID)
		moderator, err := moderation.NewModerator([]string{"badger"}, '*')
		req.NoError(err)

		m.directChats.EXPECT().FindByID(chatID).Return(chat, nil)
		var saved *domain.Message
		m.messages.EXPECT().Save(gomock.Any()).DoAndReturn(func(message *domain.Message) error {
			saved = message
			return nil
		})
		m.index.EXPECT().Index(gomock.Any()).Return(nil)
		m.publisher.EXPECT().PublishMessageSent(gomock.Any())
		m.directChats.EXPECT().Save(chat).Return(nil)

		_, err = m.service(moderator).Send(chatID, alice, "a wild badger appeared")

		req.NoError(err)
		req.NotContains(saved.Content(), "badger")
		req.Contains(saved.Content(), strings.Repeat("*", len("badger")))
	})

	t.Run("should keep the message when only indexing fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMessageServiceMocks(ctrl)
		chatID := domain.NewChatID()
		chat := directChat(chatID)

		m.directChats.EXPECT().FindByID(chatID).Return(chat, nil)
		m.messages.EXPECT().Save(gomock.Any()).Return(nil)
		m.index.EXPECT().Index(gomock.Any()).Return(fmt.Errorf("index writer closed"))
		m.publisher.EXPECT().PublishMessageSent(gomock.Any())
		m.directChats.EXPECT().Save(chat).Return(nil)

		message, err := m.service(nil).Send(chatID, alice, "still delivered")

		req.NoError(err)
		req.NotNil(message)
	})
}

func TestMessageService_List(t *testing.T) {
	alice := domain.NewUserID()
	bob := domain.NewUserID()
	stranger := domain.NewUserID()

	t.Run("should return the chat history newest first", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMessageServiceMocks(ctrl)
		chatID := domain.NewChatID()
		chat := domain.RestoreDirectChat(chatID, []domain.UserID{alice, bob}, time.Now().UTC(), "")
		history := []*domain.Message{
			domain.RestoreMessage(domain.NewMessageID(), chatID, bob, "second", domain.MessageSent, time.Now().UTC(), time.Now().UTC()),
			domain.RestoreMessage(domain.NewMessageID(), chatID, alice, "first", domain.MessageRead, time.Now().UTC(), time.Now().UTC()),
		}

		m.directChats.EXPECT().FindByID(chatID).Return(chat, nil)
		m.messages.EXPECT().FindLastNMessages(chatID, 50).Return(history, nil)

		messages, err := m.service(nil).List(chatID, alice, 50)

		req.NoError(err)
		req.Equal(history, messages)
	})

	t.Run("should refuse a requester outside the chat", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMessageServiceMocks(ctrl)
		chatID := domain.NewChatID()
		chat := domain.RestoreDirectChat(chatID, []domain.UserID{alice, bob}, time.Now().UTC(), "")

		m.directChats.EXPECT().FindByID(chatID).Return(chat, nil)
		m.messages.EXPECT().FindLastNMessages(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.service(nil).List(chatID, stranger, 50)

		req.ErrorIs(err, errors.ErrUnauthorized)
	})

	t.Run("should reject a negative limit before touching the stores", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMessageServiceMocks(ctrl)

		m.directChats.EXPECT().FindByID(gomock.Any()).Times(0)
		m.messages.EXPECT().FindLastNMessages(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.service(nil).List(domain.NewChatID(), alice, -1)

		req.ErrorIs(err, errors.ErrInvalidLimit)
	})
}
