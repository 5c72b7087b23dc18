package services

import (
	"testing"
	"time"

	"chat-core/domain"
	"chat-core/mocks"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChatListService_List(t *testing.T) {
	requester := newStoredUser(t, "requester")
	friend := newStoredUser(t, "friend")

	lastMessageAt := func(chatID domain.ChatID, at time.Time) *domain.Message {
		return domain.RestoreMessage(
			domain.NewMessageID(), chatID, requester.UserID(),
			"last words", domain.MessageSent, at, at,
		)
	}

	t.Run("should order chats by last message time descending with empty chats last", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockDirects := mocks.NewMockIDirectChatRepository(ctrl)
		mockGroups := mocks.NewMockIGroupChatRepository(ctrl)
		mockMessages := mocks.NewMockIMessageRepository(ctrl)
		mockUsers := mocks.NewMockIUserRepository(ctrl)
		svc := NewChatListService(mockDirects, mockGroups, mockMessages, mockUsers)

		now := time.Now().UTC()
		direct := domain.RestoreDirectChat(
			domain.NewChatID(),
			[]domain.UserID{requester.UserID(), friend.UserID()},
			now, "",
		)
		busyGroup := storedGroup(domain.NewChatID(),
			domain.Participant{UserID: requester.UserID(), Role: domain.RoleAdmin},
			domain.Participant{UserID: friend.UserID(), Role: domain.RoleMember},
			domain.Participant{UserID: domain.NewUserID(), Role: domain.RoleMember},
		)
		quietGroup := storedGroup(domain.NewChatID(),
			domain.Participant{UserID: requester.UserID(), Role: domain.RoleAdmin},
			domain.Participant{UserID: friend.UserID(), Role: domain.RoleMember},
			domain.Participant{UserID: domain.NewUserID(), Role: domain.RoleMember},
		)

		mockDirects.EXPECT().FindByParticipant(requester.UserID()).Return([]*domain.DirectChat{direct}, nil)
		mockGroups.EXPECT().FindByParticipant(requester.UserID()).Return([]*domain.GroupChat{busyGroup, quietGroup}, nil)
		mockUsers.EXPECT().FindByID(friend.UserID()).Return(friend, nil)
		// The group messaged an hour after the direct chat; the quiet group never spoke.
		mockMessages.EXPECT().FindLastMessage(direct.ChatID()).Return(lastMessageAt(direct.ChatID(), now), nil)
		mockMessages.EXPECT().FindLastMessage(busyGroup.ChatID()).Return(lastMessageAt(busyGroup.ChatID(), now.Add(time.Hour)), nil)
		mockMessages.EXPECT().FindLastMessage(quietGroup.ChatID()).Return(nil, nil)

		summaries, err := svc.List(requester.UserID(), 0)

		req.NoError(err)
		req.Equal(
			[]domain.ChatID{busyGroup.ChatID(), direct.ChatID(), quietGroup.ChatID()},
			lo.Map(summaries, func(s ChatSummary, _ int) domain.ChatID { return s.ChatID }),
		)
		req.Nil(summaries[2].LastMessageAt)
		req.Nil(summaries[2].LastMessageContent)
	})

	t.Run("should name direct chats after the other participant", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockDirects := mocks.NewMockIDirectChatRepository(ctrl)
		mockGroups := mocks.NewMockIGroupChatRepository(ctrl)
		mockMessages := mocks.NewMockIMessageRepository(ctrl)
		mockUsers := mocks.NewMockIUserRepository(ctrl)
		svc := NewChatListService(mockDirects, mockGroups, mockMessages, mockUsers)

		direct := domain.RestoreDirectChat(
			domain.NewChatID(),
			[]domain.UserID{requester.UserID(), friend.UserID()},
			time.Now().UTC(), "",
		)

		mockDirects.EXPECT().FindByParticipant(requester.UserID()).Return([]*domain.DirectChat{direct}, nil)
		mockGroups.EXPECT().FindByParticipant(requester.UserID()).Return(nil, nil)
		mockUsers.EXPECT().FindByID(friend.UserID()).Return(friend, nil)
		mockMessages.EXPECT().FindLastMessage(direct.ChatID()).Return(nil, nil)

		summaries, err := svc.List(requester.UserID(), 0)

		req.NoError(err)
		req.Len(summaries, 1)
		req.Equal(ChatKindDirect, summaries[0].Kind)
		req.Equal(friend.Username(), summaries[0].Name)
	})

	t.Run("should truncate after sorting when a limit is given", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockDirects := mocks.NewMockIDirectChatRepository(ctrl)
		mockGroups := mocks.NewMockIGroupChatRepository(ctrl)
		mockMessages := mocks.NewMockIMessageRepository(ctrl)
		mockUsers := mocks.NewMockIUserRepository(ctrl)
		svc := NewChatListService(mockDirects, mockGroups, mockMessages, mockUsers)

		now := time.Now().UTC()
		older := storedGroup(domain.NewChatID(),
			domain.Participant{UserID: requester.UserID(), Role: domain.RoleAdmin},
			domain.Participant{UserID: friend.UserID(), Role: domain.RoleMember},
			domain.Participant{UserID: domain.NewUserID(), Role: domain.RoleMember},
		)
		newer := storedGroup(domain.NewChatID(),
			domain.Participant{UserID: requester.UserID(), Role: domain.RoleAdmin},
			domain.Participant{UserID: friend.UserID(), Role: domain.RoleMember},
			domain.Participant{UserID: domain.NewUserID(), Role: domain.RoleMember},
		)

		mockDirects.EXPECT().FindByParticipant(requester.UserID()).Return(nil, nil)
		mockGroups.EXPECT().FindByParticipant(requester.UserID()).Return([]*domain.GroupChat{older, newer}, nil)
		mockMessages.EXPECT().FindLastMessage(older.ChatID()).Return(lastMessageAt(older.ChatID(), now.Add(-time.Hour)), nil)
		mockMessages.EXPECT().FindLastMessage(newer.ChatID()).Return(lastMessageAt(newer.ChatID(), now), nil)

		summaries, err := svc.List(requester.UserID(), 1)

		req.NoError(err)
		req.Len(summaries, 1)
		req.Equal(newer.ChatID(), summaries[0].ChatID)
	})
}
