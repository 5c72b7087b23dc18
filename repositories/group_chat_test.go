package repositories

import (
	"testing"

	"chat-core/domain"
	"chat-core/errors"

	"github.com/stretchr/testify/require"
)

func testGroupChat(t *testing.T, admin domain.UserID, members ...domain.UserID) *domain.GroupChat {
	t.Helper()
	participants := []domain.Participant{{UserID: admin, Role: domain.RoleAdmin}}
	for _, member := range members {
		participants = append(participants, domain.Participant{UserID: member, Role: domain.RoleMember})
	}
	chat, err := domain.NewGroupChat(domain.NewChatID(), participants, "weekend hikers")
	require.NoError(t, err)
	return chat
}

func TestGroupChatRepository_SaveAndFind(t *testing.T) {
	req := require.New(t)
	repository := NewGroupChatRepository(openTestDB(t))

	admin := domain.NewUserID()
	member := domain.NewUserID()
	other := domain.NewUserID()
	chat := testGroupChat(t, admin, member, other)
	req.NoError(repository.Save(chat))

	found, err := repository.FindByID(chat.ChatID())
	req.NoError(err)
	req.Equal(chat.ChatID(), found.ChatID())
	req.Equal("weekend hikers", found.GroupName())
	req.ElementsMatch(chat.Participants(), found.Participants())
	req.Equal(domain.GroupChatActive, found.State())
	req.True(found.IsAdmin(admin))

	chats, err := repository.FindByParticipant(member)
	req.NoError(err)
	req.Len(chats, 1)
	req.Equal(chat.ChatID(), chats[0].ChatID())
}

func TestGroupChatRepository_IndexFollowsMembership(t *testing.T) {
	req := require.New(t)
	repository := NewGroupChatRepository(openTestDB(t))

	admin := domain.NewUserID()
	leaver := domain.NewUserID()
	stayer := domain.NewUserID()
	chat := testGroupChat(t, admin, leaver, stayer)
	req.NoError(repository.Save(chat))

	req.NoError(chat.RemoveParticipant(admin, leaver))
	req.NoError(repository.Save(chat))

	t.Run("should stop listing the chat for the removed participant", func(t *testing.T) {
		chats, err := repository.FindByParticipant(leaver)
		require.NoError(t, err)
		require.Empty(t, chats)
	})

	t.Run("should keep listing the chat for remaining participants", func(t *testing.T) {
		chats, err := repository.FindByParticipant(stayer)
		require.NoError(t, err)
		require.Len(t, chats, 1)
		require.Equal(t, domain.GroupChatActive, chats[0].State())
	})
}

func TestGroupChatRepository_Delete(t *testing.T) {
	req := require.New(t)
	repository := NewGroupChatRepository(openTestDB(t))

	admin := domain.NewUserID()
	member := domain.NewUserID()
	other := domain.NewUserID()
	chat := testGroupChat(t, admin, member, other)
	req.NoError(repository.Save(chat))
	req.NoError(repository.Delete(chat))

	_, err := repository.FindByID(chat.ChatID())
	req.ErrorIs(err, errors.ErrGroupChatNotFound)

	chats, err := repository.FindByParticipant(admin)
	req.NoError(err)
	req.Empty(chats)
}

func TestGroupChatRepository_NotFound(t *testing.T) {
	req := require.New(t)
	repository := NewGroupChatRepository(openTestDB(t))

	_, err := repository.FindByID(domain.NewChatID())
	req.ErrorIs(err, errors.ErrGroupChatNotFound)
}
