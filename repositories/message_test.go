package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"chat-core/domain"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func storedMessage(chatID domain.ChatID, content string, at time.Time) *domain.Message {
	return domain.RestoreMessage(
		domain.NewMessageID(), chatID, domain.NewUserID(),
		content, domain.MessageSent, at, at,
	)
}

func TestMessageRepository_NewestFirst(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	chatID := domain.NewChatID()
	at := time.Now().UTC()
	for i := 0; i < 3; i++ {
		message := storedMessage(chatID, fmt.Sprintf("message %d", i), at.Add(time.Duration(i)*time.Minute))
		req.NoError(repository.Save(message))
	}

	messages, err := repository.FindLastNMessages(chatID, 0)
	req.NoError(err)
	req.Equal(
		[]string{"message 2", "message 1", "message 0"},
		lo.Map(messages, func(m *domain.Message, _ int) string { return m.Content() }),
	)
}

func TestMessageRepository_Limit(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	chatID := domain.NewChatID()
	at := time.Now().UTC()
	for i := 0; i < 5; i++ {
		req.NoError(repository.Save(storedMessage(chatID, fmt.Sprintf("message %d", i), at.Add(time.Duration(i)*time.Second))))
	}

	messages, err := repository.FindLastNMessages(chatID, 2)
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("message 4", messages[0].Content())
	req.Equal("message 3", messages[1].Content())
}

func TestMessageRepository_ChatIsolation(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	chatID := domain.NewChatID()
	otherChatID := domain.NewChatID()
	at := time.Now().UTC()
	req.NoError(repository.Save(storedMessage(chatID, "ours", at)))
	req.NoError(repository.Save(storedMessage(otherChatID, "theirs", at)))

	messages, err := repository.FindLastNMessages(chatID, 0)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("ours", messages[0].Content())
}

func TestMessageRepository_SameTimestampCollision(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	chatID := domain.NewChatID()
	at := time.Now().UTC()
	// Two messages at the same nanosecond must both survive; the id in
	// the key keeps them apart.
	req.NoError(repository.Save(storedMessage(chatID, "first", at)))
	req.NoError(repository.Save(storedMessage(chatID, "second", at)))

	messages, err := repository.FindLastNMessages(chatID, 0)
	req.NoError(err)
	req.Len(messages, 2)
}

func TestMessageRepository_LastMessage(t *testing.T) {
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	chatID := domain.NewChatID()

	t.Run("should return nil for an empty chat", func(t *testing.T) {
		last, err := repository.FindLastMessage(chatID)
		require.NoError(t, err)
		require.Nil(t, last)
	})

	t.Run("should return the newest message", func(t *testing.T) {
		at := time.Now().UTC()
		require.NoError(t, repository.Save(storedMessage(chatID, "old", at)))
		require.NoError(t, repository.Save(storedMessage(chatID, "new", at.Add(time.Minute))))

		last, err := repository.FindLastMessage(chatID)
		require.NoError(t, err)
		require.Equal(t, "new", last.Content())
	})
}

func TestMessageRepository_StatusRoundTrip(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	chatID := domain.NewChatID()
	message := storedMessage(chatID, "delivered already", time.Now().UTC())
	req.NoError(message.MarkDelivered())
	req.NoError(repository.Save(message))

	messages, err := repository.FindLastNMessages(chatID, 1)
	req.NoError(err)
	req.Equal(domain.MessageDelivered, messages[0].Status())
}
