//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_message_search_index.go -package=mocks
package repositories

import (
	"context"

	"chat-core/domain"

	"github.com/blugelabs/bluge"
)

type IMessageSearchIndex interface {
	Index(message *domain.Message) error
	Search(ctx context.Context, chatID domain.ChatID, terms string, limit int) ([]domain.MessageID, error)
	Close() error
}

// MessageSearchIndex maintains a Bluge full-text index over message
// content. Documents are keyed by message id and scoped to a chat via
// a keyword field, so search never leaks across chats.
type MessageSearchIndex struct {
	writer *bluge.Writer
}

func NewMessageSearchIndex(path string) (*MessageSearchIndex, error) {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(path))
	if err != nil {
		return nil, err
	}
	return &MessageSearchIndex{writer: writer}, nil
}

// NewInMemoryMessageSearchIndex is meant for tests and tooling.
func NewInMemoryMessageSearchIndex() (*MessageSearchIndex, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}
	return &MessageSearchIndex{writer: writer}, nil
}

func (s *MessageSearchIndex) Index(message *domain.Message) error {
	doc := bluge.NewDocument(message.MessageID().String()).
		AddField(bluge.NewKeywordField("chat_id", message.ChatID().String())).
		AddField(bluge.NewTextField("content", message.Content())).
		AddField(bluge.NewDateTimeField("created_at", message.CreatedAt()))
	return s.writer.Update(doc.ID(), doc)
}

// Search returns the ids of the best-matching messages in the chat,
// relevance-ordered.
func (s *MessageSearchIndex) Search(ctx context.Context, chatID domain.ChatID, terms string, limit int) ([]domain.MessageID, error) {
	reader, err := s.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(chatID.String()).SetField("chat_id")).
		AddMust(bluge.NewMatchQuery(terms).SetField("content"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var ids []domain.MessageID
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, domain.MessageIDOf(string(value)))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func (s *MessageSearchIndex) Close() error {
	return s.writer.Close()
}
