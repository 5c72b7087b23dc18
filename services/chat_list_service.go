package services

import (
	"fmt"
	"sort"
	"time"

	"chat-core/domain"
	"chat-core/repositories"

	"github.com/samber/lo"
)

type ChatKind string

const (
	ChatKindDirect ChatKind = "DIRECT"
	ChatKindGroup  ChatKind = "GROUP"
)

// ChatSummary is one row of a user's chat list. For direct chats the
// name is the other participant's username; for group chats it is the
// group name. The last-message fields are nil when the chat is empty.
type ChatSummary struct {
	ChatID             domain.ChatID
	Kind               ChatKind
	Name               string
	LastMessageContent *string
	LastMessageAt      *time.Time
}

type IChatListService interface {
	List(requesterID domain.UserID, limit int) ([]ChatSummary, error)
}

type ChatListService struct {
	directChats repositories.IDirectChatRepository
	groupChats  repositories.IGroupChatRepository
	messages    repositories.IMessageRepository
	users       repositories.IUserRepository
}

func NewChatListService(
	directChats repositories.IDirectChatRepository,
	groupChats repositories.IGroupChatRepository,
	messages repositories.IMessageRepository,
	users repositories.IUserRepository,
) *ChatListService {
	return &ChatListService{
		directChats: directChats,
		groupChats:  groupChats,
		messages:    messages,
		users:       users,
	}
}

// List merges the requester's direct and group chats into one list
// ordered by last-message time descending. Chats without messages sort
// after every dated chat; ties break by chat id. The limit (0 means
// unlimited) is applied by truncation after sorting, never before.
func (s *ChatListService) List(requesterID domain.UserID, limit int) ([]ChatSummary, error) {
	directs, err := s.directChats.FindByParticipant(requesterID)
	if err != nil {
		return nil, err
	}
	groups, err := s.groupChats.FindByParticipant(requesterID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ChatSummary, 0, len(directs)+len(groups))
	for _, chat := range directs {
		summary, err := s.directSummary(chat, requesterID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	for _, chat := range groups {
		summary, err := s.groupSummary(chat)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaryLess(summaries[i], summaries[j])
	})

	if limit > 0 {
		summaries = lo.Subset(summaries, 0, uint(limit))
	}
	return summaries, nil
}

// summaryLess orders dated chats by time descending, undated chats
// last, and breaks every tie by chat id so the order is total and
// deterministic.
func summaryLess(a, b ChatSummary) bool {
	switch {
	case a.LastMessageAt != nil && b.LastMessageAt != nil:
		if !a.LastMessageAt.Equal(*b.LastMessageAt) {
			return a.LastMessageAt.After(*b.LastMessageAt)
		}
		return a.ChatID < b.ChatID
	case a.LastMessageAt != nil:
		return true
	case b.LastMessageAt != nil:
		return false
	default:
		return a.ChatID < b.ChatID
	}
}

func (s *ChatListService) directSummary(chat *domain.DirectChat, requesterID domain.UserID) (ChatSummary, error) {
	otherID, ok := chat.OtherParticipant(requesterID)
	if !ok {
		return ChatSummary{}, fmt.Errorf("direct chat %s has no participant other than %s", chat.ChatID(), requesterID)
	}
	other, err := s.users.FindByID(otherID)
	if err != nil {
		return ChatSummary{}, fmt.Errorf("other user %s: %w", otherID, err)
	}

	summary := ChatSummary{
		ChatID: chat.ChatID(),
		Kind:   ChatKindDirect,
		Name:   other.Username(),
	}
	return s.attachLastMessage(summary)
}

func (s *ChatListService) groupSummary(chat *domain.GroupChat) (ChatSummary, error) {
	summary := ChatSummary{
		ChatID: chat.ChatID(),
		Kind:   ChatKindGroup,
		Name:   chat.GroupName(),
	}
	return s.attachLastMessage(summary)
}

func (s *ChatListService) attachLastMessage(summary ChatSummary) (ChatSummary, error) {
	last, err := s.messages.FindLastMessage(summary.ChatID)
	if err != nil {
		return ChatSummary{}, err
	}
	if last != nil {
		summary.LastMessageContent = lo.ToPtr(last.Content())
		summary.LastMessageAt = lo.ToPtr(last.CreatedAt())
	}
	return summary, nil
}
