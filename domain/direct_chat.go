package domain

import (
	"time"

	"chat-core/errors"

	"github.com/samber/lo"
)

// DirectChat is a 1:1 conversation. The two-participant invariant is
// enforced at construction and never changes afterwards; the last
// message pointer is the only mutable field.
type DirectChat struct {
	chatID        ChatID
	participants  []UserID
	createdAt     time.Time
	lastMessageID MessageID // empty until the first message is sent
}

func NewDirectChat(chatID ChatID, participants []UserID) (*DirectChat, error) {
	if len(participants) != 2 {
		return nil, errors.ErrInvalidParticipantCount
	}
	return &DirectChat{
		chatID:       chatID,
		participants: append([]UserID(nil), participants...),
		createdAt:    time.Now().UTC(),
	}, nil
}

// RestoreDirectChat rebuilds an aggregate from persisted state without
// re-running creation-time checks. Repository use only.
func RestoreDirectChat(chatID ChatID, participants []UserID, createdAt time.Time, lastMessageID MessageID) *DirectChat {
	return &DirectChat{
		chatID:        chatID,
		participants:  append([]UserID(nil), participants...),
		createdAt:     createdAt,
		lastMessageID: lastMessageID,
	}
}

func (c *DirectChat) CanSendMessage(userID UserID) bool {
	return lo.Contains(c.participants, userID)
}

func (c *DirectChat) UpdateLastMessage(messageID MessageID) {
	c.lastMessageID = messageID
}

// OtherParticipant returns the participant that is not the given user.
func (c *DirectChat) OtherParticipant(userID UserID) (UserID, bool) {
	return lo.Find(c.participants, func(p UserID) bool { return p != userID })
}

func (c *DirectChat) ChatID() ChatID {
	return c.chatID
}

func (c *DirectChat) Participants() []UserID {
	return append([]UserID(nil), c.participants...)
}

func (c *DirectChat) CreatedAt() time.Time {
	return c.createdAt
}

func (c *DirectChat) LastMessageID() MessageID {
	return c.lastMessageID
}
