package domain

import (
	"fmt"
	"strings"
	"time"

	"chat-core/errors"

	"github.com/samber/lo"
)

type GroupChatState string

const (
	GroupChatActive GroupChatState = "ACTIVE"
	// GroupChatDegraded means exactly one participant remains.
	GroupChatDegraded GroupChatState = "DEGRADED"
)

// GroupChat is a named conversation with role-carrying participants.
// Membership mutations are gated on the requester being an ADMIN, and
// every mutation validates the candidate next state before committing
// it, so a partially-mutated aggregate is never observable.
type GroupChat struct {
	chatID        ChatID
	participants  []Participant
	groupName     string
	createdAt     time.Time
	state         GroupChatState
	lastMessageID MessageID
}

func NewGroupChat(chatID ChatID, participants []Participant, groupName string) (*GroupChat, error) {
	if strings.TrimSpace(groupName) == "" {
		return nil, fmt.Errorf("%w: group name cannot be empty", errors.ErrInvalidGroup)
	}
	if len(participants) < 3 {
		return nil, fmt.Errorf("%w: at least 3 participants required, got %d", errors.ErrInvalidGroup, len(participants))
	}
	if !hasAdmin(participants) {
		return nil, fmt.Errorf("%w: at least one ADMIN required", errors.ErrInvalidGroup)
	}
	return &GroupChat{
		chatID:       chatID,
		participants: append([]Participant(nil), participants...),
		groupName:    groupName,
		createdAt:    time.Now().UTC(),
		state:        GroupChatActive,
	}, nil
}

// RestoreGroupChat rebuilds an aggregate from persisted state without
// re-running creation-time checks. Repository use only.
func RestoreGroupChat(
	chatID ChatID,
	participants []Participant,
	groupName string,
	createdAt time.Time,
	state GroupChatState,
	lastMessageID MessageID,
) *GroupChat {
	return &GroupChat{
		chatID:        chatID,
		participants:  append([]Participant(nil), participants...),
		groupName:     groupName,
		createdAt:     createdAt,
		state:         state,
		lastMessageID: lastMessageID,
	}
}

func (c *GroupChat) Rename(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("%w: group name cannot be empty", errors.ErrInvalidGroup)
	}
	c.groupName = newName
	return nil
}

func (c *GroupChat) CanSendMessage(userID UserID) bool {
	return lo.ContainsBy(c.participants, func(p Participant) bool {
		return p.UserID == userID
	})
}

// AddParticipant appends a participant on behalf of an admin requester.
func (c *GroupChat) AddParticipant(requesterID UserID, participant Participant) error {
	if !c.IsAdmin(requesterID) {
		return fmt.Errorf("%w: only admins can manage participants", errors.ErrUnauthorized)
	}
	if lo.Contains(c.participants, participant) {
		return errors.ErrAlreadyParticipant
	}
	return c.commit(append(c.Participants(), participant))
}

// RemoveParticipant removes the target on behalf of an admin requester.
// The admin-retention rule is checked against the candidate participant
// set, so a group without an admin can never be committed or persisted.
func (c *GroupChat) RemoveParticipant(requesterID, targetID UserID) error {
	if !c.IsAdmin(requesterID) {
		return fmt.Errorf("%w: only admins can manage participants", errors.ErrUnauthorized)
	}
	if !lo.ContainsBy(c.participants, func(p Participant) bool { return p.UserID == targetID }) {
		return fmt.Errorf("%w: %s", errors.ErrNotInChat, targetID)
	}

	candidate := lo.Reject(c.participants, func(p Participant, _ int) bool {
		return p.UserID == targetID
	})
	if !hasAdmin(candidate) {
		return fmt.Errorf("%w: must retain at least one ADMIN", errors.ErrInvalidGroup)
	}
	return c.commit(candidate)
}

func (c *GroupChat) UpdateLastMessage(messageID MessageID) {
	c.lastMessageID = messageID
}

func (c *GroupChat) IsAdmin(userID UserID) bool {
	return lo.ContainsBy(c.participants, func(p Participant) bool {
		return p.UserID == userID && p.IsAdmin()
	})
}

// commit replaces the participant set and re-derives the state.
// Mutations never pass an empty set here; the admin-retention check
// keeps at least one participant around.
func (c *GroupChat) commit(participants []Participant) error {
	switch len(participants) {
	case 0:
		return errors.ErrGroupDeleted
	case 1:
		c.state = GroupChatDegraded
	default:
		c.state = GroupChatActive
	}
	c.participants = participants
	return nil
}

func hasAdmin(participants []Participant) bool {
	return lo.ContainsBy(participants, Participant.IsAdmin)
}

func (c *GroupChat) ChatID() ChatID {
	return c.chatID
}

func (c *GroupChat) Participants() []Participant {
	return append([]Participant(nil), c.participants...)
}

func (c *GroupChat) GroupName() string {
	return c.groupName
}

func (c *GroupChat) CreatedAt() time.Time {
	return c.createdAt
}

func (c *GroupChat) State() GroupChatState {
	return c.state
}

func (c *GroupChat) LastMessageID() MessageID {
	return c.lastMessageID
}
