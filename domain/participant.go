package domain

import (
	"chat-core/errors"
	"fmt"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Participant binds a user to a role within one group chat.
// Immutable after construction; equality is by (UserID, Role) pair,
// which struct comparison already provides.
type Participant struct {
	UserID UserID
	Role   Role
}

func NewParticipant(userID UserID, role Role) (Participant, error) {
	if userID == "" {
		return Participant{}, fmt.Errorf("%w: missing user id", errors.ErrInvalidParticipant)
	}
	if role != RoleAdmin && role != RoleMember {
		return Participant{}, fmt.Errorf("%w: unknown role %q", errors.ErrInvalidParticipant, role)
	}
	return Participant{UserID: userID, Role: role}, nil
}

func (p Participant) IsAdmin() bool {
	return p.Role == RoleAdmin
}
