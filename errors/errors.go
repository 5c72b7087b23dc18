package errors

import (
	stderrors "errors"
	"fmt"
)

// Is and As are re-exported so callers can keep a single errors import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// Not-found family. Surfaced to callers as-is, never retried.
var (
	ErrUserNotFound      = fmt.Errorf("user not found")
	ErrGroupChatNotFound = fmt.Errorf("group chat not found")
	ErrChatNotFound      = fmt.Errorf("chat not found")
)

// Invalid-input family: the request violates a domain invariant.
var (
	ErrInvalidGroup            = fmt.Errorf("invalid group chat")
	ErrInvalidParticipantCount = fmt.Errorf("direct chat requires exactly two participants")
	ErrInvalidParticipant      = fmt.Errorf("invalid participant")
	ErrEmptyContent            = fmt.Errorf("message content cannot be empty")
	ErrInvalidChat             = fmt.Errorf("cannot create a direct chat with yourself")
	ErrEmptyUsername           = fmt.Errorf("username cannot be empty")
	ErrInvalidEmail            = fmt.Errorf("invalid email format")
	ErrInvalidLimit            = fmt.Errorf("message limit must not be negative")
)

var ErrUnauthorized = fmt.Errorf("unauthorized operation")

// Conflict family. ErrChatAlreadyExists is raised by the direct chat store
// on a duplicate pair key and is fully recovered inside the create use-case.
var (
	ErrAlreadyParticipant = fmt.Errorf("user is already a participant")
	ErrNotInChat          = fmt.Errorf("user is not in this chat")
	ErrChatAlreadyExists  = fmt.Errorf("direct chat already exists for this pair")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
)

// ErrInvalidStateTransition and ErrGroupDeleted are logic errors: no
// use-case path reaches them on valid input.
var (
	ErrInvalidStateTransition = fmt.Errorf("invalid message state transition")
	ErrGroupDeleted           = fmt.Errorf("group chat has no participants left")
)

// Auth family.
var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)
