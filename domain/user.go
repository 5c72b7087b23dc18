package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"chat-core/errors"
)

type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "ONLINE"
	PresenceOffline PresenceStatus = "OFFLINE"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)

// Email is a validated address value.
type Email string

func NewEmail(value string) (Email, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: email cannot be empty", errors.ErrInvalidEmail)
	}
	if !emailPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %s", errors.ErrInvalidEmail, value)
	}
	return Email(value), nil
}

func (e Email) String() string { return string(e) }

// User is an account with a presence status. Password verification is
// delegated to the auth package; the domain only carries the hash.
type User struct {
	userID       UserID
	username     string
	email        Email
	passwordHash string
	status       PresenceStatus
	createdAt    time.Time
}

func NewUser(userID UserID, username string, email Email, passwordHash string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.ErrEmptyUsername
	}
	return &User{
		userID:       userID,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		status:       PresenceOffline,
		createdAt:    time.Now().UTC(),
	}, nil
}

// RestoreUser rebuilds a user from persisted state. Repository use only.
func RestoreUser(
	userID UserID,
	username string,
	email Email,
	passwordHash string,
	status PresenceStatus,
	createdAt time.Time,
) *User {
	return &User{
		userID:       userID,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		status:       status,
		createdAt:    createdAt,
	}
}

func (u *User) SetPresence(status PresenceStatus) {
	u.status = status
}

func (u *User) ChangePassword(passwordHash string) {
	u.passwordHash = passwordHash
}

func (u *User) UserID() UserID {
	return u.userID
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() Email {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Status() PresenceStatus {
	return u.status
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}
