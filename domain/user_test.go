package domain

import (
	"testing"

	"chat-core/errors"

	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("should accept a valid address", func(t *testing.T) {
		req := require.New(t)
		email, err := NewEmail("alice@example.com")
		req.NoError(err)
		req.Equal("alice@example.com", email.String())
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		req := require.New(t)
		for _, raw := range []string{"", "  ", "alice", "alice@", "@example.com", "a b@example.com"} {
			_, err := NewEmail(raw)
			req.ErrorIs(err, errors.ErrInvalidEmail, "input %q", raw)
		}
	})
}

func TestNewUser(t *testing.T) {
	t.Run("should start offline", func(t *testing.T) {
		req := require.New(t)
		user, err := NewUser(NewUserID(), "alice", "alice@example.com", "hash")
		req.NoError(err)
		req.Equal(PresenceOffline, user.Status())
	})

	t.Run("should reject blank username", func(t *testing.T) {
		req := require.New(t)
		_, err := NewUser(NewUserID(), "   ", "alice@example.com", "hash")
		req.ErrorIs(err, errors.ErrEmptyUsername)
	})
}

func TestUser_SetPresence(t *testing.T) {
	req := require.New(t)
	user, err := NewUser(NewUserID(), "alice", "alice@example.com", "hash")
	req.NoError(err)

	user.SetPresence(PresenceOnline)
	req.Equal(PresenceOnline, user.Status())
	user.SetPresence(PresenceOffline)
	req.Equal(PresenceOffline, user.Status())
}

func TestNewParticipant(t *testing.T) {
	t.Run("should reject empty user id", func(t *testing.T) {
		req := require.New(t)
		_, err := NewParticipant("", RoleAdmin)
		req.ErrorIs(err, errors.ErrInvalidParticipant)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		req := require.New(t)
		_, err := NewParticipant("alice", Role("OWNER"))
		req.ErrorIs(err, errors.ErrInvalidParticipant)
	})

	t.Run("should compare by value", func(t *testing.T) {
		req := require.New(t)
		a, err := NewParticipant("alice", RoleAdmin)
		req.NoError(err)
		b, err := NewParticipant("alice", RoleAdmin)
		req.NoError(err)
		c, err := NewParticipant("alice", RoleMember)
		req.NoError(err)

		req.Equal(a, b)
		req.NotEqual(a, c)
		req.True(a.IsAdmin())
		req.False(c.IsAdmin())
	})
}
