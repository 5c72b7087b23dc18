// Package domain contains core concepts of the chat system.
// Aggregates enforce their own invariants; no runtime, storage,
// or transport logic should be added here.
package domain

import "github.com/google/uuid"

// Identifiers are opaque string wrappers. The values are UUIDs by
// convention but the domain never inspects their format.
type (
	UserID    string
	ChatID    string
	MessageID string
)

func NewUserID() UserID       { return UserID(uuid.NewString()) }
func NewChatID() ChatID       { return ChatID(uuid.NewString()) }
func NewMessageID() MessageID { return MessageID(uuid.NewString()) }

// The Of constructors wrap an existing value without validating it.
func UserIDOf(value string) UserID       { return UserID(value) }
func ChatIDOf(value string) ChatID       { return ChatID(value) }
func MessageIDOf(value string) MessageID { return MessageID(value) }

func (id UserID) String() string    { return string(id) }
func (id ChatID) String() string    { return string(id) }
func (id MessageID) String() string { return string(id) }
