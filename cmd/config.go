package main

import (
	"fmt"
	"time"
)

type Config struct {
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	TokenSigningKey string        `env:"TOKEN_SIGNING_KEY,required=true"`
	TokenIssuer     string        `env:"TOKEN_ISSUER,default=chat-core"`
	TokenDuration   time.Duration `env:"TOKEN_DURATION,default=24h"`
	EventBufferSize int           `env:"EVENT_BUFFER_SIZE,default=256"`
	ForbiddenWords  string        `env:"FORBIDDEN_WORDS"`
	CharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	MessageLimit    int           `env:"LIMIT_MESSAGES,default=50"`
}

// CharacterRune narrows the masking character to a single rune. Kept a
// string in the env layer because env parsing treats rune as a number.
func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}
