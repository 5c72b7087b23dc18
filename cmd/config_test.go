package main

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultsParse(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("BLUGE_FILEPATH", t.TempDir())
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("TOKEN_SIGNING_KEY", "test-signing-key")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal("chat-core", config.TokenIssuer)
	req.Equal(24*time.Hour, config.TokenDuration)
	req.Equal(256, config.EventBufferSize)
	req.Equal(50, config.MessageLimit)

	replacement, err := config.CharacterRune()
	req.NoError(err)
	req.Equal('*', replacement)
}

func TestConfig_CharacterRune(t *testing.T) {
	t.Run("should accept a single multi-byte character", func(t *testing.T) {
		req := require.New(t)
		config := Config{CharReplacement: "█"}

		replacement, err := config.CharacterRune()

		req.NoError(err)
		req.Equal('█', replacement)
	})

	t.Run("should reject multi-character values", func(t *testing.T) {
		req := require.New(t)
		config := Config{CharReplacement: "**"}

		_, err := config.CharacterRune()

		req.Error(err)
	})

	t.Run("should reject an empty value", func(t *testing.T) {
		req := require.New(t)
		config := Config{CharReplacement: ""}

		_, err := config.CharacterRune()

		req.Error(err)
	})
}
