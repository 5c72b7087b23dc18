package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"chat-core/auth"
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/events"
	"chat-core/moderation"
	"chat-core/repositories"
	"chat-core/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the stores and use-cases, then walks a sample conversation
// through them. Returning the error instead of exiting lets every defer
// (database and index close) execute on the way out.
func run() error {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := newLogger(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	index, err := repositories.NewMessageSearchIndex(config.BlugeFilepath)
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = index.Close()
	}()

	var moderator *moderation.Moderator
	if config.ForbiddenWords != "" {
		replacement, err := config.CharacterRune()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		moderator, err = moderation.NewModerator(strings.Split(config.ForbiddenWords, ","), replacement)
		if err != nil {
			return fmt.Errorf("moderator setup failed: %w", err)
		}
	}

	users := repositories.NewUserRepository(db)
	directChats := repositories.NewDirectChatRepository(db)
	groupChats := repositories.NewGroupChatRepository(db)
	messages := repositories.NewMessageRepository(db, log)

	tokens := auth.NewTokenService([]byte(config.TokenSigningKey), config.TokenIssuer, config.TokenDuration)
	publisher := events.NewChannelPublisher(log, config.EventBufferSize)

	app := &application{
		auth:        services.NewAuthService(users, tokens, log),
		directChats: services.NewDirectChatService(users, directChats, log),
		groupChats:  services.NewGroupChatService(users, groupChats, log),
		messages:    services.NewMessageService(messages, directChats, groupChats, publisher, index, moderator, log),
		chatList:    services.NewChatListService(directChats, groupChats, messages, users),
		search:      services.NewSearchService(directChats, groupChats, index),
		limit:       config.MessageLimit,
		log:         log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Drain published events the way a delivery layer would.
	go func() {
		for event := range publisher.Events() {
			log.Info("event: message sent",
				"message_id", event.MessageID, "chat_id", event.ChatID, "lang", event.Lang)
		}
	}()

	if err := app.sampleConversation(ctx); err != nil {
		return err
	}
	log.Info("Program stopped cleanly")
	return nil
}

type application struct {
	auth        services.IAuthService
	directChats services.IDirectChatService
	groupChats  services.IGroupChatService
	messages    services.IMessageService
	chatList    services.IChatListService
	search      services.ISearchService
	limit       int
	log         *slog.Logger
}

// sampleConversation exercises the full use-case surface against the
// live stores: registration, direct and group chats, message exchange,
// chat listing and search.
func (a *application) sampleConversation(ctx context.Context) error {
	alice, err := a.ensureUser("alice", "alice@example.com", "Al1ce$SamplePass")
	if err != nil {
		return err
	}
	bob, err := a.ensureUser("bob", "bob@example.com", "B0b!SamplePass42")
	if err != nil {
		return err
	}
	clara, err := a.ensureUser("clara", "clara@example.com", "Cl4ra#SamplePass")
	if err != nil {
		return err
	}

	direct, err := a.directChats.Create(alice.User.UserID(), bob.User.UserID())
	if err != nil {
		return fmt.Errorf("direct chat: %w", err)
	}
	if _, err := a.messages.Send(direct.ChatID(), alice.User.UserID(), "salut bob, on se voit demain ?"); err != nil {
		return fmt.Errorf("direct send: %w", err)
	}
	if _, err := a.messages.Send(direct.ChatID(), bob.User.UserID(), "yes, see you at the office"); err != nil {
		return fmt.Errorf("direct reply: %w", err)
	}

	group, err := a.groupChats.Create(alice.User.UserID(), "weekend hikers",
		[]domain.UserID{bob.User.UserID(), clara.User.UserID()})
	if err != nil {
		return fmt.Errorf("group chat: %w", err)
	}
	if _, err := a.messages.Send(group.ChatID(), clara.User.UserID(), "trail starts at 9, bring water"); err != nil {
		return fmt.Errorf("group send: %w", err)
	}

	summaries, err := a.chatList.List(alice.User.UserID(), a.limit)
	if err != nil {
		return fmt.Errorf("chat list: %w", err)
	}
	for _, summary := range summaries {
		a.log.Info("chat", "kind", summary.Kind, "name", summary.Name,
			"last_message", summary.LastMessageContent)
	}

	hits, err := a.search.SearchMessages(ctx, direct.ChatID(), alice.User.UserID(), "office", a.limit)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	a.log.Info("search done", "terms", "office", "hits", len(hits))

	return a.auth.Logout(alice.User.UserID())
}

// ensureUser registers the user, falling back to login when a previous
// run already created it.
func (a *application) ensureUser(username, email, password string) (services.AuthenticatedUser, error) {
	authenticated, err := a.auth.Register(username, email, password)
	if err == nil {
		return authenticated, nil
	}
	if !errors.Is(err, errors.ErrUserAlreadyExists) {
		return services.AuthenticatedUser{}, fmt.Errorf("register %s: %w", username, err)
	}
	return a.auth.Login(email, password)
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}
