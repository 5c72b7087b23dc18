package services

import (
	"fmt"
	"log/slog"

	"chat-core/auth"
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/repositories"
)

type Token string

// AuthenticatedUser pairs the logged-in user with its session token.
type AuthenticatedUser struct {
	User  *domain.User
	Token Token
}

type IAuthService interface {
	Register(username, email, password string) (AuthenticatedUser, error)
	Login(email, password string) (AuthenticatedUser, error)
	Logout(userID domain.UserID) error
	Search(username string) (*domain.User, error)
}

type AuthService struct {
	users  repositories.IUserRepository
	tokens *auth.TokenService
	log    *slog.Logger
}

func NewAuthService(users repositories.IUserRepository, tokens *auth.TokenService, log *slog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

func (s *AuthService) Register(username, email, password string) (AuthenticatedUser, error) {
	// Validate business rules before any expensive cryptographic work.
	request := auth.RegisterRequest{Username: username, Email: email, Password: password}
	if err := auth.ValidateRegister(request); err != nil {
		return AuthenticatedUser{}, fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	address, err := domain.NewEmail(email)
	if err != nil {
		return AuthenticatedUser{}, err
	}
	if _, err := s.users.FindByEmail(address); err == nil {
		return AuthenticatedUser{}, errors.ErrUserAlreadyExists
	} else if !errors.Is(err, errors.ErrUserNotFound) {
		return AuthenticatedUser{}, err
	}

	// Hashing happens here so the repository never sees plain passwords.
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return AuthenticatedUser{}, fmt.Errorf("hashing failed: %w", err)
	}

	user, err := domain.NewUser(domain.NewUserID(), username, address, hashed)
	if err != nil {
		return AuthenticatedUser{}, err
	}
	if err := s.users.Save(user); err != nil {
		return AuthenticatedUser{}, err
	}

	token, err := s.tokens.Generate(user.UserID().String(), user.Username())
	if err != nil {
		return AuthenticatedUser{}, errors.ErrTokenGeneration
	}
	s.log.Info("user registered", "user_id", user.UserID())
	return AuthenticatedUser{User: user, Token: Token(token)}, nil
}

func (s *AuthService) Login(email, password string) (AuthenticatedUser, error) {
	address, err := domain.NewEmail(email)
	if err != nil {
		return AuthenticatedUser{}, err
	}

	user, err := s.users.FindByEmail(address)
	if err != nil {
		// Generic error to prevent user enumeration.
		return AuthenticatedUser{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash())
	if err != nil || !match {
		return AuthenticatedUser{}, errors.ErrInvalidCredentials
	}

	user.SetPresence(domain.PresenceOnline)
	if err := s.users.Save(user); err != nil {
		return AuthenticatedUser{}, err
	}

	token, err := s.tokens.Generate(user.UserID().String(), user.Username())
	if err != nil {
		return AuthenticatedUser{}, errors.ErrTokenGeneration
	}
	return AuthenticatedUser{User: user, Token: Token(token)}, nil
}

func (s *AuthService) Logout(userID domain.UserID) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	user.SetPresence(domain.PresenceOffline)
	return s.users.Save(user)
}

func (s *AuthService) Search(username string) (*domain.User, error) {
	return s.users.FindByUsername(username)
}
