package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/guitarworld/guitar-store/internal/api/metrics"
	"github.com/guitarworld/guitar-store/internal/core/domain"
	"github.com/guitarworld/guitar-store/internal/core/ports"
)

// UserService implements registration, login, and the owned-guitar
// collection use cases.
type UserService struct {
	users   ports.Repository[domain.User]
	guitars ports.Repository[domain.Guitar]
	creds   ports.CredentialService
	logger  zerolog.Logger
}

func NewUserService(
	users ports.Repository[domain.User],
	guitars ports.Repository[domain.Guitar],
	creds ports.CredentialService,
	logger zerolog.Logger,
) *UserService {
	return &UserService{users: users, guitars: guitars, creds: creds, logger: logger}
}

func (s *UserService) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.creds.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// Role and the guitar collection are initialized here, never taken
	// from the registering client.
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		MyGuitars:    []domain.Guitar{},
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("username", username).Msg("user registered")
	return created, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	matches, err := s.users.Search(ctx, "username", username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if len(matches) == 0 {
		metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user := matches[0]
	if !s.creds.ComparePassword(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.creds.CreateToken(ports.TokenClaims{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", username).Msg("user logged in")
	return &ports.LoginResult{Token: token, User: &user}, nil
}

func (s *UserService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) AddGuitar(ctx context.Context, userID, guitarID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	guitar, err := s.guitars.GetByID(ctx, guitarID)
	if err != nil {
		return nil, err
	}

	if user.Owns(guitar.ID) {
		return nil, domain.ErrAlreadyOwned
	}

	// Plain read-modify-write: concurrent adds on the same user resolve
	// last-write-wins at the store, same as the rest of the system.
	user.MyGuitars = append(user.MyGuitars, *guitar)

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("guitar_id", guitarID).Msg("guitar added to collection")
	return updated, nil
}

func (s *UserService) RemoveGuitar(ctx context.Context, userID, guitarID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	guitar, err := s.guitars.GetByID(ctx, guitarID)
	if err != nil {
		return nil, err
	}

	// Idempotent: filtering out a guitar the user never owned leaves the
	// collection unchanged and still succeeds.
	kept := make([]domain.Guitar, 0, len(user.MyGuitars))
	for _, g := range user.MyGuitars {
		if g.ID != guitar.ID {
			kept = append(kept, g)
		}
	}
	user.MyGuitars = kept

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("guitar_id", guitarID).Msg("guitar removed from collection")
	return updated, nil
}
