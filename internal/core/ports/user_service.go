package ports

import (
	"context"

	"github.com/guitarworld/guitar-store/internal/core/domain"
)

// LoginResult carries the session token issued on a successful login
// alongside the authenticated user. The token is never persisted.
type LoginResult struct {
	Token string
	User  *domain.User
}

// UserService defines the account and collection use cases.
type UserService interface {
	Register(ctx context.Context, username, password, email string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Profile(ctx context.Context, id string) (*domain.User, error)
	AddGuitar(ctx context.Context, userID, guitarID string) (*domain.User, error)
	// RemoveGuitar is idempotent: removing a guitar the user does not own
	// still succeeds and returns the unchanged profile.
	RemoveGuitar(ctx context.Context, userID, guitarID string) (*domain.User, error)
}
