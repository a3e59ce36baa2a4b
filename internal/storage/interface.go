package storage

import (
	"context"

	"github.com/mihara/courseflow/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	//
	// CreateUser assigns and returns the new user's ID. It returns
	// model.ErrEmailTaken if another user already holds the email;
	// UpdateUser returns the same error when an edit moves the email
	// onto one held by a different user.
	CreateUser(ctx context.Context, user *model.User) (model.UserID, error)
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	// ListUsers returns all users ordered by ID
	ListUsers(ctx context.Context) ([]*model.User, error)

	// Session operations
	//
	// Backends with native expiry (redis) honor the session's ExpiresAt
	// as a TTL; others store it verbatim and leave expiry checks to the
	// caller.
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
}
