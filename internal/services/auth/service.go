package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"time"

	"github.com/mihara/courseflow/internal/dependencies/clock"
	"github.com/mihara/courseflow/internal/model"
	"github.com/mihara/courseflow/internal/storage"
)

// Errors
var (
	ErrEmailMismatch      = errors.New("email entries do not match")
	ErrNotRegistered      = errors.New("email is not registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Config holds configuration for the auth service
type Config struct {
	SessionTTL time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionTTL: 24 * time.Hour,
	}
}

// Service handles registration, login, and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	sessionTTL time.Duration
}

// New creates a new auth service
func New(store storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = DefaultConfig().SessionTTL
	}
	return &Service{
		storage:    store,
		clock:      clk,
		logger:     logger,
		sessionTTL: cfg.SessionTTL,
	}
}

// RegisterInput carries the registration form fields
type RegisterInput struct {
	Name         string
	Birthday     string
	Email        string
	EmailConfirm string
	Password     string
	Course       string
}

// Register creates a new user.
// The two email entries must match, and the course (when supplied) must
// be a catalog course. A duplicate email surfaces as model.ErrEmailTaken
// and creates no row.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Email != in.EmailConfirm {
		return nil, ErrEmailMismatch
	}
	if in.Course != "" && !model.ValidCourse(in.Course) {
		return nil, model.ErrUnknownCourse
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         in.Name,
		Birthday:     in.Birthday,
		Email:        in.Email,
		PasswordHash: hash,
		Course:       in.Course,
		RegisterTime: s.clock.Now(),
	}

	id, err := s.storage.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info("user registered", slog.Int64("user_id", int64(id)))
	return user, nil
}

// Login authenticates an email/password pair and creates a session.
// An unknown email returns ErrNotRegistered; a bad password returns
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Session, error) {
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, user.ID)
}

// Logout removes the session. It succeeds whether or not a session exists.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.storage.DeleteSession(ctx, token)
}

// CurrentUser resolves a session token to its user.
// The session is bound to the immutable user ID, so a profile edit that
// changes the email keeps the session valid.
func (s *Service) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	session, err := s.storage.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if session.Expired(s.clock.Now()) {
		_ = s.storage.DeleteSession(ctx, token)
		return nil, ErrInvalidSession
	}

	user, err := s.storage.GetUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) createSession(ctx context.Context, userID model.UserID) (*model.Session, error) {
	now := s.clock.Now()
	session := &model.Session{
		Token:     generateToken(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// generateToken generates a random opaque session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
