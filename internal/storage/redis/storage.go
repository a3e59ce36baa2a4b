package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mihara/courseflow/internal/model"
	"github.com/mihara/courseflow/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) (model.UserID, error) {
	// Claim the email index first; SETNX loses if the email is taken
	reserved, err := s.client.SetNX(ctx, emailIndexKey(user.Email), "", 0).Result()
	if err != nil {
		return 0, err
	}
	if !reserved {
		return 0, model.ErrEmailTaken
	}

	next, err := s.client.Incr(ctx, nextUserIDKey()).Result()
	if err != nil {
		s.client.Del(ctx, emailIndexKey(user.Email))
		return 0, err
	}
	id := model.UserID(next)

	stored := *user
	stored.ID = id

	data, err := json.Marshal(&stored)
	if err != nil {
		s.client.Del(ctx, emailIndexKey(user.Email))
		return 0, err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(id), data, 0)
	pipe.Set(ctx, emailIndexKey(stored.Email), strconv.FormatInt(int64(id), 10), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		s.client.Del(ctx, emailIndexKey(user.Email))
		return 0, err
	}
	return id, nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, model.ErrUserNotFound
	}

	return s.GetUser(ctx, model.UserID(id))
}

func (s *Storage) UpdateUser(ctx context.Context, user *model.User) error {
	existing, err := s.GetUser(ctx, user.ID)
	if err != nil {
		return err
	}

	if user.Email != existing.Email {
		holder, err := s.client.Get(ctx, emailIndexKey(user.Email)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil && holder != strconv.FormatInt(int64(user.ID), 10) {
			return model.ErrEmailTaken
		}
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	if user.Email != existing.Email {
		pipe.Del(ctx, emailIndexKey(existing.Email))
		pipe.Set(ctx, emailIndexKey(user.Email), strconv.FormatInt(int64(user.ID), 10), 0)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User

	iter := s.client.Scan(ctx, 0, userKeyPattern(), 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}

		var user model.User
		if err := json.Unmarshal(data, &user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	// Redis expires the session natively. The TTL comes from the
	// session's own timestamps rather than the wall clock, so sessions
	// stamped by an injected clock are still written with their full
	// lifetime.
	ttl := session.ExpiresAt.Sub(session.CreatedAt)
	if ttl <= 0 {
		return errors.New("session expires at or before its creation")
	}
	return s.client.Set(ctx, sessionKey(session.Token), data, ttl).Err()
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
