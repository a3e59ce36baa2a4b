package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mihara/courseflow/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newUser(email string) *model.User {
	return &model.User{
		Name:         "山田太郎",
		Birthday:     "2000-01-01",
		Email:        email,
		PasswordHash: "hashed",
		Course:       model.CourseBandai,
		RegisterTime: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	id, err := s.storage.CreateUser(s.ctx, s.newUser("taro@example.com"))
	s.Require().NoError(err)
	s.NotZero(id)

	user, err := s.storage.GetUser(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(id, user.ID)
	s.Equal("taro@example.com", user.Email)
	s.Equal(model.CourseBandai, user.Course)
}

func (s *StorageSuite) TestCreateUserRejectsDuplicateEmail() {
	_, err := s.storage.CreateUser(s.ctx, s.newUser("taro@example.com"))
	s.Require().NoError(err)

	_, err = s.storage.CreateUser(s.ctx, s.newUser("taro@example.com"))
	s.ErrorIs(err, model.ErrEmailTaken)
}

func (s *StorageSuite) TestListUsers() {
	first, err := s.storage.CreateUser(s.ctx, s.newUser("a@example.com"))
	s.Require().NoError(err)
	second, err := s.storage.CreateUser(s.ctx, s.newUser("b@example.com"))
	s.Require().NoError(err)

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal(first, users[0].ID)
	s.Equal(second, users[1].ID)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 99)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByEmail() {
	id, _ := s.storage.CreateUser(s.ctx, s.newUser("taro@example.com"))

	user, err := s.storage.GetUserByEmail(s.ctx, "taro@example.com")
	s.Require().NoError(err)
	s.Equal(id, user.ID)
}

func (s *StorageSuite) TestGetUserByEmailNotFound() {
	_, err := s.storage.GetUserByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUpdateUserMovesEmailIndex() {
	id, _ := s.storage.CreateUser(s.ctx, s.newUser("taro@example.com"))

	user, _ := s.storage.GetUser(s.ctx, id)
	user.Email = "renamed@example.com"
	s.Require().NoError(s.storage.UpdateUser(s.ctx, user))

	found, err := s.storage.GetUserByEmail(s.ctx, "renamed@example.com")
	s.Require().NoError(err)
	s.Equal(id, found.ID)

	_, err = s.storage.GetUserByEmail(s.ctx, "taro@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUpdateUserRejectsTakenEmail() {
	id, _ := s.storage.CreateUser(s.ctx, s.newUser("taro@example.com"))
	_, err := s.storage.CreateUser(s.ctx, s.newUser("hanako@example.com"))
	s.Require().NoError(err)

	user, _ := s.storage.GetUser(s.ctx, id)
	user.Email = "hanako@example.com"
	s.ErrorIs(s.storage.UpdateUser(s.ctx, user), model.ErrEmailTaken)
}

func (s *StorageSuite) TestUpdateUserNotFound() {
	user := s.newUser("taro@example.com")
	user.ID = 42
	s.ErrorIs(s.storage.UpdateUser(s.ctx, user), model.ErrUserNotFound)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		Token:     "sess_abc",
		UserID:    1,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	stored, err := s.storage.GetSession(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal(model.UserID(1), stored.UserID)
}

func (s *StorageSuite) TestSaveSessionHonorsMockedTimestamps() {
	// Timestamps far in the wall-clock past still yield a write with
	// the session's full lifetime as TTL
	created := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	session := &model.Session{
		Token:     "sess_abc",
		UserID:    1,
		CreatedAt: created,
		ExpiresAt: created.Add(time.Hour),
	}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	stored, err := s.storage.GetSession(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal(model.UserID(1), stored.UserID)
	s.Equal(time.Hour, s.mini.TTL(sessionKey("sess_abc")))
}

func (s *StorageSuite) TestSaveSessionRejectsNonPositiveLifetime() {
	created := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	session := &model.Session{
		Token:     "sess_abc",
		UserID:    1,
		CreatedAt: created,
		ExpiresAt: created,
	}
	s.Error(s.storage.SaveSession(s.ctx, session))

	_, err := s.storage.GetSession(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionExpiresAtTTL() {
	session := &model.Session{
		Token:     "sess_abc",
		UserID:    1,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	session := &model.Session{
		Token:     "sess_abc",
		UserID:    1,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	_ = s.storage.SaveSession(s.ctx, session)

	s.Require().NoError(s.storage.DeleteSession(s.ctx, "sess_abc"))

	_, err := s.storage.GetSession(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrSessionNotFound)
}
