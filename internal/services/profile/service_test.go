package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mihara/courseflow/internal/model"
	"github.com/mihara/courseflow/internal/storage/memory"
	"github.com/mihara/courseflow/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) seedUser(email, course string) model.UserID {
	id, err := s.storage.CreateUser(s.ctx, &model.User{
		Name:         "山田太郎",
		Birthday:     "2000-01-01",
		Email:        email,
		PasswordHash: "pbkdf2:sha256:1$c2FsdA$aGFzaA",
		Course:       course,
		RegisterTime: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	return id
}

func (s *ServiceSuite) TestGetReturnsProfile() {
	id := s.seedUser("taro@example.com", model.CourseBandai)

	user, err := s.service.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("taro@example.com", user.Email)
	s.Equal(model.CourseBandai, user.Course)
}

func (s *ServiceSuite) TestGetUnknownUser() {
	_, err := s.service.Get(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestUpdateOverwritesFields() {
	id := s.seedUser("taro@example.com", model.CourseBandai)

	updated, err := s.service.Update(s.ctx, id, UpdateInput{
		Name:     "山田次郎",
		Birthday: "1999-12-31",
		Email:    "jiro@example.com",
		Course:   model.CourseAzuma,
	})
	s.Require().NoError(err)
	s.Equal("山田次郎", updated.Name)

	stored, err := s.storage.GetUser(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("山田次郎", stored.Name)
	s.Equal("1999-12-31", stored.Birthday)
	s.Equal("jiro@example.com", stored.Email)
	s.Equal(model.CourseAzuma, stored.Course)
}

func (s *ServiceSuite) TestUpdateKeepsRegisterTimeAndHash() {
	id := s.seedUser("taro@example.com", model.CourseBandai)
	before, _ := s.storage.GetUser(s.ctx, id)

	_, err := s.service.Update(s.ctx, id, UpdateInput{
		Name:   "山田次郎",
		Email:  "taro@example.com",
		Course: model.CourseBandai,
	})
	s.Require().NoError(err)

	after, err := s.storage.GetUser(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(before.RegisterTime, after.RegisterTime)
	s.Equal(before.PasswordHash, after.PasswordHash)
}

func (s *ServiceSuite) TestUpdateRejectsTakenEmail() {
	id := s.seedUser("taro@example.com", model.CourseBandai)
	s.seedUser("hanako@example.com", model.CourseAzuma)

	_, err := s.service.Update(s.ctx, id, UpdateInput{
		Name:  "山田太郎",
		Email: "hanako@example.com",
	})
	s.ErrorIs(err, model.ErrEmailTaken)

	stored, _ := s.storage.GetUser(s.ctx, id)
	s.Equal("taro@example.com", stored.Email)
}

func (s *ServiceSuite) TestUpdateRejectsUnknownCourse() {
	id := s.seedUser("taro@example.com", model.CourseBandai)

	_, err := s.service.Update(s.ctx, id, UpdateInput{
		Name:   "山田太郎",
		Email:  "taro@example.com",
		Course: "存在しないコース",
	})
	s.ErrorIs(err, model.ErrUnknownCourse)
}

func (s *ServiceSuite) TestSelectCourse() {
	id := s.seedUser("taro@example.com", model.CourseBandai)

	updated, err := s.service.SelectCourse(s.ctx, id, model.CourseIide)
	s.Require().NoError(err)
	s.Equal(model.CourseIide, updated.Course)

	stored, _ := s.storage.GetUser(s.ctx, id)
	s.Equal(model.CourseIide, stored.Course)
}

func (s *ServiceSuite) TestSelectCourseRejectsUnknown() {
	id := s.seedUser("taro@example.com", model.CourseBandai)

	_, err := s.service.SelectCourse(s.ctx, id, "")
	s.ErrorIs(err, model.ErrUnknownCourse)
}

func (s *ServiceSuite) TestCancelCourseClearsCourseKeepsRow() {
	id := s.seedUser("taro@example.com", model.CourseBandai)

	updated, err := s.service.CancelCourse(s.ctx, id)
	s.Require().NoError(err)
	s.Empty(updated.Course)

	stored, err := s.storage.GetUser(s.ctx, id)
	s.Require().NoError(err)
	s.Empty(stored.Course)
	s.Equal("taro@example.com", stored.Email)
}
