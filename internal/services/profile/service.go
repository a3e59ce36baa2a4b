package profile

import (
	"context"
	"log/slog"

	"github.com/mihara/courseflow/internal/model"
	"github.com/mihara/courseflow/internal/storage"
)

// Service handles profile reads and updates for authenticated users
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new profile service
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
	}
}

// UpdateInput carries the editable profile fields
type UpdateInput struct {
	Name     string
	Birthday string
	Email    string
	Course   string
}

// Get returns the user's current profile
func (s *Service) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// Update overwrites the profile fields in place.
// Updates are unconditional last-writer-wins; moving the email onto one
// held by another user returns model.ErrEmailTaken without persisting.
func (s *Service) Update(ctx context.Context, id model.UserID, in UpdateInput) (*model.User, error) {
	if in.Course != "" && !model.ValidCourse(in.Course) {
		return nil, model.ErrUnknownCourse
	}

	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Birthday = in.Birthday
	user.Email = in.Email
	user.Course = in.Course

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", slog.Int64("user_id", int64(id)))
	return user, nil
}

// SelectCourse sets the user's course to one of the catalog courses
func (s *Service) SelectCourse(ctx context.Context, id model.UserID, course string) (*model.User, error) {
	if !model.ValidCourse(course) {
		return nil, model.ErrUnknownCourse
	}

	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Course = course
	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("course selected",
		slog.Int64("user_id", int64(id)),
		slog.String("course", course),
	)
	return user, nil
}

// CancelCourse clears the user's course. The row is kept; only the
// course association is removed.
func (s *Service) CancelCourse(ctx context.Context, id model.UserID) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Course = ""
	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("course cancelled", slog.Int64("user_id", int64(id)))
	return user, nil
}
