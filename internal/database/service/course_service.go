package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/coursedesk/coursedesk/internal/database/models"
	"github.com/coursedesk/coursedesk/internal/database/repository"
)

// CourseService defines the interface for course business logic
type CourseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id uint) (*models.Course, error)
	Create(ctx context.Context, owner *models.User, input CourseInput) (*models.Course, error)
	Update(ctx context.Context, actor *models.User, id uint, input CourseInput) error
	Delete(ctx context.Context, actor *models.User, id uint) error
}

// CourseInput carries the writable fields of a course. The owner is never
// part of the input; it comes from the authenticated identity.
type CourseInput struct {
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
}

type courseService struct {
	courseRepo repository.CourseRepository
	logger     *slog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repository.CourseRepository, logger *slog.Logger) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

func (s *courseService) List(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.FindAll(ctx)
}

func (s *courseService) Get(ctx context.Context, id uint) (*models.Course, error) {
	return s.courseRepo.FindByID(ctx, id)
}

func (s *courseService) Create(ctx context.Context, owner *models.User, input CourseInput) (*models.Course, error) {
	course := &models.Course{
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
		UserID:          owner.ID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		s.logger.Error("❌ [CourseService] Failed to create course", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [CourseService] Course created", "course_id", course.ID, "user_id", owner.ID)
	return course, nil
}

func (s *courseService) Update(ctx context.Context, actor *models.User, id uint, input CourseInput) error {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if course.UserID != actor.ID {
		s.logger.Warn("⚠️ [CourseService] Update denied, not the owner",
			"course_id", id, "owner_id", course.UserID, "user_id", actor.ID)
		return ErrNotCourseOwner
	}

	course.Title = input.Title
	course.Description = input.Description
	course.EstimatedTime = input.EstimatedTime
	course.MaterialsNeeded = input.MaterialsNeeded

	if err := s.courseRepo.Update(ctx, course); err != nil {
		s.logger.Error("❌ [CourseService] Failed to update course", "course_id", id, "error", err)
		return err
	}

	s.logger.Info("✅ [CourseService] Course updated", "course_id", id)
	return nil
}

func (s *courseService) Delete(ctx context.Context, actor *models.User, id uint) error {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if course.UserID != actor.ID {
		s.logger.Warn("⚠️ [CourseService] Delete denied, not the owner",
			"course_id", id, "owner_id", course.UserID, "user_id", actor.ID)
		return ErrNotCourseOwner
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		s.logger.Error("❌ [CourseService] Failed to delete course", "course_id", id, "error", err)
		return err
	}

	s.logger.Info("✅ [CourseService] Course deleted", "course_id", id)
	return nil
}

var (
	ErrNotCourseOwner = errors.New("course does not belong to this user")
)
