package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/database/models"
	"github.com/coursedesk/coursedesk/internal/database/repository"
	"github.com/coursedesk/coursedesk/internal/database/service"
	"github.com/coursedesk/coursedesk/internal/middleware"
	"github.com/coursedesk/coursedesk/internal/validation"
)

// CourseHandler handles HTTP requests for courses
type CourseHandler struct {
	service service.CourseService
	logger  *slog.Logger
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(service service.CourseService, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		logger:  logger,
	}
}

// SaveCourseRequest carries the writable course fields for create and update.
// A client-supplied userId is ignored; ownership comes from the
// authenticated identity.
type SaveCourseRequest struct {
	Title           string  `json:"title" validate:"notblank"`
	Description     string  `json:"description" validate:"notblank"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// CourseResponse is a course with its owner's profile embedded and the
// bookkeeping timestamps left out.
type CourseResponse struct {
	ID              uint           `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	EstimatedTime   *string        `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string        `json:"materialsNeeded,omitempty"`
	UserID          uint           `json:"userId"`
	User            models.Profile `json:"user"`
}

func toCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		UserID:          course.UserID,
		User:            course.User.Profile(),
	}
}

// ListCourses handles GET /api/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("❌ [CourseHandler] Failed to list courses", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "There was a problem with your request"})
		return
	}

	responses := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, toCourseResponse(&courses[i]))
	}

	c.JSON(http.StatusOK, responses)
}

// GetCourse handles GET /api/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	}

	course, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCourseResponse(course))
}

// CreateCourse handles POST /api/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
		return
	}

	req, ok := h.bindCourse(c)
	if !ok {
		return
	}

	course, err := h.service.Create(c.Request.Context(), user, courseInput(req))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("courses/%d", course.ID))
	c.Status(http.StatusCreated)
}

// UpdateCourse handles PUT /api/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
		return
	}

	req, ok := h.bindCourse(c)
	if !ok {
		return
	}

	id, ok := courseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	}

	if err := h.service.Update(c.Request.Context(), user, id, courseInput(req)); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCourse handles DELETE /api/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
		return
	}

	id, ok := courseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), user, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindCourse decodes and validates the request body, responding 400 with
// the full message list on failure.
func (h *CourseHandler) bindCourse(c *gin.Context) (SaveCourseRequest, bool) {
	var req SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [CourseHandler] Invalid course body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return req, false
	}

	if messages := validation.Messages(&req); len(messages) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": messages})
		return req, false
	}

	return req, true
}

func courseInput(req SaveCourseRequest) service.CourseInput {
	return service.CourseInput{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
}

// courseID parses the :id path parameter. Anything that is not a positive
// integer behaves like a missing course.
func courseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors to HTTP responses
func (h *CourseHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
	case errors.Is(err, service.ErrNotCourseOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": "Course can not be updated by this user. Access denied"})
	default:
		h.logger.Error("❌ [CourseHandler] Internal server error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "There was a problem with your request"})
	}
}
