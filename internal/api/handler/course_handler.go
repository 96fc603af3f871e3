package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/service"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/response"
)

// CourseHandler handles the course catalog and enrollments.
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler creates the CourseHandler.
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// List returns the catalog, optionally filtered by department.
// GET /api/v1/courses?department=CSE
func (h *CourseHandler) List(c *gin.Context) {
	var req dto.ListCoursesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query")
		return
	}

	courses, err := h.courseSvc.ListCourses(c.Request.Context(), req.Department)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, courses)
}

// Enroll enrolls the caller into a course. A repeat enrollment is a
// soft outcome, not an error.
// POST /api/v1/courses/enroll
func (h *CourseHandler) Enroll(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid enroll payload")
		return
	}

	result, err := h.courseSvc.Enroll(c.Request.Context(), userID, req.CourseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.NotFound(c, 12001, "course not found")
			return
		}
		response.InternalError(c)
		return
	}

	if result.AlreadyEnrolled {
		response.OKMessage(c, "already enrolled", result)
		return
	}
	response.OK(c, result)
}

// MyEnrollments lists the caller's enrollments with course details.
// GET /api/v1/courses/enrollments
func (h *CourseHandler) MyEnrollments(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	enrollments, err := h.courseSvc.ListMyEnrollments(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, enrollments)
}
