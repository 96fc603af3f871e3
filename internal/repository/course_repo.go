package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
)

// CourseRepository is the courses and enrollments data-access interface.
type CourseRepository interface {
	List(ctx context.Context, department string) ([]model.Course, error)
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) error
	ListEnrollments(ctx context.Context, userID int64) ([]model.Enrollment, error)
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo creates the GORM-backed CourseRepository.
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

// List returns the catalog, optionally filtered by exact department match.
func (r *courseRepo) List(ctx context.Context, department string) ([]model.Course, error) {
	var courses []model.Course
	q := r.db.WithContext(ctx).Order("id")
	if department != "" {
		q = q.Where("department = ?", department)
	}
	if err := q.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateEnrollment inserts the (user, course) pair. A second insert for the
// same pair fails with gorm.ErrDuplicatedKey; callers treat that as the
// "already enrolled" soft case.
func (r *courseRepo) CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *courseRepo) ListEnrollments(ctx context.Context, userID int64) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
