package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
)

func seedCourses(repo *mockCourseRepo) {
	repo.courses[1] = &model.Course{ID: 1, Title: "Data Structures & Algorithms", Department: "CSE"}
	repo.courses[2] = &model.Course{ID: 2, Title: "Thermodynamics", Department: "Mechanical"}
	repo.courses[3] = &model.Course{ID: 3, Title: "Operating Systems", Department: "CSE"}
}

func TestListCoursesDepartmentFilter(t *testing.T) {
	repo := newTestRepo()
	seedCourses(repo.Course.(*mockCourseRepo))
	svc := NewCourseService(repo, zap.NewNop())
	ctx := context.Background()

	all, err := svc.ListCourses(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(all))
	}

	cse, err := svc.ListCourses(ctx, "CSE")
	if err != nil {
		t.Fatalf("list CSE: %v", err)
	}
	if len(cse) != 2 {
		t.Fatalf("expected 2 CSE courses, got %d", len(cse))
	}
	for _, c := range cse {
		if c.Department != "CSE" {
			t.Fatalf("filter leaked course from %q", c.Department)
		}
	}
}

func TestEnrollTwiceIsSoftFailure(t *testing.T) {
	repo := newTestRepo()
	seedCourses(repo.Course.(*mockCourseRepo))
	svc := NewCourseService(repo, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Enroll(ctx, 7, 1)
	if err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	if !first.Enrolled || first.AlreadyEnrolled {
		t.Fatalf("unexpected first enroll result: %+v", first)
	}

	second, err := svc.Enroll(ctx, 7, 1)
	if err != nil {
		t.Fatalf("second enroll must not error: %v", err)
	}
	if !second.AlreadyEnrolled {
		t.Fatal("second enroll must report already_enrolled")
	}

	count := repo.Course.(*mockCourseRepo).enrollmentCount(7, 1)
	if count != 1 {
		t.Fatalf("expected exactly one enrollment row, got %d", count)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	repo := newTestRepo()
	svc := NewCourseService(repo, zap.NewNop())

	_, err := svc.Enroll(context.Background(), 7, 99)
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestListMyEnrollmentsIncludesCourse(t *testing.T) {
	repo := newTestRepo()
	seedCourses(repo.Course.(*mockCourseRepo))
	svc := NewCourseService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, 7, 1); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := svc.Enroll(ctx, 7, 3); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	enrollments, err := svc.ListMyEnrollments(ctx, 7)
	if err != nil {
		t.Fatalf("list enrollments: %v", err)
	}
	if len(enrollments) != 2 {
		t.Fatalf("expected 2 enrollments, got %d", len(enrollments))
	}
	for _, e := range enrollments {
		if e.Course == nil {
			t.Fatal("enrollment missing course details")
		}
	}
}
