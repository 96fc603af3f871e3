package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/repository"
)

// In-memory repositories backing the service tests. They reproduce the
// store-level behavior the services rely on: unique keys fail with
// gorm.ErrDuplicatedKey, missing rows with gorm.ErrRecordNotFound, and
// stock decrements are conditional.

// ── Users ──

type mockUserRepo struct {
	users   map[int64]*model.User
	byEmail map[string]*model.User
	nextID  int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:   make(map[int64]*model.User),
		byEmail: make(map[string]*model.User),
		nextID:  1,
	}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if _, exists := m.byEmail[user.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdateProgress(_ context.Context, id int64, column string, value int) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	switch column {
	case "coding_progress":
		u.CodingProgress = value
	case "aptitude_progress":
		u.AptitudeProgress = value
	case "comm_progress":
		u.CommProgress = value
	default:
		return fmt.Errorf("unknown column %q", column)
	}
	return nil
}

func (m *mockUserRepo) UpdateSubscription(_ context.Context, id int64, tier string) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Subscription = tier
	return nil
}

// ── Courses ──

type mockCourseRepo struct {
	courses     map[int64]*model.Course
	enrollments map[string]*model.Enrollment
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{
		courses:     make(map[int64]*model.Course),
		enrollments: make(map[string]*model.Enrollment),
	}
}

func enrollmentKey(userID, courseID int64) string {
	return fmt.Sprintf("%d:%d", userID, courseID)
}

func (m *mockCourseRepo) List(_ context.Context, department string) ([]model.Course, error) {
	var out []model.Course
	for _, c := range m.courses {
		if department == "" || c.Department == department {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int64) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) CreateEnrollment(_ context.Context, enrollment *model.Enrollment) error {
	key := enrollmentKey(enrollment.UserID, enrollment.CourseID)
	if _, exists := m.enrollments[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	m.enrollments[key] = enrollment
	return nil
}

func (m *mockCourseRepo) ListEnrollments(_ context.Context, userID int64) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range m.enrollments {
		if e.UserID == userID {
			entry := *e
			if c, ok := m.courses[e.CourseID]; ok {
				entry.Course = c
			}
			out = append(out, entry)
		}
	}
	return out, nil
}

// enrollmentCount is a test-only row count; it is not part of the
// production repository interface.
func (m *mockCourseRepo) enrollmentCount(userID, courseID int64) int {
	if _, ok := m.enrollments[enrollmentKey(userID, courseID)]; ok {
		return 1
	}
	return 0
}

// ── Books ──

type mockBookRepo struct {
	books  map[int64]*model.Book
	nextID int64
}

func newMockBookRepo() *mockBookRepo {
	return &mockBookRepo{books: make(map[int64]*model.Book), nextID: 1}
}

func (m *mockBookRepo) List(_ context.Context) ([]model.Book, error) {
	var out []model.Book
	for _, b := range m.books {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockBookRepo) GetByID(_ context.Context, id int64) (*model.Book, error) {
	if b, ok := m.books[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookRepo) Create(_ context.Context, book *model.Book) error {
	book.ID = m.nextID
	m.nextID++
	m.books[book.ID] = book
	return nil
}

func (m *mockBookRepo) DecrementStock(_ context.Context, id int64) (bool, error) {
	b, ok := m.books[id]
	if !ok || b.Stock <= 0 {
		return false, nil
	}
	b.Stock--
	return true, nil
}

func (m *mockBookRepo) Delete(_ context.Context, id int64) error {
	delete(m.books, id)
	return nil
}

// ── Sessions ──

type mockSessionRepo struct {
	sessions []*model.Session
	nextID   int64
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{nextID: 1}
}

func (m *mockSessionRepo) Create(_ context.Context, session *model.Session) error {
	session.ID = m.nextID
	m.nextID++
	m.sessions = append(m.sessions, session)
	return nil
}

func (m *mockSessionRepo) ListByUser(_ context.Context, userID int64) ([]model.Session, error) {
	var out []model.Session
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

// ── Feedback ──

type mockFeedbackRepo struct {
	entries []*model.Feedback
	nextID  int64
}

func newMockFeedbackRepo() *mockFeedbackRepo {
	return &mockFeedbackRepo{nextID: 1}
}

func (m *mockFeedbackRepo) Create(_ context.Context, feedback *model.Feedback) error {
	feedback.ID = m.nextID
	m.nextID++
	m.entries = append(m.entries, feedback)
	return nil
}

func (m *mockFeedbackRepo) ListByUser(_ context.Context, userID int64) ([]model.Feedback, error) {
	var out []model.Feedback
	for _, f := range m.entries {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

// ── Contests ──

type mockContestRepo struct {
	contests      map[int64]*model.Contest
	registrations map[string]*model.ContestRegistration
	questions     []model.Question
}

func newMockContestRepo() *mockContestRepo {
	return &mockContestRepo{
		contests:      make(map[int64]*model.Contest),
		registrations: make(map[string]*model.ContestRegistration),
	}
}

func regKey(userID, contestID int64) string {
	return fmt.Sprintf("%d:%d", userID, contestID)
}

func (m *mockContestRepo) List(_ context.Context) ([]model.Contest, error) {
	var out []model.Contest
	for _, c := range m.contests {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockContestRepo) GetByID(_ context.Context, id int64) (*model.Contest, error) {
	if c, ok := m.contests[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContestRepo) CreateRegistration(_ context.Context, reg *model.ContestRegistration) error {
	key := regKey(reg.UserID, reg.ContestID)
	if _, exists := m.registrations[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	m.registrations[key] = reg
	return nil
}

func (m *mockContestRepo) GetRegistration(_ context.Context, userID, contestID int64) (*model.ContestRegistration, error) {
	if r, ok := m.registrations[regKey(userID, contestID)]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContestRepo) ListRegisteredContestIDs(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for _, r := range m.registrations {
		if r.UserID == userID {
			ids = append(ids, r.ContestID)
		}
	}
	return ids, nil
}

func (m *mockContestRepo) SaveResult(_ context.Context, reg *model.ContestRegistration) error {
	r, ok := m.registrations[regKey(reg.UserID, reg.ContestID)]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Score = reg.Score
	r.Percentage = reg.Percentage
	r.CompletedAt = reg.CompletedAt
	return nil
}

func (m *mockContestRepo) ListQuestions(_ context.Context, contestID int64) ([]model.Question, error) {
	var out []model.Question
	for _, q := range m.questions {
		if q.ContestID == contestID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *mockContestRepo) ListResults(_ context.Context, contestID int64) ([]repository.ContestResult, error) {
	var out []repository.ContestResult
	for _, r := range m.registrations {
		if r.ContestID == contestID {
			out = append(out, repository.ContestResult{
				UserID:      r.UserID,
				Score:       r.Score,
				Percentage:  r.Percentage,
				CompletedAt: r.CompletedAt,
			})
		}
	}
	return out, nil
}

// ── Aggregate ──

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		User:     newMockUserRepo(),
		Course:   newMockCourseRepo(),
		Book:     newMockBookRepo(),
		Session:  newMockSessionRepo(),
		Feedback: newMockFeedbackRepo(),
		Contest:  newMockContestRepo(),
	}
}
