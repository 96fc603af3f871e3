package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User     UserRepository
	Course   CourseRepository
	Book     BookRepository
	Session  SessionRepository
	Feedback FeedbackRepository
	Contest  ContestRepository
}

// NewRepository builds the aggregate with GORM-backed implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:     NewUserRepo(db),
		Course:   NewCourseRepo(db),
		Book:     NewBookRepo(db),
		Session:  NewSessionRepo(db),
		Feedback: NewFeedbackRepo(db),
		Contest:  NewContestRepo(db),
	}
}
