package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
)

// SessionRepository is the mentorship bookings data-access interface.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	ListByUser(ctx context.Context, userID int64) ([]model.Session, error)
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo creates the GORM-backed SessionRepository.
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) ListByUser(ctx context.Context, userID int64) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date, time").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
