package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
)

// ContestResult is one scored registration joined with the participant.
type ContestResult struct {
	UserID      int64      `json:"user_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Score       *int       `json:"score"`
	Percentage  *int       `json:"percentage"`
	CompletedAt *time.Time `json:"completed_at"`
}

// ContestRepository is the contests data-access interface.
type ContestRepository interface {
	List(ctx context.Context) ([]model.Contest, error)
	GetByID(ctx context.Context, id int64) (*model.Contest, error)
	CreateRegistration(ctx context.Context, reg *model.ContestRegistration) error
	GetRegistration(ctx context.Context, userID, contestID int64) (*model.ContestRegistration, error)
	ListRegisteredContestIDs(ctx context.Context, userID int64) ([]int64, error)
	SaveResult(ctx context.Context, reg *model.ContestRegistration) error
	ListQuestions(ctx context.Context, contestID int64) ([]model.Question, error)
	ListResults(ctx context.Context, contestID int64) ([]ContestResult, error)
}

type contestRepo struct {
	db *gorm.DB
}

// NewContestRepo creates the GORM-backed ContestRepository.
func NewContestRepo(db *gorm.DB) ContestRepository {
	return &contestRepo{db: db}
}

func (r *contestRepo) List(ctx context.Context) ([]model.Contest, error) {
	var contests []model.Contest
	if err := r.db.WithContext(ctx).Order("id").Find(&contests).Error; err != nil {
		return nil, err
	}
	return contests, nil
}

func (r *contestRepo) GetByID(ctx context.Context, id int64) (*model.Contest, error) {
	var contest model.Contest
	if err := r.db.WithContext(ctx).First(&contest, id).Error; err != nil {
		return nil, err
	}
	return &contest, nil
}

// CreateRegistration inserts the (user, contest) pair; duplicates fail with
// gorm.ErrDuplicatedKey and are treated as the "already registered" case.
func (r *contestRepo) CreateRegistration(ctx context.Context, reg *model.ContestRegistration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *contestRepo) GetRegistration(ctx context.Context, userID, contestID int64) (*model.ContestRegistration, error) {
	var reg model.ContestRegistration
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND contest_id = ?", userID, contestID).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *contestRepo) ListRegisteredContestIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.ContestRegistration{}).
		Where("user_id = ?", userID).
		Pluck("contest_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// SaveResult writes the score fields onto an existing registration row.
func (r *contestRepo) SaveResult(ctx context.Context, reg *model.ContestRegistration) error {
	return r.db.WithContext(ctx).
		Model(&model.ContestRegistration{}).
		Where("user_id = ? AND contest_id = ?", reg.UserID, reg.ContestID).
		Updates(map[string]interface{}{
			"score":        reg.Score,
			"percentage":   reg.Percentage,
			"completed_at": reg.CompletedAt,
		}).Error
}

func (r *contestRepo) ListQuestions(ctx context.Context, contestID int64) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Where("contest_id = ?", contestID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *contestRepo) ListResults(ctx context.Context, contestID int64) ([]ContestResult, error) {
	var results []ContestResult
	err := r.db.WithContext(ctx).
		Model(&model.ContestRegistration{}).
		Select("contest_registrations.user_id, users.name, users.email, contest_registrations.score, contest_registrations.percentage, contest_registrations.completed_at").
		Joins("JOIN users ON users.id = contest_registrations.user_id").
		Where("contest_registrations.contest_id = ?", contestID).
		Order("contest_registrations.score DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
