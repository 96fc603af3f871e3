package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/repository"
)

var (
	ErrContestNotFound = errors.New("contest not found")
	ErrNotRegistered   = errors.New("not registered for this contest")
	ErrNoQuestions     = errors.New("contest has no questions")
)

// ContestService handles contests, registration and answer scoring.
// Scoring happens here, not in the client: questions leave the server
// without their correct option index.
type ContestService interface {
	ListContests(ctx context.Context, userID int64) ([]dto.ContestResponse, error)
	Register(ctx context.Context, userID, contestID int64) (*dto.RegisterResponse, error)
	ListQuestions(ctx context.Context, contestID int64) ([]dto.QuestionResponse, error)
	SubmitAnswers(ctx context.Context, userID, contestID int64, req *dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error)
}

type contestService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewContestService creates the ContestService.
func NewContestService(repo *repository.Repository, logger *zap.Logger) ContestService {
	return &contestService{repo: repo, logger: logger}
}

// ListContests returns all contests with the caller's registration flag.
func (s *contestService) ListContests(ctx context.Context, userID int64) ([]dto.ContestResponse, error) {
	contests, err := s.repo.Contest.List(ctx)
	if err != nil {
		return nil, err
	}

	registered := make(map[int64]bool)
	ids, err := s.repo.Contest.ListRegisteredContestIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		registered[id] = true
	}

	out := make([]dto.ContestResponse, 0, len(contests))
	for _, c := range contests {
		out = append(out, dto.ContestResponse{
			ID:          c.ID,
			Title:       c.Title,
			Date:        c.Date,
			Description: c.Description,
			Registered:  registered[c.ID],
		})
	}
	return out, nil
}

// Register inserts the pair; a duplicate key becomes the "already
// registered" soft outcome.
func (s *contestService) Register(ctx context.Context, userID, contestID int64) (*dto.RegisterResponse, error) {
	if _, err := s.repo.Contest.GetByID(ctx, contestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContestNotFound
		}
		s.logger.Error("lookup contest failed", zap.Error(err))
		return nil, err
	}

	err := s.repo.Contest.CreateRegistration(ctx, &model.ContestRegistration{
		UserID:    userID,
		ContestID: contestID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &dto.RegisterResponse{ContestID: contestID, Registered: true, AlreadyRegistered: true}, nil
		}
		s.logger.Error("create registration failed", zap.Error(err))
		return nil, err
	}

	return &dto.RegisterResponse{ContestID: contestID, Registered: true}, nil
}

// ListQuestions returns the decoded question list in insertion order,
// stripped of the correct option.
func (s *contestService) ListQuestions(ctx context.Context, contestID int64) ([]dto.QuestionResponse, error) {
	if _, err := s.repo.Contest.GetByID(ctx, contestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, err
	}

	questions, err := s.repo.Contest.ListQuestions(ctx, contestID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuestionResponse{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return out, nil
}

// SubmitAnswers scores the submission and persists the result on the
// registration row. A repeat submission returns the recorded result
// without re-scoring.
func (s *contestService) SubmitAnswers(ctx context.Context, userID, contestID int64, req *dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error) {
	reg, err := s.repo.Contest.GetRegistration(ctx, userID, contestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotRegistered
		}
		s.logger.Error("lookup registration failed", zap.Error(err))
		return nil, err
	}

	questions, err := s.repo.Contest.ListQuestions(ctx, contestID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	if reg.Score != nil && reg.Percentage != nil {
		return &dto.SubmitAnswersResponse{
			ContestID:  contestID,
			Score:      *reg.Score,
			Total:      len(questions),
			Percentage: *reg.Percentage,
			Boost:      BoostFor(*reg.Percentage),
		}, nil
	}

	score := ScoreAnswers(questions, req.Answers)
	percentage := Percentage(score, len(questions))

	now := time.Now()
	reg.Score = &score
	reg.Percentage = &percentage
	reg.CompletedAt = &now
	if err := s.repo.Contest.SaveResult(ctx, reg); err != nil {
		s.logger.Error("save contest result failed", zap.Error(err))
		return nil, err
	}

	return &dto.SubmitAnswersResponse{
		ContestID:  contestID,
		Score:      score,
		Total:      len(questions),
		Percentage: percentage,
		Boost:      BoostFor(percentage),
	}, nil
}

// ScoreAnswers counts answers matching the correct option index.
// Missing and out-of-range answers count as wrong.
func ScoreAnswers(questions []model.Question, answers map[int64]int) int {
	score := 0
	for _, q := range questions {
		if chosen, ok := answers[q.ID]; ok && chosen == q.CorrectOption {
			score++
		}
	}
	return score
}

// Percentage converts a score to a rounded 0-100 percentage.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// BoostFor is the suggested progress increment for a result percentage.
func BoostFor(percentage int) int {
	return int(math.Round(float64(percentage) / 10))
}
