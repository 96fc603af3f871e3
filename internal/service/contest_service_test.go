package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
)

func seedContest(repo *mockContestRepo) {
	repo.contests[1] = &model.Contest{ID: 1, Title: "Weekly Aptitude Challenge #1", Date: "2026-03-05"}
	repo.questions = []model.Question{
		{ID: 1, ContestID: 1, Question: "q1", Options: model.StringList{"a", "b", "c", "d"}, CorrectOption: 0},
		{ID: 2, ContestID: 1, Question: "q2", Options: model.StringList{"a", "b", "c", "d"}, CorrectOption: 1},
		{ID: 3, ContestID: 1, Question: "q3", Options: model.StringList{"a", "b", "c", "d"}, CorrectOption: 2},
		{ID: 4, ContestID: 1, Question: "q4", Options: model.StringList{"a", "b", "c", "d"}, CorrectOption: 3},
	}
}

func TestScoreAnswers(t *testing.T) {
	questions := []model.Question{
		{ID: 1, CorrectOption: 0},
		{ID: 2, CorrectOption: 1},
		{ID: 3, CorrectOption: 2},
		{ID: 4, CorrectOption: 3},
	}

	// Two right, one out of range, one missing.
	answers := map[int64]int{1: 0, 2: 1, 3: 9}
	if got := ScoreAnswers(questions, answers); got != 2 {
		t.Fatalf("score = %d, want 2", got)
	}

	if got := ScoreAnswers(questions, nil); got != 0 {
		t.Fatalf("empty submission score = %d, want 0", got)
	}
}

func TestPercentageAndBoost(t *testing.T) {
	cases := []struct {
		score, total, wantPct, wantBoost int
	}{
		{3, 4, 75, 8},
		{4, 4, 100, 10},
		{0, 4, 0, 0},
		{1, 3, 33, 3},
		{2, 3, 67, 7},
	}
	for _, c := range cases {
		pct := Percentage(c.score, c.total)
		if pct != c.wantPct {
			t.Errorf("Percentage(%d,%d) = %d, want %d", c.score, c.total, pct, c.wantPct)
		}
		if boost := BoostFor(pct); boost != c.wantBoost {
			t.Errorf("BoostFor(%d) = %d, want %d", pct, boost, c.wantBoost)
		}
	}
}

func TestRegisterTwiceIsSoftFailure(t *testing.T) {
	repo := newTestRepo()
	seedContest(repo.Contest.(*mockContestRepo))
	svc := NewContestService(repo, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Register(ctx, 7, 1)
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	if !first.Registered || first.AlreadyRegistered {
		t.Fatalf("unexpected first register result: %+v", first)
	}

	second, err := svc.Register(ctx, 7, 1)
	if err != nil {
		t.Fatalf("second register must not error: %v", err)
	}
	if !second.AlreadyRegistered {
		t.Fatal("second register must report already_registered")
	}
}

func TestRegisterUnknownContest(t *testing.T) {
	svc := NewContestService(newTestRepo(), zap.NewNop())

	_, err := svc.Register(context.Background(), 7, 99)
	if !errors.Is(err, ErrContestNotFound) {
		t.Fatalf("expected ErrContestNotFound, got %v", err)
	}
}

func TestListContestsRegisteredFlag(t *testing.T) {
	repo := newTestRepo()
	contests := repo.Contest.(*mockContestRepo)
	seedContest(contests)
	contests.contests[2] = &model.Contest{ID: 2, Title: "Bi-Weekly Coding Sprint", Date: "2026-03-12"}

	svc := NewContestService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Register(ctx, 7, 1); err != nil {
		t.Fatalf("register: %v", err)
	}

	list, err := svc.ListContests(ctx, 7)
	if err != nil {
		t.Fatalf("list contests: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 contests, got %d", len(list))
	}
	if !list[0].Registered || list[1].Registered {
		t.Fatalf("registered flags wrong: %+v", list)
	}
}

func TestListQuestionsHidesCorrectOption(t *testing.T) {
	repo := newTestRepo()
	seedContest(repo.Contest.(*mockContestRepo))
	svc := NewContestService(repo, zap.NewNop())

	questions, err := svc.ListQuestions(context.Background(), 1)
	if err != nil {
		t.Fatalf("list questions: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	if len(questions[0].Options) != 4 {
		t.Fatalf("options lost in mapping: %+v", questions[0])
	}
}

func TestSubmitAnswersScoresAndPersists(t *testing.T) {
	repo := newTestRepo()
	contests := repo.Contest.(*mockContestRepo)
	seedContest(contests)
	svc := NewContestService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Register(ctx, 7, 1); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.SubmitAnswers(ctx, 7, 1, &dto.SubmitAnswersRequest{
		Answers: map[int64]int{1: 0, 2: 1, 3: 9, 4: 3},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 3 || result.Total != 4 {
		t.Fatalf("score = %d/%d, want 3/4", result.Score, result.Total)
	}
	if result.Percentage != 75 {
		t.Fatalf("percentage = %d, want 75", result.Percentage)
	}
	if result.Boost != 8 {
		t.Fatalf("boost = %d, want 8", result.Boost)
	}

	reg := contests.registrations[regKey(7, 1)]
	if reg.Score == nil || *reg.Score != 3 || reg.CompletedAt == nil {
		t.Fatalf("result not persisted on registration: %+v", reg)
	}
}

func TestSubmitAnswersRepeatReturnsRecordedResult(t *testing.T) {
	repo := newTestRepo()
	seedContest(repo.Contest.(*mockContestRepo))
	svc := NewContestService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Register(ctx, 7, 1); err != nil {
		t.Fatalf("register: %v", err)
	}

	first, err := svc.SubmitAnswers(ctx, 7, 1, &dto.SubmitAnswersRequest{
		Answers: map[int64]int{1: 0, 2: 1},
	})
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}

	// A second submission with perfect answers must not improve the score.
	second, err := svc.SubmitAnswers(ctx, 7, 1, &dto.SubmitAnswersRequest{
		Answers: map[int64]int{1: 0, 2: 1, 3: 2, 4: 3},
	})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.Score != first.Score || second.Percentage != first.Percentage {
		t.Fatalf("resubmission rescored: first %d%%, second %d%%", first.Percentage, second.Percentage)
	}
}

func TestSubmitAnswersRequiresRegistration(t *testing.T) {
	repo := newTestRepo()
	seedContest(repo.Contest.(*mockContestRepo))
	svc := NewContestService(repo, zap.NewNop())

	_, err := svc.SubmitAnswers(context.Background(), 7, 1, &dto.SubmitAnswersRequest{
		Answers: map[int64]int{1: 0},
	})
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}
