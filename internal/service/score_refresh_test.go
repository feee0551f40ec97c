package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mfcompass/internal/models"
)

type stubScoreWriter struct {
	updates map[uint64]float64
	err     error
}

func (s *stubScoreWriter) UpdateFundScore(ctx context.Context, id uint64, score float64, at time.Time) error {
	if s.err != nil {
		return s.err
	}
	if s.updates == nil {
		s.updates = map[uint64]float64{}
	}
	s.updates[id] = score
	return nil
}

func f64(v float64) *float64 { return &v }

func TestScoreRefresh_WritesChangedScores(t *testing.T) {
	funds := []models.Fund{
		// Stale stored score, should be rewritten with the computed 35.
		{ID: 1, RollingReturnScore: 5, ConsistencyScore: 5, Volatility: 16, ExpenseRatio: 1.5, TotalScore: f64(12)},
		// Already current, should be skipped.
		{ID: 2, RollingReturnScore: 10, ConsistencyScore: 10, Volatility: 8, ExpenseRatio: 0.8, TotalScore: f64(100)},
		// Never scored, should be written.
		{ID: 3, RollingReturnScore: 6, ConsistencyScore: 7, Volatility: 12, ExpenseRatio: 1.2},
	}
	writer := &stubScoreWriter{}
	svc := &ScoreRefreshService{
		Repo:   &stubFundRepo{funds: funds},
		Writer: writer,
	}

	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce() error: %v", err)
	}
	if len(writer.updates) != 2 {
		t.Fatalf("updates = %v, want 2 entries", writer.updates)
	}
	if writer.updates[1] != 35 {
		t.Fatalf("fund 1 score = %v, want 35", writer.updates[1])
	}
	if writer.updates[3] != 55 {
		t.Fatalf("fund 3 score = %v, want 55", writer.updates[3])
	}
}

func TestScoreRefresh_RepoError(t *testing.T) {
	wantErr := errors.New("db down")
	svc := &ScoreRefreshService{
		Repo:   &stubFundRepo{err: wantErr},
		Writer: &stubScoreWriter{},
	}
	if err := svc.RunOnce(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestScoreRefresh_NilWriterNoop(t *testing.T) {
	svc := &ScoreRefreshService{Repo: &stubFundRepo{}}
	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce() error: %v", err)
	}
}

func TestScoreRefresh_WriteErrorContinues(t *testing.T) {
	funds := []models.Fund{
		{ID: 1, RollingReturnScore: 5, ConsistencyScore: 5},
		{ID: 2, RollingReturnScore: 6, ConsistencyScore: 6},
	}
	svc := &ScoreRefreshService{
		Repo:   &stubFundRepo{funds: funds},
		Writer: &stubScoreWriter{err: errors.New("write failed")},
	}
	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce() should swallow per-fund write errors, got: %v", err)
	}
}
