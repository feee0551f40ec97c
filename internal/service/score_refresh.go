package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"mfcompass/internal/repository"
	"mfcompass/internal/scoring"
)

// ScoreRefreshService recomputes fund scores and persists them as the
// authoritative total_score. It only runs against stores that can write
// scores back; flat-file sources are scored on the fly instead.
type ScoreRefreshService struct {
	Repo   repository.FundRepository
	Writer repository.FundScoreWriter
	Logger *zap.Logger
}

func (s *ScoreRefreshService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil || s.Writer == nil {
		return nil
	}
	funds, err := s.Repo.ListFunds(ctx, repository.ListFundsParams{})
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	updated := 0
	for _, f := range funds {
		score := scoring.Score(f)
		if f.TotalScore != nil && *f.TotalScore == score {
			continue
		}
		if err := s.Writer.UpdateFundScore(ctx, f.ID, score, now); err != nil {
			if s.Logger != nil {
				s.Logger.Warn("score update failed",
					zap.Uint64("fund_id", f.ID),
					zap.Error(err),
				)
			}
			continue
		}
		updated++
	}
	if s.Logger != nil && updated > 0 {
		s.Logger.Info("fund scores refreshed",
			zap.Int("updated", updated),
			zap.Int("total", len(funds)),
		)
	}
	return nil
}
