package service

import (
	"context"

	"mfcompass/internal/models"
	"mfcompass/internal/repository"
	"mfcompass/internal/scoring"
)

// RankingService composes the fund repository with the scoring engine to
// produce the ranked, annotated fund list served by the API.
type RankingService struct {
	Repo repository.FundRepository
}

func (s *RankingService) RankedFunds(ctx context.Context, category string) ([]models.Fund, error) {
	funds, err := s.Repo.ListFunds(ctx, repository.ListFundsParams{Category: category})
	if err != nil {
		return nil, err
	}
	return scoring.Rank(funds), nil
}

func (s *RankingService) FundBySchemeCode(ctx context.Context, code string) (*models.Fund, error) {
	fund, err := s.Repo.GetFundBySchemeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	annotated := *fund
	annotated.CalculatedScore = scoring.Score(annotated)
	annotated.Mood = scoring.Mood(annotated)
	return &annotated, nil
}
