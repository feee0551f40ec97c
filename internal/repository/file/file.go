// Package filerepository serves fund, market and portfolio data from flat
// JSON files. Files are re-read on every call, so edits to the data directory
// show up without a restart.
package filerepository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"mfcompass/internal/models"
	"mfcompass/internal/repository"
)

type Store struct {
	FundsPath     string
	MarketPath    string
	PortfolioPath string
}

func New(fundsPath, marketPath, portfolioPath string) *Store {
	return &Store{
		FundsPath:     fundsPath,
		MarketPath:    marketPath,
		PortfolioPath: portfolioPath,
	}
}

func (s *Store) ListFunds(ctx context.Context, params repository.ListFundsParams) ([]models.Fund, error) {
	var funds []models.Fund
	if err := readJSON(s.FundsPath, &funds); err != nil {
		return nil, err
	}
	category := strings.TrimSpace(params.Category)
	filtered := make([]models.Fund, 0, len(funds))
	for _, f := range funds {
		if params.ScoredOnly && f.TotalScore == nil {
			continue
		}
		if category != "" && !strings.EqualFold(category, "all") {
			if !strings.Contains(strings.ToLower(f.FundType), "equity") {
				continue
			}
			if !strings.EqualFold(f.FundCategory, category) {
				continue
			}
		}
		filtered = append(filtered, f)
	}
	return filtered, nil
}

func (s *Store) GetFundBySchemeCode(ctx context.Context, code string) (*models.Fund, error) {
	var funds []models.Fund
	if err := readJSON(s.FundsPath, &funds); err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	for i := range funds {
		if funds[i].SchemeCode == code {
			return &funds[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) ReadSnapshot(ctx context.Context) (*models.MarketSnapshot, error) {
	var snapshot models.MarketSnapshot
	if err := readJSON(s.MarketPath, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (s *Store) ReadPortfolio(ctx context.Context) (*models.BrokerPortfolio, error) {
	var portfolio models.BrokerPortfolio
	if err := readJSON(s.PortfolioPath, &portfolio); err != nil {
		return nil, err
	}
	return &portfolio, nil
}

func readJSON(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
