package repository

import (
	"context"
	"errors"
	"time"

	"mfcompass/internal/models"
)

var (
	// ErrNotFound is returned when a single requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmpty is returned when a non-empty collection is required but the
	// data source has no rows.
	ErrEmpty = errors.New("data source is empty")
)

// ListFundsParams narrows a fund listing. ScoredOnly keeps the original
// behavior of hiding funds that were never scored; Category filters equity
// schemes by category.
type ListFundsParams struct {
	Category   string
	ScoredOnly bool
}

// FundRepository provides read access to the fund collection. Implementations
// may reload from their backing source on every call.
type FundRepository interface {
	ListFunds(ctx context.Context, params ListFundsParams) ([]models.Fund, error)
	GetFundBySchemeCode(ctx context.Context, code string) (*models.Fund, error)
}

// MarketRepository provides read access to the market-conditions baseline.
type MarketRepository interface {
	ReadSnapshot(ctx context.Context) (*models.MarketSnapshot, error)
}

// PortfolioRepository provides the stored user portfolio snapshot.
type PortfolioRepository interface {
	ReadPortfolio(ctx context.Context) (*models.BrokerPortfolio, error)
}

// FundScoreWriter persists refreshed scores. Only the database-backed store
// implements it; flat-file sources stay read-only.
type FundScoreWriter interface {
	UpdateFundScore(ctx context.Context, id uint64, score float64, at time.Time) error
}
