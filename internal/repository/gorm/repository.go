package gormrepository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"mfcompass/internal/models"
	"mfcompass/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListFunds(ctx context.Context, params repository.ListFundsParams) ([]models.Fund, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.Fund{})
	if params.ScoredOnly {
		query = query.Where("total_score IS NOT NULL")
	}
	category := strings.TrimSpace(params.Category)
	if category != "" && !strings.EqualFold(category, "all") {
		// Category filtering is only meaningful for equity schemes.
		query = query.Where("fund_type ILIKE ?", "%equity%").Where("fund_category = ?", category)
	}
	var items []models.Fund
	if err := query.Order("total_score DESC NULLS LAST").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetFundBySchemeCode(ctx context.Context, code string) (*models.Fund, error) {
	if s == nil || s.db == nil {
		return nil, repository.ErrNotFound
	}
	var item models.Fund
	err := s.db.WithContext(ctx).
		Where("scheme_code = ?", strings.TrimSpace(code)).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *Store) ReadSnapshot(ctx context.Context) (*models.MarketSnapshot, error) {
	if s == nil || s.db == nil {
		return nil, repository.ErrNotFound
	}
	var item models.MarketSnapshot
	err := s.db.WithContext(ctx).Order("updated_at DESC").First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpdateFundScore(ctx context.Context, id uint64, score float64, at time.Time) error {
	if s == nil || s.db == nil {
		return nil
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return s.db.WithContext(ctx).
		Model(&models.Fund{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_score":   score,
			"score_updated": at,
		}).Error
}
