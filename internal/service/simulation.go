package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"mfcompass/internal/models"
	"mfcompass/internal/repository"
)

// Fixed crash-scenario values. Every crash simulation reports this exact
// state regardless of the baseline snapshot.
const (
	crashVolatilityIndex = 42
	crashTrend           = "Bearish"
	crashOutlook         = "Negative"
)

// SimulationService produces synthetic market events used to drive UI alerts.
// All generators are stateless; the crash mutation lives only in the returned
// copy and is never written back.
type SimulationService struct {
	Funds  repository.FundRepository
	Market repository.MarketRepository
	Logger *zap.Logger
}

func (s *SimulationService) MarketCrash(ctx context.Context) (*models.SimulationResult, error) {
	snapshot, err := s.Market.ReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	crashed := *snapshot
	crashed.VolatilityIndex = crashVolatilityIndex
	crashed.Trend = crashTrend
	crashed.Outlook = crashOutlook

	return &models.SimulationResult{
		Success: true,
		Message: fmt.Sprintf("Market Crash Simulated: VIX spiked to %d", crashVolatilityIndex),
		Data:    crashed,
		Alert: models.Alert{
			Type:    models.AlertCritical,
			Message: "Market Crash Detected! VIX at 42. Equity markets falling rapidly.",
			Action:  "Shift SIPs to Debt/Gold Funds immediately.",
		},
	}, nil
}

func (s *SimulationService) VolatilitySpike(ctx context.Context) (*models.SimulationResult, error) {
	return &models.SimulationResult{
		Success: true,
		Message: "Volatility Spike Simulated",
		Alert: models.Alert{
			Type:    models.AlertWarning,
			Message: "High Volatility detected in Midcap & Smallcap sectors.",
			Action:  "Pause Smallcap SIPs. Move to Large Cap.",
		},
	}, nil
}

func (s *SimulationService) ManagerChange(ctx context.Context) (*models.SimulationResult, error) {
	funds, err := s.Funds.ListFunds(ctx, repository.ListFundsParams{})
	if err != nil {
		return nil, err
	}
	if len(funds) == 0 {
		return nil, repository.ErrEmpty
	}
	fund := funds[rand.Intn(len(funds))]
	if s.Logger != nil {
		s.Logger.Info("manager change simulated",
			zap.String("scheme_code", fund.SchemeCode),
			zap.String("scheme_name", fund.SchemeName),
		)
	}
	return &models.SimulationResult{
		Success: true,
		Message: fmt.Sprintf("Manager Change Simulated for %s", fund.SchemeName),
		Alert: models.Alert{
			Type:    models.AlertRisk,
			Message: fmt.Sprintf("Fund Manager changed for %s. Strategy may shift.", fund.SchemeName),
			Action:  "Review Allocation",
		},
		Fund: &fund,
	}, nil
}

func (s *SimulationService) SectorMismatch(ctx context.Context) (*models.SimulationResult, error) {
	return &models.SimulationResult{
		Success: true,
		Message: "Sector Mismatch Simulated",
		Alert: models.Alert{
			Type:    models.AlertCompliance,
			Message: "Large Cap fund showing 15% Small Cap allocation. Deviation from mandate.",
			Action:  "Check Fund Factsheet",
		},
	}, nil
}

// BrokerPortfolio returns the fixed simulated brokerage snapshot used by the
// dashboard when no real broker account is linked.
func (s *SimulationService) BrokerPortfolio() models.BrokerPortfolio {
	return models.BrokerPortfolio{
		User: models.BrokerUser{
			Name:        "Puneet",
			Age:         25,
			MonthlySIP:  decimal.NewFromInt(15000),
			RiskProfile: models.RiskAggressive,
		},
		TotalValue: decimal.NewFromInt(1250000),
		Holdings: []models.Holding{
			{
				FundID:     1,
				FundName:   "HDFC Top 100 Fund",
				Units:      500,
				AvgNAV:     decimal.NewFromInt(120),
				CurrentNAV: decimal.NewFromInt(145),
				Value:      decimal.NewFromInt(72500),
				ReturnPct:  20.8,
			},
			{
				FundID:     3,
				FundName:   "SBI Small Cap Fund",
				Units:      200,
				AvgNAV:     decimal.NewFromInt(80),
				CurrentNAV: decimal.NewFromInt(110),
				Value:      decimal.NewFromInt(22000),
				ReturnPct:  37.5,
			},
			{
				FundID:     5,
				FundName:   "Parag Parikh Flexi Cap",
				Units:      300,
				AvgNAV:     decimal.NewFromInt(45),
				CurrentNAV: decimal.NewFromInt(55),
				Value:      decimal.NewFromInt(16500),
				ReturnPct:  22.2,
			},
		},
		Allocation: []models.AllocationSlice{
			{Name: "Large Cap", Value: 60},
			{Name: "Small Cap", Value: 25},
			{Name: "Flexi Cap", Value: 15},
		},
	}
}
