package models

import (
	"github.com/shopspring/decimal"
)

// Risk tiers accepted on the onboarding profile.
const (
	RiskConservative = "Conservative"
	RiskModerate     = "Moderate"
	RiskAggressive   = "Aggressive"
)

// UserProfile is the investor answering the onboarding form. Read-only input
// for the duration of a request.
type UserProfile struct {
	Age                 int             `json:"age"`
	MonthlyIncome       decimal.Decimal `json:"monthlyIncome"`
	RiskType            string          `json:"riskType"`
	GoalDuration        int             `json:"goalDuration"`
	InvestmentObjective string          `json:"investmentObjective"`
}

// Holding is one line of a portfolio.
type Holding struct {
	FundID     uint64          `json:"fundId"`
	FundName   string          `json:"fundName"`
	Units      float64         `json:"units"`
	AvgNAV     decimal.Decimal `json:"avgNAV"`
	CurrentNAV decimal.Decimal `json:"currentNAV"`
	Value      decimal.Decimal `json:"value"`
	ReturnPct  float64         `json:"return"`
}

// AllocationSlice is one named bucket of a target allocation.
type AllocationSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// BrokerUser is the account block of a simulated brokerage response.
type BrokerUser struct {
	Name        string          `json:"name"`
	Age         int             `json:"age"`
	MonthlySIP  decimal.Decimal `json:"monthlySIP"`
	RiskProfile string          `json:"riskProfile"`
}

// BrokerPortfolio mimics the payload an external broker aggregator would
// return for a linked account.
type BrokerPortfolio struct {
	User       BrokerUser        `json:"user"`
	TotalValue decimal.Decimal   `json:"totalValue"`
	Holdings   []Holding         `json:"holdings"`
	Allocation []AllocationSlice `json:"allocation"`
}
