package models

import (
	"github.com/shopspring/decimal"
)

// FundPick is one advisor suggestion.
type FundPick struct {
	FundName string `json:"fundName"`
	Reason   string `json:"reason"`
	Category string `json:"category"`
}

// SIPSuggestion is a recommended fixed-amount recurring investment.
type SIPSuggestion struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// Recommendation is the advisor output. Allocation values sum to 100.
type Recommendation struct {
	Top3          []FundPick        `json:"top3"`
	Allocation    []AllocationSlice `json:"allocation"`
	SIPSuggestion SIPSuggestion     `json:"sipSuggestion"`
	Alerts        []Alert           `json:"alerts"`
	Explanation   string            `json:"explanation"`
}
