// Package advisor builds financial-advice prompts, proxies them to the
// external text-generation service and shapes the result into a
// Recommendation. Advice requests never fail: every service error degrades to
// a fixed fallback payload.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"mfcompass/internal/models"
)

// TextGenerator is the external completion service boundary.
type TextGenerator interface {
	Configured() bool
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Advisor proxies advice requests to a text-generation service.
type Advisor struct {
	Client TextGenerator
	Logger *zap.Logger
}

var sipRate = decimal.NewFromFloat(0.2)

const sipReason = "Based on the 50-30-20 rule, investing 20% of your income is recommended."

// advisorPayload is the JSON fragment the model is instructed to emit.
type advisorPayload struct {
	Top3        []models.FundPick `json:"top3"`
	Explanation string            `json:"explanation"`
}

// Advise produces a Recommendation for the given profile and holdings. It
// always returns a usable value: missing credentials, transport errors and
// unparseable completions all fall back to the canned recommendation.
func (a *Advisor) Advise(ctx context.Context, profile models.UserProfile, holdings []models.Holding) models.Recommendation {
	rec, err := a.generate(ctx, profile, holdings)
	if err != nil {
		if a.Logger != nil {
			a.Logger.Warn("advice generation failed, using fallback", zap.Error(err))
		}
		return a.fallback(profile)
	}
	return rec
}

func (a *Advisor) generate(ctx context.Context, profile models.UserProfile, holdings []models.Holding) (models.Recommendation, error) {
	if a.Client == nil || !a.Client.Configured() {
		return models.Recommendation{}, errors.New("no text-generation credential configured")
	}

	text, err := a.Client.GenerateContent(ctx, buildAdvicePrompt(profile, holdings))
	if err != nil {
		return models.Recommendation{}, err
	}

	fragment, ok := extractJSONObject(text)
	if !ok {
		return models.Recommendation{}, errors.New("no JSON object in completion")
	}
	var payload advisorPayload
	if err := json.Unmarshal([]byte(fragment), &payload); err != nil {
		return models.Recommendation{}, fmt.Errorf("parse completion: %w", err)
	}
	if len(payload.Top3) > 3 {
		payload.Top3 = payload.Top3[:3]
	}

	return models.Recommendation{
		Top3: payload.Top3,
		Allocation: []models.AllocationSlice{
			{Name: "Equity", Value: 70},
			{Name: "Debt", Value: 20},
			{Name: "Gold", Value: 10},
		},
		SIPSuggestion: sipSuggestion(profile),
		Alerts:        []models.Alert{},
		Explanation:   payload.Explanation,
	}, nil
}

func (a *Advisor) fallback(profile models.UserProfile) models.Recommendation {
	return models.Recommendation{
		Top3: []models.FundPick{
			{
				FundName: "HDFC Top 100 Fund",
				Reason:   "Consistent large-cap performer suitable for long-term growth.",
				Category: "Large Cap",
			},
			{
				FundName: "Parag Parikh Flexi Cap Fund",
				Reason:   "Diversified exposure across sectors and geographies.",
				Category: "Flexi Cap",
			},
			{
				FundName: "Axis Small Cap Fund",
				Reason:   "High-growth potential for aggressive wealth creation.",
				Category: "Small Cap",
			},
		},
		Allocation: []models.AllocationSlice{
			{Name: "Equity", Value: 75},
			{Name: "Debt", Value: 20},
			{Name: "Cash", Value: 5},
		},
		SIPSuggestion: sipSuggestion(profile),
		Alerts:        []models.Alert{},
		Explanation: fmt.Sprintf(
			"Based on your %s risk profile and %d year horizon, we recommend a Growth-focused portfolio. The market outlook is currently stable, favoring Equity for wealth creation.",
			profile.RiskType, profile.GoalDuration,
		),
	}
}

func sipSuggestion(profile models.UserProfile) models.SIPSuggestion {
	return models.SIPSuggestion{
		Amount: profile.MonthlyIncome.Mul(sipRate),
		Reason: sipReason,
	}
}

func buildAdvicePrompt(profile models.UserProfile, holdings []models.Holding) string {
	holdingsText := "None"
	if len(holdings) > 0 {
		lines := make([]string, 0, len(holdings))
		for _, h := range holdings {
			lines = append(lines, fmt.Sprintf("- %s (%s)", h.FundName, h.Value.String()))
		}
		holdingsText = strings.Join(lines, "\n")
	}

	var sb strings.Builder
	sb.WriteString("Act as an expert financial advisor.\n\n")
	sb.WriteString("User Profile:\n")
	fmt.Fprintf(&sb, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&sb, "- Monthly Income: %s\n", profile.MonthlyIncome.String())
	fmt.Fprintf(&sb, "- Risk Profile: %s\n", profile.RiskType)
	fmt.Fprintf(&sb, "- Goal: %s (%d years)\n\n", profile.InvestmentObjective, profile.GoalDuration)
	sb.WriteString("Current Portfolio Holdings:\n")
	sb.WriteString(holdingsText)
	sb.WriteString("\n\nTask:\n")
	sb.WriteString("1. Analyze the current portfolio and user profile.\n")
	sb.WriteString("2. Recommend top 3 specific mutual funds to invest in (use real Indian mutual fund names).\n")
	sb.WriteString("3. Ensure recommendations complement the existing portfolio (e.g., if they have Large Cap, suggest Mid/Small or Flexi Cap for diversification).\n")
	sb.WriteString("4. Provide a brief 1-sentence reason for each recommendation.\n\n")
	sb.WriteString("Output JSON format ONLY:\n")
	sb.WriteString(`{
    "top3": [
        { "fundName": "Fund Name 1", "reason": "Reason 1", "category": "Category 1" },
        { "fundName": "Fund Name 2", "reason": "Reason 2", "category": "Category 2" },
        { "fundName": "Fund Name 3", "reason": "Reason 3", "category": "Category 3" }
    ],
    "explanation": "Brief strategic advice."
}`)
	return sb.String()
}
