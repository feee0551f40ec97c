package advisor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mfcompass/internal/models"
	"mfcompass/internal/repository"
)

// Context funds attached to a chat prompt: highest-scored first, capped so
// the prompt stays small.
const (
	chatContextMinScore = 70.0
	chatContextLimit    = 20
)

// ChatMessage is one turn of an advisor conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ErrNotConfigured is returned by Chat when no credential is available. The
// chat surface does not fall back to canned answers the way Advise does.
var ErrNotConfigured = errors.New("advisor chat is not configured")

// Chat answers a free-form question grounded on the user's profile and the
// current top-rated funds.
func (a *Advisor) Chat(ctx context.Context, repo repository.FundRepository, message string, profile models.UserProfile, history []ChatMessage) (string, error) {
	if a.Client == nil || !a.Client.Configured() {
		return "", ErrNotConfigured
	}

	var topFunds []models.Fund
	if repo != nil {
		funds, err := repo.ListFunds(ctx, repository.ListFundsParams{ScoredOnly: true})
		if err != nil {
			if a.Logger != nil {
				a.Logger.Warn("chat fund context unavailable")
			}
		} else {
			topFunds = topRated(funds)
		}
	}

	return a.Client.GenerateContent(ctx, buildChatPrompt(message, profile, topFunds, history))
}

func topRated(funds []models.Fund) []models.Fund {
	rated := make([]models.Fund, 0, len(funds))
	for _, f := range funds {
		if f.TotalScore != nil && *f.TotalScore >= chatContextMinScore {
			rated = append(rated, f)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return *rated[i].TotalScore > *rated[j].TotalScore
	})
	if len(rated) > chatContextLimit {
		rated = rated[:chatContextLimit]
	}
	return rated
}

func buildChatPrompt(message string, profile models.UserProfile, topFunds []models.Fund, history []ChatMessage) string {
	var sb strings.Builder

	if len(history) > 0 {
		sb.WriteString("Previous Conversation:\n")
		for _, msg := range history {
			role := "Assistant"
			if strings.EqualFold(msg.Role, "user") {
				role = "User"
			}
			fmt.Fprintf(&sb, "%s: %s\n", role, msg.Content)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("You are an expert Mutual Fund Advisor for \"MF Compass\".\n\n")
	sb.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&sb, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&sb, "- Income: %s\n", profile.MonthlyIncome.String())
	fmt.Fprintf(&sb, "- Risk: %s\n", profile.RiskType)
	fmt.Fprintf(&sb, "- Goal: %s (%d yrs)\n\n", profile.InvestmentObjective, profile.GoalDuration)

	sb.WriteString("TOP RATED FUNDS (Context):\n")
	if len(topFunds) == 0 {
		sb.WriteString("None available.\n")
	}
	for i, f := range topFunds {
		fmt.Fprintf(&sb, "%d. %s (%s) - Score: %.2f/100 | 1Y: %.2f%% | 3Y: %.2f%% | Risk: %s\n",
			i+1, f.SchemeName, f.FundCategory, deref(f.TotalScore), deref(f.Returns1Y), deref(f.Returns3Y), f.RiskLevel)
	}

	fmt.Fprintf(&sb, "\nUSER QUESTION: %q\n\n", message)
	sb.WriteString("INSTRUCTIONS:\n")
	sb.WriteString("1. Answer the user's question directly and concisely.\n")
	sb.WriteString("2. If they ask for recommendations, suggest funds ONLY from the provided list that match their risk profile.\n")
	sb.WriteString("3. Explain WHY a fund is suitable based on their profile.\n")
	sb.WriteString("4. Do not hallucinate funds not in the list unless asked for general concepts.\n")
	sb.WriteString("5. Keep the tone professional, encouraging, and helpful.\n")
	return sb.String()
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
