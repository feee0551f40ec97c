package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mfcompass/internal/models"
	"mfcompass/internal/repository"
)

type stubFundRepo struct {
	funds []models.Fund
	err   error
}

func (s *stubFundRepo) ListFunds(ctx context.Context, params repository.ListFundsParams) ([]models.Fund, error) {
	return s.funds, s.err
}

func (s *stubFundRepo) GetFundBySchemeCode(ctx context.Context, code string) (*models.Fund, error) {
	return nil, repository.ErrNotFound
}

func score(v float64) *float64 { return &v }

func TestChat_NotConfigured(t *testing.T) {
	adv := &Advisor{Client: &stubGenerator{configured: false}}
	_, err := adv.Chat(context.Background(), &stubFundRepo{}, "what should I buy?", profileFixture(), nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestChat_IncludesTopFundContext(t *testing.T) {
	repo := &stubFundRepo{funds: []models.Fund{
		{SchemeName: "Alpha Fund", FundCategory: "Large Cap", RiskLevel: "Moderate", TotalScore: score(88)},
		{SchemeName: "Low Score Fund", FundCategory: "Debt", TotalScore: score(40)},
		{SchemeName: "Beta Fund", FundCategory: "Flexi Cap", RiskLevel: "High", TotalScore: score(92)},
	}}
	gen := &stubGenerator{configured: true, response: "Consider Beta Fund."}
	adv := &Advisor{Client: gen}

	answer, err := adv.Chat(context.Background(), repo, "what should I buy?", profileFixture(), nil)
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if answer != "Consider Beta Fund." {
		t.Fatalf("answer = %q", answer)
	}
	if !strings.Contains(gen.lastPrompt, "1. Beta Fund") {
		t.Fatalf("highest scored fund not first in context:\n%s", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "Alpha Fund") {
		t.Fatalf("qualifying fund missing from context:\n%s", gen.lastPrompt)
	}
	if strings.Contains(gen.lastPrompt, "Low Score Fund") {
		t.Fatalf("below-threshold fund leaked into context:\n%s", gen.lastPrompt)
	}
}

func TestChat_HistoryPrefixed(t *testing.T) {
	gen := &stubGenerator{configured: true, response: "ok"}
	adv := &Advisor{Client: gen}
	history := []ChatMessage{
		{Role: "user", Content: "Am I too exposed to small caps?"},
		{Role: "assistant", Content: "Slightly, yes."},
	}
	if _, err := adv.Chat(context.Background(), &stubFundRepo{}, "so what now?", profileFixture(), history); err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if !strings.HasPrefix(gen.lastPrompt, "Previous Conversation:\nUser: Am I too exposed") {
		t.Fatalf("history not prefixed:\n%s", gen.lastPrompt)
	}
}

func TestChat_FundContextErrorStillAnswers(t *testing.T) {
	repo := &stubFundRepo{err: errors.New("db down")}
	gen := &stubGenerator{configured: true, response: "general advice"}
	adv := &Advisor{Client: gen}
	answer, err := adv.Chat(context.Background(), repo, "hello", profileFixture(), nil)
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if answer != "general advice" {
		t.Fatalf("answer = %q", answer)
	}
	if !strings.Contains(gen.lastPrompt, "None available.") {
		t.Fatalf("missing empty-context marker:\n%s", gen.lastPrompt)
	}
}
