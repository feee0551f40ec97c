package scoring

import (
	"testing"

	"mfcompass/internal/models"
)

func f64(v float64) *float64 { return &v }

func TestScore_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		fund models.Fund
		want float64
	}{
		{
			name: "all bonuses",
			fund: models.Fund{
				Volatility:         8,
				ExpenseRatio:       0.8,
				RollingReturnScore: 10,
				ConsistencyScore:   10,
			},
			want: 100.00,
		},
		{
			name: "no bonuses",
			fund: models.Fund{
				Volatility:         16,
				ExpenseRatio:       1.5,
				RollingReturnScore: 5,
				ConsistencyScore:   5,
			},
			want: 35.00,
		},
		{
			name: "mid volatility tier",
			fund: models.Fund{
				Volatility:         12,
				ExpenseRatio:       1.2,
				RollingReturnScore: 6,
				ConsistencyScore:   7,
			},
			want: 55.00,
		},
		{
			name: "zero inputs still defined",
			fund: models.Fund{
				Volatility:         16,
				ExpenseRatio:       2.0,
				RollingReturnScore: 0,
				ConsistencyScore:   0,
			},
			want: 0.00,
		},
		{
			name: "negative inputs not clamped",
			fund: models.Fund{
				Volatility:         16,
				ExpenseRatio:       2.0,
				RollingReturnScore: -2,
				ConsistencyScore:   -1,
			},
			want: -11.00,
		},
	}
	for _, tt := range tests {
		if got := Score(tt.fund); got != tt.want {
			t.Fatalf("%s: Score() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	fund := models.Fund{
		Volatility:         9.7,
		ExpenseRatio:       0.99,
		RollingReturnScore: 7.33,
		ConsistencyScore:   6.67,
	}
	first := Score(fund)
	for i := 0; i < 100; i++ {
		if got := Score(fund); got != first {
			t.Fatalf("Score() not deterministic: %v != %v", got, first)
		}
	}
}

func TestMood_RuleOrder(t *testing.T) {
	tests := []struct {
		name string
		fund models.Fund
		want string
	}{
		{
			name: "volatility wins over manager change",
			fund: models.Fund{Volatility: 25, ManagerChanged: true, ConsistencyScore: 10},
			want: MoodVolatile,
		},
		{
			name: "volatility boundary not volatile at 18",
			fund: models.Fund{Volatility: 18},
			want: MoodConsistent,
		},
		{
			name: "stable",
			fund: models.Fund{Volatility: 10, ConsistencyScore: 9.5},
			want: MoodStable,
		},
		{
			name: "stable blocked by volatility 12",
			fund: models.Fund{Volatility: 12, ConsistencyScore: 9.5},
			want: MoodConsistent,
		},
		{
			name: "aggressive",
			fund: models.Fund{Volatility: 14, Returns1Y: f64(22), Returns3Y: f64(16)},
			want: MoodAggressive,
		},
		{
			name: "uncertain after aggressive check",
			fund: models.Fund{Volatility: 14, ManagerChanged: true, Returns1Y: f64(22), Returns3Y: f64(16)},
			want: MoodAggressive,
		},
		{
			name: "uncertain",
			fund: models.Fund{Volatility: 14, ManagerChanged: true, Returns1Y: f64(10), Returns3Y: f64(12)},
			want: MoodUncertain,
		},
		{
			name: "recovering",
			fund: models.Fund{Volatility: 14, Returns1Y: f64(12), Returns3Y: f64(8)},
			want: MoodRecovering,
		},
		{
			name: "recovering with nil 3y",
			fund: models.Fund{Volatility: 14, Returns1Y: f64(5)},
			want: MoodRecovering,
		},
		{
			name: "consistent",
			fund: models.Fund{Volatility: 14, Returns1Y: f64(10), Returns3Y: f64(12)},
			want: MoodConsistent,
		},
	}
	for _, tt := range tests {
		if got := Mood(tt.fund); got != tt.want {
			t.Fatalf("%s: Mood() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMood_VolatileRegardlessOfOtherFields(t *testing.T) {
	fund := models.Fund{
		Volatility:       18.01,
		ConsistencyScore: 10,
		ManagerChanged:   true,
		Returns1Y:        f64(50),
		Returns3Y:        f64(40),
	}
	if got := Mood(fund); got != MoodVolatile {
		t.Fatalf("Mood() = %q, want %q", got, MoodVolatile)
	}
}

func TestRank_OrderAndAnnotation(t *testing.T) {
	funds := []models.Fund{
		{SchemeCode: "A", RollingReturnScore: 5, ConsistencyScore: 5, Volatility: 16, ExpenseRatio: 1.5},  // computed 35
		{SchemeCode: "B", RollingReturnScore: 10, ConsistencyScore: 10, Volatility: 8, ExpenseRatio: 0.8}, // computed 100
		{SchemeCode: "C", TotalScore: f64(60), RollingReturnScore: 1, ConsistencyScore: 1, Volatility: 20, ExpenseRatio: 2},
	}
	ranked := Rank(funds)

	if len(ranked) != len(funds) {
		t.Fatalf("len(ranked) = %d, want %d", len(ranked), len(funds))
	}
	wantOrder := []string{"B", "C", "A"}
	for i, code := range wantOrder {
		if ranked[i].SchemeCode != code {
			t.Fatalf("ranked[%d] = %s, want %s", i, ranked[i].SchemeCode, code)
		}
	}
	for _, f := range ranked {
		if f.Mood == "" {
			t.Fatalf("fund %s missing mood", f.SchemeCode)
		}
		if f.TotalScore == nil {
			t.Fatalf("fund %s missing authoritative score", f.SchemeCode)
		}
	}
	// Persisted score wins over the computed one.
	if *ranked[1].TotalScore != 60 {
		t.Fatalf("stored score overwritten: got %v", *ranked[1].TotalScore)
	}
}

func TestRank_IsPermutation(t *testing.T) {
	funds := []models.Fund{
		{SchemeCode: "A", RollingReturnScore: 3, ConsistencyScore: 2},
		{SchemeCode: "B", RollingReturnScore: 9, ConsistencyScore: 8},
		{SchemeCode: "C", RollingReturnScore: 6, ConsistencyScore: 6},
		{SchemeCode: "D", RollingReturnScore: 1, ConsistencyScore: 1},
	}
	ranked := Rank(funds)
	seen := map[string]bool{}
	for _, f := range ranked {
		seen[f.SchemeCode] = true
	}
	for _, f := range funds {
		if !seen[f.SchemeCode] {
			t.Fatalf("fund %s missing from ranked output", f.SchemeCode)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if *ranked[i-1].TotalScore < *ranked[i].TotalScore {
			t.Fatalf("ranking not non-increasing at %d", i)
		}
	}
}

func TestRank_Empty(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Fatalf("Rank(nil) returned %d items", len(got))
	}
	if got := Rank([]models.Fund{}); len(got) != 0 {
		t.Fatalf("Rank(empty) returned %d items", len(got))
	}
}

func TestRank_StoredZeroRecomputed(t *testing.T) {
	funds := []models.Fund{
		{SchemeCode: "Z", TotalScore: f64(0), RollingReturnScore: 5, ConsistencyScore: 5, Volatility: 16, ExpenseRatio: 1.5},
	}
	ranked := Rank(funds)
	if *ranked[0].TotalScore != 35 {
		t.Fatalf("stored zero should be recomputed: got %v", *ranked[0].TotalScore)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	funds := []models.Fund{
		{SchemeCode: "A", RollingReturnScore: 5, ConsistencyScore: 5},
		{SchemeCode: "B", RollingReturnScore: 9, ConsistencyScore: 9},
	}
	Rank(funds)
	if funds[0].SchemeCode != "A" || funds[1].SchemeCode != "B" {
		t.Fatalf("input order mutated: %s, %s", funds[0].SchemeCode, funds[1].SchemeCode)
	}
	if funds[0].Mood != "" || funds[0].TotalScore != nil {
		t.Fatalf("input annotated in place")
	}
}
