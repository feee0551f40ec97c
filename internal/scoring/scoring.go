// Package scoring holds the pure fund scoring, mood classification and
// ranking logic. Everything here is deterministic and side-effect free.
package scoring

import (
	"math"
	"sort"

	"mfcompass/internal/models"
)

// Mood labels, ordered by classification precedence.
const (
	MoodVolatile   = "Volatile"
	MoodStable     = "Stable"
	MoodAggressive = "Aggressive"
	MoodUncertain  = "Uncertain"
	MoodRecovering = "Recovering"
	MoodConsistent = "Consistent"
)

// Score computes the 0-100-ish composite score for a fund:
// rolling-return and consistency inputs carry fixed 4x/3x weights, low
// volatility and low expense ratio earn flat tier bonuses. The two-tier
// volatility bonus is intentional; no clamping is applied.
func Score(f models.Fund) float64 {
	score := f.RollingReturnScore*4 + f.ConsistencyScore*3

	if f.Volatility < 10 {
		score += 20
	} else if f.Volatility < 15 {
		score += 10
	}

	if f.ExpenseRatio < 1.0 {
		score += 10
	}

	return math.Round(score*100) / 100
}

// Mood classifies a fund's behavior pattern. The rules form an ordered chain
// and the first match wins: a highly volatile fund with a manager change is
// Volatile, not Uncertain.
func Mood(f models.Fund) string {
	switch {
	case f.Volatility > 18:
		return MoodVolatile
	case f.ConsistencyScore > 9 && f.Volatility < 12:
		return MoodStable
	case deref(f.Returns1Y) > 20 && deref(f.Returns3Y) > 15:
		return MoodAggressive
	case f.ManagerChanged:
		return MoodUncertain
	case deref(f.Returns1Y) > deref(f.Returns3Y):
		return MoodRecovering
	default:
		return MoodConsistent
	}
}

// Rank annotates every fund with its computed score and mood and returns a
// new slice sorted by descending authoritative score. The persisted
// TotalScore wins over the computed one only when it is present and non-zero;
// a stored zero is recomputed. Ties keep their input order (stable sort).
// The input slice is not mutated.
func Rank(funds []models.Fund) []models.Fund {
	ranked := make([]models.Fund, len(funds))
	for i, f := range funds {
		f.CalculatedScore = Score(f)
		f.Mood = Mood(f)
		if f.TotalScore == nil || *f.TotalScore == 0 {
			total := f.CalculatedScore
			f.TotalScore = &total
		}
		ranked[i] = f
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return authoritative(ranked[i]) > authoritative(ranked[j])
	})
	return ranked
}

func authoritative(f models.Fund) float64 {
	if f.TotalScore != nil {
		return *f.TotalScore
	}
	return f.CalculatedScore
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
