package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"lentoflow/internal/domain"
)

func TestScoreDay_RestDay(t *testing.T) {
	score := ScoreDay(nil, 15)

	assert.Equal(t, domain.GradeRest, score.Grade)
	assert.Equal(t, "今天是休息日 🌙", score.Message)
	assert.Zero(t, score.TotalScore)
	assert.Zero(t, score.EnergySpent)
}

func TestScoreDay_ExcellentWithBonus(t *testing.T) {
	completed := []domain.TaskState{
		{EnergyCost: 5, Urgency: 2.5},
		{EnergyCost: 3, Urgency: 1.0},
	}

	score := ScoreDay(completed, 8)

	assert.Equal(t, 100.0, score.BaseScore)
	assert.Equal(t, 10.5, score.UrgentBonus)
	assert.Equal(t, 110.5, score.TotalScore)
	assert.Equal(t, domain.GradeExcellent, score.Grade)
	assert.Equal(t, "太棒了！超额完成！ 🌟", score.Message)
	assert.Equal(t, 8, score.EnergySpent)
	assert.Equal(t, 2, score.TasksCompleted)
}

func TestScoreDay_BonusCappedAtTwenty(t *testing.T) {
	completed := []domain.TaskState{{EnergyCost: 1, Urgency: 50}}

	score := ScoreDay(completed, 10)

	assert.Equal(t, 20.0, score.UrgentBonus)
}

func TestScoreDay_LightDay(t *testing.T) {
	completed := []domain.TaskState{{EnergyCost: 2, Urgency: 0.2}}

	score := ScoreDay(completed, 20)

	assert.Equal(t, 10.0, score.BaseScore)
	assert.Equal(t, domain.GradeLight, score.Grade)
	assert.Equal(t, "轻松的一天也很好 🌿", score.Message)
}

func TestScoreDay_ZeroBudgetGuarded(t *testing.T) {
	completed := []domain.TaskState{{EnergyCost: 1, Urgency: 0}}

	score := ScoreDay(completed, 0)

	assert.Equal(t, 100.0, score.BaseScore)
}

// TestScoreDay_GradeMatchesTotal checks the band mapping for arbitrary
// completion sets, and that scoring ignores input order.
func TestScoreDay_GradeMatchesTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(8) + 1
		completed := make([]domain.TaskState, n)
		for i := range completed {
			completed[i] = domain.TaskState{
				EnergyCost: rng.Intn(5) + 1,
				Urgency:    float64(rng.Intn(400)) / 100,
			}
		}
		budget := rng.Intn(26) + 5

		score := ScoreDay(completed, budget)

		var want domain.ScoreGrade
		switch {
		case score.TotalScore >= 100:
			want = domain.GradeExcellent
		case score.TotalScore >= 80:
			want = domain.GradeGood
		case score.TotalScore >= 50:
			want = domain.GradeOkay
		default:
			want = domain.GradeLight
		}
		assert.Equal(t, want, score.Grade, "trial %d: total %v", trial, score.TotalScore)
		assert.LessOrEqual(t, score.TotalScore, 120.0, "trial %d", trial)

		shuffled := append([]domain.TaskState(nil), completed...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, score, ScoreDay(shuffled, budget), "trial %d: score must be order-independent", trial)
	}
}

func TestAggregateHealth_EmptyGarden(t *testing.T) {
	h := AggregateHealth(nil)

	assert.Equal(t, 100.0, h.Score)
	assert.Equal(t, domain.HealthEmpty, h.Status)
	assert.Equal(t, "🌱", h.Icon)
	assert.Equal(t, "添加你的第一个习惯吧！", h.Message)
}

func TestAggregateHealth_ImportanceWeightedMean(t *testing.T) {
	states := []domain.TaskState{
		{Health: 100, Importance: 5},
		{Health: 40, Importance: 3},
		{Health: 10, Importance: 1},
	}

	h := AggregateHealth(states)

	// (500+120+10)/9 = 68.888...
	assert.InDelta(t, 68.9, h.Score, 0.001)
	assert.Equal(t, domain.HealthHealthy, h.Status)
	assert.Equal(t, "🌿", h.Icon)
	assert.Equal(t, "整体状态良好", h.Message)
}

func TestAggregateHealth_Bands(t *testing.T) {
	mk := func(health int) []domain.TaskState {
		return []domain.TaskState{{Health: health, Importance: 3}}
	}

	assert.Equal(t, domain.HealthThriving, AggregateHealth(mk(80)).Status)
	assert.Equal(t, domain.HealthHealthy, AggregateHealth(mk(79)).Status)
	assert.Equal(t, domain.HealthHealthy, AggregateHealth(mk(60)).Status)
	assert.Equal(t, domain.HealthNeedsAttention, AggregateHealth(mk(59)).Status)
	assert.Equal(t, domain.HealthNeedsAttention, AggregateHealth(mk(40)).Status)
	assert.Equal(t, domain.HealthStruggling, AggregateHealth(mk(39)).Status)
}
