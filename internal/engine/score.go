package engine

import (
	"math"

	"lentoflow/internal/domain"
)

// Grade messages, verbatim from the product copy.
const (
	msgExcellent = "太棒了！超额完成！ 🌟"
	msgGood      = "干得不错！保持下去 💪"
	msgOkay      = "不错的一天！ 👍"
	msgLight     = "轻松的一天也很好 🌿"
	msgRest      = "今天是休息日 🌙"
)

// DailyScore is the scored summary of one day's completions.
type DailyScore struct {
	BaseScore      float64
	UrgentBonus    float64
	TotalScore     float64
	Grade          domain.ScoreGrade
	Message        string
	EnergySpent    int
	TasksCompleted int
}

// ScoreDay scores the day from the set of tasks completed today. The base
// score is the energy completion ratio capped at 100; completing urgent tasks
// adds up to 20 bonus points. The result depends only on the energy costs and
// urgencies of the completed set, not on completion order.
func ScoreDay(completedToday []domain.TaskState, budget int) DailyScore {
	if len(completedToday) == 0 {
		return DailyScore{Grade: domain.GradeRest, Message: msgRest}
	}

	var energySpent int
	var urgencySum float64
	for _, s := range completedToday {
		energySpent += s.EnergyCost
		urgencySum += s.Urgency
	}

	if budget < 1 {
		budget = 1
	}
	base := math.Min(100, float64(energySpent)/float64(budget)*100)
	bonus := math.Min(20, urgencySum*3)
	total := math.Min(120, base+bonus)

	var grade domain.ScoreGrade
	var message string
	switch {
	case total >= 100:
		grade, message = domain.GradeExcellent, msgExcellent
	case total >= 80:
		grade, message = domain.GradeGood, msgGood
	case total >= 50:
		grade, message = domain.GradeOkay, msgOkay
	default:
		grade, message = domain.GradeLight, msgLight
	}

	return DailyScore{
		BaseScore:      round1(base),
		UrgentBonus:    round1(bonus),
		TotalScore:     round1(total),
		Grade:          grade,
		Message:        message,
		EnergySpent:    energySpent,
		TasksCompleted: len(completedToday),
	}
}

// Aggregate health bands, verbatim from the product copy.
const (
	msgThriving       = "习惯花园一片繁茂！"
	msgHealthy        = "整体状态良好"
	msgNeedsAttention = "有些习惯需要关注了"
	msgStruggling     = "花园需要照料了..."
	msgEmptyGarden    = "添加你的第一个习惯吧！"
)

// OverallHealth is the importance-weighted health rollup across all tasks.
type OverallHealth struct {
	Score   float64
	Status  domain.HealthStatus
	Icon    string
	Message string
}

// AggregateHealth computes the importance-weighted mean of per-task health
// and its qualitative band. An empty task list reads as a pristine garden.
func AggregateHealth(states []domain.TaskState) OverallHealth {
	if len(states) == 0 {
		return OverallHealth{Score: 100, Status: domain.HealthEmpty, Icon: "🌱", Message: msgEmptyGarden}
	}

	var weightedSum, weightTotal float64
	for _, s := range states {
		weightedSum += float64(s.Health) * float64(s.Importance)
		weightTotal += float64(s.Importance)
	}
	avg := weightedSum / weightTotal

	var status domain.HealthStatus
	var icon, message string
	switch {
	case avg >= 80:
		status, icon, message = domain.HealthThriving, "🌳", msgThriving
	case avg >= 60:
		status, icon, message = domain.HealthHealthy, "🌿", msgHealthy
	case avg >= 40:
		status, icon, message = domain.HealthNeedsAttention, "🌱", msgNeedsAttention
	default:
		status, icon, message = domain.HealthStruggling, "🥀", msgStruggling
	}

	return OverallHealth{Score: round1(avg), Status: status, Icon: icon, Message: message}
}
