package contract

import "lentoflow/internal/domain"

// TaskView is one task as rendered in the today snapshot, stored fields plus
// the derived scalars.
type TaskView struct {
	ID               int64               `json:"id"`
	Name             string              `json:"name"`
	EnergyCost       int                 `json:"energy_cost"`
	Urgency          float64             `json:"urgency"`
	UrgencyLevel     domain.UrgencyLevel `json:"urgency_level"`
	Health           int                 `json:"health"`
	LastDone         *string             `json:"last_done"`
	DaysSince        *int                `json:"days_since"`
	ExpectedInterval int                 `json:"expected_interval"`
	IsCompletedToday bool                `json:"is_completed_today"`
	Icon             string              `json:"icon"`
	Color            string              `json:"color"`
}

type DailyScore struct {
	BaseScore      float64           `json:"base_score"`
	UrgentBonus    float64           `json:"urgent_bonus"`
	TotalScore     float64           `json:"total_score"`
	Grade          domain.ScoreGrade `json:"grade"`
	Message        string            `json:"message"`
	EnergySpent    int               `json:"energy_spent"`
	TasksCompleted int               `json:"tasks_completed"`
}

type OverallHealth struct {
	Score   float64             `json:"score"`
	Status  domain.HealthStatus `json:"status"`
	Icon    string              `json:"icon"`
	Message string              `json:"message"`
}

// TodayView is the composed snapshot for one user and one local date.
// DailyScore is nil on a day with no completions yet.
type TodayView struct {
	Date                string        `json:"date"`
	EnergyBudget        int           `json:"energy_budget"`
	EnergySpent         int           `json:"energy_spent"`
	EnergyRemaining     int           `json:"energy_remaining"`
	RecommendedTasks    []TaskView    `json:"recommended_tasks"`
	OtherTasks          []TaskView    `json:"other_tasks"`
	OverallHealth       OverallHealth `json:"overall_health"`
	DailyScore          *DailyScore   `json:"daily_score"`
	MotivationalMessage string        `json:"motivational_message"`
}

// CompletionReceipt acknowledges a successful mark-done.
type CompletionReceipt struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CompletionID int64  `json:"completion_id"`
}
