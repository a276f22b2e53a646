package contract

type DailyStats struct {
	Date           string   `json:"date"`
	EnergySpent    int      `json:"energy_spent"`
	TasksCompleted int      `json:"tasks_completed"`
	DailyScore     *float64 `json:"daily_score"`
	OverallHealth  *float64 `json:"overall_health"`
}

type WeeklyStats struct {
	WeekStart           string  `json:"week_start"`
	WeekEnd             string  `json:"week_end"`
	TotalEnergySpent    int     `json:"total_energy_spent"`
	TotalTasksCompleted int     `json:"total_tasks_completed"`
	AverageDailyScore   float64 `json:"average_daily_score"`
	AverageHealth       float64 `json:"average_health"`
	CompletionRate      float64 `json:"completion_rate"`
}

type MonthlyStats struct {
	Month               int     `json:"month"`
	Year                int     `json:"year"`
	TotalEnergySpent    int     `json:"total_energy_spent"`
	TotalTasksCompleted int     `json:"total_tasks_completed"`
	AverageDailyScore   float64 `json:"average_daily_score"`
	AverageHealth       float64 `json:"average_health"`
	CompletionRate      float64 `json:"completion_rate"`
	ActiveDays          int     `json:"active_days"`
}

type HeatmapPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

type HeatmapData struct {
	Data     []HeatmapPoint `json:"data"`
	MinValue int            `json:"min_value"`
	MaxValue int            `json:"max_value"`
}

type TaskStats struct {
	TaskID           int64   `json:"task_id"`
	TaskName         string  `json:"task_name"`
	TotalCompletions int     `json:"total_completions"`
	LongestStreak    int     `json:"longest_streak"`
	CurrentStreak    int     `json:"current_streak"`
	CompletionRate   float64 `json:"completion_rate"`
	AverageHealth    float64 `json:"average_health"`
	LastCompleted    *string `json:"last_completed"`
}
