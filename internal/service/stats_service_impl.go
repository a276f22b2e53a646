package service

import (
	"context"
	"time"

	"lentoflow/internal/contract"
	"lentoflow/internal/domain"
	"lentoflow/internal/engine"
	"lentoflow/internal/repository"
)

// StatsServiceImpl serves the history rollups. Daily reads the cached daily
// logs; weekly and monthly recompute health against their window's end date.
type StatsServiceImpl struct {
	tasks       repository.TaskRepo
	completions repository.CompletionRepo
	dailyLogs   repository.DailyLogRepo
	clock       Clock
	loc         *time.Location
	observer    UseCaseObserver
}

func NewStatsService(
	tasks repository.TaskRepo,
	completions repository.CompletionRepo,
	dailyLogs repository.DailyLogRepo,
	clock Clock,
	loc *time.Location,
	observer UseCaseObserver,
) *StatsServiceImpl {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &StatsServiceImpl{
		tasks:       tasks,
		completions: completions,
		dailyLogs:   dailyLogs,
		clock:       clock,
		loc:         loc,
		observer:    observer,
	}
}

// Daily returns one entry per day over the trailing window, zero-filled for
// days without a log.
func (s *StatsServiceImpl) Daily(ctx context.Context, userID int64, days int) (result []contract.DailyStats, err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "stats_daily", start, err, map[string]any{"user_id": userID, "days": days})
	}()

	today := domain.DateOf(start, s.loc)
	from := today.AddDate(0, 0, -(days - 1))

	logs, err := s.dailyLogs.ListRange(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]*domain.DailyLog, len(logs))
	for _, l := range logs {
		byDate[l.LogDate.Format(dateLayout)] = l
	}

	result = make([]contract.DailyStats, 0, days)
	for day := from; !day.After(today); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		entry := contract.DailyStats{Date: key}
		if l, ok := byDate[key]; ok {
			entry.EnergySpent = l.EnergySpent
			entry.TasksCompleted = l.TasksCompleted
			entry.DailyScore = l.DailyScore
			entry.OverallHealth = l.OverallHealth
		}
		result = append(result, entry)
	}
	return result, nil
}

// Weekly returns trailing 7-day windows, most recent first. Health is the
// aggregate as of each window's end date.
func (s *StatsServiceImpl) Weekly(ctx context.Context, userID int64, weeks int) (result []contract.WeeklyStats, err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "stats_weekly", start, err, map[string]any{"user_id": userID, "weeks": weeks})
	}()

	today := domain.DateOf(start, s.loc)
	result = make([]contract.WeeklyStats, 0, weeks)

	for i := 0; i < weeks; i++ {
		weekEnd := today.AddDate(0, 0, -7*i)
		weekStart := weekEnd.AddDate(0, 0, -6)

		window, err := s.windowRollup(ctx, userID, weekStart, weekEnd, 7)
		if err != nil {
			return nil, err
		}

		result = append(result, contract.WeeklyStats{
			WeekStart:           weekStart.Format(dateLayout),
			WeekEnd:             weekEnd.Format(dateLayout),
			TotalEnergySpent:    window.energySpent,
			TotalTasksCompleted: window.tasksCompleted,
			AverageDailyScore:   window.avgDailyScore,
			AverageHealth:       window.avgHealth,
			CompletionRate:      window.completionRate,
		})
	}
	return result, nil
}

// Monthly returns calendar months, most recent first.
func (s *StatsServiceImpl) Monthly(ctx context.Context, userID int64, months int) (result []contract.MonthlyStats, err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "stats_monthly", start, err, map[string]any{"user_id": userID, "months": months})
	}()

	today := domain.DateOf(start, s.loc)
	result = make([]contract.MonthlyStats, 0, months)

	for i := 0; i < months; i++ {
		year, month := today.Year(), int(today.Month())-i
		for month <= 0 {
			month += 12
			year--
		}
		monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, 0).AddDate(0, 0, -1)
		daysInMonth := domain.DaysBetween(monthStart, monthEnd) + 1

		window, err := s.windowRollup(ctx, userID, monthStart, monthEnd, daysInMonth)
		if err != nil {
			return nil, err
		}

		result = append(result, contract.MonthlyStats{
			Month:               month,
			Year:                year,
			TotalEnergySpent:    window.energySpent,
			TotalTasksCompleted: window.tasksCompleted,
			AverageDailyScore:   window.avgDailyScore,
			AverageHealth:       window.avgHealth,
			CompletionRate:      window.completionRate,
			ActiveDays:          window.activeDays,
		})
	}
	return result, nil
}

// Heatmap counts completions per day over the trailing window.
func (s *StatsServiceImpl) Heatmap(ctx context.Context, userID int64, days int) (data *contract.HeatmapData, err error) {
	start := s.clock.Now()
	defer func() {
		observe(ctx, s.observer, "stats_heatmap", start, err, map[string]any{"user_id": userID, "days": days})
	}()

	today := domain.DateOf(start, s.loc)
	from := today.AddDate(0, 0, -(days - 1))

	details, err := s.completions.ListRange(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, d := range details {
		counts[d.CompletedOn.Format(dateLayout)]++
	}

	data = &contract.HeatmapData{Data: make([]contract.HeatmapPoint, 0, days)}
	for day := from; !day.After(today); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		value := counts[key]
		data.Data = append(data.Data, contract.HeatmapPoint{Date: key, Value: value})
		data.MaxValue = max(data.MaxValue, value)
	}
	return data, nil
}

// windowRollup is the shared aggregation behind Weekly and Monthly.
type windowRollup struct {
	energySpent    int
	tasksCompleted int
	avgDailyScore  float64
	avgHealth      float64
	completionRate float64
	activeDays     int
}

func (s *StatsServiceImpl) windowRollup(ctx context.Context, userID int64, from, to time.Time, windowDays int) (*windowRollup, error) {
	details, err := s.completions.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	w := &windowRollup{tasksCompleted: len(details)}
	activeDates := make(map[string]bool)
	for _, d := range details {
		w.energySpent += d.EnergyCost
		activeDates[d.CompletedOn.Format(dateLayout)] = true
	}
	w.activeDays = len(activeDates)

	// Aggregate health as of the window's end date.
	active, err := s.tasks.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	lastDone, err := s.completions.LastDoneBefore(ctx, userID, to)
	if err != nil {
		return nil, err
	}
	states := make([]domain.TaskState, 0, len(active))
	for _, t := range active {
		state := domain.TaskState{
			ID:               t.ID,
			Name:             t.Name,
			EnergyCost:       t.EnergyCost,
			ExpectedInterval: t.ExpectedInterval,
			Importance:       t.Importance,
		}
		if d, ok := lastDone[t.ID]; ok {
			state.LastDone = &d
		}
		states = append(states, state)
	}
	engine.Annotate(states, to)
	w.avgHealth = round1(engine.AggregateHealth(states).Score)

	if expected := len(active) * windowDays; expected > 0 {
		w.completionRate = round2(float64(w.tasksCompleted) / float64(expected))
	}

	logs, err := s.dailyLogs.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if len(logs) > 0 {
		var sum float64
		for _, l := range logs {
			if l.DailyScore != nil {
				sum += *l.DailyScore
			}
		}
		w.avgDailyScore = round1(sum / float64(len(logs)))
	}
	return w, nil
}
