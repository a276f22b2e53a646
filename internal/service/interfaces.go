package service

import (
	"context"

	"lentoflow/internal/contract"
	"lentoflow/internal/repository"
)

// TodayService composes the daily snapshot and gates completion mutations.
type TodayService interface {
	View(ctx context.Context, userID int64) (*contract.TodayView, error)
	Complete(ctx context.Context, userID, taskID int64, req contract.CompleteTaskRequest) (*contract.CompletionReceipt, error)
	Uncomplete(ctx context.Context, userID, taskID int64) error
}

// TaskService owns task CRUD and per-task statistics.
type TaskService interface {
	Create(ctx context.Context, userID int64, req contract.TaskCreate) (*contract.TaskResponse, error)
	Get(ctx context.Context, userID, taskID int64) (*contract.TaskResponse, error)
	List(ctx context.Context, userID int64, filter repository.TaskFilter) ([]contract.TaskResponse, error)
	Update(ctx context.Context, userID, taskID int64, req contract.TaskUpdate) (*contract.TaskResponse, error)
	Delete(ctx context.Context, userID, taskID int64) error
	Stats(ctx context.Context, userID, taskID int64) (*contract.TaskStats, error)
}

// StatsService serves the history rollups.
type StatsService interface {
	Daily(ctx context.Context, userID int64, days int) ([]contract.DailyStats, error)
	Weekly(ctx context.Context, userID int64, weeks int) ([]contract.WeeklyStats, error)
	Monthly(ctx context.Context, userID int64, months int) ([]contract.MonthlyStats, error)
	Heatmap(ctx context.Context, userID int64, days int) (*contract.HeatmapData, error)
}
