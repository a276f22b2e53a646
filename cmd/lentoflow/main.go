package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"lentoflow/internal/cli"
	"lentoflow/internal/config"
	"lentoflow/internal/db"
	"lentoflow/internal/httpapi"
	"lentoflow/internal/logging"
	"lentoflow/internal/repository"
	"lentoflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logging.Init(cfg.LogDir, cfg.Verbose)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	dailyLogs := repository.NewSQLiteDailyLogRepo(database)
	tokens := repository.NewSQLiteTokenRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	clock := service.NewSystemClock()
	observer := service.NewZerologUseCaseObserver(log.Logger)

	server := httpapi.NewServer(
		service.NewTodayService(users, tasks, completions, uow, clock, cfg.Location, observer),
		service.NewTaskService(tasks, completions, clock, cfg.Location, observer),
		service.NewStatsService(tasks, completions, dailyLogs, clock, cfg.Location, observer),
		tokens,
		log.Logger,
	)

	app := &cli.App{
		Cfg:         cfg,
		Database:    database,
		Handler:     server.Handler(),
		Users:       users,
		Tasks:       tasks,
		Completions: completions,
		Tokens:      tokens,
		Clock:       clock,
	}

	return cli.NewRootCmd(app).Execute()
}
