package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name     string
	Duration time.Duration
	Success  bool
	Err      error
	Fields   map[string]any
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type zerologUseCaseObserver struct {
	logger zerolog.Logger
}

// NewZerologUseCaseObserver writes service use-case events to the given logger.
func NewZerologUseCaseObserver(logger zerolog.Logger) UseCaseObserver {
	return &zerologUseCaseObserver{logger: logger}
}

func (o *zerologUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	evt := o.logger.Info()
	if event.Err != nil {
		evt = o.logger.Error().Err(event.Err)
	}
	evt = evt.
		Str("use_case", event.Name).
		Int64("duration_ms", event.Duration.Milliseconds()).
		Bool("success", event.Success)
	for k, v := range event.Fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg("service_use_case")
}

// observe reports one use-case execution to obs, timing it from start.
func observe(ctx context.Context, obs UseCaseObserver, name string, start time.Time, err error, fields map[string]any) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:     name,
		Duration: time.Since(start),
		Success:  err == nil,
		Err:      err,
		Fields:   fields,
	})
}
