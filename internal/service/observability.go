package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/nholm/sundial/internal/contract"
)

// UseCaseEvent captures lightweight execution telemetry for a service
// use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to the provided
// writer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "service_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "service_use_case", attrs...)
}

// ObservedTodayService wraps a TodayService with use-case telemetry.
func ObservedTodayService(inner TodayService, observer UseCaseObserver) TodayService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &observedToday{inner: inner, observer: observer}
}

type observedToday struct {
	inner    TodayService
	observer UseCaseObserver
}

func (s *observedToday) Today(ctx context.Context, req contract.TodayRequest) (*contract.TodayResponse, error) {
	start := time.Now()
	resp, err := s.inner.Today(ctx, req)
	fields := map[string]any{}
	if resp != nil {
		fields["due_habits"] = len(resp.Habits)
		fields["due_routines"] = len(resp.Routines)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "today",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
	return resp, err
}

// ObservedSuggestService wraps a SuggestService with use-case telemetry.
func ObservedSuggestService(inner SuggestService, observer UseCaseObserver) SuggestService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &observedSuggest{inner: inner, observer: observer}
}

type observedSuggest struct {
	inner    SuggestService
	observer UseCaseObserver
}

func (s *observedSuggest) Suggest(ctx context.Context, req contract.SuggestRequest) (*contract.SuggestResponse, error) {
	start := time.Now()
	resp, err := s.inner.Suggest(ctx, req)
	fields := map[string]any{}
	if resp != nil {
		fields["considered"] = resp.Considered
		fields["suggested"] = len(resp.Suggestions)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "suggest",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
	return resp, err
}
