package service

import (
	"context"
	"time"

	"github.com/arothstein/ritual/internal/app"
	"github.com/arothstein/ritual/internal/domain"
	"github.com/arothstein/ritual/internal/engine"
	"github.com/arothstein/ritual/internal/repository"
)

type summaryService struct {
	habits repository.HabitRepo
	logs   repository.LogRepo
}

func NewSummaryService(habits repository.HabitRepo, logs repository.LogRepo) SummaryService {
	return &summaryService{habits: habits, logs: logs}
}

func (s *summaryService) Day(ctx context.Context, req app.DayRequest) (*app.DaySummaryResponse, error) {
	// Malformed input is rejected before any entity lookup.
	date, err := app.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	today := resolveToday(req.Now)

	habits, index, err := s.load(ctx, req.UserID, date, date)
	if err != nil {
		return nil, err
	}

	entries := engine.DaySummary(habits, index, date, today)
	resp := &app.DaySummaryResponse{Date: date.Format(domain.DateLayout)}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, app.HabitDayView{
			HabitID:   e.HabitID,
			Name:      e.Name,
			Completed: e.Completed,
			Status:    e.Status,
		})
	}
	return resp, nil
}

func (s *summaryService) Month(ctx context.Context, req app.MonthRequest) (*app.MonthSummaryResponse, error) {
	year, month, err := app.ParseMonth(req.Month)
	if err != nil {
		return nil, err
	}
	today := resolveToday(req.Now)

	first := domain.NewDate(year, month, 1)
	last := first.AddDate(0, 1, -1)
	habits, index, err := s.load(ctx, req.UserID, first, last)
	if err != nil {
		return nil, err
	}

	totals := engine.MonthSummary(habits, index, year, month, today)
	resp := &app.MonthSummaryResponse{
		Month: app.FormatMonth(year, month),
		Days:  make(map[string]app.DayCellView, len(totals)),
	}
	for d, cell := range totals {
		resp.Days[d.Format(domain.DateLayout)] = app.DayCellView{
			Status:    cell.Status,
			Completed: cell.Completed,
			Total:     cell.Total,
		}
	}
	return resp, nil
}

func (s *summaryService) load(ctx context.Context, userID string, from, to time.Time) ([]*domain.Habit, *engine.LogIndex, error) {
	habits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]string, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}
	logs, err := s.logs.ListByHabits(ctx, ids, from, to)
	if err != nil {
		return nil, nil, err
	}
	return habits, engine.NewLogIndex(logs), nil
}

func resolveToday(now *time.Time) time.Time {
	if now != nil {
		return domain.DateOf(*now)
	}
	return domain.DateOf(time.Now())
}
