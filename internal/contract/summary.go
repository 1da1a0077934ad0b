// Package contract exposes the request/response types consumed by front
// ends, aliased from the app package so callers never import internals.
package contract

import "github.com/arothstein/ritual/internal/app"

type DayRequest = app.DayRequest

type MonthRequest = app.MonthRequest

type HabitDayView = app.HabitDayView

type DaySummaryResponse = app.DaySummaryResponse

type DayCellView = app.DayCellView

type MonthSummaryResponse = app.MonthSummaryResponse
