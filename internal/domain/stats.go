package domain

import (
	"context"
	"time"
)

// GraphPoint — количество запросов в чат за один день.
type GraphPoint struct {
	Day   time.Time
	Count int
}

// StatisticsSeries — временной ряд за запрошенный период плюс число
// уникальных пользователей в нем.
type StatisticsSeries struct {
	GraphInfo   []GraphPoint
	UniqueUsers int
}

// StatsRepository определяет контракт для работы со статистикой запросов.
type StatsRepository interface {
	GetSeries(ctx context.Context, start, end time.Time) (*StatisticsSeries, error)
}
