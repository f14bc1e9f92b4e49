package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"corporate-portal-service/internal/domain"
)

// StatsRepository реализует domain.StatsRepository поверх журнала запросов
// в чат.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository создает новый экземпляр StatsRepository.
func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &StatsRepository{db: db}
}

// GetSeries возвращает дневной ряд количества запросов и число уникальных
// пользователей за окно [start, end].
func (r *StatsRepository) GetSeries(ctx context.Context, start, end time.Time) (*domain.StatisticsSeries, error) {
	const seriesQuery = `
		SELECT date_trunc('day', created_at) AS day, count(*)
		FROM chat_requests
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY day
		ORDER BY day`

	rows, err := r.db.QueryContext(ctx, seriesQuery, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat request series: %w", err)
	}
	defer rows.Close()

	series := &domain.StatisticsSeries{}
	for rows.Next() {
		var p domain.GraphPoint
		if err := rows.Scan(&p.Day, &p.Count); err != nil {
			return nil, fmt.Errorf("failed to scan series row: %w", err)
		}
		series.GraphInfo = append(series.GraphInfo, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read series rows: %w", err)
	}

	const uniqueQuery = `
		SELECT count(DISTINCT telegram_id)
		FROM chat_requests
		WHERE created_at BETWEEN $1 AND $2`

	if err := r.db.QueryRowContext(ctx, uniqueQuery, start, end).Scan(&series.UniqueUsers); err != nil {
		return nil, fmt.Errorf("failed to count unique users: %w", err)
	}

	return series, nil
}
