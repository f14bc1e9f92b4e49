package usecase

import (
	"context"
	"time"

	"corporate-portal-service/internal/chart"
	"corporate-portal-service/internal/domain"
)

// StatsUseCase реализует бизнес-логику для работы со статистикой запросов
// в чат. Раздел доступен только администраторам.
type StatsUseCase struct {
	statsRepo domain.StatsRepository
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
func NewStatsUseCase(statsRepo domain.StatsRepository) domain.StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
	}
}

// GetSeries возвращает сырой временной ряд за окно [start, end].
func (uc *StatsUseCase) GetSeries(ctx context.Context, caller *domain.User, start, end time.Time) (*domain.StatisticsSeries, error) {
	// 1. Роль: статистика только для администраторов
	if caller == nil || caller.Role() != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	// 2. Валидация окна
	if end.Before(start) {
		return nil, domain.ErrInvalidDateRange
	}

	return uc.statsRepo.GetSeries(ctx, start, end)
}

// GetChart возвращает подготовленные данные графика за период,
// отсчитанный назад от now.
func (uc *StatsUseCase) GetChart(ctx context.Context, caller *domain.User, period domain.StatsPeriod, now time.Time) (*domain.ChartData, *domain.StatisticsSeries, error) {
	// 1. Валидация периода
	if period.Days() == 0 {
		return nil, nil, domain.ErrInvalidPeriod
	}

	// 2. Границы окна: конец — последняя секунда сегодняшнего дня,
	// начало — полночь за Days() дней до него.
	start, end := PeriodRange(period, now)

	series, err := uc.GetSeries(ctx, caller, start, end)
	if err != nil {
		return nil, nil, err
	}

	// 3. Преобразование ряда в координаты графика
	return chart.Transform(series.GraphInfo, period), series, nil
}

// PeriodRange возвращает границы окна выборки для периода.
func PeriodRange(period domain.StatsPeriod, now time.Time) (start, end time.Time) {
	year, month, day := now.Date()
	end = time.Date(year, month, day, 23, 59, 59, 0, now.Location())

	start = now.AddDate(0, 0, -period.Days())
	year, month, day = start.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	return start, end
}
