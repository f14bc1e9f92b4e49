package chart_test

import (
	"testing"
	"time"

	"corporate-portal-service/internal/chart"
	"corporate-portal-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func day(offset int) time.Time {
	// Понедельник 5 февраля 2024
	base := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func series(counts ...int) []domain.GraphPoint {
	points := make([]domain.GraphPoint, len(counts))
	for i, c := range counts {
		points[i] = domain.GraphPoint{Day: day(i), Count: c}
	}
	return points
}

func TestTransform_EmptySeries(t *testing.T) {
	data := chart.Transform(nil, domain.PeriodWeek)

	assert.Empty(t, data.Path)
	assert.Empty(t, data.Points)
	assert.Empty(t, data.XLabels)
	assert.Equal(t, 0, data.Average)
	assert.Equal(t, 0.0, data.ChartMin)
	assert.InDelta(t, 1.1, data.ChartMax, 1e-9)
}

func TestTransform_SinglePointDoesNotPanic(t *testing.T) {
	data := chart.Transform(series(5), domain.PeriodWeek)

	assert.Empty(t, data.Path)
	assert.Len(t, data.Points, 1)
	assert.Equal(t, 0.0, data.Points[0].X)
	assert.Equal(t, 5, data.Average)
}

func TestTransform_AverageIsRounded(t *testing.T) {
	data := chart.Transform(series(10, 20, 30), domain.PeriodWeek)

	assert.Equal(t, 20, data.Average)
}

func TestTransform_BoundsContainAllValues(t *testing.T) {
	counts := []int{3, 18, 7, 12, 1}
	data := chart.Transform(series(counts...), domain.PeriodMonth)

	for _, c := range counts {
		v := float64(c)
		assert.LessOrEqual(t, data.ChartMin, v)
		assert.GreaterOrEqual(t, data.ChartMax, v)
	}
	// Все точки в единичном квадрате
	for _, p := range data.Points {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 100.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 100.0)
	}
}

func TestTransform_PaddingClampsAtZero(t *testing.T) {
	data := chart.Transform(series(0, 10), domain.PeriodWeek)

	// Нижняя граница не уходит в минус
	assert.Equal(t, 0.0, data.ChartMin)
	assert.InDelta(t, 11.0, data.ChartMax, 1e-9)
}

func TestTransform_YAxisIsInverted(t *testing.T) {
	data := chart.Transform(series(1, 100), domain.PeriodWeek)

	// Большее значение рисуется выше, то есть с меньшим y
	assert.Less(t, data.Points[1].Y, data.Points[0].Y)
}

func TestTransform_SortsUnorderedInput(t *testing.T) {
	unordered := []domain.GraphPoint{
		{Day: day(2), Count: 30},
		{Day: day(0), Count: 10},
		{Day: day(1), Count: 20},
	}

	data := chart.Transform(unordered, domain.PeriodMonth)

	// После сортировки значения идут 10, 20, 30: y строго убывает
	assert.Greater(t, data.Points[0].Y, data.Points[1].Y)
	assert.Greater(t, data.Points[1].Y, data.Points[2].Y)
	// Подписи дней месяца в хронологическом порядке
	assert.Equal(t, []string{"5", "6", "7"}, data.XLabels)
	// Исходный срез не переупорядочен
	assert.Equal(t, 30, unordered[0].Count)
}

func TestTransform_WeekLabelsAreWeekdays(t *testing.T) {
	data := chart.Transform(series(1, 2, 3), domain.PeriodWeek)

	// 5 февраля 2024 — понедельник
	assert.Equal(t, []string{"Пн", "Вт", "Ср"}, data.XLabels)
}

func TestTransform_YearLabelsUseShortMonth(t *testing.T) {
	data := chart.Transform(series(1, 2), domain.PeriodYear)

	assert.Equal(t, []string{"5 февр.", "6 февр."}, data.XLabels)
}

func TestTransform_PathStartsWithMoveTo(t *testing.T) {
	data := chart.Transform(series(4, 8, 2), domain.PeriodWeek)

	assert.Regexp(t, `^M `, data.Path)
	assert.Contains(t, data.Path, " C ")
}
