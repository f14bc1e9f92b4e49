// Package chart преобразует временной ряд запросов в чат в координаты
// графика: нормализация min/max, сглаженный путь и подписи оси X.
package chart

import (
	"fmt"
	"sort"
	"strings"

	"corporate-portal-service/internal/domain"
)

// weekdayLabels — сокращения дней недели, индекс соответствует time.Weekday.
var weekdayLabels = [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// monthLabels — краткие русские названия месяцев, индекс time.Month-1.
var monthLabels = [12]string{
	"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
	"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.",
}

// Transform готовит данные графика для заданного периода.
// Ряд сортируется по дате: вызывающая сторона не обязана передавать его
// упорядоченным. Ряд из нуля или одной точки дает пустой путь.
func Transform(series []domain.GraphPoint, period domain.StatsPeriod) *domain.ChartData {
	sorted := make([]domain.GraphPoint, len(series))
	copy(sorted, series)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Day.Before(sorted[j].Day)
	})

	maxValue, minValue := 1.0, 0.0
	sum := 0
	for _, p := range sorted {
		v := float64(p.Count)
		if v > maxValue {
			maxValue = v
		}
		if v < minValue {
			minValue = v
		}
		sum += p.Count
	}

	padding := (maxValue - minValue) * 0.1
	chartMax := maxValue + padding
	chartMin := minValue - padding
	if chartMin < 0 {
		chartMin = 0
	}

	data := &domain.ChartData{
		ChartMin: chartMin,
		ChartMax: chartMax,
	}

	n := len(sorted)
	if n == 0 {
		return data
	}

	data.Average = int(float64(sum)/float64(n) + 0.5)
	data.Points = make([]domain.ChartPoint, n)
	data.XLabels = make([]string, n)
	for i, p := range sorted {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1) * 100
		}
		data.Points[i] = domain.ChartPoint{
			X: x,
			Y: (chartMax - float64(p.Count)) / (chartMax - chartMin) * 100,
		}
		data.XLabels[i] = xLabel(p, period)
	}

	data.Path = smoothPath(data.Points)
	return data
}

// xLabel форматирует подпись точки в зависимости от периода.
func xLabel(p domain.GraphPoint, period domain.StatsPeriod) string {
	switch period {
	case domain.PeriodWeek:
		return weekdayLabels[int(p.Day.Weekday())]
	case domain.PeriodMonth:
		return fmt.Sprintf("%d", p.Day.Day())
	default:
		return fmt.Sprintf("%d %s", p.Day.Day(), monthLabels[int(p.Day.Month())-1])
	}
}

// smoothPath строит кубический путь через точки. Контрольные точки каждого
// сегмента стоят на 30% горизонтального расстояния от его концов на высоте
// соответствующей точки. Сглаживание чисто косметическое.
func smoothPath(points []domain.ChartPoint) string {
	if len(points) < 2 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", coord(points[0].X), coord(points[0].Y))

	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		curr := points[i]

		span := curr.X - prev.X
		cp1x := prev.X + span*0.3
		cp2x := curr.X - span*0.3

		fmt.Fprintf(&b, " C %s %s, %s %s, %s %s",
			coord(cp1x), coord(prev.Y),
			coord(cp2x), coord(curr.Y),
			coord(curr.X), coord(curr.Y))
	}

	return b.String()
}

// coord печатает координату с двумя знаками после запятой.
func coord(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
