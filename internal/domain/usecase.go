package domain

import (
	"context"
	"time"
)

// AssignmentFilter — фильтр задач по принадлежности текущему пользователю.
type AssignmentFilter string

const (
	AssignmentAll    AssignmentFilter = "all"
	AssignmentFromMe AssignmentFilter = "fromMe"
	AssignmentOnMe   AssignmentFilter = "onMe"
)

// TaskFilter — параметры выборки задач. Status равный "all" или пустой
// строке означает все статусы.
type TaskFilter struct {
	Query      string
	Status     string
	Assignment AssignmentFilter
}

// NewTaskInput — данные для создания задачи.
type NewTaskInput struct {
	Title        string
	Description  string
	Priority     Priority
	AssignToSelf bool
	Category     string
}

// StatsPeriod — период выборки статистики.
type StatsPeriod string

const (
	PeriodWeek  StatsPeriod = "week"
	PeriodMonth StatsPeriod = "month"
	PeriodYear  StatsPeriod = "year"
	PeriodAll   StatsPeriod = "all"
)

// Days возвращает длину периода в днях.
func (p StatsPeriod) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	case PeriodAll:
		return 365 * 2
	}
	return 0
}

// ChartPoint — точка графика в единичном квадрате 0..100.
type ChartPoint struct {
	X float64
	Y float64
}

// ChartData — подготовленные данные графика запросов в чат.
type ChartData struct {
	Points   []ChartPoint
	Path     string
	XLabels  []string
	ChartMin float64
	ChartMax float64
	Average  int
}

// UserUseCase определяет бизнес-логику для работы с профилем пользователя.
type UserUseCase interface {
	GetProfile(ctx context.Context, telegramID string) (*User, error)
}

// NewsUseCase определяет бизнес-логику для работы с новостями.
type NewsUseCase interface {
	ListNews(ctx context.Context, limit, offset int, query string) (*NewsPage, error)
	Like(ctx context.Context, newsID int64) (int, error)
	Dislike(ctx context.Context, newsID int64) (int, error)
}

// TaskUseCase определяет бизнес-логику для работы с задачами.
type TaskUseCase interface {
	ListTasks(ctx context.Context, filter TaskFilter, caller *User) ([]*Task, error)
	CreateTask(ctx context.Context, input NewTaskInput, caller *User) (*Task, error)
	TakeTask(ctx context.Context, taskID string) (*Task, error)
	CompleteTask(ctx context.Context, taskID string) (*Task, error)
}

// DirectoryUseCase определяет бизнес-логику для работы с оргструктурой.
type DirectoryUseCase interface {
	SearchDepartments(ctx context.Context, query string) ([]*Department, error)
}

// StatsUseCase определяет бизнес-логику для работы со статистикой.
type StatsUseCase interface {
	GetSeries(ctx context.Context, caller *User, start, end time.Time) (*StatisticsSeries, error)
	GetChart(ctx context.Context, caller *User, period StatsPeriod, now time.Time) (*ChartData, *StatisticsSeries, error)
}
