package handler_test

import (
	"context"
	"time"

	"corporate-portal-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Моки usecase-слоя для тестов HTTP-обработчиков.

type UserUseCase struct {
	mock.Mock
}

func (m *UserUseCase) GetProfile(ctx context.Context, telegramID string) (*domain.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type NewsUseCase struct {
	mock.Mock
}

func (m *NewsUseCase) ListNews(ctx context.Context, limit, offset int, query string) (*domain.NewsPage, error) {
	args := m.Called(ctx, limit, offset, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsPage), args.Error(1)
}

func (m *NewsUseCase) Like(ctx context.Context, newsID int64) (int, error) {
	args := m.Called(ctx, newsID)
	return args.Int(0), args.Error(1)
}

func (m *NewsUseCase) Dislike(ctx context.Context, newsID int64) (int, error) {
	args := m.Called(ctx, newsID)
	return args.Int(0), args.Error(1)
}

type TaskUseCase struct {
	mock.Mock
}

func (m *TaskUseCase) ListTasks(ctx context.Context, filter domain.TaskFilter, caller *domain.User) ([]*domain.Task, error) {
	args := m.Called(ctx, filter, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *TaskUseCase) CreateTask(ctx context.Context, input domain.NewTaskInput, caller *domain.User) (*domain.Task, error) {
	args := m.Called(ctx, input, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *TaskUseCase) TakeTask(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *TaskUseCase) CompleteTask(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

type DirectoryUseCase struct {
	mock.Mock
}

func (m *DirectoryUseCase) SearchDepartments(ctx context.Context, query string) ([]*domain.Department, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Department), args.Error(1)
}

type StatsUseCase struct {
	mock.Mock
}

func (m *StatsUseCase) GetSeries(ctx context.Context, caller *domain.User, start, end time.Time) (*domain.StatisticsSeries, error) {
	args := m.Called(ctx, caller, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatisticsSeries), args.Error(1)
}

func (m *StatsUseCase) GetChart(ctx context.Context, caller *domain.User, period domain.StatsPeriod, now time.Time) (*domain.ChartData, *domain.StatisticsSeries, error) {
	args := m.Called(ctx, caller, period, now)
	var data *domain.ChartData
	if args.Get(0) != nil {
		data = args.Get(0).(*domain.ChartData)
	}
	var series *domain.StatisticsSeries
	if args.Get(1) != nil {
		series = args.Get(1).(*domain.StatisticsSeries)
	}
	return data, series, args.Error(2)
}
