package usecase_test

import (
	"context"
	"time"

	"corporate-portal-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Моки репозиториев для unit-тестов usecase-слоя.

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByTelegramID(ctx context.Context, telegramID string) (*domain.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type NewsRepository struct {
	mock.Mock
}

func (m *NewsRepository) List(ctx context.Context, limit, offset int) (*domain.NewsPage, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsPage), args.Error(1)
}

func (m *NewsRepository) AdjustLikes(ctx context.Context, newsID int64, delta int) (int, error) {
	args := m.Called(ctx, newsID, delta)
	return args.Int(0), args.Error(1)
}

type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *TaskRepository) UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	args := m.Called(ctx, taskID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) GetSeries(ctx context.Context, start, end time.Time) (*domain.StatisticsSeries, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatisticsSeries), args.Error(1)
}

type DirectoryRepository struct {
	mock.Mock
}

func (m *DirectoryRepository) Departments(ctx context.Context) ([]*domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Department), args.Error(1)
}
