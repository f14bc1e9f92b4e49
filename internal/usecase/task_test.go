package usecase_test

import (
	"context"
	"testing"
	"time"

	"corporate-portal-service/internal/domain"
	"corporate-portal-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func caller() *domain.User {
	return &domain.User{
		ID:         1,
		TelegramID: "764381135",
		RoleID:     1,
		IsActive:   true,
		Name:       "Анна",
		Surname:    "Петрова",
	}
}

func TestTaskUseCase_CreateTask_SelfAssigned(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	taskRepo.On("Create", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)

	task, err := uc.CreateTask(ctx, domain.NewTaskInput{
		Title:        "Подготовить отчет",
		Description:  "Квартальный отчет по продажам",
		Priority:     domain.PriorityHigh,
		AssignToSelf: true,
	}, caller())

	assert.NoError(t, err)
	// Задача на себя сразу в работе
	assert.Equal(t, domain.StatusInProgress, task.Status)
	assert.Equal(t, domain.AssigneeSelf, task.Assignee)
	assert.Equal(t, "764381135", task.CreatorID)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Общее", task.Category)

	// Срок по умолчанию — через неделю, в формате дд.мм.гггг
	due, parseErr := time.Parse("02.01.2006", task.DueDate)
	assert.NoError(t, parseErr)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), due, 48*time.Hour)

	taskRepo.AssertExpectations(t)
}

func TestTaskUseCase_CreateTask_ForTeam(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	taskRepo.On("Create", ctx, mock.AnythingOfType("*domain.Task")).Return(nil)

	task, err := uc.CreateTask(ctx, domain.NewTaskInput{
		Title:        "Обновить CRM",
		Description:  "Аудит контактов",
		AssignToSelf: false,
		Category:     "Администрирование",
	}, caller())

	assert.NoError(t, err)
	// Задача команде ждет исполнителя
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Equal(t, "Команда", task.Assignee)
	// Пустой приоритет превращается в средний
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, "Администрирование", task.Category)
}

func TestTaskUseCase_CreateTask_EmptyTitle(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	_, err := uc.CreateTask(ctx, domain.NewTaskInput{
		Title:       "   ",
		Description: "Описание",
	}, caller())

	assert.ErrorIs(t, err, domain.ErrInvalidTaskTitle)
	taskRepo.AssertNotCalled(t, "Create")
}

func TestTaskUseCase_CreateTask_InvalidPriority(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	_, err := uc.CreateTask(ctx, domain.NewTaskInput{
		Title:       "Задача",
		Description: "Описание",
		Priority:    "urgent",
	}, caller())

	assert.ErrorIs(t, err, domain.ErrInvalidTaskPriority)
}

func TestTaskUseCase_CreateTask_InactiveCaller(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	inactive := caller()
	inactive.IsActive = false

	_, err := uc.CreateTask(ctx, domain.NewTaskInput{
		Title:       "Задача",
		Description: "Описание",
	}, inactive)

	assert.ErrorIs(t, err, domain.ErrUserInactive)
	taskRepo.AssertNotCalled(t, "Create")
}

func TestTaskUseCase_TakeTask_PendingGoesInProgress(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	pending := &domain.Task{ID: "t1", Status: domain.StatusPending, Assignee: "Сергей Иванов"}
	taken := &domain.Task{ID: "t1", Status: domain.StatusInProgress, Assignee: "Сергей Иванов"}

	taskRepo.On("GetByID", ctx, "t1").Return(pending, nil)
	taskRepo.On("UpdateStatus", ctx, "t1", domain.StatusInProgress).Return(taken, nil)

	task, err := uc.TakeTask(ctx, "t1")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, task.Status)
	// Исполнитель не меняется при переходе
	assert.Equal(t, "Сергей Иванов", task.Assignee)
	taskRepo.AssertExpectations(t)
}

func TestTaskUseCase_TakeTask_CompletedIsNoOp(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	completed := &domain.Task{ID: "t1", Status: domain.StatusCompleted}
	taskRepo.On("GetByID", ctx, "t1").Return(completed, nil)

	task, err := uc.TakeTask(ctx, "t1")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, task.Status)
	// Статус не изменился — записи в хранилище нет
	taskRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestTaskUseCase_CompleteTask_InProgressGoesCompleted(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	inProgress := &domain.Task{ID: "t2", Status: domain.StatusInProgress}
	completed := &domain.Task{ID: "t2", Status: domain.StatusCompleted}

	taskRepo.On("GetByID", ctx, "t2").Return(inProgress, nil)
	taskRepo.On("UpdateStatus", ctx, "t2", domain.StatusCompleted).Return(completed, nil)

	task, err := uc.CompleteTask(ctx, "t2")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, task.Status)
}

func TestTaskUseCase_CompleteTask_PendingIsNoOp(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	pending := &domain.Task{ID: "t3", Status: domain.StatusPending}
	taskRepo.On("GetByID", ctx, "t3").Return(pending, nil)

	task, err := uc.CompleteTask(ctx, "t3")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPending, task.Status)
	taskRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestTaskUseCase_TakeTask_NotFound(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	taskRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrTaskNotFound)

	_, err := uc.TakeTask(ctx, "missing")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func sampleTaskList() []*domain.Task {
	return []*domain.Task{
		{ID: "1", Title: "Презентация", Description: "Для клиента", Status: domain.StatusInProgress, Assignee: "Анна Петрова", Category: "Продажи", CreatorID: "764381135"},
		{ID: "2", Title: "База данных", Description: "Аудит CRM", Status: domain.StatusPending, Assignee: "Сергей Иванов", Category: "Администрирование", CreatorID: "111"},
		{ID: "3", Title: "Тестирование", Description: "Модуль аналитики", Status: domain.StatusCompleted, Assignee: "Я", Category: "Разработка", CreatorID: "764381135"},
	}
}

func TestTaskUseCase_ListTasks_StatusTab(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	taskRepo.On("List", ctx).Return(sampleTaskList(), nil)

	tasks, err := uc.ListTasks(ctx, domain.TaskFilter{Status: "pending"}, caller())

	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, "2", tasks[0].ID)
}

func TestTaskUseCase_ListTasks_AllStatusKeepsEverything(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	taskRepo.On("List", ctx).Return(sampleTaskList(), nil)

	tasks, err := uc.ListTasks(ctx, domain.TaskFilter{Status: "all"}, caller())

	assert.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestTaskUseCase_ListTasks_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	_, err := uc.ListTasks(ctx, domain.TaskFilter{Status: "archived"}, caller())

	assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
	taskRepo.AssertNotCalled(t, "List")
}

func TestTaskUseCase_ListTasks_QuerySearchesAllTextFields(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	taskRepo.On("List", ctx).Return(sampleTaskList(), nil)

	tasks, err := uc.ListTasks(ctx, domain.TaskFilter{Query: "иванов"}, caller())

	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, "2", tasks[0].ID)
}

func TestTaskUseCase_ListTasks_AssignmentOnMe(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	taskRepo.On("List", ctx).Return(sampleTaskList(), nil)

	tasks, err := uc.ListTasks(ctx, domain.TaskFilter{Assignment: domain.AssignmentOnMe}, caller())

	assert.NoError(t, err)
	// Маркер "Я" и совпадение с полным именем
	assert.Len(t, tasks, 2)
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "3", tasks[1].ID)
}

func TestTaskUseCase_ListTasks_AssignmentFromMe(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	taskRepo.On("List", ctx).Return(sampleTaskList(), nil)

	tasks, err := uc.ListTasks(ctx, domain.TaskFilter{Assignment: domain.AssignmentFromMe}, caller())

	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, "764381135", task.CreatorID)
	}
}

func TestTaskUseCase_ListTasks_NilCallerSkipsAssignment(t *testing.T) {
	ctx := context.Background()
	taskRepo := &TaskRepository{}
	uc := usecase.NewTaskUseCase(taskRepo)

	taskRepo.On("List", ctx).Return(sampleTaskList(), nil)

	tasks, err := uc.ListTasks(ctx, domain.TaskFilter{Assignment: domain.AssignmentOnMe}, nil)

	assert.NoError(t, err)
	assert.Len(t, tasks, 3)
}
