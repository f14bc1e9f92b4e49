package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"corporate-portal-service/internal/domain"
	"corporate-portal-service/internal/filter"
)

const (
	defaultTaskCategory = "Общее"
	defaultDueDateDays  = 7
	dueDateLayout       = "02.01.2006"

	// assigneeTeam — исполнитель задачи, поставленной не на себя.
	assigneeTeam = "Команда"
)

// TaskUseCase реализует бизнес-логику для работы с задачами.
type TaskUseCase struct {
	taskRepo domain.TaskRepository
	now      func() time.Time
}

// NewTaskUseCase создает новый экземпляр TaskUseCase.
func NewTaskUseCase(taskRepo domain.TaskRepository) domain.TaskUseCase {
	return &TaskUseCase{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

// ListTasks возвращает задачи, прошедшие поиск, фильтр по статусу и фильтр
// по принадлежности текущему пользователю.
func (uc *TaskUseCase) ListTasks(ctx context.Context, f domain.TaskFilter, caller *domain.User) ([]*domain.Task, error) {
	// 1. Валидация фильтра по статусу
	if f.Status != "" && f.Status != "all" && !domain.ValidStatus(domain.TaskStatus(f.Status)) {
		return nil, domain.ErrInvalidTaskStatus
	}

	tasks, err := uc.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Поиск по тексту
	tasks = filter.Tasks(f.Query, tasks)

	// 3. Вкладка статуса
	if f.Status != "" && f.Status != "all" {
		filtered := make([]*domain.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.Status == domain.TaskStatus(f.Status) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	// 4. Принадлежность текущему пользователю
	return filterAssignment(tasks, f.Assignment, caller), nil
}

// filterAssignment сужает список по владению: "от меня" — задачи, созданные
// пользователем, "на мне" — задачи, исполнителем которых он является
// (маркер "Я" либо совпадение с полным именем).
func filterAssignment(tasks []*domain.Task, assignment domain.AssignmentFilter, caller *domain.User) []*domain.Task {
	if assignment == "" || assignment == domain.AssignmentAll || caller == nil {
		return tasks
	}

	filtered := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		switch assignment {
		case domain.AssignmentFromMe:
			if t.CreatorID == caller.TelegramID {
				filtered = append(filtered, t)
			}
		case domain.AssignmentOnMe:
			if t.Assignee == domain.AssigneeSelf || t.Assignee == caller.DisplayName() {
				filtered = append(filtered, t)
			}
		}
	}
	return filtered
}

// CreateTask создает задачу. Задача на себя сразу берется в работу,
// задача команде ожидает исполнителя.
func (uc *TaskUseCase) CreateTask(ctx context.Context, input domain.NewTaskInput, caller *domain.User) (*domain.Task, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domain.ErrInvalidTaskTitle
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(input.Priority) {
		return nil, domain.ErrInvalidTaskPriority
	}

	// 2. Деактивированный пользователь не ставит задачи
	if caller != nil && !caller.IsActive {
		return nil, domain.ErrUserInactive
	}

	// 3. Стартовый статус и исполнитель зависят от типа назначения
	status := domain.StatusPending
	assignee := assigneeTeam
	if input.AssignToSelf {
		status = domain.StatusInProgress
		assignee = domain.AssigneeSelf
	}

	category := input.Category
	if category == "" {
		category = defaultTaskCategory
	}

	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    input.Priority,
		DueDate:     uc.now().AddDate(0, 0, defaultDueDateDays).Format(dueDateLayout),
		Assignee:    assignee,
		Category:    category,
	}
	if caller != nil {
		task.CreatorID = caller.TelegramID
	}

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// TakeTask переводит задачу из ожидания в работу. Для задач в других
// статусах действие — no-op: задача возвращается без изменений.
func (uc *TaskUseCase) TakeTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return uc.applyTrigger(ctx, taskID, domain.TriggerTake)
}

// CompleteTask завершает задачу, находящуюся в работе. Для задач в других
// статусах действие — no-op.
func (uc *TaskUseCase) CompleteTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return uc.applyTrigger(ctx, taskID, domain.TriggerComplete)
}

func (uc *TaskUseCase) applyTrigger(ctx context.Context, taskID string, trigger domain.TaskTrigger) (*domain.Task, error) {
	// 1. Получаем задачу и проверяем существование
	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	// 2. Таблица переходов решает, меняется ли статус
	next := domain.Transition(task.Status, trigger)
	if next == task.Status {
		return task, nil
	}

	return uc.taskRepo.UpdateStatus(ctx, taskID, next)
}
