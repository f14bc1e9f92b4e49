package domain

import "context"

// TaskStatus — статус жизненного цикла задачи.
// Переходы только вперед: pending → in-progress → completed.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// TaskTrigger — действие пользователя над задачей.
type TaskTrigger string

const (
	TriggerTake     TaskTrigger = "take"
	TriggerComplete TaskTrigger = "complete"
)

// Priority — приоритет задачи.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// AssigneeSelf — маркер "назначено на текущего пользователя".
const AssigneeSelf = "Я"

// Task представляет задачу сотрудника.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	DueDate     string
	Assignee    string
	Category    string
	CreatorID   string
}

// Transition возвращает статус после применения триггера.
// Недопустимый триггер — no-op: возвращается текущий статус.
func Transition(status TaskStatus, trigger TaskTrigger) TaskStatus {
	switch {
	case status == StatusPending && trigger == TriggerTake:
		return StatusInProgress
	case status == StatusInProgress && trigger == TriggerComplete:
		return StatusCompleted
	default:
		return status
	}
}

// ValidStatus проверяет, что значение входит в перечисление статусов.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ValidPriority проверяет, что значение входит в перечисление приоритетов.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TaskRepository определяет контракт для работы с хранилищем задач.
type TaskRepository interface {
	List(ctx context.Context) ([]*Task, error)
	GetByID(ctx context.Context, taskID string) (*Task, error)
	Create(ctx context.Context, task *Task) error
	UpdateStatus(ctx context.Context, taskID string, status TaskStatus) (*Task, error)
}
