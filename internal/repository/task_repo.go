package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"corporate-portal-service/internal/domain"
)

// TaskRepository реализует взаимодействие с данными задач в PostgreSQL.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository создает новый экземпляр TaskRepository.
func NewTaskRepository(db *sql.DB) domain.TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, title, description, status, priority, due_date, assignee, category, creator_id`

func scanTask(row interface{ Scan(...any) error }) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.DueDate, &t.Assignee, &t.Category, &t.CreatorID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List возвращает все задачи от новых к старым.
func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks ORDER BY created_at DESC`, taskColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task rows: %w", err)
	}

	return tasks, nil
}

// GetByID возвращает задачу по идентификатору.
func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// Create сохраняет новую задачу.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	const query = `
		INSERT INTO tasks (id, title, description, status, priority, due_date, assignee, category, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.Priority,
		task.DueDate, task.Assignee, task.Category, task.CreatorID)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// UpdateStatus устанавливает статус задачи и возвращает обновленную запись.
func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks SET status = $2 WHERE id = $1
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, taskID, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return t, nil
}
