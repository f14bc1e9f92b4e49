package handler

import (
	"context"
	"net/http"

	"corporate-portal-service/api"
	"corporate-portal-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TaskHandler обрабатывает HTTP-запросы, связанные с задачами.
type TaskHandler struct {
	*BaseHandler
	taskUseCase domain.TaskUseCase
	userUseCase domain.UserUseCase
}

// NewTaskHandler создает новый экземпляр TaskHandler.
func NewTaskHandler(taskUseCase domain.TaskUseCase, userUseCase domain.UserUseCase, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{
		BaseHandler: NewBaseHandler(logger),
		taskUseCase: taskUseCase,
		userUseCase: userUseCase,
	}
}

// GetTasks обрабатывает запрос отфильтрованного списка задач.
func (h *TaskHandler) GetTasks(c echo.Context) error {
	filter := domain.TaskFilter{
		Query:      c.QueryParam("query"),
		Status:     c.QueryParam("status"),
		Assignment: domain.AssignmentFilter(c.QueryParam("assignment")),
	}

	logEntry := h.logRequest(c, "get_tasks").WithFields(logrus.Fields{
		"query":      filter.Query,
		"status":     filter.Status,
		"assignment": filter.Assignment,
	})
	logEntry.Info("Getting task list")

	caller := currentUser(c, h.userUseCase)
	tasks, err := h.taskUseCase.ListTasks(c.Request().Context(), filter, caller)
	if err != nil {
		logEntry.WithError(err).Error("Failed to get tasks")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("tasks_count", len(tasks)).Info("Task list retrieved")
	return c.JSON(http.StatusOK, api.TaskListResponse{
		Tasks: toAPITasks(tasks),
		Total: len(tasks),
	})
}

// PostTasks обрабатывает создание задачи.
func (h *TaskHandler) PostTasks(c echo.Context) error {
	var req api.PostTasksJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create task request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_task").WithFields(logrus.Fields{
		"title":          req.Title,
		"priority":       req.Priority,
		"assign_to_self": req.AssignToSelf,
	})
	logEntry.Info("Creating task")

	input := domain.NewTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     domain.Priority(req.Priority),
		AssignToSelf: req.AssignToSelf,
		Category:     req.Category,
	}

	caller := currentUser(c, h.userUseCase)
	task, err := h.taskUseCase.CreateTask(c.Request().Context(), input, caller)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create task")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithFields(logrus.Fields{
		"task_id": task.ID,
		"status":  task.Status,
	}).Info("Task created")
	return c.JSON(http.StatusCreated, toAPITask(task))
}

// PostTaskTake обрабатывает действие "взять в работу".
func (h *TaskHandler) PostTaskTake(c echo.Context) error {
	return h.applyTrigger(c, "take_task", h.taskUseCase.TakeTask)
}

// PostTaskComplete обрабатывает действие "завершить".
func (h *TaskHandler) PostTaskComplete(c echo.Context) error {
	return h.applyTrigger(c, "complete_task", h.taskUseCase.CompleteTask)
}

func (h *TaskHandler) applyTrigger(
	c echo.Context,
	operation string,
	apply func(ctx context.Context, taskID string) (*domain.Task, error),
) error {
	taskID := c.Param("id")

	logEntry := h.logRequest(c, operation).WithField("task_id", taskID)
	logEntry.Info("Applying task trigger")

	task, err := apply(c.Request().Context(), taskID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to apply task trigger")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("status", task.Status).Info("Task trigger applied")
	return c.JSON(http.StatusOK, toAPITask(task))
}
