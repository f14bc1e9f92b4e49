package handler

import (
	"net/http"

	"corporate-portal-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// APIHandler объединяет обработчики всех разделов портала.
type APIHandler struct {
	*UserHandler
	*NewsHandler
	*TaskHandler
	*DirectoryHandler
	*StatsHandler
}

// NewAPIHandler создает обработчик портала поверх usecase-слоя.
func NewAPIHandler(
	userUseCase domain.UserUseCase,
	newsUseCase domain.NewsUseCase,
	taskUseCase domain.TaskUseCase,
	directoryUseCase domain.DirectoryUseCase,
	statsUseCase domain.StatsUseCase,
	logger *logrus.Logger,
) *APIHandler {
	return &APIHandler{
		UserHandler:      NewUserHandler(userUseCase, logger),
		NewsHandler:      NewNewsHandler(newsUseCase, logger),
		TaskHandler:      NewTaskHandler(taskUseCase, userUseCase, logger),
		DirectoryHandler: NewDirectoryHandler(directoryUseCase, logger),
		StatsHandler:     NewStatsHandler(statsUseCase, userUseCase, logger),
	}
}

// RegisterRoutes привязывает маршруты /api/v1 к обработчикам.
func (h *APIHandler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.GET("/users/:telegramId", h.GetUser)

	v1.GET("/news", h.GetNews)
	v1.POST("/news/like/:id", h.PostNewsLike)
	v1.POST("/news/dislike/:id", h.PostNewsDislike)

	v1.GET("/tasks", h.GetTasks)
	v1.POST("/tasks", h.PostTasks)
	v1.POST("/tasks/:id/take", h.PostTaskTake)
	v1.POST("/tasks/:id/complete", h.PostTaskComplete)

	v1.GET("/employees", h.GetEmployees)

	v1.GET("/statistics/graph", h.GetStatisticsGraph)
	v1.GET("/statistics/chart", h.GetStatisticsChart)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
