package handler

import (
	"net/http"

	"corporate-portal-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// DirectoryHandler обрабатывает HTTP-запросы, связанные с оргструктурой.
type DirectoryHandler struct {
	*BaseHandler
	directoryUseCase domain.DirectoryUseCase
}

// NewDirectoryHandler создает новый экземпляр DirectoryHandler.
func NewDirectoryHandler(directoryUseCase domain.DirectoryUseCase, logger *logrus.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		BaseHandler:      NewBaseHandler(logger),
		directoryUseCase: directoryUseCase,
	}
}

// GetEmployees обрабатывает запрос дерева отделов с поиском по сотрудникам.
func (h *DirectoryHandler) GetEmployees(c echo.Context) error {
	query := c.QueryParam("query")

	logEntry := h.logRequest(c, "get_employees").WithField("query", query)
	logEntry.Info("Searching departments")

	departments, err := h.directoryUseCase.SearchDepartments(c.Request().Context(), query)
	if err != nil {
		logEntry.WithError(err).Error("Failed to search departments")
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("departments_count", len(departments)).Info("Departments retrieved")
	return c.JSON(http.StatusOK, toAPIDepartments(departments))
}
