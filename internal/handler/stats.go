package handler

import (
	"net/http"
	"time"

	"corporate-portal-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы для получения статистики запросов
// в чат. Оба эндпоинта доступны только администраторам.
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
	userUseCase  domain.UserUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler.
func NewStatsHandler(statsUseCase domain.StatsUseCase, userUseCase domain.UserUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
		userUseCase:  userUseCase,
	}
}

// GetStatisticsGraph обрабатывает запрос сырого временного ряда за окно
// [start_date, end_date] в формате ISO-8601.
func (h *StatsHandler) GetStatisticsGraph(c echo.Context) error {
	logEntry := h.logRequest(c, "get_statistics_graph")

	start, err := time.Parse(time.RFC3339, c.QueryParam("start_date"))
	if err != nil {
		logEntry.WithError(err).Warn("Failed to parse start_date")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_DATE", "start_date must be ISO-8601"))
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("end_date"))
	if err != nil {
		logEntry.WithError(err).Warn("Failed to parse end_date")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_DATE", "end_date must be ISO-8601"))
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"start_date": start,
		"end_date":   end,
	})
	logEntry.Info("Getting statistics series")

	caller := currentUser(c, h.userUseCase)
	series, err := h.statsUseCase.GetSeries(c.Request().Context(), caller, start, end)
	if err != nil {
		logEntry.WithError(err).Error("Failed to get statistics series")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithFields(logrus.Fields{
		"points_count": len(series.GraphInfo),
		"unique_users": series.UniqueUsers,
	}).Info("Statistics series retrieved")
	return c.JSON(http.StatusOK, toAPIStatistics(series))
}

// GetStatisticsChart обрабатывает запрос подготовленных данных графика
// за период (week, month, year, all).
func (h *StatsHandler) GetStatisticsChart(c echo.Context) error {
	period := domain.StatsPeriod(c.QueryParam("period"))

	logEntry := h.logRequest(c, "get_statistics_chart").WithField("period", period)
	logEntry.Info("Getting statistics chart")

	caller := currentUser(c, h.userUseCase)
	data, series, err := h.statsUseCase.GetChart(c.Request().Context(), caller, period, time.Now())
	if err != nil {
		logEntry.WithError(err).Error("Failed to get statistics chart")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("points_count", len(data.Points)).Info("Statistics chart retrieved")
	return c.JSON(http.StatusOK, toAPIChart(data, series))
}
