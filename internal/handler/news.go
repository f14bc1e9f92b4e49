package handler

import (
	"context"
	"net/http"
	"strconv"

	"corporate-portal-service/api"
	"corporate-portal-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// NewsHandler обрабатывает HTTP-запросы, связанные с новостями.
type NewsHandler struct {
	*BaseHandler
	newsUseCase domain.NewsUseCase
}

// NewNewsHandler создает новый экземпляр NewsHandler.
func NewNewsHandler(newsUseCase domain.NewsUseCase, logger *logrus.Logger) *NewsHandler {
	return &NewsHandler{
		BaseHandler: NewBaseHandler(logger),
		newsUseCase: newsUseCase,
	}
}

// GetNews обрабатывает запрос страницы новостей с опциональным поиском.
func (h *NewsHandler) GetNews(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	query := c.QueryParam("query")

	logEntry := h.logRequest(c, "get_news").WithFields(logrus.Fields{
		"limit":  limit,
		"offset": offset,
		"query":  query,
	})
	logEntry.Info("Getting news page")

	page, err := h.newsUseCase.ListNews(c.Request().Context(), limit, offset, query)
	if err != nil {
		logEntry.WithError(err).Error("Failed to get news")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("items_count", len(page.Items)).Info("News page retrieved")
	return c.JSON(http.StatusOK, toAPINewsResponse(page))
}

// PostNewsLike обрабатывает лайк новости.
func (h *NewsHandler) PostNewsLike(c echo.Context) error {
	return h.adjustLikes(c, "like_news", h.newsUseCase.Like)
}

// PostNewsDislike обрабатывает снятие лайка новости.
func (h *NewsHandler) PostNewsDislike(c echo.Context) error {
	return h.adjustLikes(c, "dislike_news", h.newsUseCase.Dislike)
}

func (h *NewsHandler) adjustLikes(
	c echo.Context,
	operation string,
	adjust func(ctx context.Context, newsID int64) (int, error),
) error {
	newsID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to parse news id")
		return c.JSON(http.StatusBadRequest, toAPIErrorResponse(domain.ErrorMapping[domain.ErrInvalidNewsID]))
	}

	logEntry := h.logRequest(c, operation).WithField("news_id", newsID)
	logEntry.Info("Adjusting news likes")

	newLikes, err := adjust(c.Request().Context(), newsID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to adjust news likes")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("new_likes", newLikes).Info("News likes adjusted")
	return c.JSON(http.StatusOK, api.LikeResponse{
		NewsId:   newsID,
		NewLikes: newLikes,
	})
}
