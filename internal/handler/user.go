package handler

import (
	"net/http"

	"corporate-portal-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы, связанные с профилем пользователя.
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// GetUser обрабатывает запрос профиля по Telegram ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	telegramID := c.Param("telegramId")

	logEntry := h.logRequest(c, "get_user").WithField("telegram_id", telegramID)
	logEntry.Info("Getting user profile")

	user, err := h.userUseCase.GetProfile(c.Request().Context(), telegramID)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get user profile")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("role", user.Role()).Info("User profile retrieved")
	return c.JSON(http.StatusOK, toAPIUser(user))
}

// currentUser возвращает профиль вызывающего по идентификатору из контекста.
// Неизвестный идентификатор не считается ошибкой: вызывающий остается
// анонимным (nil), а проверка прав выполняется на уровне usecase.
func currentUser(c echo.Context, userUseCase domain.UserUseCase) *domain.User {
	user, err := userUseCase.GetProfile(c.Request().Context(), TelegramID(c))
	if err != nil {
		return nil
	}
	return user
}
