package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// telegramIDKey — ключ echo-контекста с идентификатором вызывающего.
const telegramIDKey = "telegram_id"

// TelegramIDHeader — заголовок, в котором мини-приложение передает
// идентификатор пользователя Telegram.
const TelegramIDHeader = "X-Telegram-Id"

// LoggingMiddleware добавляет структурированное логирование
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Выполняем запрос
			err := next(c)

			// Логируем детали запроса
			latency := time.Since(start)
			status := c.Response().Status

			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"status":     status,
				"latency":    latency,
				"user_agent": c.Request().UserAgent(),
				"ip":         c.RealIP(),
			})

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			if status >= 500 {
				entry.Error("Server error")
			} else if status >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}

// IdentityMiddleware кладет в контекст Telegram ID вызывающего.
// Отсутствие заголовка не фатально: подставляется идентификатор
// режима разработки.
func IdentityMiddleware(devTelegramID string, logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			telegramID := c.Request().Header.Get(TelegramIDHeader)
			if telegramID == "" {
				logger.WithField("path", c.Request().URL.Path).
					Debug("No telegram id header, using dev fallback")
				telegramID = devTelegramID
			}

			c.Set(telegramIDKey, telegramID)
			return next(c)
		}
	}
}

// TelegramID возвращает идентификатор вызывающего из контекста запроса.
func TelegramID(c echo.Context) string {
	id, _ := c.Get(telegramIDKey).(string)
	return id
}
