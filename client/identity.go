package client

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// DevTelegramID — фиксированный идентификатор режима разработки.
// Используется, когда host-окружение не передало init data или данные
// не разбираются.
const DevTelegramID = "764381135"

// initDataUser — поле user внутри Telegram WebApp init data.
type initDataUser struct {
	ID int64 `json:"id"`
}

// ResolveTelegramID извлекает идентификатор пользователя из строки
// Telegram WebApp init data (urlencoded-пары, поле user содержит JSON).
// Пустая или некорректная строка дает идентификатор разработки.
func ResolveTelegramID(initData string) string {
	if initData == "" {
		return DevTelegramID
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return DevTelegramID
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		return DevTelegramID
	}

	var user initDataUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil || user.ID == 0 {
		return DevTelegramID
	}

	return strconv.FormatInt(user.ID, 10)
}
