package domain

import "context"

// Role — роль пользователя в портале. Определяет видимые вкладки и доступ
// к разделу статистики.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// adminRoleID — числовой код роли администратора в учетной системе.
const adminRoleID = 1

// RoleFromID преобразует числовой код роли в значение Role.
// Код 1 означает администратора, любой другой код — обычного пользователя.
func RoleFromID(roleID int) Role {
	if roleID == adminRoleID {
		return RoleAdmin
	}
	return RoleUser
}

// User представляет профиль сотрудника, привязанный к Telegram ID.
type User struct {
	ID            int64
	TelegramID    string
	RoleID        int
	IsActive      bool
	Name          string
	Surname       string
	Position      string
	Email         string
	WorkPhone     string
	PersonalPhone string
}

// Role возвращает роль, вычисленную из RoleID.
func (u *User) Role() Role {
	return RoleFromID(u.RoleID)
}

// DisplayName возвращает полное имя для сопоставления с исполнителями задач.
func (u *User) DisplayName() string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + u.Surname
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
type UserRepository interface {
	GetByTelegramID(ctx context.Context, telegramID string) (*User, error)
}
