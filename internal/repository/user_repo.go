package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"corporate-portal-service/internal/domain"
)

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// GetByTelegramID возвращает профиль пользователя по Telegram ID.
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID string) (*domain.User, error) {
	const query = `
		SELECT id, telegram_id, role_id, is_active, name, surname,
		       position, email, work_phone, personal_phone
		FROM users
		WHERE telegram_id = $1`

	var u domain.User
	err := r.db.QueryRowContext(ctx, query, telegramID).Scan(
		&u.ID, &u.TelegramID, &u.RoleID, &u.IsActive, &u.Name, &u.Surname,
		&u.Position, &u.Email, &u.WorkPhone, &u.PersonalPhone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
