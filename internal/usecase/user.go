package usecase

import (
	"context"

	"corporate-portal-service/internal/domain"
)

// UserUseCase реализует бизнес-логику для работы с профилем пользователя.
type UserUseCase struct {
	userRepo domain.UserRepository
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo domain.UserRepository) domain.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// GetProfile возвращает профиль пользователя по Telegram ID.
// Роль вычисляется из role_id на стороне домена.
func (uc *UserUseCase) GetProfile(ctx context.Context, telegramID string) (*domain.User, error) {
	if telegramID == "" {
		return nil, domain.ErrUserNotFound
	}

	return uc.userRepo.GetByTelegramID(ctx, telegramID)
}
