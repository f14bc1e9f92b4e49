package usecase_test

import (
	"context"
	"testing"

	"corporate-portal-service/internal/domain"
	"corporate-portal-service/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestUserUseCase_GetProfile(t *testing.T) {
	ctx := context.Background()
	userRepo := &UserRepository{}
	uc := usecase.NewUserUseCase(userRepo)

	expected := &domain.User{
		ID:         1,
		TelegramID: "764381135",
		Name:       "Анна",
		Surname:    "Петрова",
		RoleID:     1,
		IsActive:   true,
	}
	userRepo.On("GetByTelegramID", ctx, "764381135").Return(expected, nil)

	user, err := uc.GetProfile(ctx, "764381135")

	assert.NoError(t, err)
	assert.Equal(t, expected, user)
	assert.Equal(t, domain.RoleAdmin, user.Role())
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_GetProfile_EmptyID(t *testing.T) {
	ctx := context.Background()
	userRepo := &UserRepository{}
	uc := usecase.NewUserUseCase(userRepo)

	_, err := uc.GetProfile(ctx, "")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	userRepo.AssertNotCalled(t, "GetByTelegramID")
}

func TestUserUseCase_GetProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := &UserRepository{}
	uc := usecase.NewUserUseCase(userRepo)

	userRepo.On("GetByTelegramID", ctx, "999").Return(nil, domain.ErrUserNotFound)

	_, err := uc.GetProfile(ctx, "999")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
