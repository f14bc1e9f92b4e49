package usecase_test

import (
	"context"
	"errors"
	"testing"

	"corporate-portal-service/internal/repository"
	"corporate-portal-service/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryUseCase_SearchDepartments_EmptyQuery(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDirectoryUseCase(repository.NewDirectoryRepository())

	departments, err := uc.SearchDepartments(ctx, "")

	assert.NoError(t, err)
	assert.Len(t, departments, 4)
	assert.Equal(t, "b2c", departments[0].ID)
	assert.Equal(t, "cfu-it", departments[3].ID)
}

func TestDirectoryUseCase_SearchDepartments_ByLastName(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDirectoryUseCase(repository.NewDirectoryRepository())

	departments, err := uc.SearchDepartments(ctx, "Иванов")

	assert.NoError(t, err)
	// Фамилия встречается у директора B2C и менеджера в BFU Продажи
	assert.Len(t, departments, 1)
	b2c := departments[0]
	assert.Equal(t, "b2c", b2c.ID)
	assert.Equal(t, "Александр Иванов", b2c.Manager.Name)

	assert.Len(t, b2c.SubDepartments, 1)
	sales := b2c.SubDepartments[0]
	assert.Equal(t, "bfu-sales", sales.ID)
	assert.Len(t, sales.Employees, 1)
	assert.Equal(t, "Сергей Иванов", sales.Employees[0].Name)
}

func TestDirectoryUseCase_SearchDepartments_ByDepartmentName(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDirectoryUseCase(repository.NewDirectoryRepository())

	departments, err := uc.SearchDepartments(ctx, "CFU IT")

	assert.NoError(t, err)
	assert.Len(t, departments, 1)
	it := departments[0]
	assert.Equal(t, "cfu-it", it.ID)
	// Совпадение по названию отдела — сотрудники включены целиком
	assert.Len(t, it.Employees, 2)
	assert.Equal(t, 3, it.EmployeeCount())
}

func TestDirectoryUseCase_SearchDepartments_ByPosition(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDirectoryUseCase(repository.NewDirectoryRepository())

	departments, err := uc.SearchDepartments(ctx, "разработчик")

	assert.NoError(t, err)
	assert.Len(t, departments, 1)
	assert.Equal(t, "cfu-it", departments[0].ID)
	assert.Len(t, departments[0].Employees, 1)
	assert.Equal(t, "Екатерина Новикова", departments[0].Employees[0].Name)
}

func TestDirectoryUseCase_SearchDepartments_NoMatches(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDirectoryUseCase(repository.NewDirectoryRepository())

	departments, err := uc.SearchDepartments(ctx, "юриспруденция")

	assert.NoError(t, err)
	assert.Empty(t, departments)
}

func TestDirectoryUseCase_SearchDepartments_RepoError(t *testing.T) {
	ctx := context.Background()
	directoryRepo := &DirectoryRepository{}
	uc := usecase.NewDirectoryUseCase(directoryRepo)

	repoErr := errors.New("connection refused")
	directoryRepo.On("Departments", ctx).Return(nil, repoErr)

	_, err := uc.SearchDepartments(ctx, "")

	assert.ErrorIs(t, err, repoErr)
}
