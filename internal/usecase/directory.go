package usecase

import (
	"context"

	"corporate-portal-service/internal/domain"
	"corporate-portal-service/internal/filter"
)

// DirectoryUseCase реализует бизнес-логику для работы с оргструктурой.
type DirectoryUseCase struct {
	directoryRepo domain.DirectoryRepository
}

// NewDirectoryUseCase создает новый экземпляр DirectoryUseCase.
func NewDirectoryUseCase(directoryRepo domain.DirectoryRepository) domain.DirectoryUseCase {
	return &DirectoryUseCase{
		directoryRepo: directoryRepo,
	}
}

// SearchDepartments возвращает дерево отделов, отфильтрованное по запросу.
// Пустой запрос возвращает дерево целиком в исходном порядке.
func (uc *DirectoryUseCase) SearchDepartments(ctx context.Context, query string) ([]*domain.Department, error) {
	departments, err := uc.directoryRepo.Departments(ctx)
	if err != nil {
		return nil, err
	}

	return filter.Departments(query, departments), nil
}
