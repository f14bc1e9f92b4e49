package usecase

import (
	"context"

	"corporate-portal-service/internal/domain"
	"corporate-portal-service/internal/filter"
)

const defaultNewsLimit = 10

// NewsUseCase реализует бизнес-логику для работы с новостями.
type NewsUseCase struct {
	newsRepo domain.NewsRepository
}

// NewNewsUseCase создает новый экземпляр NewsUseCase.
func NewNewsUseCase(newsRepo domain.NewsRepository) domain.NewsUseCase {
	return &NewsUseCase{
		newsRepo: newsRepo,
	}
}

// ListNews возвращает страницу новостей, при непустом query — только
// совпавшие по заголовку, аннотации или категории.
func (uc *NewsUseCase) ListNews(ctx context.Context, limit, offset int, query string) (*domain.NewsPage, error) {
	// Нормализация пагинации
	if limit <= 0 {
		limit = defaultNewsLimit
	}
	if offset < 0 {
		offset = 0
	}

	page, err := uc.newsRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	// Фильтрация не трогает исходную страницу: Total остается числом
	// всех новостей, Items сужается до совпавших.
	page.Items = filter.News(query, page.Items)
	return page, nil
}

// Like увеличивает счетчик лайков и возвращает новое значение.
func (uc *NewsUseCase) Like(ctx context.Context, newsID int64) (int, error) {
	if newsID <= 0 {
		return 0, domain.ErrInvalidNewsID
	}

	return uc.newsRepo.AdjustLikes(ctx, newsID, 1)
}

// Dislike уменьшает счетчик лайков (не ниже нуля) и возвращает новое значение.
func (uc *NewsUseCase) Dislike(ctx context.Context, newsID int64) (int, error) {
	if newsID <= 0 {
		return 0, domain.ErrInvalidNewsID
	}

	return uc.newsRepo.AdjustLikes(ctx, newsID, -1)
}
