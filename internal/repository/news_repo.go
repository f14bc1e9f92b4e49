package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"corporate-portal-service/internal/domain"
)

// NewsRepository реализует взаимодействие с данными новостей в PostgreSQL.
type NewsRepository struct {
	db *sql.DB
}

// NewNewsRepository создает новый экземпляр NewsRepository.
func NewNewsRepository(db *sql.DB) domain.NewsRepository {
	return &NewsRepository{db: db}
}

// List возвращает страницу новостей, отсортированных от новых к старым.
func (r *NewsRepository) List(ctx context.Context, limit, offset int) (*domain.NewsPage, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM news`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count news: %w", err)
	}

	const query = `
		SELECT id, title, summary, content, date, likes, comments, category
		FROM news
		ORDER BY date DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.NewsItem, 0, limit)
	for rows.Next() {
		var n domain.NewsItem
		if err := rows.Scan(&n.ID, &n.Title, &n.Summary, &n.Content, &n.Date,
			&n.Likes, &n.Comments, &n.Category); err != nil {
			return nil, fmt.Errorf("failed to scan news row: %w", err)
		}
		items = append(items, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read news rows: %w", err)
	}

	return &domain.NewsPage{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// AdjustLikes атомарно изменяет счетчик лайков, не опуская его ниже нуля,
// и возвращает новое значение.
func (r *NewsRepository) AdjustLikes(ctx context.Context, newsID int64, delta int) (int, error) {
	const query = `
		UPDATE news
		SET likes = GREATEST(likes + $2, 0)
		WHERE id = $1
		RETURNING likes`

	var likes int
	err := r.db.QueryRowContext(ctx, query, newsID, delta).Scan(&likes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNewsNotFound
		}
		return 0, fmt.Errorf("failed to adjust likes: %w", err)
	}

	return likes, nil
}
