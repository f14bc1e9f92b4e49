package domain

import (
	"context"
	"time"
)

// NewsItem представляет новость корпоративного портала.
// Счетчик лайков — единственное изменяемое поле.
type NewsItem struct {
	ID       int64
	Title    string
	Summary  string
	Content  string
	Date     time.Time
	Likes    int
	Comments int
	Category string
}

// NewsPage — страница новостей с параметрами пагинации.
type NewsPage struct {
	Items  []*NewsItem
	Total  int
	Limit  int
	Offset int
}

// NewsRepository определяет контракт для работы с хранилищем новостей.
type NewsRepository interface {
	List(ctx context.Context, limit, offset int) (*NewsPage, error)
	// AdjustLikes атомарно изменяет счетчик лайков на delta (не ниже нуля)
	// и возвращает новое значение.
	AdjustLikes(ctx context.Context, newsID int64, delta int) (int, error)
}
