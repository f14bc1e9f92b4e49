package client

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"corporate-portal-service/api"
)

// ErrMutationInFlight возвращается при попытке запустить мутацию, пока
// предыдущая над тем же ресурсом не завершилась. Дубликаты отклоняются,
// а не ставятся в очередь: повторный клик не должен накапливать дельты.
var ErrMutationInFlight = errors.New("mutation already in flight for this resource")

// Mutation — оптимистичная мутация: локальное изменение, точный обратный
// откат и удаленный вызов.
type Mutation struct {
	Apply   func()
	Invert  func()
	Attempt func(ctx context.Context) error
}

// Coordinator применяет локальное изменение синхронно, выполняет удаленный
// вызов и откатывает изменение при его неудаче. Реестр выполняющихся
// мутаций (по ключу ресурса) защищает от конкурирующих дубликатов.
type Coordinator struct {
	logger *logrus.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewCoordinator создает координатор оптимистичных мутаций.
func NewCoordinator(logger *logrus.Logger) *Coordinator {
	return &Coordinator{
		logger:   logger,
		inflight: make(map[string]struct{}),
	}
}

// Do выполняет мутацию под ключом key. Локальное изменение видно сразу;
// при ошибке удаленного вызова состояние откатывается к исходному
// значению, а ошибка возвращается вызывающему.
func (c *Coordinator) Do(ctx context.Context, key string, m Mutation) error {
	c.mu.Lock()
	if _, busy := c.inflight[key]; busy {
		c.mu.Unlock()
		return ErrMutationInFlight
	}
	c.inflight[key] = struct{}{}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inflight, key)
		c.mu.Unlock()
	}()

	m.Apply()

	if err := m.Attempt(ctx); err != nil {
		m.Invert()
		if c.logger != nil {
			c.logger.WithError(err).WithField("resource", key).Warn("Optimistic mutation rolled back")
		}
		return err
	}

	return nil
}

// LikeNews оптимистично увеличивает счетчик лайков локальной копии новости
// и подтверждает изменение на сервере. При успехе счетчик сверяется со
// значением сервера, при ошибке возвращается к исходному.
func (c *Coordinator) LikeNews(ctx context.Context, portal *Client, item *api.NewsItem) error {
	return c.Do(ctx, likeKey(item.Id), Mutation{
		Apply:  func() { item.Likes++ },
		Invert: func() { item.Likes-- },
		Attempt: func(ctx context.Context) error {
			resp, err := portal.LikeNews(ctx, item.Id)
			if err != nil {
				return err
			}
			item.Likes = resp.NewLikes
			return nil
		},
	})
}

// DislikeNews — зеркальная операция снятия лайка.
func (c *Coordinator) DislikeNews(ctx context.Context, portal *Client, item *api.NewsItem) error {
	return c.Do(ctx, likeKey(item.Id), Mutation{
		Apply:  func() { item.Likes-- },
		Invert: func() { item.Likes++ },
		Attempt: func(ctx context.Context) error {
			resp, err := portal.DislikeNews(ctx, item.Id)
			if err != nil {
				return err
			}
			item.Likes = resp.NewLikes
			return nil
		},
	})
}

func likeKey(newsID int64) string {
	return "news/" + strconv.FormatInt(newsID, 10)
}
