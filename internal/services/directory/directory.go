// Package directory содержит бизнес-логику каталога профессионалов:
// выборку активных записей с фильтрацией и чтение одной записи с
// кешированием.
package directory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/khussac/proconnect-api/internal/models"
)

// Repository определяет методы хранилища, нужные каталогу.
type Repository interface {
	// ListActive возвращает активные записи в порядке исходного списка.
	ListActive(ctx context.Context) ([]*models.Professional, error)
	// GetByID возвращает запись по идентификатору.
	GetByID(ctx context.Context, id int) (*models.Professional, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// CacheKey возвращает ключ кеша записи каталога. Формат разделяется
// с редактором профиля, который инвалидирует запись при сохранении.
func CacheKey(id int) string {
	return fmt.Sprintf("professional:%d", id)
}

// Service реализует операции каталога.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает активные записи, удовлетворяющие фильтру, в порядке
// исходного списка. Результат пересчитывается на каждый запрос.
func (s *Service) List(ctx context.Context, filter models.Filter) ([]*models.Professional, error) {
	list, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if filter.IsEmpty() {
		return list, nil
	}
	return Apply(list, filter), nil
}

// Get возвращает запись по идентификатору, используя кеш или хранилище.
func (s *Service) Get(ctx context.Context, id int) (*models.Professional, error) {
	var result *models.Professional
	cacheKey := CacheKey(id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}
