// Package editor реализует посекционное редактирование профиля.
//
// Одновременно открыта не более одной секции. Черновик живёт в кеше
// отдельно от записи каталога и попадает в хранилище только при
// сохранении; отмена просто удаляет черновик.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/services/directory"
	"github.com/khussac/proconnect-api/internal/services/geocode"
)

// Время жизни незафиксированного черновика.
const draftTTL = 30 * time.Minute

var (
	// ErrEditConflict возвращается при попытке открыть секцию, пока
	// открыта другая.
	ErrEditConflict = errors.New("another profile section is being edited")
	// ErrNoActiveEdit возвращается, когда операция требует открытого
	// черновика нужной секции, а его нет.
	ErrNoActiveEdit = errors.New("no active edit for this section")
	// ErrNotList возвращается для поэлементных операций над несписковой
	// секцией.
	ErrNotList = errors.New("section has no item list")
	// ErrBadIndex возвращается при выходе индекса за пределы списка.
	ErrBadIndex = errors.New("item index out of range")
)

// Repository определяет методы хранилища, нужные редактору.
type Repository interface {
	GetByID(ctx context.Context, id int) (*models.Professional, error)
	Update(ctx context.Context, p *models.Professional) error
}

// Cache хранит черновики и кешированные записи каталога.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует операции редактора профиля.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает сервис редактора.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func draftKey(userID int) string {
	return fmt.Sprintf("draft:%d", userID)
}

// Begin открывает секцию на редактирование и возвращает черновик,
// инициализированный из текущей записи. Повторное открытие той же
// секции переинициализирует черновик, открытие другой при живом
// черновике возвращает ErrEditConflict.
func (s *Service) Begin(ctx context.Context, userID int, section models.SectionKey) (models.Draft, error) {
	const op = "services.editor.Begin"

	current, err := s.activeDraft(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if current != nil && current.Section() != section {
		return nil, ErrEditConflict
	}

	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	draft, err := models.NewDraft(section, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.storeDraft(userID, draft); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return draft, nil
}

// Update заменяет содержимое открытого черновика. Секция черновика
// должна совпадать с открытой.
func (s *Service) Update(ctx context.Context, userID int, draft models.Draft) error {
	const op = "services.editor.Update"

	current, err := s.activeDraft(userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if current == nil || current.Section() != draft.Section() {
		return ErrNoActiveEdit
	}
	if err := s.storeDraft(userID, draft); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// AddItem добавляет элемент в конец списковой секции.
func (s *Service) AddItem(ctx context.Context, userID int, section models.SectionKey, item string) (models.Draft, error) {
	return s.mutateList(userID, section, func(items []string) ([]string, error) {
		return append(items, item), nil
	})
}

// UpdateItem заменяет элемент списковой секции по индексу.
func (s *Service) UpdateItem(ctx context.Context, userID int, section models.SectionKey, index int, item string) (models.Draft, error) {
	return s.mutateList(userID, section, func(items []string) ([]string, error) {
		if index < 0 || index >= len(items) {
			return nil, ErrBadIndex
		}
		items[index] = item
		return items, nil
	})
}

// RemoveItem удаляет элемент списковой секции по индексу.
func (s *Service) RemoveItem(ctx context.Context, userID int, section models.SectionKey, index int) (models.Draft, error) {
	return s.mutateList(userID, section, func(items []string) ([]string, error) {
		if index < 0 || index >= len(items) {
			return nil, ErrBadIndex
		}
		return append(items[:index], items[index+1:]...), nil
	})
}

// Save применяет черновик к записи, сохраняет её в хранилище и
// закрывает редактирование. Кеш записи каталога инвалидируется.
func (s *Service) Save(ctx context.Context, userID int) (*models.Professional, error) {
	const op = "services.editor.Save"

	draft, err := s.activeDraft(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if draft == nil {
		return nil, ErrNoActiveEdit
	}

	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	draft.Apply(p)

	// Запись без координат, но с известным районом получает центр района.
	if p.Location.Coordinates == (models.Coordinates{}) {
		if center, ok := geocode.DistrictCenter(p.Location.District); ok {
			p.Location.Coordinates = center
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Invalidate(directory.CacheKey(userID)); err != nil {
		s.log.Warn("failed to invalidate directory cache",
			slog.Int("id", userID), slog.Any("err", err))
	}
	if err := s.cache.Invalidate(draftKey(userID)); err != nil {
		s.log.Warn("failed to drop draft", slog.Int("id", userID), slog.Any("err", err))
	}
	return p, nil
}

// Cancel закрывает редактирование без сохранения. Отмена без открытого
// черновика не считается ошибкой.
func (s *Service) Cancel(ctx context.Context, userID int) error {
	const op = "services.editor.Cancel"

	if err := s.cache.Invalidate(draftKey(userID)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Active возвращает открытый черновик или nil, если редактирование
// не начато.
func (s *Service) Active(ctx context.Context, userID int) (models.Draft, error) {
	const op = "services.editor.Active"

	draft, err := s.activeDraft(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return draft, nil
}

func (s *Service) mutateList(userID int, section models.SectionKey, fn func([]string) ([]string, error)) (models.Draft, error) {
	const op = "services.editor.mutateList"

	if !section.IsList() {
		return nil, ErrNotList
	}

	current, err := s.activeDraft(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if current == nil || current.Section() != section {
		return nil, ErrNoActiveEdit
	}

	list, ok := current.(models.ListDraft)
	if !ok {
		return nil, ErrNotList
	}
	items, err := fn(list.Items())
	if err != nil {
		return nil, err
	}
	list.SetItems(items)

	if err := s.storeDraft(userID, list); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func (s *Service) activeDraft(userID int) (models.Draft, error) {
	var envelope models.DraftEnvelope
	found, err := s.cache.Get(draftKey(userID), &envelope)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return envelope.Decode()
}

func (s *Service) storeDraft(userID int, draft models.Draft) error {
	envelope, err := models.EncodeDraft(draft)
	if err != nil {
		return err
	}
	return s.cache.Set(draftKey(userID), envelope, draftTTL)
}
