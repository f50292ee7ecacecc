// Package fixture реализует хранилище каталога поверх статической
// JSON-фикстуры. Файл читается один раз при старте; записи держатся в
// памяти, изменения живут до завершения процесса и в файл не пишутся.
// При недоступности файла используется встроенный резервный список.
package fixture

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/storage"
)

//go:embed fallback.json
var fallbackData []byte

// Store потокобезопасное in-memory хранилище каталога.
type Store struct {
	mu            sync.RWMutex
	professionals []*models.Professional
}

// fixtureFile зеркалирует форму файла фикстуры:
// { "professionals": [...], "auth": { "currentUser": null } }.
type fixtureFile struct {
	Professionals []fixtureRecord `json:"professionals"`
	Auth          struct {
		CurrentUser any `json:"currentUser"`
	} `json:"auth"`
}

// fixtureRecord запись фикстуры; пароль хранится в ней открытым текстом
// в поле "password".
type fixtureRecord struct {
	models.Professional
	Password string `json:"password"`
}

// Load читает фикстуру из файла. При ошибке чтения или разбора файл
// подменяется встроенным резервным списком; ошибка логируется и наружу
// не поднимается.
func Load(path string, log *slog.Logger) *Store {
	const op = "fixture.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read fixture file, using embedded fallback",
			slog.String("op", op), slog.String("path", path), sl.Err(err))
		data = fallbackData
	}

	store, err := parse(data)
	if err != nil {
		log.Warn("failed to parse fixture file, using embedded fallback",
			slog.String("op", op), slog.String("path", path), sl.Err(err))
		store, err = parse(fallbackData)
		if err != nil {
			// Встроенная фикстура проверяется тестами, сюда попадать не должно.
			panic(fmt.Sprintf("%s: embedded fallback is invalid: %v", op, err))
		}
	}

	log.Info("directory fixture loaded", slog.Int("professionals", store.Len()))
	return store
}

func parse(data []byte) (*Store, error) {
	var file fixtureFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	professionals := make([]*models.Professional, 0, len(file.Professionals))
	for _, rec := range file.Professionals {
		p := rec.Professional
		p.PasswordHash = rec.Password
		professionals = append(professionals, &p)
	}
	return &Store{professionals: professionals}, nil
}

// Len возвращает число записей в каталоге, включая неактивные.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.professionals)
}

// ListActive возвращает копии активных записей в порядке исходного списка.
func (s *Store) ListActive(ctx context.Context) ([]*models.Professional, error) {
	const op = "fixture.ListActive"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Professional, 0, len(s.professionals))
	for _, p := range s.professionals {
		if p.IsActive {
			result = append(result, clone(p))
		}
	}
	return result, nil
}

// GetByID возвращает копию записи по идентификатору.
func (s *Store) GetByID(ctx context.Context, id int) (*models.Professional, error) {
	const op = "fixture.GetByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.professionals {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// GetByEmail возвращает копию первой записи с данным email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Professional, error) {
	const op = "fixture.GetByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.professionals {
		if p.Email == email {
			return clone(p), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// Create добавляет новую запись в конец каталога.
func (s *Store) Create(ctx context.Context, p *models.Professional) error {
	const op = "fixture.Create"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.professionals {
		if existing.ID == p.ID {
			return fmt.Errorf("%s: %w", op, storage.ErrDuplicateID)
		}
	}
	s.professionals = append(s.professionals, clone(p))
	return nil
}

// Update заменяет запись с тем же идентификатором.
func (s *Store) Update(ctx context.Context, p *models.Professional) error {
	const op = "fixture.Update"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.professionals {
		if existing.ID == p.ID {
			s.professionals[i] = clone(p)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// clone возвращает глубокую копию записи, чтобы вызывающие не делили
// срезы с хранилищем.
func clone(p *models.Professional) *models.Professional {
	out := *p
	out.Gallery = append([]string(nil), p.Gallery...)
	out.Services = append([]string(nil), p.Services...)
	return &out
}
