// Package auth реализует вход, регистрацию и работу с сессиями.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/khussac/proconnect-api/internal/lib/jwt"
	"github.com/khussac/proconnect-api/internal/lib/password"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/storage"
)

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken возвращается, если email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNoSession возвращается, если токен не привязан к активной сессии.
	ErrNoSession = errors.New("no active session")
)

// Repository описывает операции каталога, нужные авторизации.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*models.Professional, error)
	Create(ctx context.Context, p *models.Professional) error
}

// SessionStore хранит данные сессии по ключу.
type SessionStore interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// RegisterInput содержит данные формы регистрации.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Profession string
	Phone      string
}

// Service связывает каталог, хранилище сессий и выпуск токенов.
type Service struct {
	repo     Repository
	sessions SessionStore
	maker    jwt.Maker
	log      *slog.Logger
}

// New создает сервис авторизации.
func New(repo Repository, sessions SessionStore, maker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		maker:    maker,
		log:      log,
	}
}

func sessionKey(jti string) string {
	return "session:" + jti
}

// Login проверяет пару email/пароль и открывает сессию.
func (s *Service) Login(ctx context.Context, email, pass string) (*models.SessionUser, string, error) {
	const op = "services.auth.Login"

	p, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.Verify(p.PasswordHash, pass); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	user := &models.SessionUser{ID: p.ID, Name: p.Name, Email: p.Email}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// Register создает новую запись специалиста и сразу открывает сессию.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.SessionUser, string, error) {
	const op = "services.auth.Register"

	_, err := s.repo.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	hash, err := password.GetHash(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	p := &models.Professional{
		ID:           int(time.Now().UnixMilli()),
		Name:         in.Name,
		Profession:   in.Profession,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		ProfileImage: "/professional-person.png",
		Gallery:      []string{},
		Services:     []string{},
		Location: models.Location{
			City: "Lima",
			Coordinates: models.Coordinates{
				Lat: -12.0464,
				Lng: -77.0428,
			},
		},
		Rate: models.Rate{
			Currency: "PEN",
			Type:     "por hora",
		},
		IsActive: true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	user := &models.SessionUser{ID: p.ID, Name: p.Name, Email: p.Email}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// Logout закрывает сессию. Недействительный токен не считается ошибкой.
func (s *Service) Logout(ctx context.Context, tokenStr string) error {
	const op = "services.auth.Logout"

	claims, err := s.maker.ParseToken(tokenStr)
	if err != nil {
		s.log.Debug("logout with invalid token", sl.Err(err))
		return nil
	}
	if err := s.sessions.Invalidate(sessionKey(claims.ID)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Authenticate восстанавливает пользователя сессии по токену.
func (s *Service) Authenticate(ctx context.Context, tokenStr string) (*models.SessionUser, error) {
	const op = "services.auth.Authenticate"

	claims, err := s.maker.ParseToken(tokenStr)
	if err != nil {
		return nil, ErrNoSession
	}

	var user models.SessionUser
	found, err := s.sessions.Get(sessionKey(claims.ID), &user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, ErrNoSession
	}
	return &user, nil
}

func (s *Service) openSession(ctx context.Context, user *models.SessionUser) (string, error) {
	token, jti, err := s.maker.GenerateToken(user.ID, user.Name, user.Email)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	if err := s.sessions.Set(sessionKey(jti), user, s.maker.TokenTTL()); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}
