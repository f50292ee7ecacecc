// Package jwt реализует генерацию и парсинг сессионных JWT токенов.
//
// Токен несёт идентификационные поля профессионала (id, имя, email) и
// уникальный идентификатор jti, по которому сессия привязывается к слоту
// сессионного хранилища.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга сессионных токенов.
type Maker interface {
	// GenerateToken создает токен для пользователя, возвращает токен и его jti.
	GenerateToken(userID int, name, email string) (token string, jti string, err error)
	// ParseToken возвращает *SessionClaims, если токен корректен.
	ParseToken(tokenStr string) (*SessionClaims, error)
	// TokenTTL возвращает время жизни выпускаемых токенов.
	TokenTTL() time.Duration
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}

// TokenTTL возвращает время жизни выпускаемых токенов.
func (j *MakerImpl) TokenTTL() time.Duration {
	return j.tokenTTL
}
