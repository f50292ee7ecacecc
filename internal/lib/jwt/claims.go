// Package jwt реализует генерацию и парсинг сессионных JWT токенов.
//
// SessionClaims расширяет стандартные claims JWT идентификационными
// полями профессионала. Методы GenerateToken и ParseToken реализуют
// создание и валидацию токена с заданными claims.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims описывает пользовательские данные, хранящиеся в JWT.
type SessionClaims struct {
	UserID               int    `json:"uid"`   // Идентификатор записи каталога
	Name                 string `json:"name"`  // Имя профессионала
	Email                string `json:"email"` // Электронная почта
	jwt.RegisteredClaims        // Стандартные claims (ExpiresAt, IssuedAt, ID и пр.)
}

// GenerateToken создает JWT токен с идентификационными полями пользователя,
// подписывая его секретным ключом. Поле jti (RegisteredClaims.ID) уникально
// для каждой выдачи и служит ключом сессионного слота.
func (j *MakerImpl) GenerateToken(userID int, name, email string) (string, string, error) {
	jti := uuid.NewString()
	claims := SessionClaims{
		UserID: userID,
		Name:   name,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", "", err
	}
	return signed, jti, nil
}

// ParseToken парсит JWT токен, проверяет его подпись и срок действия,
// возвращает SessionClaims с данными, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string) (*SessionClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
