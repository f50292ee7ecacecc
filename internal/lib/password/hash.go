// Package password реализует функции хеширования и проверки паролей.
//
// Новые учётные записи хранят bcrypt-хэш. Записи из статической фикстуры
// каталога хранят пароль открытым текстом; Verify распознаёт оба формата.
package password

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// GetHash принимает пароль пользователя и возвращает его bcrypt-хэш.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt-хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе — ошибку.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Verify сверяет введённый пароль с сохранённым значением. Значения с
// префиксом bcrypt проверяются как хэш, остальные — константным по времени
// сравнением открытого текста (записи фикстуры).
func Verify(stored, candidate string) error {
	const op = "password.Verify"
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return CompareHash(stored, candidate)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) != 1 {
		return fmt.Errorf("%s: password mismatch", op)
	}
	return nil
}
