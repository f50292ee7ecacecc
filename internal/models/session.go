// Package models содержит модель сессии пользователя: минимальный слепок
// идентификационных полей записи каталога, создаваемый при входе или
// регистрации и хранимый в сессионном слоте до выхода.
package models

// SessionUser представляет залогиненного профессионала.
type SessionUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
