// Package storage определяет общие ошибки хранилищ каталога.
// Конкретные реализации находятся в подпакетах fixture и repository.
package storage

import "errors"

// Ошибки, общие для всех реализаций хранилища каталога.
var (
	// ErrNotFound запись с таким идентификатором или email отсутствует.
	ErrNotFound = errors.New("professional not found")
	// ErrDuplicateID запись с таким идентификатором уже существует.
	ErrDuplicateID = errors.New("professional id already exists")
)
