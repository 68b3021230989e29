// Package storage определяет общие ошибки хранилища, одинаковые для
// обоих бэкендов (PostgreSQL и встроенный SQLite). Сервисный слой
// сравнивает их через errors.Is и не знает, какой бэкенд под ним.
package storage

import "errors"

var (
	// ErrNotFound запись с таким ключом отсутствует.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists нарушено ограничение уникальности (email, username).
	ErrAlreadyExists = errors.New("record already exists")
)
