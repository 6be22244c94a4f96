package client

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("требуется вход: выполните invtrack auth login")
	ErrAdminRequired    = errors.New("требуется режим администратора")
	ErrEmptySelection   = errors.New("не выбрано ни одного устройства")
	ErrInvalidSecret    = errors.New("неверный пароль администратора")
	ErrFlagNotFound     = errors.New("флаг не найден")
)

// FetchError - отчет не загружен. Предыдущий снимок при этом сохраняется.
type FetchError struct {
	Seq uint64
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("ошибка загрузки отчета: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MutationError - сервер отклонил создание, изменение или удаление.
// Повторная синхронизация не выполняется.
type MutationError struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

type AuthLevel string

const (
	AuthLevelSession   AuthLevel = "session"
	AuthLevelElevation AuthLevel = "elevation"
)

// AuthError - неверные учетные данные. Состояние сессии не меняется.
type AuthError struct {
	Level AuthLevel
	Err   error
}

func (e *AuthError) Error() string {
	if e.Level == AuthLevelElevation {
		return fmt.Sprintf("ошибка входа в режим администратора: %v", e.Err)
	}
	return fmt.Sprintf("ошибка аутентификации: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// StatusError - сервер ответил кодом 4xx или 5xx
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ошибка сервера: %s", e.Message)
	}
	return fmt.Sprintf("ошибка сервера: статус %d", e.Code)
}
