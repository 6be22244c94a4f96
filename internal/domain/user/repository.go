package user

import (
	"context"
)

type Repository interface {
	// Save создает пользователя или обновляет хэш и роль существующего
	Save(ctx context.Context, login, passwordHash, role string) (int, error)
	FindByLogin(ctx context.Context, login string) (User, error)
}
