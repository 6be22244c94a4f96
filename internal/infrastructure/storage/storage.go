package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"invtrack/internal/app/server/config"
	"invtrack/internal/domain/inventory"
	"invtrack/internal/domain/user"
	"invtrack/internal/infrastructure/storage/memory"
	"invtrack/internal/infrastructure/storage/postgres"
)

// Storage - репозитории сервиса данных поверх выбранного хранилища
type Storage struct {
	Inventory inventory.Repository
	Users     user.Repository
	kind      string
	ping      func(ctx context.Context) error
	close     func() error
}

// New выбирает хранилище по cfg.Storage
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		pg, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return &Storage{
			Inventory: postgres.NewInventoryRepository(pg.Pool(), log),
			Users:     postgres.NewUserRepository(pg.Pool(), log),
			kind:      config.StoragePostgres,
			ping:      pg.Pool().Ping,
			close:     pg.Close,
		}, nil
	case config.StorageMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

// NewMemory собирает in-memory хранилище
func NewMemory() *Storage {
	return &Storage{
		Inventory: memory.NewInventoryRepository(),
		Users:     memory.NewUserRepository(),
		kind:      config.StorageMemory,
		ping:      func(context.Context) error { return nil },
		close:     func() error { return nil },
	}
}

// Kind - имя используемого хранилища: postgres или memory
func (s *Storage) Kind() string {
	return s.kind
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Storage) Close() error {
	return s.close()
}
