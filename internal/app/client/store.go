package client

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slog"

	"invtrack/internal/domain/inventory"
)

// DataStore хранит последний примененный снимок отчета. Снимок заменяется
// целиком. Каждая загрузка получает порядковый номер, и ответ с номером
// меньше уже примененного отбрасывается.
type DataStore struct {
	fetcher ReportFetcher
	log     *slog.Logger

	seq atomic.Uint64

	mu        sync.RWMutex
	snapshot  inventory.Snapshot
	applied   uint64
	loaded    bool
	listeners []func(inventory.Snapshot)
}

func NewDataStore(fetcher ReportFetcher, log *slog.Logger) *DataStore {
	return &DataStore{
		fetcher: fetcher,
		log:     log.With(slog.String("component", "data_store")),
	}
}

// Fetch загружает и применяет отчет. При ошибке возвращает прежний снимок
// вместе с *FetchError.
func (s *DataStore) Fetch(ctx context.Context) (inventory.Snapshot, error) {
	seq := s.seq.Add(1)

	report, err := s.fetcher.Report(ctx)
	if err != nil {
		s.log.Error("Не удалось загрузить отчет", slog.Uint64("seq", seq), slog.String("error", err.Error()))
		return s.Snapshot(), &FetchError{Seq: seq, Err: err}
	}

	snap := inventory.Flatten(report)

	s.mu.Lock()
	if seq < s.applied {
		current := s.snapshot
		s.mu.Unlock()
		s.log.Debug("Устаревший ответ отброшен", slog.Uint64("seq", seq), slog.Uint64("applied", s.Applied()))
		return current, nil
	}
	s.snapshot = snap
	s.applied = seq
	s.loaded = true
	listeners := make([]func(inventory.Snapshot), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	s.log.Debug("Снимок применен",
		slog.Uint64("seq", seq),
		slog.Int("rooms", len(snap.Rooms)),
		slog.Int("devices", len(snap.Devices)),
	)

	for _, fn := range listeners {
		fn(snap)
	}

	return snap, nil
}

func (s *DataStore) Snapshot() inventory.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Loaded сообщает, был ли применен хотя бы один снимок
func (s *DataStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Applied возвращает порядковый номер текущего снимка
func (s *DataStore) Applied() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applied
}

// Subscribe регистрирует обработчик, который вызывается после применения
// каждого снимка
func (s *DataStore) Subscribe(fn func(inventory.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
