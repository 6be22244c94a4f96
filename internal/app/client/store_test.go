package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"invtrack/internal/domain/inventory"
)

// gatedFetcher отдает отчеты по очереди и ждет разрешения на ответ
type gatedFetcher struct {
	mu      sync.Mutex
	calls   int
	reports []inventory.Report
	gates   []chan struct{}
	started chan int
}

func (f *gatedFetcher) Report(ctx context.Context) (inventory.Report, error) {
	f.mu.Lock()
	n := f.calls
	f.calls++
	f.mu.Unlock()

	f.started <- n
	<-f.gates[n]
	return f.reports[n], nil
}

func TestDataStore_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("applies snapshot and notifies listeners", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("Report", mock.Anything).Return(testReport(), nil).Once()

		store := NewDataStore(backend, testLogger(t))
		var notified []int
		store.Subscribe(func(s inventory.Snapshot) {
			notified = append(notified, len(s.Devices))
		})

		snap, err := store.Fetch(ctx)
		require.NoError(t, err)

		assert.Len(t, snap.Devices, 4)
		assert.Len(t, snap.Rooms, 2)
		assert.Equal(t, "101", snap.Devices[0].RoomName)
		assert.True(t, store.Loaded())
		assert.Equal(t, uint64(1), store.Applied())
		assert.Equal(t, []int{4}, notified)
		backend.AssertExpectations(t)
	})

	t.Run("failure keeps previous snapshot", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("Report", mock.Anything).Return(testReport(), nil).Once()
		backend.On("Report", mock.Anything).Return(inventory.Report{}, errors.New("connection refused")).Once()

		store := NewDataStore(backend, testLogger(t))
		_, err := store.Fetch(ctx)
		require.NoError(t, err)

		snap, err := store.Fetch(ctx)
		require.Error(t, err)

		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, uint64(2), fetchErr.Seq)
		assert.Len(t, snap.Devices, 4)
		assert.Len(t, store.Snapshot().Devices, 4)
		assert.Equal(t, uint64(1), store.Applied())
	})

	t.Run("failure before first load", func(t *testing.T) {
		backend := new(MockBackend)
		backend.On("Report", mock.Anything).Return(inventory.Report{}, errors.New("timeout"))

		store := NewDataStore(backend, testLogger(t))
		_, err := store.Fetch(ctx)

		require.Error(t, err)
		assert.False(t, store.Loaded())
		assert.Empty(t, store.Snapshot().Devices)
	})

	t.Run("stale response is discarded", func(t *testing.T) {
		older := testReport()
		newer := testReport()
		newer.Rooms = newer.Rooms[:1]

		fetcher := &gatedFetcher{
			reports: []inventory.Report{older, newer},
			gates:   []chan struct{}{make(chan struct{}), make(chan struct{})},
			started: make(chan int, 2),
		}
		store := NewDataStore(fetcher, testLogger(t))

		var wg sync.WaitGroup
		results := make([]inventory.Snapshot, 2)

		wg.Add(1)
		go func() {
			defer wg.Done()
			results[0], _ = store.Fetch(ctx)
		}()
		<-fetcher.started

		wg.Add(1)
		go func() {
			defer wg.Done()
			results[1], _ = store.Fetch(ctx)
		}()
		<-fetcher.started

		// второй запрос отвечает первым
		close(fetcher.gates[1])
		require.Eventually(t, func() bool { return store.Applied() == 2 }, timeoutShort, tick)
		close(fetcher.gates[0])
		wg.Wait()

		assert.Equal(t, uint64(2), store.Applied())
		assert.Len(t, store.Snapshot().Devices, 2)
		assert.Len(t, results[0].Devices, 2)
	})
}
