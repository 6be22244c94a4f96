package client

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"invtrack/internal/domain/inventory"
)

// Coordinator отправляет изменения на сервер. После каждого успешного
// изменения снимок перезагружается целиком, локальных патчей нет.
type Coordinator struct {
	api   Mutator
	store *DataStore
	log   *slog.Logger
}

func NewCoordinator(api Mutator, store *DataStore, log *slog.Logger) *Coordinator {
	return &Coordinator{
		api:   api,
		store: store,
		log:   log.With(slog.String("component", "crud")),
	}
}

// SaveDevice создает устройство, если existing == nil, иначе обновляет его.
// Занятый инвентарный номер отклоняется до сетевого вызова.
func (c *Coordinator) SaveDevice(ctx context.Context, in inventory.DeviceInput, existing *inventory.Device) error {
	in = in.Normalize()

	if in.InventoryNumber != "" {
		for _, d := range c.store.Snapshot().Devices {
			if d.InventoryNumber != in.InventoryNumber {
				continue
			}
			if existing != nil && d.ID == existing.ID {
				continue
			}
			return &inventory.DuplicateInventoryError{
				InventoryNumber: in.InventoryNumber,
				ConflictID:      d.ID,
			}
		}
	}

	var id *int
	if existing != nil {
		id = &existing.ID
	}
	return c.save(ctx, KindDevice, id, in)
}

func (c *Coordinator) DeleteDevice(ctx context.Context, id int) error {
	return c.delete(ctx, KindDevice, id)
}

func (c *Coordinator) SaveRoom(ctx context.Context, in inventory.RoomInput, existing *inventory.Room) error {
	var id *int
	if existing != nil {
		id = &existing.ID
	}
	return c.save(ctx, KindRoom, id, in)
}

func (c *Coordinator) DeleteRoom(ctx context.Context, id int) error {
	return c.delete(ctx, KindRoom, id)
}

func (c *Coordinator) SaveCategory(ctx context.Context, in inventory.CategoryInput, existing *inventory.Category) error {
	var id *int
	if existing != nil {
		id = &existing.ID
	}
	return c.save(ctx, KindCategory, id, in)
}

func (c *Coordinator) DeleteCategory(ctx context.Context, id int) error {
	return c.delete(ctx, KindCategory, id)
}

func (c *Coordinator) SaveEmployee(ctx context.Context, in inventory.EmployeeInput, existing *inventory.Employee) error {
	var id *int
	if existing != nil {
		id = &existing.ID
	}
	return c.save(ctx, KindEmployee, id, in)
}

func (c *Coordinator) DeleteEmployee(ctx context.Context, id int) error {
	return c.delete(ctx, KindEmployee, id)
}

// ImportExcel загружает таблицу на сервер и возвращает его сообщение
func (c *Coordinator) ImportExcel(ctx context.Context, filename string, r io.Reader) (string, error) {
	msg, err := c.api.ImportExcel(ctx, filename, r)
	if err != nil {
		return "", &MutationError{Op: "import", Kind: KindDevice, Err: err}
	}

	c.resync(ctx)
	return msg, nil
}

func (c *Coordinator) save(ctx context.Context, kind Kind, id *int, body any) error {
	if id == nil {
		if err := c.api.Create(ctx, kind, body); err != nil {
			return &MutationError{Op: "create", Kind: kind, Err: err}
		}
		c.log.Info("Запись создана", slog.String("kind", string(kind)))
	} else {
		if err := c.api.Update(ctx, kind, *id, body); err != nil {
			return &MutationError{Op: "update", Kind: kind, Err: err}
		}
		c.log.Info("Запись обновлена", slog.String("kind", string(kind)), slog.Int("id", *id))
	}

	c.resync(ctx)
	return nil
}

func (c *Coordinator) delete(ctx context.Context, kind Kind, id int) error {
	if err := c.api.Delete(ctx, kind, id); err != nil {
		return &MutationError{Op: "delete", Kind: kind, Err: err}
	}
	c.log.Info("Запись удалена", slog.String("kind", string(kind)), slog.Int("id", id))

	c.resync(ctx)
	return nil
}

// resync не меняет результат изменения: ошибка загрузки только логируется
func (c *Coordinator) resync(ctx context.Context) {
	if _, err := c.store.Fetch(ctx); err != nil {
		c.log.Warn("Синхронизация после изменения не удалась", slog.String("error", fmt.Sprint(err)))
	}
}
