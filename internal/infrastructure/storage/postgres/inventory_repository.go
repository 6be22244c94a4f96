package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"invtrack/internal/domain/inventory"
)

var deviceColumns = []string{
	"id", "name", "type", "inventory_number", "price", "status", "details", "employee_id", "room_id",
}

type InventoryRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewInventoryRepository(pool *pgxpool.Pool, log *slog.Logger) *InventoryRepository {
	return &InventoryRepository{
		pool: pool,
		log:  log.With(slog.String("component", "inventory_repository")),
	}
}

// ==================== Rooms ====================

func (r *InventoryRepository) ListRooms(ctx context.Context) ([]inventory.Room, error) {
	query := psql.Select("id", "name", "floor").From("rooms").OrderBy("id")
	return collect(ctx, r.pool, query, scanRoom)
}

func (r *InventoryRepository) FindRoomByName(ctx context.Context, name string) (inventory.Room, error) {
	query := psql.Select("id", "name", "floor").From("rooms").Where(sq.Eq{"name": name})
	return one(ctx, r.pool, query, scanRoom)
}

func (r *InventoryRepository) CreateRoom(ctx context.Context, in inventory.RoomInput) (inventory.Room, error) {
	query := psql.Insert("rooms").
		Columns("name", "floor").
		Values(in.RoomName, in.Floor).
		Suffix("RETURNING id, name, floor")
	return one(ctx, r.pool, query, scanRoom)
}

func (r *InventoryRepository) UpdateRoom(ctx context.Context, id int, in inventory.RoomInput) (inventory.Room, error) {
	query := psql.Update("rooms").
		Set("name", in.RoomName).
		Set("floor", in.Floor).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, floor")
	return one(ctx, r.pool, query, scanRoom)
}

// DeleteRoom удаляет комнату, устройства удаляются каскадом по внешнему ключу
func (r *InventoryRepository) DeleteRoom(ctx context.Context, id int) error {
	return r.deleteByID(ctx, "rooms", id)
}

// ==================== Categories ====================

func (r *InventoryRepository) ListCategories(ctx context.Context) ([]inventory.Category, error) {
	query := psql.Select("id", "name").From("categories").OrderBy("id")
	return collect(ctx, r.pool, query, scanCategory)
}

func (r *InventoryRepository) FindCategoryByName(ctx context.Context, name string) (inventory.Category, error) {
	query := psql.Select("id", "name").From("categories").Where(sq.Eq{"name": name})
	return one(ctx, r.pool, query, scanCategory)
}

func (r *InventoryRepository) CreateCategory(ctx context.Context, in inventory.CategoryInput) (inventory.Category, error) {
	query := psql.Insert("categories").
		Columns("name").
		Values(in.Name).
		Suffix("RETURNING id, name")
	return one(ctx, r.pool, query, scanCategory)
}

func (r *InventoryRepository) UpdateCategory(ctx context.Context, id int, in inventory.CategoryInput) (inventory.Category, error) {
	query := psql.Update("categories").
		Set("name", in.Name).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name")
	return one(ctx, r.pool, query, scanCategory)
}

func (r *InventoryRepository) DeleteCategory(ctx context.Context, id int) error {
	return r.deleteByID(ctx, "categories", id)
}

// ==================== Employees ====================

func (r *InventoryRepository) ListEmployees(ctx context.Context) ([]inventory.Employee, error) {
	query := psql.Select("id", "full_name", "position").From("employees").OrderBy("id")
	return collect(ctx, r.pool, query, scanEmployee)
}

func (r *InventoryRepository) CreateEmployee(ctx context.Context, in inventory.EmployeeInput) (inventory.Employee, error) {
	query := psql.Insert("employees").
		Columns("full_name", "position").
		Values(in.FullName, in.Position).
		Suffix("RETURNING id, full_name, position")
	return one(ctx, r.pool, query, scanEmployee)
}

func (r *InventoryRepository) UpdateEmployee(ctx context.Context, id int, in inventory.EmployeeInput) (inventory.Employee, error) {
	query := psql.Update("employees").
		Set("full_name", in.FullName).
		Set("position", in.Position).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, full_name, position")
	return one(ctx, r.pool, query, scanEmployee)
}

// DeleteEmployee удаляет сотрудника, employee_id устройств обнуляется по внешнему ключу
func (r *InventoryRepository) DeleteEmployee(ctx context.Context, id int) error {
	return r.deleteByID(ctx, "employees", id)
}

// ==================== Devices ====================

func (r *InventoryRepository) ListDevices(ctx context.Context) ([]inventory.Device, error) {
	query := psql.Select(deviceColumns...).From("devices").OrderBy("id")
	return collect(ctx, r.pool, query, scanDevice)
}

// DevicesByIDs возвращает найденные устройства в порядке ids
func (r *InventoryRepository) DevicesByIDs(ctx context.Context, ids []int) ([]inventory.Device, error) {
	if len(ids) == 0 {
		return []inventory.Device{}, nil
	}

	query := psql.Select(deviceColumns...).From("devices").Where(sq.Eq{"id": ids})
	found, err := collect(ctx, r.pool, query, scanDevice)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]inventory.Device, len(found))
	for _, d := range found {
		byID[d.ID] = d
	}

	out := make([]inventory.Device, 0, len(found))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
			delete(byID, id)
		}
	}
	return out, nil
}

func (r *InventoryRepository) FindDeviceByInventory(ctx context.Context, inventoryNumber string) (inventory.Device, error) {
	query := psql.Select(deviceColumns...).
		From("devices").
		Where(sq.Eq{"inventory_number": inventoryNumber}).
		OrderBy("id").
		Limit(1)
	return one(ctx, r.pool, query, scanDevice)
}

func (r *InventoryRepository) CreateDevice(ctx context.Context, in inventory.DeviceInput) (inventory.Device, error) {
	query := psql.Insert("devices").
		Columns("name", "type", "inventory_number", "price", "status", "details", "employee_id", "room_id").
		Values(in.Name, in.Category, in.InventoryNumber, in.Price, string(in.Status), in.Details, in.EmployeeID, in.RoomID).
		Suffix("RETURNING id, name, type, inventory_number, price, status, details, employee_id, room_id")

	d, err := one(ctx, r.pool, query, scanDevice)
	if err != nil {
		return d, err
	}

	r.log.Debug("device created", slog.Int("id", d.ID), slog.Int("room_id", d.RoomID))
	return d, nil
}

func (r *InventoryRepository) UpdateDevice(ctx context.Context, id int, in inventory.DeviceInput) (inventory.Device, error) {
	query := psql.Update("devices").
		SetMap(map[string]any{
			"name":             in.Name,
			"type":             in.Category,
			"inventory_number": in.InventoryNumber,
			"price":            in.Price,
			"status":           string(in.Status),
			"details":          in.Details,
			"employee_id":      in.EmployeeID,
			"room_id":          in.RoomID,
		}).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, type, inventory_number, price, status, details, employee_id, room_id")
	return one(ctx, r.pool, query, scanDevice)
}

func (r *InventoryRepository) DeleteDevice(ctx context.Context, id int) error {
	return r.deleteByID(ctx, "devices", id)
}

func (r *InventoryRepository) deleteByID(ctx context.Context, table string, id int) error {
	sql, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", table, err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		r.log.Error("delete failed", slog.String("table", table), slog.Int("id", id), slog.String("error", err.Error()))
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrNotFound
	}
	return nil
}

// ==================== Scanning ====================

type sqlizer interface {
	ToSql() (string, []any, error)
}

type scanFunc[T any] func(row pgx.Row) (T, error)

func collect[T any](ctx context.Context, pool *pgxpool.Pool, query sqlizer, scan scanFunc[T]) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func one[T any](ctx context.Context, pool *pgxpool.Pool, query sqlizer, scan scanFunc[T]) (T, error) {
	var zero T

	sql, args, err := query.ToSql()
	if err != nil {
		return zero, fmt.Errorf("build query: %w", err)
	}

	v, err := scan(pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return zero, mapError(err)
	}
	return v, nil
}

func scanRoom(row pgx.Row) (inventory.Room, error) {
	var room inventory.Room
	err := row.Scan(&room.ID, &room.Name, &room.Floor)
	room.RoomName = room.Name
	return room, err
}

func scanCategory(row pgx.Row) (inventory.Category, error) {
	var c inventory.Category
	err := row.Scan(&c.ID, &c.Name)
	return c, err
}

func scanEmployee(row pgx.Row) (inventory.Employee, error) {
	var e inventory.Employee
	err := row.Scan(&e.ID, &e.FullName, &e.Position)
	return e, err
}

func scanDevice(row pgx.Row) (inventory.Device, error) {
	var d inventory.Device
	var status string
	err := row.Scan(&d.ID, &d.Name, &d.Category, &d.InventoryNumber, &d.Price, &status, &d.Details, &d.EmployeeID, &d.RoomID)
	d.Status = inventory.Status(status)
	return d, err
}
